/*
 * Copyright (c) 2025, SLPost Labs. (https://slpost.dev).
 *
 * SLPost Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package services

import (
	"fmt"
	"net/http"

	"github.com/slpost/postal-directory-service/internal/directory/handler"
)

// DirectoryService registers the canonical-record routes.
type DirectoryService struct {
	handler *handler.OfficeHandler
}

func NewDirectoryService(mux *http.ServeMux, apiBasePath string) *DirectoryService {
	instance := &DirectoryService{
		handler: handler.NewOfficeHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *DirectoryService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/offices", apiBasePath), s.handler.SearchOffices)
	mux.HandleFunc(fmt.Sprintf("POST %s/offices", apiBasePath), s.handler.CreateOffice)
	mux.HandleFunc(fmt.Sprintf("GET %s/offices/", apiBasePath), s.handler.GetOffice)
	mux.HandleFunc(fmt.Sprintf("PUT %s/offices/", apiBasePath), s.handler.UpdateOffice)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/offices/", apiBasePath), s.handler.DeleteOffice)
}
