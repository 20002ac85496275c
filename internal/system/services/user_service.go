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

	"github.com/slpost/postal-directory-service/internal/submitter/handler"
)

// UserService registers the user administration routes.
type UserService struct {
	handler *handler.UserHandler
}

func NewUserService(mux *http.ServeMux, apiBasePath string) *UserService {
	instance := &UserService{
		handler: handler.NewUserHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *UserService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("GET %s/users", apiBasePath), s.handler.ListUsers)
	mux.HandleFunc(fmt.Sprintf("PUT %s/users/", apiBasePath), s.handler.UpdateUserRole)
	mux.HandleFunc(fmt.Sprintf("DELETE %s/users/", apiBasePath), s.handler.DeleteUser)
}
