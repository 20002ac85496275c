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

package managers

import (
	"net/http"

	"github.com/slpost/postal-directory-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux *http.ServeMux
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux) ServiceManagerInterface {

	return &ServiceManager{
		mux: mux,
	}
}

// RegisterServices mounts every HTTP surface on the mux.
func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	services.NewHealthService(sm.mux)
	services.NewDirectoryService(sm.mux, apiBasePath)
	services.NewSuggestionService(sm.mux, apiBasePath)
	services.NewModerationService(sm.mux, apiBasePath)
	services.NewUserService(sm.mux, apiBasePath)
	return nil
}
