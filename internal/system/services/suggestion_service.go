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

	"github.com/slpost/postal-directory-service/internal/editrequest/handler"
)

// SuggestionService registers the public suggestion intake route.
type SuggestionService struct {
	handler *handler.SuggestionHandler
}

func NewSuggestionService(mux *http.ServeMux, apiBasePath string) *SuggestionService {
	instance := &SuggestionService{
		handler: handler.NewSuggestionHandler(),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *SuggestionService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("POST %s/suggestions", apiBasePath), s.handler.SubmitSuggestion)
}
