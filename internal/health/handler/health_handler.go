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

package handler

import (
	"net/http"

	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	"github.com/slpost/postal-directory-service/internal/system/log"
	"github.com/slpost/postal-directory-service/internal/system/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth reports process liveness.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}

// HandleReadiness reports whether the datasource is reachable.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	if err != nil {
		log.GetLogger().Warn("Readiness check failed to open datasource", log.Error(err))
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
		return
	}
	defer dbClient.Close()

	if _, err := dbClient.ExecuteQuery("SELECT 1"); err != nil {
		log.GetLogger().Warn("Readiness check failed to query datasource", log.Error(err))
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "DOWN"})
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "UP"})
}
