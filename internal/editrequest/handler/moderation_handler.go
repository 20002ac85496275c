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
	"encoding/json"
	"net/http"

	model "github.com/slpost/postal-directory-service/internal/editrequest/model"
	"github.com/slpost/postal-directory-service/internal/editrequest/provider"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/utils"
)

type ModerationHandler struct{}

func NewModerationHandler() *ModerationHandler {
	return &ModerationHandler{}
}

// ListOpenRequests handles GET /moderation/requests. Moderators only.
func (h *ModerationHandler) ListOpenRequests(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.ModerationRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewEditRequestProvider().GetEditRequestService()
	requests, err := service.ListOpenRequests()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	if requests == nil {
		requests = []model.EditRequestView{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, requests)
}

// Decide handles POST /moderation/decisions. Moderators only.
func (h *ModerationHandler) Decide(w http.ResponseWriter, r *http.Request) {

	principal, err := utils.RequireRole(r, constants.ModerationRoles)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var decision model.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "moderation decision"),
		}, http.StatusBadRequest))
		return
	}
	if decision.RequestID == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Request id is required.",
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewEditRequestProvider().GetEditRequestService()
	view, err := service.Decide(decision, principal.UserID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, view)
}
