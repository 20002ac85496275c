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

	model "github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/directory/provider"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/utils"
)

type OfficeHandler struct{}

func NewOfficeHandler() *OfficeHandler {
	return &OfficeHandler{}
}

// SearchOffices handles GET /offices. Public.
func (h *OfficeHandler) SearchOffices(w http.ResponseWriter, r *http.Request) {

	service := provider.NewOfficeProvider().GetOfficeService()
	offices, err := service.SearchOffices(r.URL.Query().Get("q"))
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, offices)
}

// GetOffice handles GET /offices/{id}. Public.
func (h *OfficeHandler) GetOffice(w http.ResponseWriter, r *http.Request) {

	officeID := utils.ExtractLastPathSegment(r.URL.Path)
	if officeID == "" {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: "Office id is required.",
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewOfficeProvider().GetOfficeService()
	office, err := service.GetOffice(officeID)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, office)
}

// CreateOffice handles POST /offices. Admin only.
func (h *OfficeHandler) CreateOffice(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.AdminRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	var req model.OfficeUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "post office"),
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewOfficeProvider().GetOfficeService()
	office, err := service.CreateOffice(req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, office)
}

// UpdateOffice handles PUT /offices/{id}. Admin only.
func (h *OfficeHandler) UpdateOffice(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.AdminRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	officeID := utils.ExtractLastPathSegment(r.URL.Path)
	var req model.OfficeUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "post office"),
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewOfficeProvider().GetOfficeService()
	office, err := service.UpdateOffice(officeID, req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, office)
}

// DeleteOffice handles DELETE /offices/{id}. Admin only.
func (h *OfficeHandler) DeleteOffice(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.AdminRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	officeID := utils.ExtractLastPathSegment(r.URL.Path)
	service := provider.NewOfficeProvider().GetOfficeService()
	if err := service.DeleteOffice(officeID); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
