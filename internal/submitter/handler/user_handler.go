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

	"github.com/slpost/postal-directory-service/internal/submitter/provider"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/utils"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// ListUsers handles GET /users. Admin only.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.AdminRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	service := provider.NewUserProvider().GetUserService()
	users, err := service.ListUsers()
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, users)
}

// UpdateUserRole handles PUT /users/{id}. Admin only.
func (h *UserHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, constants.AdminRoles); err != nil {
		utils.HandleError(w, err)
		return
	}

	userID := utils.ExtractLastPathSegment(r.URL.Path)
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "user"),
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewUserProvider().GetUserService()
	if err := service.UpdateUserRole(userID, req.Role); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /users/{id}. Super admin only.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {

	if _, err := utils.RequireRole(r, map[string]bool{constants.RoleSuperAdmin: true}); err != nil {
		utils.HandleError(w, err)
		return
	}

	userID := utils.ExtractLastPathSegment(r.URL.Path)
	service := provider.NewUserProvider().GetUserService()
	if err := service.DeleteUser(userID); err != nil {
		utils.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
