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
	"github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/utils"
)

type SuggestionHandler struct{}

func NewSuggestionHandler() *SuggestionHandler {
	return &SuggestionHandler{}
}

// SubmitSuggestion handles POST /suggestions. Public: any visitor may
// propose a change, which enters the queue as PENDING.
func (h *SuggestionHandler) SubmitSuggestion(w http.ResponseWriter, r *http.Request) {

	var req model.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.HandleError(w, errors.NewClientError(errors.ErrorMessage{
			Code:        errors.BAD_REQUEST.Code,
			Message:     errors.BAD_REQUEST.Message,
			Description: utils.HandleDecodeError(err, "suggestion"),
		}, http.StatusBadRequest))
		return
	}

	service := provider.NewEditRequestProvider().GetEditRequestService()
	editReq, err := service.SubmitEditRequest(req)
	if err != nil {
		utils.HandleError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, editReq)
}
