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

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	dirservice "github.com/slpost/postal-directory-service/internal/directory/service"
	model "github.com/slpost/postal-directory-service/internal/editrequest/model"
	"github.com/slpost/postal-directory-service/internal/editrequest/store"
	"github.com/slpost/postal-directory-service/internal/notification"
	"github.com/slpost/postal-directory-service/internal/submitter/service"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// EditRequestServiceInterface drives the edit-request lifecycle: intake of
// public suggestions and moderator decisions over them.
type EditRequestServiceInterface interface {
	SubmitEditRequest(req model.SubmissionRequest) (*model.EditRequest, error)
	ListOpenRequests() ([]model.EditRequestView, error)
	Decide(decision model.DecisionRequest, moderatorID string) (*model.EditRequestView, error)
}

// EditRequestService is the default implementation.
type EditRequestService struct {
	store    store.EditRequestStoreInterface
	notifier notification.Notifier
}

// GetEditRequestService returns a service wired to the Postgres store and
// the configured notifier.
func GetEditRequestService() EditRequestServiceInterface {
	return &EditRequestService{
		store:    store.NewEditRequestStore(),
		notifier: notification.NewNotifier(),
	}
}

// NewEditRequestService builds a service over explicit collaborators.
func NewEditRequestService(s store.EditRequestStoreInterface, n notification.Notifier) EditRequestServiceInterface {
	return &EditRequestService{store: s, notifier: n}
}

// SubmitEditRequest records a public suggestion against an existing office
// and acknowledges the submitter. The proposal is stored as an opaque diff;
// nothing is applied until a moderator approves it.
func (es *EditRequestService) SubmitEditRequest(req model.SubmissionRequest) (*model.EditRequest, error) {

	logger := log.GetLogger()

	if req.OfficeID == "" || req.SubmitterEmail == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "officeId and submitterEmail are required.",
		}, http.StatusBadRequest)
	}

	changes := model.ChangeSet{
		Name:       req.ProposedName,
		PostalCode: req.ProposedPostalCode,
		Fields:     req.ProposedFields,
	}
	if changes.IsEmpty() {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "The suggestion proposes no changes.",
		}, http.StatusBadRequest)
	}

	office, err := dirservice.GetOfficeService().GetOffice(req.OfficeID)
	if err != nil {
		return nil, err
	}

	submitter, err := service.GetUserService().FindOrCreateContributor(req.SubmitterName, req.SubmitterEmail)
	if err != nil {
		return nil, err
	}

	encoded, err := changes.Encode()
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EDIT_REQUEST.Code,
			Message:     errors2.ADD_EDIT_REQUEST.Message,
			Description: "Failed to encode the proposed changes.",
		}, err)
	}

	editReq := model.EditRequest{
		RequestID:   uuid.New().String(),
		OfficeID:    office.OfficeID,
		SubmitterID: submitter.UserID,
		Changes:     encoded,
		Status:      constants.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := es.store.AddEditRequest(editReq); err != nil {
		return nil, err
	}

	logger.Audit(log.AuditEvent{
		ActorID:    submitter.UserID,
		ActorRole:  submitter.Role,
		TargetID:   editReq.RequestID,
		TargetType: "edit_request",
		Action:     "SUBMIT",
		Outcome:    constants.StatusPending,
	})
	es.notifier.Notify(notification.KindReceived, submitter.Email, submitter.Name, office.Name)
	return &editReq, nil
}

// ListOpenRequests returns the moderation queue, oldest first.
func (es *EditRequestService) ListOpenRequests() ([]model.EditRequestView, error) {
	return es.store.GetOpenEditRequests()
}

// Decide applies one moderator decision. Terminal states are sticky: once a
// request is APPROVED or REJECTED every later decision gets AlreadyProcessed,
// including races lost inside the store. MORE_INFO keeps the request open.
func (es *EditRequestService) Decide(decision model.DecisionRequest, moderatorID string) (*model.EditRequestView, error) {

	logger := log.GetLogger()

	// Validate the action before touching storage so an unknown verb can
	// never be mistaken for a missing or processed request.
	var targetStatus string
	var kind notification.Kind
	switch decision.Action {
	case constants.ActionApprove:
		targetStatus = constants.StatusApproved
		kind = notification.KindApproved
	case constants.ActionReject:
		targetStatus = constants.StatusRejected
		kind = notification.KindRejected
	case constants.ActionMoreInfo:
		targetStatus = constants.StatusMoreInfo
		kind = notification.KindMoreInfo
	default:
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_MODERATION_ACTION.Code,
			Message:     errors2.INVALID_MODERATION_ACTION.Message,
			Description: fmt.Sprintf("Unrecognized action: %s", decision.Action),
		}, http.StatusBadRequest)
	}

	view, err := es.store.GetEditRequestByID(decision.RequestID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.EDIT_REQUEST_NOT_FOUND.Code,
			Message:     errors2.EDIT_REQUEST_NOT_FOUND.Message,
			Description: fmt.Sprintf("No edit request found with id: %s", decision.RequestID),
		}, http.StatusNotFound)
	}
	if view.Status != constants.StatusPending && view.Status != constants.StatusMoreInfo {
		return nil, alreadyProcessedError(decision.RequestID)
	}
	if decision.Action == constants.ActionApprove && view.ParseError {
		// The stored blob cannot be decoded, so there is nothing safe to
		// apply. The request stays open; the moderator can still reject it.
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.EDIT_REQUEST_UNPARSABLE.Code,
			Message:     errors2.EDIT_REQUEST_UNPARSABLE.Message,
			Description: fmt.Sprintf("Changes of edit request %s cannot be decoded.", decision.RequestID),
		}, http.StatusUnprocessableEntity)
	}

	var applied bool
	if decision.Action == constants.ActionApprove {
		applied, err = es.store.ApplyApproval(view, view.Diff)
	} else {
		applied, err = es.store.MarkDecided(decision.RequestID, targetStatus)
	}
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, alreadyProcessedError(decision.RequestID)
	}
	view.Status = targetStatus
	if decision.Action == constants.ActionApprove {
		dirservice.InvalidateCachedOffice(view.OfficeID)
	}

	logger.Audit(log.AuditEvent{
		ActorID:    moderatorID,
		TargetID:   view.RequestID,
		TargetType: "edit_request",
		Action:     decision.Action,
		Outcome:    targetStatus,
	})
	// Notification is strictly post-commit and best-effort.
	es.notifier.Notify(kind, view.SubmitterEmail, view.SubmitterName, view.OfficeName)
	return view, nil
}

func alreadyProcessedError(requestID string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.EDIT_REQUEST_ALREADY_PROCESSED.Code,
		Message:     errors2.EDIT_REQUEST_ALREADY_PROCESSED.Message,
		Description: fmt.Sprintf("Edit request %s has already reached a terminal state.", requestID),
	}, http.StatusConflict)
}
