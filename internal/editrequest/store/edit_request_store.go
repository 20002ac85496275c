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

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	model "github.com/slpost/postal-directory-service/internal/editrequest/model"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// EditRequestStoreInterface is the persistence boundary of the moderation
// lifecycle. The service layer depends on this interface so decision logic
// can be tested against a fake store.
type EditRequestStoreInterface interface {
	AddEditRequest(req model.EditRequest) error
	GetEditRequestByID(requestID string) (*model.EditRequestView, error)
	GetOpenEditRequests() ([]model.EditRequestView, error)
	MarkDecided(requestID, status string) (bool, error)
	ApplyApproval(view *model.EditRequestView, diff model.ChangeSet) (bool, error)
}

// EditRequestStore is the Postgres implementation.
type EditRequestStore struct{}

// NewEditRequestStore returns a store backed by the configured datasource.
func NewEditRequestStore() EditRequestStoreInterface {
	return &EditRequestStore{}
}

// AddEditRequest inserts a new PENDING request.
func (s *EditRequestStore) AddEditRequest(req model.EditRequest) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting edit request: %s", req.RequestID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EDIT_REQUEST.Code,
			Message:     errors2.ADD_EDIT_REQUEST.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(
		`INSERT INTO edit_requests (request_id, office_id, submitter_id, changes, status)
			VALUES ($1, $2, $3, $4, $5) RETURNING request_id`,
		req.RequestID, req.OfficeID, req.SubmitterID, req.Changes, req.Status)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute insert for edit request: %s", req.RequestID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EDIT_REQUEST.Code,
			Message:     errors2.ADD_EDIT_REQUEST.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted edit request: %s", req.RequestID))
	return nil
}

const editRequestViewQuery = `SELECT er.request_id, er.office_id, er.submitter_id, er.changes, er.status,
			er.created_at, po.name AS office_name, u.name AS submitter_name, u.email AS submitter_email
		FROM edit_requests er
		JOIN post_offices po ON po.office_id = er.office_id
		JOIN users u ON u.user_id = er.submitter_id`

// GetEditRequestByID retrieves a request joined with its office and
// submitter, or nil when absent.
func (s *EditRequestStore) GetEditRequestByID(requestID string) (*model.EditRequestView, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching edit request: %s", requestID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EDIT_REQUESTS.Code,
			Message:     errors2.FETCH_EDIT_REQUESTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(editRequestViewQuery+` WHERE er.request_id = $1`, requestID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching edit request: %s", requestID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EDIT_REQUESTS.Code,
			Message:     errors2.FETCH_EDIT_REQUESTS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	view := scanEditRequestView(results[0])
	return &view, nil
}

// GetOpenEditRequests lists PENDING and MORE_INFO requests, oldest first.
func (s *EditRequestStore) GetOpenEditRequests() ([]model.EditRequestView, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching open edit requests."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EDIT_REQUESTS.Code,
			Message:     errors2.FETCH_EDIT_REQUESTS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		editRequestViewQuery+` WHERE er.status IN ($1, $2) ORDER BY er.created_at`,
		constants.StatusPending, constants.StatusMoreInfo)
	if err != nil {
		errorMsg := "Failed to execute query for fetching open edit requests."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_EDIT_REQUESTS.Code,
			Message:     errors2.FETCH_EDIT_REQUESTS.Message,
			Description: errorMsg,
		}, err)
	}

	views := make([]model.EditRequestView, 0, len(results))
	for _, row := range results {
		views = append(views, scanEditRequestView(row))
	}
	return views, nil
}

// MarkDecided flips a request to the given status, guarded against terminal
// states. Returns false when the request had already been processed — the
// caller maps that to AlreadyProcessed.
func (s *EditRequestStore) MarkDecided(requestID, status string) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deciding edit request: %s", requestID)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPLY_EDIT_REQUEST.Code,
			Message:     errors2.APPLY_EDIT_REQUEST.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginSerializableTx(context.Background())
	if err != nil {
		return false, conflictError(requestID, err)
	}

	res, err := tx.Exec(
		`UPDATE edit_requests SET status = $2 WHERE request_id = $1 AND status IN ($3, $4)`,
		requestID, status, constants.StatusPending, constants.StatusMoreInfo)
	if err != nil {
		rollbackTx(tx, requestID)
		return false, conflictError(requestID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		rollbackTx(tx, requestID)
		return false, conflictError(requestID, err)
	}
	if affected == 0 {
		// A concurrent moderator got there first.
		rollbackTx(tx, requestID)
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, conflictError(requestID, err)
	}
	logger.Info(fmt.Sprintf("Edit request %s marked %s", requestID, status))
	return true, nil
}

// ApplyApproval runs the approval as one serializable transaction: core
// attribute updates, field upserts preserving field identity, and the
// guarded status flip. Either every step commits or none does; a false
// return means the request was already processed and nothing changed.
func (s *EditRequestStore) ApplyApproval(view *model.EditRequestView, diff model.ChangeSet) (bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for approving edit request: %s", view.RequestID)
		logger.Debug(errorMsg, log.Error(err))
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.APPLY_EDIT_REQUEST.Code,
			Message:     errors2.APPLY_EDIT_REQUEST.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginSerializableTx(context.Background())
	if err != nil {
		return false, conflictError(view.RequestID, err)
	}

	if diff.Name != "" {
		if _, err := tx.Exec(
			`UPDATE post_offices SET name = $2, updated_at = NOW() WHERE office_id = $1`,
			view.OfficeID, diff.Name); err != nil {
			rollbackTx(tx, view.RequestID)
			return false, conflictError(view.RequestID, err)
		}
	}
	if diff.PostalCode != "" {
		if _, err := tx.Exec(
			`UPDATE post_offices SET postal_code = $2, updated_at = NOW() WHERE office_id = $1`,
			view.OfficeID, diff.PostalCode); err != nil {
			rollbackTx(tx, view.RequestID)
			return false, conflictError(view.RequestID, err)
		}
	}

	for _, field := range diff.Fields {
		if err := upsertFieldInTx(tx, view.OfficeID, field); err != nil {
			rollbackTx(tx, view.RequestID)
			return false, conflictError(view.RequestID, err)
		}
	}

	res, err := tx.Exec(
		`UPDATE edit_requests SET status = $2 WHERE request_id = $1 AND status IN ($3, $4)`,
		view.RequestID, constants.StatusApproved, constants.StatusPending, constants.StatusMoreInfo)
	if err != nil {
		rollbackTx(tx, view.RequestID)
		return false, conflictError(view.RequestID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		rollbackTx(tx, view.RequestID)
		return false, conflictError(view.RequestID, err)
	}
	if affected == 0 {
		// Concurrent approval lost the race; roll everything back so no
		// partial approval is observable.
		rollbackTx(tx, view.RequestID)
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, conflictError(view.RequestID, err)
	}
	logger.Info(fmt.Sprintf("Edit request %s approved and applied", view.RequestID))
	return true, nil
}

// upsertFieldInTx updates an existing field in place, keeping its id, or
// inserts a new one. Fields not mentioned in the diff are never touched.
func upsertFieldInTx(tx *sql.Tx, officeID string, field model.FieldProposal) error {

	var fieldID string
	err := tx.QueryRow(
		`SELECT field_id FROM post_office_fields WHERE office_id = $1 AND name = $2`,
		officeID, field.Name).Scan(&fieldID)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(
			`INSERT INTO post_office_fields (field_id, office_id, name, value, field_type)
				VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), officeID, field.Name, field.Value, constants.FieldTypeText)
		return err
	case err != nil:
		return err
	default:
		_, err = tx.Exec(`UPDATE post_office_fields SET value = $2 WHERE field_id = $1`, fieldID, field.Value)
		return err
	}
}

func rollbackTx(tx *sql.Tx, requestID string) {

	if err := tx.Rollback(); err != nil {
		log.GetLogger().Debug(
			fmt.Sprintf("Failed to rollback transaction for edit request: %s", requestID), log.Error(err))
	}
}

func conflictError(requestID string, cause error) error {
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.CONFLICT_WRITE.Code,
		Message:     errors2.CONFLICT_WRITE.Message,
		Description: fmt.Sprintf("Transaction for edit request %s failed.", requestID),
	}, cause)
}

func scanEditRequestView(row map[string]interface{}) model.EditRequestView {

	view := model.EditRequestView{
		EditRequest: model.EditRequest{
			RequestID:   row["request_id"].(string),
			OfficeID:    row["office_id"].(string),
			SubmitterID: row["submitter_id"].(string),
			Changes:     row["changes"].(string),
			Status:      row["status"].(string),
		},
		OfficeName:     row["office_name"].(string),
		SubmitterName:  row["submitter_name"].(string),
		SubmitterEmail: row["submitter_email"].(string),
	}
	if createdAt, ok := row["created_at"].(time.Time); ok {
		view.CreatedAt = createdAt
	}

	diff, err := model.ParseChangeSet(view.Changes)
	if err != nil {
		// Unparsable blobs surface as "no changes visible" instead of
		// failing the fetch.
		view.ParseError = true
		view.Diff = model.ChangeSet{}
		return view
	}
	view.Diff = diff
	return view
}
