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
	"fmt"

	"github.com/google/uuid"

	dirmodel "github.com/slpost/postal-directory-service/internal/directory/model"
	dirstore "github.com/slpost/postal-directory-service/internal/directory/store"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// ReconcileStore is the persistence adapter for the offline reconciliation
// driver. It satisfies service.SnapshotStore.
type ReconcileStore struct{}

// NewReconcileStore returns a store backed by the configured datasource.
func NewReconcileStore() *ReconcileStore {
	return &ReconcileStore{}
}

// LoadSnapshot reads every canonical record with its attribute fields.
func (s *ReconcileStore) LoadSnapshot() ([]dirmodel.PostOffice, error) {

	offices, err := dirstore.GetAllOffices("")
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECONCILE_SNAPSHOT.Code,
			Message:     errors2.RECONCILE_SNAPSHOT.Message,
			Description: "Failed to load the canonical directory snapshot.",
		}, err)
	}
	return offices, nil
}

// FlushResolved persists every modified record in a single transaction:
// postal code on the office row plus an upsert of the district-code field.
func (s *ReconcileStore) FlushResolved(offices []dirmodel.PostOffice) error {

	if len(offices) == 0 {
		return nil
	}

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for the reconciliation flush."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECONCILE_FLUSH.Code,
			Message:     errors2.RECONCILE_FLUSH.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := "Failed to begin transaction for the reconciliation flush."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.RECONCILE_FLUSH.Code,
			Message:     errors2.RECONCILE_FLUSH.Message,
			Description: errorMsg,
		}, err)
	}

	updateOffice := `UPDATE post_offices SET postal_code = $2, updated_at = NOW() WHERE office_id = $1`
	upsertField := `INSERT INTO post_office_fields (field_id, office_id, name, value, field_type)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (office_id, name) DO UPDATE SET value = EXCLUDED.value`

	for i := range offices {
		if _, err = tx.Exec(updateOffice, offices[i].OfficeID, offices[i].PostalCode); err != nil {
			return rollbackFlush(tx, offices[i].OfficeID, err)
		}
		for _, field := range offices[i].Fields {
			if field.Name != constants.DistrictCodeFieldName {
				continue
			}
			if _, err = tx.Exec(upsertField, uuid.New().String(), offices[i].OfficeID,
				field.Name, field.Value, field.FieldType); err != nil {
				return rollbackFlush(tx, offices[i].OfficeID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.CONFLICT_WRITE.Code,
			Message:     errors2.CONFLICT_WRITE.Message,
			Description: "Reconciliation flush transaction failed to commit.",
		}, err)
	}
	logger.Info(fmt.Sprintf("Reconciliation flush committed for %d offices", len(offices)))
	return nil
}

func rollbackFlush(tx interface{ Rollback() error }, officeID string, cause error) error {

	logger := log.GetLogger()
	if errRollback := tx.Rollback(); errRollback != nil {
		logger.Debug("Failed to rollback reconciliation flush", log.Error(errRollback))
	}
	errorMsg := fmt.Sprintf("Failed to flush reconciled attributes for office: %s", officeID)
	logger.Debug(errorMsg, log.Error(cause))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.RECONCILE_FLUSH.Code,
		Message:     errors2.RECONCILE_FLUSH.Message,
		Description: errorMsg,
	}, cause)
}
