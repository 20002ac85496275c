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

	usermodel "github.com/slpost/postal-directory-service/internal/submitter/model"
	userstore "github.com/slpost/postal-directory-service/internal/submitter/store"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// SeedStore is the persistence adapter for the seed import: records are
// keyed on postal code, unlike the id-keyed admin surface. It satisfies
// service.ImportStore.
type SeedStore struct{}

// NewSeedStore returns a store backed by the configured datasource.
func NewSeedStore() *SeedStore {
	return &SeedStore{}
}

// UpsertOffice creates a canonical record for the postal code or renames
// the existing one, and reports whether a new record was created.
func (s *SeedStore) UpsertOffice(name, postalCode string) (string, bool, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for seeding postal code: %s", postalCode)
		logger.Debug(errorMsg, log.Error(err))
		return "", false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SEED_IMPORT.Code,
			Message:     errors2.SEED_IMPORT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		`SELECT office_id FROM post_offices WHERE postal_code = $1`, postalCode)
	if err != nil {
		return "", false, seedQueryError(postalCode, err)
	}

	if len(results) > 0 {
		officeID := results[0]["office_id"].(string)
		_, err = dbClient.ExecuteQuery(
			`UPDATE post_offices SET name = $2, updated_at = NOW() WHERE office_id = $1 RETURNING office_id`,
			officeID, name)
		if err != nil {
			return "", false, seedQueryError(postalCode, err)
		}
		return officeID, false, nil
	}

	officeID := uuid.New().String()
	_, err = dbClient.ExecuteQuery(
		`INSERT INTO post_offices (office_id, name, postal_code) VALUES ($1, $2, $3) RETURNING office_id`,
		officeID, name, postalCode)
	if err != nil {
		return "", false, seedQueryError(postalCode, err)
	}
	return officeID, true, nil
}

// UpsertDeliveryField sets the Delivery attribute of a record, updating the
// existing field in place when one exists.
func (s *SeedStore) UpsertDeliveryField(officeID, value string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for seeding delivery field of office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SEED_IMPORT.Code,
			Message:     errors2.SEED_IMPORT.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(
		`INSERT INTO post_office_fields (field_id, office_id, name, value, field_type)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (office_id, name) DO UPDATE SET value = EXCLUDED.value
			RETURNING field_id`,
		uuid.New().String(), officeID, constants.DeliveryFieldName, value, constants.FieldTypeText)
	if err != nil {
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.SEED_IMPORT.Code,
			Message:     errors2.SEED_IMPORT.Message,
			Description: fmt.Sprintf("Failed to upsert delivery field of office: %s", officeID),
		}, err)
	}
	return nil
}

// EnsureAdminUser creates the default administrator unless a user with the
// email already exists, and reports whether one was created.
func (s *SeedStore) EnsureAdminUser(name, email, passwordHash string) (bool, error) {

	existing, err := userstore.GetUserByEmail(email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	user := usermodel.User{
		UserID: uuid.New().String(),
		Name:   name,
		Email:  email,
		Role:   constants.RoleAdmin,
	}
	if err := userstore.AddUser(user, passwordHash); err != nil {
		return false, err
	}
	return true, nil
}

func seedQueryError(postalCode string, cause error) error {

	errorMsg := fmt.Sprintf("Failed to execute seed upsert for postal code: %s", postalCode)
	log.GetLogger().Debug(errorMsg, log.Error(cause))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.SEED_IMPORT.Code,
		Message:     errors2.SEED_IMPORT.Message,
		Description: errorMsg,
	}, cause)
}
