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
	"time"

	"github.com/google/uuid"

	model "github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// GetAllOffices retrieves canonical records with their fields. search, when
// non-empty, filters on a case-insensitive name substring or a postal-code
// prefix.
func GetAllOffices(search string) ([]model.PostOffice, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching post offices."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	query := `SELECT office_id, name, postal_code, created_at, updated_at FROM post_offices ORDER BY name`
	args := []interface{}{}
	if search != "" {
		query = `SELECT office_id, name, postal_code, created_at, updated_at FROM post_offices
				WHERE name ILIKE '%' || $1 || '%' OR postal_code LIKE $1 || '%' ORDER BY name`
		args = append(args, search)
	}

	results, err := dbClient.ExecuteQuery(query, args...)
	if err != nil {
		errorMsg := "Failed to execute query for fetching post offices."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}

	offices := make([]model.PostOffice, 0, len(results))
	index := make(map[string]int, len(results))
	for _, row := range results {
		office := scanOffice(row)
		index[office.OfficeID] = len(offices)
		offices = append(offices, office)
	}
	if len(offices) == 0 {
		return offices, nil
	}

	fieldRows, err := dbClient.ExecuteQuery(
		`SELECT field_id, office_id, name, value, field_type FROM post_office_fields ORDER BY created_at`)
	if err != nil {
		errorMsg := "Failed to execute query for fetching post office fields."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}
	for _, row := range fieldRows {
		field := scanField(row)
		if pos, ok := index[field.OfficeID]; ok {
			offices[pos].Fields = append(offices[pos].Fields, field)
		}
	}
	return offices, nil
}

// GetOfficeByID retrieves one canonical record with its fields, or nil when
// absent.
func GetOfficeByID(officeID string) (*model.PostOffice, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching post office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		`SELECT office_id, name, postal_code, created_at, updated_at FROM post_offices WHERE office_id = $1`,
		officeID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching post office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	office := scanOffice(results[0])
	fieldRows, err := dbClient.ExecuteQuery(
		`SELECT field_id, office_id, name, value, field_type FROM post_office_fields
			WHERE office_id = $1 ORDER BY created_at`, officeID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching fields of post office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_OFFICES.Code,
			Message:     errors2.FETCH_OFFICES.Message,
			Description: errorMsg,
		}, err)
	}
	for _, row := range fieldRows {
		office.Fields = append(office.Fields, scanField(row))
	}
	return &office, nil
}

// CreateOffice inserts a canonical record and its dynamic fields in one
// transaction.
func CreateOffice(office model.PostOffice) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_OFFICE.Code,
			Message:     errors2.ADD_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for inserting post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_OFFICE.Code,
			Message:     errors2.ADD_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}

	_, err = tx.Exec(`INSERT INTO post_offices (office_id, name, postal_code) VALUES ($1, $2, $3)`,
		office.OfficeID, office.Name, office.PostalCode)
	if err == nil {
		for _, field := range office.Fields {
			_, err = tx.Exec(
				`INSERT INTO post_office_fields (field_id, office_id, name, value, field_type)
					VALUES ($1, $2, $3, $4, $5)`,
				uuid.New().String(), office.OfficeID, field.Name, field.Value, field.FieldType)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback inserting post office", log.Error(errRollback))
		}
		errorMsg := fmt.Sprintf("Failed to execute insert for post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_OFFICE.Code,
			Message:     errors2.ADD_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Successfully inserted post office: %s", office.OfficeID))
	return tx.Commit()
}

// UpdateOffice replaces the core attributes and the full dynamic field set
// of a record in one transaction. The admin edit surface submits the
// complete field list, unlike the sparse edit-request diff.
func UpdateOffice(office model.PostOffice) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_OFFICE.Code,
			Message:     errors2.UPDATE_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	tx, err := dbClient.BeginTx()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to begin transaction for updating post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_OFFICE.Code,
			Message:     errors2.UPDATE_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}

	_, err = tx.Exec(`UPDATE post_offices SET name = $2, postal_code = $3, updated_at = NOW() WHERE office_id = $1`,
		office.OfficeID, office.Name, office.PostalCode)
	if err == nil {
		_, err = tx.Exec(`DELETE FROM post_office_fields WHERE office_id = $1`, office.OfficeID)
	}
	if err == nil {
		for _, field := range office.Fields {
			_, err = tx.Exec(
				`INSERT INTO post_office_fields (field_id, office_id, name, value, field_type)
					VALUES ($1, $2, $3, $4, $5)`,
				uuid.New().String(), office.OfficeID, field.Name, field.Value, field.FieldType)
			if err != nil {
				break
			}
		}
	}
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Debug("Failed to rollback updating post office", log.Error(errRollback))
		}
		errorMsg := fmt.Sprintf("Failed to execute update for post office: %s", office.OfficeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_OFFICE.Code,
			Message:     errors2.UPDATE_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Successfully updated post office: %s", office.OfficeID))
	return tx.Commit()
}

// DeleteOffice removes a canonical record. Attribute fields and edit
// requests referencing the record go with it through the cascade
// constraints.
func DeleteOffice(officeID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting post office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_OFFICE.Code,
			Message:     errors2.DELETE_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(`DELETE FROM post_offices WHERE office_id = $1 RETURNING office_id`, officeID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute delete for post office: %s", officeID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_OFFICE.Code,
			Message:     errors2.DELETE_OFFICE.Message,
			Description: errorMsg,
		}, err)
	}

	logger.Info(fmt.Sprintf("Successfully deleted post office: %s", officeID))
	return nil
}

func scanOffice(row map[string]interface{}) model.PostOffice {

	office := model.PostOffice{
		OfficeID:   row["office_id"].(string),
		Name:       row["name"].(string),
		PostalCode: row["postal_code"].(string),
	}
	if createdAt, ok := row["created_at"].(time.Time); ok {
		office.CreatedAt = createdAt
	}
	if updatedAt, ok := row["updated_at"].(time.Time); ok {
		office.UpdatedAt = updatedAt
	}
	return office
}

func scanField(row map[string]interface{}) model.AttributeField {

	return model.AttributeField{
		FieldID:   row["field_id"].(string),
		OfficeID:  row["office_id"].(string),
		Name:      row["name"].(string),
		Value:     row["value"].(string),
		FieldType: row["field_type"].(string),
	}
}
