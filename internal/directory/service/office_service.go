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
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	model "github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/directory/store"
	"github.com/slpost/postal-directory-service/internal/system/cache"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
)

// officeCache keeps hot single-record reads out of the database. Writes to a
// record invalidate its entry.
var officeCache = cache.NewCache(5 * time.Minute)

// InvalidateCachedOffice drops a record from the read cache. Callers that
// commit office mutations outside this service use it after commit.
func InvalidateCachedOffice(officeID string) {
	officeCache.Delete(officeID)
}

// OfficeServiceInterface defines the canonical directory service.
type OfficeServiceInterface interface {
	SearchOffices(query string) ([]model.PostOffice, error)
	GetOffice(officeID string) (*model.PostOffice, error)
	CreateOffice(req model.OfficeUpsertRequest) (*model.PostOffice, error)
	UpdateOffice(officeID string, req model.OfficeUpsertRequest) (*model.PostOffice, error)
	DeleteOffice(officeID string) error
}

// OfficeService is the default implementation.
type OfficeService struct{}

// GetOfficeService returns a new instance.
func GetOfficeService() OfficeServiceInterface {
	return &OfficeService{}
}

// SearchOffices lists the directory, optionally filtered by a name substring
// or postal-code prefix.
func (os *OfficeService) SearchOffices(query string) ([]model.PostOffice, error) {

	offices, err := store.GetAllOffices(strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	if len(offices) == 0 {
		return []model.PostOffice{}, nil
	}
	return offices, nil
}

// GetOffice retrieves one canonical record by id.
func (os *OfficeService) GetOffice(officeID string) (*model.PostOffice, error) {

	if cached, found := officeCache.Get(officeID); found {
		office := cached.(model.PostOffice)
		return &office, nil
	}

	office, err := store.GetOfficeByID(officeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, officeNotFoundError(officeID)
	}

	officeCache.Set(officeID, *office)
	return office, nil
}

// CreateOffice adds a new canonical record with its dynamic fields.
func (os *OfficeService) CreateOffice(req model.OfficeUpsertRequest) (*model.PostOffice, error) {

	office, err := buildOffice(uuid.New().String(), req)
	if err != nil {
		return nil, err
	}

	if err := store.CreateOffice(*office); err != nil {
		return nil, err
	}
	return office, nil
}

// UpdateOffice replaces the record's core attributes and field set.
func (os *OfficeService) UpdateOffice(officeID string, req model.OfficeUpsertRequest) (*model.PostOffice, error) {

	existing, err := store.GetOfficeByID(officeID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, officeNotFoundError(officeID)
	}

	office, err := buildOffice(officeID, req)
	if err != nil {
		return nil, err
	}

	if err := store.UpdateOffice(*office); err != nil {
		return nil, err
	}
	officeCache.Delete(officeID)
	return office, nil
}

// DeleteOffice removes the record, cascading to fields and edit requests.
func (os *OfficeService) DeleteOffice(officeID string) error {

	existing, err := store.GetOfficeByID(officeID)
	if err != nil {
		return err
	}
	if existing == nil {
		return officeNotFoundError(officeID)
	}

	if err := store.DeleteOffice(officeID); err != nil {
		return err
	}
	officeCache.Delete(officeID)
	return nil
}

// buildOffice validates an upsert payload and assembles the record. Field
// names must be unique within the payload; blank field values are dropped.
func buildOffice(officeID string, req model.OfficeUpsertRequest) (*model.PostOffice, error) {

	name := strings.TrimSpace(req.Name)
	postalCode := strings.TrimSpace(req.PostalCode)
	if name == "" || postalCode == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Name and postal code are required.",
		}, http.StatusBadRequest)
	}
	if postalCode == constants.PlaceholderPostalCode {
		// The legacy placeholder never enters the canonical store.
		postalCode = ""
	}

	office := &model.PostOffice{
		OfficeID:   officeID,
		Name:       name,
		PostalCode: postalCode,
	}
	seen := map[string]bool{}
	for _, field := range req.Fields {
		fieldName := strings.TrimSpace(field.Name)
		fieldValue := strings.TrimSpace(field.Value)
		if fieldName == "" || fieldValue == "" {
			continue
		}
		if seen[fieldName] {
			return nil, errors2.NewClientError(errors2.ErrorMessage{
				Code:        errors2.BAD_REQUEST.Code,
				Message:     errors2.BAD_REQUEST.Message,
				Description: "Duplicate field name: " + fieldName,
			}, http.StatusBadRequest)
		}
		seen[fieldName] = true
		office.Fields = append(office.Fields, model.AttributeField{
			OfficeID:  officeID,
			Name:      fieldName,
			Value:     fieldValue,
			FieldType: constants.FieldTypeText,
		})
	}
	return office, nil
}

func officeNotFoundError(officeID string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.OFFICE_NOT_FOUND.Code,
		Message:     errors2.OFFICE_NOT_FOUND.Message,
		Description: "No post office exists with id: " + officeID,
	}, http.StatusNotFound)
}
