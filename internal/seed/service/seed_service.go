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
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/slpost/postal-directory-service/internal/seed/model"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// ImportStore persists seed records keyed on postal code and bootstraps the
// default administrator.
type ImportStore interface {
	UpsertOffice(name, postalCode string) (officeID string, created bool, err error)
	UpsertDeliveryField(officeID, value string) error
	EnsureAdminUser(name, email, passwordHash string) (bool, error)
}

// SeedServiceInterface defines the seed import driver.
type SeedServiceInterface interface {
	Run(records []model.SeedRecord, admin model.AdminBootstrap) (*model.ImportReport, error)
}

// SeedService is the default implementation.
type SeedService struct {
	store ImportStore
}

// NewSeedService returns a driver bound to the given import store.
func NewSeedService(store ImportStore) SeedServiceInterface {
	return &SeedService{store: store}
}

// Run upserts every usable seed record, keyed on postal code so re-running
// the import renames records instead of duplicating them. Entries without a
// real postal code are skipped, a failed entry is logged and does not stop
// the rest of the import. When the bootstrap carries a password, the
// default administrator is created unless the email is already taken.
func (s *SeedService) Run(records []model.SeedRecord, admin model.AdminBootstrap) (*model.ImportReport, error) {

	logger := log.GetLogger()
	report := &model.ImportReport{}

	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		postalCode := strings.TrimSpace(record.PostalCode)
		if name == "" || postalCode == "" || postalCode == constants.PlaceholderPostalCode {
			report.Skipped++
			continue
		}

		officeID, _, err := s.store.UpsertOffice(name, postalCode)
		if err != nil {
			logger.Warn(fmt.Sprintf("Failed to seed office %s (%s)", name, postalCode), log.Error(err))
			report.Failed++
			continue
		}
		if err := s.store.UpsertDeliveryField(officeID, NormalizeDelivery(record.Delivery)); err != nil {
			logger.Warn(fmt.Sprintf("Failed to seed delivery field of %s", name), log.Error(err))
			report.Failed++
			continue
		}
		report.Upserted++
	}
	logger.Info(fmt.Sprintf("Seed import finished: upserted=%d skipped=%d failed=%d",
		report.Upserted, report.Skipped, report.Failed))

	if admin.Password != "" {
		created, err := s.bootstrapAdmin(admin)
		if err != nil {
			return report, err
		}
		report.AdminCreated = created
	}
	return report, nil
}

func (s *SeedService) bootstrapAdmin(admin model.AdminBootstrap) (bool, error) {

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_USER.Code,
			Message:     errors2.ADD_USER.Message,
			Description: "Failed to hash the default administrator password.",
		}, err)
	}

	created, err := s.store.EnsureAdminUser(admin.Name, strings.ToLower(strings.TrimSpace(admin.Email)),
		string(passwordHash))
	if err != nil {
		return false, err
	}
	if created {
		log.GetLogger().Info("Created default administrator", log.String("email", admin.Email))
	}
	return created, nil
}

// NormalizeDelivery collapses the export's free-form delivery flag to a
// strict Yes/No, defaulting to No for anything unrecognized.
func NormalizeDelivery(raw string) string {

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y":
		return constants.DeliveryYes
	default:
		return constants.DeliveryNo
	}
}
