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

	dirmodel "github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/reconcile/match"
	"github.com/slpost/postal-directory-service/internal/reconcile/model"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// SnapshotStore loads the canonical directory into memory and persists
// resolved attributes in one bulk flush after a run.
type SnapshotStore interface {
	LoadSnapshot() ([]dirmodel.PostOffice, error)
	FlushResolved(offices []dirmodel.PostOffice) error
}

// ReconcileServiceInterface defines the reconciliation driver.
type ReconcileServiceInterface interface {
	Run(scraped *model.ScrapedTable, district []model.DistrictRow, dryRun bool) (model.Report, model.Report, error)
}

// ReconcileService is the default implementation. It is an offline batch
// driver: one sequential pass per source table, no shared mutable state
// outside the snapshot it owns for the duration of the run.
type ReconcileService struct {
	store SnapshotStore
}

// NewReconcileService returns a driver bound to the given snapshot store.
func NewReconcileService(store SnapshotStore) ReconcileServiceInterface {
	return &ReconcileService{store: store}
}

// Run loads the canonical snapshot, applies the scraped-table pass and the
// district-table pass in order, and flushes every modified record once.
// Source tables are read-only throughout.
func (s *ReconcileService) Run(scraped *model.ScrapedTable, district []model.DistrictRow, dryRun bool) (model.Report, model.Report, error) {

	logger := log.GetLogger()

	offices, err := s.store.LoadSnapshot()
	if err != nil {
		return model.Report{}, model.Report{}, err
	}
	logger.Info(fmt.Sprintf("Loaded canonical snapshot of %d offices", len(offices)))

	changed := make(map[string]bool)

	var scrapedReport model.Report
	if scraped != nil {
		scrapedReport = ScrapedPass(offices, scraped, changed)
		logger.Info("Scraped-table pass finished",
			log.Int("scanned", scrapedReport.Scanned),
			log.Int("matched", scrapedReport.Matched),
			log.Int("unmatched", scrapedReport.Unmatched))
	}

	var districtReport model.Report
	if len(district) > 0 {
		districtReport = DistrictPass(offices, district, changed)
		logger.Info("District-table pass finished",
			log.Int("scanned", districtReport.Scanned),
			log.Int("matched", districtReport.Matched),
			log.Int("unmatched", districtReport.Unmatched))
	}

	if dryRun {
		logger.Info("Dry run: skipping persistence flush", log.Int("modified", len(changed)))
		return scrapedReport, districtReport, nil
	}

	modified := make([]dirmodel.PostOffice, 0, len(changed))
	for i := range offices {
		if changed[offices[i].OfficeID] {
			modified = append(modified, offices[i])
		}
	}
	if err := s.store.FlushResolved(modified); err != nil {
		return scrapedReport, districtReport, err
	}
	logger.Info(fmt.Sprintf("Flushed %d reconciled offices", len(modified)))

	return scrapedReport, districtReport, nil
}

// ScrapedPass fills missing postal codes from the scraped single-attribute
// table. Only records without a usable postal code are considered; a match
// assigns the resolved code in full or not at all.
func ScrapedPass(offices []dirmodel.PostOffice, table *model.ScrapedTable, changed map[string]bool) model.Report {

	var report model.Report
	for i := range offices {
		if !missingPostalCode(offices[i].PostalCode) {
			continue
		}
		report.Scanned++

		code, ok := match.Match(offices[i].Name, table)
		if !ok {
			report.Unmatched++
			continue
		}
		offices[i].PostalCode = code
		changed[offices[i].OfficeID] = true
		report.Matched++
	}
	return report
}

// DistrictPass reconciles against the dual-attribute district table. Every
// record is scanned because the district code is authoritative and is
// overwritten on any match; the postal code is only filled when missing and
// the source value is not the "unavailable" sentinel. Both assignments from
// a single match are applied together.
func DistrictPass(offices []dirmodel.PostOffice, rows []model.DistrictRow, changed map[string]bool) model.Report {

	var report model.Report
	for i := range offices {
		report.Scanned++

		row, ok := match.MatchDistrictRow(offices[i].Name, rows)
		if !ok {
			report.Unmatched++
			continue
		}
		report.Matched++

		if missingPostalCode(offices[i].PostalCode) && row.PostalCode != constants.UnavailablePostalCode {
			offices[i].PostalCode = row.PostalCode
		}
		offices[i].SetField(constants.DistrictCodeFieldName, row.DistrictCode, constants.FieldTypeText)
		changed[offices[i].OfficeID] = true
	}
	return report
}

// missingPostalCode reports whether a stored code counts as unknown: empty,
// whitespace, or the legacy placeholder.
func missingPostalCode(code string) bool {
	return strings.TrimSpace(code) == "" || code == constants.PlaceholderPostalCode
}
