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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirmodel "github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/reconcile/model"
	"github.com/slpost/postal-directory-service/internal/system/constants"
)

type fakeSnapshotStore struct {
	offices []dirmodel.PostOffice
	flushed []dirmodel.PostOffice
	flushes int
}

func (f *fakeSnapshotStore) LoadSnapshot() ([]dirmodel.PostOffice, error) {
	return f.offices, nil
}

func (f *fakeSnapshotStore) FlushResolved(offices []dirmodel.PostOffice) error {
	f.flushed = offices
	f.flushes++
	return nil
}

func scrapedTableOf(pairs ...[2]string) *model.ScrapedTable {
	table := model.NewScrapedTable()
	for _, p := range pairs {
		table.Put(p[0], p[1])
	}
	return table
}

func Test_ScrapedPass(t *testing.T) {

	offices := []dirmodel.PostOffice{
		{OfficeID: "1", Name: "Colombo", PostalCode: "00100"},
		{OfficeID: "2", Name: "Kandy", PostalCode: ""},
		{OfficeID: "3", Name: "Matara", PostalCode: constants.PlaceholderPostalCode},
		{OfficeID: "4", Name: "Unknownville", PostalCode: ""},
	}
	table := scrapedTableOf([2]string{"KANDY", "20000"}, [2]string{"MATARA", "81000"})

	changed := map[string]bool{}
	report := ScrapedPass(offices, table, changed)

	// Records that already carry a code are not scanned at all.
	assert.Equal(t, 3, report.Scanned)
	assert.Equal(t, 2, report.Matched)
	assert.Equal(t, 1, report.Unmatched)
	assert.Equal(t, report.Scanned, report.Matched+report.Unmatched)

	assert.Equal(t, "00100", offices[0].PostalCode)
	assert.Equal(t, "20000", offices[1].PostalCode)
	assert.Equal(t, "81000", offices[2].PostalCode)
	assert.Equal(t, "", offices[3].PostalCode)
	assert.Equal(t, map[string]bool{"2": true, "3": true}, changed)
}

func Test_DistrictPass(t *testing.T) {

	offices := []dirmodel.PostOffice{
		{OfficeID: "1", Name: "Kandy", PostalCode: "20000"},
		{OfficeID: "2", Name: "Nugegoda", PostalCode: ""},
		{OfficeID: "3", Name: "Badulla", PostalCode: ""},
		{OfficeID: "4", Name: "Unknownville", PostalCode: ""},
	}
	rows := []model.DistrictRow{
		{Name: "KANDY", DistrictCode: "KY", DeliveryFlag: "S", PostalCode: "20000"},
		{Name: "NUGEGODA", DistrictCode: "CO", DeliveryFlag: "P", PostalCode: "10250"},
		{Name: "BADULLA", DistrictCode: "BD", DeliveryFlag: "S", PostalCode: constants.UnavailablePostalCode},
	}

	changed := map[string]bool{}
	report := DistrictPass(offices, rows, changed)

	// Every record is scanned: district codes are authoritative.
	assert.Equal(t, 4, report.Scanned)
	assert.Equal(t, 3, report.Matched)
	assert.Equal(t, 1, report.Unmatched)

	t.Run("District_code_assigned_on_every_match", func(t *testing.T) {
		for i, want := range []string{"KY", "CO", "BD"} {
			field := offices[i].Field(constants.DistrictCodeFieldName)
			require.NotNil(t, field, "office %d", i)
			assert.Equal(t, want, field.Value)
		}
		assert.Nil(t, offices[3].Field(constants.DistrictCodeFieldName))
	})

	t.Run("Postal_code_only_fills_gaps", func(t *testing.T) {
		// Present code is never overwritten.
		assert.Equal(t, "20000", offices[0].PostalCode)
		// Missing code is filled from the source.
		assert.Equal(t, "10250", offices[1].PostalCode)
		// The unavailable sentinel never enters the store.
		assert.Equal(t, "", offices[2].PostalCode)
	})
}

func Test_Run_FlushesOnce(t *testing.T) {

	store := &fakeSnapshotStore{offices: []dirmodel.PostOffice{
		{OfficeID: "1", Name: "Kandy", PostalCode: ""},
		{OfficeID: "2", Name: "Colombo", PostalCode: "00100"},
	}}
	table := scrapedTableOf([2]string{"KANDY", "20000"})
	rows := []model.DistrictRow{
		{Name: "KANDY", DistrictCode: "KY", DeliveryFlag: "S", PostalCode: "20000"},
	}

	driver := NewReconcileService(store)
	scrapedReport, districtReport, err := driver.Run(table, rows, false)
	require.NoError(t, err)

	assert.Equal(t, 1, scrapedReport.Scanned)
	assert.Equal(t, 2, districtReport.Scanned)
	assert.Equal(t, 1, store.flushes)
	// Only the modified record reaches the flush.
	require.Len(t, store.flushed, 1)
	assert.Equal(t, "1", store.flushed[0].OfficeID)
	assert.Equal(t, "20000", store.flushed[0].PostalCode)
}

func Test_Run_DryRunSkipsFlush(t *testing.T) {

	store := &fakeSnapshotStore{offices: []dirmodel.PostOffice{
		{OfficeID: "1", Name: "Kandy", PostalCode: ""},
	}}
	table := scrapedTableOf([2]string{"KANDY", "20000"})

	driver := NewReconcileService(store)
	report, _, err := driver.Run(table, nil, true)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Matched)
	assert.Equal(t, 0, store.flushes)
}

func Test_Run_NoSources(t *testing.T) {

	store := &fakeSnapshotStore{offices: []dirmodel.PostOffice{
		{OfficeID: "1", Name: "Kandy", PostalCode: ""},
	}}

	driver := NewReconcileService(store)
	scrapedReport, districtReport, err := driver.Run(nil, nil, false)
	require.NoError(t, err)

	assert.Zero(t, scrapedReport.Scanned)
	assert.Zero(t, districtReport.Scanned)
	assert.Empty(t, store.flushed)
}
