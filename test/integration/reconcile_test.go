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

package integration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dirmodel "github.com/slpost/postal-directory-service/internal/directory/model"
	dirservice "github.com/slpost/postal-directory-service/internal/directory/service"
	"github.com/slpost/postal-directory-service/internal/reconcile/model"
	"github.com/slpost/postal-directory-service/internal/reconcile/service"
	"github.com/slpost/postal-directory-service/internal/reconcile/store"
	"github.com/slpost/postal-directory-service/internal/system/constants"
)

func Test_ReconcileAgainstStore(t *testing.T) {

	officeService := dirservice.GetOfficeService()
	suffix := time.Now().UnixNano()

	// One record missing its code, one already resolved.
	missing, err := officeService.CreateOffice(dirmodel.OfficeUpsertRequest{
		Name:       fmt.Sprintf("HORANA-%d", suffix),
		PostalCode: "N/A",
	})
	require.NoError(t, err)
	resolved, err := officeService.CreateOffice(dirmodel.OfficeUpsertRequest{
		Name:       fmt.Sprintf("PANADURA-%d", suffix),
		PostalCode: "12500",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = officeService.DeleteOffice(missing.OfficeID)
		_ = officeService.DeleteOffice(resolved.OfficeID)
	})

	scraped := model.NewScrapedTable()
	scraped.Put(fmt.Sprintf("HORANA-%d", suffix), "12400")
	scraped.Put(fmt.Sprintf("PANADURA-%d", suffix), "99999")

	rows := []model.DistrictRow{
		{Name: fmt.Sprintf("HORANA-%d", suffix), DistrictCode: "KT", DeliveryFlag: "S", PostalCode: "12400"},
		{Name: fmt.Sprintf("PANADURA-%d", suffix), DistrictCode: "KT", DeliveryFlag: "P", PostalCode: "12500"},
	}

	driver := service.NewReconcileService(store.NewReconcileStore())
	scrapedReport, districtReport, err := driver.Run(scraped, rows, false)
	require.NoError(t, err)

	assert.Equal(t, scrapedReport.Scanned, scrapedReport.Matched+scrapedReport.Unmatched)
	assert.Equal(t, districtReport.Scanned, districtReport.Matched+districtReport.Unmatched)

	t.Run("Missing_code_filled_and_persisted", func(t *testing.T) {
		fetched, err := officeService.GetOffice(missing.OfficeID)
		require.NoError(t, err)
		assert.Equal(t, "12400", fetched.PostalCode)

		distCode := fetched.Field(constants.DistrictCodeFieldName)
		require.NotNil(t, distCode)
		assert.Equal(t, "KT", distCode.Value)
	})

	t.Run("Existing_code_never_overwritten", func(t *testing.T) {
		fetched, err := officeService.GetOffice(resolved.OfficeID)
		require.NoError(t, err)
		assert.Equal(t, "12500", fetched.PostalCode)

		// District code is still assigned on the all-records pass.
		distCode := fetched.Field(constants.DistrictCodeFieldName)
		require.NotNil(t, distCode)
		assert.Equal(t, "KT", distCode.Value)
	})
}
