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

	"github.com/slpost/postal-directory-service/internal/directory/model"
	"github.com/slpost/postal-directory-service/internal/directory/service"
)

func Test_OfficeLifecycle(t *testing.T) {

	officeService := service.GetOfficeService()
	name := fmt.Sprintf("Kandy-%d", time.Now().UnixNano())

	office, err := officeService.CreateOffice(model.OfficeUpsertRequest{
		Name:       name,
		PostalCode: "20000",
		Fields: []model.FieldInput{
			{Name: "Phone", Value: "081-2222222"},
			{Name: "Hours", Value: "8:30-17:00"},
		},
	})
	require.NoError(t, err, "Failed to create office")
	require.NotEmpty(t, office.OfficeID)

	t.Cleanup(func() {
		_ = officeService.DeleteOffice(office.OfficeID)
	})

	t.Run("Get_office_round_trip", func(t *testing.T) {
		fetched, err := officeService.GetOffice(office.OfficeID)
		require.NoError(t, err)
		assert.Equal(t, name, fetched.Name)
		assert.Equal(t, "20000", fetched.PostalCode)
		require.Len(t, fetched.Fields, 2)
	})

	t.Run("Search_by_name_substring", func(t *testing.T) {
		results, err := officeService.SearchOffices(name[:10])
		require.NoError(t, err)
		require.NotEmpty(t, results)
		found := false
		for _, r := range results {
			if r.OfficeID == office.OfficeID {
				found = true
			}
		}
		assert.True(t, found, "Created office missing from search results")
	})

	t.Run("Search_by_postal_code_prefix", func(t *testing.T) {
		results, err := officeService.SearchOffices("200")
		require.NoError(t, err)
		require.NotEmpty(t, results)
	})

	t.Run("Update_replaces_fields", func(t *testing.T) {
		updated, err := officeService.UpdateOffice(office.OfficeID, model.OfficeUpsertRequest{
			Name:       name,
			PostalCode: "20001",
			Fields: []model.FieldInput{
				{Name: "Phone", Value: "081-3333333"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "20001", updated.PostalCode)

		fetched, err := officeService.GetOffice(office.OfficeID)
		require.NoError(t, err)
		require.Len(t, fetched.Fields, 1)
		assert.Equal(t, "081-3333333", fetched.Fields[0].Value)
	})

	t.Run("Delete_cascades", func(t *testing.T) {
		require.NoError(t, officeService.DeleteOffice(office.OfficeID))
		_, err := officeService.GetOffice(office.OfficeID)
		assert.Error(t, err)
	})
}

func Test_GetOffice_NotFound(t *testing.T) {

	_, err := service.GetOfficeService().GetOffice("00000000-0000-0000-0000-000000000000")
	assert.Error(t, err)
}
