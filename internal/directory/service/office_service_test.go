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

	model "github.com/slpost/postal-directory-service/internal/directory/model"
)

func Test_buildOffice(t *testing.T) {

	t.Run("Valid_payload", func(t *testing.T) {
		office, err := buildOffice("id-1", model.OfficeUpsertRequest{
			Name:       " Kandy ",
			PostalCode: " 20000 ",
			Fields: []model.FieldInput{
				{Name: "Phone", Value: "081-2222222"},
				{Name: " ", Value: "dropped"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Kandy", office.Name)
		assert.Equal(t, "20000", office.PostalCode)
		require.Len(t, office.Fields, 1)
		assert.Equal(t, "Phone", office.Fields[0].Name)
	})

	t.Run("Missing_name_or_code", func(t *testing.T) {
		_, err := buildOffice("id-1", model.OfficeUpsertRequest{Name: "Kandy"})
		assert.Error(t, err)

		_, err = buildOffice("id-1", model.OfficeUpsertRequest{PostalCode: "20000"})
		assert.Error(t, err)
	})

	t.Run("Legacy_placeholder_becomes_empty", func(t *testing.T) {
		office, err := buildOffice("id-1", model.OfficeUpsertRequest{
			Name:       "Kandy",
			PostalCode: "N/A",
		})
		require.NoError(t, err)
		assert.Equal(t, "", office.PostalCode)
	})

	t.Run("Duplicate_field_names_rejected", func(t *testing.T) {
		_, err := buildOffice("id-1", model.OfficeUpsertRequest{
			Name:       "Kandy",
			PostalCode: "20000",
			Fields: []model.FieldInput{
				{Name: "Phone", Value: "one"},
				{Name: "Phone", Value: "two"},
			},
		})
		assert.Error(t, err)
	})
}
