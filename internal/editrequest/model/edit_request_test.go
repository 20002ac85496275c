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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ChangeSet_RoundTrip(t *testing.T) {

	changes := ChangeSet{
		Name:       "Kandy Central",
		PostalCode: "20000",
		Fields:     []FieldProposal{{Name: "Phone", Value: "081-2222222"}},
	}

	encoded, err := changes.Encode()
	require.NoError(t, err)

	decoded, err := ParseChangeSet(encoded)
	require.NoError(t, err)
	assert.Equal(t, changes, decoded)
}

func Test_ChangeSet_IsEmpty(t *testing.T) {

	assert.True(t, ChangeSet{}.IsEmpty())
	assert.False(t, ChangeSet{Name: "Kandy"}.IsEmpty())
	assert.False(t, ChangeSet{PostalCode: "20000"}.IsEmpty())
	assert.False(t, ChangeSet{Fields: []FieldProposal{{Name: "Phone", Value: "x"}}}.IsEmpty())
}

func Test_ParseChangeSet_SparsePatch(t *testing.T) {

	decoded, err := ParseChangeSet(`{"postalCode":"20000"}`)
	require.NoError(t, err)
	assert.Empty(t, decoded.Name)
	assert.Equal(t, "20000", decoded.PostalCode)
	assert.Empty(t, decoded.Fields)
}

func Test_ParseChangeSet_Unparsable(t *testing.T) {

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseChangeSet(`not json`)
		assert.Error(t, err)
	})

	t.Run("Unknown_key", func(t *testing.T) {
		_, err := ParseChangeSet(`{"postalcode":"20000"}`)
		assert.Error(t, err)
	})

	t.Run("Wrong_value_type", func(t *testing.T) {
		_, err := ParseChangeSet(`{"postalCode":20000}`)
		assert.Error(t, err)
	})
}
