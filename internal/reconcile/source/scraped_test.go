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

package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReadScrapedTable(t *testing.T) {

	doc := `{
		"COLOMBO": "00100",
		"KANDY": "20000",
		"GALLE": "80000"
	}`

	table, err := ReadScrapedTable(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	code, ok := table.Get("KANDY")
	require.True(t, ok)
	assert.Equal(t, "20000", code)
}

func Test_ReadScrapedTable_PreservesDocumentOrder(t *testing.T) {

	// Key order drives partial-match precedence, so the decoder must keep
	// the document order rather than a map's.
	doc := `{"ZEBRA": "1", "ALPHA": "2", "MIDDLE": "3"}`

	table, err := ReadScrapedTable(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"ZEBRA", "ALPHA", "MIDDLE"}, table.Keys())
}

func Test_ReadScrapedTable_RejectsNonObject(t *testing.T) {

	_, err := ReadScrapedTable(strings.NewReader(`["COLOMBO"]`))
	assert.Error(t, err)

	_, err = ReadScrapedTable(strings.NewReader(`{"COLOMBO": 100}`))
	assert.Error(t, err)
}
