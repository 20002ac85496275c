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

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slpost/postal-directory-service/internal/reconcile/model"
)

func tableOf(pairs ...[2]string) *model.ScrapedTable {
	table := model.NewScrapedTable()
	for _, p := range pairs {
		table.Put(p[0], p[1])
	}
	return table
}

func Test_Match_ExactTier(t *testing.T) {

	table := tableOf([2]string{"COLOMBO", "00100"}, [2]string{"KANDY", "20000"})

	code, ok := Match("Colombo", table)
	require.True(t, ok)
	assert.Equal(t, "00100", code)
}

func Test_Match_SimplifiedTier(t *testing.T) {

	table := tableOf([2]string{"KANDY", "20000"})

	// The source dropped the qualifier that the canonical record kept.
	code, ok := Match("KANDY BAZAAR", table)
	require.True(t, ok)
	assert.Equal(t, "20000", code)
}

func Test_Match_ExactWinsOverLaterTiers(t *testing.T) {

	// Both an exact key and a near-identical fuzzy candidate exist; the
	// exact key must win regardless of table order.
	table := tableOf([2]string{"NUGEGODAA", "99999"}, [2]string{"NUGEGODA", "10250"})

	code, ok := Match("NUGEGODA", table)
	require.True(t, ok)
	assert.Equal(t, "10250", code)
}

func Test_Match_PartialTier(t *testing.T) {

	t.Run("Source_key_extends_target", func(t *testing.T) {
		table := tableOf([2]string{"DEHIWALA JUNCTION POST", "10350"})
		code, ok := Match("DEHIWALA", table)
		require.True(t, ok)
		assert.Equal(t, "10350", code)
	})

	t.Run("Target_extends_source_key", func(t *testing.T) {
		table := tableOf([2]string{"DEHIWALA", "10350"})
		code, ok := Match("DEHIWALA SUB OFFICE", table)
		require.True(t, ok)
		assert.Equal(t, "10350", code)
	})

	t.Run("Separator_variants_agree", func(t *testing.T) {
		table := tableOf([2]string{"KADU WELA", "10640"})
		code, ok := Match("KADU-WELA", table)
		require.True(t, ok)
		assert.Equal(t, "10640", code)
	})

	t.Run("Whitespace_stripped_forms_agree", func(t *testing.T) {
		table := tableOf([2]string{"KADUWELA", "10640"})
		code, ok := Match("KADU WELA", table)
		require.True(t, ok)
		assert.Equal(t, "10640", code)
	})

	t.Run("First_key_in_table_order_wins", func(t *testing.T) {
		table := tableOf(
			[2]string{"MATARA FORT", "81000"},
			[2]string{"MATARA BEACH", "81001"},
		)
		code, ok := Match("MATARA", table)
		require.True(t, ok)
		assert.Equal(t, "81000", code)
	})
}

func Test_Match_FuzzyTier(t *testing.T) {

	t.Run("Single_edit_typo_resolves", func(t *testing.T) {
		table := tableOf([2]string{"NUGEGOD", "10250"})
		code, ok := Match("NUGEGODA", table)
		require.True(t, ok)
		assert.Equal(t, "10250", code)
	})

	t.Run("Short_names_never_fuzzy_match", func(t *testing.T) {
		// GALLE simplifies to five characters, at the exclusive bound.
		table := tableOf([2]string{"GALE", "80000"})
		_, ok := Match("GALLE", table)
		assert.False(t, ok)
	})

	t.Run("Distance_bound_is_exclusive", func(t *testing.T) {
		// Three edits is outside the bound.
		table := tableOf([2]string{"NUGEGOXYZ", "99999"})
		_, ok := Match("NUGEGODA", table)
		assert.False(t, ok)
	})

	t.Run("Two_edits_still_match", func(t *testing.T) {
		table := tableOf([2]string{"AMBALANGODA", "80300"})
		code, ok := Match("AMBALANTOTA", table)
		require.True(t, ok)
		assert.Equal(t, "80300", code)
	})

	t.Run("Equal_distance_keeps_first_candidate", func(t *testing.T) {
		table := tableOf(
			[2]string{"HOMAGAMAXX", "10200"},
			[2]string{"HOMAGAMAYY", "10201"},
		)
		code, ok := Match("HOMAGAMA", table)
		require.True(t, ok)
		assert.Equal(t, "10200", code)
	})

	t.Run("Closer_candidate_displaces_earlier_one", func(t *testing.T) {
		table := tableOf(
			[2]string{"HOMAGAMAXX", "10200"},
			[2]string{"HOMAGAMAY", "10201"},
		)
		code, ok := Match("HOMAGAMA", table)
		require.True(t, ok)
		assert.Equal(t, "10201", code)
	})
}

func Test_Match_NoCandidate(t *testing.T) {

	table := tableOf([2]string{"COLOMBO", "00100"})
	_, ok := Match("ANURADHAPURA", table)
	assert.False(t, ok)
}

func Test_MatchDistrictRow(t *testing.T) {

	rows := []model.DistrictRow{
		{Name: "KANDY", DistrictCode: "KY", DeliveryFlag: "S", PostalCode: "20000"},
		{Name: "NUGEGODA", DistrictCode: "CO", DeliveryFlag: "P", PostalCode: "10250"},
		{Name: "BADULLA", DistrictCode: "BD", DeliveryFlag: "S", PostalCode: "*"},
	}

	t.Run("Exact_on_normalized_form", func(t *testing.T) {
		row, ok := MatchDistrictRow("kandy", rows)
		require.True(t, ok)
		assert.Equal(t, "KY", row.DistrictCode)
	})

	t.Run("Exact_on_simplified_form", func(t *testing.T) {
		row, ok := MatchDistrictRow("KANDY BAZAAR", rows)
		require.True(t, ok)
		assert.Equal(t, "KY", row.DistrictCode)
	})

	t.Run("Fuzzy_fallback", func(t *testing.T) {
		row, ok := MatchDistrictRow("NUGEGODDA", rows)
		require.True(t, ok)
		assert.Equal(t, "CO", row.DistrictCode)
	})

	t.Run("No_match", func(t *testing.T) {
		_, ok := MatchDistrictRow("TRINCOMALEE", rows)
		assert.False(t, ok)
	})
}
