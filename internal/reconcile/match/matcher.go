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
	"strings"

	"github.com/slpost/postal-directory-service/internal/reconcile/model"
)

// maxFuzzyDistance is exclusive: a fuzzy candidate qualifies only when its
// edit distance is strictly below this bound, i.e. at most 2.
const maxFuzzyDistance = 3

// minFuzzyLength is exclusive: names whose simplified form is this long or
// shorter are never fuzzy-matched. Short names produce too many near misses.
const minFuzzyLength = 5

// fuzzyLengthPrune skips candidate pairs whose simplified lengths differ by
// more than this many characters before computing the full distance.
const fuzzyLengthPrune = 2

// Match resolves a target facility name against the scraped source table
// through an ordered cascade of strategies. The first tier that yields a
// result wins, irrespective of how close a lower tier's candidate might be.
func Match(targetName string, source *model.ScrapedTable) (string, bool) {

	target := NormalizeKey(targetName)

	// Tier 1: exact key.
	if code, ok := source.Get(target); ok {
		return code, true
	}

	// Tier 2: the target kept its qualifier while the source dropped it.
	if code, ok := source.Get(StripQualifier(target)); ok {
		return code, true
	}

	// Tier 3: partial. First key in table order wins; candidates are not
	// ranked, so the outcome depends on source construction order.
	for _, key := range source.Keys() {
		if partialMatch(key, target) {
			code, _ := source.Get(key)
			return code, true
		}
	}

	// Tier 4: fuzzy over the simplified forms.
	targetSimp := Simplify(target)
	if len(targetSimp) <= minFuzzyLength {
		return "", false
	}

	bestCode := ""
	bestDist := maxFuzzyDistance
	found := false
	for _, key := range source.Keys() {
		keySimp := Simplify(key)
		if absInt(len(keySimp)-len(targetSimp)) > fuzzyLengthPrune {
			continue
		}
		// Strict improvement only: an equal-distance candidate seen later
		// never displaces the first one.
		if dist := Distance(keySimp, targetSimp); dist < bestDist {
			bestDist = dist
			bestCode, _ = source.Get(key)
			found = true
		}
	}
	return bestCode, found
}

// MatchDistrictRow resolves a target name against the dual-attribute PDF
// table. Exact comparison runs on both the normalized and the simplified
// forms before the fuzzy sweep.
func MatchDistrictRow(targetName string, rows []model.DistrictRow) (*model.DistrictRow, bool) {

	target := NormalizeKey(targetName)
	targetSimp := Simplify(target)

	var best *model.DistrictRow
	bestDist := maxFuzzyDistance
	for i := range rows {
		rowKey := NormalizeKey(rows[i].Name)
		if rowKey == target || Simplify(rowKey) == targetSimp {
			return &rows[i], true
		}

		rowSimp := Simplify(rowKey)
		if absInt(len(rowSimp)-len(targetSimp)) > fuzzyLengthPrune {
			continue
		}
		if dist := Distance(rowSimp, targetSimp); dist < bestDist && len(targetSimp) > minFuzzyLength {
			bestDist = dist
			best = &rows[i]
		}
	}
	return best, best != nil
}

// partialMatch reports whether a source key and the target refer to the same
// facility under one of the loose containment rules.
func partialMatch(key, target string) bool {
	switch {
	case key == target+" BAZAAR":
		return true
	case key == target+" TOWN":
		return true
	case strings.HasPrefix(key, target+" "):
		return true
	case strings.HasPrefix(target, key+" "):
		return true
	case key == separatorsToSpaces(target):
		return true
	case stripAllWhitespace(key) == stripAllWhitespace(target):
		return true
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
