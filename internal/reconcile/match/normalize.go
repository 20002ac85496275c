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

import "strings"

// qualifiers are administrative suffix tokens that sources attach
// inconsistently ("KANDY" vs "KANDY BAZAAR").
var qualifiers = []string{"BAZAAR", "NORTH", "SOUTH", "EAST", "WEST", "TOWN", "CITY", "JUNCTION"}

// NormalizeKey canonicalizes a raw facility name into a comparable key:
// uppercased and trimmed.
func NormalizeKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// StripQualifier removes a single trailing qualifier token from a normalized
// key. The token only counts as a qualifier when it is preceded by at least
// one other token, so a bare "NORTH" survives unmodified.
func StripQualifier(key string) string {
	for _, q := range qualifiers {
		if strings.HasSuffix(key, " "+q) {
			return strings.TrimSpace(strings.TrimSuffix(key, " "+q))
		}
	}
	return key
}

// Simplify is the stricter normalization used for cross-source comparison:
// qualifier stripping plus hyphen/underscore-to-space conversion and
// whitespace collapsing. Sources disagree on separators, so "KADU-WELA" and
// "KADU WELA" simplify to the same key.
func Simplify(key string) string {
	simplified := StripQualifier(key)
	simplified = separatorsToSpaces(simplified)
	return strings.Join(strings.Fields(simplified), " ")
}

// separatorsToSpaces converts hyphens and underscores to spaces without
// collapsing runs.
func separatorsToSpaces(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	return strings.ReplaceAll(s, "_", " ")
}

// stripAllWhitespace removes every whitespace character.
func stripAllWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
