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

// ScrapedTable is an insertion-ordered mapping from a normalized facility
// name to a 5-digit postal code. Iteration order is part of the matching
// contract: the partial and fuzzy tiers resolve ties in favor of the
// earlier-inserted key.
type ScrapedTable struct {
	keys   []string
	values map[string]string
}

// NewScrapedTable creates an empty source table.
func NewScrapedTable() *ScrapedTable {
	return &ScrapedTable{
		values: make(map[string]string),
	}
}

// Put inserts or overwrites an entry. A key keeps its original insertion
// position when overwritten.
func (t *ScrapedTable) Put(key, value string) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Get returns the value for an exact key.
func (t *ScrapedTable) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. Callers must not mutate the
// returned slice.
func (t *ScrapedTable) Keys() []string {
	return t.keys
}

// Len returns the number of entries.
func (t *ScrapedTable) Len() int {
	return len(t.keys)
}

// DistrictRow is one row of the PDF-derived district table: facility name,
// district code (2-3 uppercase letters), delivery flag ('S' or 'P') and a
// postal code that is either 5 digits or the sentinel "*".
type DistrictRow struct {
	Name         string `json:"name"`
	DistrictCode string `json:"distCode"`
	DeliveryFlag string `json:"sp"`
	PostalCode   string `json:"postcode"`
}

// Report summarizes one reconciliation pass. Matched + Unmatched == Scanned
// for every run.
type Report struct {
	Scanned   int `json:"scanned"`
	Matched   int `json:"matched"`
	Unmatched int `json:"unmatched"`
}
