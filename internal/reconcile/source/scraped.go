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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/slpost/postal-directory-service/internal/reconcile/model"
)

// ReadScrapedTable decodes a scraped-codes JSON document (an object mapping
// normalized facility names to 5-digit codes) into an ordered source table.
// A plain map decode would lose the document's key order, which the partial
// and fuzzy matching tiers depend on, so the object is walked token by token.
func ReadScrapedTable(r io.Reader) (*model.ScrapedTable, error) {

	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read scraped table: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("scraped table must be a JSON object, got %v", tok)
	}

	table := model.NewScrapedTable()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read scraped table key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("scraped table key is not a string: %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read code for %q: %w", key, err)
		}
		table.Put(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read scraped table: %w", err)
	}
	return table, nil
}

// LoadScrapedTable reads the scraped table from a file.
func LoadScrapedTable(path string) (*model.ScrapedTable, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadScrapedTable(f)
}
