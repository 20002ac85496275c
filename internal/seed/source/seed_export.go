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

	"github.com/slpost/postal-directory-service/internal/seed/model"
)

// ReadSeedExport decodes a seed export document: a JSON array of
// post-office entries. Filtering of unusable entries (missing or
// placeholder postal codes) belongs to the import service, so every entry
// comes back as-is.
func ReadSeedExport(r io.Reader) ([]model.SeedRecord, error) {

	dec := json.NewDecoder(r)

	var records []model.SeedRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to read seed export: %w", err)
	}
	return records, nil
}

// LoadSeedExport reads the seed export from a file.
func LoadSeedExport(path string) ([]model.SeedRecord, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSeedExport(f)
}
