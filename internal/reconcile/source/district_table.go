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
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/slpost/postal-directory-service/internal/reconcile/model"
)

// districtRowPattern matches one fixed-column row of the text dump extracted
// from the national postal-codes PDF: facility name, district code (2-3
// uppercase letters), delivery flag (S or P), postal code (5 digits or the
// "unavailable" sentinel "*"). Lines that do not match (page headers, column
// titles, hyphenation artifacts) are skipped.
var districtRowPattern = regexp.MustCompile(`^(.+?)\s+([A-Z]{2,3})\s+(S|P)\s+(\d{5}|\*)$`)

// ReadDistrictTable parses the PDF text dump into district rows, preserving
// document order.
func ReadDistrictTable(r io.Reader) ([]model.DistrictRow, error) {

	var rows []model.DistrictRow
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := districtRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rows = append(rows, model.DistrictRow{
			Name:         strings.TrimSpace(m[1]),
			DistrictCode: m[2],
			DeliveryFlag: m[3],
			PostalCode:   m[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadDistrictTable reads the district table from a file.
func LoadDistrictTable(path string) ([]model.DistrictRow, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDistrictTable(f)
}
