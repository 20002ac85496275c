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

// SeedRecord is one entry of the exported post-office dataset: raw name,
// the postal code under the export's legacy key, and an optional free-form
// delivery flag.
type SeedRecord struct {
	Name       string `json:"name"`
	PostalCode string `json:"postcode"`
	Delivery   string `json:"delivery,omitempty"`
}

// ImportReport summarizes one seed import run.
type ImportReport struct {
	Upserted     int
	Skipped      int
	Failed       int
	AdminCreated bool
}

// AdminBootstrap describes the default administrator created alongside the
// seed data. An empty Password skips the bootstrap entirely.
type AdminBootstrap struct {
	Name     string
	Email    string
	Password string
}
