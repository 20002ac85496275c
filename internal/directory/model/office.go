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

import "time"

// PostOffice is the canonical record for one physical postal facility.
// PostalCode is a 5-digit string; the empty string means "unknown". The
// legacy "N/A" placeholder never enters new rows.
type PostOffice struct {
	OfficeID   string           `json:"officeId"`
	Name       string           `json:"name"`
	PostalCode string           `json:"postalCode"`
	Fields     []AttributeField `json:"fields"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// AttributeField is one dynamic attribute of a post office. Fields are
// unique by name per office and read back in insertion order.
type AttributeField struct {
	FieldID   string `json:"fieldId"`
	OfficeID  string `json:"officeId"`
	Name      string `json:"name"`
	Value     string `json:"value"`
	FieldType string `json:"type"`
}

// Field returns the attribute field with the given name, or nil.
func (o *PostOffice) Field(name string) *AttributeField {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			return &o.Fields[i]
		}
	}
	return nil
}

// SetField updates the named field in place or appends a new one, keeping
// the at-most-one-field-per-name invariant.
func (o *PostOffice) SetField(name, value, fieldType string) {
	if existing := o.Field(name); existing != nil {
		existing.Value = value
		return
	}
	o.Fields = append(o.Fields, AttributeField{
		OfficeID:  o.OfficeID,
		Name:      name,
		Value:     value,
		FieldType: fieldType,
	})
}

// OfficeUpsertRequest is the admin create/update payload.
type OfficeUpsertRequest struct {
	Name       string          `json:"name"`
	PostalCode string          `json:"postalCode"`
	Fields     []FieldInput    `json:"fields"`
}

// FieldInput is one dynamic field in an admin payload.
type FieldInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
