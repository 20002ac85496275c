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

import (
	"encoding/json"
	"strings"
	"time"
)

// FieldProposal is one proposed dynamic-field change inside a diff.
type FieldProposal struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ChangeSet is the structured form of an edit request's serialized diff: a
// sparse patch, not a full replacement. Empty Name/PostalCode mean "leave
// unchanged"; fields not listed are untouched.
type ChangeSet struct {
	Name       string          `json:"name,omitempty"`
	PostalCode string          `json:"postalCode,omitempty"`
	Fields     []FieldProposal `json:"fields,omitempty"`
}

// IsEmpty reports whether the change set proposes nothing.
func (c ChangeSet) IsEmpty() bool {
	return c.Name == "" && c.PostalCode == "" && len(c.Fields) == 0
}

// Encode serializes the change set for persistence.
func (c ChangeSet) Encode() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParseChangeSet decodes a persisted diff blob. The diff is parsed exactly
// once, at the lifecycle boundary; an undecodable blob yields an error that
// callers surface as an unparsable proposal ("no changes visible") rather
// than a failed fetch.
func ParseChangeSet(blob string) (ChangeSet, error) {

	var changes ChangeSet
	dec := json.NewDecoder(strings.NewReader(blob))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&changes); err != nil {
		return ChangeSet{}, err
	}
	return changes, nil
}

// EditRequest is a proposed change to exactly one canonical record.
type EditRequest struct {
	RequestID   string    `json:"requestId"`
	OfficeID    string    `json:"officeId"`
	SubmitterID string    `json:"submitterId"`
	Changes     string    `json:"-"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EditRequestView is the moderator-facing projection: the request joined
// with its office and submitter plus the parsed diff.
type EditRequestView struct {
	EditRequest
	Diff           ChangeSet `json:"changes"`
	ParseError     bool      `json:"parseError,omitempty"`
	OfficeName     string    `json:"officeName"`
	SubmitterName  string    `json:"submitterName"`
	SubmitterEmail string    `json:"submitterEmail"`
}

// SubmissionRequest is the public suggestion payload.
type SubmissionRequest struct {
	OfficeID           string          `json:"officeId"`
	SubmitterName      string          `json:"submitterName"`
	SubmitterEmail     string          `json:"submitterEmail"`
	ProposedName       string          `json:"proposedName,omitempty"`
	ProposedPostalCode string          `json:"proposedPostalCode,omitempty"`
	ProposedFields     []FieldProposal `json:"proposedFields,omitempty"`
}

// DecisionRequest is the moderation decision payload.
type DecisionRequest struct {
	RequestID string `json:"requestId"`
	Action    string `json:"action"`
}
