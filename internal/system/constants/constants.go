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

package constants

const ApiBasePath = "/api/v1"

// Edit request lifecycle states.
const (
	StatusPending  = "PENDING"
	StatusMoreInfo = "MORE_INFO"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Moderation actions accepted on the decision surface.
const (
	ActionApprove  = "APPROVE"
	ActionReject   = "REJECT"
	ActionMoreInfo = "MORE_INFO"
)

// User roles.
const (
	RoleSuperAdmin  = "SUPER_ADMIN"
	RoleAdmin       = "ADMIN"
	RoleModerator   = "MODERATOR"
	RoleEmployee    = "EMPLOYEE"
	RoleContributor = "CONTRIBUTOR"
)

// Roles allowed to decide on edit requests.
var ModerationRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleModerator:  true,
}

// Roles allowed to manage canonical records directly.
var AdminRoles = map[string]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
}

// Field types carried by dynamic attribute fields.
const (
	FieldTypeText = "TEXT"
)

// DistrictCodeFieldName is the dynamic field that carries the authoritative
// district code from the PDF-derived table.
const DistrictCodeFieldName = "DistCode"

// DeliveryFieldName is the dynamic field that records whether an office
// delivers mail. Its value is kept strictly "Yes" or "No".
const DeliveryFieldName = "Delivery"

const (
	DeliveryYes = "Yes"
	DeliveryNo  = "No"
)

// PlaceholderPostalCode is the legacy "unknown" marker found in seed data.
// Canonical records store an empty string instead; the placeholder is only
// ever tolerated on reads of unmigrated rows.
const PlaceholderPostalCode = "N/A"

// UnavailablePostalCode is the sentinel used by the PDF-derived table for
// offices without an assigned code.
const UnavailablePostalCode = "*"
