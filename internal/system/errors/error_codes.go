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

package errors

const errorPrefix = "PDS-"

var (
	// Server error codes

	ADD_OFFICE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding post office.",
	}

	FETCH_OFFICES = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching post offices.",
	}

	UPDATE_OFFICE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating post office.",
	}

	DELETE_OFFICE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting post office.",
	}

	ADD_EDIT_REQUEST = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while creating edit request.",
	}

	FETCH_EDIT_REQUESTS = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching edit requests.",
	}

	APPLY_EDIT_REQUEST = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while applying edit request.",
	}

	ADD_USER = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Error while adding user.",
	}

	FETCH_USERS = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while fetching users.",
	}

	UPDATE_USER = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Error while updating user.",
	}

	DELETE_USER = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while deleting user.",
	}

	RECONCILE_SNAPSHOT = ErrorMessage{
		Code:    errorPrefix + "15012",
		Message: "Error while loading the canonical directory snapshot.",
	}

	RECONCILE_FLUSH = ErrorMessage{
		Code:    errorPrefix + "15013",
		Message: "Error while persisting reconciled attributes.",
	}

	CONFLICT_WRITE = ErrorMessage{
		Code:    errorPrefix + "15014",
		Message: "Transaction failed or was aborted by the database.",
	}

	SEED_IMPORT = ErrorMessage{
		Code:    errorPrefix + "15015",
		Message: "Error while importing the seed export.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "60001",
		Message: "Invalid request payload.",
	}

	OFFICE_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60002",
		Message: "Post office not found.",
	}

	EDIT_REQUEST_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60003",
		Message: "Edit request not found.",
	}

	EDIT_REQUEST_ALREADY_PROCESSED = ErrorMessage{
		Code:    errorPrefix + "60004",
		Message: "Edit request has already been processed.",
	}

	INVALID_MODERATION_ACTION = ErrorMessage{
		Code:    errorPrefix + "60005",
		Message: "Unrecognized moderation action.",
	}

	UNAUTHORIZED = ErrorMessage{
		Code:    errorPrefix + "60006",
		Message: "Caller is not authorized for this operation.",
	}

	USER_NOT_FOUND = ErrorMessage{
		Code:    errorPrefix + "60007",
		Message: "User not found.",
	}

	EDIT_REQUEST_UNPARSABLE = ErrorMessage{
		Code:    errorPrefix + "60008",
		Message: "Edit request changes could not be decoded.",
	}
)
