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

package utils

import (
	"net/http"

	"github.com/slpost/postal-directory-service/internal/system/authn"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
)

// RequireRole authenticates the caller and checks the role claim against the
// allowed set. The authorization policy itself (token issuance, role
// assignment) lives outside this service.
func RequireRole(r *http.Request, allowed map[string]bool) (*authn.Principal, error) {

	principal, err := authn.ExtractPrincipal(r)
	if err != nil {
		return nil, err
	}

	if !allowed[principal.Role] {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.UNAUTHORIZED.Code,
			Message:     errors2.UNAUTHORIZED.Message,
			Description: "Caller role is not permitted to perform this operation.",
		}, http.StatusForbidden)
	}

	return principal, nil
}
