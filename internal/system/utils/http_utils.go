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
	"encoding/json"
	"net/http"
	"strings"

	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// HandleError writes a typed error to the response. Client errors carry their
// own status code; everything else is a 500 with the server error envelope.
func HandleError(w http.ResponseWriter, err error) {

	w.Header().Set("Content-Type", "application/json")

	if clientErr, ok := err.(*errors2.ClientError); ok {
		status := clientErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(clientErr.ErrorMessage)
		return
	}

	if serverErr, ok := err.(*errors2.ServerError); ok {
		log.GetLogger().Error("Request failed with server error", log.Error(serverErr))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(serverErr.ErrorMessage)
		return
	}

	log.GetLogger().Error("Request failed with unexpected error", log.Error(err))
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errors2.ErrorMessage{
		Code:    "PDS-15000",
		Message: "Internal server error.",
	})
}

// WriteJSONResponse writes a JSON payload with the given status code.
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ExtractLastPathSegment returns the final segment of the request path.
func ExtractLastPathSegment(path string) string {

	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
