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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// Principal is the authenticated caller extracted from a gateway-signed token.
type Principal struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// ExtractPrincipal reads the Authorization bearer token from the request and
// returns the caller identity. Signature verification happens at the gateway;
// this service consumes the claims.
func ExtractPrincipal(r *http.Request) (*Principal, error) {

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, unauthorizedError("Missing bearer token.")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if strings.Count(token, ".") != 2 {
		log.GetLogger().Debug("Expecting a JWT token but received an opaque token.")
		return nil, unauthorizedError("Malformed bearer token.")
	}

	claims, err := parseJWTClaims(token)
	if err != nil {
		return nil, unauthorizedError("Could not parse bearer token claims.")
	}

	if !validateExpiry(claims) {
		return nil, unauthorizedError("Token has expired.")
	}

	principal := &Principal{}
	if sub, ok := claims["sub"].(string); ok {
		principal.UserID = sub
	}
	if name, ok := claims["name"].(string); ok {
		principal.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if principal.UserID == "" || principal.Role == "" {
		return nil, unauthorizedError("Token is missing required claims.")
	}

	return principal, nil
}

// parseJWTClaims parses claims from a JWT without verifying the signature.
func parseJWTClaims(tokenString string) (map[string]interface{}, error) {

	claims := jwt.MapClaims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		log.GetLogger().Debug("Error occurred when parsing claims from JWT token.", log.Error(err))
		return nil, err
	}
	return claims, nil
}

// validateExpiry ensures the token carries an `exp` claim in the future.
func validateExpiry(claims map[string]interface{}) bool {

	logger := log.GetLogger()
	expRaw, ok := claims["exp"]
	if !ok {
		logger.Debug("Token does not have an expiration time.")
		return false
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		logger.Debug("Token does not have a valid expiration time.", log.Any("exp", expRaw))
		return false
	}
	if int64(expFloat) < time.Now().Unix() {
		logger.Debug("Token has expired.")
		return false
	}
	return true
}

func unauthorizedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
