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

package service

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	model "github.com/slpost/postal-directory-service/internal/submitter/model"
	"github.com/slpost/postal-directory-service/internal/submitter/store"
	"github.com/slpost/postal-directory-service/internal/system/constants"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// UserServiceInterface defines the submitter/user service.
type UserServiceInterface interface {
	FindOrCreateContributor(name, email string) (*model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUserRole(userID, role string) error
	DeleteUser(userID string) error
}

// UserService is the default implementation.
type UserService struct{}

// GetUserService returns a new instance.
func GetUserService() UserServiceInterface {
	return &UserService{}
}

// FindOrCreateContributor resolves a public submitter to a user record,
// creating a CONTRIBUTOR with a random throwaway password on first contact.
func (us *UserService) FindOrCreateContributor(name, email string) (*model.User, error) {

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Submitter name and email are required.",
		}, http.StatusBadRequest)
	}

	existing, err := store.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	// The contributor never chose a password; hash a random one so the row
	// satisfies the credential constraint until they register properly.
	passwordHash, err := randomPasswordHash()
	if err != nil {
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_USER.Code,
			Message:     errors2.ADD_USER.Message,
			Description: "Failed to generate contributor credentials.",
		}, err)
	}

	user := model.User{
		UserID: uuid.New().String(),
		Name:   name,
		Email:  email,
		Role:   constants.RoleContributor,
	}
	if err := store.AddUser(user, passwordHash); err != nil {
		return nil, err
	}
	log.GetLogger().Info("Created contributor for public submission", log.String("userId", user.UserID))
	return &user, nil
}

// ListUsers lists every user.
func (us *UserService) ListUsers() ([]model.User, error) {

	users, err := store.GetAllUsers()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []model.User{}, nil
	}
	return users, nil
}

// UpdateUserRole changes a user's role after validating it.
func (us *UserService) UpdateUserRole(userID, role string) error {

	if !validRole(role) {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: "Unknown role: " + role,
		}, http.StatusBadRequest)
	}

	existing, err := store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return userNotFoundError(userID)
	}
	return store.UpdateUserRole(userID, role)
}

// DeleteUser removes a user; their edit requests cascade.
func (us *UserService) DeleteUser(userID string) error {

	existing, err := store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return userNotFoundError(userID)
	}
	return store.DeleteUser(userID)
}

func validRole(role string) bool {
	switch role {
	case constants.RoleSuperAdmin, constants.RoleAdmin, constants.RoleModerator,
		constants.RoleEmployee, constants.RoleContributor:
		return true
	}
	return false
}

func randomPasswordHash() (string, error) {

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(raw)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func userNotFoundError(userID string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.USER_NOT_FOUND.Code,
		Message:     errors2.USER_NOT_FOUND.Message,
		Description: "No user exists with id: " + userID,
	}, http.StatusNotFound)
}
