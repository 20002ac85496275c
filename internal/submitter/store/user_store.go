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

package store

import (
	"fmt"

	model "github.com/slpost/postal-directory-service/internal/submitter/model"
	"github.com/slpost/postal-directory-service/internal/system/database/provider"
	errors2 "github.com/slpost/postal-directory-service/internal/system/errors"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

// GetUserByEmail retrieves a user by email, or nil when absent.
func GetUserByEmail(email string) (*model.User, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching user by email."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		`SELECT user_id, name, email, role FROM users WHERE email = $1`, email)
	if err != nil {
		errorMsg := "Failed to execute query for fetching user by email."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	user := scanUser(results[0])
	return &user, nil
}

// GetUserByID retrieves a user by id, or nil when absent.
func GetUserByID(userID string) (*model.User, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for fetching user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(
		`SELECT user_id, name, email, role FROM users WHERE user_id = $1`, userID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute query for fetching user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	user := scanUser(results[0])
	return &user, nil
}

// GetAllUsers lists every user.
func GetAllUsers() ([]model.User, error) {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to get db client for fetching users."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	results, err := dbClient.ExecuteQuery(`SELECT user_id, name, email, role FROM users ORDER BY name`)
	if err != nil {
		errorMsg := "Failed to execute query for fetching users."
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.FETCH_USERS.Code,
			Message:     errors2.FETCH_USERS.Message,
			Description: errorMsg,
		}, err)
	}

	users := make([]model.User, 0, len(results))
	for _, row := range results {
		users = append(users, scanUser(row))
	}
	return users, nil
}

// AddUser inserts a user with the given hashed password.
func AddUser(user model.User, passwordHash string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for inserting user: %s", user.UserID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_USER.Code,
			Message:     errors2.ADD_USER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(
		`INSERT INTO users (user_id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, $5) RETURNING user_id`,
		user.UserID, user.Name, user.Email, passwordHash, user.Role)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute insert for user: %s", user.UserID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_USER.Code,
			Message:     errors2.ADD_USER.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully inserted user: %s", user.UserID))
	return nil
}

// UpdateUserRole changes a user's role.
func UpdateUserRole(userID, role string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for updating user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_USER.Code,
			Message:     errors2.UPDATE_USER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(
		`UPDATE users SET role = $2 WHERE user_id = $1 RETURNING user_id`, userID, role)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute role update for user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPDATE_USER.Code,
			Message:     errors2.UPDATE_USER.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

// DeleteUser removes a user. Edit requests submitted by the user cascade.
func DeleteUser(userID string) error {

	dbClient, err := provider.NewDBProvider().GetDBClient()
	logger := log.GetLogger()
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to get db client for deleting user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_USER.Code,
			Message:     errors2.DELETE_USER.Message,
			Description: errorMsg,
		}, err)
	}
	defer dbClient.Close()

	_, err = dbClient.ExecuteQuery(`DELETE FROM users WHERE user_id = $1 RETURNING user_id`, userID)
	if err != nil {
		errorMsg := fmt.Sprintf("Failed to execute delete for user: %s", userID)
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_USER.Code,
			Message:     errors2.DELETE_USER.Message,
			Description: errorMsg,
		}, err)
	}
	logger.Info(fmt.Sprintf("Successfully deleted user: %s", userID))
	return nil
}

func scanUser(row map[string]interface{}) model.User {

	return model.User{
		UserID: row["user_id"].(string),
		Name:   row["name"].(string),
		Email:  row["email"].(string),
		Role:   row["role"].(string),
	}
}
