/*
 * Copyright 2025 The Locahub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/locahub/locahub/api/types"
)

// UserInfo is a structure representing information of a user.
type UserInfo struct {
	ID             types.ID         `bson:"_id"`
	Username       string           `bson:"username"`
	HashedPassword string           `bson:"hashed_password"`
	Name           string           `bson:"name"`
	Role           types.Role       `bson:"role"`
	Status         types.UserStatus `bson:"status"`
	Phone          string           `bson:"phone"`
	Email          string           `bson:"email"`
	CreatedAt      time.Time        `bson:"created_at"`
	UpdatedAt      time.Time        `bson:"updated_at"`
}

// NewUserInfo creates a new active UserInfo.
func NewUserInfo(
	username string,
	hashedPassword string,
	name string,
	role types.Role,
) *UserInfo {
	now := time.Now()
	return &UserInfo{
		Username:       username,
		HashedPassword: hashedPassword,
		Name:           name,
		Role:           role,
		Status:         types.UserActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsActive returns whether the user can log in and receive assignments.
func (i *UserInfo) IsActive() bool {
	return i.Status == types.UserActive
}

// IsActiveMember returns whether the user is an active member.
func (i *UserInfo) IsActiveMember() bool {
	return i.Role == types.RoleMember && i.IsActive()
}

// DeepCopy returns a deep copy of the UserInfo
func (i *UserInfo) DeepCopy() *UserInfo {
	if i == nil {
		return nil
	}

	clone := *i
	return &clone
}

// UpdateFields updates the fields of the user. Skills are stored apart from
// the user and are not touched.
func (i *UserInfo) UpdateFields(fields *types.UpdatableUserFields) {
	if fields.Name != nil {
		i.Name = *fields.Name
	}
	if fields.Status != nil {
		i.Status = *fields.Status
	}
	if fields.Phone != nil {
		i.Phone = *fields.Phone
	}
	if fields.Email != nil {
		i.Email = *fields.Email
	}
	i.UpdatedAt = time.Now()
}

// ToUser converts the UserInfo to a User.
func (i *UserInfo) ToUser() *types.User {
	return &types.User{
		ID:        i.ID,
		Username:  i.Username,
		Name:      i.Name,
		Role:      i.Role,
		Status:    i.Status,
		Phone:     i.Phone,
		Email:     i.Email,
		CreatedAt: i.CreatedAt,
	}
}

// ToWorker converts the UserInfo to a Worker.
func (i *UserInfo) ToWorker() *types.Worker {
	return &types.Worker{
		ID:       i.ID,
		Username: i.Username,
		Name:     i.Name,
	}
}

// HashedPassword hashes the given password.
func HashedPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}

// CompareHashAndPassword compares the hashed password and the password.
func CompareHashAndPassword(hashed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return ErrMismatchedPassword
	}

	return nil
}
