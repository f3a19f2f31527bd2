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

package types

import "time"

// Role is the role of an account.
type Role string

const (
	// RoleAdmin manages accounts.
	RoleAdmin Role = "admin"

	// RoleManager creates projects, assigns workers and accepts work.
	RoleManager Role = "manager"

	// RoleMember is a worker who performs assignments.
	RoleMember Role = "member"
)

// IsValid returns whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleMember
}

// UserStatus is the status of an account.
type UserStatus string

const (
	// UserActive accounts can log in and receive assignments.
	UserActive UserStatus = "active"

	// UserFrozen accounts cannot log in and are never eligible.
	UserFrozen UserStatus = "frozen"
)

// IsValid returns whether the status is one of the known statuses.
func (s UserStatus) IsValid() bool {
	return s == UserActive || s == UserFrozen
}

// Caller is the identity of the account that issued a request.
type Caller struct {
	ID   ID   `json:"id"`
	Role Role `json:"role"`
}

// User is an account of Locahub.
type User struct {
	// ID is the unique ID of the user.
	ID ID `json:"id"`

	// Username is the login name of the user.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is the role of the user.
	Role Role `json:"role"`

	// Status is either active or frozen.
	Status UserStatus `json:"status"`

	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	// CreatedAt is the time when the user was created.
	CreatedAt time.Time `json:"created_at"`
}

// Worker is the summary of an eligible member.
type Worker struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
