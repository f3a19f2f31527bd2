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

import (
	"github.com/locahub/locahub/internal/validation"
	"github.com/locahub/locahub/pkg/errors"
)

// ErrEmptyUserFields is returned when an update carries no field.
var ErrEmptyUserFields = errors.InvalidArgument("updatable user fields are empty").WithCode("ErrEmptyUserFields")

// CreateUserFields is a set of fields that use to create an account.
type CreateUserFields struct {
	Username string     `json:"username" validate:"required,min=2,max=30,username"`
	Password string     `json:"password" validate:"required,min=6,max=64"`
	Name     string     `json:"name" validate:"required,max=50"`
	Role     Role       `json:"role" validate:"required,oneof=admin manager member"`
	Status   UserStatus `json:"status" validate:"omitempty,oneof=active frozen"`
	Phone    string     `json:"phone" validate:"omitempty,max=20,phone"`
	Email    string     `json:"email" validate:"omitempty,email"`

	// Skills are only kept for members.
	Skills []*Skill `json:"skills" validate:"dive"`
}

// Validate validates the CreateUserFields.
func (i *CreateUserFields) Validate() error {
	return validation.ValidateStruct(i)
}

// UpdatableUserFields is a set of fields that use to update an account.
// A nil field is left unchanged. A non-nil Skills replaces every skill of the
// member.
type UpdatableUserFields struct {
	Name   *string     `json:"name" bson:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Status *UserStatus `json:"status" bson:"status,omitempty" validate:"omitempty,oneof=active frozen"`
	Phone  *string     `json:"phone" bson:"phone,omitempty" validate:"omitempty,max=20,phone"`
	Email  *string     `json:"email" bson:"email,omitempty" validate:"omitempty,email"`

	Skills *[]*Skill `json:"skills" bson:"-" validate:"omitempty,dive"`
}

// Validate validates the UpdatableUserFields.
func (i *UpdatableUserFields) Validate() error {
	if i.Name == nil && i.Status == nil && i.Phone == nil && i.Email == nil && i.Skills == nil {
		return ErrEmptyUserFields
	}

	return validation.ValidateStruct(i)
}

// LoginFields is a set of fields that use to log in.
type LoginFields struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the LoginFields.
func (i *LoginFields) Validate() error {
	return validation.ValidateStruct(i)
}

// ChangePasswordFields is a set of fields that use to change the password of
// the caller.
type ChangePasswordFields struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=64"`
}

// Validate validates the ChangePasswordFields.
func (i *ChangePasswordFields) Validate() error {
	return validation.ValidateStruct(i)
}
