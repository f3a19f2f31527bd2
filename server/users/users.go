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

// Package users provides the account related business logic.
package users

import (
	"context"
	"fmt"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/logging"
)

var (
	// ErrUserFrozen is returned when a frozen user logs in or sends a
	// request.
	ErrUserFrozen = errors.PermissionDenied("user is frozen").WithCode("ErrUserFrozen")

	// ErrDeleteSelf is returned when an admin deletes its own account.
	ErrDeleteSelf = errors.FailedPrecond("cannot delete yourself").WithCode("ErrDeleteSelf")
)

// Create creates an account. Skills are kept only for members.
func Create(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	fields *types.CreateUserFields,
) (*types.User, error) {
	if err := authz.CheckRole(caller, types.RoleAdmin); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	hashed, err := database.HashedPassword(fields.Password)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}

	info := database.NewUserInfo(fields.Username, hashed, fields.Name, fields.Role)
	if fields.Status != "" {
		info.Status = fields.Status
	}
	info.Phone = fields.Phone
	info.Email = fields.Email

	var skills []*database.SkillInfo
	if fields.Role == types.RoleMember {
		skills = database.NewSkillInfos("", fields.Skills)
	}

	created, err := be.DB.CreateUserInfo(ctx, info, skills)
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Infof("user %s created: %s", created.ID, created.Role)

	return created.ToUser(), nil
}

// List returns the managers and members whose display name contains
// nameQuery, ordered by name.
func List(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	nameQuery string,
) ([]*types.User, error) {
	if err := authz.CheckRole(caller, types.RoleAdmin, types.RoleManager); err != nil {
		return nil, err
	}

	infos, err := be.DB.ListUserInfos(ctx, []types.Role{types.RoleManager, types.RoleMember}, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]*types.User, 0, len(infos))
	for _, info := range infos {
		result = append(result, info.ToUser())
	}
	return result, nil
}

// GetSkills returns the skills of the member.
func GetSkills(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	memberID types.ID,
) ([]*types.Skill, error) {
	if err := authz.CheckRole(caller, types.RoleAdmin, types.RoleManager); err != nil {
		return nil, err
	}
	if _, err := be.DB.FindUserInfoByID(ctx, memberID); err != nil {
		return nil, err
	}

	infos, err := be.DB.ListSkillInfos(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("list skills of %s: %w", memberID, err)
	}
	return database.ToSkills(infos), nil
}

// Update updates the account. A non-nil fields.Skills replaces every skill
// of the member in the same write.
func Update(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	id types.ID,
	fields *types.UpdatableUserFields,
) (*types.User, error) {
	if err := authz.CheckRole(caller, types.RoleAdmin); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	info, err := be.DB.UpdateUserInfo(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	be.InvalidateUser(id)
	logging.From(ctx).Infof("user %s updated", id)

	return info.ToUser(), nil
}

// SetStatus activates or freezes the account.
func SetStatus(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	id types.ID,
	status types.UserStatus,
) (*types.User, error) {
	return Update(ctx, be, caller, id, &types.UpdatableUserFields{Status: &status})
}

// Delete deletes the account and its skills. The caller confirms with its
// own password and cannot delete itself.
func Delete(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	id types.ID,
	adminPassword string,
) error {
	if err := authz.CheckRole(caller, types.RoleAdmin); err != nil {
		return err
	}
	if caller.ID == id {
		return ErrDeleteSelf
	}

	admin, err := be.DB.FindUserInfoByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if err := database.CompareHashAndPassword(admin.HashedPassword, adminPassword); err != nil {
		return err
	}

	if err := be.DB.DeleteUserInfo(ctx, id); err != nil {
		return err
	}
	be.InvalidateUser(id)
	logging.From(ctx).Infof("user %s deleted by %s", id, caller.ID)

	return nil
}

// ChangePassword changes the password of the caller.
func ChangePassword(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	fields *types.ChangePasswordFields,
) error {
	if caller == nil {
		return authz.ErrInsufficientPermission
	}
	if err := fields.Validate(); err != nil {
		return err
	}

	info, err := be.DB.FindUserInfoByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if err := database.CompareHashAndPassword(info.HashedPassword, fields.Password); err != nil {
		return err
	}

	hashed, err := database.HashedPassword(fields.NewPassword)
	if err != nil {
		return fmt.Errorf("cannot hash password: %w", err)
	}
	return be.DB.ChangeUserPassword(ctx, caller.ID, hashed)
}

// LogIn checks the credentials and returns the user. Frozen users are
// refused.
func LogIn(
	ctx context.Context,
	be *backend.Backend,
	fields *types.LoginFields,
) (*types.User, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	info, err := be.DB.FindUserInfoByUsername(ctx, fields.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, database.ErrMismatchedPassword
		}
		return nil, err
	}
	if err := database.CompareHashAndPassword(info.HashedPassword, fields.Password); err != nil {
		return nil, err
	}
	if !info.IsActive() {
		return nil, fmt.Errorf("%s: %w", info.Username, ErrUserFrozen)
	}

	return info.ToUser(), nil
}

// FindActiveUser returns the active user of the ID, reading the user cache
// first.
func FindActiveUser(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
) (*database.UserInfo, error) {
	info, ok := be.UserCache.Get(id)
	if !ok {
		found, err := be.DB.FindUserInfoByID(ctx, id)
		if err != nil {
			return nil, err
		}
		be.UserCache.Add(id, found)
		info = found
	}

	if !info.IsActive() {
		return nil, fmt.Errorf("%s: %w", info.Username, ErrUserFrozen)
	}
	return info, nil
}
