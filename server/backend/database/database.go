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

// Package database provides the database interface for the Locahub backend.
package database

import (
	"context"
	gotime "time"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
)

var (
	// ErrUserNotFound is returned when the user is not found.
	ErrUserNotFound = errors.NotFound("user not found").WithCode("ErrUserNotFound")

	// ErrUserAlreadyExists is returned when the username is taken.
	ErrUserAlreadyExists = errors.AlreadyExists("user already exists").WithCode("ErrUserAlreadyExists")

	// ErrProjectNotFound is returned when the project is not found.
	ErrProjectNotFound = errors.NotFound("project not found").WithCode("ErrProjectNotFound")

	// ErrProjectAlreadyAccepted is returned when the project was accepted
	// before.
	ErrProjectAlreadyAccepted = errors.FailedPrecond("project already accepted").WithCode("ErrProjectAlreadyAccepted")

	// ErrAssignmentNotFound is returned when the assignment is not found.
	ErrAssignmentNotFound = errors.NotFound("assignment not found").WithCode("ErrAssignmentNotFound")

	// ErrAssignmentAlreadyReplaced is returned when a rejected assignment
	// already has a replacement.
	ErrAssignmentAlreadyReplaced = errors.FailedPrecond(
		"assignment already replaced",
	).WithCode("ErrAssignmentAlreadyReplaced")

	// ErrConflictOnUpdate is returned when the stored status of an
	// assignment is not the expected one.
	ErrConflictOnUpdate = errors.FailedPrecond("conflict on update").WithCode("ErrConflictOnUpdate")

	// ErrMismatchedPassword is returned when the password is wrong.
	ErrMismatchedPassword = errors.Unauthenticated("mismatched password").WithCode("ErrMismatchedPassword")
)

// AssignmentTransition describes a status change of an assignment. The
// change is applied only while the stored status is still From.
type AssignmentTransition struct {
	From types.AssignmentStatus
	To   types.AssignmentStatus

	// CompletedAt and DeductionNote are recorded when To is completed.
	CompletedAt   *gotime.Time
	DeductionNote string
}

// Database represents database which reads or saves Locahub data.
type Database interface {
	// Close all resources of this database.
	Close() error

	// EnsureDefaultAdminInfo creates the default admin if it does not exist.
	EnsureDefaultAdminInfo(
		ctx context.Context,
		username,
		password string,
	) (*UserInfo, error)

	// CreateUserInfo creates a new user together with its skills.
	CreateUserInfo(
		ctx context.Context,
		info *UserInfo,
		skills []*SkillInfo,
	) (*UserInfo, error)

	// FindUserInfoByID returns a user by ID.
	FindUserInfoByID(ctx context.Context, id types.ID) (*UserInfo, error)

	// FindUserInfoByUsername returns a user by username.
	FindUserInfoByUsername(ctx context.Context, username string) (*UserInfo, error)

	// FindUserInfosByIDs returns the users of the given IDs. Unknown IDs are
	// skipped.
	FindUserInfosByIDs(ctx context.Context, ids []types.ID) ([]*UserInfo, error)

	// ListUserInfos returns the users having one of the given roles whose
	// display name contains nameQuery, ordered by name.
	ListUserInfos(
		ctx context.Context,
		roles []types.Role,
		nameQuery string,
	) ([]*UserInfo, error)

	// UpdateUserInfo updates the user. When fields.Skills is set, every
	// skill of the user is replaced in the same write.
	UpdateUserInfo(
		ctx context.Context,
		id types.ID,
		fields *types.UpdatableUserFields,
	) (*UserInfo, error)

	// ChangeUserPassword changes the password of the user.
	ChangeUserPassword(ctx context.Context, id types.ID, hashedNewPassword string) error

	// DeleteUserInfo deletes the user and its skills.
	DeleteUserInfo(ctx context.Context, id types.ID) error

	// ListSkillInfos returns the skills of the member.
	ListSkillInfos(ctx context.Context, memberID types.ID) ([]*SkillInfo, error)

	// FindEligibleMemberInfos returns active members holding a skill of the
	// given language and task. When query is not empty, only members whose
	// username or name contains it are returned. Results are ordered by name.
	FindEligibleMemberInfos(
		ctx context.Context,
		language string,
		task types.Task,
		query string,
	) ([]*UserInfo, error)

	// CreateProjectInfo creates the project and its assignments in one write.
	// The IDs of info and assignments are filled in.
	CreateProjectInfo(
		ctx context.Context,
		info *ProjectInfo,
		assignments []*AssignmentInfo,
	) (*ProjectInfo, error)

	// FindProjectInfoByID returns a project by ID.
	FindProjectInfoByID(ctx context.Context, id types.ID) (*ProjectInfo, error)

	// FindProjectInfosByIDs returns the projects of the given IDs. Unknown
	// IDs are skipped.
	FindProjectInfosByIDs(ctx context.Context, ids []types.ID) ([]*ProjectInfo, error)

	// ListProjectInfos returns the projects of the manager, newest first.
	ListProjectInfos(ctx context.Context, managerID types.ID) ([]*ProjectInfo, error)

	// AcceptProjectInfo sets the accepted flag of the manager's project.
	AcceptProjectInfo(
		ctx context.Context,
		managerID types.ID,
		id types.ID,
		acceptedAt gotime.Time,
	) (*ProjectInfo, error)

	// FindAssignmentInfoByID returns an assignment by ID.
	FindAssignmentInfoByID(ctx context.Context, id types.ID) (*AssignmentInfo, error)

	// ListAssignmentInfosByProjectIDs returns every assignment of the given
	// projects.
	ListAssignmentInfosByProjectIDs(
		ctx context.Context,
		projectIDs []types.ID,
	) ([]*AssignmentInfo, error)

	// ListAssignmentInfosByMember returns the assignments of the member in
	// the given status, oldest first.
	ListAssignmentInfosByMember(
		ctx context.Context,
		memberID types.ID,
		status types.AssignmentStatus,
	) ([]*AssignmentInfo, error)

	// ListCompletedAssignmentInfos returns the assignments of the member
	// completed within [from, to), ordered by completion time.
	ListCompletedAssignmentInfos(
		ctx context.Context,
		memberID types.ID,
		from gotime.Time,
		to gotime.Time,
	) ([]*AssignmentInfo, error)

	// UpdateAssignmentStatus applies the transition to the assignment.
	UpdateAssignmentStatus(
		ctx context.Context,
		id types.ID,
		transition *AssignmentTransition,
	) (*AssignmentInfo, error)

	// ReplaceAssignmentInfo creates a pending copy of the rejected
	// assignment for the given member and links the rejected one to it.
	ReplaceAssignmentInfo(
		ctx context.Context,
		id types.ID,
		memberID types.ID,
	) (*AssignmentInfo, error)
}
