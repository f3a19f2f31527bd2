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

// Package memory implements the database interface using in-memory database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	gotime "time"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// EnsureDefaultAdminInfo creates the default admin if it does not exist.
func (d *DB) EnsureDefaultAdminInfo(
	_ context.Context,
	username,
	password string,
) (*database.UserInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "username", username)
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	var info *database.UserInfo
	if raw == nil {
		hashedPassword, err := database.HashedPassword(password)
		if err != nil {
			return nil, err
		}
		info = database.NewUserInfo(username, hashedPassword, username, types.RoleAdmin)
		info.ID = newID()
		if err := txn.Insert(tblUsers, info); err != nil {
			return nil, fmt.Errorf("insert user: %w", err)
		}
	} else {
		info = raw.(*database.UserInfo).DeepCopy()
	}

	txn.Commit()
	return info, nil
}

// CreateUserInfo creates a new user together with its skills.
func (d *DB) CreateUserInfo(
	_ context.Context,
	info *database.UserInfo,
	skills []*database.SkillInfo,
) (*database.UserInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tblUsers, "username", info.Username)
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", info.Username, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create user %s: %w", info.Username, database.ErrUserAlreadyExists)
	}

	user := info.DeepCopy()
	user.ID = newID()
	if err := txn.Insert(tblUsers, user); err != nil {
		return nil, fmt.Errorf("create user %s: %w", info.Username, err)
	}
	if err := insertSkills(txn, user.ID, skills); err != nil {
		return nil, err
	}

	txn.Commit()
	return user.DeepCopy(), nil
}

// FindUserInfoByID finds a user by the given ID.
func (d *DB) FindUserInfoByID(_ context.Context, id types.ID) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find user %s: %w", id, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfoByUsername finds a user by the given username.
func (d *DB) FindUserInfoByUsername(_ context.Context, username string) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "username", username)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find user %s: %w", username, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfosByIDs finds the users of the given IDs.
func (d *DB) FindUserInfosByIDs(_ context.Context, ids []types.ID) ([]*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var infos []*database.UserInfo
	for _, id := range ids {
		raw, err := txn.First(tblUsers, "id", id.String())
		if err != nil {
			return nil, fmt.Errorf("find user %s: %w", id, err)
		}
		if raw == nil {
			continue
		}
		infos = append(infos, raw.(*database.UserInfo).DeepCopy())
	}

	return infos, nil
}

// ListUserInfos returns the users of the given roles whose name contains
// nameQuery.
func (d *DB) ListUserInfos(
	_ context.Context,
	roles []types.Role,
	nameQuery string,
) ([]*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var infos []*database.UserInfo
	for _, role := range roles {
		iter, err := txn.Get(tblUsers, "role", string(role))
		if err != nil {
			return nil, fmt.Errorf("list users of %s: %w", role, err)
		}

		for raw := iter.Next(); raw != nil; raw = iter.Next() {
			info := raw.(*database.UserInfo)
			if nameQuery != "" && !strings.Contains(info.Name, nameQuery) {
				continue
			}
			infos = append(infos, info.DeepCopy())
		}
	}

	sortUserInfos(infos)
	return infos, nil
}

// UpdateUserInfo updates the user and, when fields.Skills is set, replaces
// its skills.
func (d *DB) UpdateUserInfo(
	_ context.Context,
	id types.ID,
	fields *types.UpdatableUserFields,
) (*database.UserInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	info := raw.(*database.UserInfo).DeepCopy()
	info.UpdateFields(fields)
	if err := txn.Insert(tblUsers, info); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}

	if fields.Skills != nil {
		if _, err := txn.DeleteAll(tblSkills, "member_id", id.String()); err != nil {
			return nil, fmt.Errorf("delete skills of %s: %w", id, err)
		}
		if err := insertSkills(txn, id, database.NewSkillInfos(id, *fields.Skills)); err != nil {
			return nil, err
		}
	}

	txn.Commit()
	return info, nil
}

// ChangeUserPassword changes to new password.
func (d *DB) ChangeUserPassword(_ context.Context, id types.ID, hashedNewPassword string) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return fmt.Errorf("change password of %s: %w", id, err)
	}
	if raw == nil {
		return fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	info := raw.(*database.UserInfo).DeepCopy()
	info.HashedPassword = hashedNewPassword
	info.UpdatedAt = gotime.Now()
	if err := txn.Insert(tblUsers, info); err != nil {
		return fmt.Errorf("change password %s: %w", id, err)
	}

	txn.Commit()
	return nil
}

// DeleteUserInfo deletes the user and its skills.
func (d *DB) DeleteUserInfo(_ context.Context, id types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return fmt.Errorf("find user %s: %w", id, err)
	}
	if raw == nil {
		return fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	if err := txn.Delete(tblUsers, raw); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	if _, err := txn.DeleteAll(tblSkills, "member_id", id.String()); err != nil {
		return fmt.Errorf("delete skills of %s: %w", id, err)
	}

	txn.Commit()
	return nil
}

// ListSkillInfos returns the skills of the member.
func (d *DB) ListSkillInfos(_ context.Context, memberID types.ID) ([]*database.SkillInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblSkills, "member_id", memberID.String())
	if err != nil {
		return nil, fmt.Errorf("list skills of %s: %w", memberID, err)
	}

	var infos []*database.SkillInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.SkillInfo).DeepCopy())
	}

	return infos, nil
}

// FindEligibleMemberInfos returns the active members holding a skill of the
// given language and task.
func (d *DB) FindEligibleMemberInfos(
	_ context.Context,
	language string,
	task types.Task,
	query string,
) ([]*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblSkills, "language_task", language, string(task))
	if err != nil {
		return nil, fmt.Errorf("find skills of %s %s: %w", language, task, err)
	}

	seen := make(map[types.ID]bool)
	var infos []*database.UserInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		memberID := raw.(*database.SkillInfo).MemberID
		if seen[memberID] {
			continue
		}
		seen[memberID] = true

		rawUser, err := txn.First(tblUsers, "id", memberID.String())
		if err != nil {
			return nil, fmt.Errorf("find user %s: %w", memberID, err)
		}
		if rawUser == nil {
			continue
		}

		info := rawUser.(*database.UserInfo)
		if !info.IsActiveMember() {
			continue
		}
		if query != "" && !strings.Contains(info.Username, query) && !strings.Contains(info.Name, query) {
			continue
		}
		infos = append(infos, info.DeepCopy())
	}

	sortUserInfos(infos)
	return infos, nil
}

// CreateProjectInfo creates the project and its assignments.
func (d *DB) CreateProjectInfo(
	_ context.Context,
	info *database.ProjectInfo,
	assignments []*database.AssignmentInfo,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	info.ID = newID()
	if err := txn.Insert(tblProjects, info.DeepCopy()); err != nil {
		return nil, fmt.Errorf("create project %s: %w", info.Title, err)
	}

	for _, assignment := range assignments {
		assignment.ID = newID()
		assignment.ProjectID = info.ID
		if err := txn.Insert(tblAssignments, assignment.DeepCopy()); err != nil {
			return nil, fmt.Errorf("create assignment %s: %w", assignment.Task, err)
		}
	}

	txn.Commit()
	return info.DeepCopy(), nil
}

// FindProjectInfoByID returns a project by the given id.
func (d *DB) FindProjectInfoByID(_ context.Context, id types.ID) (*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
	}

	return raw.(*database.ProjectInfo).DeepCopy(), nil
}

// FindProjectInfosByIDs returns the projects of the given IDs.
func (d *DB) FindProjectInfosByIDs(_ context.Context, ids []types.ID) ([]*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var infos []*database.ProjectInfo
	for _, id := range ids {
		raw, err := txn.First(tblProjects, "id", id.String())
		if err != nil {
			return nil, fmt.Errorf("find project by id: %w", err)
		}
		if raw == nil {
			continue
		}
		infos = append(infos, raw.(*database.ProjectInfo).DeepCopy())
	}

	return infos, nil
}

// ListProjectInfos returns the projects of the manager, newest first.
func (d *DB) ListProjectInfos(_ context.Context, managerID types.ID) ([]*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblProjects, "manager_id", managerID.String())
	if err != nil {
		return nil, fmt.Errorf("fetch projects by manager id: %w", err)
	}

	var infos []*database.ProjectInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.ProjectInfo).DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.After(infos[j].CreatedAt)
		}
		return infos[i].ID > infos[j].ID
	})

	return infos, nil
}

// AcceptProjectInfo marks the project of the manager as accepted.
func (d *DB) AcceptProjectInfo(
	_ context.Context,
	managerID types.ID,
	id types.ID,
	acceptedAt gotime.Time,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
	}

	info := raw.(*database.ProjectInfo).DeepCopy()
	if info.ManagerID != managerID {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
	}
	if info.Accepted {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectAlreadyAccepted)
	}

	info.Accepted = true
	info.AcceptedAt = &acceptedAt
	if err := txn.Insert(tblProjects, info); err != nil {
		return nil, fmt.Errorf("accept project %s: %w", id, err)
	}

	txn.Commit()
	return info.DeepCopy(), nil
}

// FindAssignmentInfoByID returns an assignment by the given id.
func (d *DB) FindAssignmentInfoByID(_ context.Context, id types.ID) (*database.AssignmentInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblAssignments, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrAssignmentNotFound)
	}

	return raw.(*database.AssignmentInfo).DeepCopy(), nil
}

// ListAssignmentInfosByProjectIDs returns the assignments of the projects.
func (d *DB) ListAssignmentInfosByProjectIDs(
	_ context.Context,
	projectIDs []types.ID,
) ([]*database.AssignmentInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var infos []*database.AssignmentInfo
	for _, projectID := range projectIDs {
		iter, err := txn.Get(tblAssignments, "project_id", projectID.String())
		if err != nil {
			return nil, fmt.Errorf("fetch assignments of %s: %w", projectID, err)
		}
		for raw := iter.Next(); raw != nil; raw = iter.Next() {
			infos = append(infos, raw.(*database.AssignmentInfo).DeepCopy())
		}
	}

	return infos, nil
}

// ListAssignmentInfosByMember returns the assignments of the member in the
// given status, oldest first.
func (d *DB) ListAssignmentInfosByMember(
	_ context.Context,
	memberID types.ID,
	status types.AssignmentStatus,
) ([]*database.AssignmentInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblAssignments, "member_id_status", memberID.String(), string(status))
	if err != nil {
		return nil, fmt.Errorf("fetch %s assignments of %s: %w", status, memberID, err)
	}

	var infos []*database.AssignmentInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.AssignmentInfo).DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.Before(infos[j].CreatedAt)
		}
		return infos[i].ID < infos[j].ID
	})

	return infos, nil
}

// ListCompletedAssignmentInfos returns the assignments of the member
// completed within [from, to).
func (d *DB) ListCompletedAssignmentInfos(
	_ context.Context,
	memberID types.ID,
	from gotime.Time,
	to gotime.Time,
) ([]*database.AssignmentInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(
		tblAssignments,
		"member_id_status",
		memberID.String(),
		string(types.AssignmentCompleted),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch completed assignments of %s: %w", memberID, err)
	}

	var infos []*database.AssignmentInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.AssignmentInfo)
		if info.CompletedAt == nil || info.CompletedAt.Before(from) || !info.CompletedAt.Before(to) {
			continue
		}
		infos = append(infos, info.DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CompletedAt.Equal(*infos[j].CompletedAt) {
			return infos[i].CompletedAt.Before(*infos[j].CompletedAt)
		}
		return infos[i].ID < infos[j].ID
	})

	return infos, nil
}

// UpdateAssignmentStatus applies the transition to the assignment.
func (d *DB) UpdateAssignmentStatus(
	_ context.Context,
	id types.ID,
	transition *database.AssignmentTransition,
) (*database.AssignmentInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblAssignments, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrAssignmentNotFound)
	}

	info := raw.(*database.AssignmentInfo).DeepCopy()
	if err := info.Apply(transition); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	if err := txn.Insert(tblAssignments, info); err != nil {
		return nil, fmt.Errorf("update assignment %s: %w", id, err)
	}

	txn.Commit()
	return info.DeepCopy(), nil
}

// ReplaceAssignmentInfo replaces the rejected assignment with a pending one
// of the given member.
func (d *DB) ReplaceAssignmentInfo(
	_ context.Context,
	id types.ID,
	memberID types.ID,
) (*database.AssignmentInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblAssignments, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrAssignmentNotFound)
	}

	rejected := raw.(*database.AssignmentInfo).DeepCopy()
	if !rejected.IsCurrent() {
		return nil, fmt.Errorf("%s: %w", id, database.ErrAssignmentAlreadyReplaced)
	}
	if rejected.Status != types.AssignmentRejected {
		return nil, fmt.Errorf("%s: %w", id, database.ErrConflictOnUpdate)
	}

	replacement := rejected.Replacement(memberID)
	replacement.ID = newID()
	if err := txn.Insert(tblAssignments, replacement); err != nil {
		return nil, fmt.Errorf("create assignment %s: %w", replacement.Task, err)
	}

	rejected.ReplacedBy = replacement.ID
	rejected.UpdatedAt = replacement.CreatedAt
	if err := txn.Insert(tblAssignments, rejected); err != nil {
		return nil, fmt.Errorf("update assignment %s: %w", id, err)
	}

	txn.Commit()
	return replacement.DeepCopy(), nil
}

func insertSkills(txn *memdb.Txn, memberID types.ID, skills []*database.SkillInfo) error {
	for _, skill := range skills {
		info := skill.DeepCopy()
		info.ID = newID()
		info.MemberID = memberID
		if err := txn.Insert(tblSkills, info); err != nil {
			return fmt.Errorf("insert skill of %s: %w", memberID, err)
		}
	}

	return nil
}

// sortUserInfos sorts the users by name and then by ID.
func sortUserInfos(infos []*database.UserInfo) {
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Name != infos[j].Name {
			return infos[i].Name < infos[j].Name
		}
		return infos[i].ID < infos[j].ID
	})
}

func newID() types.ID {
	return types.ID(bson.NewObjectID().Hex())
}
