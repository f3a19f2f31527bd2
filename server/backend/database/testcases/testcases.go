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

// Package testcases contains testcases for database. It is used by database
// implementations to test their own implementations with the same testcases.
package testcases

import (
	"context"
	"fmt"
	"testing"
	gotime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend/database"
)

const (
	dummyUserID    = types.ID("000000000000000000000000")
	dummyManagerID = types.ID("00000000000000000000000a")
	otherManagerID = types.ID("00000000000000000000000b")
)

// RunEnsureDefaultAdminInfoTest runs the EnsureDefaultAdminInfo test for the
// given db.
func RunEnsureDefaultAdminInfoTest(t *testing.T, db database.Database) {
	t.Run("ensure default admin test", func(t *testing.T) {
		ctx := context.Background()
		username := uniqueName(t, "admin")

		first, err := db.EnsureDefaultAdminInfo(ctx, username, "admin123")
		require.NoError(t, err)
		assert.Equal(t, types.RoleAdmin, first.Role)
		assert.Equal(t, types.UserActive, first.Status)
		assert.NoError(t, database.CompareHashAndPassword(first.HashedPassword, "admin123"))

		second, err := db.EnsureDefaultAdminInfo(ctx, username, "other-password")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.NoError(t, database.CompareHashAndPassword(second.HashedPassword, "admin123"))
	})
}

// RunCreateUserInfoTest runs the CreateUserInfo test for the given db.
func RunCreateUserInfoTest(t *testing.T, db database.Database) {
	t.Run("create user with skills test", func(t *testing.T) {
		ctx := context.Background()
		username := uniqueName(t, "member")

		info := database.NewUserInfo(username, "hashed", "Kim", types.RoleMember)
		skills := database.NewSkillInfos("", []*types.Skill{
			{Language: "日语", Task: types.TaskTranslation, Price: 0.8, Rating: types.RatingA},
			{Language: "日语", Task: types.TaskQualityCheck, Price: 0.9, Rating: types.RatingB},
		})
		created, err := db.CreateUserInfo(ctx, info, skills)
		require.NoError(t, err)
		assert.NoError(t, created.ID.Validate())

		found, err := db.ListSkillInfos(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, found, 2)
		for _, skill := range found {
			assert.Equal(t, created.ID, skill.MemberID)
		}

		_, err = db.CreateUserInfo(ctx, database.NewUserInfo(username, "hashed", "Lee", types.RoleMember), nil)
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)
	})
}

// RunFindUserInfoTest runs the FindUserInfoByID, FindUserInfoByUsername and
// FindUserInfosByIDs tests for the given db.
func RunFindUserInfoTest(t *testing.T, db database.Database) {
	t.Run("find user test", func(t *testing.T) {
		ctx := context.Background()
		created := createUser(t, db, uniqueName(t, "user"), "Park", types.RoleManager)

		byID, err := db.FindUserInfoByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Username, byID.Username)
		assert.Equal(t, types.RoleManager, byID.Role)

		byName, err := db.FindUserInfoByUsername(ctx, created.Username)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		_, err = db.FindUserInfoByID(ctx, dummyUserID)
		assert.ErrorIs(t, err, database.ErrUserNotFound)

		_, err = db.FindUserInfoByUsername(ctx, uniqueName(t, "nobody"))
		assert.ErrorIs(t, err, database.ErrUserNotFound)

		infos, err := db.FindUserInfosByIDs(ctx, []types.ID{created.ID, dummyUserID})
		require.NoError(t, err)
		assert.Len(t, infos, 1)
		assert.Equal(t, created.ID, infos[0].ID)
	})
}

// RunListUserInfosTest runs the ListUserInfos test for the given db.
func RunListUserInfosTest(t *testing.T, db database.Database) {
	t.Run("list users by role and name test", func(t *testing.T) {
		ctx := context.Background()
		tag := uniqueName(t, "")

		createUser(t, db, uniqueName(t, "m2"), "Zed"+tag, types.RoleMember)
		createUser(t, db, uniqueName(t, "m1"), "Amy"+tag, types.RoleMember)
		createUser(t, db, uniqueName(t, "mg"), "Bob"+tag, types.RoleManager)

		members, err := db.ListUserInfos(ctx, []types.Role{types.RoleMember}, tag)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "Amy"+tag, members[0].Name)
		assert.Equal(t, "Zed"+tag, members[1].Name)

		staff, err := db.ListUserInfos(ctx, []types.Role{types.RoleMember, types.RoleManager}, tag)
		require.NoError(t, err)
		assert.Len(t, staff, 3)

		amy, err := db.ListUserInfos(ctx, []types.Role{types.RoleMember}, "Amy"+tag)
		require.NoError(t, err)
		assert.Len(t, amy, 1)
	})
}

// RunUpdateUserInfoTest runs the UpdateUserInfo test for the given db.
func RunUpdateUserInfoTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("update fields test", func(t *testing.T) {
		member := createMember(t, db, uniqueName(t, "member"), "Kim", skill("日语", types.TaskTranslation))

		name := "Kim Jiwoo"
		phone := "13800000000"
		updated, err := db.UpdateUserInfo(ctx, member.ID, &types.UpdatableUserFields{Name: &name, Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.Equal(t, phone, updated.Phone)
		assert.Equal(t, member.Username, updated.Username)

		found, err := db.FindUserInfoByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, name, found.Name)

		skills, err := db.ListSkillInfos(ctx, member.ID)
		require.NoError(t, err)
		assert.Len(t, skills, 1)
	})

	t.Run("replace skills test", func(t *testing.T) {
		member := createMember(t, db, uniqueName(t, "member"), "Lee", skill("日语", types.TaskTranslation))

		replaced := []*types.Skill{
			skill("英语", types.TaskPostProduction),
			skill("英语", types.TaskReview),
		}
		_, err := db.UpdateUserInfo(ctx, member.ID, &types.UpdatableUserFields{Skills: &replaced})
		require.NoError(t, err)

		skills, err := db.ListSkillInfos(ctx, member.ID)
		require.NoError(t, err)
		require.Len(t, skills, 2)
		for _, s := range skills {
			assert.Equal(t, "英语", s.Language)
		}

		empty := []*types.Skill{}
		_, err = db.UpdateUserInfo(ctx, member.ID, &types.UpdatableUserFields{Skills: &empty})
		require.NoError(t, err)
		skills, err = db.ListSkillInfos(ctx, member.ID)
		require.NoError(t, err)
		assert.Len(t, skills, 0)
	})

	t.Run("update unknown user test", func(t *testing.T) {
		name := "nobody"
		_, err := db.UpdateUserInfo(ctx, dummyUserID, &types.UpdatableUserFields{Name: &name})
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})
}

// RunChangeUserPasswordTest runs the ChangeUserPassword test for the given db.
func RunChangeUserPasswordTest(t *testing.T, db database.Database) {
	t.Run("change password test", func(t *testing.T) {
		ctx := context.Background()
		user := createUser(t, db, uniqueName(t, "user"), "Choi", types.RoleManager)

		hashed, err := database.HashedPassword("new-password")
		require.NoError(t, err)
		require.NoError(t, db.ChangeUserPassword(ctx, user.ID, hashed))

		found, err := db.FindUserInfoByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NoError(t, database.CompareHashAndPassword(found.HashedPassword, "new-password"))

		assert.ErrorIs(t, db.ChangeUserPassword(ctx, dummyUserID, hashed), database.ErrUserNotFound)
	})
}

// RunDeleteUserInfoTest runs the DeleteUserInfo test for the given db.
func RunDeleteUserInfoTest(t *testing.T, db database.Database) {
	t.Run("delete user with skills test", func(t *testing.T) {
		ctx := context.Background()
		member := createMember(t, db, uniqueName(t, "member"), "Jung", skill("日语", types.TaskReview))

		require.NoError(t, db.DeleteUserInfo(ctx, member.ID))

		_, err := db.FindUserInfoByID(ctx, member.ID)
		assert.ErrorIs(t, err, database.ErrUserNotFound)

		skills, err := db.ListSkillInfos(ctx, member.ID)
		require.NoError(t, err)
		assert.Len(t, skills, 0)

		assert.ErrorIs(t, db.DeleteUserInfo(ctx, member.ID), database.ErrUserNotFound)
	})
}

// RunFindEligibleMemberInfosTest runs the FindEligibleMemberInfos test for
// the given db.
func RunFindEligibleMemberInfosTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("eligibility filter test", func(t *testing.T) {
		language := uniqueName(t, "日语")

		yuki := createMember(t, db, uniqueName(t, "yuki"), "Yuki",
			skill(language, types.TaskTranslation), skill(language, types.TaskReview))
		aki := createMember(t, db, uniqueName(t, "aki"), "Aki", skill(language, types.TaskTranslation))
		createMember(t, db, uniqueName(t, "qc"), "Qc", skill(language, types.TaskQualityCheck))
		createMember(t, db, uniqueName(t, "other"), "Other", skill(uniqueName(t, "英语"), types.TaskTranslation))

		frozen := createMember(t, db, uniqueName(t, "frozen"), "Frozen", skill(language, types.TaskTranslation))
		status := types.UserFrozen
		_, err := db.UpdateUserInfo(ctx, frozen.ID, &types.UpdatableUserFields{Status: &status})
		require.NoError(t, err)

		manager := createUser(t, db, uniqueName(t, "manager"), "Manager", types.RoleManager)
		skills := []*types.Skill{skill(language, types.TaskTranslation)}
		_, err = db.UpdateUserInfo(ctx, manager.ID, &types.UpdatableUserFields{Skills: &skills})
		require.NoError(t, err)

		infos, err := db.FindEligibleMemberInfos(ctx, language, types.TaskTranslation, "")
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, aki.ID, infos[0].ID)
		assert.Equal(t, yuki.ID, infos[1].ID)

		infos, err = db.FindEligibleMemberInfos(ctx, language, types.TaskReview, "")
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, yuki.ID, infos[0].ID)

		infos, err = db.FindEligibleMemberInfos(ctx, language, types.TaskPostProduction, "")
		require.NoError(t, err)
		assert.Len(t, infos, 0)
	})

	t.Run("eligibility keyword test", func(t *testing.T) {
		language := uniqueName(t, "韩语")

		createMember(t, db, "sato."+uniqueName(t, ""), "Sato", skill(language, types.TaskTranslation))
		kato := createMember(t, db, uniqueName(t, "kato"), "Kato", skill(language, types.TaskTranslation))

		infos, err := db.FindEligibleMemberInfos(ctx, language, types.TaskTranslation, "sato.")
		require.NoError(t, err)
		assert.Len(t, infos, 1)

		infos, err = db.FindEligibleMemberInfos(ctx, language, types.TaskTranslation, "Kat")
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, kato.ID, infos[0].ID)

		infos, err = db.FindEligibleMemberInfos(ctx, language, types.TaskTranslation, "kat")
		require.NoError(t, err)
		assert.Len(t, infos, 1, "matches the username only")

		infos, err = db.FindEligibleMemberInfos(ctx, language, types.TaskTranslation, "nobody")
		require.NoError(t, err)
		assert.Len(t, infos, 0)
	})
}

// RunCreateProjectInfoTest runs the CreateProjectInfo and ListProjectInfos
// tests for the given db.
func RunCreateProjectInfoTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("create project with assignments test", func(t *testing.T) {
		project, assignments := createProject(t, db, dummyManagerID, "2025-06-01",
			types.TaskTranslation, types.TaskReview)
		assert.NoError(t, project.ID.Validate())

		found, err := db.FindProjectInfoByID(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, project.Title, found.Title)
		assert.Equal(t, types.Date("2025-06-01"), found.Deadline)
		assert.False(t, found.Accepted)

		infos, err := db.ListAssignmentInfosByProjectIDs(ctx, []types.ID{project.ID})
		require.NoError(t, err)
		require.Len(t, infos, 2)
		for _, info := range infos {
			assert.Equal(t, project.ID, info.ProjectID)
			assert.Equal(t, types.AssignmentPending, info.Status)
			assert.Equal(t, project.Minutes, info.Minutes)
			assert.True(t, info.IsCurrent())
		}
		assert.ElementsMatch(t, []types.ID{assignments[0].ID, assignments[1].ID}, []types.ID{infos[0].ID, infos[1].ID})

		_, err = db.FindProjectInfoByID(ctx, dummyUserID)
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
	})

	t.Run("list projects newest first test", func(t *testing.T) {
		managerID := types.ID(fmt.Sprintf("%024x", gotime.Now().UnixNano()))
		base := gotime.Now().Truncate(gotime.Second)

		var ids []types.ID
		for i := 0; i < 3; i++ {
			info := &database.ProjectInfo{
				Title:     fmt.Sprintf("project-%d", i),
				Episode:   "EP01",
				Language:  "日语",
				Minutes:   20,
				Deadline:  "2025-06-01",
				ManagerID: managerID,
				CreatedAt: base.Add(gotime.Duration(i) * gotime.Minute),
			}
			created, err := db.CreateProjectInfo(ctx, info, nil)
			require.NoError(t, err)
			ids = append(ids, created.ID)
		}
		createProject(t, db, otherManagerID, "2025-06-01", types.TaskTranslation)

		infos, err := db.ListProjectInfos(ctx, managerID)
		require.NoError(t, err)
		require.Len(t, infos, 3)
		assert.Equal(t, ids[2], infos[0].ID)
		assert.Equal(t, ids[1], infos[1].ID)
		assert.Equal(t, ids[0], infos[2].ID)

		found, err := db.FindProjectInfosByIDs(ctx, []types.ID{ids[0], dummyUserID})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

// RunAcceptProjectInfoTest runs the AcceptProjectInfo test for the given db.
func RunAcceptProjectInfoTest(t *testing.T, db database.Database) {
	t.Run("accept project test", func(t *testing.T) {
		ctx := context.Background()
		project, _ := createProject(t, db, dummyManagerID, "2025-06-01", types.TaskTranslation)

		_, err := db.AcceptProjectInfo(ctx, otherManagerID, project.ID, gotime.Now())
		assert.ErrorIs(t, err, database.ErrProjectNotFound)

		acceptedAt := gotime.Now().Truncate(gotime.Second)
		accepted, err := db.AcceptProjectInfo(ctx, dummyManagerID, project.ID, acceptedAt)
		require.NoError(t, err)
		assert.True(t, accepted.Accepted)
		require.NotNil(t, accepted.AcceptedAt)
		assert.True(t, acceptedAt.Equal(*accepted.AcceptedAt))

		_, err = db.AcceptProjectInfo(ctx, dummyManagerID, project.ID, gotime.Now())
		assert.ErrorIs(t, err, database.ErrProjectAlreadyAccepted)

		found, err := db.FindProjectInfoByID(ctx, project.ID)
		require.NoError(t, err)
		assert.True(t, found.Accepted)
	})
}

// RunUpdateAssignmentStatusTest runs the UpdateAssignmentStatus test for the
// given db.
func RunUpdateAssignmentStatusTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("transition test", func(t *testing.T) {
		_, assignments := createProject(t, db, dummyManagerID, "2025-06-01", types.TaskTranslation)
		id := assignments[0].ID

		accepted, err := db.UpdateAssignmentStatus(ctx, id, &database.AssignmentTransition{
			From: types.AssignmentPending,
			To:   types.AssignmentAccepted,
		})
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentAccepted, accepted.Status)

		completedAt := gotime.Date(2025, 6, 4, 2, 0, 0, 0, gotime.UTC)
		completed, err := db.UpdateAssignmentStatus(ctx, id, &database.AssignmentTransition{
			From:          types.AssignmentAccepted,
			To:            types.AssignmentCompleted,
			CompletedAt:   &completedAt,
			DeductionNote: "overdue by 3 days",
		})
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentCompleted, completed.Status)

		found, err := db.FindAssignmentInfoByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentCompleted, found.Status)
		require.NotNil(t, found.CompletedAt)
		assert.True(t, completedAt.Equal(*found.CompletedAt))
		assert.Equal(t, "overdue by 3 days", found.DeductionNote)
	})

	t.Run("conflict on update test", func(t *testing.T) {
		_, assignments := createProject(t, db, dummyManagerID, "2025-06-01", types.TaskTranslation)
		id := assignments[0].ID

		_, err := db.UpdateAssignmentStatus(ctx, id, &database.AssignmentTransition{
			From: types.AssignmentAccepted,
			To:   types.AssignmentCompleted,
		})
		assert.ErrorIs(t, err, database.ErrConflictOnUpdate)

		found, err := db.FindAssignmentInfoByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentPending, found.Status)

		_, err = db.UpdateAssignmentStatus(ctx, dummyUserID, &database.AssignmentTransition{
			From: types.AssignmentPending,
			To:   types.AssignmentAccepted,
		})
		assert.ErrorIs(t, err, database.ErrAssignmentNotFound)
	})

	t.Run("list assignments of member test", func(t *testing.T) {
		member := createMember(t, db, uniqueName(t, "member"), "Ito", skill("日语", types.TaskTranslation))
		first := createAssignmentFor(t, db, member.ID)
		second := createAssignmentFor(t, db, member.ID)
		third := createAssignmentFor(t, db, member.ID)

		_, err := db.UpdateAssignmentStatus(ctx, second.ID, &database.AssignmentTransition{
			From: types.AssignmentPending,
			To:   types.AssignmentAccepted,
		})
		require.NoError(t, err)

		pending, err := db.ListAssignmentInfosByMember(ctx, member.ID, types.AssignmentPending)
		require.NoError(t, err)
		require.Len(t, pending, 2)
		assert.Equal(t, first.ID, pending[0].ID)
		assert.Equal(t, third.ID, pending[1].ID)

		accepted, err := db.ListAssignmentInfosByMember(ctx, member.ID, types.AssignmentAccepted)
		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, second.ID, accepted[0].ID)
	})

	t.Run("list completed assignments in window test", func(t *testing.T) {
		member := createMember(t, db, uniqueName(t, "member"), "Mori", skill("日语", types.TaskTranslation))
		from := gotime.Date(2025, 6, 1, 0, 0, 0, 0, types.OfficeZone)
		to := gotime.Date(2025, 7, 1, 0, 0, 0, 0, types.OfficeZone)

		completeAt := func(at gotime.Time) types.ID {
			info := createAssignmentFor(t, db, member.ID)
			_, err := db.UpdateAssignmentStatus(ctx, info.ID, &database.AssignmentTransition{
				From: types.AssignmentPending,
				To:   types.AssignmentAccepted,
			})
			require.NoError(t, err)
			_, err = db.UpdateAssignmentStatus(ctx, info.ID, &database.AssignmentTransition{
				From:        types.AssignmentAccepted,
				To:          types.AssignmentCompleted,
				CompletedAt: &at,
			})
			require.NoError(t, err)
			return info.ID
		}

		completeAt(from.Add(-gotime.Second))
		late := completeAt(to.Add(-gotime.Second))
		early := completeAt(from)
		completeAt(to)

		infos, err := db.ListCompletedAssignmentInfos(ctx, member.ID, from, to)
		require.NoError(t, err)
		require.Len(t, infos, 2)
		assert.Equal(t, early, infos[0].ID)
		assert.Equal(t, late, infos[1].ID)
	})
}

// RunReplaceAssignmentInfoTest runs the ReplaceAssignmentInfo test for the
// given db.
func RunReplaceAssignmentInfoTest(t *testing.T, db database.Database) {
	t.Run("replace rejected assignment test", func(t *testing.T) {
		ctx := context.Background()
		project, assignments := createProject(t, db, dummyManagerID, "2025-06-01", types.TaskTranslation)
		id := assignments[0].ID
		newMemberID := types.ID("00000000000000000000000c")

		_, err := db.ReplaceAssignmentInfo(ctx, id, newMemberID)
		assert.ErrorIs(t, err, database.ErrConflictOnUpdate)

		_, err = db.UpdateAssignmentStatus(ctx, id, &database.AssignmentTransition{
			From: types.AssignmentPending,
			To:   types.AssignmentRejected,
		})
		require.NoError(t, err)

		replacement, err := db.ReplaceAssignmentInfo(ctx, id, newMemberID)
		require.NoError(t, err)
		assert.Equal(t, newMemberID, replacement.MemberID)
		assert.Equal(t, types.AssignmentPending, replacement.Status)
		assert.Equal(t, project.ID, replacement.ProjectID)

		rejected, err := db.FindAssignmentInfoByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, replacement.ID, rejected.ReplacedBy)
		assert.Equal(t, types.AssignmentRejected, rejected.Status)

		_, err = db.ReplaceAssignmentInfo(ctx, id, newMemberID)
		assert.ErrorIs(t, err, database.ErrAssignmentAlreadyReplaced)

		infos, err := db.ListAssignmentInfosByProjectIDs(ctx, []types.ID{project.ID})
		require.NoError(t, err)
		assert.Len(t, infos, 2)

		_, err = db.ReplaceAssignmentInfo(ctx, dummyUserID, newMemberID)
		assert.ErrorIs(t, err, database.ErrAssignmentNotFound)
	})
}

func uniqueName(t *testing.T, prefix string) string {
	return fmt.Sprintf("%s-%x", prefix, gotime.Now().UnixNano()+int64(len(t.Name())))
}

func skill(language string, task types.Task) *types.Skill {
	return &types.Skill{Language: language, Task: task, Price: 1, Rating: types.RatingB}
}

func createUser(
	t *testing.T,
	db database.Database,
	username, name string,
	role types.Role,
) *database.UserInfo {
	info, err := db.CreateUserInfo(
		context.Background(),
		database.NewUserInfo(username, "hashed", name, role),
		nil,
	)
	require.NoError(t, err)
	return info
}

func createMember(
	t *testing.T,
	db database.Database,
	username, name string,
	skills ...*types.Skill,
) *database.UserInfo {
	info, err := db.CreateUserInfo(
		context.Background(),
		database.NewUserInfo(username, "hashed", name, types.RoleMember),
		database.NewSkillInfos("", skills),
	)
	require.NoError(t, err)
	return info
}

func createProject(
	t *testing.T,
	db database.Database,
	managerID types.ID,
	deadline types.Date,
	tasks ...types.Task,
) (*database.ProjectInfo, []*database.AssignmentInfo) {
	info := &database.ProjectInfo{
		Title:     "Night Patrol",
		Episode:   "EP01",
		Language:  "日语",
		Minutes:   24,
		Deadline:  deadline,
		ManagerID: managerID,
		CreatedAt: gotime.Now(),
	}

	var assignments []*database.AssignmentInfo
	for i, task := range tasks {
		memberID := types.ID(fmt.Sprintf("%024x", i+1))
		assignments = append(assignments, database.NewAssignmentInfo(info, task, memberID))
	}

	project, err := db.CreateProjectInfo(context.Background(), info, assignments)
	require.NoError(t, err)
	return project, assignments
}

func createAssignmentFor(t *testing.T, db database.Database, memberID types.ID) *database.AssignmentInfo {
	info := &database.ProjectInfo{
		Title:     "Night Patrol",
		Episode:   "EP02",
		Language:  "日语",
		Minutes:   24,
		Deadline:  "2025-06-01",
		ManagerID: dummyManagerID,
		CreatedAt: gotime.Now(),
	}
	assignment := database.NewAssignmentInfo(info, types.TaskTranslation, memberID)

	_, err := db.CreateProjectInfo(context.Background(), info, []*database.AssignmentInfo{assignment})
	require.NoError(t, err)
	return assignment
}
