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

package users_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/users"
	"github.com/locahub/locahub/test/helper"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	be := helper.NewBackend(t)
	admin := helper.Caller(helper.Admin(t, be))
	manager := helper.Caller(helper.CreateManager(t, be))

	memberFields := func(username string) *types.CreateUserFields {
		return &types.CreateUserFields{
			Username: username,
			Password: "member123",
			Name:     "Kim",
			Role:     types.RoleMember,
			Skills: []*types.Skill{
				{Language: "日语", Task: types.TaskTranslation, Price: 0.8, Rating: types.RatingA},
				{Language: "日语", Task: types.TaskQualityCheck, Price: 0.9, Rating: types.RatingB},
			},
		}
	}

	t.Run("create test", func(t *testing.T) {
		user, err := users.Create(ctx, be, admin, memberFields("member.kim"))
		assert.NoError(t, err)
		assert.Equal(t, types.UserActive, user.Status)
		assert.Equal(t, types.RoleMember, user.Role)

		skills, err := users.GetSkills(ctx, be, manager, user.ID)
		assert.NoError(t, err)
		assert.Len(t, skills, 2)

		_, err = users.Create(ctx, be, admin, memberFields("member.kim"))
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)

		_, err = users.Create(ctx, be, manager, memberFields("member.lee"))
		assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	})

	t.Run("create manager drops skills test", func(t *testing.T) {
		fields := memberFields("manager.choi")
		fields.Role = types.RoleManager
		user, err := users.Create(ctx, be, admin, fields)
		require.NoError(t, err)

		skills, err := users.GetSkills(ctx, be, admin, user.ID)
		assert.NoError(t, err)
		assert.Empty(t, skills)
	})

	t.Run("list test", func(t *testing.T) {
		list, err := users.List(ctx, be, manager, "Kim")
		assert.NoError(t, err)
		require.NotEmpty(t, list)
		for _, user := range list {
			assert.Contains(t, user.Name, "Kim")
			assert.NotEqual(t, types.RoleAdmin, user.Role)
		}

		_, err = users.List(ctx, be, &types.Caller{ID: "000000000000000000000001", Role: types.RoleMember}, "")
		assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	})

	t.Run("update test", func(t *testing.T) {
		user, err := users.Create(ctx, be, admin, memberFields("member.yoon"))
		require.NoError(t, err)

		name := "Yoon"
		skills := []*types.Skill{{Language: "英语", Task: types.TaskPostProduction, Price: 1, Rating: types.RatingC}}
		updated, err := users.Update(ctx, be, admin, user.ID, &types.UpdatableUserFields{
			Name:   &name,
			Skills: &skills,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Yoon", updated.Name)

		got, err := users.GetSkills(ctx, be, admin, user.ID)
		assert.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "英语", got[0].Language)

		_, err = users.Update(ctx, be, admin, user.ID, &types.UpdatableUserFields{})
		assert.ErrorIs(t, err, types.ErrEmptyUserFields)

		_, err = users.Update(ctx, be, admin, "000000000000000000000000", &types.UpdatableUserFields{Name: &name})
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})

	t.Run("freeze test", func(t *testing.T) {
		user, err := users.Create(ctx, be, admin, memberFields("member.han"))
		require.NoError(t, err)

		_, err = users.FindActiveUser(ctx, be, user.ID)
		assert.NoError(t, err)

		frozen, err := users.SetStatus(ctx, be, admin, user.ID, types.UserFrozen)
		assert.NoError(t, err)
		assert.Equal(t, types.UserFrozen, frozen.Status)

		_, err = users.FindActiveUser(ctx, be, user.ID)
		assert.ErrorIs(t, err, users.ErrUserFrozen)

		_, err = users.LogIn(ctx, be, &types.LoginFields{Username: "member.han", Password: "member123"})
		assert.ErrorIs(t, err, users.ErrUserFrozen)

		_, err = users.SetStatus(ctx, be, admin, user.ID, types.UserActive)
		assert.NoError(t, err)
		_, err = users.LogIn(ctx, be, &types.LoginFields{Username: "member.han", Password: "member123"})
		assert.NoError(t, err)
	})

	t.Run("delete test", func(t *testing.T) {
		user, err := users.Create(ctx, be, admin, memberFields("member.seo"))
		require.NoError(t, err)

		err = users.Delete(ctx, be, admin, user.ID, "wrong-password")
		assert.ErrorIs(t, err, database.ErrMismatchedPassword)

		err = users.Delete(ctx, be, admin, admin.ID, helper.AdminPassword)
		assert.ErrorIs(t, err, users.ErrDeleteSelf)

		assert.NoError(t, users.Delete(ctx, be, admin, user.ID, helper.AdminPassword))

		_, err = users.GetSkills(ctx, be, admin, user.ID)
		assert.ErrorIs(t, err, database.ErrUserNotFound)
		_, err = users.FindActiveUser(ctx, be, user.ID)
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})

	t.Run("log in test", func(t *testing.T) {
		user, err := users.LogIn(ctx, be, &types.LoginFields{Username: helper.AdminUser, Password: helper.AdminPassword})
		assert.NoError(t, err)
		assert.Equal(t, types.RoleAdmin, user.Role)

		_, err = users.LogIn(ctx, be, &types.LoginFields{Username: helper.AdminUser, Password: "nope"})
		assert.ErrorIs(t, err, database.ErrMismatchedPassword)

		_, err = users.LogIn(ctx, be, &types.LoginFields{Username: "nobody", Password: "nope"})
		assert.ErrorIs(t, err, database.ErrMismatchedPassword)
	})

	t.Run("change password test", func(t *testing.T) {
		_, err := users.Create(ctx, be, admin, memberFields("member.jung"))
		require.NoError(t, err)
		user, err := users.LogIn(ctx, be, &types.LoginFields{Username: "member.jung", Password: "member123"})
		require.NoError(t, err)
		caller := &types.Caller{ID: user.ID, Role: user.Role}

		err = users.ChangePassword(ctx, be, caller, &types.ChangePasswordFields{
			Password:    "wrong",
			NewPassword: "member456",
		})
		assert.ErrorIs(t, err, database.ErrMismatchedPassword)

		assert.NoError(t, users.ChangePassword(ctx, be, caller, &types.ChangePasswordFields{
			Password:    "member123",
			NewPassword: "member456",
		}))
		_, err = users.LogIn(ctx, be, &types.LoginFields{Username: "member.jung", Password: "member456"})
		assert.NoError(t, err)
	})
}
