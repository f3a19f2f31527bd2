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

// Package helper provides helper functions for testing.
package helper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	gotime "time"

	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
)

// Below are the values of the Locahub config used in the test.
var (
	AdminUser     = "admin"
	AdminPassword = "admin123"
	SecretKey     = "test-secret"
	TokenDuration = "1h"
	UserCacheSize = 100
	UserCacheTTL  = "10s"

	// MemberPassword is the password of every user created by the helpers.
	MemberPassword = "member123"

	// Now is the pinned clock of the test backends: 2025-06-04 10:00 in the
	// office zone.
	Now = gotime.Date(2025, 6, 4, 10, 0, 0, 0, types.OfficeZone)
)

var seq atomic.Int64

// UniqueName returns a username unique within the test binary.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, seq.Add(1))
}

// BackendConfig returns the backend config used in the test.
func BackendConfig() *backend.Config {
	return &backend.Config{
		AdminUser:     AdminUser,
		AdminPassword: AdminPassword,
		SecretKey:     SecretKey,
		TokenDuration: TokenDuration,
		UserCacheSize: UserCacheSize,
		UserCacheTTL:  UserCacheTTL,
	}
}

// NewBackend creates a memory backend whose clock is pinned to Now.
func NewBackend(t testing.TB) *backend.Backend {
	be, err := backend.New(BackendConfig(), nil, nil)
	require.NoError(t, err)
	be.Clock = func() gotime.Time { return Now }

	t.Cleanup(func() {
		require.NoError(t, be.Shutdown())
	})
	return be
}

// SetNow pins the clock of the backend.
func SetNow(be *backend.Backend, now gotime.Time) {
	be.Clock = func() gotime.Time { return now }
}

// Admin returns the default admin of the backend.
func Admin(t testing.TB, be *backend.Backend) *database.UserInfo {
	info, err := be.DB.FindUserInfoByUsername(context.Background(), AdminUser)
	require.NoError(t, err)
	return info
}

// CreateUser creates a user of the role with the given skills.
func CreateUser(
	t testing.TB,
	be *backend.Backend,
	role types.Role,
	name string,
	skills ...*types.Skill,
) *database.UserInfo {
	hashed, err := database.HashedPassword(MemberPassword)
	require.NoError(t, err)

	info, err := be.DB.CreateUserInfo(
		context.Background(),
		database.NewUserInfo(UniqueName(string(role)), hashed, name, role),
		database.NewSkillInfos("", skills),
	)
	require.NoError(t, err)
	return info
}

// CreateManager creates a manager.
func CreateManager(t testing.TB, be *backend.Backend) *database.UserInfo {
	return CreateUser(t, be, types.RoleManager, UniqueName("Manager "))
}

// CreateMember creates a member with the given skills.
func CreateMember(
	t testing.TB,
	be *backend.Backend,
	name string,
	skills ...*types.Skill,
) *database.UserInfo {
	return CreateUser(t, be, types.RoleMember, name, skills...)
}

// Skill returns a skill of the given language and task.
func Skill(language string, task types.Task) *types.Skill {
	return &types.Skill{
		Language: language,
		Task:     task,
		Price:    1,
		Rating:   types.RatingA,
	}
}

// Caller returns the caller of the user.
func Caller(info *database.UserInfo) *types.Caller {
	return &types.Caller{ID: info.ID, Role: info.Role}
}

// ProjectFields returns the fields of a 日语 project with the given
// deadline and workers.
func ProjectFields(deadline string, workers map[types.Task]types.ID) *types.CreateProjectFields {
	return &types.CreateProjectFields{
		Title:       UniqueName("Night Patrol "),
		Episode:     "EP01",
		Language:    "日语",
		Minutes:     24,
		Deadline:    deadline,
		Assignments: workers,
	}
}
