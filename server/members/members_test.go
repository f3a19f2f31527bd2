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

package members_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/members"
	"github.com/locahub/locahub/test/helper"
)

func TestFindEligible(t *testing.T) {
	ctx := context.Background()
	be := helper.NewBackend(t)
	manager := helper.Caller(helper.CreateManager(t, be))

	kim := helper.CreateMember(t, be, "Kim", helper.Skill("日语", types.TaskTranslation))
	lee := helper.CreateMember(t, be, "Lee",
		helper.Skill("日语", types.TaskTranslation),
		helper.Skill("日语", types.TaskTranslation),
	)
	frozen := helper.CreateMember(t, be, "Ahn", helper.Skill("日语", types.TaskTranslation))
	helper.CreateMember(t, be, "Park", helper.Skill("英语", types.TaskTranslation))

	status := types.UserFrozen
	_, err := be.DB.UpdateUserInfo(ctx, frozen.ID, &types.UpdatableUserFields{Status: &status})
	require.NoError(t, err)

	t.Run("match test", func(t *testing.T) {
		workers, err := members.FindEligible(ctx, be, manager, "日语", types.TaskTranslation, "")
		assert.NoError(t, err)
		assert.Equal(t, []*types.Worker{kim.ToWorker(), lee.ToWorker()}, workers)
	})

	t.Run("exclude frozen test", func(t *testing.T) {
		workers, err := members.FindEligible(ctx, be, manager, "日语", types.TaskTranslation, "Ahn")
		assert.NoError(t, err)
		assert.Empty(t, workers)
	})

	t.Run("keyword test", func(t *testing.T) {
		workers, err := members.FindEligible(ctx, be, manager, "日语", types.TaskTranslation, "Le")
		assert.NoError(t, err)
		assert.Equal(t, []*types.Worker{lee.ToWorker()}, workers)

		workers, err = members.FindEligible(ctx, be, manager, "日语", types.TaskTranslation, lee.Username)
		assert.NoError(t, err)
		assert.Len(t, workers, 1)

		workers, err = members.FindEligible(ctx, be, manager, "日语", types.TaskTranslation, "kim")
		assert.NoError(t, err)
		assert.Empty(t, workers)
	})

	t.Run("no match test", func(t *testing.T) {
		workers, err := members.FindEligible(ctx, be, manager, "韩语", types.TaskReview, "")
		assert.NoError(t, err)
		assert.Empty(t, workers)
	})

	t.Run("invalid query test", func(t *testing.T) {
		_, err := members.FindEligible(ctx, be, manager, "", types.TaskTranslation, "")
		assert.ErrorIs(t, err, members.ErrEmptyLanguage)

		_, err = members.FindEligible(ctx, be, manager, "日语", "", "")
		assert.ErrorIs(t, err, members.ErrEmptyTask)
	})

	t.Run("permission test", func(t *testing.T) {
		_, err := members.FindEligible(ctx, be, helper.Caller(kim), "日语", types.TaskTranslation, "")
		assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	})
}
