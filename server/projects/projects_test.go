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

package projects_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/internal/validation"
	"github.com/locahub/locahub/server/assignments"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/projects"
	"github.com/locahub/locahub/test/helper"
)

func TestProjects(t *testing.T) {
	ctx := context.Background()
	be := helper.NewBackend(t)
	managerInfo := helper.CreateManager(t, be)
	manager := helper.Caller(managerInfo)
	other := helper.Caller(helper.CreateManager(t, be))

	translator := helper.CreateMember(t, be, "Kim", helper.Skill("日语", types.TaskTranslation))
	checker := helper.CreateMember(t, be, "Lee", helper.Skill("日语", types.TaskQualityCheck))
	reviewer := helper.CreateMember(t, be, "Park", helper.Skill("日语", types.TaskReview))

	workers := func() map[types.Task]types.ID {
		return map[types.Task]types.ID{
			types.TaskReview:       reviewer.ID,
			types.TaskTranslation:  translator.ID,
			types.TaskQualityCheck: checker.ID,
		}
	}
	act := func(member *database.UserInfo, id types.ID, actions ...types.Action) {
		for _, action := range actions {
			_, err := assignments.Transition(ctx, be, helper.Caller(member), id, action)
			require.NoError(t, err)
		}
	}

	t.Run("create test", func(t *testing.T) {
		project, err := projects.Create(ctx, be, manager, helper.ProjectFields("2025-06-10", workers()))
		assert.NoError(t, err)
		assert.NotEmpty(t, project.ID)
		assert.Equal(t, managerInfo.ID, project.ManagerID)
		assert.Equal(t, types.ProjectAwaitingAssignment, project.Status)
		assert.Equal(t, "分配中", project.StatusLabel)

		require.Len(t, project.Assignments, 3)
		assert.Equal(t, types.TaskTranslation, project.Assignments[0].Task)
		assert.Equal(t, types.TaskQualityCheck, project.Assignments[1].Task)
		assert.Equal(t, types.TaskReview, project.Assignments[2].Task)
		for _, assignment := range project.Assignments {
			assert.Equal(t, types.AssignmentPending, assignment.Status)
			assert.Equal(t, types.Date("2025-06-10"), assignment.Deadline)
			assert.Equal(t, 24, assignment.Minutes)
			assert.Equal(t, project.ID, assignment.ProjectID)
		}
		assert.Equal(t, "Kim", project.Assignments[0].MemberName)
	})

	t.Run("create with incomplete fields test", func(t *testing.T) {
		fields := helper.ProjectFields("2025-06-10", nil)
		_, err := projects.Create(ctx, be, manager, fields)
		structErr := &validation.StructError{}
		assert.ErrorAs(t, err, &structErr)

		fields = helper.ProjectFields("2025-06-10", workers())
		fields.Assignments[types.TaskPostProduction] = ""
		_, err = projects.Create(ctx, be, manager, fields)
		assert.Error(t, err)
	})

	t.Run("create with ineligible worker test", func(t *testing.T) {
		fields := helper.ProjectFields("2025-06-10", workers())
		fields.Assignments[types.TaskReview] = "000000000000000000000000"
		_, err := projects.Create(ctx, be, manager, fields)
		assert.ErrorIs(t, err, projects.ErrIneligibleWorker)

		frozen := helper.CreateMember(t, be, "Ahn")
		status := types.UserFrozen
		_, err = be.DB.UpdateUserInfo(ctx, frozen.ID, &types.UpdatableUserFields{Status: &status})
		require.NoError(t, err)

		fields = helper.ProjectFields("2025-06-10", workers())
		fields.Assignments[types.TaskReview] = frozen.ID
		_, err = projects.Create(ctx, be, manager, fields)
		assert.ErrorIs(t, err, projects.ErrIneligibleWorker)

		fields = helper.ProjectFields("2025-06-10", workers())
		fields.Assignments[types.TaskReview] = other.ID
		_, err = projects.Create(ctx, be, manager, fields)
		assert.ErrorIs(t, err, projects.ErrIneligibleWorker)
	})

	t.Run("create by member test", func(t *testing.T) {
		_, err := projects.Create(ctx, be, helper.Caller(translator), helper.ProjectFields("2025-06-10", workers()))
		assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	})

	t.Run("list test", func(t *testing.T) {
		owner := helper.Caller(helper.CreateManager(t, be))
		first, err := projects.Create(ctx, be, owner, helper.ProjectFields("2025-06-01", workers()))
		require.NoError(t, err)
		second, err := projects.Create(ctx, be, owner, helper.ProjectFields("2025-06-30", workers()))
		require.NoError(t, err)

		act(translator, first.Assignments[0].ID, types.ActionAccept)
		act(translator, second.Assignments[0].ID, types.ActionAccept)

		list, err := projects.List(ctx, be, owner)
		assert.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
		assert.Equal(t, types.ProjectInProgress, list[0].Status)
		assert.Equal(t, types.ProjectOverdueIncomplete, list[1].Status)
		assert.Equal(t, "超时未完成", list[1].StatusLabel)
		assert.Equal(t, "Lee", list[0].Assignments[1].MemberName)

		empty, err := projects.List(ctx, be, helper.Caller(helper.CreateManager(t, be)))
		assert.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("accept test", func(t *testing.T) {
		project, err := projects.Create(ctx, be, manager, helper.ProjectFields("2025-06-10", workers()))
		require.NoError(t, err)

		_, err = projects.Accept(ctx, be, manager, project.ID)
		assert.ErrorIs(t, err, projects.ErrNotAwaitingAcceptance)

		act(translator, project.Assignments[0].ID, types.ActionAccept, types.ActionComplete)
		act(checker, project.Assignments[1].ID, types.ActionAccept, types.ActionComplete)
		act(reviewer, project.Assignments[2].ID, types.ActionAccept, types.ActionComplete)

		_, err = projects.Accept(ctx, be, other, project.ID)
		assert.ErrorIs(t, err, authz.ErrNotOwner)

		accepted, err := projects.Accept(ctx, be, manager, project.ID)
		assert.NoError(t, err)
		assert.True(t, accepted.Accepted)
		assert.NotNil(t, accepted.AcceptedAt)
		assert.Equal(t, types.ProjectAwaitingAcceptance, accepted.Status)

		_, err = projects.Accept(ctx, be, manager, project.ID)
		assert.ErrorIs(t, err, database.ErrProjectAlreadyAccepted)

		_, err = projects.Accept(ctx, be, manager, "000000000000000000000000")
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
	})

	t.Run("reassign test", func(t *testing.T) {
		project, err := projects.Create(ctx, be, manager, helper.ProjectFields("2025-06-10", workers()))
		require.NoError(t, err)
		review := project.Assignments[2]

		_, err = projects.Reassign(ctx, be, manager, review.ID, translator.ID)
		assert.ErrorIs(t, err, projects.ErrNotRejected)

		act(reviewer, review.ID, types.ActionReject)
		list, err := projects.List(ctx, be, manager)
		require.NoError(t, err)
		assert.Equal(t, types.ProjectNeedsReassignment, list[0].Status)

		_, err = projects.Reassign(ctx, be, other, review.ID, translator.ID)
		assert.ErrorIs(t, err, authz.ErrNotOwner)

		replacement, err := projects.Reassign(ctx, be, manager, review.ID, translator.ID)
		assert.NoError(t, err)
		assert.Equal(t, types.AssignmentPending, replacement.Status)
		assert.Equal(t, types.TaskReview, replacement.Task)
		assert.Equal(t, translator.ID, replacement.MemberID)
		assert.Equal(t, "Kim", replacement.MemberName)
		assert.Equal(t, review.Deadline, replacement.Deadline)

		rejected, err := be.DB.FindAssignmentInfoByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, types.AssignmentRejected, rejected.Status)
		assert.Equal(t, replacement.ID, rejected.ReplacedBy)

		list, err = projects.List(ctx, be, manager)
		require.NoError(t, err)
		assert.Equal(t, project.ID, list[0].ID)
		assert.Equal(t, types.ProjectAwaitingAssignment, list[0].Status)
		require.Len(t, list[0].Assignments, 3)
		assert.Equal(t, replacement.ID, list[0].Assignments[2].ID)

		_, err = projects.Reassign(ctx, be, manager, review.ID, checker.ID)
		assert.ErrorIs(t, err, database.ErrAssignmentAlreadyReplaced)
	})
}
