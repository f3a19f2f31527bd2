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

package assignments_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/assignments"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/projects"
	"github.com/locahub/locahub/test/helper"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from   types.AssignmentStatus
		action types.Action
		to     types.AssignmentStatus
	}{
		{types.AssignmentPending, types.ActionAccept, types.AssignmentAccepted},
		{types.AssignmentPending, types.ActionReject, types.AssignmentRejected},
		{types.AssignmentPending, types.ActionComplete, ""},
		{types.AssignmentAccepted, types.ActionAccept, ""},
		{types.AssignmentAccepted, types.ActionReject, ""},
		{types.AssignmentAccepted, types.ActionComplete, types.AssignmentCompleted},
		{types.AssignmentRejected, types.ActionAccept, ""},
		{types.AssignmentRejected, types.ActionComplete, ""},
		{types.AssignmentCompleted, types.ActionAccept, ""},
		{types.AssignmentCompleted, types.ActionReject, ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" "+string(tt.action)+" test", func(t *testing.T) {
			to, err := assignments.NextStatus(tt.from, tt.action)
			if tt.to == "" {
				assert.ErrorIs(t, err, assignments.ErrInvalidTransition)
				assert.Equal(t, errors.ErrCodeFailedPrecondition, errors.StatusOf(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, to)
		})
	}
}

// newAssignment creates a project whose single translation assignment goes
// to the member.
func newAssignment(
	t *testing.T,
	be *backend.Backend,
	manager *types.Caller,
	member *database.UserInfo,
	deadline string,
) *types.Assignment {
	project, err := projects.Create(context.Background(), be, manager, helper.ProjectFields(
		deadline,
		map[types.Task]types.ID{types.TaskTranslation: member.ID},
	))
	require.NoError(t, err)
	require.Len(t, project.Assignments, 1)
	return project.Assignments[0]
}

func TestTransition(t *testing.T) {
	ctx := context.Background()
	be := helper.NewBackend(t)
	manager := helper.Caller(helper.CreateManager(t, be))
	kim := helper.CreateMember(t, be, "Kim", helper.Skill("日语", types.TaskTranslation))
	lee := helper.CreateMember(t, be, "Lee", helper.Skill("日语", types.TaskTranslation))

	t.Run("accept and complete late test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-01")

		accepted, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionAccept)
		assert.NoError(t, err)
		assert.Equal(t, types.AssignmentAccepted, accepted.Status)
		assert.Nil(t, accepted.CompletedAt)

		completed, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionComplete)
		assert.NoError(t, err)
		assert.Equal(t, types.AssignmentCompleted, completed.Status)
		assert.Equal(t, "2025-06-04 10:00:00", completed.CompletedTime)
		assert.Equal(t, "overdue by 3 days", completed.DeductionNote)
	})

	t.Run("complete on time test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")

		_, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionAccept)
		assert.NoError(t, err)
		completed, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionComplete)
		assert.NoError(t, err)
		assert.Empty(t, completed.DeductionNote)
		assert.Equal(t, "2025-06-04 10:00:00", completed.CompletedTime)
	})

	t.Run("invalid transition leaves assignment unchanged test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")
		_, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionAccept)
		require.NoError(t, err)
		_, err = assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionComplete)
		require.NoError(t, err)

		before, err := be.DB.FindAssignmentInfoByID(ctx, assignment.ID)
		require.NoError(t, err)

		_, err = assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionAccept)
		assert.ErrorIs(t, err, assignments.ErrInvalidTransition)
		_, err = assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionReject)
		assert.ErrorIs(t, err, assignments.ErrInvalidTransition)

		after, err := be.DB.FindAssignmentInfoByID(ctx, assignment.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("reject is terminal test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")

		rejected, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionReject)
		assert.NoError(t, err)
		assert.Equal(t, types.AssignmentRejected, rejected.Status)

		_, err = assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionAccept)
		assert.ErrorIs(t, err, assignments.ErrInvalidTransition)
	})

	t.Run("complete from pending test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")

		_, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, types.ActionComplete)
		assert.ErrorIs(t, err, assignments.ErrInvalidTransition)
	})

	t.Run("other worker test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")

		_, err := assignments.Transition(ctx, be, helper.Caller(lee), assignment.ID, types.ActionAccept)
		assert.ErrorIs(t, err, authz.ErrNotOwner)

		_, err = assignments.Transition(ctx, be, manager, assignment.ID, types.ActionAccept)
		assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	})

	t.Run("unknown action test", func(t *testing.T) {
		assignment := newAssignment(t, be, manager, kim, "2025-06-10")

		_, err := assignments.Transition(ctx, be, helper.Caller(kim), assignment.ID, "finish")
		assert.ErrorIs(t, err, types.ErrInvalidAction)
	})

	t.Run("missing assignment test", func(t *testing.T) {
		_, err := assignments.Transition(
			ctx,
			be,
			helper.Caller(kim),
			"000000000000000000000000",
			types.ActionAccept,
		)
		assert.ErrorIs(t, err, database.ErrAssignmentNotFound)
	})
}
