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

package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/billing"
	"github.com/locahub/locahub/test/helper"
)

// completeAt stores a completed assignment of a new project of the member.
func completeAt(
	t *testing.T,
	be *backend.Backend,
	manager *database.UserInfo,
	member *database.UserInfo,
	completedAt time.Time,
) {
	ctx := context.Background()
	fields := helper.ProjectFields("2025-12-31", map[types.Task]types.ID{types.TaskReview: member.ID})
	project := database.NewProjectInfo(manager.ID, fields)
	assignment := database.NewAssignmentInfo(project, types.TaskReview, member.ID)
	_, err := be.DB.CreateProjectInfo(ctx, project, []*database.AssignmentInfo{assignment})
	require.NoError(t, err)

	_, err = be.DB.UpdateAssignmentStatus(ctx, assignment.ID, &database.AssignmentTransition{
		From: types.AssignmentPending,
		To:   types.AssignmentAccepted,
	})
	require.NoError(t, err)
	_, err = be.DB.UpdateAssignmentStatus(ctx, assignment.ID, &database.AssignmentTransition{
		From:        types.AssignmentAccepted,
		To:          types.AssignmentCompleted,
		CompletedAt: &completedAt,
	})
	require.NoError(t, err)
}

func TestDefaultMonth(t *testing.T) {
	assert.Equal(t, "2025-05", billing.DefaultMonth(helper.Now).String())
	assert.Equal(t, "2024-12", billing.DefaultMonth(time.Date(2025, 1, 15, 0, 0, 0, 0, types.OfficeZone)).String())

	// 2025-06-30T16:00Z is already July in the office zone.
	assert.Equal(t, "2025-06", billing.DefaultMonth(time.Date(2025, 6, 30, 16, 0, 0, 0, time.UTC)).String())
}

func TestAggregation(t *testing.T) {
	ctx := context.Background()
	be := helper.NewBackend(t)
	manager := helper.CreateManager(t, be)
	kim := helper.CreateMember(t, be, "Kim")
	lee := helper.CreateMember(t, be, "Lee")

	completeAt(t, be, manager, kim, time.Date(2025, 5, 3, 9, 0, 0, 0, types.OfficeZone))
	completeAt(t, be, manager, kim, time.Date(2025, 6, 1, 0, 0, 0, 0, types.OfficeZone))
	completeAt(t, be, manager, kim, time.Date(2025, 6, 20, 18, 0, 0, 0, types.OfficeZone))
	// 2025-04-30T16:00Z is the first instant of May in the office zone.
	completeAt(t, be, manager, kim, time.Date(2025, 4, 30, 16, 0, 0, 0, time.UTC))
	completeAt(t, be, manager, lee, time.Date(2025, 3, 1, 0, 0, 0, 0, types.OfficeZone))

	t.Run("available months test", func(t *testing.T) {
		months, err := billing.AvailableMonths(ctx, be, kim.ID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2025-06", "2025-05"}, months)

		months, err = billing.AvailableMonths(ctx, be, lee.ID)
		assert.NoError(t, err)
		assert.Equal(t, []string{"2025-03"}, months)
	})

	t.Run("completed in month test", func(t *testing.T) {
		june, err := billing.CompletedIn(ctx, be, kim.ID, types.YearMonth{Year: 2025, Month: time.June})
		assert.NoError(t, err)
		require.Len(t, june, 2)
		assert.Equal(t, "2025-06-01 00:00:00", june[0].CompletedTime)
		assert.Equal(t, "2025-06-20 18:00:00", june[1].CompletedTime)
		assert.Equal(t, "日语", june[0].ProjectLanguage)
		assert.Equal(t, 48, billing.TotalMinutes(june))

		may, err := billing.CompletedIn(ctx, be, kim.ID, types.YearMonth{Year: 2025, Month: time.May})
		assert.NoError(t, err)
		require.Len(t, may, 2)
		assert.Equal(t, "2025-05-01 00:00:00", may[0].CompletedTime)
	})

	t.Run("no data test", func(t *testing.T) {
		none := helper.CreateMember(t, be, "Park")

		months, err := billing.AvailableMonths(ctx, be, none.ID)
		assert.NoError(t, err)
		assert.Empty(t, months)

		completed, err := billing.CompletedIn(ctx, be, none.ID, types.YearMonth{Year: 2025, Month: time.June})
		assert.NoError(t, err)
		assert.Empty(t, completed)
		assert.Zero(t, billing.TotalMinutes(completed))
	})
}
