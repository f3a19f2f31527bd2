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

// Package billing aggregates the completed work of members into calendar
// months of the office zone.
package billing

import (
	"context"
	"fmt"
	"sort"
	gotime "time"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
)

// DefaultMonth returns the month shown when none is selected: the month
// before the one containing now.
func DefaultMonth(now gotime.Time) types.YearMonth {
	return types.YearMonthOf(now).Prev()
}

// CompletedIn returns the assignments of the member completed within the
// month, joined with their projects and ordered by completion time.
func CompletedIn(
	ctx context.Context,
	be *backend.Backend,
	memberID types.ID,
	month types.YearMonth,
) ([]*types.MemberAssignment, error) {
	infos, err := be.DB.ListCompletedAssignmentInfos(ctx, memberID, month.Start(), month.End())
	if err != nil {
		return nil, fmt.Errorf("list completions of %s in %s: %w", memberID, month, err)
	}

	return WithProjects(ctx, be, infos)
}

// AvailableMonths returns the months in which the member completed at least
// one assignment, most recent first.
func AvailableMonths(
	ctx context.Context,
	be *backend.Backend,
	memberID types.ID,
) ([]string, error) {
	infos, err := be.DB.ListAssignmentInfosByMember(ctx, memberID, types.AssignmentCompleted)
	if err != nil {
		return nil, fmt.Errorf("list completions of %s: %w", memberID, err)
	}

	seen := make(map[types.YearMonth]bool)
	var months []types.YearMonth
	for _, info := range infos {
		if info.CompletedAt == nil {
			continue
		}

		month := types.YearMonthOf(*info.CompletedAt)
		if seen[month] {
			continue
		}
		seen[month] = true
		months = append(months, month)
	}

	sort.Slice(months, func(i, j int) bool {
		return months[i].After(months[j])
	})

	result := make([]string, 0, len(months))
	for _, month := range months {
		result = append(result, month.String())
	}
	return result, nil
}

// TotalMinutes returns the sum of the minutes of the assignments.
func TotalMinutes(assignments []*types.MemberAssignment) int {
	total := 0
	for _, assignment := range assignments {
		total += assignment.Minutes
	}
	return total
}

// WithProjects joins the assignments with the projects they belong to.
func WithProjects(
	ctx context.Context,
	be *backend.Backend,
	infos []*database.AssignmentInfo,
) ([]*types.MemberAssignment, error) {
	result := make([]*types.MemberAssignment, 0, len(infos))
	if len(infos) == 0 {
		return result, nil
	}

	var projectIDs []types.ID
	seen := make(map[types.ID]bool)
	for _, info := range infos {
		if !seen[info.ProjectID] {
			seen[info.ProjectID] = true
			projectIDs = append(projectIDs, info.ProjectID)
		}
	}

	projectInfos, err := be.DB.FindProjectInfosByIDs(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("find projects %s: %w", types.JoinIDs(projectIDs), err)
	}
	projects := make(map[types.ID]*database.ProjectInfo, len(projectInfos))
	for _, info := range projectInfos {
		projects[info.ID] = info
	}

	for _, info := range infos {
		assignment := &types.MemberAssignment{Assignment: info.ToAssignment()}
		if project, ok := projects[info.ProjectID]; ok {
			assignment.ProjectTitle = project.Title
			assignment.ProjectEpisode = project.Episode
			assignment.ProjectLanguage = project.Language
			assignment.ProjectMinutes = project.Minutes
		}
		result = append(result, assignment)
	}

	return result, nil
}
