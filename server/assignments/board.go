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

package assignments

import (
	"context"
	"fmt"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/billing"
)

// ListForMember returns the board of the caller: open work, the completions
// of the month and the months having completions. An empty month selects
// the month before the current one.
func ListForMember(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	month string,
) (*types.MemberBoard, error) {
	if err := authz.CheckRole(caller, types.RoleMember); err != nil {
		return nil, err
	}

	selected := billing.DefaultMonth(be.Now())
	if month != "" {
		parsed, err := types.ParseYearMonth(month)
		if err != nil {
			return nil, err
		}
		selected = parsed
	}

	pending, err := listByStatus(ctx, be, caller.ID, types.AssignmentPending)
	if err != nil {
		return nil, err
	}
	accepted, err := listByStatus(ctx, be, caller.ID, types.AssignmentAccepted)
	if err != nil {
		return nil, err
	}

	completed, err := billing.CompletedIn(ctx, be, caller.ID, selected)
	if err != nil {
		return nil, err
	}
	months, err := billing.AvailableMonths(ctx, be, caller.ID)
	if err != nil {
		return nil, err
	}

	skillInfos, err := be.DB.ListSkillInfos(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list skills of %s: %w", caller.ID, err)
	}

	return &types.MemberBoard{
		Month:            selected.String(),
		Pending:          pending,
		Accepted:         accepted,
		Completed:        completed,
		CompletedMinutes: billing.TotalMinutes(completed),
		Skills:           database.ToSkills(skillInfos),
		AvailableMonths:  months,
	}, nil
}

func listByStatus(
	ctx context.Context,
	be *backend.Backend,
	memberID types.ID,
	status types.AssignmentStatus,
) ([]*types.MemberAssignment, error) {
	infos, err := be.DB.ListAssignmentInfosByMember(ctx, memberID, status)
	if err != nil {
		return nil, fmt.Errorf("list %s assignments of %s: %w", status, memberID, err)
	}

	return billing.WithProjects(ctx, be, infos)
}
