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

// Package assignments provides the lifecycle of assignments driven by the
// actions of workers, and the board a worker sees.
package assignments

import (
	"context"
	"fmt"
	gotime "time"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/logging"
)

// ErrInvalidTransition is returned when the action is not allowed from the
// current status of the assignment.
var ErrInvalidTransition = errors.FailedPrecond("invalid transition").WithCode("ErrInvalidTransition")

// transitions is the state machine of assignments. completed and rejected
// have no outgoing edge.
var transitions = map[types.AssignmentStatus]map[types.Action]types.AssignmentStatus{
	types.AssignmentPending: {
		types.ActionAccept: types.AssignmentAccepted,
		types.ActionReject: types.AssignmentRejected,
	},
	types.AssignmentAccepted: {
		types.ActionComplete: types.AssignmentCompleted,
	},
}

// NextStatus returns the status reached by applying the action to an
// assignment in the given status.
func NextStatus(from types.AssignmentStatus, action types.Action) (types.AssignmentStatus, error) {
	to, ok := transitions[from][action]
	if !ok {
		return "", fmt.Errorf("%s on %s assignment: %w", action, from, ErrInvalidTransition)
	}

	return to, nil
}

// Transition applies the action of the caller to its own assignment.
func Transition(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	id types.ID,
	action types.Action,
) (*types.Assignment, error) {
	if err := authz.CheckRole(caller, types.RoleMember); err != nil {
		return nil, err
	}
	if _, err := types.ParseAction(string(action)); err != nil {
		return nil, err
	}

	info, err := be.DB.FindAssignmentInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckOwner(caller, info.MemberID); err != nil {
		return nil, fmt.Errorf("assignment %s: %w", id, err)
	}

	to, err := NextStatus(info.Status, action)
	if err != nil {
		return nil, fmt.Errorf("assignment %s: %w", id, err)
	}

	transition := &database.AssignmentTransition{From: info.Status, To: to}
	if to == types.AssignmentCompleted {
		now := be.Now()
		completedAt := now.Truncate(gotime.Second)
		transition.CompletedAt = &completedAt
		transition.DeductionNote = DeductionNote(info.Deadline, now)
	}

	updated, err := be.DB.UpdateAssignmentStatus(ctx, id, transition)
	if err != nil {
		return nil, err
	}

	if be.Metrics != nil {
		be.Metrics.AddAssignmentTransition(action)
		if updated.DeductionNote != "" {
			be.Metrics.AddOverdueCompletion()
		}
	}
	logging.From(ctx).Infof("assignment %s: %s -> %s", id, info.Status, updated.Status)

	return updated.ToAssignment(), nil
}
