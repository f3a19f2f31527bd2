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

package projects

import (
	gotime "time"

	"github.com/locahub/locahub/api/types"
)

// DeriveStatus returns the status of a project from its assignments. Only
// current assignments are considered. The first matching rule wins:
// every assignment pending, any rejected, every assignment completed,
// deadline passed and finally in progress. A project without current
// assignments is awaiting assignment.
func DeriveStatus(
	assignments []*types.Assignment,
	deadline types.Date,
	now gotime.Time,
) types.ProjectStatus {
	allPending, anyRejected, allCompleted := true, false, true
	for _, assignment := range assignments {
		if !assignment.IsCurrent() {
			continue
		}

		switch assignment.Status {
		case types.AssignmentPending:
			allCompleted = false
		case types.AssignmentRejected:
			anyRejected = true
			allPending, allCompleted = false, false
		case types.AssignmentCompleted:
			allPending = false
		default:
			allPending, allCompleted = false, false
		}
	}

	switch {
	case allPending:
		return types.ProjectAwaitingAssignment
	case anyRejected:
		return types.ProjectNeedsReassignment
	case allCompleted:
		return types.ProjectAwaitingAcceptance
	case deadline.IsPassed(now):
		return types.ProjectOverdueIncomplete
	default:
		return types.ProjectInProgress
	}
}
