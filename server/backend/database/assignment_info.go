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

package database

import (
	"time"

	"github.com/locahub/locahub/api/types"
)

// AssignmentInfo is a task of a project bound to a member.
type AssignmentInfo struct {
	ID        types.ID               `bson:"_id"`
	ProjectID types.ID               `bson:"project_id"`
	MemberID  types.ID               `bson:"member_id"`
	Task      types.Task             `bson:"task"`
	Minutes   int                    `bson:"minutes"`
	Deadline  types.Date             `bson:"deadline"`
	Status    types.AssignmentStatus `bson:"status"`

	// CompletedAt and DeductionNote are set when the member completes the
	// assignment.
	CompletedAt   *time.Time `bson:"completed_at"`
	DeductionNote string     `bson:"deduction_note"`

	// ReplacedBy is the ID of the assignment that took over this rejected
	// one. Empty while the assignment is current.
	ReplacedBy types.ID `bson:"replaced_by"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewAssignmentInfo creates a pending assignment of the project.
func NewAssignmentInfo(
	project *ProjectInfo,
	task types.Task,
	memberID types.ID,
) *AssignmentInfo {
	now := time.Now()
	return &AssignmentInfo{
		ProjectID: project.ID,
		MemberID:  memberID,
		Task:      task,
		Minutes:   project.Minutes,
		Deadline:  project.Deadline,
		Status:    types.AssignmentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCurrent returns whether the assignment has not been replaced.
func (i *AssignmentInfo) IsCurrent() bool {
	return i.ReplacedBy == ""
}

// Apply applies the transition to the assignment. It returns
// ErrConflictOnUpdate when the status is not transition.From.
func (i *AssignmentInfo) Apply(transition *AssignmentTransition) error {
	if i.Status != transition.From {
		return ErrConflictOnUpdate
	}

	i.Status = transition.To
	if transition.To == types.AssignmentCompleted {
		completedAt := *transition.CompletedAt
		i.CompletedAt = &completedAt
		i.DeductionNote = transition.DeductionNote
	}
	i.UpdatedAt = time.Now()
	return nil
}

// Replacement returns a pending copy of the assignment for the given member.
func (i *AssignmentInfo) Replacement(memberID types.ID) *AssignmentInfo {
	now := time.Now()
	return &AssignmentInfo{
		ProjectID: i.ProjectID,
		MemberID:  memberID,
		Task:      i.Task,
		Minutes:   i.Minutes,
		Deadline:  i.Deadline,
		Status:    types.AssignmentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DeepCopy returns a deep copy of the AssignmentInfo.
func (i *AssignmentInfo) DeepCopy() *AssignmentInfo {
	if i == nil {
		return nil
	}

	clone := *i
	if i.CompletedAt != nil {
		completedAt := *i.CompletedAt
		clone.CompletedAt = &completedAt
	}
	return &clone
}

// ToAssignment converts the AssignmentInfo to an Assignment.
func (i *AssignmentInfo) ToAssignment() *types.Assignment {
	assignment := &types.Assignment{
		ID:            i.ID,
		ProjectID:     i.ProjectID,
		MemberID:      i.MemberID,
		Task:          i.Task,
		Minutes:       i.Minutes,
		Deadline:      i.Deadline,
		Status:        i.Status,
		DeductionNote: i.DeductionNote,
		ReplacedBy:    i.ReplacedBy,
		CreatedAt:     i.CreatedAt,
	}
	if i.CompletedAt != nil {
		completedAt := *i.CompletedAt
		assignment.CompletedAt = &completedAt
		assignment.CompletedTime = types.FormatOfficeTime(completedAt)
	}
	return assignment
}
