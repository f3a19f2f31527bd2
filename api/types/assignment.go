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

package types

import (
	"fmt"
	"time"

	"github.com/locahub/locahub/pkg/errors"
)

// ErrInvalidAction is returned when an action name is not accept, reject or
// complete.
var ErrInvalidAction = errors.InvalidArgument("invalid action").WithCode("ErrInvalidAction")

// AssignmentStatus is the state of an assignment.
type AssignmentStatus string

const (
	// AssignmentPending is the initial state of every assignment.
	AssignmentPending AssignmentStatus = "pending"

	// AssignmentAccepted means the worker took the assignment.
	AssignmentAccepted AssignmentStatus = "accepted"

	// AssignmentRejected means the worker declined the assignment. Terminal.
	AssignmentRejected AssignmentStatus = "rejected"

	// AssignmentCompleted means the worker delivered the work. Terminal.
	AssignmentCompleted AssignmentStatus = "completed"
)

// IsTerminal returns whether no action can leave the status.
func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentRejected || s == AssignmentCompleted
}

// Action is an action a worker performs on its own assignment.
type Action string

const (
	// ActionAccept moves a pending assignment to accepted.
	ActionAccept Action = "accept"

	// ActionReject moves a pending assignment to rejected.
	ActionReject Action = "reject"

	// ActionComplete moves an accepted assignment to completed.
	ActionComplete Action = "complete"
)

// ParseAction returns the Action of the given name.
func ParseAction(name string) (Action, error) {
	switch action := Action(name); action {
	case ActionAccept, ActionReject, ActionComplete:
		return action, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrInvalidAction)
	}
}

// Assignment is one task of a project bound to one worker.
type Assignment struct {
	// ID is the unique ID of the assignment.
	ID ID `json:"id"`

	// ProjectID is the ID of the project the assignment belongs to.
	ProjectID ID `json:"project_id"`

	// MemberID is the ID of the worker.
	MemberID ID `json:"member_id"`

	// MemberName is the display name of the worker when it is known.
	MemberName string `json:"member_name,omitempty"`

	Task    Task `json:"task"`
	Minutes int  `json:"minutes"`

	// Deadline is copied from the project when the assignment is created.
	Deadline Date `json:"deadline"`

	Status AssignmentStatus `json:"status"`

	// CompletedAt is the instant the assignment was completed.
	CompletedAt *time.Time `json:"-"`

	// CompletedTime is CompletedAt formatted in the office zone.
	CompletedTime string `json:"completed_time,omitempty"`

	// DeductionNote describes the lateness of a completion, if any.
	DeductionNote string `json:"deduction_note,omitempty"`

	// ReplacedBy is the ID of the assignment that took over a rejected one.
	ReplacedBy ID `json:"replaced_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// IsCurrent returns whether the assignment has not been replaced.
func (a *Assignment) IsCurrent() bool {
	return a.ReplacedBy == ""
}

// MemberAssignment is an assignment joined with the project it belongs to,
// as seen by the worker.
type MemberAssignment struct {
	*Assignment

	ProjectTitle    string `json:"project_title"`
	ProjectEpisode  string `json:"project_episode"`
	ProjectLanguage string `json:"project_language"`
	ProjectMinutes  int    `json:"project_minutes"`
}

// MemberBoard is everything a worker sees: open work, the completions of one
// month and the months that have completions.
type MemberBoard struct {
	Month            string              `json:"month"`
	Pending          []*MemberAssignment `json:"pending"`
	Accepted         []*MemberAssignment `json:"accepted"`
	Completed        []*MemberAssignment `json:"completed"`
	CompletedMinutes int                 `json:"completed_minutes"`
	Skills           []*Skill            `json:"skills"`
	AvailableMonths  []string            `json:"available_months"`
}
