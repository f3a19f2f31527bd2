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
	"time"
)

// ProjectStatus is the status of a project derived from its assignments.
type ProjectStatus string

const (
	// ProjectAwaitingAssignment means no worker has acted yet.
	ProjectAwaitingAssignment ProjectStatus = "awaiting-assignment"

	// ProjectNeedsReassignment means a worker rejected an assignment.
	ProjectNeedsReassignment ProjectStatus = "needs-reassignment"

	// ProjectAwaitingAcceptance means every assignment is completed.
	ProjectAwaitingAcceptance ProjectStatus = "awaiting-acceptance"

	// ProjectOverdueIncomplete means the deadline passed with work left.
	ProjectOverdueIncomplete ProjectStatus = "overdue-incomplete"

	// ProjectInProgress means work is under way before the deadline.
	ProjectInProgress ProjectStatus = "in-progress"
)

var projectStatusLabels = map[ProjectStatus]string{
	ProjectAwaitingAssignment: "分配中",
	ProjectNeedsReassignment:  "请重新分配任务",
	ProjectAwaitingAcceptance: "待验收",
	ProjectOverdueIncomplete:  "超时未完成",
	ProjectInProgress:         "进行中",
}

// Label returns the label shown to managers.
func (s ProjectStatus) Label() string {
	return projectStatusLabels[s]
}

// Project is a unit of localization work owned by a manager.
type Project struct {
	// ID is the unique ID of the project.
	ID ID `json:"id"`

	Title    string `json:"title"`
	Episode  string `json:"episode"`
	Language string `json:"language"`
	Minutes  int    `json:"minutes"`
	Deadline Date   `json:"deadline"`

	// ManagerID is the ID of the owning manager.
	ManagerID ID `json:"manager_id"`

	// Accepted is set once the manager signed off the finished work.
	Accepted bool `json:"accepted"`

	// AcceptedAt is the time the project was accepted.
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`

	// Status is derived from Assignments when the project is read.
	Status ProjectStatus `json:"status,omitempty"`

	// StatusLabel is the label of Status.
	StatusLabel string `json:"status_label,omitempty"`

	// Assignments are the current assignments in task order.
	Assignments []*Assignment `json:"assignments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
