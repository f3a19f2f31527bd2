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

// ProjectInfo is a struct for project information.
type ProjectInfo struct {
	// ID is the unique ID of the project.
	ID types.ID `bson:"_id"`

	Title    string     `bson:"title"`
	Episode  string     `bson:"episode"`
	Language string     `bson:"language"`
	Minutes  int        `bson:"minutes"`
	Deadline types.Date `bson:"deadline"`

	// ManagerID is the ID of the manager who created the project.
	ManagerID types.ID `bson:"manager_id"`

	// Accepted is set when the manager signs off the project.
	Accepted   bool       `bson:"accepted"`
	AcceptedAt *time.Time `bson:"accepted_at"`

	CreatedAt time.Time `bson:"created_at"`
}

// NewProjectInfo creates a new ProjectInfo of the given fields.
func NewProjectInfo(managerID types.ID, fields *types.CreateProjectFields) *ProjectInfo {
	return &ProjectInfo{
		Title:     fields.Title,
		Episode:   fields.Episode,
		Language:  fields.Language,
		Minutes:   fields.Minutes,
		Deadline:  types.Date(fields.Deadline),
		ManagerID: managerID,
		CreatedAt: time.Now(),
	}
}

// DeepCopy returns a deep copy of the ProjectInfo.
func (i *ProjectInfo) DeepCopy() *ProjectInfo {
	if i == nil {
		return nil
	}

	clone := *i
	if i.AcceptedAt != nil {
		acceptedAt := *i.AcceptedAt
		clone.AcceptedAt = &acceptedAt
	}
	return &clone
}

// ToProject converts the ProjectInfo to a Project without assignments.
func (i *ProjectInfo) ToProject() *types.Project {
	return &types.Project{
		ID:         i.ID,
		Title:      i.Title,
		Episode:    i.Episode,
		Language:   i.Language,
		Minutes:    i.Minutes,
		Deadline:   i.Deadline,
		ManagerID:  i.ManagerID,
		Accepted:   i.Accepted,
		AcceptedAt: i.AcceptedAt,
		CreatedAt:  i.CreatedAt,
	}
}
