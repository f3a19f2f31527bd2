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
	"github.com/locahub/locahub/internal/validation"
)

// CreateProjectFields is a set of fields that use to create a project.
type CreateProjectFields struct {
	Title    string `json:"title" validate:"required,max=100"`
	Episode  string `json:"episode" validate:"required,max=50"`
	Language string `json:"language" validate:"required,max=20"`
	Minutes  int    `json:"minutes" validate:"required,gt=0"`
	Deadline string `json:"deadline" validate:"required,date"`

	// Assignments maps every task of the project to the worker doing it.
	Assignments map[Task]ID `json:"assignments" validate:"required,min=1,dive,keys,task,endkeys,required"`
}

// Validate validates the CreateProjectFields.
func (i *CreateProjectFields) Validate() error {
	return validation.ValidateStruct(i)
}

// OrderedTasks returns the tasks of Assignments in workflow order.
func (i *CreateProjectFields) OrderedTasks() []Task {
	tasks := make([]Task, 0, len(i.Assignments))
	for task := range i.Assignments {
		tasks = append(tasks, task)
	}
	SortTasks(tasks)
	return tasks
}
