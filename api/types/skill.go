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
	"sort"
)

// Task is the role a worker performs within a project.
type Task string

const (
	// TaskTranslation is translation.
	TaskTranslation Task = "翻译"

	// TaskQualityCheck is quality checking of the translation.
	TaskQualityCheck Task = "质检"

	// TaskPostProduction is post-production such as timing and typesetting.
	TaskPostProduction Task = "后期"

	// TaskReview is the final review.
	TaskReview Task = "审核"
)

// Tasks lists the known tasks in the order they are performed.
var Tasks = []Task{
	TaskTranslation,
	TaskQualityCheck,
	TaskPostProduction,
	TaskReview,
}

// Order returns the position of the task in the workflow. Unknown tasks sort
// after the known ones.
func (t Task) Order() int {
	for i, task := range Tasks {
		if task == t {
			return i + 1
		}
	}
	return len(Tasks) + 1
}

// IsKnown returns whether the task is one of Tasks.
func (t Task) IsKnown() bool {
	return t.Order() <= len(Tasks)
}

// SortTasks sorts the given tasks in workflow order.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Order() < tasks[j].Order()
	})
}

// Rating grades the quality of a worker for a skill.
type Rating string

// Ratings from best to worst.
const (
	RatingA Rating = "A"
	RatingB Rating = "B"
	RatingC Rating = "C"
	RatingD Rating = "D"
)

// Skill is a (language, task) pair a worker can be assigned to, with the
// worker's price per minute and rating.
type Skill struct {
	Language string  `json:"language" bson:"language" validate:"required,max=20"`
	Task     Task    `json:"task" bson:"task" validate:"required,task"`
	Price    float64 `json:"price" bson:"price" validate:"gte=0"`
	Rating   Rating  `json:"rating" bson:"rating" validate:"required,rating"`
}
