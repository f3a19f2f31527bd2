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

package memory

import "github.com/hashicorp/go-memdb"

var (
	tblUsers       = "users"
	tblSkills      = "skills"
	tblProjects    = "projects"
	tblAssignments = "assignments"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblUsers: {
			Name: tblUsers,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"username": {
					Name:    "username",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Username"},
				},
				"role": {
					Name:    "role",
					Indexer: &memdb.StringFieldIndex{Field: "Role"},
				},
			},
		},
		tblSkills: {
			Name: tblSkills,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"member_id": {
					Name:    "member_id",
					Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
				},
				"language_task": {
					Name: "language_task",
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "Language"},
							&memdb.StringFieldIndex{Field: "Task"},
						},
					},
				},
			},
		},
		tblProjects: {
			Name: tblProjects,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"manager_id": {
					Name:    "manager_id",
					Indexer: &memdb.StringFieldIndex{Field: "ManagerID"},
				},
			},
		},
		tblAssignments: {
			Name: tblAssignments,
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"project_id": {
					Name:    "project_id",
					Indexer: &memdb.StringFieldIndex{Field: "ProjectID"},
				},
				"member_id": {
					Name:    "member_id",
					Indexer: &memdb.StringFieldIndex{Field: "MemberID"},
				},
				"member_id_status": {
					Name: "member_id_status",
					Indexer: &memdb.CompoundIndex{
						Indexes: []memdb.Indexer{
							&memdb.StringFieldIndex{Field: "MemberID"},
							&memdb.StringFieldIndex{Field: "Status"},
						},
					},
				},
			},
		},
	},
}
