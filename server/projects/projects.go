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

// Package projects provides the project related business logic: creation,
// listing with derived statuses, acceptance and reassignment.
package projects

import (
	"context"
	"fmt"
	"sort"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
	"github.com/locahub/locahub/server/backend/database"
	"github.com/locahub/locahub/server/logging"
)

var (
	// ErrIneligibleWorker is returned when a worker of a project is missing,
	// frozen or not a member.
	ErrIneligibleWorker = errors.InvalidArgument("ineligible worker").WithCode("ErrIneligibleWorker")

	// ErrNotAwaitingAcceptance is returned when a project is accepted before
	// every assignment is completed.
	ErrNotAwaitingAcceptance = errors.FailedPrecond(
		"project is not awaiting acceptance",
	).WithCode("ErrNotAwaitingAcceptance")

	// ErrNotRejected is returned when an assignment that was not rejected is
	// reassigned.
	ErrNotRejected = errors.FailedPrecond("assignment is not rejected").WithCode("ErrNotRejected")
)

// Create creates a project of the caller together with one pending
// assignment per task.
func Create(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	fields *types.CreateProjectFields,
) (*types.Project, error) {
	if err := authz.CheckRole(caller, types.RoleManager); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	tasks := fields.OrderedTasks()
	workerIDs := make([]types.ID, 0, len(tasks))
	for _, task := range tasks {
		workerIDs = append(workerIDs, fields.Assignments[task])
	}
	workers, err := checkWorkers(ctx, be, workerIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[types.ID]string, len(workers))
	for id, worker := range workers {
		names[id] = worker.Name
	}

	info := database.NewProjectInfo(caller.ID, fields)
	assignmentInfos := make([]*database.AssignmentInfo, 0, len(tasks))
	for _, task := range tasks {
		assignmentInfos = append(assignmentInfos, database.NewAssignmentInfo(info, task, fields.Assignments[task]))
	}

	created, err := be.DB.CreateProjectInfo(ctx, info, assignmentInfos)
	if err != nil {
		return nil, err
	}

	if be.Metrics != nil {
		be.Metrics.AddProjectCreated()
	}
	logging.From(ctx).Infof("project %s created: %d assignments", created.ID, len(assignmentInfos))

	return toProject(created, assignmentInfos, names, be), nil
}

// List returns the projects of the caller, newest first, with their current
// assignments and derived status.
func List(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
) ([]*types.Project, error) {
	if err := authz.CheckRole(caller, types.RoleManager); err != nil {
		return nil, err
	}

	infos, err := be.DB.ListProjectInfos(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", caller.ID, err)
	}
	if len(infos) == 0 {
		return []*types.Project{}, nil
	}

	projectIDs := make([]types.ID, 0, len(infos))
	for _, info := range infos {
		projectIDs = append(projectIDs, info.ID)
	}
	assignmentInfos, err := be.DB.ListAssignmentInfosByProjectIDs(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("list assignments of projects: %w", err)
	}

	names, err := memberNames(ctx, be, assignmentInfos)
	if err != nil {
		return nil, err
	}

	byProject := make(map[types.ID][]*database.AssignmentInfo)
	for _, info := range assignmentInfos {
		byProject[info.ProjectID] = append(byProject[info.ProjectID], info)
	}

	projects := make([]*types.Project, 0, len(infos))
	for _, info := range infos {
		projects = append(projects, toProject(info, byProject[info.ID], names, be))
	}
	return projects, nil
}

// Accept marks the project of the caller as accepted. The project must be
// awaiting acceptance and accepted only once.
func Accept(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	id types.ID,
) (*types.Project, error) {
	if err := authz.CheckRole(caller, types.RoleManager); err != nil {
		return nil, err
	}

	info, err := be.DB.FindProjectInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckOwner(caller, info.ManagerID); err != nil {
		return nil, fmt.Errorf("project %s: %w", id, err)
	}
	if info.Accepted {
		return nil, fmt.Errorf("%s: %w", id, database.ErrProjectAlreadyAccepted)
	}

	assignmentInfos, err := be.DB.ListAssignmentInfosByProjectIDs(ctx, []types.ID{id})
	if err != nil {
		return nil, fmt.Errorf("list assignments of %s: %w", id, err)
	}
	project := toProject(info, assignmentInfos, nil, be)
	if project.Status != types.ProjectAwaitingAcceptance {
		return nil, fmt.Errorf("project %s is %s: %w", id, project.Status, ErrNotAwaitingAcceptance)
	}

	accepted, err := be.DB.AcceptProjectInfo(ctx, caller.ID, id, be.Now())
	if err != nil {
		return nil, err
	}

	if be.Metrics != nil {
		be.Metrics.AddProjectAccepted()
	}
	logging.From(ctx).Infof("project %s accepted", id)

	return toProject(accepted, assignmentInfos, nil, be), nil
}

// Reassign hands the task of a rejected assignment of the caller's project
// to another worker. The rejected assignment stays as it is and is linked
// to the new pending one.
func Reassign(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	assignmentID types.ID,
	memberID types.ID,
) (*types.Assignment, error) {
	if err := authz.CheckRole(caller, types.RoleManager); err != nil {
		return nil, err
	}
	if err := memberID.Validate(); err != nil {
		return nil, err
	}

	info, err := be.DB.FindAssignmentInfoByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	project, err := be.DB.FindProjectInfoByID(ctx, info.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckOwner(caller, project.ManagerID); err != nil {
		return nil, fmt.Errorf("project %s: %w", project.ID, err)
	}
	if !info.IsCurrent() {
		return nil, fmt.Errorf("%s: %w", assignmentID, database.ErrAssignmentAlreadyReplaced)
	}
	if info.Status != types.AssignmentRejected {
		return nil, fmt.Errorf("assignment %s is %s: %w", assignmentID, info.Status, ErrNotRejected)
	}
	workers, err := checkWorkers(ctx, be, []types.ID{memberID})
	if err != nil {
		return nil, err
	}

	replacement, err := be.DB.ReplaceAssignmentInfo(ctx, assignmentID, memberID)
	if err != nil {
		return nil, err
	}
	logging.From(ctx).Infof("assignment %s replaced by %s", assignmentID, replacement.ID)

	assignment := replacement.ToAssignment()
	assignment.MemberName = workers[memberID].Name
	return assignment, nil
}

// checkWorkers checks that every worker exists and is an active member and
// returns the workers by ID.
func checkWorkers(
	ctx context.Context,
	be *backend.Backend,
	ids []types.ID,
) (map[types.ID]*database.UserInfo, error) {
	infos, err := be.DB.FindUserInfosByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find workers %s: %w", types.JoinIDs(ids), err)
	}

	users := make(map[types.ID]*database.UserInfo, len(infos))
	for _, info := range infos {
		users[info.ID] = info
	}
	for _, id := range ids {
		user, ok := users[id]
		if !ok || !user.IsActiveMember() {
			return nil, fmt.Errorf("%s: %w", id, ErrIneligibleWorker)
		}
	}

	return users, nil
}

func memberNames(
	ctx context.Context,
	be *backend.Backend,
	assignments []*database.AssignmentInfo,
) (map[types.ID]string, error) {
	var ids []types.ID
	seen := make(map[types.ID]bool)
	for _, info := range assignments {
		if !seen[info.MemberID] {
			seen[info.MemberID] = true
			ids = append(ids, info.MemberID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	infos, err := be.DB.FindUserInfosByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find members %s: %w", types.JoinIDs(ids), err)
	}

	names := make(map[types.ID]string, len(infos))
	for _, info := range infos {
		names[info.ID] = info.Name
	}
	return names, nil
}

// toProject builds the project with its current assignments in task order
// and derives its status at the backend clock.
func toProject(
	info *database.ProjectInfo,
	assignmentInfos []*database.AssignmentInfo,
	names map[types.ID]string,
	be *backend.Backend,
) *types.Project {
	assignments := make([]*types.Assignment, 0, len(assignmentInfos))
	for _, assignmentInfo := range assignmentInfos {
		if !assignmentInfo.IsCurrent() {
			continue
		}

		assignment := assignmentInfo.ToAssignment()
		assignment.MemberName = names[assignment.MemberID]
		assignments = append(assignments, assignment)
	}
	sort.SliceStable(assignments, func(i, j int) bool {
		if assignments[i].Task.Order() != assignments[j].Task.Order() {
			return assignments[i].Task.Order() < assignments[j].Task.Order()
		}
		return assignments[i].CreatedAt.Before(assignments[j].CreatedAt)
	})

	project := info.ToProject()
	project.Assignments = assignments
	project.Status = DeriveStatus(assignments, info.Deadline, be.Now())
	project.StatusLabel = project.Status.Label()
	return project
}
