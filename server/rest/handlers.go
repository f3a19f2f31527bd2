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

package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/assignments"
	"github.com/locahub/locahub/server/members"
	"github.com/locahub/locahub/server/projects"
	"github.com/locahub/locahub/server/rest/httphelper"
	"github.com/locahub/locahub/server/users"
)

// HealthPath is the path of the liveness check.
const HealthPath = "/healthz"

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

// HealthResponse is the body of the liveness check.
type HealthResponse struct {
	Status string `json:"status"`
}

type reassignRequest struct {
	MemberID types.ID `json:"member_id"`
}

type transitionRequest struct {
	Action string `json:"action"`
}

type statusRequest struct {
	Status types.UserStatus `json:"status"`
}

type deleteUserRequest struct {
	AdminPassword string `json:"adminPassword"`
}

func (s *Server) registerRoutes() {
	s.public(http.MethodGet, HealthPath, s.health)

	s.public(http.MethodPost, "/api/auth/login", s.logIn)
	s.private(http.MethodPost, "/api/auth/password", s.changePassword)

	s.private(http.MethodGet, "/api/manager/members/eligible", s.findEligible, types.RoleManager)
	s.private(http.MethodGet, "/api/manager/projects", s.listProjects, types.RoleManager)
	s.private(http.MethodPost, "/api/manager/projects", s.createProject, types.RoleManager)
	s.private(http.MethodPost, "/api/manager/projects/{id}/accept", s.acceptProject, types.RoleManager)
	s.private(http.MethodPost, "/api/manager/assignments/{id}/reassign", s.reassign, types.RoleManager)

	s.private(http.MethodGet, "/api/member/assignments", s.listMemberAssignments, types.RoleMember)
	s.private(http.MethodPatch, "/api/member/assignments/{id}", s.transitionAssignment, types.RoleMember)

	s.private(http.MethodGet, "/api/admin/users", s.listUsers, types.RoleAdmin, types.RoleManager)
	s.private(http.MethodPost, "/api/admin/users", s.createUser, types.RoleAdmin)
	s.private(http.MethodPatch, "/api/admin/users/{id}", s.updateUser, types.RoleAdmin)
	s.private(http.MethodPatch, "/api/admin/users/{id}/status", s.setUserStatus, types.RoleAdmin)
	s.private(http.MethodDelete, "/api/admin/users/{id}", s.deleteUser, types.RoleAdmin)
	s.private(http.MethodGet, "/api/admin/users/{id}/skills", s.getSkills, types.RoleAdmin, types.RoleManager)
}

// pathID returns the ID in the path of the request.
func pathID(r *http.Request) (types.ID, error) {
	id := types.ID(mux.Vars(r)["id"])
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Server) health(_ *http.Request) (int, any, error) {
	return http.StatusOK, &HealthResponse{Status: "SERVING"}, nil
}

func (s *Server) logIn(r *http.Request) (int, any, error) {
	if !s.loginLimiter.Allow(r) {
		return 0, nil, ErrTooManyLoginAttempts
	}

	fields := &types.LoginFields{}
	if err := httphelper.DecodeJSON(r, fields); err != nil {
		return 0, nil, err
	}

	user, err := users.LogIn(r.Context(), s.be, fields)
	if err != nil {
		return 0, nil, err
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return 0, nil, err
	}

	return http.StatusOK, &LoginResponse{Token: token, User: user}, nil
}

func (s *Server) changePassword(r *http.Request) (int, any, error) {
	fields := &types.ChangePasswordFields{}
	if err := httphelper.DecodeJSON(r, fields); err != nil {
		return 0, nil, err
	}

	if err := users.ChangePassword(r.Context(), s.be, users.From(r.Context()), fields); err != nil {
		return 0, nil, err
	}
	return http.StatusNoContent, nil, nil
}

func (s *Server) findEligible(r *http.Request) (int, any, error) {
	query := r.URL.Query()
	workers, err := members.FindEligible(
		r.Context(),
		s.be,
		users.From(r.Context()),
		query.Get("language"),
		types.Task(query.Get("task")),
		query.Get("keyword"),
	)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, workers, nil
}

func (s *Server) listProjects(r *http.Request) (int, any, error) {
	list, err := projects.List(r.Context(), s.be, users.From(r.Context()))
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, list, nil
}

func (s *Server) createProject(r *http.Request) (int, any, error) {
	fields := &types.CreateProjectFields{}
	if err := httphelper.DecodeJSON(r, fields); err != nil {
		return 0, nil, err
	}

	project, err := projects.Create(r.Context(), s.be, users.From(r.Context()), fields)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, project, nil
}

func (s *Server) acceptProject(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	project, err := projects.Accept(r.Context(), s.be, users.From(r.Context()), id)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, project, nil
}

func (s *Server) reassign(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	req := &reassignRequest{}
	if err := httphelper.DecodeJSON(r, req); err != nil {
		return 0, nil, err
	}

	assignment, err := projects.Reassign(r.Context(), s.be, users.From(r.Context()), id, req.MemberID)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, assignment, nil
}

func (s *Server) listMemberAssignments(r *http.Request) (int, any, error) {
	board, err := assignments.ListForMember(
		r.Context(),
		s.be,
		users.From(r.Context()),
		r.URL.Query().Get("month"),
	)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, board, nil
}

func (s *Server) transitionAssignment(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	req := &transitionRequest{}
	if err := httphelper.DecodeJSON(r, req); err != nil {
		return 0, nil, err
	}

	action, err := types.ParseAction(req.Action)
	if err != nil {
		return 0, nil, err
	}

	assignment, err := assignments.Transition(r.Context(), s.be, users.From(r.Context()), id, action)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, assignment, nil
}

func (s *Server) listUsers(r *http.Request) (int, any, error) {
	list, err := users.List(r.Context(), s.be, users.From(r.Context()), r.URL.Query().Get("name"))
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, list, nil
}

func (s *Server) createUser(r *http.Request) (int, any, error) {
	fields := &types.CreateUserFields{}
	if err := httphelper.DecodeJSON(r, fields); err != nil {
		return 0, nil, err
	}

	user, err := users.Create(r.Context(), s.be, users.From(r.Context()), fields)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusCreated, user, nil
}

func (s *Server) updateUser(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	fields := &types.UpdatableUserFields{}
	if err := httphelper.DecodeJSON(r, fields); err != nil {
		return 0, nil, err
	}

	user, err := users.Update(r.Context(), s.be, users.From(r.Context()), id, fields)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, user, nil
}

func (s *Server) setUserStatus(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	req := &statusRequest{}
	if err := httphelper.DecodeJSON(r, req); err != nil {
		return 0, nil, err
	}

	user, err := users.SetStatus(r.Context(), s.be, users.From(r.Context()), id, req.Status)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, user, nil
}

func (s *Server) deleteUser(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	req := &deleteUserRequest{}
	if err := httphelper.DecodeJSON(r, req); err != nil {
		return 0, nil, err
	}

	if err := users.Delete(r.Context(), s.be, users.From(r.Context()), id, req.AdminPassword); err != nil {
		return 0, nil, err
	}
	return http.StatusNoContent, nil, nil
}

func (s *Server) getSkills(r *http.Request) (int, any, error) {
	id, err := pathID(r)
	if err != nil {
		return 0, nil, err
	}

	skills, err := users.GetSkills(r.Context(), s.be, users.From(r.Context()), id)
	if err != nil {
		return 0, nil, err
	}
	return http.StatusOK, skills, nil
}
