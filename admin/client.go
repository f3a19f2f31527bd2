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

// Package admin provides the client of the Locahub REST API used by the CLI.
package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/rest"
	"github.com/locahub/locahub/server/rest/httphelper"
)

// Option configures Options.
type Option func(*Options)

// WithToken configures the token of the client.
func WithToken(token string) Option {
	return func(o *Options) { o.Token = token }
}

// WithLogger configures the Logger of the client.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithHTTPClient configures the HTTP client used to send requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) { o.HTTPClient = client }
}

// Options configures how we set up the client.
type Options struct {
	// Token is the token of the user.
	Token string

	// Logger is the Logger of the client.
	Logger *zap.Logger

	// HTTPClient is the base HTTP client. Its transport is wrapped to carry
	// the token.
	HTTPClient *http.Client
}

// APIError is returned when the server answers with an error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []httphelper.Detail
}

// Error returns the error message.
func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	var sb strings.Builder
	sb.WriteString(e.Code)
	for _, detail := range e.Details {
		sb.WriteString("\n  ")
		sb.WriteString(detail.Field)
		sb.WriteString(": ")
		sb.WriteString(detail.Description)
	}
	return sb.String()
}

// Client is a client of the Locahub REST API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	authTransport *AuthTransport

	logger *zap.Logger
}

// New creates an instance of Client for the server at the given address.
func New(addr string, opts ...Option) (*Client, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	baseURL := strings.TrimSuffix(addr, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse address %s: %w", addr, err)
	}

	logger := options.Logger
	if logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("new logger: %w", err)
		}
		logger = l
	}

	httpClient := &http.Client{}
	if options.HTTPClient != nil {
		*httpClient = *options.HTTPClient
	}
	authTransport := NewAuthTransport(options.Token, httpClient.Transport)
	httpClient.Transport = authTransport

	return &Client{
		baseURL:       baseURL,
		httpClient:    httpClient,
		authTransport: authTransport,
		logger:        logger,
	}, nil
}

// Close closes the idle connections of the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Health checks whether the server is serving.
func (c *Client) Health(ctx context.Context) (string, error) {
	health := &rest.HealthResponse{}
	if err := c.do(ctx, http.MethodGet, rest.HealthPath, nil, health); err != nil {
		return "", fmt.Errorf("check health: %w", err)
	}
	return health.Status, nil
}

// LogIn logs in a user and keeps the token for later requests.
func (c *Client) LogIn(
	ctx context.Context,
	username,
	password string,
) (string, *types.User, error) {
	login := &rest.LoginResponse{}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", &types.LoginFields{
		Username: username,
		Password: password,
	}, login); err != nil {
		return "", nil, fmt.Errorf("log in user %s: %w", username, err)
	}

	c.authTransport.SetToken(login.Token)
	return login.Token, login.User, nil
}

// ChangePassword changes the password of the logged in user.
func (c *Client) ChangePassword(ctx context.Context, password, newPassword string) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/password", &types.ChangePasswordFields{
		Password:    password,
		NewPassword: newPassword,
	}, nil); err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	return nil
}

// FindEligible returns the members who can do the task in the language.
func (c *Client) FindEligible(
	ctx context.Context,
	language string,
	task types.Task,
	keyword string,
) ([]*types.Worker, error) {
	query := url.Values{}
	query.Set("language", language)
	query.Set("task", string(task))
	if keyword != "" {
		query.Set("keyword", keyword)
	}

	var workers []*types.Worker
	if err := c.do(ctx, http.MethodGet, "/api/manager/members/eligible?"+query.Encode(), nil, &workers); err != nil {
		return nil, fmt.Errorf("find eligible members: %w", err)
	}
	return workers, nil
}

// ListProjects returns the projects of the logged in manager.
func (c *Client) ListProjects(ctx context.Context) ([]*types.Project, error) {
	var projects []*types.Project
	if err := c.do(ctx, http.MethodGet, "/api/manager/projects", nil, &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a project with its assignments.
func (c *Client) CreateProject(
	ctx context.Context,
	fields *types.CreateProjectFields,
) (*types.Project, error) {
	project := &types.Project{}
	if err := c.do(ctx, http.MethodPost, "/api/manager/projects", fields, project); err != nil {
		return nil, fmt.Errorf("create project %s: %w", fields.Title, err)
	}
	return project, nil
}

// AcceptProject accepts the completed project.
func (c *Client) AcceptProject(ctx context.Context, id types.ID) (*types.Project, error) {
	project := &types.Project{}
	if err := c.do(ctx, http.MethodPost, "/api/manager/projects/"+id.String()+"/accept", nil, project); err != nil {
		return nil, fmt.Errorf("accept project %s: %w", id, err)
	}
	return project, nil
}

// Reassign hands the rejected assignment to another member.
func (c *Client) Reassign(
	ctx context.Context,
	assignmentID types.ID,
	memberID types.ID,
) (*types.Assignment, error) {
	assignment := &types.Assignment{}
	if err := c.do(
		ctx,
		http.MethodPost,
		"/api/manager/assignments/"+assignmentID.String()+"/reassign",
		map[string]types.ID{"member_id": memberID},
		assignment,
	); err != nil {
		return nil, fmt.Errorf("reassign %s: %w", assignmentID, err)
	}
	return assignment, nil
}

// ListAssignments returns the board of the logged in member. An empty month
// selects the month before the current one.
func (c *Client) ListAssignments(ctx context.Context, month string) (*types.MemberBoard, error) {
	path := "/api/member/assignments"
	if month != "" {
		path += "?" + url.Values{"month": {month}}.Encode()
	}

	board := &types.MemberBoard{}
	if err := c.do(ctx, http.MethodGet, path, nil, board); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return board, nil
}

// TransitionAssignment accepts, rejects or completes the assignment.
func (c *Client) TransitionAssignment(
	ctx context.Context,
	id types.ID,
	action types.Action,
) (*types.Assignment, error) {
	assignment := &types.Assignment{}
	if err := c.do(
		ctx,
		http.MethodPatch,
		"/api/member/assignments/"+id.String(),
		map[string]types.Action{"action": action},
		assignment,
	); err != nil {
		return nil, fmt.Errorf("%s assignment %s: %w", action, id, err)
	}
	return assignment, nil
}

// ListUsers returns the managers and members whose name contains name.
func (c *Client) ListUsers(ctx context.Context, name string) ([]*types.User, error) {
	path := "/api/admin/users"
	if name != "" {
		path += "?" + url.Values{"name": {name}}.Encode()
	}

	var users []*types.User
	if err := c.do(ctx, http.MethodGet, path, nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser creates an account.
func (c *Client) CreateUser(ctx context.Context, fields *types.CreateUserFields) (*types.User, error) {
	user := &types.User{}
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", fields, user); err != nil {
		return nil, fmt.Errorf("create user %s: %w", fields.Username, err)
	}
	return user, nil
}

// UpdateUser updates the account.
func (c *Client) UpdateUser(
	ctx context.Context,
	id types.ID,
	fields *types.UpdatableUserFields,
) (*types.User, error) {
	user := &types.User{}
	if err := c.do(ctx, http.MethodPatch, "/api/admin/users/"+id.String(), fields, user); err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return user, nil
}

// SetUserStatus activates or freezes the account.
func (c *Client) SetUserStatus(
	ctx context.Context,
	id types.ID,
	status types.UserStatus,
) (*types.User, error) {
	user := &types.User{}
	if err := c.do(
		ctx,
		http.MethodPatch,
		"/api/admin/users/"+id.String()+"/status",
		map[string]types.UserStatus{"status": status},
		user,
	); err != nil {
		return nil, fmt.Errorf("set status of user %s: %w", id, err)
	}
	return user, nil
}

// DeleteUser deletes the account. The logged in admin confirms with its own
// password.
func (c *Client) DeleteUser(ctx context.Context, id types.ID, adminPassword string) error {
	if err := c.do(
		ctx,
		http.MethodDelete,
		"/api/admin/users/"+id.String(),
		map[string]string{"adminPassword": adminPassword},
		nil,
	); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}

// GetSkills returns the skills of the member.
func (c *Client) GetSkills(ctx context.Context, id types.ID) ([]*types.Skill, error) {
	var skills []*types.Skill
	if err := c.do(ctx, http.MethodGet, "/api/admin/users/"+id.String()+"/skills", nil, &skills); err != nil {
		return nil, fmt.Errorf("get skills of %s: %w", id, err)
	}
	return skills, nil
}

// do sends the request and decodes the response into out when given.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		errResp := &httphelper.ErrorResponse{}
		if err := json.NewDecoder(resp.Body).Decode(errResp); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Code: resp.Status, Message: "unreadable error body"}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
			Details:    errResp.Details,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
