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

// Package members provides the business logic for finding workers eligible
// for a task.
package members

import (
	"context"
	"fmt"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
	"github.com/locahub/locahub/server/backend"
)

var (
	// ErrEmptyLanguage is returned when the language of the query is empty.
	ErrEmptyLanguage = errors.InvalidArgument("language is required").WithCode("ErrEmptyLanguage")

	// ErrEmptyTask is returned when the task of the query is empty.
	ErrEmptyTask = errors.InvalidArgument("task is required").WithCode("ErrEmptyTask")
)

// FindEligible returns the active members holding a skill of exactly the
// given language and task, ordered by display name. When query is not
// empty, only members whose username or display name contains it are
// returned.
func FindEligible(
	ctx context.Context,
	be *backend.Backend,
	caller *types.Caller,
	language string,
	task types.Task,
	query string,
) ([]*types.Worker, error) {
	if err := authz.CheckRole(caller, types.RoleManager); err != nil {
		return nil, err
	}

	if language == "" {
		return nil, ErrEmptyLanguage
	}
	if task == "" {
		return nil, ErrEmptyTask
	}

	infos, err := be.DB.FindEligibleMemberInfos(ctx, language, task, query)
	if err != nil {
		return nil, fmt.Errorf("find eligible members of %s/%s: %w", language, task, err)
	}

	workers := make([]*types.Worker, 0, len(infos))
	for _, info := range infos {
		workers = append(workers, info.ToWorker())
	}

	return workers, nil
}
