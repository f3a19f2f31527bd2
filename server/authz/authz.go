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

// Package authz provides the role and ownership checks applied to callers.
package authz

import (
	"fmt"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
)

var (
	// ErrInsufficientPermission is returned when the role of the caller is
	// not allowed to perform the operation.
	ErrInsufficientPermission = errors.PermissionDenied(
		"insufficient permission",
	).WithCode("ErrInsufficientPermission")

	// ErrNotOwner is returned when the caller acts on a resource of another
	// user.
	ErrNotOwner = errors.PermissionDenied("not the owner").WithCode("ErrNotOwner")
)

// CheckRole checks that the caller has one of the given roles.
func CheckRole(caller *types.Caller, roles ...types.Role) error {
	if caller == nil {
		return ErrInsufficientPermission
	}

	for _, role := range roles {
		if caller.Role == role {
			return nil
		}
	}

	return fmt.Errorf("'%s' cannot perform this operation: %w", caller.Role, ErrInsufficientPermission)
}

// CheckOwner checks that the resource is owned by the caller.
func CheckOwner(caller *types.Caller, ownerID types.ID) error {
	if caller == nil || caller.ID != ownerID {
		return ErrNotOwner
	}

	return nil
}
