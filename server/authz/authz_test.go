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

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/pkg/errors"
	"github.com/locahub/locahub/server/authz"
)

func TestCheckRole(t *testing.T) {
	manager := &types.Caller{ID: "000000000000000000000001", Role: types.RoleManager}

	assert.NoError(t, authz.CheckRole(manager, types.RoleManager))
	assert.NoError(t, authz.CheckRole(manager, types.RoleAdmin, types.RoleManager))

	err := authz.CheckRole(manager, types.RoleAdmin)
	assert.ErrorIs(t, err, authz.ErrInsufficientPermission)
	assert.Equal(t, errors.ErrCodePermissionDenied, errors.StatusOf(err))

	assert.ErrorIs(t, authz.CheckRole(nil, types.RoleMember), authz.ErrInsufficientPermission)
}

func TestCheckOwner(t *testing.T) {
	member := &types.Caller{ID: "000000000000000000000002", Role: types.RoleMember}

	assert.NoError(t, authz.CheckOwner(member, member.ID))
	assert.ErrorIs(t, authz.CheckOwner(member, "000000000000000000000003"), authz.ErrNotOwner)
	assert.ErrorIs(t, authz.CheckOwner(nil, member.ID), authz.ErrNotOwner)
}
