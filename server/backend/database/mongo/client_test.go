//go:build integration

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

package mongo_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/server/backend/database/mongo"
	"github.com/locahub/locahub/server/backend/database/testcases"
)

func setupTestClient(t *testing.T) *mongo.Client {
	config := &mongo.Config{
		ConnectionTimeout: "5s",
		ConnectionURI:     "mongodb://localhost:27017/?replicaSet=rs0",
		Database:          fmt.Sprintf("test-locahub-%d", time.Now().Unix()),
		PingTimeout:       "5s",
	}
	assert.NoError(t, config.Validate())

	cli, err := mongo.Dial(config)
	assert.NoError(t, err)

	return cli
}

func TestClient(t *testing.T) {
	cli := setupTestClient(t)
	defer func() {
		assert.NoError(t, cli.Close())
	}()

	t.Run("EnsureDefaultAdminInfo test", func(t *testing.T) {
		testcases.RunEnsureDefaultAdminInfoTest(t, cli)
	})

	t.Run("CreateUserInfo test", func(t *testing.T) {
		testcases.RunCreateUserInfoTest(t, cli)
	})

	t.Run("FindUserInfo test", func(t *testing.T) {
		testcases.RunFindUserInfoTest(t, cli)
	})

	t.Run("ListUserInfos test", func(t *testing.T) {
		testcases.RunListUserInfosTest(t, cli)
	})

	t.Run("UpdateUserInfo test", func(t *testing.T) {
		testcases.RunUpdateUserInfoTest(t, cli)
	})

	t.Run("ChangeUserPassword test", func(t *testing.T) {
		testcases.RunChangeUserPasswordTest(t, cli)
	})

	t.Run("DeleteUserInfo test", func(t *testing.T) {
		testcases.RunDeleteUserInfoTest(t, cli)
	})

	t.Run("FindEligibleMemberInfos test", func(t *testing.T) {
		testcases.RunFindEligibleMemberInfosTest(t, cli)
	})

	t.Run("CreateProjectInfo test", func(t *testing.T) {
		testcases.RunCreateProjectInfoTest(t, cli)
	})

	t.Run("AcceptProjectInfo test", func(t *testing.T) {
		testcases.RunAcceptProjectInfoTest(t, cli)
	})

	t.Run("UpdateAssignmentStatus test", func(t *testing.T) {
		testcases.RunUpdateAssignmentStatusTest(t, cli)
	})

	t.Run("ReplaceAssignmentInfo test", func(t *testing.T) {
		testcases.RunReplaceAssignmentInfoTest(t, cli)
	})
}
