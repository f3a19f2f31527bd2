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

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/admin"
	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/pkg/errors"
)

// demoUsers are the accounts created by the seed command.
var demoUsers = []*types.CreateUserFields{
	{
		Username: "manager",
		Password: "manager123",
		Name:     "项目经理",
		Role:     types.RoleManager,
		Phone:    "2222222222",
		Email:    "manager@example.com",
	},
	{
		Username: "member",
		Password: "member123",
		Name:     "接单员",
		Role:     types.RoleMember,
		Phone:    "3333333333",
		Email:    "member@example.com",
		Skills: []*types.Skill{
			{Language: "日语", Task: types.TaskTranslation, Price: 0.8, Rating: types.RatingA},
			{Language: "日语", Task: types.TaskQualityCheck, Price: 0.9, Rating: types.RatingB},
			{Language: "英语", Task: types.TaskPostProduction, Price: 1.0, Rating: types.RatingC},
			{Language: "日语", Task: types.TaskReview, Price: 1.1, Rating: types.RatingB},
		},
	},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "seed",
		Short:   "Create the demo manager and member (admin only)",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			return seed(context.Background(), cmd, cli)
		},
	}
}

func seed(ctx context.Context, cmd *cobra.Command, cli *admin.Client) error {
	for _, fields := range demoUsers {
		user, err := cli.CreateUser(ctx, fields)
		apiErr := &admin.APIError{}
		if errors.As(err, &apiErr) && apiErr.Code == "ErrUserAlreadyExists" {
			cmd.Printf("%s already exists, skipped\n", fields.Username)
			continue
		}
		if err != nil {
			return err
		}

		cmd.Printf("created %s %s (%s)\n", user.Role, user.Username, user.ID)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(newSeedCmd())
}
