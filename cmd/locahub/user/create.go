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

package user

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
)

var createFields = &types.CreateUserFields{}

var createSkills []string

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   "Create an account",
		Example: `  locahub user create -u member.kim -p member123 --name Kim --role member --skill 日语:翻译:0.8:A`,
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := parseSkills(createSkills)
			if err != nil {
				return err
			}
			createFields.Skills = skills

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			user, err := cli.CreateUser(context.Background(), createFields)
			if err != nil {
				return err
			}

			cmd.Printf("created %s %s (%s)\n", user.Role, user.Username, user.ID)
			return nil
		},
	}
}

func init() {
	cmd := newCreateCommand()
	cmd.Flags().StringVarP(&createFields.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&createFields.Password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&createFields.Name, "name", "", "Display name")
	cmd.Flags().StringVar((*string)(&createFields.Role), "role", string(types.RoleMember), "admin, manager or member")
	cmd.Flags().StringVar(&createFields.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&createFields.Email, "email", "", "Email address")
	cmd.Flags().StringArrayVar(&createSkills, "skill", nil, "Skill of a member, LANGUAGE:TASK:PRICE:RATING")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	SubCmd.AddCommand(cmd)
}
