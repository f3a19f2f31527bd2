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

var (
	updateName   string
	updatePhone  string
	updateEmail  string
	updateSkills []string
)

func newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "update [user id]",
		Short:   "Update the name, contact or skills of an account",
		Args:    cobra.ExactArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := &types.UpdatableUserFields{}
			if cmd.Flags().Changed("name") {
				fields.Name = &updateName
			}
			if cmd.Flags().Changed("phone") {
				fields.Phone = &updatePhone
			}
			if cmd.Flags().Changed("email") {
				fields.Email = &updateEmail
			}
			if cmd.Flags().Changed("skill") {
				skills, err := parseSkills(updateSkills)
				if err != nil {
					return err
				}
				fields.Skills = &skills
			}

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			user, err := cli.UpdateUser(context.Background(), types.ID(args[0]), fields)
			if err != nil {
				return err
			}

			cmd.Printf("updated %s\n", user.Username)
			return nil
		},
	}
}

func init() {
	cmd := newUpdateCommand()
	cmd.Flags().StringVar(&updateName, "name", "", "Display name")
	cmd.Flags().StringVar(&updatePhone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&updateEmail, "email", "", "Email address")
	cmd.Flags().StringArrayVar(&updateSkills, "skill", nil, "Replaces every skill, LANGUAGE:TASK:PRICE:RATING")
	SubCmd.AddCommand(cmd)
}
