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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/cmd/locahub/printer"
)

var name string

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List managers and members",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			users, err := cli.ListUsers(context.Background(), name)
			if err != nil {
				return err
			}

			tw := printer.NewTable(table.Row{"ID", "USERNAME", "NAME", "ROLE", "STATUS", "PHONE", "EMAIL", "CREATED AT"})
			for _, user := range users {
				tw.AppendRow(table.Row{
					user.ID,
					user.Username,
					user.Name,
					user.Role,
					user.Status,
					printer.OrDash(user.Phone),
					printer.OrDash(user.Email),
					types.FormatOfficeTime(user.CreatedAt),
				})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	cmd := newListCommand()
	cmd.Flags().StringVarP(&name, "name", "n", "", "Part of the display name")
	SubCmd.AddCommand(cmd)
}
