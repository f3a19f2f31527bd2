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

package assignment

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/cmd/locahub/printer"
)

var month string

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List pending, accepted and completed assignments",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			board, err := cli.ListAssignments(context.Background(), month)
			if err != nil {
				return err
			}

			tw := printer.NewTable(table.Row{
				"ID",
				"PROJECT",
				"EPISODE",
				"LANGUAGE",
				"TASK",
				"MINUTES",
				"DEADLINE",
				"STATUS",
				"COMPLETED",
				"NOTE",
			})
			for _, group := range [][]*types.MemberAssignment{board.Pending, board.Accepted, board.Completed} {
				for _, a := range group {
					tw.AppendRow(table.Row{
						a.ID,
						a.ProjectTitle,
						a.ProjectEpisode,
						a.ProjectLanguage,
						a.Task,
						a.Minutes,
						a.Deadline,
						a.Status,
						printer.OrDash(a.CompletedTime),
						printer.OrDash(a.DeductionNote),
					})
				}
			}
			cmd.Printf("%s\n", tw.Render())
			cmd.Printf("completed in %s: %d minutes\n", board.Month, board.CompletedMinutes)

			return nil
		},
	}
}

func init() {
	cmd := newListCommand()
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month of the completed work, YYYY-MM (default: last month)")
	SubCmd.AddCommand(cmd)
}
