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

package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/cmd/locahub/printer"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List the projects of the manager, newest first",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			ctx := context.Background()
			projects, err := cli.ListProjects(ctx)
			if err != nil {
				return err
			}

			tw := printer.NewTable(table.Row{
				"ID",
				"TITLE",
				"EPISODE",
				"LANGUAGE",
				"MINUTES",
				"DEADLINE",
				"STATUS",
				"ASSIGNMENTS",
			})
			for _, project := range projects {
				tw.AppendRow(table.Row{
					project.ID,
					project.Title,
					project.Episode,
					project.Language,
					project.Minutes,
					project.Deadline,
					project.StatusLabel,
					summarize(project.Assignments),
				})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

// summarize renders assignments as "task:member(status)" pairs.
func summarize(assignments []*types.Assignment) string {
	parts := make([]string, 0, len(assignments))
	for _, a := range assignments {
		parts = append(parts, fmt.Sprintf("%s:%s(%s)", a.Task, printer.OrDash(a.MemberName), a.Status))
	}
	return strings.Join(parts, " ")
}

func init() {
	SubCmd.AddCommand(newListCommand())
}
