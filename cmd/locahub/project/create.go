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

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
)

var (
	title       string
	episode     string
	language    string
	minutes     int
	deadline    string
	assignments map[string]string
)

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   "Create a project and assign its tasks",
		Example: `  locahub project create --title "Night Patrol" --episode EP01 --language 日语 --minutes 24 \
    --deadline 2025-06-10 --assign 翻译=6650f1a2b3c4d5e6f7a8b9c0,审核=6650f1a2b3c4d5e6f7a8b9c1`,
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := &types.CreateProjectFields{
				Title:       title,
				Episode:     episode,
				Language:    language,
				Minutes:     minutes,
				Deadline:    deadline,
				Assignments: make(map[types.Task]types.ID, len(assignments)),
			}
			for task, memberID := range assignments {
				fields.Assignments[types.Task(task)] = types.ID(memberID)
			}

			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			project, err := cli.CreateProject(context.Background(), fields)
			if err != nil {
				return err
			}

			cmd.Printf("created project %s (%s)\n", project.ID, project.StatusLabel)
			return nil
		},
	}
}

func init() {
	cmd := newCreateCommand()
	cmd.Flags().StringVar(&title, "title", "", "Title of the project")
	cmd.Flags().StringVar(&episode, "episode", "", "Episode of the project")
	cmd.Flags().StringVar(&language, "language", "", "Language the project is localized into")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Length of the episode in minutes")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline date, YYYY-MM-DD")
	cmd.Flags().StringToStringVar(&assignments, "assign", nil, "Task to member ID, e.g. 翻译=<id>")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("assign")
	SubCmd.AddCommand(cmd)
}
