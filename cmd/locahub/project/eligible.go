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

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
	"github.com/locahub/locahub/cmd/locahub/printer"
)

var keyword string

func newEligibleCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "eligible [language] [task]",
		Short:   "List the active members who can do the task in the language",
		Args:    cobra.ExactArgs(2),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			workers, err := cli.FindEligible(context.Background(), args[0], types.Task(args[1]), keyword)
			if err != nil {
				return err
			}

			tw := printer.NewTable(table.Row{"ID", "USERNAME", "NAME"})
			for _, worker := range workers {
				tw.AppendRow(table.Row{worker.ID, worker.Username, worker.Name})
			}
			cmd.Printf("%s\n", tw.Render())

			return nil
		},
	}
}

func init() {
	cmd := newEligibleCommand()
	cmd.Flags().StringVarP(&keyword, "keyword", "k", "", "Part of the username or name")
	SubCmd.AddCommand(cmd)
}
