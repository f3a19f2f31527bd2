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

func newReassignCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reassign [assignment id] [member id]",
		Short:   "Hand a rejected assignment to another member",
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

			assignment, err := cli.Reassign(context.Background(), types.ID(args[0]), types.ID(args[1]))
			if err != nil {
				return err
			}

			cmd.Printf("%s is now assigned to %s (%s)\n", assignment.Task, assignment.MemberName, assignment.ID)
			return nil
		},
	}
}

func init() {
	SubCmd.AddCommand(newReassignCommand())
}
