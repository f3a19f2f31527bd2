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

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/cmd/locahub/config"
)

func newTransitionCommand(action types.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:     string(action) + " [assignment id]",
		Short:   short,
		Args:    cobra.ExactArgs(1),
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			assignment, err := cli.TransitionAssignment(context.Background(), types.ID(args[0]), action)
			if err != nil {
				return err
			}

			cmd.Printf("%s %s\n", assignment.ID, assignment.Status)
			if assignment.DeductionNote != "" {
				cmd.Printf("note: %s\n", assignment.DeductionNote)
			}
			return nil
		},
	}
}

func init() {
	SubCmd.AddCommand(newTransitionCommand(types.ActionAccept, "Accept a pending assignment"))
	SubCmd.AddCommand(newTransitionCommand(types.ActionReject, "Reject a pending assignment"))
	SubCmd.AddCommand(newTransitionCommand(types.ActionComplete, "Complete an accepted assignment"))
}
