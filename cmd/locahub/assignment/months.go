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

	"github.com/locahub/locahub/cmd/locahub/config"
)

func newMonthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "months",
		Short:   "List the months with completed work, newest first",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := config.Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			board, err := cli.ListAssignments(context.Background(), "")
			if err != nil {
				return err
			}

			for _, m := range board.AvailableMonths {
				cmd.Println(m)
			}
			return nil
		},
	}
}

func init() {
	SubCmd.AddCommand(newMonthsCommand())
}
