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

// Package assignment provides the assignment command of the Locahub CLI.
package assignment

import (
	"github.com/spf13/cobra"
)

var (
	// SubCmd represents the assignment command
	SubCmd = &cobra.Command{
		Use:     "assignment [command]",
		Short:   "Work on the assignments of the logged in member",
		Aliases: []string{"as"},
	}
)
