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

// Package user provides the user command of the Locahub CLI.
package user

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/locahub/locahub/api/types"
)

var (
	// SubCmd represents the user command
	SubCmd = &cobra.Command{
		Use:   "user [command]",
		Short: "Manage accounts (admin only)",
	}
)

// errInvalidSkill is returned when a skill flag is not LANGUAGE:TASK:PRICE:RATING.
var errInvalidSkill = errors.New("skill must be LANGUAGE:TASK:PRICE:RATING")

// parseSkills parses skills written as LANGUAGE:TASK:PRICE:RATING.
func parseSkills(values []string) ([]*types.Skill, error) {
	skills := make([]*types.Skill, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("%s: %w", value, errInvalidSkill)
		}

		price, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", value, errInvalidSkill)
		}

		skills = append(skills, &types.Skill{
			Language: parts[0],
			Task:     types.Task(parts[1]),
			Price:    price,
			Rating:   types.Rating(parts[3]),
		})
	}
	return skills, nil
}
