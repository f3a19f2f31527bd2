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

package types

import (
	"fmt"
	"os"

	"github.com/locahub/locahub/internal/validation"
)

func init() {
	if err := validation.RegisterValidation(
		"task",
		func(level validation.FieldLevel) bool {
			return Task(level.Field().String()).IsKnown()
		},
	); err != nil {
		fmt.Fprintln(os.Stderr, "task fields: ", err)
		os.Exit(1)
	}

	if err := validation.RegisterTranslation("task", "{0} must be one of 翻译, 质检, 后期 or 审核"); err != nil {
		fmt.Fprintln(os.Stderr, "task fields: ", err)
		os.Exit(1)
	}
}
