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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	t.Run("ValidateValue test", func(t *testing.T) {
		assert.NoError(t, ValidateValue("member.kim", "required,username"))

		err := ValidateValue("member kim", "required,username")
		assert.Equal(t, "username", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("B", "rating"))
		err = ValidateValue("E", "rating")
		assert.Equal(t, "rating", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("2025-06-01", "date"))
		err = ValidateValue("2025-6-1", "date")
		assert.Equal(t, "date", err.(Violation).Tag)
		err = ValidateValue("2025-02-30", "date")
		assert.Equal(t, "date", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("2025-06", "year_month"))
		err = ValidateValue("2025-13", "year_month")
		assert.Equal(t, "year_month", err.(Violation).Tag)

		assert.NoError(t, ValidateValue("+86 138-0000-0000", "omitempty,phone"))
		assert.NoError(t, ValidateValue("", "omitempty,phone"))
		err = ValidateValue("call me", "omitempty,phone")
		assert.Equal(t, "phone", err.(Violation).Tag)
	})

	t.Run("ValidateStruct test", func(t *testing.T) {
		type fields struct {
			Title    string `json:"title" validate:"required"`
			Deadline string `json:"deadline" validate:"required,date"`
			Minutes  int    `json:"minutes" validate:"gt=0"`
		}

		assert.NoError(t, ValidateStruct(fields{
			Title:    "Episode pack",
			Deadline: "2025-06-01",
			Minutes:  24,
		}))

		err := ValidateStruct(fields{Deadline: "tomorrow"})
		structErr, ok := err.(*StructError)
		assert.True(t, ok)
		assert.Len(t, structErr.Violations, 3)

		assert.Equal(t, "title", structErr.Violations[0].Field)
		assert.Equal(t, "required", structErr.Violations[0].Tag)
		assert.Equal(t, "deadline", structErr.Violations[1].Field)
		assert.Equal(t, "date", structErr.Violations[1].Tag)
		assert.Equal(t, "deadline must be a date in YYYY-MM-DD format", structErr.Violations[1].Description)
		assert.Equal(t, "minutes", structErr.Violations[2].Field)
	})
}
