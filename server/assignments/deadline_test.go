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

package assignments_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/server/assignments"
)

func at(value string) time.Time {
	t, err := time.ParseInLocation(types.OfficeTimeLayout, value, types.OfficeZone)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeductionNote(t *testing.T) {
	tests := []struct {
		name     string
		deadline types.Date
		now      time.Time
		days     int
		note     string
	}{
		{"late by days test", "2025-06-01", at("2025-06-04 10:00:00"), 3, "overdue by 3 days"},
		{"before deadline test", "2025-06-10", at("2025-06-05 00:00:00"), 0, ""},
		{"on deadline day test", "2025-06-01", at("2025-06-01 23:59:59"), 0, ""},
		{"at due instant test", "2025-06-01", at("2025-06-02 00:00:00"), 0, ""},
		{"just after due test", "2025-06-01", at("2025-06-02 00:00:01"), 1, "overdue by 1 days"},
		{"whole days test", "2025-06-01", at("2025-06-04 00:00:00"), 2, "overdue by 2 days"},
		{"invalid deadline test", "someday", at("2025-06-04 00:00:00"), 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, assignments.OverdueDays(tt.deadline, tt.now))
			assert.Equal(t, tt.note, assignments.DeductionNote(tt.deadline, tt.now))
		})
	}
}
