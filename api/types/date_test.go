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

package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/locahub/locahub/api/types"
)

func TestDate(t *testing.T) {
	t.Run("parse date test", func(t *testing.T) {
		d, err := types.ParseDate("2025-06-01")
		assert.NoError(t, err)
		assert.Equal(t, types.Date("2025-06-01"), d)

		_, err = types.ParseDate("06/01/2025")
		assert.ErrorIs(t, err, types.ErrInvalidDate)
	})

	t.Run("due at test", func(t *testing.T) {
		due := types.Date("2025-06-01").DueAt()
		assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, types.OfficeZone), due)
		assert.True(t, types.Date("broken").DueAt().IsZero())
	})

	t.Run("is passed test", func(t *testing.T) {
		d := types.Date("2025-06-01")
		assert.False(t, d.IsPassed(time.Date(2025, 6, 1, 23, 59, 59, 0, types.OfficeZone)))
		assert.False(t, d.IsPassed(time.Date(2025, 6, 2, 0, 0, 0, 0, types.OfficeZone)))
		assert.True(t, d.IsPassed(time.Date(2025, 6, 2, 0, 0, 1, 0, types.OfficeZone)))

		// 2025-06-01T16:30Z is 2025-06-02 00:30 in the office zone.
		assert.True(t, d.IsPassed(time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC)))
		assert.False(t, types.Date("").IsPassed(time.Now()))
	})

	t.Run("format office time test", func(t *testing.T) {
		instant := time.Date(2025, 6, 4, 2, 0, 0, 987654321, time.UTC)
		assert.Equal(t, "2025-06-04 10:00:00", types.FormatOfficeTime(instant))
	})
}

func TestYearMonth(t *testing.T) {
	t.Run("parse test", func(t *testing.T) {
		m, err := types.ParseYearMonth("2025-06")
		assert.NoError(t, err)
		assert.Equal(t, types.YearMonth{Year: 2025, Month: time.June}, m)
		assert.Equal(t, "2025-06", m.String())

		_, err = types.ParseYearMonth("2025-6-1")
		assert.ErrorIs(t, err, types.ErrInvalidYearMonth)
	})

	t.Run("window test", func(t *testing.T) {
		m := types.YearMonth{Year: 2025, Month: time.December}
		assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, types.OfficeZone), m.Start())
		assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, types.OfficeZone), m.End())

		assert.True(t, m.Contains(m.Start()))
		assert.False(t, m.Contains(m.End()))
		assert.True(t, m.Contains(m.End().Add(-time.Second)))
	})

	t.Run("month of instant test", func(t *testing.T) {
		// 2025-05-31T16:00Z is already June in the office zone.
		assert.Equal(t, "2025-06", types.YearMonthOf(time.Date(2025, 5, 31, 16, 0, 0, 0, time.UTC)).String())
		assert.Equal(t, "2025-05", types.YearMonthOf(time.Date(2025, 5, 31, 15, 59, 59, 0, time.UTC)).String())
	})

	t.Run("prev and after test", func(t *testing.T) {
		jan := types.YearMonth{Year: 2025, Month: time.January}
		assert.Equal(t, types.YearMonth{Year: 2024, Month: time.December}, jan.Prev())
		assert.True(t, jan.After(jan.Prev()))
		assert.False(t, jan.Prev().After(jan))
	})

	t.Run("json test", func(t *testing.T) {
		var body struct {
			Month types.YearMonth `json:"month"`
		}
		assert.NoError(t, json.Unmarshal([]byte(`{"month":"2025-05"}`), &body))
		assert.Equal(t, types.YearMonth{Year: 2025, Month: time.May}, body.Month)

		encoded, err := json.Marshal(body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"month":"2025-05"}`, string(encoded))
	})
}
