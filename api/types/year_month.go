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
	"time"

	"github.com/locahub/locahub/pkg/errors"
)

// YearMonthLayout is the layout of YearMonth.
const YearMonthLayout = "2006-01"

// ErrInvalidYearMonth is returned when a month is not in YYYY-MM form.
var ErrInvalidYearMonth = errors.InvalidArgument("invalid month").WithCode("ErrInvalidYearMonth")

// YearMonth is a calendar month in the office zone.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(str string) (YearMonth, error) {
	t, err := time.ParseInLocation(YearMonthLayout, str, OfficeZone)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%s: %w", str, ErrInvalidYearMonth)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing the given instant in the office
// zone.
func YearMonthOf(t time.Time) YearMonth {
	local := t.In(OfficeZone)
	return YearMonth{Year: local.Year(), Month: local.Month()}
}

// String returns the YYYY-MM representation.
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero returns whether the month is unset.
func (m YearMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Start returns the first instant of the month.
func (m YearMonth) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, OfficeZone)
}

// End returns the first instant of the next month. The month covers
// [Start, End).
func (m YearMonth) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// Contains returns whether the instant falls within the month.
func (m YearMonth) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.End())
}

// Prev returns the month before m.
func (m YearMonth) Prev() YearMonth {
	return YearMonthOf(m.Start().AddDate(0, -1, 0))
}

// After returns whether m is later than other.
func (m YearMonth) After(other YearMonth) bool {
	if m.Year != other.Year {
		return m.Year > other.Year
	}
	return m.Month > other.Month
}

// MarshalText encodes the month as YYYY-MM.
func (m YearMonth) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a YYYY-MM month.
func (m *YearMonth) UnmarshalText(text []byte) error {
	parsed, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
