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

const (
	// DateLayout is the layout of Date.
	DateLayout = "2006-01-02"

	// OfficeTimeLayout is the layout used to display instants such as the
	// completion time of an assignment.
	OfficeTimeLayout = "2006-01-02 15:04:05"
)

var (
	// OfficeZone is the fixed time zone in which deadlines, months and
	// completion times are interpreted.
	OfficeZone = time.FixedZone("UTC+8", 8*60*60)

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.InvalidArgument("invalid date").WithCode("ErrInvalidDate")
)

// Date is a calendar date in the office zone, formatted as YYYY-MM-DD.
type Date string

// ParseDate parses the given string as a Date.
func ParseDate(str string) (Date, error) {
	if _, err := time.ParseInLocation(DateLayout, str, OfficeZone); err != nil {
		return "", fmt.Errorf("%s: %w", str, ErrInvalidDate)
	}
	return Date(str), nil
}

// String returns the YYYY-MM-DD representation.
func (d Date) String() string {
	return string(d)
}

// Start returns the first instant of the date in the office zone.
func (d Date) Start() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, string(d), OfficeZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", d, ErrInvalidDate)
	}
	return t, nil
}

// DueAt returns the instant the date is due: the first instant of the
// following day in the office zone. A work item with this deadline is late
// once now is after DueAt. It returns the zero time for an invalid date.
func (d Date) DueAt() time.Time {
	start, err := d.Start()
	if err != nil {
		return time.Time{}
	}
	return start.AddDate(0, 0, 1)
}

// IsPassed returns whether now is after the due instant of the date.
// An invalid date is never passed.
func (d Date) IsPassed(now time.Time) bool {
	due := d.DueAt()
	if due.IsZero() {
		return false
	}
	return now.After(due)
}

// FormatOfficeTime formats the instant in the office zone, truncated to
// whole seconds.
func FormatOfficeTime(t time.Time) string {
	return t.In(OfficeZone).Truncate(time.Second).Format(OfficeTimeLayout)
}
