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

package assignments

import (
	"fmt"
	"math"
	gotime "time"

	"github.com/locahub/locahub/api/types"
)

const day = 24 * gotime.Hour

// OverdueDays returns how many days now is past the deadline, rounding any
// started day up. It returns 0 unless now is strictly after the deadline.
func OverdueDays(deadline types.Date, now gotime.Time) int {
	due := deadline.DueAt()
	if due.IsZero() || !now.After(due) {
		return 0
	}

	return int(math.Ceil(float64(now.Sub(due)) / float64(day)))
}

// DeductionNote returns the note recorded on a completion at now, or an
// empty string for a completion on time.
func DeductionNote(deadline types.Date, now gotime.Time) string {
	days := OverdueDays(deadline, now)
	if days == 0 {
		return ""
	}

	return fmt.Sprintf("overdue by %d days", days)
}
