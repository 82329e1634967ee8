/*
 * Copyright 2026 The Folio Authors. All rights reserved.
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

package render

import (
	"regexp"
	"strconv"
)

// Present is the end date of an ongoing entry.
const Present = "Present"

var yearMonthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

var months = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatToken formats one date of a resume. "YYYY-MM" becomes
// "<Month> <Year>"; every other value, including "Present" and months
// outside 01-12, is returned unchanged.
func FormatToken(s string) string {
	if s == "" || s == Present || !yearMonthRegex.MatchString(s) {
		return s
	}

	month, err := strconv.Atoi(s[5:])
	if err != nil || month < 1 || month > 12 {
		return s
	}
	return months[month-1] + " " + s[:4]
}

// FormatRange formats a date range. Empty ends are dropped; two present ends
// are joined with " - ".
func FormatRange(start, end string) string {
	a, b := FormatToken(start), FormatToken(end)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " - " + b
	}
}
