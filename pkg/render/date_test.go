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

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/folio-team/folio/pkg/render"
)

func TestFormatToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Present", "Present"},
		{"2020-01", "January 2020"},
		{"1999-12", "December 1999"},
		{"2021-06", "June 2021"},
		{"2020-13", "2020-13"},
		{"2020-00", "2020-00"},
		{"2020-1", "2020-1"},
		{"2020-01-15", "2020-01-15"},
		{"Summer 2019", "Summer 2019"},
		{"present", "present"},
	}

	for _, tt := range tests {
		t.Run(tt.in+" test", func(t *testing.T) {
			assert.Equal(t, tt.want, render.FormatToken(tt.in))
		})
	}
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "January 2020 - Present", render.FormatRange("2020-01", "Present"))
	assert.Equal(t, "", render.FormatRange("", ""))
	assert.Equal(t, "January 2020", render.FormatRange("2020-01", ""))
	assert.Equal(t, "June 2021", render.FormatRange("", "2021-06"))
	assert.Equal(t, "March 2017 - December 2019", render.FormatRange("2017-03", "2019-12"))
	assert.Equal(t, "Fall 2018 - Present", render.FormatRange("Fall 2018", "Present"))
}
