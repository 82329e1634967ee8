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

package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
)

func TestReadOperations(t *testing.T) {
	t.Run("yaml list test", func(t *testing.T) {
		reqs, err := readOperations(strings.NewReader(`
- type: update_basics
  field: name
  value: Ada Lovelace
- type: append_entry
  section: work
`))
		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.Equal(t, types.OpUpdateBasics, reqs[0].Type)
		assert.Equal(t, "Ada Lovelace", reqs[0].Value)
		assert.Equal(t, "work", reqs[1].Section)
	})

	t.Run("json object test", func(t *testing.T) {
		reqs, err := readOperations(strings.NewReader(
			`{"operations":[{"type":"set_title","title":"CV"}]}`,
		))
		require.NoError(t, err)
		require.Len(t, reqs, 1)
		assert.Equal(t, "CV", reqs[0].Title)
	})

	t.Run("invalid operation test", func(t *testing.T) {
		_, err := readOperations(strings.NewReader(`- type: rename_everything`))
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("empty test", func(t *testing.T) {
		_, err := readOperations(strings.NewReader(`[]`))
		assert.Error(t, err)
	})
}
