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

package types

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	t.Run("uuid generator test", func(t *testing.T) {
		gen := NewUUIDGenerator()
		a, b := gen(), gen()
		assert.NotEqual(t, a, b)

		_, err := uuid.Parse(a.String())
		assert.NoError(t, err)
	})

	t.Run("xid generator test", func(t *testing.T) {
		gen := NewXIDGenerator()
		a, b := gen(), gen()
		assert.NotEqual(t, a, b)

		_, err := xid.FromString(a.String())
		assert.NoError(t, err)
	})

	t.Run("sequence generator test", func(t *testing.T) {
		gen := NewSequenceGenerator("doc")
		assert.Equal(t, ID("doc-1"), gen())
		assert.Equal(t, ID("doc-2"), gen())
	})

	t.Run("concurrent sequence generator test", func(t *testing.T) {
		gen := NewSequenceGenerator("item")
		seen := sync.Map{}
		wg := sync.WaitGroup{}
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, loaded := seen.LoadOrStore(gen(), true)
				assert.False(t, loaded)
			}()
		}
		wg.Wait()
	})
}
