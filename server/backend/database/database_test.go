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

package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database"
)

func TestSortDocuments(t *testing.T) {
	t.Run("creation time then id test", func(t *testing.T) {
		now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		docs := []*resume.Document{
			resume.NewBlank("c", "", "", now.Add(time.Minute)),
			resume.NewBlank("b", "", "", now),
			resume.NewBlank("a", "", "", now),
		}

		database.SortDocuments(docs)
		ids := make([]types.ID, 0, len(docs))
		for _, doc := range docs {
			ids = append(ids, doc.ID)
		}
		assert.Equal(t, []types.ID{"a", "b", "c"}, ids)
	})

	t.Run("not found status test", func(t *testing.T) {
		assert.True(t, errors.IsStatus(database.ErrDocumentNotFound, errors.ErrCodeNotFound))
		assert.Equal(t, "ErrDocumentNotFound", errors.CodeOf(database.ErrDocumentNotFound))
	})
}
