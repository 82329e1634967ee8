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

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database/memory"
	"github.com/folio-team/folio/server/backend/database/testcases"
)

func TestDB(t *testing.T) {
	t.Run("RunFindDocumentByID test", func(t *testing.T) {
		db, err := memory.New()
		require.NoError(t, err)
		testcases.RunFindDocumentByIDTest(t, db)
	})

	t.Run("RunUpsertDocument test", func(t *testing.T) {
		db, err := memory.New()
		require.NoError(t, err)
		testcases.RunUpsertDocumentTest(t, db)
	})

	t.Run("RunListDocuments test", func(t *testing.T) {
		db, err := memory.New()
		require.NoError(t, err)
		testcases.RunListDocumentsTest(t, db)
	})

	t.Run("RunRemoveDocument test", func(t *testing.T) {
		db, err := memory.New()
		require.NoError(t, err)
		testcases.RunRemoveDocumentTest(t, db)
	})

	t.Run("list documents created before the epoch test", func(t *testing.T) {
		db, err := memory.New()
		require.NoError(t, err)

		ctx := context.Background()
		epoch := time.Unix(0, 0)
		require.NoError(t, db.UpsertDocument(ctx, resume.NewBlank("after", "", types.TemplateMinimal, epoch.Add(time.Hour))))
		require.NoError(t, db.UpsertDocument(ctx, resume.NewBlank("before", "", types.TemplateMinimal, epoch.Add(-time.Hour))))

		docs, err := db.ListDocuments(ctx)
		assert.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, types.ID("before"), docs[0].ID)
		assert.Equal(t, types.ID("after"), docs[1].ID)
	})
}
