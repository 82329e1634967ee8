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

// Package testcases contains testcases for database. It is used by database
// implementations to test their own implementations with the same testcases.
package testcases

import (
	"context"
	"encoding/json"
	"testing"
	gotime "time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database"
)

var newID = types.NewUUIDGenerator()

// now returns the current time at the precision every backend keeps.
func now() gotime.Time {
	return gotime.Now().UTC().Truncate(gotime.Millisecond)
}

// AssertDocumentEqual asserts that two documents hold the same values.
func AssertDocumentEqual(t *testing.T, expected, actual *resume.Document) {
	t.Helper()
	require.NotNil(t, actual)

	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.Title, actual.Title)
	assert.Equal(t, expected.Template, actual.Template)
	assert.True(t, expected.CreatedAt.Equal(actual.CreatedAt), "created at %s != %s", expected.CreatedAt, actual.CreatedAt)
	assert.True(t, expected.UpdatedAt.Equal(actual.UpdatedAt), "updated at %s != %s", expected.UpdatedAt, actual.UpdatedAt)

	want, err := json.Marshal(expected.Content)
	require.NoError(t, err)
	got, err := json.Marshal(actual.Content)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))
}

// RunFindDocumentByIDTest runs the FindDocumentByID test for the given db.
func RunFindDocumentByIDTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("find missing document test", func(t *testing.T) {
		_, err := db.FindDocumentByID(ctx, newID())
		assert.ErrorIs(t, err, database.ErrDocumentNotFound)
	})

	t.Run("find sample document test", func(t *testing.T) {
		doc := resume.NewSample(newID, types.TemplateCreative, now())
		require.NoError(t, db.UpsertDocument(ctx, doc))

		found, err := db.FindDocumentByID(ctx, doc.ID)
		assert.NoError(t, err)
		AssertDocumentEqual(t, doc, found)
	})

	t.Run("found document is a copy test", func(t *testing.T) {
		doc := resume.NewSample(newID, types.TemplateMinimal, now())
		require.NoError(t, db.UpsertDocument(ctx, doc))

		found, err := db.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		found.Title = "changed"
		found.Content.Work[0].Highlights[0].Value = "changed"

		again, err := db.FindDocumentByID(ctx, doc.ID)
		require.NoError(t, err)
		AssertDocumentEqual(t, doc, again)
	})
}

// RunUpsertDocumentTest runs the UpsertDocument test for the given db.
func RunUpsertDocumentTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("insert then replace test", func(t *testing.T) {
		doc := resume.NewBlank(newID(), "", types.TemplateMinimal, now())
		require.NoError(t, db.UpsertDocument(ctx, doc))

		updated := doc.DeepCopy()
		updated.Title = "Backend Engineer"
		updated.Content.Basics.Name = "Jane Doe"
		updated.UpdatedAt = doc.UpdatedAt.Add(gotime.Second)
		require.NoError(t, db.UpsertDocument(ctx, updated))

		found, err := db.FindDocumentByID(ctx, doc.ID)
		assert.NoError(t, err)
		AssertDocumentEqual(t, updated, found)
	})

	t.Run("stored document is a copy test", func(t *testing.T) {
		doc := resume.NewSample(newID, types.TemplateModern, now())
		expected := doc.DeepCopy()
		require.NoError(t, db.UpsertDocument(ctx, doc))

		doc.Title = "changed"
		doc.Content.Skills[0].Keywords[0].Value = "changed"

		found, err := db.FindDocumentByID(ctx, doc.ID)
		assert.NoError(t, err)
		AssertDocumentEqual(t, expected, found)
	})

	t.Run("document without id test", func(t *testing.T) {
		err := db.UpsertDocument(ctx, resume.NewBlank("", "", "", now()))
		assert.ErrorIs(t, err, database.ErrInvalidDocument)

		assert.ErrorIs(t, db.UpsertDocument(ctx, nil), database.ErrInvalidDocument)
	})
}

// RunListDocumentsTest runs the ListDocuments test for the given db. Other
// documents may exist in db; only the documents created here are checked.
func RunListDocumentsTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("listing order test", func(t *testing.T) {
		base := now()
		first, second := newID(), newID()
		if second < first {
			first, second = second, first
		}
		latest := newID()

		docs := []*resume.Document{
			resume.NewBlank(latest, "latest", types.TemplateMinimal, base.Add(2*gotime.Second)),
			resume.NewBlank(second, "second", types.TemplateMinimal, base),
			resume.NewBlank(first, "first", types.TemplateMinimal, base),
		}
		for _, doc := range docs {
			require.NoError(t, db.UpsertDocument(ctx, doc))
		}

		listed, err := db.ListDocuments(ctx)
		assert.NoError(t, err)

		wanted := map[types.ID]bool{first: true, second: true, latest: true}
		var ids []types.ID
		for _, doc := range listed {
			if wanted[doc.ID] {
				ids = append(ids, doc.ID)
			}
		}
		assert.Equal(t, []types.ID{first, second, latest}, ids)
	})

	t.Run("edits keep the position test", func(t *testing.T) {
		base := now()
		older := resume.NewBlank(newID(), "older", types.TemplateMinimal, base)
		newer := resume.NewBlank(newID(), "newer", types.TemplateMinimal, base.Add(gotime.Second))
		require.NoError(t, db.UpsertDocument(ctx, older))
		require.NoError(t, db.UpsertDocument(ctx, newer))

		older.Title = "edited"
		older.UpdatedAt = base.Add(gotime.Minute)
		require.NoError(t, db.UpsertDocument(ctx, older))

		listed, err := db.ListDocuments(ctx)
		assert.NoError(t, err)

		var ids []types.ID
		for _, doc := range listed {
			if doc.ID == older.ID || doc.ID == newer.ID {
				ids = append(ids, doc.ID)
			}
		}
		assert.Equal(t, []types.ID{older.ID, newer.ID}, ids)
	})
}

// RunRemoveDocumentTest runs the RemoveDocument test for the given db.
func RunRemoveDocumentTest(t *testing.T, db database.Database) {
	ctx := context.Background()

	t.Run("remove existing document test", func(t *testing.T) {
		doc := resume.NewBlank(newID(), "", "", now())
		require.NoError(t, db.UpsertDocument(ctx, doc))

		assert.NoError(t, db.RemoveDocument(ctx, doc.ID))
		_, err := db.FindDocumentByID(ctx, doc.ID)
		assert.ErrorIs(t, err, database.ErrDocumentNotFound)

		listed, err := db.ListDocuments(ctx)
		assert.NoError(t, err)
		for _, d := range listed {
			assert.NotEqual(t, doc.ID, d.ID)
		}
	})

	t.Run("remove missing document test", func(t *testing.T) {
		assert.NoError(t, db.RemoveDocument(ctx, newID()))
	})
}
