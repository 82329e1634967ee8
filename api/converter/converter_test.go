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

package converter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/converter"
	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
)

func TestConverter(t *testing.T) {
	t.Run("operations round trip test", func(t *testing.T) {
		ops := []editor.Operation{
			editor.SetTitle{Title: "CV"},
			editor.SetTemplate{Template: types.TemplateCreative},
			editor.UpdateBasics{Field: "label", Value: "Engineer"},
			editor.AppendEntry{Section: resume.SectionWork},
			editor.UpdateEntry{Section: resume.SectionWork, Index: 0, Field: "startDate", Value: "2020-01"},
			editor.RemoveEntry{Section: resume.SectionAwards, Index: 2},
			editor.AppendItem{Section: resume.SectionSkills, Index: 1},
			editor.UpdateItem{Section: resume.SectionSkills, Index: 1, Item: 0, Value: "Go"},
			editor.RemoveItem{Section: resume.SectionInterests, Index: 0, Item: 2},
		}

		reqs, err := converter.ToOperationRequests(ops)
		require.NoError(t, err)
		assert.Equal(t, types.OpUpdateItem, reqs[7].Type)
		assert.Equal(t, "skills", reqs[7].Section)

		back, err := converter.FromOperationRequests(reqs)
		require.NoError(t, err)
		assert.Equal(t, ops, back)
	})

	t.Run("invalid request test", func(t *testing.T) {
		_, err := converter.FromOperationRequests([]types.OperationRequest{
			{Type: types.OpSetTitle, Title: "ok"},
			{Type: "merge"},
		})
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
		assert.Contains(t, err.Error(), "operation 1")
	})

	t.Run("unknown section test", func(t *testing.T) {
		_, err := converter.FromOperationRequest(&types.OperationRequest{
			Type:    types.OpAppendEntry,
			Section: "hobbies",
		})
		assert.ErrorIs(t, err, editor.ErrUnknownSection)
		assert.Equal(t, "hobbies", errors.Metadata(err)["section"])

		_, err = converter.FromOperationRequest(&types.OperationRequest{Type: types.OpRemoveEntry})
		assert.ErrorIs(t, err, editor.ErrUnknownSection)
	})

	t.Run("unknown basics field test", func(t *testing.T) {
		_, err := converter.FromOperationRequest(&types.OperationRequest{
			Type:  types.OpUpdateBasics,
			Field: "nickname",
			Value: "JD",
		})
		assert.ErrorIs(t, err, editor.ErrUnknownField)
		assert.Equal(t, "nickname", errors.Metadata(err)["field"])

		for _, field := range resume.BasicsFields {
			_, err := converter.FromOperationRequest(&types.OperationRequest{
				Type:  types.OpUpdateBasics,
				Field: field,
			})
			assert.NoError(t, err, field)
		}
	})

	t.Run("document summaries test", func(t *testing.T) {
		now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		doc := resume.NewSample(types.NewSequenceGenerator("id"), types.TemplateModern, now)

		summaries := converter.ToDocumentSummaries([]*resume.Document{doc})
		require.Len(t, summaries, 1)
		assert.Equal(t, doc.ID, summaries[0].ID)
		assert.Equal(t, "John Doe", summaries[0].Name)
		assert.Equal(t, types.TemplateModern, summaries[0].Template)
	})
}
