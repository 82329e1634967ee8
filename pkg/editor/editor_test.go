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

package editor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
)

var created = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newEditor() (*editor.Editor, *fakeClock) {
	clock := &fakeClock{now: created}
	return editor.New(types.NewSequenceGenerator("gen"), clock.Now), clock
}

func newSample() *resume.Document {
	return resume.NewSample(types.NewSequenceGenerator("sample"), types.TemplateMinimal, created)
}

func TestApply(t *testing.T) {
	t.Run("input snapshot is untouched test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()
		before := doc.DeepCopy()

		next, err := e.Apply(doc,
			editor.SetTitle{Title: "Renamed"},
			editor.UpdateBasics{Field: "name", Value: "Jane Roe"},
			editor.RemoveEntry{Section: resume.SectionWork, Index: 0},
			editor.UpdateItem{Section: resume.SectionSkills, Index: 0, Item: 0, Value: "Svelte"},
		)
		require.NoError(t, err)
		assert.Equal(t, before, doc)
		assert.Equal(t, "Renamed", next.Title)
		assert.Equal(t, "Jane Roe", next.Content.Basics.Name)
		assert.Len(t, next.Content.Work, 1)
		assert.Equal(t, "Svelte", next.Content.Skills[0].Keywords[0].Value)
	})

	t.Run("failed operation produces no snapshot test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()
		before := doc.DeepCopy()

		next, err := e.Apply(doc,
			editor.SetTitle{Title: "Renamed"},
			editor.RemoveEntry{Section: resume.SectionWork, Index: 7},
		)
		assert.ErrorIs(t, err, editor.ErrOutOfRange)
		assert.Nil(t, next)
		assert.Equal(t, before, doc)
	})

	t.Run("updated at advances test", func(t *testing.T) {
		e, clock := newEditor()
		doc := resume.NewBlank("doc", "", types.TemplateMinimal, created)

		next, err := e.SetTitle(doc, "CV")
		require.NoError(t, err)
		assert.Equal(t, clock.now, next.UpdatedAt)
		assert.True(t, next.UpdatedAt.After(doc.UpdatedAt))
		assert.Equal(t, doc.CreatedAt, next.CreatedAt)
		assert.Equal(t, doc.ID, next.ID)
	})

	t.Run("updated at never moves backwards test", func(t *testing.T) {
		past := func() time.Time { return created.Add(-time.Hour) }
		e := editor.New(types.NewSequenceGenerator("gen"), past)
		doc := resume.NewBlank("doc", "", types.TemplateMinimal, created)

		next, err := e.SetTitle(doc, "CV")
		require.NoError(t, err)
		assert.Equal(t, created, next.UpdatedAt)
	})

	t.Run("no operations test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		next, err := e.Apply(doc)
		require.NoError(t, err)
		assert.Equal(t, doc, next)
		assert.NotSame(t, doc, next)
	})

	t.Run("nil document test", func(t *testing.T) {
		e, _ := newEditor()
		_, err := e.Apply(nil, editor.SetTitle{Title: "x"})
		assert.ErrorIs(t, err, editor.ErrNilDocument)
	})

	t.Run("composition test", func(t *testing.T) {
		e1, _ := newEditor()
		e2, _ := newEditor()
		doc := resume.NewBlank("doc", "", types.TemplateMinimal, created)

		batched, err := e1.Apply(doc,
			editor.AppendEntry{Section: resume.SectionWork},
			editor.UpdateEntry{Section: resume.SectionWork, Index: 0, Field: "company", Value: "Acme"},
		)
		require.NoError(t, err)

		step, err := e2.AppendEntry(doc, resume.SectionWork)
		require.NoError(t, err)
		step, err = e2.UpdateEntry(step, resume.SectionWork, 0, "company", "Acme")
		require.NoError(t, err)

		assert.Equal(t, batched.Content, step.Content)
	})
}

func TestFieldUpdates(t *testing.T) {
	t.Run("update basics leaves other fields equal test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		next, err := e.UpdateBasics(doc, "email", "jane@example.com")
		require.NoError(t, err)

		want := doc.Content.DeepCopy()
		want.Basics.Email = "jane@example.com"
		assert.Equal(t, want, next.Content)
	})

	t.Run("update entry leaves siblings equal test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		next, err := e.UpdateEntry(doc, resume.SectionWork, 1, "endDate", "2020-01")
		require.NoError(t, err)

		want := doc.Content.DeepCopy()
		want.Work[1].EndDate = "2020-01"
		assert.Equal(t, want, next.Content)
		assert.Equal(t, doc.Template, next.Template)
		assert.Equal(t, doc.Title, next.Title)
	})

	t.Run("unknown field test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		_, err := e.UpdateBasics(doc, "nickname", "JD")
		assert.ErrorIs(t, err, editor.ErrUnknownField)
		assert.Equal(t, "nickname", errors.Metadata(err)["field"])

		_, err = e.UpdateEntry(doc, resume.SectionSkills, 0, "keywords", "Go")
		assert.ErrorIs(t, err, editor.ErrUnknownField)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeInvalidArgument))
	})

	t.Run("unknown section test", func(t *testing.T) {
		e, _ := newEditor()
		_, err := e.AppendEntry(newSample(), "hobbies")
		assert.ErrorIs(t, err, editor.ErrUnknownSection)
	})

	t.Run("set template test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		next, err := e.SetTemplate(doc, types.TemplateExecutive)
		require.NoError(t, err)
		assert.Equal(t, types.TemplateExecutive, next.Template)
		assert.Equal(t, doc.Content, next.Content)

		_, err = e.SetTemplate(doc, "fancy")
		assert.ErrorIs(t, err, types.ErrInvalidTemplate)
	})
}

func TestCollections(t *testing.T) {
	t.Run("append entry test", func(t *testing.T) {
		for _, section := range resume.Sections() {
			t.Run(section.String(), func(t *testing.T) {
				e, _ := newEditor()
				doc := newSample()
				before := doc.Content.Collection(section)

				next, err := e.AppendEntry(doc, section)
				require.NoError(t, err)

				after := next.Content.Collection(section)
				require.Equal(t, before.Len()+1, after.Len())

				added := after.At(after.Len() - 1).ElementID()
				assert.NotEmpty(t, added)
				for i := 0; i < before.Len(); i++ {
					assert.NotEqual(t, before.At(i).ElementID(), added)
					assert.Equal(t, before.At(i).ElementID(), after.At(i).ElementID())
				}
			})
		}
	})

	t.Run("appended entry is empty test", func(t *testing.T) {
		e, _ := newEditor()
		next, err := e.AppendEntry(newSample(), resume.SectionWork)
		require.NoError(t, err)

		added := next.Content.Work[len(next.Content.Work)-1]
		assert.Equal(t, resume.WorkEntry{ID: added.ID}, added)
	})

	t.Run("remove entry keeps relative order test", func(t *testing.T) {
		e, _ := newEditor()
		doc := resume.NewBlank("doc", "", types.TemplateMinimal, created)
		var err error
		for i := 0; i < 4; i++ {
			doc, err = e.AppendEntry(doc, resume.SectionLanguages)
			require.NoError(t, err)
		}
		ids := []types.ID{
			doc.Content.Languages[0].ID,
			doc.Content.Languages[1].ID,
			doc.Content.Languages[2].ID,
			doc.Content.Languages[3].ID,
		}

		next, err := e.RemoveEntry(doc, resume.SectionLanguages, 1)
		require.NoError(t, err)
		require.Len(t, next.Content.Languages, 3)
		assert.Equal(t, []types.ID{ids[0], ids[2], ids[3]}, []types.ID{
			next.Content.Languages[0].ID,
			next.Content.Languages[1].ID,
			next.Content.Languages[2].ID,
		})
		assert.Len(t, doc.Content.Languages, 4)
	})

	t.Run("out of range positions test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		for _, op := range []editor.Operation{
			editor.RemoveEntry{Section: resume.SectionWork, Index: 2},
			editor.RemoveEntry{Section: resume.SectionWork, Index: -1},
			editor.UpdateEntry{Section: resume.SectionAwards, Index: 1, Field: "title", Value: "x"},
			editor.AppendItem{Section: resume.SectionWork, Index: 5},
			editor.UpdateItem{Section: resume.SectionWork, Index: 0, Item: 3, Value: "x"},
			editor.RemoveItem{Section: resume.SectionEducation, Index: 0, Item: -1},
		} {
			_, err := e.Apply(doc, op)
			assert.ErrorIs(t, err, editor.ErrOutOfRange, op.Type())
			assert.True(t, errors.IsStatus(err, errors.ErrCodeOutOfRange))
		}

		_, err := e.RemoveEntry(resume.NewBlank("doc", "", types.TemplateMinimal, created), resume.SectionWork, 0)
		assert.ErrorIs(t, err, editor.ErrOutOfRange)
		assert.Equal(t, "0", errors.Metadata(err)["index"])
		assert.Equal(t, "work", errors.Metadata(err)["scope"])
	})
}

func TestItems(t *testing.T) {
	t.Run("item lifecycle test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()
		sibling := doc.Content.Work[1]

		next, err := e.AppendItem(doc, resume.SectionWork, 0)
		require.NoError(t, err)
		require.Len(t, next.Content.Work[0].Highlights, 4)
		added := next.Content.Work[0].Highlights[3]
		assert.Equal(t, "", added.Value)
		assert.NotEmpty(t, added.ID)

		next, err = e.UpdateItem(next, resume.SectionWork, 0, 3, "Shipped v2")
		require.NoError(t, err)
		assert.Equal(t, "Shipped v2", next.Content.Work[0].Highlights[3].Value)
		assert.Equal(t, added.ID, next.Content.Work[0].Highlights[3].ID)

		next, err = e.RemoveItem(next, resume.SectionWork, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Improved application performance by 40%",
			"Mentored junior developers and conducted code reviews",
			"Shipped v2",
		}, resume.Values(next.Content.Work[0].Highlights))

		assert.Equal(t, sibling, next.Content.Work[1])
	})

	t.Run("nested lists of every kind test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		for _, section := range []resume.Section{
			resume.SectionWork,
			resume.SectionEducation,
			resume.SectionSkills,
			resume.SectionProjects,
			resume.SectionInterests,
		} {
			_, err := e.AppendItem(doc, section, 0)
			assert.NoError(t, err, section)
		}
	})

	t.Run("section without item list test", func(t *testing.T) {
		e, _ := newEditor()
		doc := newSample()

		for _, section := range []resume.Section{
			resume.SectionProfiles,
			resume.SectionAwards,
			resume.SectionCertificates,
			resume.SectionLanguages,
			resume.SectionReferences,
		} {
			_, err := e.AppendItem(doc, section, 0)
			assert.ErrorIs(t, err, editor.ErrNoItemList, section)
		}
	})
}

func TestScenario(t *testing.T) {
	e, _ := newEditor()
	doc := resume.NewBlank("doc", resume.DefaultTitle, types.TemplateMinimal, created)

	doc, err := e.AppendEntry(doc, resume.SectionWork)
	require.NoError(t, err)
	doc, err = e.UpdateEntry(doc, resume.SectionWork, 0, "position", "Engineer")
	require.NoError(t, err)

	require.Len(t, doc.Content.Work, 1)
	assert.Equal(t, "Engineer", doc.Content.Work[0].Position)
	assert.Empty(t, doc.Content.Work[0].Company)
	assert.Empty(t, doc.Content.Work[0].Highlights)
}
