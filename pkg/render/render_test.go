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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/render"
	"github.com/folio-team/folio/pkg/resume"
)

var now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

var everySection = []layout.SectionKey{
	layout.SectionSummary,
	layout.SectionContact,
	layout.SectionProfiles,
	layout.SectionWork,
	layout.SectionEducation,
	layout.SectionSkills,
	layout.SectionProjects,
	layout.SectionAwards,
	layout.SectionCertificates,
	layout.SectionLanguages,
	layout.SectionInterests,
	layout.SectionReferences,
}

func sample() *resume.Document {
	return resume.NewSample(types.NewSequenceGenerator("id"), types.TemplateMinimal, now)
}

func renderAll(t *testing.T, c *resume.Content) map[types.TemplateType]*layout.Page {
	pages := map[types.TemplateType]*layout.Page{}
	for _, tmpl := range types.TemplateTypes() {
		r, err := render.For(tmpl)
		require.NoError(t, err)
		require.Equal(t, tmpl, r.Template())

		page := r.Render(c)
		require.Equal(t, tmpl, page.Template)
		pages[tmpl] = page
	}
	return pages
}

func TestFor(t *testing.T) {
	r, err := render.For("fancy")
	assert.ErrorIs(t, err, types.ErrInvalidTemplate)
	assert.Equal(t, types.TemplateMinimal, r.Template())

	doc := sample()
	doc.Template = "unknown"
	page, err := render.Document(doc)
	assert.ErrorIs(t, err, types.ErrInvalidTemplate)
	assert.Equal(t, types.TemplateMinimal, page.Template)

	doc.Template = types.TemplateModern
	page, err = render.Document(doc)
	assert.NoError(t, err)
	assert.Equal(t, types.TemplateModern, page.Template)
}

func TestEveryTemplate(t *testing.T) {
	t.Run("shows every section once test", func(t *testing.T) {
		doc := sample()
		for tmpl, page := range renderAll(t, &doc.Content) {
			var keys []layout.SectionKey
			for _, s := range page.Sections() {
				keys = append(keys, s.Key)
			}
			assert.ElementsMatch(t, everySection, keys, tmpl)
		}
	})

	t.Run("does not modify content test", func(t *testing.T) {
		doc := sample()
		before := doc.DeepCopy()
		renderAll(t, &doc.Content)
		assert.Equal(t, before, doc)
	})

	t.Run("empty work renders no work section test", func(t *testing.T) {
		doc := sample()
		doc.Content.Work = nil
		for tmpl, page := range renderAll(t, &doc.Content) {
			assert.Nil(t, page.Section(layout.SectionWork), tmpl)
		}
	})

	t.Run("work entry without highlights test", func(t *testing.T) {
		doc := sample()
		doc.Content.Work = []resume.WorkEntry{{ID: "w1", Position: "Engineer", Company: "Acme"}}
		for tmpl, page := range renderAll(t, &doc.Content) {
			work := page.Section(layout.SectionWork)
			require.NotNil(t, work, tmpl)
			require.Len(t, work.Entries, 1, tmpl)
			assert.Empty(t, work.Entries[0].Bullets, tmpl)
		}
	})

	t.Run("blank entries are still rendered test", func(t *testing.T) {
		content := resume.Content{Awards: []resume.AwardEntry{{ID: "a1"}, {ID: "a2"}}}
		for tmpl, page := range renderAll(t, &content) {
			awards := page.Section(layout.SectionAwards)
			require.NotNil(t, awards, tmpl)
			assert.Len(t, awards.Entries, 2, tmpl)
		}
	})

	t.Run("blank content test", func(t *testing.T) {
		content := resume.Content{}
		for tmpl, page := range renderAll(t, &content) {
			assert.Empty(t, page.Sections(), tmpl)

			h := page.Header()
			require.NotNil(t, h, tmpl)
			assert.Equal(t, "Your Name", h.Name)
			assert.Equal(t, "Professional Title", h.Label)
		}
	})

	t.Run("contact suppression test", func(t *testing.T) {
		content := resume.Content{Basics: resume.Basics{Name: "Jane", Summary: "Hi"}}
		for tmpl, page := range renderAll(t, &content) {
			assert.Nil(t, page.Section(layout.SectionContact), tmpl)
			assert.NotNil(t, page.Section(layout.SectionSummary), tmpl)
			assert.Equal(t, "Jane", page.Header().Name)
		}

		content.Basics.Location = "Seoul"
		for tmpl, page := range renderAll(t, &content) {
			contact := page.Section(layout.SectionContact)
			require.NotNil(t, contact, tmpl)
			assert.Equal(t, []layout.Entry{{Detail: "Location", Body: "Seoul"}}, contact.Entries)
		}
	})

	t.Run("stored order is preserved test", func(t *testing.T) {
		content := resume.Content{Work: []resume.WorkEntry{
			{ID: "w1", Position: "Later", StartDate: "2022-01"},
			{ID: "w2", Position: "Earlier", StartDate: "2010-01"},
			{ID: "w3", Position: "Middle", StartDate: "2015-01"},
		}}
		for tmpl, page := range renderAll(t, &content) {
			work := page.Section(layout.SectionWork)
			require.NotNil(t, work, tmpl)
			assert.Equal(t, []types.ID{"w1", "w2", "w3"}, []types.ID{
				work.Entries[0].ID, work.Entries[1].ID, work.Entries[2].ID,
			})
		}
	})
}

func TestEntries(t *testing.T) {
	doc := sample()

	t.Run("work entry lines test", func(t *testing.T) {
		r, _ := render.For(types.TemplateMinimal)
		work := r.Render(&doc.Content).Section(layout.SectionWork)
		require.NotNil(t, work)
		assert.Equal(t, "Work Experience", work.Title)

		e := work.Entries[0]
		assert.Equal(t, "Senior Software Developer", e.Title)
		assert.Equal(t, "Tech Innovations Inc. • https://techinnovations.com", e.Subtitle)
		assert.Equal(t, "January 2020 - Present", e.Date)
		assert.Len(t, e.Bullets, 3)
	})

	t.Run("education entry lines test", func(t *testing.T) {
		r, _ := render.For(types.TemplateProfessional)
		edu := r.Render(&doc.Content).Section(layout.SectionEducation)
		require.NotNil(t, edu)

		e := edu.Entries[0]
		assert.Equal(t, "Bachelor of Science, Computer Science • GPA: 3.8", e.Subtitle)
		assert.Equal(t, "September 2013 - May 2017", e.Date)
		assert.Equal(t, "Relevant Courses", e.KeywordsLabel)
		assert.Len(t, e.Keywords, 4)
	})

	t.Run("skills keyword styles test", func(t *testing.T) {
		for tmpl, want := range map[types.TemplateType]layout.KeywordStyle{
			types.TemplateMinimal:  layout.KeywordsInline,
			types.TemplateCreative: layout.KeywordsChips,
			types.TemplateModern:   layout.KeywordsChips,
		} {
			r, _ := render.For(tmpl)
			skills := r.Render(&doc.Content).Section(layout.SectionSkills)
			require.NotNil(t, skills)
			assert.Equal(t, "Frontend Development (Expert)", skills.Entries[0].Title)
			assert.Equal(t, want, skills.Entries[0].KeywordStyle, tmpl)
		}
	})

	t.Run("executive arrangement test", func(t *testing.T) {
		r, _ := render.For(types.TemplateExecutive)
		page := r.Render(&doc.Content)
		assert.True(t, page.Theme.Serif)
		assert.Equal(t, "Core Competencies", page.Section(layout.SectionSkills).Title)

		e := page.Section(layout.SectionWork).Entries[0]
		assert.Equal(t, "Tech Innovations Inc.", e.Title)
		assert.True(t, e.UppercaseTitle)
		assert.Equal(t, "Senior Software Developer • https://techinnovations.com", e.Subtitle)
	})

	t.Run("sidebar arrangement test", func(t *testing.T) {
		r, _ := render.For(types.TemplateModern)
		page := r.Render(&doc.Content)
		require.Len(t, page.Columns, 2)
		assert.Nil(t, page.Banner)
		assert.Equal(t, layout.RoleSidebar, page.Columns[0].Role)
		assert.Equal(t, "John Doe", page.Header().Name)

		widths := page.ColumnWidths()
		assert.InDelta(t, layout.PageWidth/3.0, widths[0], 0.01)
	})

	t.Run("single dates test", func(t *testing.T) {
		r, _ := render.For(types.TemplateCreative)
		page := r.Render(&doc.Content)
		assert.Equal(t, "December 2021", page.Section(layout.SectionAwards).Entries[0].Date)
		assert.Equal(t, "May 2020", page.Section(layout.SectionCertificates).Entries[0].Date)
	})
}

func TestScenario(t *testing.T) {
	e := editor.New(types.NewSequenceGenerator("id"), func() time.Time { return now })
	doc := resume.NewBlank("doc-1", resume.DefaultTitle, types.TemplateMinimal, now)

	doc, err := e.AppendEntry(doc, resume.SectionWork)
	require.NoError(t, err)
	doc, err = e.UpdateEntry(doc, resume.SectionWork, 0, "position", "Engineer")
	require.NoError(t, err)

	page, err := render.Document(doc)
	require.NoError(t, err)

	work := page.Section(layout.SectionWork)
	require.NotNil(t, work)
	require.Len(t, work.Entries, 1)
	assert.Equal(t, "Engineer", work.Entries[0].Title)
	assert.Empty(t, work.Entries[0].Subtitle)
	assert.Empty(t, work.Entries[0].Date)
	assert.Empty(t, work.Entries[0].Bullets)
	assert.Len(t, page.Sections(), 1)
}
