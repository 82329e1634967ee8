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

package layout_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/pkg/layout"
)

func samplePage() *layout.Page {
	fill := layout.RGB(0x111827)
	return &layout.Page{
		Template: "modern",
		Width:    layout.PageWidth,
		Theme:    layout.Theme{BaseSize: 13, NameSize: 24, HeadingSize: 18, Padding: 28},
		Columns: []layout.Column{
			{
				Role:   layout.RoleSidebar,
				Weight: 1,
				Fill:   &fill,
				Header: &layout.Header{Name: "Jane <Roe>", Label: "Engineer", Align: layout.AlignLeft},
				Sections: []*layout.Section{{
					Key:    layout.SectionContact,
					Title:  "Contact",
					Inline: true,
					Entries: []layout.Entry{
						{Detail: "Email", Body: "jane@example.com"},
						{Detail: "Location", Body: "Seoul"},
					},
				}},
			},
			{
				Role:   layout.RoleMain,
				Weight: 2,
				Sections: []*layout.Section{
					{Key: layout.SectionSummary, Title: "Summary", Text: "Builds things."},
					{Key: layout.SectionWork, Title: "Experience", Entries: []layout.Entry{{
						Title:    "Engineer",
						Date:     "January 2020 - Present",
						Bullets:  []string{"Shipped <v2>"},
						Keywords: []string{"Go", "SQL"},
					}}},
					{Key: layout.SectionSkills, Title: "Skills", Entries: []layout.Entry{{
						Title:        "Backend",
						Keywords:     []string{"Go", "Kafka"},
						KeywordStyle: layout.KeywordsChips,
					}}},
				},
			},
		},
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, layout.WriteHTML(&buf, samplePage()))
	html := buf.String()

	t.Run("root element test", func(t *testing.T) {
		assert.Contains(t, html, `id="resume-preview"`)
		assert.Contains(t, html, `class="resume resume-modern"`)
		assert.Contains(t, html, "width:33.33%;background:#111827;")
	})

	t.Run("escaping test", func(t *testing.T) {
		assert.Contains(t, html, "Jane &lt;Roe&gt;")
		assert.Contains(t, html, "Shipped &lt;v2&gt;")
		assert.NotContains(t, html, "<Roe>")
	})

	t.Run("entries test", func(t *testing.T) {
		assert.Contains(t, html, "jane@example.com • Seoul")
		assert.Contains(t, html, `<span class="chip">Kafka</span>`)
		assert.Contains(t, html, "Go, SQL")
		assert.Contains(t, html, "January 2020 - Present")
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<ul")))
	})

	t.Run("uppercase title test", func(t *testing.T) {
		page := samplePage()
		work := page.Section(layout.SectionWork)
		work.Entries[0].Title = "Tech Innovations Inc."
		work.Entries[0].UppercaseTitle = true

		var buf bytes.Buffer
		require.NoError(t, layout.WriteHTML(&buf, page))
		out := buf.String()
		assert.Contains(t, out, `<h3 class="entry-title upper">Tech Innovations Inc.</h3>`)
		assert.Contains(t, out, `<h3 class="entry-title">Backend</h3>`)
		assert.Contains(t, out, ".upper{text-transform:uppercase;}")
	})
}

func TestPage(t *testing.T) {
	page := samplePage()

	keys := []layout.SectionKey{}
	for _, s := range page.Sections() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []layout.SectionKey{
		layout.SectionContact,
		layout.SectionSummary,
		layout.SectionWork,
		layout.SectionSkills,
	}, keys)

	assert.Equal(t, "Summary", page.Section(layout.SectionSummary).Title)
	assert.Nil(t, page.Section(layout.SectionAwards))
	assert.Equal(t, "Jane <Roe>", page.Header().Name)
	assert.Equal(t, 3.0, page.TotalWeight())
	assert.Equal(t, "#111827", layout.RGB(0x111827).Hex())
}

func TestEntryLine(t *testing.T) {
	assert.Equal(t, "Go", layout.Entry{Title: "Go"}.Line())
	assert.Equal(t, "Seoul", layout.Entry{Detail: "Location", Body: "Seoul"}.Line())
	assert.Equal(t, "English: Native", layout.Entry{Title: "English", Body: "Native"}.Line())
}
