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

package resume_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
)

var now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNewBlank(t *testing.T) {
	t.Run("defaults test", func(t *testing.T) {
		doc := resume.NewBlank("doc-1", "", "", now)
		assert.Equal(t, types.ID("doc-1"), doc.ID)
		assert.Equal(t, resume.DefaultTitle, doc.Title)
		assert.Equal(t, types.TemplateMinimal, doc.Template)
		assert.Equal(t, now, doc.CreatedAt)
		assert.Equal(t, now, doc.UpdatedAt)
		assert.True(t, doc.Content.IsEmpty())
	})

	t.Run("unknown template test", func(t *testing.T) {
		doc := resume.NewBlank("doc-1", "CV", "fancy", now)
		assert.Equal(t, "CV", doc.Title)
		assert.Equal(t, types.TemplateMinimal, doc.Template)
	})
}

func TestNewSample(t *testing.T) {
	ids := types.NewSequenceGenerator("id")
	doc := resume.NewSample(ids, types.TemplateModern, now)

	assert.Equal(t, resume.SampleTitle, doc.Title)
	assert.Equal(t, types.TemplateModern, doc.Template)
	assert.Equal(t, "John Doe", doc.Content.Basics.Name)
	assert.Len(t, doc.Content.Work, 2)
	assert.Equal(t, "Present", doc.Content.Work[0].EndDate)
	assert.Equal(t, []string{"English", "Spanish"}, []string{
		doc.Content.Languages[0].Language,
		doc.Content.Languages[1].Language,
	})

	t.Run("unique identifiers test", func(t *testing.T) {
		seen := map[types.ID]bool{doc.ID: true}
		for _, s := range resume.Sections() {
			col := doc.Content.Collection(s)
			assert.Positive(t, col.Len(), s.String())
			for i := 0; i < col.Len(); i++ {
				el := col.At(i)
				assert.False(t, seen[el.ElementID()])
				seen[el.ElementID()] = true

				items, ok := el.Items()
				if !ok {
					continue
				}
				for _, item := range *items {
					assert.False(t, seen[item.ID])
					seen[item.ID] = true
				}
			}
		}
	})

	t.Run("successive samples test", func(t *testing.T) {
		other := resume.NewSample(ids, types.TemplateModern, now)
		assert.NotEqual(t, doc.ID, other.ID)
	})
}

func TestDeepCopy(t *testing.T) {
	doc := resume.NewSample(types.NewSequenceGenerator("id"), types.TemplateMinimal, now)
	clone := doc.DeepCopy()
	assert.Equal(t, doc, clone)

	clone.Title = "Changed"
	clone.Content.Basics.Name = "Jane Roe"
	clone.Content.Work[0].Highlights[0].Value = "Changed"
	clone.Content.Skills[1].Keywords = append(clone.Content.Skills[1].Keywords, resume.Item{ID: "x"})

	assert.Equal(t, resume.SampleTitle, doc.Title)
	assert.Equal(t, "John Doe", doc.Content.Basics.Name)
	assert.Equal(t, "Architected and implemented a new frontend using React and TypeScript",
		doc.Content.Work[0].Highlights[0].Value)
	assert.Len(t, doc.Content.Skills[1].Keywords, 5)

	var nilDoc *resume.Document
	assert.Nil(t, nilDoc.DeepCopy())
}

func TestCollection(t *testing.T) {
	t.Run("unknown section test", func(t *testing.T) {
		content := resume.Content{}
		assert.Nil(t, content.Collection("hobbies"))

		_, ok := resume.ParseSection("hobbies")
		assert.False(t, ok)
		section, ok := resume.ParseSection("work")
		assert.True(t, ok)
		assert.Equal(t, resume.SectionWork, section)
	})

	t.Run("append and remove write through test", func(t *testing.T) {
		content := resume.Content{}
		work := content.Collection(resume.SectionWork)
		work.Append("w1")
		work.Append("w2")
		work.Append("w3")
		assert.Len(t, content.Work, 3)

		work.Remove(1)
		assert.Equal(t, []types.ID{"w1", "w3"}, []types.ID{content.Work[0].ID, content.Work[1].ID})
	})

	t.Run("field and items test", func(t *testing.T) {
		content := resume.Content{}
		content.Collection(resume.SectionEducation).Append("e1")
		el := content.Collection(resume.SectionEducation).At(0)

		field, ok := el.Field("studyType")
		assert.True(t, ok)
		*field = "Bachelor of Science"
		assert.Equal(t, "Bachelor of Science", content.Education[0].StudyType)

		_, ok = el.Field("study_type")
		assert.False(t, ok)

		items, ok := el.Items()
		assert.True(t, ok)
		*items = append(*items, resume.Item{ID: "c1", Value: "Compilers"})
		assert.Equal(t, []string{"Compilers"}, resume.Values(content.Education[0].Courses))

		content.Collection(resume.SectionLanguages).Append("l1")
		_, ok = content.Collection(resume.SectionLanguages).At(0).Items()
		assert.False(t, ok)
	})

	t.Run("basics field test", func(t *testing.T) {
		basics := resume.Basics{}
		assert.False(t, basics.HasContact())
		for _, name := range resume.BasicsFields {
			field, ok := basics.Field(name)
			assert.True(t, ok)
			*field = name
		}
		assert.Equal(t, "location", basics.Location)
		assert.True(t, basics.HasContact())
	})
}
