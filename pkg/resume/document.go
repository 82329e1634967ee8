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

// Package resume provides the document model of a resume: its metadata, the
// basics singleton, and the ordered collections of entries.
package resume

import (
	"time"

	"github.com/folio-team/folio/api/types"
)

// DefaultTitle is the title of blank documents created without one.
const DefaultTitle = "Untitled Resume"

// SampleTitle is the title of documents created with demonstration content.
const SampleTitle = "Sample Resume"

// Document is a snapshot of one resume and its metadata. Snapshots returned
// by the editing engine and the document store are never modified in place.
type Document struct {
	// ID is the unique identifier of the document. It never changes.
	ID types.ID `json:"id" bson:"_id"`

	// Title is the title of the document, for the user's reference only.
	Title string `json:"title" bson:"title"`

	// CreatedAt is the time when the document is created. It never changes.
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`

	// UpdatedAt is the time of the last successful edit. It never moves
	// backwards.
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`

	// Template is the discriminant of the template the document is rendered
	// with.
	Template types.TemplateType `json:"template" bson:"template"`

	// Content is the body of the resume.
	Content Content `json:"content" bson:"content"`
}

// Content is the structured body of a resume.
type Content struct {
	Basics       Basics             `json:"basics" bson:"basics"`
	Profiles     []ProfileEntry     `json:"profiles,omitempty" bson:"profiles"`
	Work         []WorkEntry        `json:"work,omitempty" bson:"work"`
	Education    []EducationEntry   `json:"education,omitempty" bson:"education"`
	Skills       []SkillEntry       `json:"skills,omitempty" bson:"skills"`
	Projects     []ProjectEntry     `json:"projects,omitempty" bson:"projects"`
	Awards       []AwardEntry       `json:"awards,omitempty" bson:"awards"`
	Certificates []CertificateEntry `json:"certificates,omitempty" bson:"certificates"`
	Languages    []LanguageEntry    `json:"languages,omitempty" bson:"languages"`
	Interests    []InterestEntry    `json:"interests,omitempty" bson:"interests"`
	References   []ReferenceEntry   `json:"references,omitempty" bson:"references"`
}

// NewBlank creates a document with all-empty content. An empty title is
// replaced with DefaultTitle and an unknown template with the default
// template.
func NewBlank(id types.ID, title string, template types.TemplateType, now time.Time) *Document {
	if title == "" {
		title = DefaultTitle
	}
	template, _ = types.TemplateTypeOrDefault(template)

	return &Document{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Template:  template,
	}
}

// DeepCopy returns a copy of the document that shares no memory with it.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}

	clone := *d
	clone.Content = d.Content.DeepCopy()
	return &clone
}

// Summary returns the list view of the document.
func (d *Document) Summary() *types.DocumentSummary {
	return &types.DocumentSummary{
		ID:        d.ID,
		Title:     d.Title,
		Template:  d.Template,
		Name:      d.Content.Basics.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// DeepCopy returns a copy of the content that shares no memory with it.
func (c Content) DeepCopy() Content {
	return Content{
		Basics:       c.Basics,
		Profiles:     cloneEntries(c.Profiles),
		Work:         cloneEntries(c.Work),
		Education:    cloneEntries(c.Education),
		Skills:       cloneEntries(c.Skills),
		Projects:     cloneEntries(c.Projects),
		Awards:       cloneEntries(c.Awards),
		Certificates: cloneEntries(c.Certificates),
		Languages:    cloneEntries(c.Languages),
		Interests:    cloneEntries(c.Interests),
		References:   cloneEntries(c.References),
	}
}

// IsEmpty returns whether the content has no basics and no entries.
func (c *Content) IsEmpty() bool {
	if c.Basics != (Basics{}) {
		return false
	}
	for _, s := range Sections() {
		if c.Collection(s).Len() > 0 {
			return false
		}
	}
	return true
}
