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

// Package render provides the templates that turn resume content into a
// layout. The set of templates is closed; every template shows the same data
// in the same order and only arranges it differently.
package render

import (
	"fmt"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/resume"
)

// Renderer renders resume content with one template.
type Renderer interface {
	// Template returns the discriminant of the template.
	Template() types.TemplateType

	// Render builds the layout of the given content. The content is not
	// modified.
	Render(c *resume.Content) *layout.Page
}

var renderers = map[types.TemplateType]Renderer{
	types.TemplateMinimal:      minimal{},
	types.TemplateProfessional: professional{},
	types.TemplateCreative:     creative{},
	types.TemplateModern:       modern{},
	types.TemplateExecutive:    executive{},
}

// For returns the renderer of the given template. For an unknown template it
// returns the renderer of the default template together with
// types.ErrInvalidTemplate, so the caller can report the fallback and still
// render.
func For(t types.TemplateType) (Renderer, error) {
	if r, ok := renderers[t]; ok {
		return r, nil
	}
	return renderers[types.DefaultTemplate], fmt.Errorf("render %q: %w", t, types.ErrInvalidTemplate)
}

// Document renders the content of doc with its template. The page is never
// nil; the error reports a fallback to the default template.
func Document(doc *resume.Document) (*layout.Page, error) {
	r, err := For(doc.Template)
	return r.Render(&doc.Content), err
}

// minimal is a single column under a centered, unfilled header.
type minimal struct{}

func (minimal) Template() types.TemplateType { return types.TemplateMinimal }

func (minimal) Render(c *resume.Content) *layout.Page {
	b := builder{content: c, keywordStyle: layout.KeywordsInline, inlineContact: true}

	return &layout.Page{
		Template: types.TemplateMinimal,
		Width:    layout.PageWidth,
		Theme: layout.Theme{
			BaseSize:    13,
			NameSize:    28,
			LabelSize:   17,
			HeadingSize: 17,
			Padding:     32,
			HeadingRule: true,
			Text:        layout.RGB(0x111827),
			Muted:       layout.RGB(0x4b5563),
			Accent:      layout.RGB(0x374151),
			Heading:     layout.RGB(0x111827),
			Chip:        layout.RGB(0xf3f4f6),
			Rule:        layout.RGB(0xe5e7eb),
		},
		Banner: header(&c.Basics, layout.AlignCenter),
		Columns: []layout.Column{{
			Role:   layout.RoleMain,
			Weight: 1,
			Sections: b.sections(
				layout.SectionContact,
				layout.SectionSummary,
				layout.SectionWork,
				layout.SectionEducation,
				layout.SectionSkills,
				layout.SectionProjects,
				layout.SectionAwards,
				layout.SectionCertificates,
				layout.SectionLanguages,
				layout.SectionInterests,
				layout.SectionProfiles,
				layout.SectionReferences,
			),
		}},
	}
}

// professional is a single column under a dark banner.
type professional struct{}

func (professional) Template() types.TemplateType { return types.TemplateProfessional }

func (professional) Render(c *resume.Content) *layout.Page {
	b := builder{content: c, keywordStyle: layout.KeywordsInline, inlineContact: true}
	dark, white := layout.RGB(0x1f2937), layout.RGB(0xffffff)

	banner := header(&c.Basics, layout.AlignLeft)
	banner.Fill, banner.Foreground = &dark, &white

	return &layout.Page{
		Template: types.TemplateProfessional,
		Width:    layout.PageWidth,
		Theme: layout.Theme{
			BaseSize:    13,
			NameSize:    30,
			LabelSize:   20,
			HeadingSize: 20,
			Padding:     32,
			Text:        layout.RGB(0x111827),
			Muted:       layout.RGB(0x4b5563),
			Accent:      layout.RGB(0x1f2937),
			Heading:     layout.RGB(0x1f2937),
			Chip:        layout.RGB(0xe5e7eb),
			Rule:        layout.RGB(0x1f2937),
		},
		Banner: banner,
		Columns: []layout.Column{{
			Role:   layout.RoleMain,
			Weight: 1,
			Sections: b.sections(
				layout.SectionContact,
				layout.SectionSummary,
				layout.SectionWork,
				layout.SectionEducation,
				layout.SectionSkills,
				layout.SectionProjects,
				layout.SectionCertificates,
				layout.SectionAwards,
				layout.SectionLanguages,
				layout.SectionProfiles,
				layout.SectionInterests,
				layout.SectionReferences,
			),
		}},
	}
}

// creative is a wide main column beside a light sidebar, under a colored
// banner. Keywords are shown as chips.
type creative struct{}

func (creative) Template() types.TemplateType { return types.TemplateCreative }

func (creative) Render(c *resume.Content) *layout.Page {
	b := builder{
		content:      c,
		keywordStyle: layout.KeywordsChips,
		titles: map[layout.SectionKey]string{
			layout.SectionSummary: "About Me",
			layout.SectionWork:    "Experience",
		},
	}
	indigo, white, light := layout.RGB(0x4f46e5), layout.RGB(0xffffff), layout.RGB(0xf3f4f6)

	banner := header(&c.Basics, layout.AlignCenter)
	banner.Fill, banner.Foreground = &indigo, &white

	return &layout.Page{
		Template: types.TemplateCreative,
		Width:    layout.PageWidth,
		Theme: layout.Theme{
			BaseSize:    13,
			NameSize:    36,
			LabelSize:   20,
			HeadingSize: 22,
			Padding:     28,
			HeadingRule: true,
			Text:        layout.RGB(0x1f2937),
			Muted:       layout.RGB(0x4b5563),
			Accent:      layout.RGB(0x4f46e5),
			Heading:     layout.RGB(0x4f46e5),
			Chip:        layout.RGB(0xe0e7ff),
			Rule:        layout.RGB(0x4f46e5),
		},
		Banner: banner,
		Columns: []layout.Column{
			{
				Role:   layout.RoleMain,
				Weight: 2,
				Sections: b.sections(
					layout.SectionSummary,
					layout.SectionWork,
					layout.SectionEducation,
					layout.SectionProjects,
					layout.SectionSkills,
					layout.SectionAwards,
					layout.SectionReferences,
				),
			},
			{
				Role:   layout.RoleSidebar,
				Weight: 1,
				Fill:   &light,
				Sections: b.sections(
					layout.SectionContact,
					layout.SectionProfiles,
					layout.SectionLanguages,
					layout.SectionCertificates,
					layout.SectionInterests,
				),
			},
		},
	}
}

// modern is a dark sidebar carrying the header beside the main column.
type modern struct{}

func (modern) Template() types.TemplateType { return types.TemplateModern }

func (modern) Render(c *resume.Content) *layout.Page {
	b := builder{
		content:      c,
		keywordStyle: layout.KeywordsChips,
		titles: map[layout.SectionKey]string{
			layout.SectionWork: "Experience",
		},
	}
	dark, white := layout.RGB(0x111827), layout.RGB(0xffffff)

	return &layout.Page{
		Template: types.TemplateModern,
		Width:    layout.PageWidth,
		Theme: layout.Theme{
			BaseSize:    13,
			NameSize:    24,
			LabelSize:   16,
			HeadingSize: 18,
			Padding:     28,
			HeadingRule: true,
			Text:        layout.RGB(0x1f2937),
			Muted:       layout.RGB(0x6b7280),
			Accent:      layout.RGB(0x374151),
			Heading:     layout.RGB(0x1f2937),
			Chip:        layout.RGB(0x374151),
			Rule:        layout.RGB(0x374151),
		},
		Columns: []layout.Column{
			{
				Role:       layout.RoleSidebar,
				Weight:     1,
				Fill:       &dark,
				Foreground: &white,
				Header:     header(&c.Basics, layout.AlignLeft),
				Sections: b.sections(
					layout.SectionContact,
					layout.SectionProfiles,
					layout.SectionSkills,
					layout.SectionLanguages,
					layout.SectionInterests,
				),
			},
			{
				Role:   layout.RoleMain,
				Weight: 2,
				Sections: b.sections(
					layout.SectionSummary,
					layout.SectionWork,
					layout.SectionEducation,
					layout.SectionProjects,
					layout.SectionCertificates,
					layout.SectionAwards,
					layout.SectionReferences,
				),
			},
		},
	}
}

// executive is a serif single column with uppercase headings. Work entries
// are titled by company.
type executive struct{}

func (executive) Template() types.TemplateType { return types.TemplateExecutive }

func (executive) Render(c *resume.Content) *layout.Page {
	b := builder{
		content:       c,
		keywordStyle:  layout.KeywordsInline,
		inlineContact: true,
		companyFirst:  true,
		upperCompany:  true,
		titles: map[layout.SectionKey]string{
			layout.SectionSummary: "Executive Summary",
			layout.SectionWork:    "Professional Experience",
			layout.SectionSkills:  "Core Competencies",
		},
	}

	return &layout.Page{
		Template: types.TemplateExecutive,
		Width:    layout.PageWidth,
		Theme: layout.Theme{
			Serif:             true,
			BaseSize:          14,
			NameSize:          36,
			LabelSize:         20,
			HeadingSize:       19,
			Padding:           36,
			UppercaseHeadings: true,
			HeadingRule:       true,
			Text:              layout.RGB(0x111827),
			Muted:             layout.RGB(0x4b5563),
			Accent:            layout.RGB(0x374151),
			Heading:           layout.RGB(0x374151),
			Chip:              layout.RGB(0xf3f4f6),
			Rule:              layout.RGB(0x9ca3af),
		},
		Banner: header(&c.Basics, layout.AlignCenter),
		Columns: []layout.Column{{
			Role:   layout.RoleMain,
			Weight: 1,
			Sections: b.sections(
				layout.SectionContact,
				layout.SectionSummary,
				layout.SectionWork,
				layout.SectionEducation,
				layout.SectionSkills,
				layout.SectionProjects,
				layout.SectionAwards,
				layout.SectionCertificates,
				layout.SectionLanguages,
				layout.SectionProfiles,
				layout.SectionInterests,
				layout.SectionReferences,
			),
		}},
	}
}
