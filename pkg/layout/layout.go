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

// Package layout provides the visual layout tree that templates produce from
// resume content. The tree is consumed by the HTML view and by the
// rasterizer of the export pipeline.
package layout

import (
	"fmt"
	"image/color"

	"github.com/folio-team/folio/api/types"
)

// PageWidth is the width of a rendered page in CSS pixels, the width of an
// A4 sheet at 96 DPI.
const PageWidth = 794

// SectionKey identifies a rendered section.
type SectionKey string

// Rendered sections. Every template renders the same set.
const (
	SectionSummary      SectionKey = "summary"
	SectionContact      SectionKey = "contact"
	SectionProfiles     SectionKey = "profiles"
	SectionWork         SectionKey = "work"
	SectionEducation    SectionKey = "education"
	SectionSkills       SectionKey = "skills"
	SectionProjects     SectionKey = "projects"
	SectionAwards       SectionKey = "awards"
	SectionCertificates SectionKey = "certificates"
	SectionLanguages    SectionKey = "languages"
	SectionInterests    SectionKey = "interests"
	SectionReferences   SectionKey = "references"
)

// Role is the role of a column.
type Role string

// Column roles.
const (
	RoleMain    Role = "main"
	RoleSidebar Role = "sidebar"
)

// Align is the horizontal alignment of a header.
type Align string

// Alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// KeywordStyle is how keywords of an entry are shown.
type KeywordStyle string

// Keyword styles.
const (
	// KeywordsInline joins the keywords with commas.
	KeywordsInline KeywordStyle = "inline"
	// KeywordsChips shows every keyword in its own rounded box.
	KeywordsChips KeywordStyle = "chips"
)

// Color is an RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB creates a Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex)}
}

// Hex returns the CSS representation of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the color as an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Theme is the typography and the palette of a page. Sizes are in CSS
// pixels.
type Theme struct {
	Serif             bool    `json:"serif"`
	BaseSize          float64 `json:"baseSize"`
	NameSize          float64 `json:"nameSize"`
	LabelSize         float64 `json:"labelSize"`
	HeadingSize       float64 `json:"headingSize"`
	Padding           float64 `json:"padding"`
	UppercaseHeadings bool    `json:"uppercaseHeadings"`
	HeadingRule       bool    `json:"headingRule"`

	Text    Color `json:"text"`
	Muted   Color `json:"muted"`
	Accent  Color `json:"accent"`
	Heading Color `json:"heading"`
	Chip    Color `json:"chip"`
	Rule    Color `json:"rule"`
}

// Header shows the name and the professional title.
type Header struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Align Align  `json:"align"`

	// Fill is the background of the header. Zero means transparent.
	Fill *Color `json:"fill,omitempty"`
	// Foreground overrides the text color of the header.
	Foreground *Color `json:"foreground,omitempty"`
}

// Page is the root of a rendered layout.
type Page struct {
	Template types.TemplateType `json:"template"`
	Width    float64            `json:"width"`
	Theme    Theme              `json:"theme"`

	// Banner spans every column above them. Templates with a sidebar
	// header leave it nil.
	Banner *Header `json:"banner,omitempty"`

	Columns []Column `json:"columns"`
}

// Column is a vertical run of sections.
type Column struct {
	Role Role `json:"role"`

	// Weight is the share of the page width the column takes.
	Weight float64 `json:"weight"`

	// Fill is the background of the column. Nil means transparent.
	Fill *Color `json:"fill,omitempty"`
	// Foreground overrides the text colors inside the column.
	Foreground *Color `json:"foreground,omitempty"`

	Header   *Header    `json:"header,omitempty"`
	Sections []*Section `json:"sections"`
}

// Section is a titled group of entries, or a titled paragraph.
type Section struct {
	Key   SectionKey `json:"key"`
	Title string     `json:"title"`

	// Text is the paragraph of text-only sections such as the summary.
	Text string `json:"text,omitempty"`

	// Inline sections show their entries on one line.
	Inline bool `json:"inline,omitempty"`

	Entries []Entry `json:"entries,omitempty"`
}

// Entry is one rendered element of a collection. Empty lines are omitted by
// every view.
type Entry struct {
	ID       types.ID `json:"id,omitempty"`
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Date     string   `json:"date,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Body     string   `json:"body,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`

	Keywords      []string     `json:"keywords,omitempty"`
	KeywordsLabel string       `json:"keywordsLabel,omitempty"`
	KeywordStyle  KeywordStyle `json:"keywordStyle,omitempty"`

	// UppercaseTitle shows the title in capitals. The title itself keeps
	// the case it was written in.
	UppercaseTitle bool `json:"uppercaseTitle,omitempty"`
}

// Sections returns every section of the page in reading order: column by
// column, top to bottom.
func (p *Page) Sections() []*Section {
	var sections []*Section
	for _, col := range p.Columns {
		sections = append(sections, col.Sections...)
	}
	return sections
}

// Section returns the section with the given key, or nil if the page does
// not show it.
func (p *Page) Section(key SectionKey) *Section {
	for _, s := range p.Sections() {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// Header returns the header of the page: the banner, or the first column
// header.
func (p *Page) Header() *Header {
	if p.Banner != nil {
		return p.Banner
	}
	for _, col := range p.Columns {
		if col.Header != nil {
			return col.Header
		}
	}
	return nil
}

// TotalWeight returns the sum of the column weights.
func (p *Page) TotalWeight() float64 {
	total := 0.0
	for _, col := range p.Columns {
		total += col.Weight
	}
	return total
}

// ColumnWidths returns the width of every column in CSS pixels.
func (p *Page) ColumnWidths() []float64 {
	total := p.TotalWeight()
	widths := make([]float64, len(p.Columns))
	for i, col := range p.Columns {
		if total <= 0 {
			widths[i] = p.Width / float64(len(p.Columns))
			continue
		}
		widths[i] = p.Width * col.Weight / total
	}
	return widths
}
