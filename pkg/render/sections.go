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

package render

import (
	"strings"

	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/resume"
)

const (
	namePlaceholder  = "Your Name"
	labelPlaceholder = "Professional Title"
)

var defaultTitles = map[layout.SectionKey]string{
	layout.SectionSummary:      "Professional Summary",
	layout.SectionContact:      "Contact",
	layout.SectionProfiles:     "Profiles",
	layout.SectionWork:         "Work Experience",
	layout.SectionEducation:    "Education",
	layout.SectionSkills:       "Skills",
	layout.SectionProjects:     "Projects",
	layout.SectionAwards:       "Awards",
	layout.SectionCertificates: "Certificates",
	layout.SectionLanguages:    "Languages",
	layout.SectionInterests:    "Interests",
	layout.SectionReferences:   "References",
}

// builder turns content into sections. The options are what templates vary
// besides the arrangement of the sections.
type builder struct {
	content *resume.Content

	// titles overrides the default section titles.
	titles map[layout.SectionKey]string

	keywordStyle  layout.KeywordStyle
	inlineContact bool

	// companyFirst titles work entries with the company instead of the
	// position. upperCompany then shows that title in capitals.
	companyFirst bool
	upperCompany bool
}

func (b builder) title(key layout.SectionKey) string {
	if title, ok := b.titles[key]; ok {
		return title
	}
	return defaultTitles[key]
}

// sections builds the given sections in order, skipping suppressed ones.
func (b builder) sections(keys ...layout.SectionKey) []*layout.Section {
	sections := make([]*layout.Section, 0, len(keys))
	for _, key := range keys {
		if s := b.section(key); s != nil {
			sections = append(sections, s)
		}
	}
	return sections
}

// section builds one section, or returns nil when the section has nothing to
// show: an empty summary, no contact field, or an empty collection.
func (b builder) section(key layout.SectionKey) *layout.Section {
	c := b.content
	var entries []layout.Entry

	switch key {
	case layout.SectionSummary:
		if c.Basics.Summary == "" {
			return nil
		}
		return &layout.Section{Key: key, Title: b.title(key), Text: c.Basics.Summary}
	case layout.SectionContact:
		if !c.Basics.HasContact() {
			return nil
		}
		return &layout.Section{
			Key:     key,
			Title:   b.title(key),
			Inline:  b.inlineContact,
			Entries: contactEntries(&c.Basics),
		}
	case layout.SectionProfiles:
		entries = mapEntries(c.Profiles, profileEntry)
	case layout.SectionWork:
		entries = mapEntries(c.Work, b.workEntry)
	case layout.SectionEducation:
		entries = mapEntries(c.Education, educationEntry)
	case layout.SectionSkills:
		entries = mapEntries(c.Skills, b.skillEntry)
	case layout.SectionProjects:
		entries = mapEntries(c.Projects, projectEntry)
	case layout.SectionAwards:
		entries = mapEntries(c.Awards, awardEntry)
	case layout.SectionCertificates:
		entries = mapEntries(c.Certificates, certificateEntry)
	case layout.SectionLanguages:
		entries = mapEntries(c.Languages, languageEntry)
	case layout.SectionInterests:
		entries = mapEntries(c.Interests, b.interestEntry)
	case layout.SectionReferences:
		entries = mapEntries(c.References, referenceEntry)
	}

	if len(entries) == 0 {
		return nil
	}
	return &layout.Section{Key: key, Title: b.title(key), Entries: entries}
}

func mapEntries[T any](list []T, fn func(*T) layout.Entry) []layout.Entry {
	entries := make([]layout.Entry, 0, len(list))
	for i := range list {
		entries = append(entries, fn(&list[i]))
	}
	return entries
}

func contactEntries(b *resume.Basics) []layout.Entry {
	var entries []layout.Entry
	for _, f := range []struct{ label, value string }{
		{"Email", b.Email},
		{"Phone", b.Phone},
		{"Website", b.Website},
		{"Location", b.Location},
	} {
		if f.value != "" {
			entries = append(entries, layout.Entry{Detail: f.label, Body: f.value})
		}
	}
	return entries
}

func profileEntry(p *resume.ProfileEntry) layout.Entry {
	return layout.Entry{ID: p.ID, Title: p.Network, Subtitle: p.Username, Detail: p.URL}
}

func (b builder) workEntry(w *resume.WorkEntry) layout.Entry {
	e := layout.Entry{
		ID:      w.ID,
		Title:   w.Position,
		Date:    FormatRange(w.StartDate, w.EndDate),
		Body:    w.Summary,
		Bullets: values(w.Highlights),
	}

	if b.companyFirst {
		e.Title = w.Company
		e.UppercaseTitle = b.upperCompany
		e.Subtitle = join(" • ", w.Position, w.Website)
	} else {
		e.Subtitle = join(" • ", w.Company, w.Website)
	}
	return e
}

func educationEntry(ed *resume.EducationEntry) layout.Entry {
	gpa := ""
	if ed.GPA != "" {
		gpa = "GPA: " + ed.GPA
	}
	return layout.Entry{
		ID:            ed.ID,
		Title:         ed.Institution,
		Subtitle:      join(" • ", join(", ", ed.StudyType, ed.Area), gpa),
		Date:          FormatRange(ed.StartDate, ed.EndDate),
		Keywords:      values(ed.Courses),
		KeywordsLabel: "Relevant Courses",
		KeywordStyle:  layout.KeywordsInline,
	}
}

func (b builder) skillEntry(s *resume.SkillEntry) layout.Entry {
	level := ""
	if s.Level != "" {
		level = "(" + s.Level + ")"
	}
	return layout.Entry{
		ID:           s.ID,
		Title:        join(" ", s.Name, level),
		Keywords:     values(s.Keywords),
		KeywordStyle: b.keywordStyle,
	}
}

func projectEntry(p *resume.ProjectEntry) layout.Entry {
	return layout.Entry{
		ID:       p.ID,
		Title:    p.Name,
		Subtitle: p.URL,
		Date:     FormatRange(p.StartDate, p.EndDate),
		Body:     p.Description,
		Bullets:  values(p.Highlights),
	}
}

func awardEntry(a *resume.AwardEntry) layout.Entry {
	return layout.Entry{
		ID:       a.ID,
		Title:    a.Title,
		Subtitle: a.Awarder,
		Date:     FormatToken(a.Date),
		Body:     a.Summary,
	}
}

func certificateEntry(c *resume.CertificateEntry) layout.Entry {
	return layout.Entry{
		ID:       c.ID,
		Title:    c.Name,
		Subtitle: c.Issuer,
		Date:     FormatToken(c.Date),
		Detail:   c.URL,
	}
}

func languageEntry(l *resume.LanguageEntry) layout.Entry {
	return layout.Entry{ID: l.ID, Title: l.Language, Subtitle: l.Fluency}
}

func (b builder) interestEntry(i *resume.InterestEntry) layout.Entry {
	return layout.Entry{
		ID:           i.ID,
		Title:        i.Name,
		Keywords:     values(i.Keywords),
		KeywordStyle: b.keywordStyle,
	}
}

func referenceEntry(r *resume.ReferenceEntry) layout.Entry {
	return layout.Entry{ID: r.ID, Title: r.Name, Body: r.Reference}
}

// header builds the name block, with placeholders for an empty name or
// label.
func header(b *resume.Basics, align layout.Align) *layout.Header {
	h := &layout.Header{Name: b.Name, Label: b.Label, Align: align}
	if h.Name == "" {
		h.Name = namePlaceholder
	}
	if h.Label == "" {
		h.Label = labelPlaceholder
	}
	return h
}

// values returns the item values, or nil for an empty list.
func values(items []resume.Item) []string {
	if len(items) == 0 {
		return nil
	}
	return resume.Values(items)
}

// join joins the non-empty parts with sep.
func join(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
