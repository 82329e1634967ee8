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

package resume

import (
	"slices"

	"github.com/folio-team/folio/api/types"
)

// Section names a repeatable collection of Content.
type Section string

// The repeatable collections of a resume, in their canonical order.
const (
	SectionProfiles     Section = "profiles"
	SectionWork         Section = "work"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
	SectionAwards       Section = "awards"
	SectionCertificates Section = "certificates"
	SectionLanguages    Section = "languages"
	SectionInterests    Section = "interests"
	SectionReferences   Section = "references"
)

// Sections returns every section in canonical order.
func Sections() []Section {
	return []Section{
		SectionProfiles,
		SectionWork,
		SectionEducation,
		SectionSkills,
		SectionProjects,
		SectionAwards,
		SectionCertificates,
		SectionLanguages,
		SectionInterests,
		SectionReferences,
	}
}

// ParseSection converts the given string to a Section.
func ParseSection(s string) (Section, bool) {
	section := Section(s)
	return section, slices.Contains(Sections(), section)
}

// String returns the name of the section.
func (s Section) String() string {
	return string(s)
}

// Element is one entry of a collection, addressed through its fields.
type Element interface {
	// ElementID returns the identifier of the entry.
	ElementID() types.ID

	// Field returns the address of the named field, or false if the entry
	// has no such field.
	Field(name string) (*string, bool)

	// Items returns the address of the nested list of the entry, or false
	// if entries of this kind have none.
	Items() (*[]Item, bool)
}

// Collection is a positional view of one section of Content. Mutating
// methods write through to the Content the view was taken from.
type Collection interface {
	Len() int
	At(i int) Element
	Append(id types.ID)
	Remove(i int)
}

type entry interface {
	Field(name string) (*string, bool)
	setID(id types.ID)
	elementID() types.ID
	items() *[]Item
}

type element[P entry] struct {
	e P
}

func (el element[P]) ElementID() types.ID {
	return el.e.elementID()
}

func (el element[P]) Field(name string) (*string, bool) {
	return el.e.Field(name)
}

func (el element[P]) Items() (*[]Item, bool) {
	items := el.e.items()
	return items, items != nil
}

type collection[T any, P interface {
	*T
	entry
}] struct {
	list *[]T
}

func (c collection[T, P]) Len() int {
	return len(*c.list)
}

func (c collection[T, P]) At(i int) Element {
	return element[P]{e: P(&(*c.list)[i])}
}

func (c collection[T, P]) Append(id types.ID) {
	var v T
	P(&v).setID(id)
	*c.list = append(*c.list, v)
}

func (c collection[T, P]) Remove(i int) {
	*c.list = slices.Delete(*c.list, i, i+1)
}

// Collection returns the positional view of the given section, or nil if
// the section is unknown.
func (c *Content) Collection(s Section) Collection {
	switch s {
	case SectionProfiles:
		return collection[ProfileEntry, *ProfileEntry]{list: &c.Profiles}
	case SectionWork:
		return collection[WorkEntry, *WorkEntry]{list: &c.Work}
	case SectionEducation:
		return collection[EducationEntry, *EducationEntry]{list: &c.Education}
	case SectionSkills:
		return collection[SkillEntry, *SkillEntry]{list: &c.Skills}
	case SectionProjects:
		return collection[ProjectEntry, *ProjectEntry]{list: &c.Projects}
	case SectionAwards:
		return collection[AwardEntry, *AwardEntry]{list: &c.Awards}
	case SectionCertificates:
		return collection[CertificateEntry, *CertificateEntry]{list: &c.Certificates}
	case SectionLanguages:
		return collection[LanguageEntry, *LanguageEntry]{list: &c.Languages}
	case SectionInterests:
		return collection[InterestEntry, *InterestEntry]{list: &c.Interests}
	case SectionReferences:
		return collection[ReferenceEntry, *ReferenceEntry]{list: &c.References}
	}
	return nil
}
