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

// Item is one element of a nested list: a work highlight, a course, or a
// keyword.
type Item struct {
	ID    types.ID `json:"id" bson:"id"`
	Value string   `json:"value" bson:"value"`
}

// Values returns the values of the given items in order.
func Values(items []Item) []string {
	values := make([]string, 0, len(items))
	for _, item := range items {
		values = append(values, item.Value)
	}
	return values
}

// Basics is the singleton part of a resume.
type Basics struct {
	Name     string `json:"name" bson:"name"`
	Label    string `json:"label" bson:"label"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	Website  string `json:"website" bson:"website"`
	Location string `json:"location" bson:"location"`
	Summary  string `json:"summary" bson:"summary"`
}

// BasicsFields lists the field names of Basics.
var BasicsFields = []string{"name", "label", "email", "phone", "website", "location", "summary"}

// Field returns the address of the named field.
func (b *Basics) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &b.Name, true
	case "label":
		return &b.Label, true
	case "email":
		return &b.Email, true
	case "phone":
		return &b.Phone, true
	case "website":
		return &b.Website, true
	case "location":
		return &b.Location, true
	case "summary":
		return &b.Summary, true
	}
	return nil, false
}

// HasContact returns whether any contact field is set.
func (b *Basics) HasContact() bool {
	return b.Email != "" || b.Phone != "" || b.Website != "" || b.Location != ""
}

// ProfileEntry is a social profile.
type ProfileEntry struct {
	ID       types.ID `json:"id" bson:"id"`
	Network  string   `json:"network" bson:"network"`
	Username string   `json:"username" bson:"username"`
	URL      string   `json:"url" bson:"url"`
}

// Field returns the address of the named field.
func (e *ProfileEntry) Field(name string) (*string, bool) {
	switch name {
	case "network":
		return &e.Network, true
	case "username":
		return &e.Username, true
	case "url":
		return &e.URL, true
	}
	return nil, false
}

// WorkEntry is a position held at a company.
type WorkEntry struct {
	ID         types.ID `json:"id" bson:"id"`
	Company    string   `json:"company" bson:"company"`
	Position   string   `json:"position" bson:"position"`
	Website    string   `json:"website" bson:"website"`
	StartDate  string   `json:"startDate" bson:"start_date"`
	EndDate    string   `json:"endDate" bson:"end_date"`
	Summary    string   `json:"summary" bson:"summary"`
	Highlights []Item   `json:"highlights,omitempty" bson:"highlights"`
}

// Field returns the address of the named field.
func (e *WorkEntry) Field(name string) (*string, bool) {
	switch name {
	case "company":
		return &e.Company, true
	case "position":
		return &e.Position, true
	case "website":
		return &e.Website, true
	case "startDate":
		return &e.StartDate, true
	case "endDate":
		return &e.EndDate, true
	case "summary":
		return &e.Summary, true
	}
	return nil, false
}

// EducationEntry is a degree or a program of study.
type EducationEntry struct {
	ID          types.ID `json:"id" bson:"id"`
	Institution string   `json:"institution" bson:"institution"`
	Area        string   `json:"area" bson:"area"`
	StudyType   string   `json:"studyType" bson:"study_type"`
	StartDate   string   `json:"startDate" bson:"start_date"`
	EndDate     string   `json:"endDate" bson:"end_date"`
	GPA         string   `json:"gpa" bson:"gpa"`
	Courses     []Item   `json:"courses,omitempty" bson:"courses"`
}

// Field returns the address of the named field.
func (e *EducationEntry) Field(name string) (*string, bool) {
	switch name {
	case "institution":
		return &e.Institution, true
	case "area":
		return &e.Area, true
	case "studyType":
		return &e.StudyType, true
	case "startDate":
		return &e.StartDate, true
	case "endDate":
		return &e.EndDate, true
	case "gpa":
		return &e.GPA, true
	}
	return nil, false
}

// SkillEntry is a skill with its level and keywords.
type SkillEntry struct {
	ID       types.ID `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Level    string   `json:"level" bson:"level"`
	Keywords []Item   `json:"keywords,omitempty" bson:"keywords"`
}

// Field returns the address of the named field.
func (e *SkillEntry) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &e.Name, true
	case "level":
		return &e.Level, true
	}
	return nil, false
}

// ProjectEntry is a project.
type ProjectEntry struct {
	ID          types.ID `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	StartDate   string   `json:"startDate" bson:"start_date"`
	EndDate     string   `json:"endDate" bson:"end_date"`
	URL         string   `json:"url" bson:"url"`
	Highlights  []Item   `json:"highlights,omitempty" bson:"highlights"`
}

// Field returns the address of the named field.
func (e *ProjectEntry) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &e.Name, true
	case "description":
		return &e.Description, true
	case "startDate":
		return &e.StartDate, true
	case "endDate":
		return &e.EndDate, true
	case "url":
		return &e.URL, true
	}
	return nil, false
}

// AwardEntry is an award.
type AwardEntry struct {
	ID      types.ID `json:"id" bson:"id"`
	Title   string   `json:"title" bson:"title"`
	Date    string   `json:"date" bson:"date"`
	Awarder string   `json:"awarder" bson:"awarder"`
	Summary string   `json:"summary" bson:"summary"`
}

// Field returns the address of the named field.
func (e *AwardEntry) Field(name string) (*string, bool) {
	switch name {
	case "title":
		return &e.Title, true
	case "date":
		return &e.Date, true
	case "awarder":
		return &e.Awarder, true
	case "summary":
		return &e.Summary, true
	}
	return nil, false
}

// CertificateEntry is a certificate.
type CertificateEntry struct {
	ID     types.ID `json:"id" bson:"id"`
	Name   string   `json:"name" bson:"name"`
	Date   string   `json:"date" bson:"date"`
	Issuer string   `json:"issuer" bson:"issuer"`
	URL    string   `json:"url" bson:"url"`
}

// Field returns the address of the named field.
func (e *CertificateEntry) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &e.Name, true
	case "date":
		return &e.Date, true
	case "issuer":
		return &e.Issuer, true
	case "url":
		return &e.URL, true
	}
	return nil, false
}

// LanguageEntry is a spoken language.
type LanguageEntry struct {
	ID       types.ID `json:"id" bson:"id"`
	Language string   `json:"language" bson:"language"`
	Fluency  string   `json:"fluency" bson:"fluency"`
}

// Field returns the address of the named field.
func (e *LanguageEntry) Field(name string) (*string, bool) {
	switch name {
	case "language":
		return &e.Language, true
	case "fluency":
		return &e.Fluency, true
	}
	return nil, false
}

// InterestEntry is an interest with its keywords.
type InterestEntry struct {
	ID       types.ID `json:"id" bson:"id"`
	Name     string   `json:"name" bson:"name"`
	Keywords []Item   `json:"keywords,omitempty" bson:"keywords"`
}

// Field returns the address of the named field.
func (e *InterestEntry) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &e.Name, true
	}
	return nil, false
}

// ReferenceEntry is a reference from a colleague.
type ReferenceEntry struct {
	ID        types.ID `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	Reference string   `json:"reference" bson:"reference"`
}

// Field returns the address of the named field.
func (e *ReferenceEntry) Field(name string) (*string, bool) {
	switch name {
	case "name":
		return &e.Name, true
	case "reference":
		return &e.Reference, true
	}
	return nil, false
}

func (e *ProfileEntry) setID(id types.ID)     { e.ID = id }
func (e *WorkEntry) setID(id types.ID)        { e.ID = id }
func (e *EducationEntry) setID(id types.ID)   { e.ID = id }
func (e *SkillEntry) setID(id types.ID)       { e.ID = id }
func (e *ProjectEntry) setID(id types.ID)     { e.ID = id }
func (e *AwardEntry) setID(id types.ID)       { e.ID = id }
func (e *CertificateEntry) setID(id types.ID) { e.ID = id }
func (e *LanguageEntry) setID(id types.ID)    { e.ID = id }
func (e *InterestEntry) setID(id types.ID)    { e.ID = id }
func (e *ReferenceEntry) setID(id types.ID)   { e.ID = id }

func (e *ProfileEntry) elementID() types.ID     { return e.ID }
func (e *WorkEntry) elementID() types.ID        { return e.ID }
func (e *EducationEntry) elementID() types.ID   { return e.ID }
func (e *SkillEntry) elementID() types.ID       { return e.ID }
func (e *ProjectEntry) elementID() types.ID     { return e.ID }
func (e *AwardEntry) elementID() types.ID       { return e.ID }
func (e *CertificateEntry) elementID() types.ID { return e.ID }
func (e *LanguageEntry) elementID() types.ID    { return e.ID }
func (e *InterestEntry) elementID() types.ID    { return e.ID }
func (e *ReferenceEntry) elementID() types.ID   { return e.ID }

func (e *ProfileEntry) items() *[]Item     { return nil }
func (e *WorkEntry) items() *[]Item        { return &e.Highlights }
func (e *EducationEntry) items() *[]Item   { return &e.Courses }
func (e *SkillEntry) items() *[]Item       { return &e.Keywords }
func (e *ProjectEntry) items() *[]Item     { return &e.Highlights }
func (e *AwardEntry) items() *[]Item       { return nil }
func (e *CertificateEntry) items() *[]Item { return nil }
func (e *LanguageEntry) items() *[]Item    { return nil }
func (e *InterestEntry) items() *[]Item    { return &e.Keywords }
func (e *ReferenceEntry) items() *[]Item   { return nil }

// cloneEntries copies a collection together with the nested list of each of
// its entries.
func cloneEntries[T any, P interface {
	*T
	items() *[]Item
}](list []T) []T {
	clone := slices.Clone(list)
	for i := range clone {
		if items := P(&clone[i]).items(); items != nil {
			*items = slices.Clone(*items)
		}
	}
	return clone
}
