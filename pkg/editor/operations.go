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

package editor

import (
	"fmt"
	"slices"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
)

// SetTitle replaces the title.
type SetTitle struct {
	Title string
}

// Type returns the wire name of the operation.
func (o SetTitle) Type() types.OperationType { return types.OpSetTitle }

func (o SetTitle) apply(_ *Editor, doc *resume.Document) error {
	doc.Title = o.Title
	return nil
}

// SetTemplate replaces the template discriminant. Content is untouched.
// Unknown templates are rejected with types.ErrInvalidTemplate, while
// creating or rendering a document falls back to the default template.
type SetTemplate struct {
	Template types.TemplateType
}

// Type returns the wire name of the operation.
func (o SetTemplate) Type() types.OperationType { return types.OpSetTemplate }

func (o SetTemplate) apply(_ *Editor, doc *resume.Document) error {
	template, err := types.ParseTemplateType(o.Template.String())
	if err != nil {
		return err
	}
	doc.Template = template
	return nil
}

// UpdateBasics replaces one field of the basics.
type UpdateBasics struct {
	Field string
	Value string
}

// Type returns the wire name of the operation.
func (o UpdateBasics) Type() types.OperationType { return types.OpUpdateBasics }

func (o UpdateBasics) apply(_ *Editor, doc *resume.Document) error {
	field, ok := doc.Content.Basics.Field(o.Field)
	if !ok {
		return unknownField("basics", o.Field)
	}
	*field = o.Value
	return nil
}

// AppendEntry appends an entry with a fresh identifier and empty fields to
// the end of a section.
type AppendEntry struct {
	Section resume.Section
}

// Type returns the wire name of the operation.
func (o AppendEntry) Type() types.OperationType { return types.OpAppendEntry }

func (o AppendEntry) apply(e *Editor, doc *resume.Document) error {
	col, err := collection(doc, o.Section)
	if err != nil {
		return err
	}
	col.Append(e.ids())
	return nil
}

// UpdateEntry replaces one field of the entry at Index.
type UpdateEntry struct {
	Section resume.Section
	Index   int
	Field   string
	Value   string
}

// Type returns the wire name of the operation.
func (o UpdateEntry) Type() types.OperationType { return types.OpUpdateEntry }

func (o UpdateEntry) apply(_ *Editor, doc *resume.Document) error {
	el, err := element(doc, o.Section, o.Index)
	if err != nil {
		return err
	}
	field, ok := el.Field(o.Field)
	if !ok {
		return unknownField(o.Section.String(), o.Field)
	}
	*field = o.Value
	return nil
}

// RemoveEntry removes the entry at Index. Later entries shift one position
// earlier.
type RemoveEntry struct {
	Section resume.Section
	Index   int
}

// Type returns the wire name of the operation.
func (o RemoveEntry) Type() types.OperationType { return types.OpRemoveEntry }

func (o RemoveEntry) apply(_ *Editor, doc *resume.Document) error {
	if _, err := element(doc, o.Section, o.Index); err != nil {
		return err
	}
	doc.Content.Collection(o.Section).Remove(o.Index)
	return nil
}

// AppendItem appends an empty item with a fresh identifier to the nested
// list of the entry at Index.
type AppendItem struct {
	Section resume.Section
	Index   int
}

// Type returns the wire name of the operation.
func (o AppendItem) Type() types.OperationType { return types.OpAppendItem }

func (o AppendItem) apply(e *Editor, doc *resume.Document) error {
	items, err := itemList(doc, o.Section, o.Index)
	if err != nil {
		return err
	}
	*items = append(*items, resume.Item{ID: e.ids()})
	return nil
}

// UpdateItem replaces the value of item Item of the entry at Index.
type UpdateItem struct {
	Section resume.Section
	Index   int
	Item    int
	Value   string
}

// Type returns the wire name of the operation.
func (o UpdateItem) Type() types.OperationType { return types.OpUpdateItem }

func (o UpdateItem) apply(_ *Editor, doc *resume.Document) error {
	items, err := itemList(doc, o.Section, o.Index)
	if err != nil {
		return err
	}
	if o.Item < 0 || o.Item >= len(*items) {
		return outOfRange(fmt.Sprintf("%s[%d].items", o.Section, o.Index), o.Item, len(*items))
	}
	(*items)[o.Item].Value = o.Value
	return nil
}

// RemoveItem removes item Item of the entry at Index. Later items shift one
// position earlier.
type RemoveItem struct {
	Section resume.Section
	Index   int
	Item    int
}

// Type returns the wire name of the operation.
func (o RemoveItem) Type() types.OperationType { return types.OpRemoveItem }

func (o RemoveItem) apply(_ *Editor, doc *resume.Document) error {
	items, err := itemList(doc, o.Section, o.Index)
	if err != nil {
		return err
	}
	if o.Item < 0 || o.Item >= len(*items) {
		return outOfRange(fmt.Sprintf("%s[%d].items", o.Section, o.Index), o.Item, len(*items))
	}
	*items = slices.Delete(*items, o.Item, o.Item+1)
	return nil
}
