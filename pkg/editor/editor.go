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

// Package editor provides the editing engine of resume documents. Every edit
// takes a snapshot and returns a new one; the given snapshot is never
// modified.
package editor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
)

var (
	// ErrOutOfRange is returned when an operation addresses an entry or an
	// item that does not exist.
	ErrOutOfRange = errors.OutOfRange("position out of range").WithCode("ErrOutOfRange")

	// ErrUnknownSection is returned when an operation names a section that
	// does not exist.
	ErrUnknownSection = errors.InvalidArgument("unknown section").WithCode("ErrUnknownSection")

	// ErrUnknownField is returned when an operation names a field that the
	// addressed entry does not have.
	ErrUnknownField = errors.InvalidArgument("unknown field").WithCode("ErrUnknownField")

	// ErrNoItemList is returned when an item operation addresses a section
	// whose entries have no nested list.
	ErrNoItemList = errors.InvalidArgument("section has no item list").WithCode("ErrNoItemList")

	// ErrNilDocument is returned when an operation is applied to nothing.
	ErrNilDocument = errors.InvalidArgument("nil document").WithCode("ErrNilDocument")
)

// Operation is one edit of a document.
type Operation interface {
	// Type returns the wire name of the operation.
	Type() types.OperationType

	apply(e *Editor, doc *resume.Document) error
}

// Editor applies operations to document snapshots. It assigns identifiers to
// new entries and items with ids and advances UpdatedAt with clock.
type Editor struct {
	ids   types.IDGenerator
	clock func() time.Time
}

// New creates a new instance of Editor.
func New(ids types.IDGenerator, clock func() time.Time) *Editor {
	return &Editor{
		ids:   ids,
		clock: clock,
	}
}

// Apply applies the given operations in order to a copy of doc and returns
// the copy. If any operation fails, no snapshot is returned. On success
// UpdatedAt is advanced to the current time unless that would move it
// backwards. Applying no operations returns an unchanged copy.
func (e *Editor) Apply(doc *resume.Document, ops ...Operation) (*resume.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	clone := doc.DeepCopy()
	if len(ops) == 0 {
		return clone, nil
	}

	for i, op := range ops {
		if err := op.apply(e, clone); err != nil {
			return nil, fmt.Errorf("apply %s at %d: %w", op.Type(), i, err)
		}
	}

	if now := e.clock(); now.After(clone.UpdatedAt) {
		clone.UpdatedAt = now
	}
	return clone, nil
}

// SetTitle replaces the title of the document.
func (e *Editor) SetTitle(doc *resume.Document, title string) (*resume.Document, error) {
	return e.Apply(doc, SetTitle{Title: title})
}

// SetTemplate replaces the template of the document. Unlike creation, it
// fails on an unknown template instead of falling back to the default.
func (e *Editor) SetTemplate(doc *resume.Document, template types.TemplateType) (*resume.Document, error) {
	return e.Apply(doc, SetTemplate{Template: template})
}

// UpdateBasics replaces one field of the basics.
func (e *Editor) UpdateBasics(doc *resume.Document, field, value string) (*resume.Document, error) {
	return e.Apply(doc, UpdateBasics{Field: field, Value: value})
}

// AppendEntry appends an empty entry to the section.
func (e *Editor) AppendEntry(doc *resume.Document, section resume.Section) (*resume.Document, error) {
	return e.Apply(doc, AppendEntry{Section: section})
}

// UpdateEntry replaces one field of the entry at index.
func (e *Editor) UpdateEntry(
	doc *resume.Document,
	section resume.Section,
	index int,
	field, value string,
) (*resume.Document, error) {
	return e.Apply(doc, UpdateEntry{Section: section, Index: index, Field: field, Value: value})
}

// RemoveEntry removes the entry at index.
func (e *Editor) RemoveEntry(doc *resume.Document, section resume.Section, index int) (*resume.Document, error) {
	return e.Apply(doc, RemoveEntry{Section: section, Index: index})
}

// AppendItem appends an empty item to the nested list of the entry at index.
func (e *Editor) AppendItem(doc *resume.Document, section resume.Section, index int) (*resume.Document, error) {
	return e.Apply(doc, AppendItem{Section: section, Index: index})
}

// UpdateItem replaces the value of one nested item.
func (e *Editor) UpdateItem(
	doc *resume.Document,
	section resume.Section,
	index, item int,
	value string,
) (*resume.Document, error) {
	return e.Apply(doc, UpdateItem{Section: section, Index: index, Item: item, Value: value})
}

// RemoveItem removes one nested item.
func (e *Editor) RemoveItem(
	doc *resume.Document,
	section resume.Section,
	index, item int,
) (*resume.Document, error) {
	return e.Apply(doc, RemoveItem{Section: section, Index: index, Item: item})
}

// collection resolves the section of the document.
func collection(doc *resume.Document, section resume.Section) (resume.Collection, error) {
	col := doc.Content.Collection(section)
	if col == nil {
		return nil, errors.WithMetadata(
			fmt.Errorf("%q: %w", section, ErrUnknownSection),
			map[string]string{"section": section.String()},
		)
	}
	return col, nil
}

// element resolves the entry at index of the section.
func element(doc *resume.Document, section resume.Section, index int) (resume.Element, error) {
	col, err := collection(doc, section)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= col.Len() {
		return nil, outOfRange(section.String(), index, col.Len())
	}
	return col.At(index), nil
}

// itemList resolves the nested list of the entry at index of the section.
func itemList(doc *resume.Document, section resume.Section, index int) (*[]resume.Item, error) {
	el, err := element(doc, section, index)
	if err != nil {
		return nil, err
	}
	items, ok := el.Items()
	if !ok {
		return nil, errors.WithMetadata(
			fmt.Errorf("%q: %w", section, ErrNoItemList),
			map[string]string{"section": section.String()},
		)
	}
	return items, nil
}

func outOfRange(scope string, index, length int) error {
	return errors.WithMetadata(
		fmt.Errorf("%s[%d] of %d: %w", scope, index, length, ErrOutOfRange),
		map[string]string{
			"scope":  scope,
			"index":  strconv.Itoa(index),
			"length": strconv.Itoa(length),
		},
	)
}

func unknownField(scope, field string) error {
	return errors.WithMetadata(
		fmt.Errorf("%s.%s: %w", scope, field, ErrUnknownField),
		map[string]string{"field": field},
	)
}
