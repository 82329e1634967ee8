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

// Package database provides the database interface for the Folio backend.
package database

import (
	"context"
	"slices"
	"strings"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
)

var (
	// ErrDocumentNotFound is returned when the document could not be found.
	ErrDocumentNotFound = errors.NotFound("document not found").WithCode("ErrDocumentNotFound")

	// ErrInvalidDocument is returned when a document without an ID is stored.
	ErrInvalidDocument = errors.InvalidArgument("invalid document").WithCode("ErrInvalidDocument")
)

// Database represents database which reads or saves Folio documents. Every
// document is stored as a complete snapshot; callers get copies that they
// may modify freely.
type Database interface {
	// Close all resources of this database.
	Close() error

	// ListDocuments returns all documents ordered by creation time, oldest
	// first. Documents created at the same time are ordered by ID.
	ListDocuments(ctx context.Context) ([]*resume.Document, error)

	// FindDocumentByID returns the document of the given ID.
	FindDocumentByID(ctx context.Context, id types.ID) (*resume.Document, error)

	// UpsertDocument stores the given document, replacing any document with
	// the same ID.
	UpsertDocument(ctx context.Context, doc *resume.Document) error

	// RemoveDocument removes the document of the given ID. Removing a
	// document that does not exist is not an error.
	RemoveDocument(ctx context.Context, id types.ID) error
}

// SortDocuments sorts docs in listing order.
func SortDocuments(docs []*resume.Document) {
	slices.SortStableFunc(docs, func(a, b *resume.Document) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
