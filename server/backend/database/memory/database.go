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

// Package memory implements the database interface using in-memory database.
package memory

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// ListDocuments returns all documents in listing order.
func (d *DB) ListDocuments(_ context.Context) ([]*resume.Document, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblDocuments, idxCreated)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var docs []*resume.Document
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		docs = append(docs, raw.(*resume.Document).DeepCopy())
	}

	return docs, nil
}

// FindDocumentByID finds the document of the given ID.
func (d *DB) FindDocumentByID(_ context.Context, id types.ID) (*resume.Document, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblDocuments, idxID, id.String())
	if err != nil {
		return nil, fmt.Errorf("find document %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%s: %w", id, database.ErrDocumentNotFound)
	}

	return raw.(*resume.Document).DeepCopy(), nil
}

// UpsertDocument stores a copy of the given document.
func (d *DB) UpsertDocument(_ context.Context, doc *resume.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("upsert document: %w", database.ErrInvalidDocument)
	}

	txn := d.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(tblDocuments, doc.DeepCopy()); err != nil {
		return fmt.Errorf("upsert document %s: %w", doc.ID, err)
	}
	txn.Commit()

	return nil
}

// RemoveDocument removes the document of the given ID if it exists.
func (d *DB) RemoveDocument(_ context.Context, id types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(tblDocuments, idxID, id.String()); err != nil {
		return fmt.Errorf("remove document %s: %w", id, err)
	}
	txn.Commit()

	return nil
}
