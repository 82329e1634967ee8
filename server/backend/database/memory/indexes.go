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

package memory

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/folio-team/folio/pkg/resume"
)

const (
	tblDocuments = "documents"

	idxID      = "id"
	idxCreated = "created"
)

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		tblDocuments: {
			Name: tblDocuments,
			Indexes: map[string]*memdb.IndexSchema{
				idxID: {
					Name:    idxID,
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				idxCreated: {
					Name:    idxCreated,
					Unique:  true,
					Indexer: &createdIndexer{},
				},
			},
		},
	},
}

// createdIndexer indexes documents in listing order: the creation time as a
// sortable 8-byte prefix followed by the ID.
type createdIndexer struct{}

// FromObject returns the index key of the given document.
func (createdIndexer) FromObject(raw interface{}) (bool, []byte, error) {
	doc, ok := raw.(*resume.Document)
	if !ok {
		return false, nil, fmt.Errorf("unexpected object %T", raw)
	}

	return true, createdKey(doc), nil
}

// FromArgs returns the index key of a document given as the only argument.
func (createdIndexer) FromArgs(args ...interface{}) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("must provide only a single argument")
	}
	doc, ok := args[0].(*resume.Document)
	if !ok {
		return nil, fmt.Errorf("argument must be a document: %#v", args[0])
	}

	return createdKey(doc), nil
}

func createdKey(doc *resume.Document) []byte {
	// Flipping the sign bit keeps times before the epoch in order.
	const signBit = 1 << 63

	key := make([]byte, 8, 8+len(doc.ID))
	binary.BigEndian.PutUint64(key, uint64(doc.CreatedAt.UnixNano())^signBit)
	return append(key, doc.ID.String()...)
}
