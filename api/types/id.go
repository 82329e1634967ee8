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

// Package types provides the types used in the Folio API. This package is
// used by both the server and the client.
package types

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// ID represents ID of entity: documents and every element of their
// repeatable collections.
type ID string

// String returns a string representation of this ID.
func (id ID) String() string {
	return string(id)
}

// IDGenerator returns a new identifier every time it is called. Generators
// are injected wherever IDs are assigned so that tests can use deterministic
// sequences.
type IDGenerator func() ID

// NewUUIDGenerator returns a generator of random (version 4) UUIDs.
func NewUUIDGenerator() IDGenerator {
	return func() ID {
		return ID(uuid.NewString())
	}
}

// NewXIDGenerator returns a generator of globally unique, roughly sortable
// identifiers.
func NewXIDGenerator() IDGenerator {
	return func() ID {
		return ID(xid.New().String())
	}
}

// NewSequenceGenerator returns a generator of "<prefix>-<n>" identifiers
// where n starts at 1. It is safe for concurrent use.
func NewSequenceGenerator(prefix string) IDGenerator {
	var seq atomic.Int64
	return func() ID {
		return ID(fmt.Sprintf("%s-%d", prefix, seq.Add(1)))
	}
}
