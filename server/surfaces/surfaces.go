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

// Package surfaces keeps the most recently rendered layout of each document,
// which is what an export captures.
package surfaces

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/export"
	"github.com/folio-team/folio/pkg/layout"
)

// DefaultSize is the number of surfaces kept when the configuration does not
// say otherwise.
const DefaultSize = 256

// Registry is a bounded registry of rendered surfaces. When it is full, the
// surface used least recently is evicted; exporting that document then fails
// until it is rendered again.
type Registry struct {
	cache *lru.Cache[types.ID, *layout.Page]
}

// New creates a new instance of Registry holding at most size surfaces.
func New(size int) (*Registry, error) {
	if size <= 0 {
		size = DefaultSize
	}

	cache, err := lru.New[types.ID, *layout.Page](size)
	if err != nil {
		return nil, fmt.Errorf("initialize surface cache: %w", err)
	}

	return &Registry{cache: cache}, nil
}

// Put registers page as the current surface of the document.
func (r *Registry) Put(id types.ID, page *layout.Page) {
	r.cache.Add(id, page)
}

// Get returns the current surface of the document.
func (r *Registry) Get(id types.ID) (*layout.Page, bool) {
	return r.cache.Get(id)
}

// Remove drops the surface of the document.
func (r *Registry) Remove(id types.ID) {
	r.cache.Remove(id)
}

// Len returns the number of registered surfaces.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Target returns an export target that locates the surface of the document
// at the time of each export.
func (r *Registry) Target(id types.ID) export.Target {
	return export.TargetFunc(func(context.Context) (*layout.Page, bool) {
		return r.Get(id)
	})
}
