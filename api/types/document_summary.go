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

package types

import "time"

// DocumentSummary represents a summary of a resume document, as shown in
// the document list.
type DocumentSummary struct {
	// ID is the unique identifier of the document.
	ID ID `json:"id" yaml:"id"`

	// Title is the title of the document.
	Title string `json:"title" yaml:"title"`

	// Template is the template the document is rendered with.
	Template TemplateType `json:"template" yaml:"template"`

	// Name is the name in the basics of the document.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// CreatedAt is the time when the document is created.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// UpdatedAt is the time when the document is last edited.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}
