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

import (
	"fmt"
	"os"
	"strings"

	"github.com/folio-team/folio/internal/validation"
	"github.com/folio-team/folio/pkg/errors"
)

// ErrInvalidRequest is returned when a request sent by a client does not
// pass validation.
var ErrInvalidRequest = errors.InvalidArgument("invalid request").WithCode("ErrInvalidRequest")

// OperationType is the kind of an editing operation sent over the wire.
type OperationType string

// Operation types accepted by the operations endpoint.
const (
	OpSetTitle     OperationType = "set_title"
	OpSetTemplate  OperationType = "set_template"
	OpUpdateBasics OperationType = "update_basics"
	OpAppendEntry  OperationType = "append_entry"
	OpUpdateEntry  OperationType = "update_entry"
	OpRemoveEntry  OperationType = "remove_entry"
	OpAppendItem   OperationType = "append_item"
	OpUpdateItem   OperationType = "update_item"
	OpRemoveItem   OperationType = "remove_item"
)

var operationTypes = map[OperationType]bool{
	OpSetTitle:     true,
	OpSetTemplate:  true,
	OpUpdateBasics: true,
	OpAppendEntry:  true,
	OpUpdateEntry:  true,
	OpRemoveEntry:  true,
	OpAppendItem:   true,
	OpUpdateItem:   true,
	OpRemoveItem:   true,
}

// OperationRequest is the wire form of one editing operation. Only the fields
// relevant to Type are read.
type OperationRequest struct {
	Type     OperationType `json:"type" yaml:"type" validate:"required,operation_type"`
	Title    string        `json:"title,omitempty" yaml:"title,omitempty"`
	Template string        `json:"template,omitempty" yaml:"template,omitempty"`
	Section  string        `json:"section,omitempty" yaml:"section,omitempty"`
	Index    int           `json:"index,omitempty" yaml:"index,omitempty"`
	Item     int           `json:"item,omitempty" yaml:"item,omitempty"`
	Field    string        `json:"field,omitempty" yaml:"field,omitempty" validate:"omitempty,field_name"`
	Value    string        `json:"value,omitempty" yaml:"value,omitempty"`
}

// Validate validates the OperationRequest.
func (r *OperationRequest) Validate() error {
	if err := validation.ValidateStruct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// CreateDocumentFields is a set of fields that use to create a document.
type CreateDocumentFields struct {
	// Title is the title of the new document. Blank documents without a
	// title are named "Untitled Resume".
	Title string `json:"title,omitempty" validate:"max=200"`

	// Template is the discriminant of the template. Unknown values fall
	// back to the default template.
	Template string `json:"template,omitempty"`

	// Sample creates the document pre-populated with demonstration content.
	Sample bool `json:"sample,omitempty"`
}

// Validate validates the CreateDocumentFields.
func (f *CreateDocumentFields) Validate() error {
	if err := validation.ValidateStruct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func init() {
	if err := validation.RegisterValidation(
		"operation_type",
		func(level validation.FieldLevel) bool {
			return operationTypes[OperationType(level.Field().String())]
		},
	); err != nil {
		fmt.Fprintln(os.Stderr, "operation request: ", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(operationTypes))
	for _, t := range []OperationType{
		OpSetTitle, OpSetTemplate, OpUpdateBasics,
		OpAppendEntry, OpUpdateEntry, OpRemoveEntry,
		OpAppendItem, OpUpdateItem, OpRemoveItem,
	} {
		names = append(names, string(t))
	}
	if err := validation.RegisterTranslation(
		"operation_type",
		"{0} must be one of "+strings.Join(names, ", "),
	); err != nil {
		fmt.Fprintln(os.Stderr, "operation request: ", err)
		os.Exit(1)
	}
}
