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

package converter

import (
	"fmt"
	"slices"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/resume"
)

// FromOperationRequests converts the given wire requests to editing
// operations. Every request is validated first.
func FromOperationRequests(reqs []types.OperationRequest) ([]editor.Operation, error) {
	ops := make([]editor.Operation, 0, len(reqs))
	for i := range reqs {
		op, err := FromOperationRequest(&reqs[i])
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// FromOperationRequest converts the given wire request to an editing
// operation.
func FromOperationRequest(req *types.OperationRequest) (editor.Operation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Type {
	case types.OpSetTitle:
		return editor.SetTitle{Title: req.Title}, nil
	case types.OpSetTemplate:
		return editor.SetTemplate{Template: types.TemplateType(req.Template)}, nil
	case types.OpUpdateBasics:
		if !slices.Contains(resume.BasicsFields, req.Field) {
			return nil, errors.WithMetadata(
				fmt.Errorf("basics.%s: %w", req.Field, editor.ErrUnknownField),
				map[string]string{"field": req.Field},
			)
		}
		return editor.UpdateBasics{Field: req.Field, Value: req.Value}, nil
	}

	section, ok := resume.ParseSection(req.Section)
	if !ok {
		return nil, errors.WithMetadata(
			fmt.Errorf("%q: %w", req.Section, editor.ErrUnknownSection),
			map[string]string{"section": req.Section},
		)
	}

	switch req.Type {
	case types.OpAppendEntry:
		return editor.AppendEntry{Section: section}, nil
	case types.OpUpdateEntry:
		return editor.UpdateEntry{Section: section, Index: req.Index, Field: req.Field, Value: req.Value}, nil
	case types.OpRemoveEntry:
		return editor.RemoveEntry{Section: section, Index: req.Index}, nil
	case types.OpAppendItem:
		return editor.AppendItem{Section: section, Index: req.Index}, nil
	case types.OpUpdateItem:
		return editor.UpdateItem{Section: section, Index: req.Index, Item: req.Item, Value: req.Value}, nil
	case types.OpRemoveItem:
		return editor.RemoveItem{Section: section, Index: req.Index, Item: req.Item}, nil
	}

	return nil, fmt.Errorf("%s: %w", req.Type, ErrUnsupportedOperation)
}
