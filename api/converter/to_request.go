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

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/resume"
)

// ToOperationRequests converts the given editing operations to wire requests.
func ToOperationRequests(ops []editor.Operation) ([]types.OperationRequest, error) {
	reqs := make([]types.OperationRequest, 0, len(ops))
	for _, op := range ops {
		req, err := ToOperationRequest(op)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// ToOperationRequest converts the given editing operation to a wire request.
func ToOperationRequest(op editor.Operation) (types.OperationRequest, error) {
	req := types.OperationRequest{Type: op.Type()}

	switch o := op.(type) {
	case editor.SetTitle:
		req.Title = o.Title
	case editor.SetTemplate:
		req.Template = o.Template.String()
	case editor.UpdateBasics:
		req.Field, req.Value = o.Field, o.Value
	case editor.AppendEntry:
		req.Section = o.Section.String()
	case editor.UpdateEntry:
		req.Section, req.Index = o.Section.String(), o.Index
		req.Field, req.Value = o.Field, o.Value
	case editor.RemoveEntry:
		req.Section, req.Index = o.Section.String(), o.Index
	case editor.AppendItem:
		req.Section, req.Index = o.Section.String(), o.Index
	case editor.UpdateItem:
		req.Section, req.Index, req.Item = o.Section.String(), o.Index, o.Item
		req.Value = o.Value
	case editor.RemoveItem:
		req.Section, req.Index, req.Item = o.Section.String(), o.Index, o.Item
	default:
		return types.OperationRequest{}, fmt.Errorf("%T: %w", op, ErrUnsupportedOperation)
	}

	return req, nil
}

// ToDocumentSummaries converts the given documents to their list views.
func ToDocumentSummaries(docs []*resume.Document) []*types.DocumentSummary {
	summaries := make([]*types.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, doc.Summary())
	}
	return summaries
}
