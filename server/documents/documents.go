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

// Package documents provides the document operations of the server: it ties
// the store, the editing engine, the templates and the export pipeline
// together.
package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/folio-team/folio/api/converter"
	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/export"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/render"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/profiling/prometheus"
)

// CreateOptions are the options of a new document.
type CreateOptions struct {
	// Title is the title of the document. Empty means the default title of
	// the chosen content.
	Title string

	// Template is the template of the document. Unknown templates fall back
	// to the default template.
	Template types.TemplateType

	// Sample fills the document with demonstration content.
	Sample bool
}

// Create creates a new document, stores it and renders it.
func Create(ctx context.Context, be *backend.Backend, opts CreateOptions) (*resume.Document, error) {
	template, fellBack := types.TemplateTypeOrDefault(opts.Template)
	if fellBack && opts.Template != "" {
		logging.From(ctx).Warnf("unknown template %q, using %s", opts.Template, template)
	}

	var doc *resume.Document
	if opts.Sample {
		doc = resume.NewSample(be.IDs, template, be.Clock())
		if opts.Title != "" {
			doc.Title = opts.Title
		}
	} else {
		doc = resume.NewBlank(be.IDs(), opts.Title, template, be.Clock())
	}

	unlock := lockDocument(ctx, be, doc.ID)
	defer unlock()

	if err := be.DB.UpsertDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	renderAndRegister(ctx, be, doc)

	if be.Metrics != nil {
		be.Metrics.AddDocumentCreated(doc.Template)
	}

	return doc, nil
}

// List returns the summaries of all documents, oldest first.
func List(ctx context.Context, be *backend.Backend) ([]*types.DocumentSummary, error) {
	docs, err := be.DB.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	return converter.ToDocumentSummaries(docs), nil
}

// Get returns the document of the given ID.
func Get(ctx context.Context, be *backend.Backend, id types.ID) (*resume.Document, error) {
	return be.DB.FindDocumentByID(ctx, id)
}

// Remove removes the document of the given ID and its rendered surface.
func Remove(ctx context.Context, be *backend.Backend, id types.ID) error {
	unlock := lockDocument(ctx, be, id)
	defer unlock()

	if err := be.DB.RemoveDocument(ctx, id); err != nil {
		return err
	}
	be.Surfaces.Remove(id)

	return nil
}

// Edit applies the given operations to the document of the given ID, stores
// the result and re-renders it. Either every operation is stored or none is.
func Edit(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
	ops ...editor.Operation,
) (*resume.Document, error) {
	unlock := lockDocument(ctx, be, id)
	defer unlock()

	doc, err := be.DB.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	edited, err := be.Editor.Apply(doc, ops...)
	if err != nil {
		return nil, err
	}

	if err := be.DB.UpsertDocument(ctx, edited); err != nil {
		return nil, fmt.Errorf("edit document: %w", err)
	}
	renderAndRegister(ctx, be, edited)

	if be.Metrics != nil {
		for _, op := range ops {
			be.Metrics.AddEditorOperation(op.Type(), 1)
		}
	}

	return edited, nil
}

// EditWithRequests converts the given requests and applies them like Edit.
func EditWithRequests(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
	reqs []types.OperationRequest,
) (*resume.Document, error) {
	ops, err := converter.FromOperationRequests(reqs)
	if err != nil {
		return nil, err
	}

	return Edit(ctx, be, id, ops...)
}

// Render renders the document of the given ID and registers the result as
// its current surface. It holds the document lock so that a concurrent Edit
// or Remove cannot be overtaken by a stale surface.
func Render(ctx context.Context, be *backend.Backend, id types.ID) (*layout.Page, error) {
	unlock := lockDocument(ctx, be, id)
	defer unlock()

	doc, err := be.DB.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return renderAndRegister(ctx, be, doc), nil
}

// Export captures the current surface of the document of the given ID and
// delivers it to sink as a PDF. It fails with export.ErrNoTarget when the
// document has no rendered surface.
func Export(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
	sink export.Sink,
) (*export.Result, error) {
	doc, err := be.DB.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exporter, err := export.New(
		be.Surfaces.Target(id),
		sink,
		export.WithRasterizer(be.Rasterizer),
		export.WithScale(be.ExportScale()),
		export.WithTitle(doc.Title),
	)
	if err != nil {
		return nil, err
	}

	result, err := exporter.Export(ctx)
	if be.Metrics != nil {
		if err != nil {
			be.Metrics.AddExport(prometheus.ExportFailed)
		} else {
			be.Metrics.AddExport(prometheus.ExportSucceeded)
			be.Metrics.ObserveExportBytes(len(result.Bytes))
		}
	}
	if err != nil {
		logging.From(ctx).Warnf("export %s: %v", id, err)
		return nil, err
	}

	return result, nil
}

// lockDocument takes the lock of the document of the given ID and returns
// the function releasing it. Reads of the stored document and writes of the
// document or its surface happen under this lock.
func lockDocument(ctx context.Context, be *backend.Backend, id types.ID) func() {
	be.DocLocker.Lock(id)
	return func() {
		if err := be.DocLocker.Unlock(id); err != nil {
			logging.From(ctx).Error(err)
		}
	}
}

// renderAndRegister renders doc and replaces its surface. A template
// unknown to this server is rendered with the default template.
func renderAndRegister(ctx context.Context, be *backend.Backend, doc *resume.Document) *layout.Page {
	start := time.Now()
	page, err := render.Document(doc)
	if err != nil {
		logging.From(ctx).Warnf("render %s: %v", doc.ID, err)
	}
	if be.Metrics != nil {
		be.Metrics.ObserveRenderSeconds(page.Template, time.Since(start).Seconds())
	}

	be.Surfaces.Put(doc.ID, page)
	return page
}
