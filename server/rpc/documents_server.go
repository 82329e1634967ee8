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

package rpc

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/export"
	"github.com/folio-team/folio/pkg/export/thumbnail"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/documents"
	"github.com/folio-team/folio/server/rpc/httphelper"
)

// ErrInvalidDPI is returned when the resolution of a thumbnail is invalid.
var ErrInvalidDPI = errors.InvalidArgument("invalid dpi").WithCode("ErrInvalidDPI")

// maxThumbnailDPI bounds the resolution of thumbnails.
const maxThumbnailDPI = 300

type documentServer struct {
	backend         *backend.Backend
	maxRequestBytes int64
}

// newDocumentServer creates a new instance of documentServer.
func newDocumentServer(be *backend.Backend, maxRequestBytes int64) *documentServer {
	return &documentServer{
		backend:         be,
		maxRequestBytes: maxRequestBytes,
	}
}

func (s *documentServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.listDocuments)
	r.Post("/", s.createDocument)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", s.getDocument)
		r.Delete("/", s.removeDocument)
		r.Post("/operations", s.editDocument)
		r.Get("/preview", s.previewDocument)
		r.Post("/export", s.exportDocument)
		r.Get("/thumbnail", s.thumbnailDocument)
	})

	return r
}

func documentID(r *http.Request) types.ID {
	return types.ID(chi.URLParam(r, "id"))
}

// listDocuments returns the summaries of all documents.
func (s *documentServer) listDocuments(w http.ResponseWriter, r *http.Request) {
	summaries, err := documents.List(r.Context(), s.backend)
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	httphelper.WriteJSON(w, http.StatusOK, summaries)
}

// createDocument creates a new document from the given fields.
func (s *documentServer) createDocument(w http.ResponseWriter, r *http.Request) {
	var fields types.CreateDocumentFields
	if err := httphelper.ReadJSON(w, r, s.maxRequestBytes, &fields); err != nil {
		httphelper.WriteError(w, r, err)
		return
	}
	if err := fields.Validate(); err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	doc, err := documents.Create(r.Context(), s.backend, documents.CreateOptions{
		Title:    fields.Title,
		Template: types.TemplateType(fields.Template),
		Sample:   fields.Sample,
	})
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	w.Header().Set("Location", "/documents/"+doc.ID.String())
	httphelper.WriteJSON(w, http.StatusCreated, doc)
}

// getDocument returns the document of the given ID.
func (s *documentServer) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := documents.Get(r.Context(), s.backend, documentID(r))
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	httphelper.WriteJSON(w, http.StatusOK, doc)
}

// removeDocument removes the document of the given ID.
func (s *documentServer) removeDocument(w http.ResponseWriter, r *http.Request) {
	if err := documents.Remove(r.Context(), s.backend, documentID(r)); err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// editDocument applies the given operations to the document.
func (s *documentServer) editDocument(w http.ResponseWriter, r *http.Request) {
	var fields types.EditDocumentFields
	if err := httphelper.ReadJSON(w, r, s.maxRequestBytes, &fields); err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	doc, err := documents.EditWithRequests(r.Context(), s.backend, documentID(r), fields.Operations)
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	httphelper.WriteJSON(w, http.StatusOK, doc)
}

// previewDocument renders the document and writes the layout as HTML.
func (s *documentServer) previewDocument(w http.ResponseWriter, r *http.Request) {
	page, err := documents.Render(r.Context(), s.backend, documentID(r))
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := layout.WriteHTML(&buf, page); err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// exportDocument exports the current layout of the document as a PDF
// attachment.
func (s *documentServer) exportDocument(w http.ResponseWriter, r *http.Request) {
	if _, err := documents.Export(r.Context(), s.backend, documentID(r), export.HTTPSink{W: w}); err != nil {
		httphelper.WriteError(w, r, err)
	}
}

// thumbnailDocument exports the current layout of the document and writes
// the first page of the result as a PNG image.
func (s *documentServer) thumbnailDocument(w http.ResponseWriter, r *http.Request) {
	dpi := thumbnail.DefaultDPI
	if v := r.URL.Query().Get("dpi"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 || parsed > maxThumbnailDPI {
			httphelper.WriteError(w, r, errors.WithMetadata(ErrInvalidDPI, map[string]string{"dpi": v}))
			return
		}
		dpi = parsed
	}

	result, err := documents.Export(r.Context(), s.backend, documentID(r), &export.MemorySink{})
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	png, err := thumbnail.PNG(result.Bytes, dpi)
	if err != nil {
		httphelper.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
