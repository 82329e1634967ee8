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

// Package export turns the rendered layout of a resume into a one-page A4
// PDF: it captures the layout as a bitmap, places the bitmap on the page and
// hands the file to a sink.
package export

import (
	"context"
	"fmt"
	"image"

	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/layout"
)

// FileName is the name of every exported file.
const FileName = "resume.pdf"

const (
	// DefaultScale is the magnification the layout is captured at.
	DefaultScale = 2.0

	// MinScale is the smallest magnification accepted. Smaller values are
	// raised to it.
	MinScale = 2.0
)

var (
	// ErrNoTarget is returned when there is no rendered layout to capture.
	ErrNoTarget = errors.FailedPrecond("no rendered layout to export").WithCode("ErrNoTarget")

	// ErrCaptureFailed is returned when the layout cannot be rasterized.
	ErrCaptureFailed = errors.Internal("capture failed").WithCode("ErrCaptureFailed")

	// ErrEncodeFailed is returned when the bitmap cannot be written as a PDF.
	ErrEncodeFailed = errors.Internal("encode failed").WithCode("ErrEncodeFailed")

	// ErrDeliveryFailed is returned when the sink rejects the file.
	ErrDeliveryFailed = errors.Unavailable("delivery failed").WithCode("ErrDeliveryFailed")
)

// Target locates the rendered layout to export.
type Target interface {
	// Surface returns the layout currently rendered, or false if nothing is
	// rendered.
	Surface(ctx context.Context) (*layout.Page, bool)
}

// TargetFunc is an adapter to use an ordinary function as a Target.
type TargetFunc func(ctx context.Context) (*layout.Page, bool)

// Surface calls f(ctx).
func (f TargetFunc) Surface(ctx context.Context) (*layout.Page, bool) {
	return f(ctx)
}

// StaticTarget returns a Target that always returns page. A nil page is an
// absent surface.
func StaticTarget(page *layout.Page) Target {
	return TargetFunc(func(context.Context) (*layout.Page, bool) {
		return page, page != nil
	})
}

// Rasterizer captures a layout as a bitmap.
type Rasterizer interface {
	Rasterize(ctx context.Context, page *layout.Page, scale float64) (image.Image, error)
}

// RasterizerFunc is an adapter to use an ordinary function as a Rasterizer.
type RasterizerFunc func(ctx context.Context, page *layout.Page, scale float64) (image.Image, error)

// Rasterize calls f(ctx, page, scale).
func (f RasterizerFunc) Rasterize(ctx context.Context, page *layout.Page, scale float64) (image.Image, error) {
	return f(ctx, page, scale)
}

// Sink receives exported files.
type Sink interface {
	Deliver(ctx context.Context, name string, data []byte) error
}

// Result describes one exported file.
type Result struct {
	// FileName is the name the file was delivered under.
	FileName string

	// Bytes is the content of the PDF.
	Bytes []byte

	// Width and Height are the size of the placed image in points.
	Width  float64
	Height float64

	// Pixels is the bounds of the captured bitmap.
	Pixels image.Rectangle
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRasterizer sets the rasterizer used to capture the layout.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Exporter) { e.rasterizer = r }
}

// WithScale sets the capture magnification. Values below MinScale are raised
// to MinScale.
func WithScale(scale float64) Option {
	return func(e *Exporter) { e.scale = scale }
}

// WithTitle sets the title stored in the PDF metadata.
func WithTitle(title string) Option {
	return func(e *Exporter) { e.title = title }
}

// Exporter runs the export pipeline. Every call to Export is a separate
// attempt that captures the layout current at that time.
type Exporter struct {
	target     Target
	sink       Sink
	rasterizer Rasterizer
	scale      float64
	title      string
}

// New creates a new instance of Exporter. Without WithRasterizer the layout
// is drawn with the Go fonts.
func New(target Target, sink Sink, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		target: target,
		sink:   sink,
		scale:  DefaultScale,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rasterizer == nil {
		r, err := NewRasterizer()
		if err != nil {
			return nil, err
		}
		e.rasterizer = r
	}
	if e.scale < MinScale {
		e.scale = MinScale
	}

	return e, nil
}

// Export captures the current layout, writes it as a PDF and delivers it to
// the sink.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	page, ok := e.target.Surface(ctx)
	if !ok || page == nil {
		return nil, ErrNoTarget
	}

	img, err := e.rasterizer.Rasterize(ctx, page, e.scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty bitmap", ErrCaptureFailed)
	}

	doc, err := EncodePDF(img, e.title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	if err := e.sink.Deliver(ctx, FileName, doc.Bytes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return &Result{
		FileName: FileName,
		Bytes:    doc.Bytes,
		Width:    doc.Width,
		Height:   doc.Height,
		Pixels:   img.Bounds(),
	}, nil
}
