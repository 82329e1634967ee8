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

package export_test

import (
	"context"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	pkgerrors "github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/export"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/render"
	"github.com/folio-team/folio/pkg/resume"
)

var errBoom = errors.New("boom")

type failingSink struct{}

func (failingSink) Deliver(context.Context, string, []byte) error {
	return errBoom
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func fakeRasterizer(img image.Image, scales *[]float64) export.Rasterizer {
	return export.RasterizerFunc(func(_ context.Context, _ *layout.Page, scale float64) (image.Image, error) {
		if scales != nil {
			*scales = append(*scales, scale)
		}
		return img, nil
	})
}

func samplePage(t *testing.T, template types.TemplateType) *layout.Page {
	doc := resume.NewSample(types.NewSequenceGenerator("e"), template, time.Now())
	page, err := render.Document(doc)
	require.NoError(t, err)
	return page
}

func TestExport(t *testing.T) {
	page := &layout.Page{Template: types.TemplateMinimal, Width: layout.PageWidth}

	t.Run("export with a rendered surface test", func(t *testing.T) {
		sink := &export.MemorySink{}
		exp, err := export.New(export.StaticTarget(page), sink,
			export.WithRasterizer(fakeRasterizer(solid(200, 400), nil)),
			export.WithTitle("Sample Resume"),
		)
		require.NoError(t, err)

		result, err := exp.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, export.FileName, result.FileName)
		assert.Equal(t, "%PDF", string(result.Bytes[:4]))
		assert.InDelta(t, export.PageWidth, result.Width, 0.001)
		assert.InDelta(t, export.PageWidth*2, result.Height, 0.001)

		data, ok := sink.File(export.FileName)
		assert.True(t, ok)
		assert.Equal(t, result.Bytes, data)
	})

	t.Run("export without a surface test", func(t *testing.T) {
		sink := &export.MemorySink{}
		exp, err := export.New(export.StaticTarget(nil), sink,
			export.WithRasterizer(fakeRasterizer(solid(10, 10), nil)),
		)
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		assert.ErrorIs(t, err, export.ErrNoTarget)
		assert.True(t, pkgerrors.IsStatus(err, pkgerrors.ErrCodeFailedPrecondition))
		assert.Equal(t, 0, sink.Len())
	})

	t.Run("capture failure test", func(t *testing.T) {
		sink := &export.MemorySink{}
		failing := export.RasterizerFunc(func(context.Context, *layout.Page, float64) (image.Image, error) {
			return nil, errBoom
		})
		exp, err := export.New(export.StaticTarget(page), sink, export.WithRasterizer(failing))
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		assert.ErrorIs(t, err, export.ErrCaptureFailed)
		assert.ErrorIs(t, err, errBoom)
		assert.Equal(t, 0, sink.Len())
	})

	t.Run("empty bitmap test", func(t *testing.T) {
		exp, err := export.New(export.StaticTarget(page), &export.MemorySink{},
			export.WithRasterizer(fakeRasterizer(image.NewRGBA(image.Rectangle{}), nil)),
		)
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		assert.ErrorIs(t, err, export.ErrCaptureFailed)
	})

	t.Run("delivery failure test", func(t *testing.T) {
		exp, err := export.New(export.StaticTarget(page), failingSink{},
			export.WithRasterizer(fakeRasterizer(solid(20, 20), nil)),
		)
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		assert.ErrorIs(t, err, export.ErrDeliveryFailed)
		assert.ErrorIs(t, err, errBoom)
		assert.True(t, pkgerrors.IsServerError(err))
	})

	t.Run("minimum scale test", func(t *testing.T) {
		var scales []float64
		exp, err := export.New(export.StaticTarget(page), &export.MemorySink{},
			export.WithRasterizer(fakeRasterizer(solid(20, 20), &scales)),
			export.WithScale(1),
		)
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []float64{export.MinScale}, scales)
	})

	t.Run("every attempt captures the current surface test", func(t *testing.T) {
		var current *layout.Page
		target := export.TargetFunc(func(context.Context) (*layout.Page, bool) {
			return current, current != nil
		})
		sink := &export.MemorySink{}
		exp, err := export.New(target, sink, export.WithRasterizer(fakeRasterizer(solid(20, 20), nil)))
		require.NoError(t, err)

		_, err = exp.Export(context.Background())
		assert.ErrorIs(t, err, export.ErrNoTarget)

		current = page
		_, err = exp.Export(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, sink.Len())
	})
}

func TestPlacedSize(t *testing.T) {
	w, h := export.PlacedSize(image.Rect(0, 0, 1588, 2246))
	assert.InDelta(t, export.PageWidth, w, 0.001)
	assert.InDelta(t, 2246*export.PageWidth/1588, h, 0.001)

	w, h = export.PlacedSize(image.Rectangle{})
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRasterizer(t *testing.T) {
	r, err := export.NewRasterizer()
	require.NoError(t, err)

	t.Run("every template test", func(t *testing.T) {
		for _, tmpl := range types.TemplateTypes() {
			img, err := r.Rasterize(context.Background(), samplePage(t, tmpl), export.DefaultScale)
			require.NoError(t, err, tmpl)

			bounds := img.Bounds()
			assert.Equal(t, int(layout.PageWidth*export.DefaultScale), bounds.Dx(), tmpl)
			assert.GreaterOrEqual(t, float64(bounds.Dy()), float64(bounds.Dx())*export.PageHeight/export.PageWidth-1, tmpl)
		}
	})

	t.Run("scale below minimum test", func(t *testing.T) {
		img, err := r.Rasterize(context.Background(), samplePage(t, types.TemplateMinimal), 1)
		require.NoError(t, err)
		assert.Equal(t, int(layout.PageWidth*export.MinScale), img.Bounds().Dx())
	})

	t.Run("canceled context test", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.Rasterize(ctx, samplePage(t, types.TemplateModern), export.DefaultScale)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil page test", func(t *testing.T) {
		_, err := r.Rasterize(context.Background(), nil, export.DefaultScale)
		assert.Error(t, err)
	})

	t.Run("uppercase title test", func(t *testing.T) {
		ctx := context.Background()
		page := samplePage(t, types.TemplateExecutive)
		e := &page.Section(layout.SectionWork).Entries[0]
		require.True(t, e.UppercaseTitle)
		written := e.Title

		styled, err := r.Rasterize(ctx, page, export.DefaultScale)
		require.NoError(t, err)

		e.Title, e.UppercaseTitle = strings.ToUpper(written), false
		capitals, err := r.Rasterize(ctx, page, export.DefaultScale)
		require.NoError(t, err)
		assert.Equal(t, capitals, styled)

		e.Title = written
		plain, err := r.Rasterize(ctx, page, export.DefaultScale)
		require.NoError(t, err)
		assert.NotEqual(t, plain, styled)
	})

	t.Run("export sample resume test", func(t *testing.T) {
		sink := &export.MemorySink{}
		exp, err := export.New(export.StaticTarget(samplePage(t, types.TemplateCreative)), sink)
		require.NoError(t, err)

		result, err := exp.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(result.Bytes[:4]))
		assert.Equal(t, 1, sink.Len())
	})
}

func TestSinks(t *testing.T) {
	t.Run("directory sink test", func(t *testing.T) {
		dir := t.TempDir()
		sink := export.DirSink{Dir: dir}

		assert.NoError(t, sink.Deliver(context.Background(), export.FileName, []byte("first")))
		assert.NoError(t, sink.Deliver(context.Background(), export.FileName, []byte("second")))

		data, err := os.ReadFile(filepath.Join(dir, export.FileName))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("directory sink missing directory test", func(t *testing.T) {
		sink := export.DirSink{Dir: filepath.Join(t.TempDir(), "missing")}
		assert.Error(t, sink.Deliver(context.Background(), export.FileName, []byte("x")))
	})

	t.Run("http sink test", func(t *testing.T) {
		rec := httptest.NewRecorder()
		sink := export.HTTPSink{W: rec}

		assert.NoError(t, sink.Deliver(context.Background(), export.FileName, []byte("%PDF-1.3")))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="resume.pdf"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "8", rec.Header().Get("Content-Length"))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})
}
