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

package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/go-pdf/fpdf"
)

// A4 portrait in points.
const (
	PageWidth  = 595.28
	PageHeight = 841.89
)

const imageName = "surface"

// PDF is an encoded single page document.
type PDF struct {
	Bytes []byte

	// Width and Height are the size of the placed image in points.
	Width  float64
	Height float64
}

// PlacedSize returns the size the bitmap takes on the page: the page width,
// and the height that keeps the aspect ratio of the bitmap.
func PlacedSize(bounds image.Rectangle) (float64, float64) {
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	if w == 0 {
		return 0, 0
	}
	return PageWidth, h * PageWidth / w
}

// EncodePDF places img at the top-left corner of an A4 portrait page,
// scaled to the page width. The image is embedded losslessly as PNG and is
// not split across pages.
func EncodePDF(img image.Image, title string) (*PDF, error) {
	var raster bytes.Buffer
	if err := png.Encode(&raster, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("Folio", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opts, &raster)

	width, height := PlacedSize(img.Bounds())
	pdf.ImageOptions(imageName, 0, 0, width, height, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return &PDF{Bytes: out.Bytes(), Width: width, Height: height}, nil
}
