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

// Package thumbnail renders the first page of an exported PDF back into a
// bitmap, for previews of exported files.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the resolution thumbnails are rendered at.
const DefaultDPI = 48.0

// Render rasterizes the first page of pdf at dpi.
func Render(pdf []byte, dpi float64) (image.Image, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		_ = doc.Close()
	}()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("open pdf: no pages")
	}

	img, err := doc.ImageDPI(0, dpi)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return img, nil
}

// PNG renders the first page of pdf and encodes it as PNG.
func PNG(pdf []byte, dpi float64) ([]byte, error) {
	img, err := Render(pdf, dpi)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
