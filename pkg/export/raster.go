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
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/folio-team/folio/pkg/layout"
)

type fontStyle int

const (
	styleRegular fontStyle = iota
	styleBold
	styleItalic
	styleSmallCaps
)

// GoFontRasterizer draws layouts with the Go font family. It is safe for
// concurrent use; every call creates its own font faces.
type GoFontRasterizer struct {
	fonts map[fontStyle]*opentype.Font
}

// NewRasterizer creates a new instance of GoFontRasterizer.
func NewRasterizer() (*GoFontRasterizer, error) {
	r := &GoFontRasterizer{fonts: make(map[fontStyle]*opentype.Font)}
	for style, ttf := range map[fontStyle][]byte{
		styleRegular:   goregular.TTF,
		styleBold:      gobold.TTF,
		styleItalic:    goitalic.TTF,
		styleSmallCaps: gosmallcaps.TTF,
	} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parse font: %w", err)
		}
		r.fonts[style] = f
	}
	return r, nil
}

// Rasterize draws the page at the given magnification. The bitmap is at
// least as tall as an A4 sheet of the same width; taller layouts make a
// taller bitmap.
func (r *GoFontRasterizer) Rasterize(ctx context.Context, page *layout.Page, scale float64) (image.Image, error) {
	if page == nil {
		return nil, fmt.Errorf("rasterize: nil page")
	}
	if scale < MinScale {
		scale = MinScale
	}

	p := &painter{
		fonts: r.fonts,
		page:  page,
		scale: scale,
		faces: make(map[faceKey]font.Face),
	}
	defer p.close()

	width := p.px(page.Width)
	if width <= 0 {
		return nil, fmt.Errorf("rasterize: page width %v", page.Width)
	}

	height, err := p.paint(ctx, nil, width)
	if err != nil {
		return nil, err
	}
	height = max(height, int(math.Ceil(float64(width)*PageHeight/PageWidth)))

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if _, err := p.paint(ctx, dst, width); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	return dst, nil
}

type faceKey struct {
	style fontStyle
	size  float64
}

// painter walks a layout top to bottom. With a nil dst it only measures.
type painter struct {
	fonts map[fontStyle]*opentype.Font
	faces map[faceKey]font.Face
	page  *layout.Page
	scale float64
	dst   *image.RGBA

	// fg overrides every text color while set.
	fg  *layout.Color
	err error
}

func (p *painter) close() {
	for _, face := range p.faces {
		_ = face.Close()
	}
}

func (p *painter) px(v float64) int {
	return int(math.Round(v * p.scale))
}

func (p *painter) face(style fontStyle, size float64) font.Face {
	key := faceKey{style: style, size: size}
	if face, ok := p.faces[key]; ok {
		return face
	}

	face, err := opentype.NewFace(p.fonts[style], &opentype.FaceOptions{
		Size:    size * p.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		if p.err == nil {
			p.err = fmt.Errorf("new face: %w", err)
		}
		return basicfont.Face7x13
	}
	p.faces[key] = face
	return face
}

func (p *painter) color(c layout.Color) layout.Color {
	if p.fg != nil {
		return *p.fg
	}
	return c
}

// measure runs fn without drawing and returns its result.
func (p *painter) measure(fn func() int) int {
	dst := p.dst
	p.dst = nil
	defer func() { p.dst = dst }()
	return fn()
}

func (p *painter) fill(r image.Rectangle, c layout.Color) {
	if p.dst == nil {
		return
	}
	draw.Draw(p.dst, r, image.NewUniform(c.RGBA()), image.Point{}, draw.Src)
}

func (p *painter) text(x, y int, s string, face font.Face, c layout.Color) {
	if p.dst == nil {
		return
	}
	d := font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(c.RGBA()),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (p *painter) lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil() + p.px(2)
}

// block draws s wrapped to width and returns the y below the last line.
func (p *painter) block(s string, style fontStyle, size float64, c layout.Color,
	x, y, width int, align layout.Align) int {
	face := p.face(style, size)
	lh := p.lineHeight(face)
	for _, line := range wrap(face, s, width) {
		lx := x
		if align == layout.AlignCenter {
			lx = x + (width-font.MeasureString(face, line).Ceil())/2
		}
		p.text(lx, y, line, face, c)
		y += lh
	}
	return y
}

func (p *painter) paint(ctx context.Context, dst *image.RGBA, width int) (int, error) {
	p.dst = dst
	t := p.page.Theme
	pad := p.px(t.Padding)

	top := 0
	if b := p.page.Banner; b != nil {
		bottom := p.measure(func() int { return p.header(b, pad, pad, width-2*pad) }) + pad
		if b.Fill != nil {
			p.fill(image.Rect(0, 0, width, bottom), *b.Fill)
		}
		p.header(b, pad, pad, width-2*pad)
		top = bottom
	}

	widths := p.page.ColumnWidths()
	bottom, x := top, 0
	for i, col := range p.page.Columns {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		w := p.px(widths[i])
		if i == len(p.page.Columns)-1 {
			w = width - x
		}
		if col.Fill != nil && dst != nil {
			p.fill(image.Rect(x, top, x+w, dst.Bounds().Dy()), *col.Fill)
		}

		bottom = max(bottom, p.column(col, x, top, w))
		x += w
	}

	return bottom, nil
}

func (p *painter) column(col layout.Column, x, y, w int) int {
	t := p.page.Theme
	pad := p.px(t.Padding)

	p.fg = col.Foreground
	defer func() { p.fg = nil }()

	ix, iw := x+pad, w-2*pad
	y += pad
	if col.Header != nil {
		y = p.header(col.Header, ix, y, iw) + pad/2
	}
	for _, s := range col.Sections {
		y = p.section(s, ix, y, iw)
	}
	return y + pad
}

func (p *painter) header(h *layout.Header, x, y, w int) int {
	t := p.page.Theme
	if h.Foreground != nil {
		fg := p.fg
		p.fg = h.Foreground
		defer func() { p.fg = fg }()
	}

	nameStyle := styleBold
	if t.Serif {
		nameStyle = styleSmallCaps
	}
	y = p.block(h.Name, nameStyle, t.NameSize, p.color(t.Text), x, y, w, h.Align)
	if h.Label != "" {
		y = p.block(h.Label, styleRegular, t.LabelSize, p.color(t.Accent), x, y+p.px(4), w, h.Align)
	}
	return y
}

func (p *painter) section(s *layout.Section, x, y, w int) int {
	t := p.page.Theme

	title, style := s.Title, styleBold
	if t.UppercaseHeadings {
		title = strings.ToUpper(title)
	}
	if t.Serif {
		style = styleSmallCaps
	}
	y = p.block(title, style, t.HeadingSize, p.color(t.Heading), x, y, w, layout.AlignLeft)
	if t.HeadingRule {
		p.fill(image.Rect(x, y+p.px(1), x+w, y+p.px(1)+max(1, p.px(1))), p.color(t.Rule))
		y += p.px(4)
	}
	y += p.px(6)

	if s.Text != "" {
		y = p.block(s.Text, styleRegular, t.BaseSize, p.color(t.Text), x, y, w, layout.AlignLeft) + p.px(4)
	}

	if s.Inline {
		lines := make([]string, 0, len(s.Entries))
		for _, e := range s.Entries {
			lines = append(lines, e.Line())
		}
		y = p.block(strings.Join(lines, " • "), styleRegular, t.BaseSize, p.color(t.Text),
			x, y, w, layout.AlignLeft)
	} else {
		for _, e := range s.Entries {
			y = p.entry(e, x, y, w) + p.px(8)
		}
	}

	return y + p.px(t.Padding*0.5)
}

func (p *painter) entry(e layout.Entry, x, y, w int) int {
	t := p.page.Theme
	text, muted, accent := p.color(t.Text), p.color(t.Muted), p.color(t.Accent)

	if e.Title != "" || e.Date != "" {
		titleW := w
		if e.Date != "" {
			style := styleRegular
			if t.Serif {
				style = styleItalic
			}
			face := p.face(style, t.BaseSize)
			dateW := font.MeasureString(face, e.Date).Ceil()
			p.text(x+w-dateW, y+p.px(1), e.Date, face, muted)
			titleW = max(w-dateW-p.px(8), w/2)
		}

		if e.Title != "" {
			title := e.Title
			if e.UppercaseTitle {
				title = strings.ToUpper(title)
			}
			y = p.block(title, styleBold, t.BaseSize*1.1, text, x, y, titleW, layout.AlignLeft)
		} else {
			y += p.lineHeight(p.face(styleBold, t.BaseSize*1.1))
		}
	}

	if e.Subtitle != "" {
		y = p.block(e.Subtitle, styleRegular, t.BaseSize, accent, x, y, w, layout.AlignLeft)
	}
	if e.Detail != "" {
		y = p.block(e.Detail, styleRegular, t.BaseSize*0.95, muted, x, y, w, layout.AlignLeft)
	}
	if e.Body != "" {
		y = p.block(e.Body, styleRegular, t.BaseSize, text, x, y+p.px(2), w, layout.AlignLeft)
	}

	if len(e.Bullets) > 0 {
		face := p.face(styleRegular, t.BaseSize)
		indent := p.px(16)
		y += p.px(2)
		for _, b := range e.Bullets {
			p.text(x+p.px(4), y, "•", face, text)
			y = p.block(b, styleRegular, t.BaseSize, text, x+indent, y, w-indent, layout.AlignLeft)
		}
	}

	if len(e.Keywords) > 0 {
		if e.KeywordStyle == layout.KeywordsChips {
			y = p.chips(e.Keywords, x, y+p.px(4), w)
		} else {
			line := strings.Join(e.Keywords, ", ")
			if e.KeywordsLabel != "" {
				line = e.KeywordsLabel + ": " + line
			}
			y = p.block(line, styleRegular, t.BaseSize, text, x, y+p.px(2), w, layout.AlignLeft)
		}
	}

	return y
}

func (p *painter) chips(keywords []string, x, y, w int) int {
	t := p.page.Theme
	face := p.face(styleRegular, t.BaseSize*0.9)
	lh := face.Metrics().Height.Ceil()
	padX, padY, gap := p.px(8), p.px(2), p.px(4)
	rowH := lh + 2*padY

	cx := x
	for _, k := range keywords {
		kw := font.MeasureString(face, k).Ceil() + 2*padX
		if cx > x && cx+kw > x+w {
			cx = x
			y += rowH + gap
		}
		p.fill(image.Rect(cx, y, cx+kw, y+rowH), t.Chip)
		p.text(cx+padX, y+padY, k, face, p.color(t.Text))
		cx += kw + gap
	}
	return y + rowH + gap
}

// wrap breaks s into lines no wider than width. Words wider than width get a
// line of their own.
func wrap(face font.Face, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := words[0]
		for _, word := range words[1:] {
			candidate := line + " " + word
			if font.MeasureString(face, candidate).Ceil() > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
