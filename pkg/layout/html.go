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

package layout

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// PreviewElementID is the id of the root element of the HTML view.
const PreviewElementID = "resume-preview"

//go:embed page.gohtml
var pageTemplate string

var pageHTML = template.Must(template.New("page").Funcs(template.FuncMap{
	"stylesheet":  stylesheet,
	"columnStyle": columnStyle,
	"headerStyle": headerStyle,
	"inline":      inline,
	"join":        strings.Join,
}).Parse(pageTemplate))

// WriteHTML writes the page as a standalone HTML document.
func WriteHTML(w io.Writer, page *Page) error {
	if err := pageHTML.Execute(w, page); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

func fontFamily(t Theme) string {
	if t.Serif {
		return `Georgia, "Times New Roman", serif`
	}
	return `"Helvetica Neue", Arial, sans-serif`
}

func stylesheet(p *Page) template.CSS {
	t := p.Theme
	transform := "none"
	if t.UppercaseHeadings {
		transform = "uppercase"
	}
	rule := "none"
	if t.HeadingRule {
		rule = "1px solid " + t.Rule.Hex()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "body{margin:0;background:#e5e7eb;}")
	fmt.Fprintf(&sb, "#%s{width:%.0fpx;margin:0 auto;background:#fff;color:%s;font-family:%s;font-size:%.1fpx;line-height:1.45;}",
		PreviewElementID, p.Width, t.Text.Hex(), fontFamily(t), t.BaseSize)
	fmt.Fprintf(&sb, ".columns{display:flex;align-items:stretch;}")
	fmt.Fprintf(&sb, ".column{box-sizing:border-box;padding:%.0fpx;}", t.Padding)
	fmt.Fprintf(&sb, ".header{padding:%.0fpx;}", t.Padding)
	fmt.Fprintf(&sb, ".column .header{padding:0 0 %.0fpx 0;}", t.Padding/2)
	fmt.Fprintf(&sb, ".name{margin:0;font-size:%.1fpx;}", t.NameSize)
	fmt.Fprintf(&sb, ".label{margin:4px 0 0;font-size:%.1fpx;color:%s;}", t.LabelSize, t.Accent.Hex())
	fmt.Fprintf(&sb, ".section{margin-bottom:%.0fpx;}", t.Padding*0.6)
	fmt.Fprintf(&sb, ".heading{margin:0 0 8px;font-size:%.1fpx;color:%s;text-transform:%s;border-bottom:%s;}",
		t.HeadingSize, t.Heading.Hex(), transform, rule)
	fmt.Fprintf(&sb, ".entry{margin-bottom:10px;}")
	fmt.Fprintf(&sb, ".entry-head{display:flex;justify-content:space-between;gap:8px;}")
	fmt.Fprintf(&sb, ".entry-title{margin:0;font-size:%.1fpx;}", t.BaseSize*1.1)
	fmt.Fprintf(&sb, ".upper{text-transform:uppercase;}")
	fmt.Fprintf(&sb, ".entry-date,.entry-detail{color:%s;}", t.Muted.Hex())
	fmt.Fprintf(&sb, ".entry-subtitle{margin:0;color:%s;}", t.Accent.Hex())
	fmt.Fprintf(&sb, ".entry-detail,.entry-body,.entry-keywords,.text,.inline{margin:2px 0;}")
	fmt.Fprintf(&sb, ".entry-bullets{margin:4px 0;padding-left:18px;}")
	fmt.Fprintf(&sb, ".chip{display:inline-block;margin:2px 4px 2px 0;padding:1px 8px;border-radius:9px;background:%s;}",
		t.Chip.Hex())
	return template.CSS(sb.String())
}

func columnStyle(p *Page, i int) template.CSS {
	col := p.Columns[i]
	style := fmt.Sprintf("width:%.2f%%;", col.Weight/p.TotalWeight()*100)
	if col.Fill != nil {
		style += "background:" + col.Fill.Hex() + ";"
	}
	if col.Foreground != nil {
		style += "color:" + col.Foreground.Hex() + ";"
	}
	return template.CSS(style)
}

func headerStyle(h *Header) template.CSS {
	style := "text-align:" + string(h.Align) + ";"
	if h.Fill != nil {
		style += "background:" + h.Fill.Hex() + ";"
	}
	if h.Foreground != nil {
		style += "color:" + h.Foreground.Hex() + ";"
	}
	return template.CSS(style)
}

func inline(entries []Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.Line())
	}
	return strings.Join(parts, " • ")
}

// Line returns the entry as a single line: its title followed by its body.
func (e Entry) Line() string {
	switch {
	case e.Title == "":
		return e.Body
	case e.Body == "":
		return e.Title
	default:
		return e.Title + ": " + e.Body
	}
}
