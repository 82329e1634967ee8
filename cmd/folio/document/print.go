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

package document

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/resume"
)

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

func printDocuments(cmd *cobra.Command, output string, summaries []*types.DocumentSummary) error {
	switch output {
	case "":
		tw := newTableWriter()
		tw.AppendHeader(table.Row{
			"ID",
			"TITLE",
			"NAME",
			"TEMPLATE",
			"CREATED AT",
			"UPDATED AT",
		})
		now := time.Now()
		for _, summary := range summaries {
			tw.AppendRow(table.Row{
				summary.ID,
				summary.Title,
				summary.Name,
				summary.Template,
				humanDuration(now.Sub(summary.CreatedAt)),
				humanDuration(now.Sub(summary.UpdatedAt)),
			})
		}
		cmd.Printf("%s\n", tw.Render())
	default:
		return printStructured(cmd, output, summaries)
	}

	return nil
}

func printDocument(cmd *cobra.Command, output string, doc *resume.Document) error {
	switch output {
	case "":
		return printDocuments(cmd, output, []*types.DocumentSummary{doc.Summary()})
	default:
		return printStructured(cmd, output, doc)
	}
}

func printStructured(cmd *cobra.Command, output string, v any) error {
	switch output {
	case "json":
		jsonOutput, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		cmd.Println(string(jsonOutput))
	case "yaml":
		yamlOutput, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		cmd.Println(string(yamlOutput))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}

	return nil
}

// humanDuration returns a short human-readable form of d, e.g. "3 hours".
func humanDuration(d time.Duration) string {
	switch seconds := int(d.Seconds()); {
	case seconds < 1:
		return "Less than a second"
	case seconds == 1:
		return "1 second"
	case seconds < 60:
		return fmt.Sprintf("%d seconds", seconds)
	case d.Minutes() < 2:
		return "About a minute"
	case d.Minutes() < 60:
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	case d.Hours() < 2:
		return "About an hour"
	case d.Hours() < 48:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days", int(d.Hours()/24))
	}
}
