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
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/cmd/folio/config"
)

func newTemplatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "templates",
		Short:   "List the available templates",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := types.TemplateTypes()

			output := viper.GetString("output")
			if output != "" {
				return printStructured(cmd, output, templates)
			}

			tw := newTableWriter()
			tw.AppendHeader(table.Row{"TEMPLATE", "DEFAULT"})
			for _, t := range templates {
				isDefault := ""
				if t == types.DefaultTemplate {
					isDefault = "*"
				}
				tw.AppendRow(table.Row{t, isDefault})
			}
			cmd.Printf("%s\n", tw.Render())
			return nil
		},
	}
}

func init() {
	SubCmd.AddCommand(newTemplatesCommand())
}
