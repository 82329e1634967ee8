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
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/cmd/folio/config"
)

var (
	title    string
	template string
	sample   bool
)

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   "Create a new document",
		Example: "folio document create --title \"My Resume\" --template modern --sample",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			doc, err := cli.CreateDocument(context.Background(), &types.CreateDocumentFields{
				Title:    title,
				Template: template,
				Sample:   sample,
			})
			if err != nil {
				return err
			}

			return printDocument(cmd, viper.GetString("output"), doc)
		},
	}
}

func init() {
	cmd := newCreateCommand()
	cmd.Flags().StringVar(
		&title,
		"title",
		"",
		"Title of the document",
	)
	cmd.Flags().StringVar(
		&template,
		"template",
		types.DefaultTemplate.String(),
		"Template of the document: minimal, professional, creative, modern or executive",
	)
	cmd.Flags().BoolVar(
		&sample,
		"sample",
		false,
		"Fill the document with sample content",
	)
	SubCmd.AddCommand(cmd)
}
