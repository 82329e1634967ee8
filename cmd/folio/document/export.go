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
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/cmd/folio/config"
	"github.com/folio-team/folio/pkg/export"
)

var (
	exportDir string
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "export [document id]",
		Short:   "Export the current layout of a document as a PDF",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("document id is required")
			}

			cli, err := Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			ctx := context.Background()
			pdf, err := cli.Export(ctx, types.ID(args[0]))
			if err != nil {
				return err
			}

			sink := export.DirSink{Dir: exportDir}
			if err := sink.Deliver(ctx, export.FileName, pdf); err != nil {
				return err
			}

			cmd.Printf("Exported %s (%d bytes)\n", filepath.Join(exportDir, export.FileName), len(pdf))
			return nil
		},
	}
}

func init() {
	cmd := newExportCommand()
	cmd.Flags().StringVarP(
		&exportDir,
		"dir",
		"d",
		".",
		"Directory the PDF is written to",
	)
	SubCmd.AddCommand(cmd)
}
