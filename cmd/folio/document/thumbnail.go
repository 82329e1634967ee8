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
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/cmd/folio/config"
)

var (
	thumbnailOut string
	thumbnailDPI float64
)

func newThumbnailCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "thumbnail [document id]",
		Short:   "Save a PNG thumbnail of the exported document",
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

			png, err := cli.Thumbnail(context.Background(), types.ID(args[0]), thumbnailDPI)
			if err != nil {
				return err
			}

			if err := os.WriteFile(filepath.Clean(thumbnailOut), png, 0o600); err != nil {
				return fmt.Errorf("write thumbnail: %w", err)
			}
			cmd.Printf("Thumbnail written to %s\n", thumbnailOut)
			return nil
		},
	}
}

func init() {
	cmd := newThumbnailCommand()
	cmd.Flags().StringVar(
		&thumbnailOut,
		"out",
		"thumbnail.png",
		"File the PNG is written to",
	)
	cmd.Flags().Float64Var(
		&thumbnailDPI,
		"dpi",
		0,
		"Resolution of the thumbnail. Zero means the server default.",
	)
	SubCmd.AddCommand(cmd)
}
