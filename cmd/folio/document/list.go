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

	"github.com/folio-team/folio/cmd/folio/config"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List all documents",
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			summaries, err := cli.ListDocuments(context.Background())
			if err != nil {
				return err
			}

			return printDocuments(cmd, viper.GetString("output"), summaries)
		},
	}
}

func init() {
	SubCmd.AddCommand(newListCommand())
}
