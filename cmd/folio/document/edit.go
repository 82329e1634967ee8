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
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/cmd/folio/config"
)

var (
	operationsFile string
	operation      types.OperationRequest
	operationType  string
)

func newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [document id]",
		Short: "Apply editing operations to a document",
		Example: `  folio document edit 7f3c --type update_basics --field name --value "Ada Lovelace"
  folio document edit 7f3c --file operations.yaml`,
		PreRunE: config.Preload,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("document id is required")
			}

			reqs, err := operationsFromFlags()
			if err != nil {
				return err
			}

			cli, err := Dial()
			if err != nil {
				return err
			}
			defer func() {
				_ = cli.Close()
			}()

			doc, err := cli.EditDocument(context.Background(), types.ID(args[0]), reqs)
			if err != nil {
				return err
			}

			return printDocument(cmd, viper.GetString("output"), doc)
		},
	}
}

// operationsFromFlags returns the operations given with --file, or the single
// operation given with the operation flags.
func operationsFromFlags() ([]types.OperationRequest, error) {
	if operationsFile != "" {
		file, err := os.Open(filepath.Clean(operationsFile))
		if err != nil {
			return nil, fmt.Errorf("open operations file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		return readOperations(file)
	}

	if operationType == "" {
		return nil, errors.New("--type or --file is required")
	}

	req := operation
	req.Type = types.OperationType(operationType)
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return []types.OperationRequest{req}, nil
}

// readOperations reads a list of operations written in YAML or JSON. Both a
// bare list and an object with an "operations" key are accepted.
func readOperations(r io.Reader) ([]types.OperationRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read operations: %w", err)
	}

	var reqs []types.OperationRequest
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		var fields types.EditDocumentFields
		if err := yaml.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("unmarshal operations: %w", err)
		}
		reqs = fields.Operations
	}

	if len(reqs) == 0 {
		return nil, errors.New("no operations given")
	}

	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return reqs, nil
}

func init() {
	cmd := newEditCommand()
	cmd.Flags().StringVarP(
		&operationsFile,
		"file",
		"f",
		"",
		"YAML or JSON file with the list of operations to apply",
	)
	cmd.Flags().StringVar(
		&operationType,
		"type",
		"",
		"Type of the operation, e.g. set_title, update_basics or append_entry",
	)
	cmd.Flags().StringVar(&operation.Title, "title", "", "Title for set_title")
	cmd.Flags().StringVar(&operation.Template, "template", "", "Template for set_template")
	cmd.Flags().StringVar(&operation.Section, "section", "", "Section the operation addresses, e.g. work")
	cmd.Flags().IntVar(&operation.Index, "index", 0, "Position of the entry in the section")
	cmd.Flags().IntVar(&operation.Item, "item", 0, "Position of the item in the entry")
	cmd.Flags().StringVar(&operation.Field, "field", "", "Field to update, e.g. name or startDate")
	cmd.Flags().StringVar(&operation.Value, "value", "", "New value of the field or item")
	SubCmd.AddCommand(cmd)
}
