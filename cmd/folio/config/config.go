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

// Package config provides the configuration of the Folio CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrInvalidOutput occurs when the output format is unknown.
var ErrInvalidOutput = errors.New("--output must be 'yaml' or 'json'")

// folioDir returns the directory of the CLI configuration.
func folioDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".folio")
}

// Preload reads the configuration file and the environment variables into
// viper before a command runs. Flags given on the command line take
// precedence over both.
func Preload(_ *cobra.Command, _ []string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(folioDir())

	viper.SetEnvPrefix("folio")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return ValidateOutput(viper.GetString("output"))
}

// ValidateOutput validates the given output format.
func ValidateOutput(output string) error {
	switch output {
	case "", "yaml", "json":
		return nil
	default:
		return ErrInvalidOutput
	}
}
