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

// Package main is the entry point of the Folio CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/folio-team/folio/cmd/folio/document"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Resume builder with live layouts and PDF export",
}

// Run executes CLI.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func init() {
	rootCmd.AddCommand(document.SubCmd)

	rootCmd.PersistentFlags().String("rpc-addr", "localhost:11101", "Address of the rpc server")
	rootCmd.PersistentFlags().Bool("insecure", true, "Skip the TLS connection of the client")
	rootCmd.PersistentFlags().StringP("output", "o", "", "One of 'yaml' or 'json'.")

	for key, flag := range map[string]string{
		"rpcAddr":    "rpc-addr",
		"isInsecure": "insecure",
		"output":     "output",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintln(os.Stderr, "bind flag:", err)
			os.Exit(1)
		}
	}
}
