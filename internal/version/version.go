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

// Package version provides the version of the running Folio binary.
package version

import "runtime"

// At build time, the versions is replaced with the current version using the -X linker flag
var (
	// Version is the main version number that is being run at the moment.
	Version = "0.0.0"

	// BuildDate is the date the executable was built.
	BuildDate string
)

// Detail holds the version information of a Folio binary.
type Detail struct {
	// FolioVersion is the version of Folio.
	FolioVersion string `json:"folioVersion" yaml:"folioVersion"`

	// GoVersion is the version of Go the binary was built with.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// BuildDate is the date the binary was built.
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

// Current returns the version information of the running binary.
func Current() *Detail {
	return &Detail{
		FolioVersion: Version,
		GoVersion:    runtime.Version(),
		BuildDate:    BuildDate,
	}
}
