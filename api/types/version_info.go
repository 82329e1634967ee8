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

package types

import "github.com/folio-team/folio/internal/version"

// VersionDetail represents the version information of a Folio binary.
type VersionDetail = version.Detail

// VersionInfo represents the version information of the client and the
// server.
type VersionInfo struct {
	// ClientVersion is the version of the CLI.
	ClientVersion *VersionDetail `json:"clientVersion" yaml:"clientVersion"`

	// ServerVersion is the version of the server, or nil when it could not be
	// fetched.
	ServerVersion *VersionDetail `json:"serverVersion,omitempty" yaml:"serverVersion,omitempty"`
}
