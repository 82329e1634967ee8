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

// Package errors provides status-carrying errors shared by the document
// model, the editing engine, the export pipeline, and the server.
package errors

import "fmt"

// StatusCode classifies an error. The values follow the gRPC code numbering
// so that they stay stable across transports.
type StatusCode int

const (
	// ErrCodeInvalidArgument indicates that the caller specified an invalid
	// argument, such as an unknown section or field name.
	ErrCodeInvalidArgument StatusCode = 3

	// ErrCodeNotFound indicates that a requested entity was not found.
	ErrCodeNotFound StatusCode = 5

	// ErrCodeFailedPrecondition indicates that the system is not in the state
	// required for the operation, e.g. exporting before anything was rendered.
	ErrCodeFailedPrecondition StatusCode = 9

	// ErrCodeOutOfRange indicates that a position addressed an element that
	// does not exist.
	ErrCodeOutOfRange StatusCode = 11

	// ErrCodeInternal indicates that an invariant of the system is broken.
	ErrCodeInternal StatusCode = 13

	// ErrCodeUnavailable indicates that a collaborator, such as a storage
	// backend or an output sink, is unavailable.
	ErrCodeUnavailable StatusCode = 14
)

// String returns the string representation of the status code.
func (c StatusCode) String() string {
	switch c {
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeFailedPrecondition:
		return "failed_precondition"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInternal:
		return "internal"
	case ErrCodeUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("code_%d", int(c))
	}
}

// IsClientError returns true if the code is caused by the caller's input.
func (c StatusCode) IsClientError() bool {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeNotFound, ErrCodeFailedPrecondition, ErrCodeOutOfRange:
		return true
	default:
		return false
	}
}

// IsServerError returns true if the code is caused by the system itself.
func (c StatusCode) IsServerError() bool {
	switch c {
	case ErrCodeInternal, ErrCodeUnavailable:
		return true
	default:
		return false
	}
}
