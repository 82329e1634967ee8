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

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/errors"
)

var (
	// ErrNotDialed occurs when the client is used before Dial.
	ErrNotDialed = errors.FailedPrecond("client is not dialed").WithCode("ErrNotDialed")

	// ErrUnexpectedResponse occurs when the server answers with a response
	// the client cannot understand.
	ErrUnexpectedResponse = errors.Internal("unexpected response").WithCode("ErrUnexpectedResponse")
)

// statusConstructors creates an error of the status named in a response.
var statusConstructors = map[string]func(string) errors.StatusError{
	"invalid_argument":    errors.InvalidArgument,
	"not_found":           errors.NotFound,
	"failed_precondition": errors.FailedPrecond,
	"out_of_range":        errors.OutOfRange,
	"internal":            errors.Internal,
	"unavailable":         errors.Unavailable,
}

// toError converts a failed response to an error carrying the status, the
// code and the details sent by the server.
func toError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnexpectedResponse, err)
	}

	var errResp types.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Status == "" {
		return errors.WithMetadata(ErrUnexpectedResponse, map[string]string{
			"status": resp.Status,
			"body":   string(body),
		})
	}

	newError, ok := statusConstructors[errResp.Status]
	if !ok {
		newError = errors.Internal
	}

	var result error = newError(errResp.Message).WithCode(errResp.Code)
	details := errResp.Details
	for _, v := range errResp.Violations {
		if details == nil {
			details = make(map[string]string)
		}
		details[v.Field] = v.Description
	}

	return errors.WithMetadata(result, details)
}
