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

// Package httphelper provides helpers for writing responses of the RPC server.
package httphelper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/internal/validation"
	errs "github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/server/logging"
	"github.com/folio-team/folio/server/rpc/interceptors"
)

// statusToHTTP maps the status of an error to the HTTP status code.
var statusToHTTP = map[errs.StatusCode]int{
	errs.ErrCodeInvalidArgument:    http.StatusBadRequest,
	errs.ErrCodeOutOfRange:         http.StatusBadRequest,
	errs.ErrCodeNotFound:           http.StatusNotFound,
	errs.ErrCodeFailedPrecondition: http.StatusPreconditionFailed,
	errs.ErrCodeInternal:           http.StatusInternalServerError,
	errs.ErrCodeUnavailable:        http.StatusServiceUnavailable,
}

// HTTPStatusOf returns the HTTP status code for the given error. Errors
// without a status are internal errors.
func HTTPStatusOf(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}

	if status, ok := statusToHTTP[errs.StatusOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ToErrorResponse converts the given error to the body of a failed request.
func ToErrorResponse(err error) *types.ErrorResponse {
	status := errs.StatusOf(err)
	if status == 0 {
		status = errs.ErrCodeInternal
	}

	resp := &types.ErrorResponse{
		Code:    errs.CodeOf(err),
		Status:  status.String(),
		Message: err.Error(),
		Details: errs.Metadata(err),
	}

	var structErr *validation.StructError
	if errors.As(err, &structErr) {
		for _, v := range structErr.Violations {
			resp.Violations = append(resp.Violations, types.FieldViolation{
				Field:       v.Field,
				Description: v.Description,
			})
		}
	}

	return resp
}

// WriteError writes the given error to w and logs it with the logger of the
// request.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogRPCError(
		logging.From(r.Context()),
		interceptors.Route(r),
		interceptors.Since(r.Context()),
		err,
	)

	WriteJSON(w, HTTPStatusOf(err), ToErrorResponse(err))
}

// WriteJSON writes v to w as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ReadJSON decodes the body of r into v. The body is limited to maxBytes
// when maxBytes is positive.
func ReadJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errs.WithMetadata(ErrMalformedBody, map[string]string{"cause": err.Error()})
	}
	return nil
}

// ErrMalformedBody is returned when the body of a request cannot be decoded.
var ErrMalformedBody = errs.InvalidArgument("malformed request body").WithCode("ErrMalformedBody")
