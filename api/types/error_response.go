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

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	// Code is the stable name of the error, e.g. "ErrDocumentNotFound".
	Code string `json:"code,omitempty"`

	// Status is the name of the status of the error, e.g. "not_found".
	Status string `json:"status"`

	// Message is the human readable message of the error.
	Message string `json:"message"`

	// Details carries the metadata of the error, e.g. the index that was out
	// of range.
	Details map[string]string `json:"details,omitempty"`

	// Violations lists the fields that failed validation.
	Violations []FieldViolation `json:"violations,omitempty"`
}

// FieldViolation describes a single invalid field of a request.
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}
