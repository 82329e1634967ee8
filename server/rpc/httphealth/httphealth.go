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

// Package httphealth uses http GET to provide a health check for the server.
package httphealth

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Path is the path of the health check endpoint.
const Path = "/healthz"

const (
	// StatusServing is reported while the server accepts requests.
	StatusServing = "SERVING"

	// StatusNotServing is reported once the server started shutting down.
	StatusNotServing = "NOT_SERVING"
)

// CheckResponse represents the response structure for health checks.
type CheckResponse struct {
	Status string `json:"status"`
}

// Checker reports whether the server is serving.
type Checker struct {
	serving atomic.Bool
}

// NewChecker creates a new Checker that reports the server as serving.
func NewChecker() *Checker {
	c := &Checker{}
	c.serving.Store(true)
	return c
}

// SetServing sets whether the server is serving.
func (c *Checker) SetServing(serving bool) {
	c.serving.Store(serving)
}

// Status returns the current status.
func (c *Checker) Status() string {
	if c.serving.Load() {
		return StatusServing
	}
	return StatusNotServing
}

// NewHandler creates a new HTTP handler for health checks.
func NewHandler(checker *Checker) (string, http.Handler) {
	check := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		status := checker.Status()
		resp, err := json.Marshal(CheckResponse{status})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		code := http.StatusOK
		if status != StatusServing {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if r.Method == http.MethodGet {
			if _, err := w.Write(resp); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	})
	return Path, check
}
