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
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the timeout of a single request when none is given.
const DefaultTimeout = 60 * time.Second

// Option configures Options.
type Option func(*Options)

// Options configures how we set up the client.
type Options struct {
	// HTTPClient is the HTTP client requests are sent with.
	HTTPClient *http.Client

	// Timeout is the timeout of a single request.
	Timeout time.Duration

	// Insecure is whether to use plain HTTP instead of HTTPS.
	Insecure bool

	// Logger is the Logger of the client.
	Logger *zap.Logger
}

// WithHTTPClient configures the HTTP client of the client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Options) { o.HTTPClient = httpClient }
}

// WithTimeout configures the timeout of a single request.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) { o.Timeout = timeout }
}

// WithInsecure configures whether to use plain HTTP.
func WithInsecure(insecure bool) Option {
	return func(o *Options) { o.Insecure = insecure }
}

// WithLogger configures the Logger of the client.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}
