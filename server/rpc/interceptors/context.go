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

// Package interceptors provides the middlewares of the RPC server.
package interceptors

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/folio-team/folio/server/logging"
)

type startKey struct{}

// ContextInterceptor attaches a request-scoped logger and the start time to
// the context of every request, and logs requests that completed without an
// error. Failed requests are logged where the error is written.
type ContextInterceptor struct {
	requestID *requestID
}

// NewContextInterceptor creates a new instance of ContextInterceptor.
func NewContextInterceptor() *ContextInterceptor {
	return &ContextInterceptor{
		requestID: newRequestID("r"),
	}
}

// Handler returns the middleware.
func (i *ContextInterceptor) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := i.requestID.of(r)
		w.Header().Set(RequestIDHeader, id)
		logger := logging.New("RPC", logging.NewField("r", id))

		ctx := logging.With(r.Context(), logger)
		ctx = context.WithValue(ctx, startKey{}, start)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		if ww.Status() < http.StatusBadRequest {
			logging.LogRPCSuccess(logger, Route(r), time.Since(start))
		}
	})
}

// Since returns the time elapsed since the request of ctx started.
func Since(ctx context.Context) time.Duration {
	start, ok := ctx.Value(startKey{}).(time.Time)
	if !ok {
		return 0
	}
	return time.Since(start)
}

// Route returns the method and the matched route pattern of r.
func Route(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		return r.Method + " " + rctx.RoutePattern()
	}
	return r.Method + " " + r.URL.Path
}
