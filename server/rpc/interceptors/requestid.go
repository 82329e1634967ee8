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

package interceptors

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"unicode"
)

// RequestIDHeader carries the request ID. A caller may set it to correlate
// its own logs; the server echoes the ID it used in the response.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLength bounds IDs given by callers so they stay loggable.
const maxRequestIDLength = 64

// requestID issues request IDs made of a prefix and a counter.
type requestID struct {
	prefix string
	id     atomic.Int64
}

func newRequestID(prefix string) *requestID {
	return &requestID{
		prefix: prefix,
	}
}

func (r *requestID) next() string {
	return r.prefix + strconv.FormatInt(r.id.Add(1), 10)
}

// of returns the ID the caller gave in req, or a new one when it gave none
// or an unusable one.
func (r *requestID) of(req *http.Request) string {
	given := req.Header.Get(RequestIDHeader)
	if given == "" || len(given) > maxRequestIDLength {
		return r.next()
	}
	for _, c := range given {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) {
			return r.next()
		}
	}
	return given
}
