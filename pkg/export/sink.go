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

package export

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// DirSink writes files into a directory. An existing file of the same name
// is replaced.
type DirSink struct {
	Dir string
}

// Deliver writes data to Dir/name through a temporary file, so a failed
// write never leaves a partial file behind.
func (s DirSink) Deliver(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}

	path := filepath.Join(s.Dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

// HTTPSink streams files to an HTTP response as attachments.
type HTTPSink struct {
	W http.ResponseWriter
}

// Deliver writes the response headers and data. Headers are frozen once
// Deliver returns.
func (s HTTPSink) Deliver(_ context.Context, name string, data []byte) error {
	s.W.Header().Set("Content-Type", "application/pdf")
	s.W.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	s.W.Header().Set("Content-Length", strconv.Itoa(len(data)))
	s.W.WriteHeader(http.StatusOK)

	if _, err := s.W.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// MemorySink keeps delivered files in memory.
type MemorySink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// Deliver stores a copy of data under name.
func (s *MemorySink) Deliver(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[name] = append([]byte(nil), data...)
	return nil
}

// File returns the file delivered under name.
func (s *MemorySink) File(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.files[name]
	return data, ok
}

// Len returns the number of delivered files.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.files)
}
