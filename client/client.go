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

// Package client provides the client of the Folio server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/folio-team/folio/api/converter"
	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/resume"
)

// Client is a client of the Folio server. It edits documents stored on the
// server and fetches their previews and exports.
type Client struct {
	httpClient *http.Client
	baseURL    string
	insecure   bool
	logger     *zap.Logger
}

// New creates an instance of Client.
func New(opts ...Option) (*Client, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		timeout := options.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := options.Logger
	if logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("new logger: %w", err)
		}
		logger = l
	}

	return &Client{
		httpClient: httpClient,
		insecure:   options.Insecure,
		logger:     logger,
	}, nil
}

// Dial creates an instance of Client and dials to the Folio server.
func Dial(rpcAddr string, opts ...Option) (*Client, error) {
	cli, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := cli.Dial(rpcAddr); err != nil {
		return nil, err
	}

	return cli, nil
}

// Dial sets the address of the Folio server. An address without a scheme
// is reached over HTTPS, or over HTTP when the client is insecure.
func (c *Client) Dial(rpcAddr string) error {
	if !strings.Contains(rpcAddr, "://") {
		scheme := "https://"
		if c.insecure {
			scheme = "http://"
		}
		rpcAddr = scheme + rpcAddr
	}

	u, err := url.Parse(rpcAddr)
	if err != nil {
		return fmt.Errorf("parse rpc address: %w", err)
	}

	c.baseURL = strings.TrimSuffix(u.String(), "/")
	return nil
}

// Close closes all resources of this client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	_ = c.logger.Sync()
	return nil
}

// ListDocuments lists the summaries of all documents, oldest first.
func (c *Client) ListDocuments(ctx context.Context) ([]*types.DocumentSummary, error) {
	var summaries []*types.DocumentSummary
	if err := c.doJSON(ctx, http.MethodGet, "/documents", nil, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// CreateDocument creates a new document.
func (c *Client) CreateDocument(
	ctx context.Context,
	fields *types.CreateDocumentFields,
) (*resume.Document, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	var doc resume.Document
	if err := c.doJSON(ctx, http.MethodPost, "/documents", fields, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// GetDocument gets the document of the given ID.
func (c *Client) GetDocument(ctx context.Context, id types.ID) (*resume.Document, error) {
	var doc resume.Document
	if err := c.doJSON(ctx, http.MethodGet, documentPath(id), nil, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// RemoveDocument removes the document of the given ID.
func (c *Client) RemoveDocument(ctx context.Context, id types.ID) error {
	return c.doJSON(ctx, http.MethodDelete, documentPath(id), nil, nil)
}

// EditDocument applies the given operation requests to the document of the
// given ID and returns the edited document.
func (c *Client) EditDocument(
	ctx context.Context,
	id types.ID,
	reqs []types.OperationRequest,
) (*resume.Document, error) {
	var doc resume.Document
	fields := &types.EditDocumentFields{Operations: reqs}
	if err := c.doJSON(ctx, http.MethodPost, documentPath(id)+"/operations", fields, &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Edit applies the given operations to the document of the given ID.
func (c *Client) Edit(ctx context.Context, id types.ID, ops ...editor.Operation) (*resume.Document, error) {
	reqs, err := converter.ToOperationRequests(ops)
	if err != nil {
		return nil, err
	}

	return c.EditDocument(ctx, id, reqs)
}

// Preview returns the HTML preview of the document of the given ID.
func (c *Client) Preview(ctx context.Context, id types.ID) ([]byte, error) {
	return c.doBytes(ctx, http.MethodGet, documentPath(id)+"/preview")
}

// Export returns the PDF export of the current layout of the document of the
// given ID.
func (c *Client) Export(ctx context.Context, id types.ID) ([]byte, error) {
	return c.doBytes(ctx, http.MethodPost, documentPath(id)+"/export")
}

// Thumbnail returns a PNG image of the exported document rendered at the
// given resolution. Zero means the server default.
func (c *Client) Thumbnail(ctx context.Context, id types.ID, dpi float64) ([]byte, error) {
	path := documentPath(id) + "/thumbnail"
	if dpi > 0 {
		path += "?dpi=" + strconv.FormatFloat(dpi, 'f', -1, 64)
	}
	return c.doBytes(ctx, http.MethodGet, path)
}

// GetServerVersion gets the version of the server.
func (c *Client) GetServerVersion(ctx context.Context) (*types.VersionDetail, error) {
	var detail types.VersionDetail
	if err := c.doJSON(ctx, http.MethodGet, "/version", nil, &detail); err != nil {
		return nil, err
	}

	return &detail, nil
}

func documentPath(id types.ID) string {
	return "/documents/" + url.PathEscape(id.String())
}

// doJSON sends a request with body encoded as JSON and decodes the response
// into out. A nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	resp, err := c.do(ctx, method, path, reader)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUnexpectedResponse, err)
	}
	return nil
}

// doBytes sends a request without a body and returns the raw response body.
func (c *Client) doBytes(ctx context.Context, method, path string) ([]byte, error) {
	resp, err := c.do(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

// do sends a request and converts responses with an error status to errors.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if c.baseURL == "" {
		return nil, ErrNotDialed
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.logger.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() {
			_ = resp.Body.Close()
		}()
		return nil, toError(resp)
	}

	return resp, nil
}
