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

package client_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/client"
	"github.com/folio-team/folio/internal/version"
	"github.com/folio-team/folio/pkg/editor"
	"github.com/folio-team/folio/pkg/errors"
	"github.com/folio-team/folio/pkg/layout"
	"github.com/folio-team/folio/pkg/resume"
	"github.com/folio-team/folio/server/backend"
	"github.com/folio-team/folio/server/profiling/prometheus"
	"github.com/folio-team/folio/server/rpc"
)

func dialTestServer(t *testing.T) *client.Client {
	metrics, err := prometheus.NewMetrics()
	require.NoError(t, err)

	be, err := backend.New(&backend.Config{SurfaceCacheSize: 8}, nil, nil, metrics)
	require.NoError(t, err)

	srv, err := rpc.NewServer(&rpc.Config{
		Port:            11101,
		MaxRequestBytes: 1 << 20,
		RequestTimeout:  "30s",
	}, be)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	cli, err := client.Dial(ts.URL, client.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, cli.Close())
		ts.Close()
		assert.NoError(t, be.Shutdown())
	})
	return cli
}

func TestClient(t *testing.T) {
	ctx := context.Background()

	t.Run("not dialed test", func(t *testing.T) {
		cli, err := client.New(client.WithLogger(zap.NewNop()))
		require.NoError(t, err)

		_, err = cli.ListDocuments(ctx)
		assert.ErrorIs(t, err, client.ErrNotDialed)
	})

	t.Run("create, edit and get test", func(t *testing.T) {
		cli := dialTestServer(t)

		doc, err := cli.CreateDocument(ctx, &types.CreateDocumentFields{Title: "CV"})
		require.NoError(t, err)
		assert.Equal(t, "CV", doc.Title)
		assert.Equal(t, types.DefaultTemplate, doc.Template)

		edited, err := cli.Edit(ctx, doc.ID,
			editor.UpdateBasics{Field: "name", Value: "Grace Hopper"},
			editor.AppendEntry{Section: resume.SectionWork},
			editor.UpdateEntry{Section: resume.SectionWork, Index: 0, Field: "position", Value: "Rear Admiral"},
			editor.SetTemplate{Template: types.TemplateProfessional},
		)
		require.NoError(t, err)
		assert.Equal(t, types.TemplateProfessional, edited.Template)
		require.Len(t, edited.Content.Work, 1)
		assert.Equal(t, "Rear Admiral", edited.Content.Work[0].Position)

		fetched, err := cli.GetDocument(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grace Hopper", fetched.Content.Basics.Name)

		summaries, err := cli.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Grace Hopper", summaries[0].Name)
	})

	t.Run("invalid create fields test", func(t *testing.T) {
		cli := dialTestServer(t)

		_, err := cli.CreateDocument(ctx, &types.CreateDocumentFields{
			Title: string(bytes.Repeat([]byte("a"), 201)),
		})
		assert.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("status error test", func(t *testing.T) {
		cli := dialTestServer(t)

		_, err := cli.GetDocument(ctx, "missing")
		assert.True(t, errors.IsStatus(err, errors.ErrCodeNotFound))
		assert.Equal(t, "ErrDocumentNotFound", errors.CodeOf(err))

		doc, err := cli.CreateDocument(ctx, &types.CreateDocumentFields{})
		require.NoError(t, err)

		_, err = cli.Edit(ctx, doc.ID, editor.RemoveEntry{Section: resume.SectionWork, Index: 2})
		assert.True(t, errors.IsStatus(err, errors.ErrCodeOutOfRange))
		assert.Equal(t, "ErrOutOfRange", errors.CodeOf(err))
		assert.NotEmpty(t, errors.Metadata(err))
	})

	t.Run("preview and export test", func(t *testing.T) {
		cli := dialTestServer(t)

		doc, err := cli.CreateDocument(ctx, &types.CreateDocumentFields{Sample: true})
		require.NoError(t, err)

		html, err := cli.Preview(ctx, doc.ID)
		require.NoError(t, err)
		assert.Contains(t, string(html), layout.PreviewElementID)

		pdf, err := cli.Export(ctx, doc.ID)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	})

	t.Run("remove test", func(t *testing.T) {
		cli := dialTestServer(t)

		doc, err := cli.CreateDocument(ctx, &types.CreateDocumentFields{})
		require.NoError(t, err)
		require.NoError(t, cli.RemoveDocument(ctx, doc.ID))

		_, err = cli.GetDocument(ctx, doc.ID)
		assert.True(t, errors.IsStatus(err, errors.ErrCodeNotFound))
	})

	t.Run("server version test", func(t *testing.T) {
		cli := dialTestServer(t)

		detail, err := cli.GetServerVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, version.Version, detail.FolioVersion)
	})
}
