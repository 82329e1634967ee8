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

package prometheus_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/server/profiling/prometheus"
)

func TestMetrics(t *testing.T) {
	t.Run("editor operations test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.AddEditorOperation(types.OpAppendEntry, 2)
		metrics.AddEditorOperation(types.OpAppendEntry, 1)

		expected := `
# HELP folio_editor_operations_total The total count of operations applied to documents.
# TYPE folio_editor_operations_total counter
folio_editor_operations_total{operation="append_entry"} 3
`
		assert.NoError(t, testutil.GatherAndCompare(
			metrics.Registry(),
			strings.NewReader(expected),
			"folio_editor_operations_total",
		))
	})

	t.Run("export test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.AddExport(prometheus.ExportSucceeded)
		metrics.AddExport(prometheus.ExportFailed)
		metrics.AddExport(prometheus.ExportSucceeded)

		expected := `
# HELP folio_export_total The total count of export attempts by result.
# TYPE folio_export_total counter
folio_export_total{result="failed"} 1
folio_export_total{result="succeeded"} 2
`
		assert.NoError(t, testutil.GatherAndCompare(
			metrics.Registry(),
			strings.NewReader(expected),
			"folio_export_total",
		))
	})

	t.Run("observations test", func(t *testing.T) {
		metrics, err := prometheus.NewMetrics()
		require.NoError(t, err)

		metrics.ObserveRenderSeconds(types.TemplateModern, 0.002)
		metrics.ObserveExportBytes(100 * 1024)
		metrics.AddDocumentCreated(types.TemplateMinimal)

		count, err := testutil.GatherAndCount(metrics.Registry(),
			"folio_render_seconds", "folio_export_bytes", "folio_documents_created_total")
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
