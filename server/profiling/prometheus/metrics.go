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

// Package prometheus provides a Prometheus metrics exporter.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/folio-team/folio/api/types"
	"github.com/folio-team/folio/internal/version"
)

const (
	namespace      = "folio"
	operationLabel = "operation"
	templateLabel  = "template"
	resultLabel    = "result"
)

// Export results.
const (
	ExportSucceeded = "succeeded"
	ExportFailed    = "failed"
)

// Metrics manages the metric information that Folio is trying to measure.
type Metrics struct {
	registry *prometheus.Registry

	serverVersion *prometheus.GaugeVec

	editorOperationsTotal *prometheus.CounterVec
	renderSeconds         *prometheus.HistogramVec
	exportTotal           *prometheus.CounterVec
	exportBytes           prometheus.Histogram

	documentsCreatedTotal *prometheus.CounterVec
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	metrics := &Metrics{
		registry: reg,
		serverVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "version",
			Help:      "Which version is running. 1 for 'server_version' label with current version.",
		}, []string{"server_version"}),
		editorOperationsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "operations_total",
			Help:      "The total count of operations applied to documents.",
		}, []string{operationLabel}),
		renderSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_seconds",
			Help:      "The time taken to render a document into its layout.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{templateLabel}),
		exportTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_total",
			Help:      "The total count of export attempts by result.",
		}, []string{resultLabel}),
		exportBytes: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_bytes",
			Help:      "The size of exported files.",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 2, 8),
		}),
		documentsCreatedTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "created_total",
			Help:      "The total count of created documents by template.",
		}, []string{templateLabel}),
	}

	metrics.serverVersion.With(prometheus.Labels{
		"server_version": version.Version,
	}).Set(1)

	return metrics, nil
}

// AddEditorOperation adds the number of operations applied of the given type.
func (m *Metrics) AddEditorOperation(op types.OperationType, count int) {
	m.editorOperationsTotal.With(prometheus.Labels{
		operationLabel: string(op),
	}).Add(float64(count))
}

// ObserveRenderSeconds adds an observation for rendering with the given
// template.
func (m *Metrics) ObserveRenderSeconds(template types.TemplateType, seconds float64) {
	m.renderSeconds.With(prometheus.Labels{
		templateLabel: string(template),
	}).Observe(seconds)
}

// AddExport counts an export attempt with the given result.
func (m *Metrics) AddExport(result string) {
	m.exportTotal.With(prometheus.Labels{
		resultLabel: result,
	}).Inc()
}

// ObserveExportBytes adds an observation for the size of an exported file.
func (m *Metrics) ObserveExportBytes(bytes int) {
	m.exportBytes.Observe(float64(bytes))
}

// AddDocumentCreated counts a created document.
func (m *Metrics) AddDocumentCreated(template types.TemplateType) {
	m.documentsCreatedTotal.With(prometheus.Labels{
		templateLabel: string(template),
	}).Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
