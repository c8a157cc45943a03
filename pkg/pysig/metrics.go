// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pysig

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsSig holds Prometheus metrics for the signature extractor.
type metricsSig struct {
	once sync.Once

	sourcesScanned     prometheus.Counter
	functionsExtracted prometheus.Counter
	paramsParsed       prometheus.Counter
	paramFallbacks     prometheus.Counter

	extractDuration prometheus.Histogram
}

var sigMetrics metricsSig

func (m *metricsSig) init() {
	m.once.Do(func() {
		m.sourcesScanned = prometheus.NewCounter(prometheus.CounterOpts{Name: "pydeploy_sig_sources_total", Help: "Source texts scanned"})
		m.functionsExtracted = prometheus.NewCounter(prometheus.CounterOpts{Name: "pydeploy_sig_functions_total", Help: "Function descriptors extracted"})
		m.paramsParsed = prometheus.NewCounter(prometheus.CounterOpts{Name: "pydeploy_sig_params_total", Help: "Parameters parsed"})
		m.paramFallbacks = prometheus.NewCounter(prometheus.CounterOpts{Name: "pydeploy_sig_param_fallbacks_total", Help: "Parameters that fell back to name-only parsing"})

		m.extractDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pydeploy_sig_extract_seconds",
			Help:    "Duration of one Extract call",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		})

		prometheus.MustRegister(
			m.sourcesScanned, m.functionsExtracted,
			m.paramsParsed, m.paramFallbacks,
			m.extractDuration,
		)
	})
}

// record helpers - used by the extractor for metrics tracking
func recordExtract(functions int, d time.Duration) {
	sigMetrics.init()
	sigMetrics.sourcesScanned.Inc()
	sigMetrics.functionsExtracted.Add(float64(functions))
	sigMetrics.extractDuration.Observe(d.Seconds())
}

func recordParam()         { sigMetrics.init(); sigMetrics.paramsParsed.Inc() }
func recordParamFallback() { sigMetrics.init(); sigMetrics.paramFallbacks.Inc() }
