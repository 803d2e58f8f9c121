// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "waitroom"

// Outcomes of an enter request.
const (
	EnterNew      = "new"
	EnterExisting = "existing"
	EnterFailed   = "failed"
)

// Metrics holds the simulator's instruments. A nil *Metrics records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	enterTotal      *prometheus.CounterVec
	releaseTotal    *prometheus.CounterVec
	queueLength     *prometheus.GaugeVec
	requestDuration *prometheus.HistogramVec
}

// New registers the instruments together with the Go runtime and process
// collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		enterTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_enter_total",
			Help:      "Enter requests by activity and outcome.",
		}, []string{"activity_id", "result"}),
		releaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queue_release_total",
			Help:      "Sessions admitted by the release worker.",
		}, []string{"activity_id"}),
		queueLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_length",
			Help:      "Sessions issued but not yet released.",
		}, []string{"activity_id"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.enterTotal,
		m.releaseTotal,
		m.queueLength,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Gatherer returns the registry the instruments are registered with.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordEnter(activityID, result string) {
	if m == nil {
		return
	}
	m.enterTotal.WithLabelValues(activityID, result).Inc()
}

// RecordRelease counts admitted sessions and publishes the queue length
// left behind.
func (m *Metrics) RecordRelease(activityID string, admitted, queueLength int64) {
	if m == nil {
		return
	}
	if admitted > 0 {
		m.releaseTotal.WithLabelValues(activityID).Add(float64(admitted))
	}
	m.queueLength.WithLabelValues(activityID).Set(float64(queueLength))
}

// ObserveRequest records one served request. route is the matched pattern,
// never the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
