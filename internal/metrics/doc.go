// Package metrics exposes Prometheus instruments for the queue server
// simulator: enter and release counters, per-activity queue length and
// HTTP request durations. Instruments live in a private registry served by
// [Metrics.Handler].
package metrics
