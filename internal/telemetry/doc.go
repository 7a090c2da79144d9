// Package telemetry exports cache statistics for operational visibility.
//
// It provides a prometheus.Collector that converts cache snapshots into
// hit/miss/calls-saved series (global and per category) and an HTTP
// handler serving /metrics and /stats for periodic polling. Telemetry is
// read-only: it never influences cache behavior.
package telemetry
