// metrics.go: pluggable metrics collection for xanthos
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// MetricsCollector receives events from a Domain/List pair for
// observability. Implementations must be safe for concurrent use and
// should not block. The github.com/agilira/xanthos/otel package
// provides an OpenTelemetry-backed implementation.
type MetricsCollector interface {
	// RecordGrow records a domain thread-table resize.
	RecordGrow(newCapacity int)

	// RecordReclaim records one Reclaim pass: how many nodes it freed
	// and how long the pass took.
	RecordReclaim(freed int, durationNs int64)

	// RecordHazardScan records one hazard-table scan performed while
	// deciding whether a retired node can be freed.
	RecordHazardScan(slots int)
}

// NoOpMetricsCollector discards everything. It is the default so call
// sites never need a nil check.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordGrow(newCapacity int)                {}
func (NoOpMetricsCollector) RecordReclaim(freed int, durationNs int64) {}
func (NoOpMetricsCollector) RecordHazardScan(slots int)                {}
