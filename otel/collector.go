// Package otel provides OpenTelemetry integration for xanthos metrics.
//
// This package implements the xanthos.MetricsCollector interface using
// OpenTelemetry, enabling multi-backend observability (Prometheus,
// Jaeger, DataDog, Grafana) without adding an OTEL dependency to the
// core package.
//
// # Usage
//
//	import (
//	    "github.com/agilira/xanthos"
//	    xanthosotel "github.com/agilira/xanthos/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	collector, _ := xanthosotel.NewOTelMetricsCollector(provider)
//
//	domain := xanthos.NewDomain(xanthos.DomainConfig{
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
//   - xanthos_domain_grow_capacity: Histogram of thread-table sizes after a grow
//   - xanthos_reclaim_freed_total: Counter of nodes freed across all reclaim passes
//   - xanthos_reclaim_duration_ns: Histogram of reclaim pass durations
//   - xanthos_hazard_scan_slots: Histogram of slots scanned per hazard check
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/xanthos"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements xanthos.MetricsCollector using
// OpenTelemetry. Safe for concurrent use; the underlying instruments
// are lock-free.
type OTelMetricsCollector struct {
	growCapacity    metric.Int64Histogram
	reclaimFreed    metric.Int64Counter
	reclaimDuration metric.Int64Histogram
	hazardScanSlots metric.Int64Histogram
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/xanthos"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple domain instances.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates an OpenTelemetry-backed
// MetricsCollector. provider must not be nil.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{MeterName: "github.com/agilira/xanthos"}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	c := &OTelMetricsCollector{}

	var err error
	c.growCapacity, err = meter.Int64Histogram(
		"xanthos_domain_grow_capacity",
		metric.WithDescription("Thread-table capacity after a domain grow"),
	)
	if err != nil {
		return nil, err
	}

	c.reclaimFreed, err = meter.Int64Counter(
		"xanthos_reclaim_freed_total",
		metric.WithDescription("Total number of nodes freed by Reclaim"),
	)
	if err != nil {
		return nil, err
	}

	c.reclaimDuration, err = meter.Int64Histogram(
		"xanthos_reclaim_duration_ns",
		metric.WithDescription("Duration of a Reclaim pass in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	c.hazardScanSlots, err = meter.Int64Histogram(
		"xanthos_hazard_scan_slots",
		metric.WithDescription("Slots scanned per hazard-pointer check"),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// RecordGrow records a domain thread-table resize.
func (c *OTelMetricsCollector) RecordGrow(newCapacity int) {
	c.growCapacity.Record(context.Background(), int64(newCapacity))
}

// RecordReclaim records one Reclaim pass.
func (c *OTelMetricsCollector) RecordReclaim(freed int, durationNs int64) {
	ctx := context.Background()
	c.reclaimFreed.Add(ctx, int64(freed))
	c.reclaimDuration.Record(ctx, durationNs)
}

// RecordHazardScan records one hazard-table scan.
func (c *OTelMetricsCollector) RecordHazardScan(slots int) {
	c.hazardScanSlots.Record(context.Background(), int64(slots))
}

// Compile-time interface check.
var _ xanthos.MetricsCollector = (*OTelMetricsCollector)(nil)
