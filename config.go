// config.go: configuration for domains and lists
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// Default tuning values, mirroring the DefaultXxx constant convention
// the teacher library uses for its cache configuration.
const (
	// DefaultInitialCapacity is the default size of a fresh domain's
	// thread table (spec.md §4.1's "default=16").
	DefaultInitialCapacity = 16

	// DefaultMaxThreads is the default cap on registered threads per
	// domain. 0 means unbounded, matching spec.md's FULL being
	// "reserved, unused" unless a cap is configured.
	DefaultMaxThreads = 0
)

// DomainConfig holds the tunable parameters for a Domain.
type DomainConfig struct {
	// InitialCapacity is the starting size of the thread table.
	// Must be > 0. Default: DefaultInitialCapacity.
	InitialCapacity int

	// MaxThreads caps the number of threads that may ever be
	// registered concurrently. 0 means unbounded. When the cap is
	// reached, Register returns an ErrCodeFull error.
	MaxThreads int

	// Logger receives domain diagnostics (grow events). Default: NoOpLogger.
	Logger Logger

	// TimeProvider supplies timestamps for Stats(). Default: the cached
	// system clock.
	TimeProvider TimeProvider

	// MetricsCollector receives grow and hazard-scan events. Reclaim
	// pass events go to the List's own Config.MetricsCollector.
	// Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate normalizes a DomainConfig in place, substituting defaults
// for zero-valued fields. It never returns an error: spec.md §4.1 has
// no invalid-configuration case for the domain beyond a nil domain
// pointer, which is checked separately at each entry point.
func (c *DomainConfig) Validate() {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultInitialCapacity
	}
	if c.MaxThreads < 0 {
		c.MaxThreads = DefaultMaxThreads
	}
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
}

// DefaultDomainConfig returns a DomainConfig with sensible defaults.
func DefaultDomainConfig() DomainConfig {
	cfg := DomainConfig{}
	cfg.Validate()
	return cfg
}

// Config holds the tunable parameters for a List.
type Config struct {
	// Logger receives list diagnostics (insert/remove/reclaim traces at
	// Debug level). Default: NoOpLogger.
	Logger Logger

	// TimeProvider supplies timestamps for Stats(). Default: the cached
	// system clock.
	TimeProvider TimeProvider

	// MetricsCollector receives one RecordReclaim event per reclaim pass
	// on this list. Hazard-scan events go to the Domain's collector.
	// Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector
}

// Validate normalizes a Config in place, substituting defaults for
// zero-valued fields.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.Validate()
	return cfg
}
