// timeprovider.go: wall-clock time for diagnostics, never for linearization
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import "github.com/agilira/go-timecache"

// TimeProvider supplies wall-clock time for diagnostics (domain grow
// timestamps, reclaim pass durations). It is
// never consulted by any operation that establishes a linearization
// point — those are governed entirely by the commit counter, which is
// logical, not temporal.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch. Must be
	// fast and allocation-free: it may be called from a reclaim pass.
	Now() int64
}

// systemTimeProvider is the default TimeProvider, backed by
// go-timecache's cached clock instead of time.Now() to avoid a syscall
// on every diagnostic timestamp.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}
