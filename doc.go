// Package xanthos provides a lock-free, singly-linked collection with
// hazard-pointer-based safe memory reclamation and multi-version
// snapshot visibility.
//
// # Overview
//
// Xanthos is designed for workloads where many goroutines read, insert
// into, and remove from a shared chain concurrently, and where a
// reader traversing the chain must see a consistent point-in-time view
// without blocking any writer:
//
//   - Lock-Free Design: CAS-based insert and logical remove, no mutex
//     on the hot path
//   - Snapshot Visibility: every reader is pinned to the commit
//     sequence observed when it started
//   - Hazard Pointers: safe reclamation without GC pressure from
//     retired-but-still-referenced nodes
//   - Explicit Thread Registration: Go has no usable thread-local
//     storage, so every goroutine that touches a List registers once
//     and holds the returned *Thread for the rest of its lifetime
//
// # Quick Start
//
//	domain := xanthos.NewDomain(xanthos.DefaultDomainConfig())
//	list, _ := xanthos.NewList(domain, xanthos.DefaultConfig())
//
//	th, err := domain.Register(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer domain.Unregister(th)
//
//	if err := list.InsertHead(th, "hello"); err != nil {
//	    log.Fatal(err)
//	}
//
//	it, _ := list.Begin(th)
//	for it.Valid() {
//	    fmt.Println(it.Value())
//	    it.Next()
//	}
//	it.End()
//
// # Visibility Model
//
// Every List keeps a monotonic commit counter. InsertHead and Remove
// each consume one commit id: insertion stamps insertTxn, logical
// removal stamps removedTxn. A node is visible to a reader holding
// snapshot S exactly when:
//
//	insertTxn < S  AND  (removedTxn == 0 OR removedTxn > S)
//
// Both halves use strict inequality: a node inserted or removed at
// exactly S is not visible to S. A snapshot taken once at the start of
// a traversal therefore sees a single, frozen point-in-time view for
// its entire duration, regardless of how many inserts or removes race
// it concurrently.
//
// # Reclamation
//
// Logical removal (Remove) never unlinks a node: it only stamps
// removedTxn, so any snapshot that started before the removal
// continues to see it. Physical cleanup happens in two phases, driven
// by Reclaim:
//
//   - Phase 1 (unlink): a removed node is spliced out of the chain
//     once its removedTxn is strictly less than every thread's
//     currently active snapshot. Unlinked nodes move onto the calling
//     thread's private retired list.
//   - Phase 2 (free): a retired node is only released to the
//     destructor once no thread's hazard pointer still references it.
//
// RemoveFirst additionally unlinks the node physically before
// returning, retrying the splice against its current predecessor until
// it succeeds, since the common pop-one-element caller benefits from
// never seeing its popped node still reachable from head.
//
// # Thread Registration
//
// A Domain owns the shared hazard-pointer table. Every List is backed
// by exactly one Domain, but a Domain may back many Lists, and a
// reclaim pass on any of them is gated by hazard pointers published by
// every registered thread across all of them. Register is idempotent
// when passed the handle it previously returned for the same domain,
// and returns an invalid-argument error if passed a handle belonging
// to a different domain.
//
// # Configuration
//
//	domain := xanthos.NewDomain(xanthos.DomainConfig{
//	    InitialCapacity: 64,
//	    MaxThreads:      256,
//	    Logger:          myLogger,
//	    TimeProvider:    myTimeProvider,
//	    MetricsCollector: metricsCollector,
//	})
//
// TimeProvider is consulted only for diagnostics (grow timestamps,
// reclaim-pass durations): no operation that establishes a
// linearization point ever reads the clock. Ordering is governed
// entirely by the commit counter.
//
// # Error Handling
//
// Xanthos uses structured errors with stable codes:
//
//	if err := list.InsertHead(th, v); err != nil {
//	    if xanthos.IsNoThread(err) {
//	        // th was never registered, or belongs to another domain
//	    } else if xanthos.IsNoMemory(err) {
//	        // allocator exhausted
//	    }
//	}
//
// # Observability
//
// The github.com/agilira/xanthos/otel package implements
// MetricsCollector on top of OpenTelemetry as a separate module, so the
// core package carries zero OTEL dependencies.
//
// # Hot Reload
//
// HotTuning watches a configuration file via Argus and keeps a
// DomainConfig template up to date. It never mutates a live Domain —
// a domain's thread-table shape is load-bearing for hazard slots
// already handed out — only the template used to construct the next
// one.
//
// # Thread Safety
//
// All List and Domain operations are safe for concurrent use from
// multiple goroutines, provided each goroutine uses its own *Thread
// handle. A *Thread must never be shared across goroutines.
package xanthos
