// list.go: the versioned singly-linked chain
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import "sync/atomic"

// List is a lock-free singly-linked collection with multi-version
// snapshot visibility. Every mutating or traversing operation requires
// a Thread obtained from the backing Domain's Register.
//
// A List has no internal lock: inserts race via CAS on head, removals
// race via CAS on removedTxn, and stale nodes are reclaimed only once
// no thread's published snapshot or hazard pointer can still observe
// them.
type List struct {
	domain *Domain
	head   markedPointer
	commit atomic.Uint64 // monotonic transaction counter, spec.md §3; holds the last commit id handed out

	cfg Config

	length atomic.Int64 // approximate live-node count, diagnostics only
}

// NewList creates an empty List backed by the given Domain. A zero
// Config is normalized to its defaults. The domain must outlive the
// list.
func NewList(domain *Domain, cfg Config) (*List, error) {
	if domain == nil {
		return nil, NewErrInvalidDomain()
	}
	cfg.Validate()
	return &List{domain: domain, cfg: cfg}, nil
}

// nextTxn allocates the next commit id. Every insert and every logical
// remove consumes exactly one, so the counter also upper-bounds how
// many mutations the list has ever seen.
func (l *List) nextTxn() uint64 {
	return l.commit.Add(1)
}

// currentSnapshot returns the commit id that a newly-started reader or
// writer should publish as its active snapshot: everything committed
// so far, and nothing not yet committed. It is one past the last id
// handed out, so under the strict visibility predicate every commit id
// already drawn is below it, and the next one drawn equals it.
func (l *List) currentSnapshot() uint64 {
	return l.commit.Load() + 1
}

// checkThread validates that th was registered against this list's
// domain. Every public operation that touches the chain calls this
// first so a caller that forgot to register gets ErrCodeNoThread
// instead of a nil-pointer panic or silently wrong visibility.
func (l *List) checkThread(th *Thread) error {
	if th == nil || th.domain != l.domain || th.state == nil {
		return NewErrNoThread()
	}
	return nil
}

// ListStats summarizes a List's current state for diagnostics.
type ListStats struct {
	ApproxLength int64
	CommitSeq    uint64
}

// Stats returns a snapshot of list-level counters. ApproxLength is not
// linearizable: it is only ever adjusted outside the visibility
// predicate and exists for monitoring, not for correctness decisions.
func (l *List) Stats() ListStats {
	return ListStats{
		ApproxLength: l.length.Load(),
		CommitSeq:    l.commit.Load(),
	}
}

// Destroy tears down the list, invoking destructor (if non-nil) on the
// user element of every node still reachable from head. It assumes no
// concurrent access is in flight — that ordering is a caller
// obligation, not something this method checks, matching spec.md's
// treatment of teardown.
func (l *List) Destroy(destructor func(elm any)) {
	n := l.head.load()
	for n != nil {
		next := n.next.load()
		if destructor != nil {
			destructor(n.userElm)
		}
		n = next
	}
	l.head.store(nil)
}
