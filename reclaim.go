// reclaim.go: two-phase safe memory reclamation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// Reclaim performs one reclamation pass over the list: phase 1
// unlinks every logically-removed node whose removal is no longer
// observable by any active snapshot; phase 2 frees every node on th's
// own retired list that no thread's hazard pointer still references.
// Nodes retired by other threads are left to those threads' passes.
// destructor, if non-nil, is invoked on the user element of each node
// actually freed in phase 2.
//
// Reclaim is safe to call concurrently with inserts, removes, and
// iterators: phase 1's unlink gate is the domain's minimum active
// snapshot (spec.md §4.7), and phase 2's free gate is the domain's
// hazard scan, so a node is never unlinked while a snapshot could still
// see it and never freed while a hazard pointer could still dereference
// it.
func (l *List) Reclaim(th *Thread, destructor func(elm any)) (freed int, err error) {
	if err := l.checkThread(th); err != nil {
		return 0, err
	}

	start := l.cfg.TimeProvider.Now()

	minActive := l.domain.minActiveSnapshot()

	// Phase 1: unlink every node whose removal already happened strictly
	// before every currently active snapshot, and push it onto this
	// thread's private retired list.
	prev := (*node)(nil)
	curr := l.head.load()
	for curr != nil {
		next := curr.next.load()
		removed := curr.removedTxn.Load()
		if removed != 0 && removed < minActive {
			if l.unlinkLocked(prev, curr, next) {
				curr.next.store(th.state.retired) // overload next as the stack link
				th.state.retired = curr
				curr = next
				continue
			}
			// CAS failure: the chain shape changed concurrently. Do not
			// retry in an inner loop; simply advance and let a later
			// Reclaim pass pick this node up.
		}
		prev = curr
		curr = next
	}

	// Phase 2: free every retired node that no thread's hazard pointer
	// still references. Nodes still hazarded are pushed onto a
	// leftover list and kept for the next pass.
	var leftover *node
	retired := th.state.retired
	th.state.retired = nil
	for retired != nil {
		n := retired
		retired = n.next.load()
		if l.domain.anyHazardEquals(n) {
			n.next.store(leftover)
			leftover = n
			continue
		}
		if destructor != nil {
			destructor(n.userElm)
		}
		freed++
	}
	th.state.retired = leftover

	dur := l.cfg.TimeProvider.Now() - start
	l.cfg.MetricsCollector.RecordReclaim(freed, dur)
	l.cfg.Logger.Debug("xanthos: reclaim pass", "freed", freed, "durationNs", dur)
	return freed, nil
}

// unlinkLocked attempts to splice curr out of the chain between prev
// and next. Despite the name it takes no lock: "Locked" here only
// signals that the caller has already determined curr is past the
// unlink gate, mirroring the naming the teacher uses for CAS helpers
// that assume a precondition rather than acquire a mutex.
func (l *List) unlinkLocked(prev, curr, next *node) bool {
	if prev == nil {
		return l.head.compareAndSwap(curr, next)
	}
	return prev.next.compareAndSwap(curr, next)
}
