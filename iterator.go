// iterator.go: snapshot-consistent traversal
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// Iterator walks a List as of a fixed snapshot taken when it was
// created. Nodes inserted after that point are never visible to it;
// nodes removed after that point remain visible until the iterator is
// closed with End. An Iterator must be closed with End before its
// owning Thread is reused for anything else, since it holds that
// thread's hazard slot 0 published for as long as it is live.
type Iterator struct {
	list *List
	th   *Thread
	snap uint64
	curr *node
}

// Begin starts an iterator over l as of the current snapshot. The
// returned Iterator pins th's active snapshot until End is called:
// nodes matching that snapshot cannot be physically unlinked by any
// concurrent Reclaim while the iterator is open, per the unlink gate
// in spec.md §4.7.
func (l *List) Begin(th *Thread) (*Iterator, error) {
	if err := l.checkThread(th); err != nil {
		return nil, err
	}

	snap := l.currentSnapshot()
	th.state.active.Store(snap)

	it := &Iterator{list: l, th: th, snap: snap}
	it.advanceTo(l.head.load())
	return it, nil
}

// advanceTo publishes n as the hazard-protected current node, skipping
// forward past anything not visible at the iterator's snapshot.
func (it *Iterator) advanceTo(n *node) {
	for n != nil {
		it.th.state.hazard[0].Store(n)
		if isVisible(n, it.snap) {
			it.curr = n
			return
		}
		n = n.next.load()
	}
	it.th.state.hazard[0].Store(nil)
	it.curr = nil
}

// Valid reports whether the iterator currently refers to a node.
func (it *Iterator) Valid() bool {
	return it.curr != nil
}

// Value returns the element at the iterator's current position. It
// panics if called when Valid() is false, matching the teacher's
// convention that iterator misuse is a programmer error, not a
// recoverable one.
func (it *Iterator) Value() any {
	if it.curr == nil {
		panic("xanthos: Value called on exhausted iterator")
	}
	return it.curr.userElm
}

// Next advances the iterator to the next visible node and reports
// whether one was found.
func (it *Iterator) Next() bool {
	if it.curr == nil {
		return false
	}
	it.advanceTo(it.curr.next.load())
	return it.curr != nil
}

// Snapshot returns the commit id this iterator is fixed to.
func (it *Iterator) Snapshot() uint64 {
	return it.snap
}

// End releases the iterator's hold on its thread's hazard slot and
// active snapshot. It must be called exactly once, including on early
// abandonment of the iteration.
func (it *Iterator) End() {
	it.th.state.hazard[0].Store(nil)
	it.th.state.active.Store(0)
	it.curr = nil
}
