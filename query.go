// query.go: read-only queries over a consistent snapshot
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// walk publishes th's active snapshot and hazard pointer, then visits
// every visible node in order, calling visit for each. It stops early
// if visit returns false. A pure reader might seem like it could
// tolerate reading without a hazard pointer, but that does not hold
// once a query races a Reclaim pass on the same list, so every query
// here takes the same hazard-protected path as Begin/Next and
// therefore requires a registered Thread the same way insert/remove/
// iterate do.
func (l *List) walk(th *Thread, visit func(elm any) bool) error {
	if err := l.checkThread(th); err != nil {
		return err
	}

	snap := l.currentSnapshot()
	th.state.active.Store(snap)
	defer th.state.active.Store(0)
	defer th.state.hazard[0].Store(nil)

	curr := l.head.load()
	for curr != nil {
		th.state.hazard[0].Store(curr)
		if !l.reachable(curr) {
			// Published the hazard too late to protect curr from a
			// concurrent unlink-and-retire; restart from head rather
			// than trust its next field.
			curr = l.head.load()
			continue
		}

		if isVisible(curr, snap) {
			if !visit(curr.userElm) {
				return nil
			}
		}
		curr = curr.next.load()
	}
	return nil
}

// IsEmpty reports whether the list has no visible elements as of the
// current snapshot.
func (l *List) IsEmpty(th *Thread) (bool, error) {
	empty := true
	err := l.walk(th, func(elm any) bool {
		empty = false
		return false
	})
	return empty, err
}

// Contains reports whether any visible element satisfies match.
func (l *List) Contains(th *Thread, match func(elm any) bool) (bool, error) {
	if match == nil {
		return false, NewErrInvalidArgument("match")
	}
	found := false
	err := l.walk(th, func(elm any) bool {
		if match(elm) {
			found = true
			return false
		}
		return true
	})
	return found, err
}

// Count returns the number of visible elements as of the current
// snapshot. It is O(n) by construction: spec.md never promises an O(1)
// count, and the approximate counter List keeps internally is for
// diagnostics only (see List.Stats), not for this method.
func (l *List) Count(th *Thread) (int, error) {
	n := 0
	err := l.walk(th, func(elm any) bool {
		n++
		return true
	})
	return n, err
}
