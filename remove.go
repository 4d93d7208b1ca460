// remove.go: logical removal
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// Remove logically removes the first visible node for which match
// returns true. Logical removal never unlinks the node from the
// chain: it only stamps removedTxn with a fresh commit id, so any
// snapshot taken before that commit continues to see the node while
// any snapshot taken after does not. Physical unlinking happens
// later, in Reclaim.
//
// Remove returns ErrCodeNotFound if no visible node matches. Calling
// Remove twice with a predicate that matches only one element is
// idempotent: the second call observes removedTxn already set and
// continues scanning, so it correctly reports not-found rather than
// removing something else.
func (l *List) Remove(th *Thread, match func(elm any) bool) error {
	if err := l.checkThread(th); err != nil {
		return err
	}
	if match == nil {
		return NewErrInvalidArgument("match")
	}

	snap := l.currentSnapshot()
	th.state.active.Store(snap)
	defer th.state.active.Store(0)
	defer th.state.hazard[0].Store(nil)

	curr := l.head.load()
	for curr != nil {
		th.state.hazard[0].Store(curr)
		if !l.reachable(curr) {
			// curr may have already been unlinked and retired between the
			// load above and the hazard publish, too late for the hazard
			// to have protected it. Release and restart the scan from
			// head rather than dereference a node whose next field may
			// have been repurposed as a retired-list link.
			curr = l.head.load()
			continue
		}

		if isVisible(curr, snap) && match(curr.userElm) {
			txn := l.nextTxn()
			if curr.removedTxn.CompareAndSwap(0, txn) {
				l.length.Add(-1)
				l.cfg.Logger.Debug("xanthos: removed", "txn", txn)
				return nil
			}
			// Lost the race to a concurrent Remove on this exact node:
			// it is no longer a match, so keep scanning rather than
			// reporting success or retrying the same node.
		}
		curr = curr.next.load()
	}

	return NewErrNotFound()
}

// reachable reports whether n is still reachable from head by walking
// the chain. It is the revalidation half of the hazard-pointer
// protocol: every candidate is checked with reachable immediately
// after its hazard is published, before anything it holds is
// dereferenced, since a candidate read before its hazard went up may
// already have been unlinked and retired by a concurrent Reclaim pass.
func (l *List) reachable(n *node) bool {
	curr := l.head.load()
	for curr != nil {
		if curr == n {
			return true
		}
		curr = curr.next.load()
	}
	return false
}
