// removefirst.go: pop the first visible element
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

// RemoveFirst logically removes the first visible node and returns its
// element, then physically unlinks it before returning. The unlink is
// guaranteed, not best-effort: if the splice CAS loses a race because
// the chain shape changed underneath it, unlinkNode re-locates the
// node's current predecessor and retries until the splice succeeds (or
// until it finds the node already gone, unlinked by someone else in
// the meantime). RemoveFirst therefore never returns with its popped
// node still physically reachable from head.
func (l *List) RemoveFirst(th *Thread) (any, error) {
	if err := l.checkThread(th); err != nil {
		return nil, err
	}

	snap := l.currentSnapshot()
	th.state.active.Store(snap)
	defer th.state.active.Store(0)
	defer th.state.hazard[0].Store(nil)
	defer th.state.hazard[1].Store(nil)

	var prev *node
	curr := l.head.load()

	for curr != nil {
		th.state.hazard[0].Store(curr)
		if !l.reachable(curr) {
			// Published the hazard too late: curr may already have been
			// unlinked and retired. Drop what we know about prev too and
			// restart the walk from head.
			prev = nil
			th.state.hazard[1].Store(nil)
			curr = l.head.load()
			continue
		}

		if isVisible(curr, snap) {
			txn := l.nextTxn()
			if !curr.removedTxn.CompareAndSwap(0, txn) {
				// Another thread removed it first; it is no longer a
				// match for "first visible", keep scanning.
				prev = curr
				th.state.hazard[1].Store(prev)
				curr = curr.next.load()
				continue
			}

			l.length.Add(-1)
			l.cfg.Logger.Debug("xanthos: removed (first)", "txn", txn)
			elm := curr.userElm

			l.unlinkNode(th, curr)

			return elm, nil
		}

		prev = curr
		th.state.hazard[1].Store(prev)
		curr = curr.next.load()
	}

	return nil, NewErrNotFound()
}

// unlinkNode physically splices the already logically-removed node n
// out of the chain. n's predecessor may change concurrently (another
// insert or unlink nearby), so unlinkNode re-locates it and retries
// the splice CAS until it succeeds. If n is no longer reachable at
// all, it has already been unlinked by someone else (for instance a
// concurrent Reclaim pass), and there is nothing left to do.
func (l *List) unlinkNode(th *Thread, n *node) {
	defer th.state.hazard[1].Store(nil)

	for {
		var prev *node
		curr := l.head.load()
		for curr != nil && curr != n {
			th.state.hazard[1].Store(curr)
			if !l.reachable(curr) {
				prev = nil
				curr = l.head.load()
				continue
			}
			prev = curr
			curr = curr.next.load()
		}
		if curr != n {
			return
		}

		next := n.next.load()
		if prev == nil {
			if l.head.compareAndSwap(n, next) {
				return
			}
		} else if prev.next.compareAndSwap(n, next) {
			return
		}
		// Lost the splice race: the chain shape changed between locating
		// prev and the CAS. Re-locate prev and try again.
	}
}
