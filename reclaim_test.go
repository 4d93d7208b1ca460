// reclaim_test.go: phase-gated reclamation behavior
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import "testing"

// A node whose removal is still observable by an open iterator's
// snapshot must not be unlinked by Reclaim.
func TestReclaim_DoesNotUnlinkWhileSnapshotActive(t *testing.T) {
	domain, list := newTestList(t)
	th, _ := domain.Register(nil)
	defer domain.Unregister(th)

	if err := list.InsertHead(th, "A"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	it, err := list.Begin(th)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	// th is pinned by the open iterator, so the removal and the reclaim
	// run on a second registered thread.
	reclaimTh, _ := domain.Register(nil)
	defer domain.Unregister(reclaimTh)

	if err := list.Remove(reclaimTh, func(elm any) bool { return elm == "A" }); err != nil {
		t.Fatalf("remove: %v", err)
	}

	freed, err := list.Reclaim(reclaimTh, nil)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if freed != 0 {
		t.Fatalf("freed = %d, want 0 while a snapshot still observes the removal", freed)
	}

	it.End()

	freed, err = list.Reclaim(reclaimTh, nil)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if freed != 1 {
		t.Fatalf("freed = %d, want 1 once the snapshot is released", freed)
	}
}

// A node unlinked by Reclaim's phase 1 but still hazard-protected by
// another thread must survive phase 2 until the hazard is cleared.
func TestReclaim_DoesNotFreeWhileHazarded(t *testing.T) {
	domain, list := newTestList(t)
	th, _ := domain.Register(nil)
	defer domain.Unregister(th)

	if err := list.InsertHead(th, "A"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := list.Remove(th, func(elm any) bool { return elm == "A" }); err != nil {
		t.Fatalf("remove: %v", err)
	}

	n := list.head.load()
	holder, _ := domain.Register(nil)
	defer domain.Unregister(holder)
	holder.state.hazard[0].Store(n)

	reclaimTh, _ := domain.Register(nil)
	defer domain.Unregister(reclaimTh)

	freed, err := list.Reclaim(reclaimTh, nil)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if freed != 0 {
		t.Fatalf("freed = %d, want 0 while hazarded", freed)
	}

	holder.state.hazard[0].Store(nil)

	freed, err = list.Reclaim(reclaimTh, nil)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if freed != 1 {
		t.Fatalf("freed = %d, want 1 once hazard cleared", freed)
	}
}

func TestReclaim_NoMatchingNodesIsNoop(t *testing.T) {
	domain, list := newTestList(t)
	th, _ := domain.Register(nil)
	defer domain.Unregister(th)

	if err := list.InsertHead(th, "A"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	freed, err := list.Reclaim(th, nil)
	if err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if freed != 0 {
		t.Fatalf("freed = %d, want 0 with nothing removed", freed)
	}
}
