// node.go: versioned node model and the marked-pointer abstraction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package xanthos

import "sync/atomic"

// node is the on-heap record that lives in a List's chain.
//
// Field ordering mirrors the alignment discipline the teacher cache
// uses for its entry struct: the 64-bit insertTxn is set once at
// allocation and never mutated, so it needs no atomic wrapper; every
// other field that is read or written concurrently is atomic.
type node struct {
	insertTxn  uint64 // assigned once at allocation, never mutated
	removedTxn atomic.Uint64
	next       markedPointer
	userElm    any
}

// isVisible implements the visibility predicate of spec.md §3, bit for
// bit: both halves use strict comparisons, and a node inserted at or
// removed at snapshot S is not visible at S.
func isVisible(n *node, snap uint64) bool {
	if n.insertTxn >= snap {
		return false
	}
	removed := n.removedTxn.Load()
	return removed == 0 || removed > snap
}

// markedPointer encapsulates a node's next pointer together with the
// reserved low-bit mark spec.md reserves for a future Harris-style
// deletion scheme. Real Go heap pointers cannot safely carry a stolen
// tag bit — the garbage collector expects every word of pointer type
// to hold either nil or a valid address — so the mark is kept in a
// companion atomic.Bool rather than packed into the pointer's low bit.
// This is the Go-safe equivalent of the reservation spec.md asks for:
// callers only ever see load/store/compareAndSwap, never the raw
// representation, and markDeleted is never invoked by any operation in
// this package.
type markedPointer struct {
	ptr  atomic.Pointer[node]
	mark atomic.Bool
}

func (m *markedPointer) load() *node {
	return m.ptr.Load()
}

func (m *markedPointer) store(n *node) {
	m.ptr.Store(n)
}

func (m *markedPointer) compareAndSwap(old, new *node) bool {
	return m.ptr.CompareAndSwap(old, new)
}

// markDeleted sets the reserved mark bit. No operation in this package
// calls it; it exists so a future marked-pointer remove algorithm has
// somewhere to attach without changing the node layout.
func (m *markedPointer) markDeleted() {
	m.mark.Store(true)
}

func (m *markedPointer) isMarked() bool {
	return m.mark.Load()
}

// allocateNode is the node allocator. It is a package-level variable,
// not a plain function call, so tests can substitute a failing
// allocator to exercise the NOMEM path deterministically — Go's make/new
// do not return a recoverable error on exhaustion, so this seam is the
// idiomatic stand-in for the allocator failure spec.md §7 requires.
var allocateNode = func(elm any) *node {
	return &node{userElm: elm}
}
