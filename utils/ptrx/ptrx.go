// File: ptrx.go
// Title: Core Pointer Utilities
// Description: Implements safe heap construction and pointer convenience
//              helpers. Centralizes the "allocate, initialize, hand back the
//              only reference" idiom so call sites do not re-implement it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with construction helpers

package ptrx

// New allocates a new T on the heap, initializes it to value, and returns
// the only pointer to it. The callee keeps no alias, so the caller receives
// sole ownership of the new object.
//
// There is no error path: an allocation failure aborts the process at
// runtime, and New adds no recovery semantics of its own.
func New[T any](value T) *T {
	p := new(T)
	*p = value
	return p
}

// Zero allocates a new zero-valued T and returns the only pointer to it.
func Zero[T any]() *T {
	return new(T)
}

// Deref returns the value p points to, or fallback if p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
