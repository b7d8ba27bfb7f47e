// File: doc.go
// Title: Package Documentation for ptrx
// Description: Package ptrx provides safe heap construction and pointer
//              convenience helpers with type-safe generic implementations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

// Package ptrx provides safe heap construction and pointer helpers.
//
// The central helper is New, which allocates an object on the heap,
// initializes it from its argument, and hands the caller the only pointer
// to it:
//
//	counter := ptrx.New(int64(0))
//
// is the type-safe equivalent of writing the allocate-then-assign dance by
// hand. Because the helper retains no alias, the returned pointer is the
// sole reference to the new object; the garbage collector reclaims it once
// the caller drops it.
//
// Zero and Deref round out the package for optional-field plumbing, where
// pointers stand in for "value or absent".
package ptrx
