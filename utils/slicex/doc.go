// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides slice utility functions for the dLog
//              platform, including in-place sort-and-return, equality
//              predicates, search, and manipulation operations with
//              type-safe generic implementations.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

// Package slicex provides slice utility functions for the dLog platform.
//
// The package centralizes recurring slice idioms so call sites across the
// platform do not re-implement them inconsistently. All functions are
// generic, operate only on their arguments, and hold no state between
// calls; concurrent use is safe as long as callers do not share mutating
// access to the same slice.
//
// # Sorting
//
// Sorted and SortedFunc sort in place and return the argument, which lets
// a freshly built slice be sorted in the same expression that creates it:
//
//	entries := slicex.Sorted(mapx.Keys(table))
//
// Both treat the input as transferred: the caller gives up the unsorted
// slice and receives the sorted one back. Neither sort is stable.
//
// # Predicates and search
//
// AllEqualTo answers "is this buffer entirely padding?" style questions
// with vacuous truth on empty input. Contains, IndexOf, and Equal cover
// membership and comparison for comparable element types.
//
// # Manipulation and aggregates
//
// Clone, Unique, and Reverse allocate fresh result slices and leave their
// inputs untouched. Min and Max report absence on empty input through a
// second boolean return instead of panicking.
package slicex
