// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides map utility functions for the dLog
//              platform, offering ordered extraction, validation, and
//              manipulation operations with type-safe generic
//              implementations.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation

// Package mapx provides map utility functions for the dLog platform.
//
// The extraction functions Keys, Values, and Entries copy a map's contents
// into freshly allocated slices. Because Go maps iterate in randomized
// order, all three define their output order as ascending key order, which
// makes the results deterministic and index-aligned: for any map m and
// index i, Entries(m)[i] pairs Keys(m)[i] with Values(m)[i]. This is the
// property callers rely on when rendering map contents into stable
// listings, manifests, or test expectations.
//
// All extraction functions are read-only on the source map and return
// empty (non-nil) slices for empty or nil input.
//
// HasKey, HasValue, and Equal cover membership and comparison; Clone,
// Merge, and FromEntries cover construction. None of the functions retain
// a reference to their arguments.
package mapx
