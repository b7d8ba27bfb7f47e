// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string utilities for the dLog
//              platform: safe formatted construction, single-line
//              printability checks on raw bytes, and substring replacement
//              with guaranteed termination.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

// Package stringx provides string utilities for the dLog platform.
//
// # Formatted construction
//
// Format is the safe counterpart to sprintf-into-a-buffer: it returns a
// freshly allocated string of unbounded length, so the overflow failure
// class of the fixed-buffer form cannot occur. A template whose verbs do
// not match the supplied arguments is a defect in the calling code; Format
// detects the in-band "%!" error markers fmt produces for such mismatches
// and panics rather than returning garbage.
//
// # Printability
//
// Log records frequently carry byte buffers that may or may not be text.
// IsPrintable and IsPrintableBytes decide whether such bytes are nice to
// display in a single line: only visible ASCII and plain space qualify
// (0x20 through 0x7E). This boundary is intentionally conservative —
// control codes, newlines, DEL, and any byte outside ASCII disqualify the
// buffer. IsPrintableBytes additionally requires the final byte to be the
// NUL terminator, matching the shape of terminated strings embedded in
// binary records; input of the wrong shape yields false, not an error.
//
// # Replacement
//
// ReplaceAll substitutes every non-overlapping occurrence of a needle,
// scanning left to right and never rescanning inserted replacement text.
// That guarantee makes it safe to use when the replacement contains the
// needle, and an empty needle is a documented no-op instead of an infinite
// loop.
//
// The remaining helpers (IsEmpty, IsBlank, Truncate) cover small
// inspection and trimming tasks common when preparing log fields for
// display.
package stringx
