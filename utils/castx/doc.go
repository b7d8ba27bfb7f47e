// File: doc.go
// Title: Package Documentation for castx
// Description: Package castx provides checked narrowing conversions between
//              integer types with an abort-on-loss contract.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

// Package castx provides checked narrowing conversions between integer
// types.
//
// Go's built-in conversions between integer types silently truncate and
// reinterpret bits. In code that narrows lengths, offsets, and sizes for
// wire headers, silent truncation hides bugs until data corrupts. DownCast
// makes the narrowing explicit and verifies it:
//
//	header.Length = castx.DownCast[uint32](n)
//
// If the value does not survive the round trip back to its original type,
// DownCast panics. This is deliberate: a lossy narrowing is a logic error
// in the caller, equivalent to a failed assertion, and masking it behind a
// recoverable error would hide the defect.
//
// SizeOf32 builds on DownCast for the common case of a type's size in a
// fixed 32-bit header field.
package castx
