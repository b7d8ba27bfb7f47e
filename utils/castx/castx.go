// File: castx.go
// Title: Core Narrowing Cast Utilities
// Description: Implements checked narrowing conversions between integer
//              types. A narrowing cast that would lose information is a
//              programming error and aborts via panic rather than returning
//              a recoverable error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with DownCast and SizeOf32

package castx

import (
	"fmt"
	"unsafe"
)

// Integer is the constraint for all integer types DownCast converts between.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// DownCast converts value to the narrower type Small and verifies that no
// information was lost: converting the result back to Large must reproduce
// value exactly. The round-trip comparison (rather than a range check per
// type pair) also catches signed/unsigned reinterpretation, since a value
// that changes sign or wraps never survives the round trip.
//
// A failed check panics. Precision loss here is a defect in the calling
// code, not input to validate; callers must not recover this panic.
func DownCast[Small, Large Integer](value Large) Small {
	small := Small(value)
	if Large(small) != value {
		panic(fmt.Sprintf("castx: down-cast of %d to %T loses precision (became %d)",
			value, small, small))
	}
	return small
}

// SizeOf32 returns the size of T in bytes as a uint32.
//
// Sizes routinely end up in serialized headers with fixed 32-bit width
// fields, so the narrowing lives here instead of at every call site. The
// narrowing inherits DownCast's panic contract, which is only reachable on
// a platform where a type's size exceeds 32 bits.
func SizeOf32[T any]() uint32 {
	var zero T
	return DownCast[uint32](unsafe.Sizeof(zero))
}
