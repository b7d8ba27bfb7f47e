// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations for log-oriented text handling:
//              safe formatted-string construction, single-line printability
//              checks on raw bytes, and non-rescanning substring
//              replacement.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ===============================
// Formatted Construction
// ===============================

// Format builds a string from a printf-style template. The result is a
// freshly allocated string of whatever length the arguments require; there
// is no fixed-size buffer and therefore no truncation.
//
// fmt reports verb/argument mismatches in-band by embedding "%!" markers
// in its output. Format treats any such marker as a malformed format, a
// defect in the calling code, and panics instead of returning garbage.
// Argument/verb agreement is otherwise checked statically by go vet. Note
// that a literal "%!" produced through "%%!" escaping is rejected as well;
// the check is deliberately conservative.
func Format(format string, args ...any) string {
	result := fmt.Sprintf(format, args...)
	if strings.Contains(result, "%!") {
		panic(fmt.Sprintf("stringx: malformed format %q for given arguments", format))
	}
	return result
}

// ===============================
// Printability Checks
// ===============================

// Terminator is the byte that ends a terminated buffer in IsPrintableBytes.
const Terminator byte = 0x00

// IsPrintable reports whether every byte of s is nice to display in a
// single line of text. The definition of printable is conservative: the
// visible ASCII range plus plain space (0x20 through 0x7E). Control codes,
// NUL, DEL, newlines, and all bytes outside ASCII fail the check. An empty
// string is printable.
func IsPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isPrintableByte(s[i]) {
			return false
		}
	}
	return true
}

// IsPrintableBytes reports whether data is a printable, terminated string:
// the last byte must be the NUL terminator and every byte before it must
// satisfy the same single-line printability rule as IsPrintable. Empty
// input or a missing terminator yields false; examined data often has the
// wrong shape, so this is a negative result rather than an error.
func IsPrintableBytes(data []byte) bool {
	n := len(data)
	if n == 0 || data[n-1] != Terminator {
		return false
	}
	for _, b := range data[:n-1] {
		if !isPrintableByte(b) {
			return false
		}
	}
	return true
}

// isPrintableByte is the single-line display rule: visible ASCII or space.
func isPrintableByte(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// ===============================
// Replacement
// ===============================

// ReplaceAll returns haystack with every non-overlapping occurrence of
// needle replaced by replacement. The scan runs left to right and resumes
// immediately after each inserted replacement, so replacement text is
// never itself rescanned; the call terminates even when replacement
// contains needle. An empty needle returns haystack unchanged (unlike
// strings.ReplaceAll, which would insert at every position).
func ReplaceAll(haystack, needle, replacement string) string {
	if needle == "" {
		return haystack
	}

	i := strings.Index(haystack, needle)
	if i < 0 {
		return haystack
	}

	var b strings.Builder
	b.Grow(len(haystack))
	for i >= 0 {
		b.WriteString(haystack[:i])
		b.WriteString(replacement)
		haystack = haystack[i+len(needle):]
		i = strings.Index(haystack, needle)
	}
	b.WriteString(haystack)
	return b.String()
}

// ===============================
// Inspection Helpers
// ===============================

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxLen runes, appending ellipsis when
// truncation occurs. Multi-byte characters are never split. If maxLen
// leaves no room for the ellipsis, the ellipsis is dropped.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	keep := maxLen - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:keep]) + ellipsis
}
