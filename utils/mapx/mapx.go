// File: mapx.go
// Title: Core Map Utilities
// Description: Implements map utility functions including ordered key,
//              value, and entry extraction plus validation and manipulation
//              operations for Go maps.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with ordered extraction

package mapx

import (
	"cmp"
	"slices"
)

// Entry represents a key-value pair extracted from a map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// ===============================
// Ordered Extraction Functions
// ===============================

// Keys returns a freshly allocated slice containing a copy of each key of
// m in ascending key order. Go maps iterate in randomized order, so the
// extraction order is pinned to the key ordering instead; this keeps Keys,
// Values, and Entries index-aligned across separate calls on the same map.
// An empty or nil map yields an empty, non-nil slice. The map is not
// modified.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Values returns a freshly allocated slice containing a copy of each value
// of m, ordered by the corresponding key ascending. Duplicate values are
// permitted and appear once per entry. An empty or nil map yields an
// empty, non-nil slice. The map is not modified.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		values = append(values, m[k])
	}
	return values
}

// Entries returns a freshly allocated slice of key-value copies, one per
// entry of m, in ascending key order. For every index i,
// Entries(m)[i] == Entry{Keys(m)[i], Values(m)[i]}. An empty or nil map
// yields an empty, non-nil slice. The map is not modified.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for _, k := range Keys(m) {
		entries = append(entries, Entry[K, V]{Key: k, Value: m[k]})
	}
	return entries
}

// ===============================
// Validation Functions
// ===============================

// HasKey reports whether m contains key.
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	_, exists := m[key]
	return exists
}

// HasValue reports whether m contains at least one entry with value.
func HasValue[K, V comparable](m map[K]V, value V) bool {
	for _, v := range m {
		if v == value {
			return true
		}
	}
	return false
}

// Equal reports whether two maps contain exactly the same entries.
func Equal[K, V comparable](m1, m2 map[K]V) bool {
	if len(m1) != len(m2) {
		return false
	}
	for k, v1 := range m1 {
		if v2, exists := m2[k]; !exists || v1 != v2 {
			return false
		}
	}
	return true
}

// ===============================
// Manipulation Functions
// ===============================

// Clone returns a shallow copy of m. A nil map yields nil.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Merge creates a new map containing the entries of all given maps. Later
// maps override values from earlier maps for duplicate keys.
func Merge[K comparable, V any](maps ...map[K]V) map[K]V {
	size := 0
	for _, m := range maps {
		size += len(m)
	}

	result := make(map[K]V, size)
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// FromEntries creates a map from a slice of entries. Later entries
// override earlier ones for duplicate keys. A nil slice yields nil.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	if entries == nil {
		return nil
	}
	result := make(map[K]V, len(entries))
	for _, e := range entries {
		result[e.Key] = e.Value
	}
	return result
}
