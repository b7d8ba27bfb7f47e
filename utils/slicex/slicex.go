// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements slice utility functions including in-place
//              sort-and-return, equality predicates, search, and basic
//              manipulation operations with generic type support.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial implementation with core slice utilities

package slicex

import (
	"cmp"
	"slices"
)

// ===============================
// Sorting Functions
// ===============================

// Sorted sorts s in place in ascending order and returns the same slice.
// This enables construction-and-sort in a single expression:
//
//	names := slicex.Sorted(mapx.Keys(index))
//
// The caller hands the slice in and receives it back sorted; Sorted keeps
// no reference. The sort is not stable. Nil, empty, and single-element
// slices are returned unchanged.
func Sorted[T cmp.Ordered](s []T) []T {
	slices.Sort(s)
	return s
}

// SortedFunc sorts s in place using the comparison function cmp and returns
// the same slice. Like Sorted, the sort is not stable. A nil comparison
// function returns s unchanged.
func SortedFunc[T any](s []T, cmp func(a, b T) int) []T {
	if cmp == nil {
		return s
	}
	slices.SortFunc(s, cmp)
	return s
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[T cmp.Ordered](s []T) bool {
	return slices.IsSorted(s)
}

// ===============================
// Predicate Functions
// ===============================

// AllEqualTo reports whether every element of s equals value. An empty or
// nil slice vacuously returns true. The traversal is left to right and
// stops at the first unequal element.
func AllEqualTo[T comparable](s []T, value T) bool {
	for _, item := range s {
		if item != value {
			return false
		}
	}
	return true
}

// Contains reports whether s contains element.
func Contains[T comparable](s []T, element T) bool {
	for _, item := range s {
		if item == element {
			return true
		}
	}
	return false
}

// IndexOf returns the first index of element in s, or -1 if not found.
func IndexOf[T comparable](s []T, element T) int {
	for i, item := range s {
		if item == element {
			return i
		}
	}
	return -1
}

// Equal reports whether two slices have the same length and equal elements
// at every index.
func Equal[T comparable](s1, s2 []T) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, item := range s1 {
		if item != s2[i] {
			return false
		}
	}
	return true
}

// ===============================
// Manipulation Functions
// ===============================

// Clone returns a shallow copy of s. A nil slice yields nil.
func Clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s))
	copy(result, s)
	return result
}

// Unique returns a new slice with duplicate elements removed, preserving
// first-occurrence order. A nil slice yields nil.
func Unique[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	result := make([]T, 0, len(s))
	for _, item := range s {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Reverse returns a new slice with the elements of s in reverse order.
// A nil slice yields nil; the input is not modified.
func Reverse[T any](s []T) []T {
	if s == nil {
		return nil
	}
	result := make([]T, len(s))
	for i, item := range s {
		result[len(s)-1-i] = item
	}
	return result
}

// ===============================
// Aggregate Functions
// ===============================

// Min returns the minimum element of s. The second return value is false
// if s is empty.
func Min[T cmp.Ordered](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	min := s[0]
	for _, item := range s[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the maximum element of s. The second return value is false
// if s is empty.
func Max[T cmp.Ordered](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	max := s[0]
	for _, item := range s[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}
