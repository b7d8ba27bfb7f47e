// File: benchmark_test.go
// Title: Map Utilities Benchmarks
// Description: Performance benchmarks for mapx extraction functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial benchmark implementation

package mapx

import (
	"strconv"
	"testing"
)

func buildMap(n int) map[int]string {
	m := make(map[int]string, n)
	for i := 0; i < n; i++ {
		m[i] = strconv.Itoa(i)
	}
	return m
}

func BenchmarkKeys(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		input := buildMap(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Keys(input)
			}
		})
	}
}

func BenchmarkEntries(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		input := buildMap(size)
		b.Run("size_"+strconv.Itoa(size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Entries(input)
			}
		})
	}
}
