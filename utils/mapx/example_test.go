// File: example_test.go
// Title: Map Utilities Examples
// Description: Examples demonstrating practical usage of mapx extraction
//              and manipulation functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-11
// Modified: 2025-02-11
//
// Change History:
// - 2025-02-11 v0.1.0: Initial example implementation

package mapx

import "fmt"

func ExampleKeys() {
	replicas := map[string]int{"node3": 2, "node1": 4, "node2": 1}

	// Extraction order is ascending key order, regardless of map iteration.
	fmt.Println(Keys(replicas))
	// Output: [node1 node2 node3]
}

func ExampleValues() {
	replicas := map[string]int{"node3": 2, "node1": 4, "node2": 1}

	fmt.Println(Values(replicas))
	// Output: [4 1 2]
}

func ExampleEntries() {
	levels := map[int]string{2: "warn", 1: "info"}

	for _, e := range Entries(levels) {
		fmt.Printf("%d=%s\n", e.Key, e.Value)
	}
	// Output:
	// 1=info
	// 2=warn
}

func ExampleMerge() {
	defaults := map[string]string{"region": "eu", "tier": "standard"}
	overrides := map[string]string{"tier": "premium"}

	merged := Merge(defaults, overrides)
	fmt.Println(merged["region"], merged["tier"])
	// Output: eu premium
}
