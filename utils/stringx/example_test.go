// File: example_test.go
// Title: String Utilities Examples
// Description: Examples demonstrating practical usage of stringx utility
//              functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-02-12
//
// Change History:
// - 2025-02-12 v0.1.0: Initial example implementation

package stringx

import "fmt"

func ExampleFormat() {
	msg := Format("segment %d closed after %s", 42, "3m20s")

	fmt.Println(msg)
	// Output: segment 42 closed after 3m20s
}

func ExampleIsPrintable() {
	fmt.Println(IsPrintable("GET /index HTTP/1.1"))
	fmt.Println(IsPrintable("binary\x01payload"))
	// Output:
	// true
	// false
}

func ExampleIsPrintableBytes() {
	record := []byte("checkpoint\x00")

	fmt.Println(IsPrintableBytes(record))
	fmt.Println(IsPrintableBytes(record[:len(record)-1]))
	// Output:
	// true
	// false
}

func ExampleReplaceAll() {
	fmt.Println(ReplaceAll("aaa", "a", "bb"))
	fmt.Println(ReplaceAll("/var/log/node", "/", "::"))
	// Output:
	// bbbbbb
	// ::var::log::node
}

func ExampleTruncate() {
	fmt.Println(Truncate("a very long log message", 10, "..."))
	// Output: a very ...
}
