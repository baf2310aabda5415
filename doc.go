// Package kata is a small toolkit of self-contained programming exercises:
// a shape-area calculator over a tagged union, a word-occurrence counter,
// slice summation, required-key validation for JSON-style objects, and a
// trivial Car entity.
//
// Each exercise is a pure function (or immutable value type) with no shared
// state; this package is a façade over the internal packages so consumers
// import one path. The kata command in cmd/kata exposes the same operations
// on the command line.
//
// # Usage
//
//	area, err := kata.Area(kata.Circle{Radius: 5})
//	if err != nil { ... }
//	// area == 78.54
//
//	counts := kata.WordCount("the quick brown fox and the lazy dog")
//	top := kata.TopWords(counts, 3)
package kata
