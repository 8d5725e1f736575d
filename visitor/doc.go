// Package visitor offers visitors over Go containers used to build payload nodes.
// It provides reflection-backed iteration over structs (resolved json/format tag names),
// maps (sorted string keys) and slices, with simple callback-based traversal.
package visitor
