// Package core implements the Sea-of-Nodes graph: a single arena of Node
// values linked by mirrored input/output edges, each carrying a cached type
// from package lattice, rewritten toward a canonical form by a peephole
// engine as it is built.
//
// A Graph owns the node arena, the monotonically increasing node-id counter,
// and the two structural singletons every parse produces exactly one of:
// Start (the graph's unique entry, typed Tuple(Control, arg)) and Stop (the
// graph's unique root, accumulating one input per Return statement).
//
// Node construction always ends in a call to Graph.Peephole, so a freshly
// built node is never observed in its pre-optimized shape by the rest of the
// package — constant expressions fold, identities cancel, and sums
// canonicalize into left-spine form before the constructor's return value
// reaches the caller. See peephole.go for the algorithm and arith.go/
// compare.go/phi.go for the per-kind rewrites.
//
// Concurrency: a *Graph and everything reachable from it is NOT safe for
// concurrent use. One parse owns one Graph on one goroutine; there is no
// locking anywhere in this package, unlike the adjacency-list graphs the
// traversal packages in this module were adapted from. Run tests that touch
// a shared Graph under `go test -race` to catch accidental sharing.
package core
