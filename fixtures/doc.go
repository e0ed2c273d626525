// Package fixtures builds deterministic Sea-of-Nodes graphs for tests and
// benchmarks, the way builder assembles deterministic core.Graph topologies
// from a sequence of Constructor calls: one orchestrator (BuildGraph) applies
// a list of Constructors to a fresh graph in order, and each Constructor is a
// small, single-purpose shape.
//
// Unlike builder's ~30 combinatorial graph-family constructors (bipartite,
// random-regular, platonic solids, …), a Sea-of-Nodes program has exactly one
// shape per distinct control-flow structure, so fixtures carries only the
// handful of shapes this module's graphwalk and fixtures tests exercise: a
// straight-line chain of arithmetic, a diamond if/else join, and a single
// early return.
package fixtures
