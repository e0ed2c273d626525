// Package lattice defines the fixed type lattice used by the Sea-of-Nodes
// graph: an immutable value, ordered by a meet operation, that is carried by
// every node as its cached, monotonically-refined type.
//
// The lattice skeleton is deliberately small:
//
//	Bottom
//	  |
//	Control   Tuple(T...)   Integer(is_const, value)
//	  |                          |        |
//	  |                       IntBot    (constants...)
//	  |                          |        |
//	Top    -----------------  IntTop ----+
//
// Control and Tuple values are structural (there is exactly one Control, and
// Tuples are compared element-wise); Integer carries the two-element
// constant-or-bottom lattice described in spec.md. Meet of two values from
// disjoint families (e.g. Control and Integer) collapses to Bottom — mixing
// families is always a widening, never an error.
//
// Why a library: none of the example repositories carries a lattice/abstract
// -interpretation dependency, and the lattice here is five concrete shapes
// with one free function (Meet); a dependency would add indirection without
// reducing code. See DESIGN.md.
package lattice
