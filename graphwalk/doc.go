// Package graphwalk implements reachability and rank-layering traversal over
// a core.Graph, the two diagnostic queries the parser and its tests need
// beyond the peephole engine itself: which nodes are actually live (reachable
// from Start or Stop through either inputs or outputs), and a rank ordering
// suitable for a Graphviz-style rendering of the sea of nodes.
//
// Both walks are plain graph-shaped BFS/DFS over *core.Node, adapted from the
// vertex/edge traversal idiom of a visited-set walker plus options struct,
// generalized here from string vertex ids to *core.Node pointers since the
// arena already hands out a stable identity per node.
package graphwalk
