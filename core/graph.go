package core

import "github.com/PHLens/SeaOfNode/lattice"

// Graph owns one parse's node arena: the id counter, the node registry (by
// id, for Find and for graphwalk), and the two structural singletons, Start
// and Stop. It is the teacher's core.Graph idiom — a single struct owning
// storage and a monotonic id generator — ported from an adjacency-list
// vertex/edge store to an ordered Node arena (spec.md §9's "arena of nodes
// plus stable indices" design note).
type Graph struct {
	idCounter int
	registry  []*Node // index == id; entries are never removed, only marked dead

	start *Node
	stop  *Node

	noPeephole bool // observation mode: compute() runs, idealize() never does
}

// Config resolves GraphOption values before the Graph (and its Start node,
// whose type depends on argType) is constructed.
type config struct {
	argType    lattice.Value
	noPeephole bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*config)

// WithArgType sets the lattice type of the implicit `arg` parameter that
// flows out of Start's second tuple slot. Defaults to lattice.IntBottom.
func WithArgType(t lattice.Value) GraphOption {
	return func(c *config) { c.argType = t }
}

// WithPeepholeDisabled puts the Graph in observation mode: compute() still
// runs (so types are still tracked), but idealize() and the constant-fold
// shortcut never fire. Intended for tests that want to inspect the graph's
// pre-optimization shape.
func WithPeepholeDisabled() GraphOption {
	return func(c *config) { c.noPeephole = true }
}

// NewGraph creates an empty parse with its Start and Stop singletons
// already present. Start is typed Tuple(Control, argType); Stop begins with
// no inputs and accumulates one per Return (see AddReturn in control.go).
func NewGraph(opts ...GraphOption) *Graph {
	cfg := config{argType: lattice.IntBottom}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{noPeephole: cfg.noPeephole}
	g.start = newNode(g, KindStart)
	g.start.constVal = lattice.NewTuple(lattice.Control, cfg.argType)
	g.start.compute()

	g.stop = newNode(g, KindStop)
	g.stop.compute()

	return g
}

// nextID returns the next monotonically increasing node id.
func (g *Graph) nextID() int {
	id := g.idCounter
	g.idCounter++

	return id
}

// register records n in the arena so Find and graphwalk can enumerate nodes
// by id even after some have died.
func (g *Graph) register(n *Node) {
	g.registry = append(g.registry, n)
}

// Start returns the graph's unique Start node.
func (g *Graph) Start() *Node { return g.start }

// Stop returns the graph's unique Stop node.
func (g *Graph) Stop() *Node { return g.stop }

// NodeCount returns the number of ids ever allocated in this graph
// (including dead nodes still occupying a registry slot).
func (g *Graph) NodeCount() int { return len(g.registry) }

// NodeByID returns the node allocated with the given id, or nil if none was
// (ids are dense and start at 0, but a node may since have died).
func (g *Graph) NodeByID(id int) *Node {
	if id < 0 || id >= len(g.registry) {
		return nil
	}

	return g.registry[id]
}
