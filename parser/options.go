package parser

import (
	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
)

// config collects the options Parse accepts.
type config struct {
	argType      lattice.Value
	showGraph    func(g *core.Graph)
	graphOptions []core.GraphOption
}

// Option configures a Parse call.
type Option func(*config)

// WithArgType sets the lattice type of the implicit `arg` parameter, the
// same knob core.WithArgType exposes on a bare Graph. Defaults to
// lattice.IntBottom (an unconstrained integer).
func WithArgType(t lattice.Value) Option {
	return func(c *config) {
		c.argType = t
		c.graphOptions = append(c.graphOptions, core.WithArgType(t))
	}
}

// WithShowGraphHook installs a callback invoked once per `#showGraph;`
// statement encountered during parsing, with the graph as built so far. The
// original source shells out to Graphviz at this point; callers that want a
// rendering wire that up themselves from the hook rather than have Parse
// fork a subprocess.
func WithShowGraphHook(hook func(g *core.Graph)) Option {
	return func(c *config) { c.showGraph = hook }
}

func newConfig(opts ...Option) config {
	cfg := config{argType: lattice.IntBottom}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
