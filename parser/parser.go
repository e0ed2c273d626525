package parser

import (
	"errors"
	"fmt"

	"github.com/PHLens/SeaOfNode/core"
	"github.com/PHLens/SeaOfNode/lattice"
	"github.com/PHLens/SeaOfNode/lexer"
	"github.com/PHLens/SeaOfNode/scope"
)

// Parser drives a lexer.Lexer across the Simple grammar, building a Sea of
// Nodes graph one statement at a time. It holds no lookahead token of its
// own: every parse method re-derives what comes next from the lexer's
// cursor, exactly as the lexer re-derives it from the source string.
type Parser struct {
	lx        *lexer.Lexer
	g         *core.Graph
	s         *scope.Scope
	showGraph func(*core.Graph)
}

// Parse compiles src and returns the finished graph rooted at g.Stop(). Any
// error aborts the parse with no graph returned; the nodes built so far are
// unreferenced and collected by the same DCE the construction itself relies
// on.
func Parse(src string, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph(cfg.graphOptions...)

	ctrl := core.NewProj(g, g.Start(), 0, "ctrl")
	s := scope.New(g, ctrl)

	p := &Parser{lx: lexer.New(src), g: g, s: s, showGraph: cfg.showGraph}

	arg := core.NewProj(g, g.Start(), 1, "arg")
	if err := p.s.Define("arg", arg); err != nil {
		return nil, err
	}

	if _, err := p.parseBlock(); err != nil {
		return nil, err
	}
	if !p.lx.IsEOF() {
		return nil, fmt.Errorf("%w: unexpected '%s'", ErrSyntax, p.lx.NextTokenText())
	}

	g.Peephole(g.Stop())

	return g, nil
}

// parseBlock parses statement* up to (but not consuming) a closing '}' or
// EOF, inside a freshly pushed lexical frame.
func (p *Parser) parseBlock() (*core.Node, error) {
	p.s.Push()
	defer p.s.Pop()

	var last *core.Node
	for !p.lx.PeekEquals('}') && !p.lx.IsEOF() {
		n, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		last = n
	}

	return last, nil
}

func (p *Parser) parseStatement() (*core.Node, error) {
	switch {
	case p.lx.MatchExact("return"):
		return p.parseReturn()
	case p.lx.MatchExact("int"):
		return p.parseDecl()
	case p.lx.PeekEquals('{'):
		p.lx.Match("{")
		n, err := p.parseBlock()
		if err != nil {
			return nil, err
		}

		return n, p.require("}")
	case p.lx.MatchExact("if"):
		return p.parseIf()
	case p.lx.Match("#showGraph"):
		if err := p.require(";"); err != nil {
			return nil, err
		}
		if p.showGraph != nil {
			p.showGraph(p.g)
		}

		return nil, nil
	default:
		return p.parseExpressionStatement()
	}
}

// parseReturn handles 'return' expr ';'. It terminates the current control
// path: the Return is appended to Stop and the scope's control binding is
// cleared, so a following statement on the same path (dead code) builds
// nothing reachable.
func (p *Parser) parseReturn() (*core.Node, error) {
	ctrl := p.s.Ctrl()
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.require(";"); err != nil {
		return nil, err
	}

	ret := core.NewReturn(p.g, ctrl, expr)
	p.g.AddReturn(ret)
	p.s.SetCtrl(nil)

	return ret, nil
}

// parseDecl handles 'int' IDENT '=' expr ';'.
func (p *Parser) parseDecl() (*core.Node, error) {
	name, err := p.requireIdent()
	if err != nil {
		return nil, err
	}
	if err := p.require("="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.require(";"); err != nil {
		return nil, err
	}

	if err := p.s.Define(name, expr); err != nil {
		if errors.Is(err, scope.ErrRedefined) {
			return nil, fmt.Errorf("%w '%s'", ErrRedefinition, name)
		}

		return nil, err
	}

	return expr, nil
}

// parseExpressionStatement handles IDENT '=' expr ';', rewriting an
// existing binding rather than introducing one.
func (p *Parser) parseExpressionStatement() (*core.Node, error) {
	name, ok := p.lx.MatchIdent()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected '%s'", ErrSyntax, p.lx.NextTokenText())
	}
	if keywords[name] {
		return nil, fmt.Errorf("%w '%s'", ErrReservedKeyword, name)
	}
	if err := p.require("="); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.require(";"); err != nil {
		return nil, err
	}

	if prev := p.s.Update(name, expr); prev == nil {
		return nil, fmt.Errorf("%w '%s'", ErrUndefinedName, name)
	}

	return expr, nil
}

// parseIf handles 'if' '(' expr ')' statement ('else' statement)?. Both arms
// run against a copy of the live scope (scope.Scope.Dup), and are merged
// back together once both are parsed (scope.Scope.Merge). Either arm's
// arity is compared against the pre-if snapshot, not against each other:
// an arm that declares a new name is rejected even if the other arm also
// declares one (under a different name), since Merge has no way to tell the
// two apart and would otherwise Phi two unrelated bindings together under
// one name.
func (p *Parser) parseIf() (*core.Node, error) {
	if err := p.require("("); err != nil {
		return nil, err
	}
	pred, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.require(")"); err != nil {
		return nil, err
	}

	ifNode := core.NewIf(p.g, p.s.Ctrl(), pred)
	ifTrue := core.NewProj(p.g, ifNode, 0, "True")
	ifFalse := core.NewProj(p.g, ifNode, 1, "False")

	elseScope := p.s.Dup(p.g)
	ndefs := elseScope.Arity()

	p.s.SetCtrl(ifTrue)
	if _, err := p.parseStatement(); err != nil {
		return nil, err
	}
	tArity := p.s.Arity()

	elseScope.SetCtrl(ifFalse)
	if p.lx.MatchExact("else") {
		saved := p.s
		p.s = elseScope
		_, err := p.parseStatement()
		p.s = saved
		if err != nil {
			return nil, err
		}
	}
	fArity := elseScope.Arity()

	if tArity != ndefs || fArity != ndefs {
		return nil, ErrAsymmetricIfArms
	}

	region := p.s.Merge(p.g, elseScope)

	return region, nil
}

func (p *Parser) parseExpression() (*core.Node, error) {
	lhs, err := p.parseAddition()
	if err != nil {
		return nil, err
	}

	return p.parseComparison(lhs)
}

// parseComparison consumes the single optional comparison operator the
// grammar allows after an addition. '>' and '>=' desugar to '<' and '<='
// with their operands swapped, and '!=' desugars to a negated '=='.
func (p *Parser) parseComparison(lhs *core.Node) (*core.Node, error) {
	switch {
	case p.lx.Match("=="):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewEQ(p.g, lhs, rhs), nil
	case p.lx.Match("!="):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewNot(p.g, core.NewEQ(p.g, lhs, rhs)), nil
	case p.lx.Match("<="):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewLE(p.g, lhs, rhs), nil
	case p.lx.Match("<"):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewLT(p.g, lhs, rhs), nil
	case p.lx.Match(">="):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewLE(p.g, rhs, lhs), nil
	case p.lx.Match(">"):
		rhs, err := p.parseAddition()
		if err != nil {
			return nil, err
		}

		return core.NewLT(p.g, rhs, lhs), nil
	default:
		return lhs, nil
	}
}

func (p *Parser) parseAddition() (*core.Node, error) {
	lhs, err := p.parseMultiplication()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.lx.Match("+"):
			rhs, err := p.parseMultiplication()
			if err != nil {
				return nil, err
			}
			lhs = core.NewAdd(p.g, lhs, rhs)
		case p.lx.Match("-"):
			rhs, err := p.parseMultiplication()
			if err != nil {
				return nil, err
			}
			lhs = core.NewSub(p.g, lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseMultiplication() (*core.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.lx.Match("*"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = core.NewMul(p.g, lhs, rhs)
		case p.lx.Match("/"):
			rhs, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			lhs = core.NewDiv(p.g, lhs, rhs)
		default:
			return lhs, nil
		}
	}
}

func (p *Parser) parseUnary() (*core.Node, error) {
	if p.lx.Match("-") {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return core.NewMinus(p.g, x), nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*core.Node, error) {
	if p.lx.IsNumberNext() {
		v, err := p.lx.ParseNumber()
		if err != nil {
			if errors.Is(err, lexer.ErrLeadingZero) {
				return nil, fmt.Errorf("%w: integer values cannot start with '0'", ErrSyntax)
			}

			return nil, fmt.Errorf("%w: %s", ErrSyntax, err)
		}

		return core.NewConstant(p.g, lattice.NewIntConst(v)), nil
	}
	if p.lx.MatchExact("true") {
		return core.NewConstant(p.g, lattice.NewIntConst(1)), nil
	}
	if p.lx.MatchExact("false") {
		return core.NewConstant(p.g, lattice.NewIntConst(0)), nil
	}
	if p.lx.Match("(") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		return expr, p.require(")")
	}
	if name, ok := p.lx.MatchIdent(); ok {
		if keywords[name] {
			return nil, fmt.Errorf("%w '%s'", ErrReservedKeyword, name)
		}
		n := p.s.Lookup(name)
		if n == nil {
			return nil, fmt.Errorf("%w '%s'", ErrUndefinedName, name)
		}

		return n, nil
	}

	return nil, fmt.Errorf("%w: unexpected '%s'", ErrSyntax, p.lx.NextTokenText())
}

// requireIdent consumes an identifier token, rejecting one of the reserved
// keywords with the same diagnostic the grammar uses when no identifier is
// found at all — a keyword is lexically identifier-shaped but never a valid
// declared name.
func (p *Parser) requireIdent() (string, error) {
	name, ok := p.lx.MatchIdent()
	if !ok {
		return "", fmt.Errorf("%w, but found '%s'", ErrExpectedIdent, p.lx.NextTokenText())
	}
	if keywords[name] {
		return "", fmt.Errorf("%w, but found '%s'", ErrExpectedIdent, name)
	}

	return name, nil
}

func (p *Parser) require(tok string) error {
	if p.lx.Match(tok) {
		return nil
	}

	return fmt.Errorf("%w: expected '%s' but found '%s'", ErrSyntax, tok, p.lx.NextTokenText())
}
