package network

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/boolnet/state"
)

// Expr is a pre-parsed Boolean update rule.
// The set of implementations is closed: build values with Var, Const, Not, And, Or
// or ParseRule.
type Expr interface {
	// Eval evaluates the rule against s. Eval is pure and never mutates s.
	Eval(s state.State) bool

	// String renders the rule with x[i] references.
	String() string

	format(sb *strings.Builder, names []string, top bool)
	refs(fn func(int))
}

// Var references node i of the current State.
type Var int

// Const is a constant rule, used for pinned nodes.
type Const bool

type notExpr struct{ x Expr }

type andExpr []Expr

type orExpr []Expr

// Not negates x.
func Not(x Expr) Expr { return notExpr{x: x} }

// And is the conjunction of xs; And() is true.
func And(xs ...Expr) Expr { return andExpr(append([]Expr(nil), xs...)) }

// Or is the disjunction of xs; Or() is false.
func Or(xs ...Expr) Expr { return orExpr(append([]Expr(nil), xs...)) }

func (v Var) Eval(s state.State) bool { return s.Bit(int(v)) }

func (c Const) Eval(state.State) bool { return bool(c) }

func (n notExpr) Eval(s state.State) bool { return !n.x.Eval(s) }

func (a andExpr) Eval(s state.State) bool {
	for _, x := range a {
		if !x.Eval(s) {
			return false // short-circuit
		}
	}

	return true
}

func (o orExpr) Eval(s state.State) bool {
	for _, x := range o {
		if x.Eval(s) {
			return true
		}
	}

	return false
}

func (v Var) refs(fn func(int)) { fn(int(v)) }

func (Const) refs(func(int)) {}

func (n notExpr) refs(fn func(int)) { n.x.refs(fn) }

func (a andExpr) refs(fn func(int)) {
	for _, x := range a {
		x.refs(fn)
	}
}

func (o orExpr) refs(fn func(int)) {
	for _, x := range o {
		x.refs(fn)
	}
}

func (v Var) String() string     { return render(v, nil) }
func (c Const) String() string   { return render(c, nil) }
func (n notExpr) String() string { return render(n, nil) }
func (a andExpr) String() string { return render(a, nil) }
func (o orExpr) String() string  { return render(o, nil) }

func render(e Expr, names []string) string {
	var sb strings.Builder
	e.format(&sb, names, true)

	return sb.String()
}

func (v Var) format(sb *strings.Builder, names []string, _ bool) {
	i := int(v)
	if i >= 0 && i < len(names) && names[i] != "" {
		sb.WriteString(names[i])
		return
	}
	sb.WriteString("x[")
	sb.WriteString(strconv.Itoa(i))
	sb.WriteByte(']')
}

func (c Const) format(sb *strings.Builder, _ []string, _ bool) {
	if c {
		sb.WriteString("true")
	} else {
		sb.WriteString("false")
	}
}

func (n notExpr) format(sb *strings.Builder, names []string, _ bool) {
	sb.WriteString("not ")
	n.x.format(sb, names, false)
}

func (a andExpr) format(sb *strings.Builder, names []string, top bool) {
	formatList(sb, names, top, []Expr(a), " and ", "true")
}

func (o orExpr) format(sb *strings.Builder, names []string, top bool) {
	formatList(sb, names, top, []Expr(o), " or ", "false")
}

// formatList parenthesizes nested operators so the rendering re-parses
// to an equivalent tree.
func formatList(sb *strings.Builder, names []string, top bool, xs []Expr, op, empty string) {
	switch len(xs) {
	case 0:
		sb.WriteString(empty)
		return
	case 1:
		xs[0].format(sb, names, top)
		return
	}
	if !top {
		sb.WriteByte('(')
	}
	for i, x := range xs {
		if i > 0 {
			sb.WriteString(op)
		}
		x.format(sb, names, false)
	}
	if !top {
		sb.WriteByte(')')
	}
}
