package network

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(and|or|not|true|false|AND|OR|NOT|TRUE|FALSE)\b`},
	{Name: "Short", Pattern: `x[0-9]+\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Op", Pattern: `&&|\|\||[&|!~()\[\]]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type orNode struct {
	Left  *andNode   `@@`
	Right []*andNode `( ( "or" | "OR" | "||" | "|" ) @@ )*`
}

type andNode struct {
	Left  *unaryNode   `@@`
	Right []*unaryNode `( ( "and" | "AND" | "&&" | "&" ) @@ )*`
}

type unaryNode struct {
	Not     *unaryNode   `  ( "not" | "NOT" | "!" | "~" ) @@`
	Primary *primaryNode `| @@`
}

type primaryNode struct {
	Group *orNode  `  "(" @@ ")"`
	True  bool     `| @( "true" | "TRUE" | "1" )`
	False bool     `| @( "false" | "FALSE" | "0" )`
	Ref   *refNode `| @@`
}

// refNode is a name, x[i], or the x12 shorthand for x[12].
type refNode struct {
	Short string `  @Short`
	Name  string `| @Ident`
	Index *int   `  ( "[" @Int "]" )?`
}

var ruleParser = participle.MustBuild[orNode](
	participle.Lexer(ruleLexer),
)

// ParseRule parses src into an Expr for a network of n nodes.
// names, when non-nil, maps node index to name and lets rules refer to nodes by name.
// The returned error is an *InvalidRuleError with Node == -1.
func ParseRule(src string, n int, names []string) (Expr, error) {
	ast, err := ruleParser.ParseString("", src)
	if err != nil {
		return nil, &InvalidRuleError{Node: -1, Rule: src, Reason: "syntax error", Err: err}
	}
	r := resolver{n: n, index: indexNames(names)}
	expr, err := r.or(ast)
	if err != nil {
		return nil, &InvalidRuleError{Node: -1, Rule: src, Reason: err.Error()}
	}

	return expr, nil
}

// MustParseRule is ParseRule for fixtures; it panics on error.
func MustParseRule(src string, n int, names []string) Expr {
	e, err := ParseRule(src, n, names)
	if err != nil {
		panic(err)
	}

	return e
}

func indexNames(names []string) map[string]int {
	if len(names) == 0 {
		return nil
	}
	idx := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := idx[name]; name != "" && !dup {
			idx[name] = i
		}
	}

	return idx
}

// resolver lowers the participle AST into Expr values, resolving references.
type resolver struct {
	n     int
	index map[string]int
}

func (r resolver) or(node *orNode) (Expr, error) {
	left, err := r.and(node.Left)
	if err != nil {
		return nil, err
	}
	if len(node.Right) == 0 {
		return left, nil
	}
	xs := []Expr{left}
	for _, rn := range node.Right {
		x, err := r.and(rn)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}

	return orExpr(xs), nil
}

func (r resolver) and(node *andNode) (Expr, error) {
	left, err := r.unary(node.Left)
	if err != nil {
		return nil, err
	}
	if len(node.Right) == 0 {
		return left, nil
	}
	xs := []Expr{left}
	for _, rn := range node.Right {
		x, err := r.unary(rn)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}

	return andExpr(xs), nil
}

func (r resolver) unary(node *unaryNode) (Expr, error) {
	if node.Not != nil {
		x, err := r.unary(node.Not)
		if err != nil {
			return nil, err
		}

		return notExpr{x: x}, nil
	}

	return r.primary(node.Primary)
}

func (r resolver) primary(node *primaryNode) (Expr, error) {
	switch {
	case node.Group != nil:
		return r.or(node.Group)
	case node.True:
		return Const(true), nil
	case node.False:
		return Const(false), nil
	default:
		return r.ref(node.Ref)
	}
}

func (r resolver) ref(node *refNode) (Expr, error) {
	var i int
	switch {
	case node.Index != nil:
		if node.Name != "x" {
			return nil, fmt.Errorf("indexed reference must use x[i], got %s[%d]", node.Name, *node.Index)
		}
		i = *node.Index
	case node.Short != "":
		// a node actually named x12 takes precedence over index 12
		if j, ok := r.index[node.Short]; ok {
			i = j
			break
		}
		v, err := strconv.Atoi(node.Short[1:])
		if err != nil {
			return nil, fmt.Errorf("bad reference %q: %v", node.Short, err)
		}
		i = v
	default:
		j, ok := r.index[node.Name]
		if !ok {
			return nil, fmt.Errorf("unknown node %q", node.Name)
		}
		i = j
	}
	if i < 0 || i >= r.n {
		return nil, fmt.Errorf("reference x[%d] outside [0,%d)", i, r.n)
	}

	return Var(i), nil
}
