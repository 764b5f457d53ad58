package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/boolnet/state"
)

// Option configures a Definition at construction time.
type Option func(*Definition)

// WithNames attaches node names (index i ↔ names[i]). Names are used for
// rendering and for lookups; they do not affect dynamics.
func WithNames(names ...string) Option {
	return func(d *Definition) {
		d.names = append([]string(nil), names...)
	}
}

// Definition is an immutable synchronous Boolean network of N nodes.
// A Definition is safe for concurrent use: Apply only reads it.
type Definition struct {
	rules []Expr
	names []string
}

// New builds a Definition with one rule per node, validating that every
// variable reference lies in [0,N).
func New(rules []Expr, opts ...Option) (*Definition, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	d := &Definition{rules: append([]Expr(nil), rules...)}
	for _, opt := range opts {
		opt(d)
	}
	if err := checkNames(d.names, len(rules)); err != nil {
		return nil, err
	}

	n := len(rules)
	for i, r := range d.rules {
		if r == nil {
			return nil, &InvalidRuleError{Node: i, Rule: "<nil>", Reason: "rule is nil"}
		}
		var bad []int
		r.refs(func(j int) {
			if j < 0 || j >= n {
				bad = append(bad, j)
			}
		})
		if len(bad) > 0 {
			return nil, &InvalidRuleError{
				Node:   i,
				Rule:   r.String(),
				Reason: fmt.Sprintf("reference x[%d] outside [0,%d)", bad[0], n),
			}
		}
	}

	return d, nil
}

// checkNames requires one name per rule and no repeated non-empty name.
// nil names means the nodes are unnamed.
func checkNames(names []string, n int) error {
	if names == nil {
		return nil
	}
	if len(names) != n {
		return fmt.Errorf("%w: %d names for %d rules", ErrNameCount, len(names), n)
	}
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q names nodes %d and %d", ErrDuplicateName, name, j, i)
		}
		seen[name] = i
	}

	return nil
}

// Compile parses one rule per node. names may be nil; when present it must
// have one entry per rule and enables name references inside the rules.
func Compile(names []string, sources []string) (*Definition, error) {
	if len(sources) == 0 {
		return nil, ErrNoRules
	}
	if err := checkNames(names, len(sources)); err != nil {
		return nil, err
	}
	rules := make([]Expr, len(sources))
	for i, src := range sources {
		e, err := ParseRule(src, len(sources), names)
		if err != nil {
			var ire *InvalidRuleError
			if errors.As(err, &ire) {
				ire.Node = i
			}
			return nil, err
		}
		rules[i] = e
	}
	var opts []Option
	if names != nil {
		opts = append(opts, WithNames(names...))
	}

	return New(rules, opts...)
}

// Len reports N.
func (d *Definition) Len() int { return len(d.rules) }

// Rule returns node i's rule.
func (d *Definition) Rule(i int) (Expr, error) {
	if i < 0 || i >= len(d.rules) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, i)
	}

	return d.rules[i], nil
}

// Names returns a copy of the node names, or generated "x[i]" labels.
func (d *Definition) Names() []string {
	out := make([]string, len(d.rules))
	for i := range out {
		out[i] = d.Name(i)
	}

	return out
}

// Name returns node i's name, falling back to "x[i]".
func (d *Definition) Name(i int) string {
	if i >= 0 && i < len(d.names) && d.names[i] != "" {
		return d.names[i]
	}

	return Var(i).String()
}

// NodeIndex resolves a node name.
func (d *Definition) NodeIndex(name string) (int, error) {
	for i := range d.rules {
		if d.Name(i) == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownNode, name)
}

// RuleString renders node i's rule using node names where known.
func (d *Definition) RuleString(i int) string {
	if i < 0 || i >= len(d.rules) {
		return ""
	}

	return render(d.rules[i], d.names)
}

// Apply computes the synchronous successor of s: every rule is evaluated
// against the same input, never against partially updated values.
func (d *Definition) Apply(s state.State) (state.State, error) {
	if s.Len() != len(d.rules) {
		return state.State{}, fmt.Errorf("%w: got %d, want %d", ErrStateWidth, s.Len(), len(d.rules))
	}
	next := make([]bool, len(d.rules))
	for i, r := range d.rules {
		next[i] = r.Eval(s)
	}

	return state.New(next)
}

// Pin returns a copy of d whose listed nodes are fixed to constants.
// The receiver is left untouched.
func (d *Definition) Pin(values map[int]bool) (*Definition, error) {
	rules := append([]Expr(nil), d.rules...)
	idx := make([]int, 0, len(values))
	for i := range values {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		if i < 0 || i >= len(rules) {
			return nil, fmt.Errorf("network: pin: %w: %d", ErrUnknownNode, i)
		}
		rules[i] = Const(values[i])
	}

	return &Definition{rules: rules, names: d.names}, nil
}

// PinNames is Pin keyed by node name.
func (d *Definition) PinNames(values map[string]bool) (*Definition, error) {
	byIndex := make(map[int]bool, len(values))
	for name, v := range values {
		i, err := d.NodeIndex(name)
		if err != nil {
			return nil, fmt.Errorf("network: pin: %w", err)
		}
		byIndex[i] = v
	}

	return d.Pin(byIndex)
}
