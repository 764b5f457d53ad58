package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule is the sentinel behind every *InvalidRuleError.
	ErrInvalidRule = errors.New("network: invalid rule")

	// ErrNoRules indicates a Definition was requested with zero nodes.
	ErrNoRules = errors.New("network: no rules")

	// ErrStateWidth indicates Apply received a State whose width differs from N.
	ErrStateWidth = errors.New("network: state width mismatch")

	// ErrNameCount indicates WithNames was given a different number of names than rules.
	ErrNameCount = errors.New("network: name count does not match rule count")

	// ErrDuplicateName indicates two nodes share a non-empty name.
	ErrDuplicateName = errors.New("network: duplicate node name")

	// ErrUnknownNode indicates a lookup by name or index found no such node.
	ErrUnknownNode = errors.New("network: unknown node")
)

// InvalidRuleError reports a malformed or out-of-range update rule.
// Node is the index of the rule's owner, or -1 when the rule is parsed standalone.
type InvalidRuleError struct {
	Node   int
	Rule   string
	Reason string
	Err    error
}

func (e *InvalidRuleError) Error() string {
	var where string
	if e.Node >= 0 {
		where = fmt.Sprintf(" for node %d", e.Node)
	}
	msg := fmt.Sprintf("network: invalid rule%s %q: %s", where, e.Rule, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap lets errors.Is match ErrInvalidRule and errors.As reach the cause.
func (e *InvalidRuleError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidRule}
	}

	return []error{ErrInvalidRule, e.Err}
}
