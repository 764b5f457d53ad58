// Package network defines a synchronous Boolean network: N nodes, each with an
// update rule, and the Update Evaluator that maps a State to its successor.
//
// What:
//
//   - Expr: a closed, pre-parsed expression tree (Var, Not, And, Or, Const)
//     evaluated directly against a state.State. Rule text is never patched or
//     executed dynamically.
//   - ParseRule: parses rule text such as "x[0] and not x[2]", "A & !C" or
//     "(x1 || x3) && x4" into an Expr, resolving node names and indices.
//   - Definition: N plus one Expr per node; immutable once built.
//   - Apply: synchronous update; every rule reads the same input State.
//   - Pin: fixes nodes to constants (knock-out / over-expression analysis).
//
// Grammar (precedence low → high):
//
//	rule    = or
//	or      = and { ("or" | "||" | "|") and }
//	and     = unary { ("and" | "&&" | "&") unary }
//	unary   = ("not" | "!" | "~") unary | primary
//	primary = "(" or ")" | "true" | "false" | "1" | "0" | ref
//	ref     = ident [ "[" int "]" ]
//
// A ref is "x[i]", "xi" (x followed by digits) or a node name supplied with
// WithNames / Compile. Keywords are accepted in lower or upper case.
//
// Complexity:
//
//   - ParseRule: O(len(src))
//   - Apply:     O(Σ |rule_i|), one allocation for the successor
//
// Errors:
//
//   - ErrInvalidRule  (via *InvalidRuleError) malformed text, unknown name,
//     or a reference outside [0,N)
//   - ErrNoRules      a Definition needs at least one node
//   - ErrStateWidth   Apply received a State of another width
//   - ErrUnknownNode  Pin or NodeIndex referenced a node that does not exist
package network
