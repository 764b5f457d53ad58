package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boolnet/network"
)

// ring builds an n-node ring whose rules alternate over node index between
// NOT prev, prev AND next, and prev OR NOT next. Ten nodes give 36 attractors
// of both kinds.
func ring(t testing.TB, n int) *network.Definition {
	t.Helper()
	rules := make([]string, n)
	for i := range rules {
		prev := (i + n - 1) % n
		next := (i + 1) % n
		switch i % 3 {
		case 0:
			rules[i] = fmt.Sprintf("!x%d", prev)
		case 1:
			rules[i] = fmt.Sprintf("x%d & x%d", prev, next)
		default:
			rules[i] = fmt.Sprintf("x%d | !x%d", prev, next)
		}
	}
	def, err := network.Compile(nil, rules)
	require.NoError(t, err)

	return def
}
