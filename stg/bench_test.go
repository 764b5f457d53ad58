package stg_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/boolnet/initstate"
	"github.com/katalvlaran/boolnet/network"
	"github.com/katalvlaran/boolnet/stg"
)

// BenchmarkBuildAndLabel measures the full graph pipeline on 2^14 states of
// an XOR ring (rule 90).
func BenchmarkBuildAndLabel(b *testing.B) {
	const n = 14
	rules := make([]string, n)
	for i := range rules {
		rules[i] = fmt.Sprintf("(x%d & !x%d) | (!x%d & x%d)", (i+n-1)%n, (i+1)%n, (i+n-1)%n, (i+1)%n)
	}
	def, err := network.Compile(nil, rules)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen, _ := initstate.NewExhaustive(n)
		g, err := stg.Build(def, gen)
		if err != nil {
			b.Fatal(err)
		}
		atts, err := stg.FindAttractors(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = stg.ComputeBasins(g, atts); err != nil {
			b.Fatal(err)
		}
	}
}
