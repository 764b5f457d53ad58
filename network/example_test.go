package network_test

import (
	"fmt"

	"github.com/katalvlaran/boolnet/network"
	"github.com/katalvlaran/boolnet/state"
)

func ExampleCompile() {
	def, err := network.Compile([]string{"A", "B", "C"}, []string{"A && !C", "A || C", "~B"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, name := range def.Names() {
		fmt.Printf("%s' = %s\n", name, def.RuleString(i))
	}
	next, _ := def.Apply(state.MustParse("100"))
	fmt.Println("100 ->", next)
	// Output:
	// A' = A and not C
	// B' = A or C
	// C' = not B
	// 100 -> 111
}

func ExampleDefinition_PinNames() {
	def, _ := network.Compile([]string{"A", "B", "C"}, []string{"A & !C", "A | C", "!B"})
	knockout, _ := def.PinNames(map[string]bool{"A": false})
	fmt.Println(knockout.RuleString(0))
	// Output:
	// false
}
