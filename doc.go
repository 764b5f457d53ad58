// Package boolnet finds the attractors of synchronous Boolean networks and
// measures their basins of attraction.
//
// What is here?
//
//	state/        fixed-width bit-vector states, order-preserving keys, codec
//	network/      rule grammar, expression trees, synchronous update, pinning
//	initstate/    exhaustive enumeration and seeded sampling of initial states
//	trajectory/   follow one state to its attractor
//	attractor/    rotation-invariant canonical form (Booth's algorithm)
//	basin/        concurrent registry, basin fractions, node activity
//	stg/          state transition graph, cycle detection, memoized basins
//	engine/       RunContext, trajectory and graph strategies, metrics
//	config/       YAML run files, BOOLNET_* overrides, validation
//	cmd/boolnet/  the command-line tool
//
// Quick start:
//
//	def, _ := network.Compile([]string{"A", "B", "C"},
//		[]string{"A & !C", "A | C", "!B"})
//	rep, _ := engine.Run(ctx, def, config.Default())
//	for _, e := range rep.Result.Entries {
//		fmt.Println(e.Attractor, e.Count, e.Fraction)
//	}
//
// Networks up to exhaustive_threshold_bits nodes are enumerated completely and
// report exact basin fractions; wider ones are sampled and the result says so.
package boolnet
