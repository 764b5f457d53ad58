// Package config loads and validates a boolnet run description.
//
// A run file is YAML with two sections:
//
//	run:
//	  exhaustive_threshold_bits: 14   # enumerate all 2^N states up to this N
//	  sample_size: 10000              # states drawn when N is above the threshold
//	  random_seed: 0                  # 0 selects the fixed default seed
//	  strategy: trajectory            # trajectory | graph
//	  workers: 4                      # parallel tracers (trajectory strategy)
//	  closure: false                  # graph strategy: expand the reachable STG
//	  max_trajectory: 0               # 0 means unbounded
//	  timeout: 0s                     # 0 means none
//	network:
//	  nodes:
//	    - {name: A, rule: "A & !C"}
//	    - {name: B, rule: "A | C"}
//	    - {name: C, rule: "!B"}
//	  pins: {B: true}                 # optional knock-in / knock-out
//
// Missing run fields keep their Default values. BOOLNET_* environment
// variables override the file (BOOLNET_STRATEGY, BOOLNET_SAMPLE_SIZE, ...).
// Validate applies go-playground/validator struct tags.
package config
