// Package config reads tournament descriptions from YAML and turns them
// into a ready-to-solve Problem.
//
// Document shape:
//
//	teams: [DFC, TFC, AFC, LFC, FFC, OFC, CFC]
//	legs: 2                  # 1 = single round-robin, 2 = home and away
//	max_rounds: 14
//	capacity_per_round: 3
//	home_exclusivity:
//	  - [TFC, OFC]           # never both at home in one round
//	forbidden_rounds:
//	  - fixture: [DFC, CFC]
//	    rounds: [1, 14]
//	  - match: home == "LFC"
//	    rounds: [5]
//	    directed: true
//
// Omitted legs, max_rounds and capacity_per_round take the defaults (2,
// engine.DefaultMaxRounds, engine.DefaultCapacity); an explicit 0 is
// invalid. Unknown keys are rejected.
package config
