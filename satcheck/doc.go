// Package satcheck decides schedule feasibility with a SAT solver, as an
// oracle independent of the backtracking engine.
//
// Encoding (one boolean x[f][r] per fixture f and round r):
//
//   - exactly one round per fixture:   OR_r x[f][r]  and  Σ_r x[f][r] ≤ 1
//   - forbidden round:                 ¬x[f][r]
//   - conflict edge {f,g}:             ¬x[f][r] ∨ ¬x[g][r]  for every r
//   - capacity:                        Σ_f x[f][r] ≤ capacity
//
// Cardinality constraints use sorting networks (logic.CardSort) from
// github.com/go-air/gini; the circuit is flattened to CNF and handed to the
// gini CDCL solver.
//
// The same pigeonhole and dead-fixture prechecks as the engine run first:
// counting arguments are exponential for resolution-based solvers, so they
// are settled before encoding.
package satcheck
