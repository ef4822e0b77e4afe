// Package tourney schedules round-robin tournaments: every fixture gets a
// round so that no club plays twice in a round, no round holds more than its
// capacity, rival clubs never both host in the same round, and fixtures stay
// out of the rounds their rules forbid.
//
// What is inside?
//
//	fixture/   — teams, fixtures, round labels and fixture generation
//	conflict/  — the conflict graph: one node per fixture, an edge per clash
//	rules/     — forbidden-round rules, exact or selected by expression
//	engine/    — validity predicate, backtracking search, schedule audit
//	satcheck/  — independent SAT feasibility oracle (gini)
//	schedule/  — grouped text, styled terminal output, Graphviz diagrams
//	config/    — YAML tournament files and the built-in sample
//	cmd/       — the tourney command line tool
//
// Pipeline:
//
//	teams ──Generate──▶ fixtures ──Build──▶ conflict graph
//	                                   │
//	rules ──NewForbiddenMap──▶ forbidden map
//	                                   ▼
//	                   engine.Solve ──▶ Result{Status, Assignment}
//	                                   ▼
//	                  schedule.ByRound / Render / WriteDOT
//
// Outcomes are Solved, Infeasible (a proof, not an error), Cancelled and
// Aborted. Identical inputs give identical schedules.
//
//	go install github.com/katalvlaran/tourney/cmd/tourney@latest
package tourney
