// Package engine assigns every fixture of a tournament to a round by
// depth-first backtracking over the fixture conflict graph.
//
// What:
//
//   - IsValid(f, r, a, load, g, fm, capacity): the validity predicate, usable
//     on its own. In order it rejects a forbidden round, a full round, and a
//     round already used by a conflicting (adjacent) fixture.
//   - Solve(g, opts...): deterministic backtracking. Fixtures are taken in
//     graph order, rounds are tried R1..Rmax, a round is committed only after
//     IsValid accepts it, and every failed descent undoes its load change
//     and tentative assignment before the next candidate is tried.
//   - Verify(g, fm, a, maxRounds, capacity): independent audit of a total
//     assignment.
//
// Outcomes:
//
//	StatusSolved      total assignment satisfying every constraint
//	StatusInfeasible  proven that no assignment exists (not an error)
//	StatusCancelled   context cancelled mid-search; inconclusive, err != nil
//	StatusAborted     node limit reached or hook failed; inconclusive
//
// Configuration errors (non-positive round budget or capacity, rule rounds
// beyond the budget) are returned before any search starts; see
// IsConfigurationError.
//
// Determinism:
//
//	Identical inputs and options yield identical results. When several
//	schedules exist the returned one is simply the first in enumeration
//	order, not a canonical or "best" schedule.
//
// Complexity:
//
//	Worst case O(Rmax^F) for F fixtures. Validity pruning runs before each
//	descent. Two optional O(F·Rmax) prechecks (pigeonhole and dead fixture)
//	settle trivially infeasible inputs without searching.
//
// Options:
//
//   - WithContext(ctx)           cancellation, checked on every search node
//   - WithMaxRounds(n)           round budget, default 14
//   - WithCapacity(n)            fixtures per round, default 3
//   - WithForbidden(fm)          forbidden-round rules
//   - WithLogger(l)              zap logger for progress telemetry
//   - WithProgressEvery(n)       log every n search nodes
//   - WithOnAssign(fn)           hook on every accepted tentative assignment
//   - WithNodeLimit(n)           abort after n search nodes
//   - WithPigeonholeCheck(on)    capacity*rounds < fixtures ⇒ infeasible
//   - WithDeadFixtureCheck(on)   fixture with every round forbidden ⇒ infeasible
package engine
