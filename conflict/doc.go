// Package conflict builds the fixture conflict graph consumed by the round
// assignment engine.
//
// Nodes are fixtures, indexed densely 0..N-1 in input order. An undirected
// edge joins two fixtures that must not share a round:
//
//   - Shared team: the fixtures have at least one team in common.
//   - Home exclusivity: a rule {A, B} links any fixture hosted by A with any
//     fixture hosted by B (the two clubs cannot both play at home in the
//     same round).
//
// The graph has no self-loops and no parallel edges. It is immutable once
// Build returns, so it may be shared freely between goroutines and searches.
//
// Complexity:
//
//   - Build:      Time O(N² + R), Memory O(N + E) for N fixtures, R rules.
//   - Neighbors:  O(1), returns the internal sorted slice (read-only).
//   - HasEdge:    O(log d) via binary search on the sorted neighbor slice.
//
// Errors:
//
//   - ErrNoFixtures        empty fixture list
//   - ErrUnknownTeam       fixture or rule names a team not in the team list
//   - ErrSelfFixture       fixture with home == away
//   - ErrDuplicateFixture  same ordered fixture listed twice
//   - ErrBadExclusivity    exclusivity rule pairing a team with itself
//   - ErrFixtureNotFound   lookup of a fixture that is not a node
package conflict
