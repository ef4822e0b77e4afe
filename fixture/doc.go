// Package fixture defines the scheduling vocabulary shared by every other
// package: teams, fixtures (ordered home/away pairs), direction-agnostic pair
// keys and the bounded round domain.
//
// What:
//
//   - Team: opaque team identifier (non-empty string).
//   - Fixture: ordered (Home, Away) pair. (A,B) and (B,A) are distinct.
//   - PairKey: canonical unordered pair, used for direction-agnostic lookups.
//   - Round: 1-based round index, printed as "R1", "R2", ...
//   - Generate: builds the full fixture list of a round-robin tournament.
//
// Determinism:
//
//	Generate emits every unordered pair {t_i, t_j} (i<j, team order) as
//	(t_i, t_j) first, then the return legs (t_j, t_i) in the same pair order.
//	Downstream search processes fixtures in exactly this order.
//
// Complexity:
//
//   - Generate: Time O(T²), Memory O(T²) for T teams.
//
// Errors:
//
//   - ErrTooFewTeams    fewer than two teams
//   - ErrEmptyTeam      a team identifier is empty
//   - ErrDuplicateTeam  a team identifier appears twice
//   - ErrBadLegs        legs outside {1, 2}
package fixture
