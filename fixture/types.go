// SPDX-License-Identifier: MIT
// Package: tourney/fixture
//
// types.go — Team, Fixture, PairKey and Round value types.

package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewTeams indicates that fewer than two teams were supplied.
	ErrTooFewTeams = errors.New("fixture: at least two teams are required")

	// ErrEmptyTeam indicates an empty team identifier.
	ErrEmptyTeam = errors.New("fixture: team identifier is empty")

	// ErrDuplicateTeam indicates the same team was listed more than once.
	ErrDuplicateTeam = errors.New("fixture: duplicate team")

	// ErrBadLegs indicates an unsupported number of legs.
	ErrBadLegs = errors.New("fixture: legs must be 1 or 2")
)

// Team identifies a tournament participant.
type Team string

// Fixture is a single match with a designated home side.
// Fixtures are comparable and usable as map keys.
type Fixture struct {
	Home Team
	Away Team
}

// New returns the fixture home vs away.
func New(home, away Team) Fixture {
	return Fixture{Home: home, Away: away}
}

// Reverse returns the return leg (home and away swapped).
func (f Fixture) Reverse() Fixture {
	return Fixture{Home: f.Away, Away: f.Home}
}

// Key returns the direction-agnostic key of f: Key(A,B) == Key(B,A).
func (f Fixture) Key() PairKey {
	return NewPairKey(f.Home, f.Away)
}

// Involves reports whether t plays in f on either side.
func (f Fixture) Involves(t Team) bool {
	return f.Home == t || f.Away == t
}

// SharesTeam reports whether f and o have at least one team in common.
func (f Fixture) SharesTeam(o Fixture) bool {
	return f.Involves(o.Home) || f.Involves(o.Away)
}

// String renders the fixture as "HOME x AWAY".
func (f Fixture) String() string {
	return fmt.Sprintf("%s x %s", f.Home, f.Away)
}

// Less orders fixtures by home team, then away team.
func (f Fixture) Less(o Fixture) bool {
	if f.Home != o.Home {
		return f.Home < o.Home
	}
	return f.Away < o.Away
}

// PairKey is an unordered team pair stored canonically (A <= B).
type PairKey struct {
	A Team
	B Team
}

// NewPairKey returns the canonical key for the unordered pair {a, b}.
func NewPairKey(a, b Team) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// String renders the key as "A-B".
func (k PairKey) String() string {
	return fmt.Sprintf("%s-%s", k.A, k.B)
}

// Round is a 1-based round index. The zero value means "unassigned".
type Round int

// Unassigned marks a fixture that has no round yet.
const Unassigned Round = 0

// String renders the round label, e.g. "R7".
func (r Round) String() string {
	return fmt.Sprintf("R%d", int(r))
}

// Valid reports whether r lies in the domain 1..n.
func (r Round) Valid(n int) bool {
	return r >= 1 && int(r) <= n
}

// Rounds returns the ordered round domain R1..Rn.
// A non-positive n yields an empty slice.
func Rounds(n int) []Round {
	if n <= 0 {
		return []Round{}
	}
	out := make([]Round, n)
	for i := range out {
		out[i] = Round(i + 1)
	}
	return out
}
