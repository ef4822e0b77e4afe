// SPDX-License-Identifier: MIT
// Package: tourney/rules
//
// types.go — Forbidden rule, ForbiddenMap and sentinel errors.

package rules

import (
	"errors"

	"github.com/katalvlaran/tourney/fixture"
)

var (
	// ErrRoundOutOfRange indicates a rule round index below 1.
	// Upper bounds depend on the round budget and are checked by the engine.
	ErrRoundOutOfRange = errors.New("rules: round index out of range")

	// ErrBadRule indicates a structurally invalid rule.
	ErrBadRule = errors.New("rules: malformed rule")

	// ErrUnknownFixture indicates a rule naming a fixture that is not scheduled.
	ErrUnknownFixture = errors.New("rules: unknown fixture")

	// ErrBadMatch indicates a Match expression that cannot be used.
	ErrBadMatch = errors.New("rules: bad match expression")
)

// Forbidden excludes Rounds for the fixture Home x Away, or for every fixture
// selected by Match.
type Forbidden struct {
	Home fixture.Team
	Away fixture.Team

	// Rounds lists the disallowed round indices (1-based).
	Rounds []fixture.Round

	// Directed restricts the rule to Home x Away only. When false the rule
	// also binds Away x Home.
	Directed bool

	// Match selects fixtures by expression instead of Home/Away.
	Match string
}

// roundSet is a small set of rounds.
type roundSet map[fixture.Round]struct{}

func (s roundSet) add(rs []fixture.Round) {
	for _, r := range rs {
		s[r] = struct{}{}
	}
}

// ForbiddenMap answers "is fixture f barred from round r?". It is immutable
// after construction. A nil *ForbiddenMap forbids nothing.
type ForbiddenMap struct {
	exact map[fixture.Fixture]roundSet // directed and Match rules
	pair  map[fixture.PairKey]roundSet // direction-agnostic rules
	max   fixture.Round
	rules int
}
