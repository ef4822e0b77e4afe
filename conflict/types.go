// SPDX-License-Identifier: MIT
// Package: tourney/conflict
//
// types.go — Graph, Edge, Reason, options and sentinel errors.

package conflict

import (
	"errors"
	"strings"

	"github.com/katalvlaran/tourney/fixture"
)

var (
	// ErrNoFixtures indicates an empty fixture list.
	ErrNoFixtures = errors.New("conflict: no fixtures")

	// ErrUnknownTeam indicates a reference to a team outside the team list.
	ErrUnknownTeam = errors.New("conflict: unknown team")

	// ErrSelfFixture indicates a fixture whose home and away teams coincide.
	ErrSelfFixture = errors.New("conflict: team cannot play itself")

	// ErrDuplicateFixture indicates the same ordered fixture was listed twice.
	ErrDuplicateFixture = errors.New("conflict: duplicate fixture")

	// ErrBadExclusivity indicates an exclusivity rule pairing a team with itself.
	ErrBadExclusivity = errors.New("conflict: exclusivity rule needs two distinct teams")

	// ErrFixtureNotFound indicates a lookup of a fixture that is not a node.
	ErrFixtureNotFound = errors.New("conflict: fixture not found")
)

// Reason records why two fixtures conflict. Values combine as bit flags.
type Reason uint8

const (
	// SharedTeam marks fixtures with a team in common.
	SharedTeam Reason = 1 << iota
	// HomeExclusivity marks fixtures linked by a home-exclusivity rule.
	HomeExclusivity
)

// String renders the reason flags, e.g. "shared-team|home-exclusivity".
func (r Reason) String() string {
	var parts []string
	if r&SharedTeam != 0 {
		parts = append(parts, "shared-team")
	}
	if r&HomeExclusivity != 0 {
		parts = append(parts, "home-exclusivity")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Exclusivity forbids fixtures hosted by A and fixtures hosted by B from
// sharing a round. The rule is symmetric: {A,B} and {B,A} are the same rule.
type Exclusivity struct {
	A fixture.Team
	B fixture.Team
}

// Edge is one undirected conflict. From precedes To in fixture order.
type Edge struct {
	From   fixture.Fixture
	To     fixture.Fixture
	Reason Reason
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	exclusivity []Exclusivity
	sharedTeams bool
}

// WithHomeExclusivity adds home-exclusivity rules. Repeated use accumulates.
func WithHomeExclusivity(rules ...Exclusivity) Option {
	return func(c *buildConfig) {
		c.exclusivity = append(c.exclusivity, rules...)
	}
}

// WithoutSharedTeams disables shared-team edges, leaving only rule edges.
// Useful for isolating rule effects in experiments; real schedules need them.
func WithoutSharedTeams() Option {
	return func(c *buildConfig) { c.sharedTeams = false }
}

// Graph is an immutable conflict graph over fixtures.
type Graph struct {
	teams    []fixture.Team
	fixtures []fixture.Fixture
	index    map[fixture.Fixture]int

	// adj[i] holds the neighbor indices of fixture i, sorted ascending.
	adj [][]int
	// reasons[[2]int{i, j}] with i<j.
	reasons map[[2]int]Reason
	edges   int
}
