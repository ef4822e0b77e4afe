// SPDX-License-Identifier: MIT
// Package: tourney/config
//
// problem.go — from document to solvable problem.
//
// Pipeline:
//   1. Validate the document
//   2. Generate fixtures in search order
//   3. Build the conflict graph with home-exclusivity edges
//   4. Compile forbidden-round rules

package config

import (
	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

// Problem is everything the engine needs for one tournament.
type Problem struct {
	Teams     []fixture.Team
	Fixtures  []fixture.Fixture
	Graph     *conflict.Graph
	Forbidden *rules.ForbiddenMap
	MaxRounds int
	Capacity  int
}

// Build validates t and assembles its Problem. Errors from the fixture,
// conflict and rules packages are returned wrapped in ErrInvalidConfig, so
// both sentinels match with errors.Is.
func (t *Tournament) Build() (*Problem, error) {
	// 1. Validate
	if err := t.Validate(); err != nil {
		return nil, err
	}

	// 2. Fixtures
	teams := teamList(t.Teams)
	genOpts := []fixture.Option{fixture.WithLegs(t.Legs)}
	if t.InterleaveLegs {
		genOpts = append(genOpts, fixture.WithInterleavedLegs())
	}
	fixtures, err := fixture.Generate(teams, genOpts...)
	if err != nil {
		return nil, invalid("teams", err)
	}

	// 3. Conflict graph
	excl := make([]conflict.Exclusivity, len(t.HomeExclusivity))
	for i, pair := range t.HomeExclusivity {
		excl[i] = conflict.Exclusivity{A: fixture.Team(pair[0]), B: fixture.Team(pair[1])}
	}
	g, err := conflict.Build(teams, fixtures, conflict.WithHomeExclusivity(excl...))
	if err != nil {
		return nil, invalid("home_exclusivity", err)
	}

	// 4. Forbidden rounds
	forbidden := make([]rules.Forbidden, len(t.ForbiddenRounds))
	for i, rule := range t.ForbiddenRounds {
		f := rules.Forbidden{Match: rule.Match, Directed: rule.Directed}
		if len(rule.Fixture) == 2 {
			f.Home, f.Away = fixture.Team(rule.Fixture[0]), fixture.Team(rule.Fixture[1])
		}
		f.Rounds = make([]fixture.Round, len(rule.Rounds))
		for j, r := range rule.Rounds {
			f.Rounds[j] = fixture.Round(r)
		}
		forbidden[i] = f
	}
	fm, err := rules.NewForbiddenMap(fixtures, forbidden...)
	if err != nil {
		return nil, invalid("forbidden_rounds", err)
	}

	return &Problem{
		Teams:     teams,
		Fixtures:  fixtures,
		Graph:     g,
		Forbidden: fm,
		MaxRounds: t.MaxRounds,
		Capacity:  t.Capacity,
	}, nil
}

// Options returns the engine options that describe p's limits and rules.
func (p *Problem) Options() []engine.Option {
	return []engine.Option{
		engine.WithMaxRounds(p.MaxRounds),
		engine.WithCapacity(p.Capacity),
		engine.WithForbidden(p.Forbidden),
	}
}
