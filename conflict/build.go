// SPDX-License-Identifier: MIT
// Package: tourney/conflict
//
// build.go — Build constructor.
//
// Contract:
//   • Teams are validated with fixture.ValidateTeams.
//   • Every fixture names two distinct known teams; ordered fixtures are unique.
//   • Every exclusivity rule names two distinct known teams.
//   • Each unordered fixture pair {i,j} is examined once; neighbor slices come
//     out sorted because pairs are visited in lexicographic (i,j) order.

package conflict

import (
	"fmt"

	"github.com/katalvlaran/tourney/fixture"
)

const methodBuild = "Build"

// Build derives the conflict graph of fixtures played between teams.
func Build(teams []fixture.Team, fixtures []fixture.Fixture, opts ...Option) (*Graph, error) {
	cfg := buildConfig{sharedTeams: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := fixture.ValidateTeams(teams); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNoFixtures)
	}

	known := make(map[fixture.Team]struct{}, len(teams))
	for _, t := range teams {
		known[t] = struct{}{}
	}

	g := &Graph{
		teams:    append([]fixture.Team(nil), teams...),
		fixtures: append([]fixture.Fixture(nil), fixtures...),
		index:    make(map[fixture.Fixture]int, len(fixtures)),
		adj:      make([][]int, len(fixtures)),
		reasons:  make(map[[2]int]Reason),
	}
	for i, f := range g.fixtures {
		if f.Home == f.Away {
			return nil, fmt.Errorf("%s: fixture %s: %w", methodBuild, f, ErrSelfFixture)
		}
		for _, t := range [2]fixture.Team{f.Home, f.Away} {
			if _, ok := known[t]; !ok {
				return nil, fmt.Errorf("%s: fixture %s: team %q: %w", methodBuild, f, t, ErrUnknownTeam)
			}
		}
		if _, dup := g.index[f]; dup {
			return nil, fmt.Errorf("%s: fixture %s: %w", methodBuild, f, ErrDuplicateFixture)
		}
		g.index[f] = i
	}

	exclusive := make(map[fixture.PairKey]struct{}, len(cfg.exclusivity))
	for _, rule := range cfg.exclusivity {
		if rule.A == rule.B {
			return nil, fmt.Errorf("%s: rule {%s,%s}: %w", methodBuild, rule.A, rule.B, ErrBadExclusivity)
		}
		for _, t := range [2]fixture.Team{rule.A, rule.B} {
			if _, ok := known[t]; !ok {
				return nil, fmt.Errorf("%s: rule {%s,%s}: team %q: %w", methodBuild, rule.A, rule.B, t, ErrUnknownTeam)
			}
		}
		exclusive[fixture.NewPairKey(rule.A, rule.B)] = struct{}{}
	}

	n := len(g.fixtures)
	for i := 0; i < n; i++ {
		fi := g.fixtures[i]
		for j := i + 1; j < n; j++ {
			fj := g.fixtures[j]

			var reason Reason
			if cfg.sharedTeams && fi.SharesTeam(fj) {
				reason |= SharedTeam
			}
			if fi.Home != fj.Home {
				if _, ok := exclusive[fixture.NewPairKey(fi.Home, fj.Home)]; ok {
					reason |= HomeExclusivity
				}
			}
			if reason == 0 {
				continue
			}

			g.adj[i] = append(g.adj[i], j)
			g.adj[j] = append(g.adj[j], i)
			g.reasons[[2]int{i, j}] = reason
			g.edges++
		}
	}

	return g, nil
}
