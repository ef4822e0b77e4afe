// SPDX-License-Identifier: MIT
// Package: tourney/fixture
//
// generate.go — round-robin fixture list generation.
//
// Contract:
//   • len(teams) ≥ 2, identifiers non-empty and unique.
//   • Emits each unordered pair {i,j} with i<j exactly once per leg.
//   • Default (two legs, grouped): all first legs (t_i,t_j) in lexicographic
//     (i,j) order, then all return legs (t_j,t_i) in the same order.
//   • WithInterleavedLegs: (t_i,t_j),(t_j,t_i) are emitted back to back.
//
// Complexity:
//   • Time O(T²), Space O(T²).

package fixture

import "fmt"

const (
	methodGenerate = "Generate"
	minTeams       = 2
	defaultLegs    = 2
)

// Option customizes fixture generation.
type Option func(*generateConfig)

type generateConfig struct {
	legs        int
	interleaved bool
}

// WithLegs sets the number of legs: 1 (single round-robin) or 2 (home and away).
// Other values are reported by Generate as ErrBadLegs.
func WithLegs(n int) Option {
	return func(c *generateConfig) { c.legs = n }
}

// WithInterleavedLegs emits each return leg right after its first leg.
// It has no effect on single round-robin generation.
func WithInterleavedLegs() Option {
	return func(c *generateConfig) { c.interleaved = true }
}

// Generate returns every fixture of a round-robin tournament between teams.
// The result order is deterministic and forms the search order of the engine.
func Generate(teams []Team, opts ...Option) ([]Fixture, error) {
	cfg := generateConfig{legs: defaultLegs}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.legs != 1 && cfg.legs != 2 {
		return nil, fmt.Errorf("%s: legs=%d: %w", methodGenerate, cfg.legs, ErrBadLegs)
	}
	if err := ValidateTeams(teams); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	n := len(teams)
	pairs := n * (n - 1) / 2
	out := make([]Fixture, 0, pairs*cfg.legs)

	// First legs, optionally followed immediately by their return leg.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Fixture{Home: teams[i], Away: teams[j]})
			if cfg.legs == 2 && cfg.interleaved {
				out = append(out, Fixture{Home: teams[j], Away: teams[i]})
			}
		}
	}
	if cfg.legs == 1 || cfg.interleaved {
		return out, nil
	}

	// Return legs mirror the first-leg order.
	for k := 0; k < pairs; k++ {
		out = append(out, out[k].Reverse())
	}

	return out, nil
}

// ValidateTeams checks that teams has at least two unique, non-empty entries.
func ValidateTeams(teams []Team) error {
	if len(teams) < minTeams {
		return fmt.Errorf("got %d: %w", len(teams), ErrTooFewTeams)
	}
	seen := make(map[Team]struct{}, len(teams))
	for i, t := range teams {
		if t == "" {
			return fmt.Errorf("team #%d: %w", i, ErrEmptyTeam)
		}
		if _, dup := seen[t]; dup {
			return fmt.Errorf("team %q: %w", t, ErrDuplicateTeam)
		}
		seen[t] = struct{}{}
	}
	return nil
}
