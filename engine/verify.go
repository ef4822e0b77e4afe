// SPDX-License-Identifier: MIT
// Package: tourney/engine
//
// verify.go — independent audit of a complete assignment.

package engine

import (
	"fmt"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

// Verify checks that a is a total assignment of g's fixtures that respects
// the round budget, forbidden rounds, capacity and every conflict edge.
// It returns the first violation found, scanning fixtures in graph order.
//
// Complexity: O(F + E).
func Verify(g *conflict.Graph, fm *rules.ForbiddenMap, a Assignment, maxRounds, capacity int) error {
	if g == nil {
		return ErrGraphNil
	}
	if maxRounds <= 0 {
		return fmt.Errorf("Verify: max rounds=%d: %w", maxRounds, ErrBadMaxRounds)
	}
	if capacity <= 0 {
		return fmt.Errorf("Verify: capacity=%d: %w", capacity, ErrBadCapacity)
	}
	if len(a) != g.Len() {
		for f := range a {
			if _, ok := g.Index(f); !ok {
				return fmt.Errorf("Verify: fixture %s is not in the graph: %w", f, ErrIncomplete)
			}
		}
	}

	load := make(map[fixture.Round]int, maxRounds)
	for i := 0; i < g.Len(); i++ {
		f := g.Fixture(i)
		r, ok := a[f]
		if !ok {
			return fmt.Errorf("Verify: fixture %s has no round: %w", f, ErrIncomplete)
		}
		if !r.Valid(maxRounds) {
			return fmt.Errorf("Verify: fixture %s in %s: %w", f, r, ErrRoundOutOfRange)
		}
		if fm.Forbids(f, r) {
			return fmt.Errorf("Verify: fixture %s in %s: %w", f, r, ErrForbiddenRound)
		}
		load[r]++
		if load[r] > capacity {
			return fmt.Errorf("Verify: %s holds more than %d fixtures: %w", r, capacity, ErrOverCapacity)
		}
	}

	for _, e := range g.Edges() {
		if a[e.From] == a[e.To] {
			return fmt.Errorf("Verify: %s and %s both in %s (%s): %w", e.From, e.To, a[e.From], e.Reason, ErrConflict)
		}
	}
	return nil
}
