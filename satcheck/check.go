// SPDX-License-Identifier: MIT
// Package: tourney/satcheck
//
// check.go — CNF encoding and solving.
//
// Complexity:
//   • Encoding: O(F·R + E·R) clauses plus O(F·R·log²R + R·F·log²F) gates
//     for the sorting networks.
//   • Solving: exponential in the worst case; cancellable through ctx.

package satcheck

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

// pollInterval is how often a running solve checks for cancellation.
const pollInterval = 5 * time.Millisecond

// gini Solve results.
const (
	sat   = 1
	unsat = -1
)

// Verdict is the oracle's answer.
type Verdict struct {
	// Feasible reports whether a valid schedule exists.
	Feasible bool

	// Assignment is a witness schedule when Feasible, nil otherwise.
	Assignment engine.Assignment

	// Reason names the precheck that settled an infeasible instance, or
	// "unsatisfiable" when the solver proved it.
	Reason string
}

// Check decides whether g's fixtures fit into maxRounds rounds of capacity
// fixtures while honoring fm and every conflict edge.
//
// Configuration errors reuse the engine sentinels (engine.ErrBadMaxRounds,
// engine.ErrBadCapacity, engine.ErrRoundOutOfRange). A cancelled ctx yields
// an error wrapping engine.ErrCancelled.
func Check(ctx context.Context, g *conflict.Graph, fm *rules.ForbiddenMap, maxRounds, capacity int) (*Verdict, error) {
	if g == nil {
		return nil, engine.ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if maxRounds <= 0 {
		return nil, fmt.Errorf("Check: max rounds=%d: %w", maxRounds, engine.ErrBadMaxRounds)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("Check: capacity=%d: %w", capacity, engine.ErrBadCapacity)
	}
	if top := fm.MaxRound(); int(top) > maxRounds {
		return nil, fmt.Errorf("Check: forbidden rule names %s beyond R%d: %w", top, maxRounds, engine.ErrRoundOutOfRange)
	}

	if capacity*maxRounds < g.Len() {
		return &Verdict{Reason: "pigeonhole"}, nil
	}
	for i := 0; i < g.Len(); i++ {
		if fm.AllForbidden(g.Fixture(i), maxRounds) {
			return &Verdict{Reason: "dead fixture " + g.Fixture(i).String()}, nil
		}
	}

	enc := encode(g, fm, maxRounds, capacity)
	s := gini.New()
	enc.c.ToCnf(s)
	for _, m := range enc.constraints {
		s.Add(m)
		s.Add(z.LitNull)
	}

	result, err := solve(ctx, s)
	if err != nil {
		return nil, err
	}
	switch result {
	case sat:
		return &Verdict{Feasible: true, Assignment: enc.decode(g, s)}, nil
	case unsat:
		return &Verdict{Reason: "unsatisfiable"}, nil
	default:
		return nil, fmt.Errorf("Check: solver returned %d", result)
	}
}

// encoding holds the circuit and its variable layout.
type encoding struct {
	c           *logic.C
	x           [][]z.Lit // x[i][r-1]
	constraints []z.Lit
}

func encode(g *conflict.Graph, fm *rules.ForbiddenMap, maxRounds, capacity int) *encoding {
	n := g.Len()
	e := &encoding{
		c: logic.NewCCap(n * maxRounds * 4),
		x: make([][]z.Lit, n),
	}
	for i := range e.x {
		e.x[i] = make([]z.Lit, maxRounds)
		for r := range e.x[i] {
			e.x[i][r] = e.c.Lit()
		}
	}

	for i := 0; i < n; i++ {
		f := g.Fixture(i)
		e.constraints = append(e.constraints,
			e.c.Ors(e.x[i]...),
			e.c.CardSort(append([]z.Lit(nil), e.x[i]...)).Leq(1),
		)
		for r := 1; r <= maxRounds; r++ {
			if fm.Forbids(f, fixture.Round(r)) {
				e.constraints = append(e.constraints, e.x[i][r-1].Not())
			}
		}
		for _, j := range g.Neighbors(i) {
			if j < i {
				continue
			}
			for r := 0; r < maxRounds; r++ {
				e.constraints = append(e.constraints, e.c.Or(e.x[i][r].Not(), e.x[j][r].Not()))
			}
		}
	}

	column := make([]z.Lit, n)
	for r := 0; r < maxRounds; r++ {
		for i := 0; i < n; i++ {
			column[i] = e.x[i][r]
		}
		e.constraints = append(e.constraints, e.c.CardSort(append([]z.Lit(nil), column...)).Leq(capacity))
	}
	return e
}

func (e *encoding) decode(g *conflict.Graph, s *gini.Gini) engine.Assignment {
	a := make(engine.Assignment, g.Len())
	for i, row := range e.x {
		for r, m := range row {
			if s.Value(m) {
				a[g.Fixture(i)] = fixture.Round(r + 1)
				break
			}
		}
	}
	return a
}

// solve runs the solver in the background and stops it if ctx ends first.
func solve(ctx context.Context, s *gini.Gini) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("Check: %w: %w", engine.ErrCancelled, err)
	}
	run := s.GoSolve()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if result, done := run.Test(); done {
			return result, nil
		}
		select {
		case <-ctx.Done():
			run.Stop()
			return 0, fmt.Errorf("Check: %w: %w", engine.ErrCancelled, ctx.Err())
		case <-ticker.C:
		}
	}
}
