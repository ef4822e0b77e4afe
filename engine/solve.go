// SPDX-License-Identifier: MIT
// Package: tourney/engine
//
// solve.go — backtracking search.
//
// State:
//   • round[i] is the round of node i (fixture.Unassigned when free).
//   • load[r] counts nodes with round r; load[r] == |{i : round[i] == r}|
//     holds on every node entry, and load[r] <= capacity always.
//   • Both slices belong to one search call stack and are never shared.

package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/fixture"
)

// halt records why the search stopped early.
type halt int

const (
	running halt = iota
	haltCancelled
	haltNodeLimit
	haltHook
)

// search is the mutable state of one Solve call.
type search struct {
	g     *conflict.Graph
	opts  Options
	round []fixture.Round
	load  []int // indexed by round, load[0] unused
	stats Stats

	halt    halt
	hookErr error
}

func (s *search) roundAt(i int) fixture.Round { return s.round[i] }

func (s *search) loadOf(r fixture.Round) int { return s.load[r] }

// Solve searches for a total assignment of g's fixtures to rounds.
//
// It returns a non-nil Result whenever err is nil. Infeasibility is a
// Status, not an error. On cancellation Solve returns both a Result with
// StatusCancelled and an error wrapping ErrCancelled and the context error.
func Solve(g *conflict.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply and validate options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxRounds <= 0 {
		return nil, fmt.Errorf("Solve: max rounds=%d: %w", o.MaxRounds, ErrBadMaxRounds)
	}
	if o.Capacity <= 0 {
		return nil, fmt.Errorf("Solve: capacity=%d: %w", o.Capacity, ErrBadCapacity)
	}
	if top := o.Forbidden.MaxRound(); int(top) > o.MaxRounds {
		return nil, fmt.Errorf("Solve: forbidden rule names %s beyond R%d: %w", top, o.MaxRounds, ErrRoundOutOfRange)
	}

	start := time.Now()
	log := o.Logger.With(
		zap.Int("fixtures", g.Len()),
		zap.Int("maxRounds", o.MaxRounds),
		zap.Int("capacity", o.Capacity),
	)

	// 3. Prechecks that settle infeasibility without searching
	if reason, ok := precheck(g, o); !ok {
		log.Debug("search skipped", zap.String("reason", reason))
		return &Result{
			Status: StatusInfeasible,
			Reason: reason,
			Stats:  Stats{Elapsed: time.Since(start)},
		}, nil
	}

	// 4. Search
	s := &search{
		g:     g,
		opts:  o,
		round: make([]fixture.Round, g.Len()),
		load:  make([]int, o.MaxRounds+1),
	}
	log.Debug("search started", zap.Int("edges", g.EdgeCount()))
	found := s.assign(0)
	s.stats.Elapsed = time.Since(start)

	log = log.With(
		zap.Int64("nodes", s.stats.Nodes),
		zap.Int64("backtracks", s.stats.Backtracks),
		zap.Duration("elapsed", s.stats.Elapsed),
	)

	// 5. Classify the outcome
	res := &Result{Stats: s.stats}
	switch {
	case found:
		res.Status = StatusSolved
		res.Assignment = make(Assignment, g.Len())
		for i, r := range s.round {
			res.Assignment[g.Fixture(i)] = r
		}
		res.Load = make(RoundLoad, o.MaxRounds)
		for r := 1; r <= o.MaxRounds; r++ {
			res.Load[fixture.Round(r)] = s.load[r]
		}
		log.Debug("search solved")
		return res, nil

	case s.halt == haltCancelled:
		res.Status = StatusCancelled
		res.Reason = "search cancelled before completion"
		log.Debug("search cancelled")
		return res, fmt.Errorf("Solve: %w: %w", ErrCancelled, o.Ctx.Err())

	case s.halt == haltNodeLimit:
		res.Status = StatusAborted
		res.Reason = fmt.Sprintf("node limit %d reached", o.NodeLimit)
		log.Debug("search aborted", zap.String("reason", res.Reason))
		return res, nil

	case s.halt == haltHook:
		res.Status = StatusAborted
		res.Reason = "OnAssign hook failed"
		log.Debug("search aborted", zap.Error(s.hookErr))
		return res, fmt.Errorf("Solve: OnAssign: %w", s.hookErr)

	default:
		res.Status = StatusInfeasible
		res.Reason = "search space exhausted"
		log.Debug("search infeasible")
		return res, nil
	}
}

// precheck returns ok=false with a reason when the instance is trivially infeasible.
func precheck(g *conflict.Graph, o Options) (string, bool) {
	if o.Pigeonhole && o.Capacity*o.MaxRounds < g.Len() {
		return fmt.Sprintf("%d fixtures exceed %d slots (%d rounds x %d)",
			g.Len(), o.Capacity*o.MaxRounds, o.MaxRounds, o.Capacity), false
	}
	if o.DeadFixture && o.Forbidden != nil {
		for i := 0; i < g.Len(); i++ {
			if f := g.Fixture(i); o.Forbidden.AllForbidden(f, o.MaxRounds) {
				return fmt.Sprintf("fixture %s is forbidden in every round", f), false
			}
		}
	}
	return "", true
}

// stopped checks cancellation and the node budget; it latches s.halt.
func (s *search) stopped() bool {
	if s.halt != running {
		return true
	}
	select {
	case <-s.opts.Ctx.Done():
		s.halt = haltCancelled
		return true
	default:
	}
	if s.opts.NodeLimit > 0 && s.stats.Nodes >= s.opts.NodeLimit {
		s.halt = haltNodeLimit
		return true
	}
	return false
}

// assign places node i and everything after it. It returns true once every
// node holds a round; the successful branch is left in place.
func (s *search) assign(i int) bool {
	if s.stopped() {
		return false
	}
	s.stats.Nodes++
	if s.opts.ProgressEvery > 0 && s.stats.Nodes%s.opts.ProgressEvery == 0 {
		s.opts.Logger.Debug("search progress",
			zap.Int64("nodes", s.stats.Nodes),
			zap.Int64("backtracks", s.stats.Backtracks),
			zap.Int("depth", i),
		)
	}

	// Base case: every fixture is placed.
	if i == s.g.Len() {
		return true
	}

	f := s.g.Fixture(i)
	for r := fixture.Round(1); int(r) <= s.opts.MaxRounds; r++ {
		s.round[i] = r // tentative
		if valid(s.g, s.opts.Forbidden, s.opts.Capacity, i, r, s) {
			if s.opts.OnAssign != nil {
				if err := s.opts.OnAssign(f, r); err != nil {
					s.hookErr = err
					s.halt = haltHook
					s.round[i] = fixture.Unassigned
					return false
				}
			}
			s.load[r]++
			if s.assign(i + 1) {
				return true
			}
			s.load[r]--
			if s.halt != running {
				s.round[i] = fixture.Unassigned
				return false
			}
			s.stats.Backtracks++
		}
		s.round[i] = fixture.Unassigned
		if s.halt != running {
			return false
		}
	}
	return false
}
