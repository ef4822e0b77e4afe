// SPDX-License-Identifier: MIT
// Package: tourney/engine
//
// types.go — Assignment, RoundLoad, Status, Result and sentinel errors.

package engine

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

var (
	// ErrGraphNil is returned when Solve or Verify receive a nil graph.
	ErrGraphNil = errors.New("engine: graph is nil")

	// ErrBadMaxRounds indicates a non-positive round budget.
	ErrBadMaxRounds = errors.New("engine: max rounds must be positive")

	// ErrBadCapacity indicates a non-positive per-round capacity.
	ErrBadCapacity = errors.New("engine: capacity per round must be positive")

	// ErrRoundOutOfRange indicates a round outside 1..max rounds, either in a
	// forbidden-round rule or in an assignment under verification.
	ErrRoundOutOfRange = errors.New("engine: round out of range")

	// ErrCancelled marks a search stopped by its context. The result is
	// inconclusive and must not be read as infeasibility.
	ErrCancelled = errors.New("engine: search cancelled")

	// ErrIncomplete indicates an assignment that misses a fixture or names
	// a fixture outside the graph.
	ErrIncomplete = errors.New("engine: assignment is not total")

	// ErrConflict indicates two conflicting fixtures sharing a round.
	ErrConflict = errors.New("engine: conflicting fixtures share a round")

	// ErrOverCapacity indicates a round holding more fixtures than allowed.
	ErrOverCapacity = errors.New("engine: round over capacity")

	// ErrForbiddenRound indicates a fixture placed in a forbidden round.
	ErrForbiddenRound = errors.New("engine: fixture in forbidden round")
)

// IsConfigurationError reports whether err stems from invalid configuration
// rather than from the search itself. Such errors are raised before search
// and retrying with the same input cannot succeed.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrBadMaxRounds) ||
		errors.Is(err, ErrBadCapacity) ||
		errors.Is(err, ErrRoundOutOfRange) ||
		errors.Is(err, rules.ErrRoundOutOfRange)
}

// Assignment maps fixtures to rounds. A returned Assignment is total.
type Assignment map[fixture.Fixture]fixture.Round

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for f, r := range a {
		out[f] = r
	}
	return out
}

// Load counts the fixtures per round.
func (a Assignment) Load() RoundLoad {
	load := make(RoundLoad)
	for _, r := range a {
		load[r]++
	}
	return load
}

// RoundLoad maps a round to the number of fixtures assigned to it.
type RoundLoad map[fixture.Round]int

// Status classifies the outcome of Solve.
type Status int

const (
	// StatusSolved means a total valid assignment was found.
	StatusSolved Status = iota
	// StatusInfeasible means the search space was exhausted (or a precheck
	// proved it empty): no valid assignment exists.
	StatusInfeasible
	// StatusCancelled means the context ended the search early.
	StatusCancelled
	// StatusAborted means the node limit or a hook error ended the search.
	StatusAborted
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInfeasible:
		return "infeasible"
	case StatusCancelled:
		return "cancelled"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stats reports search effort.
type Stats struct {
	// Nodes counts search-node entries, including the final success node.
	Nodes int64
	// Backtracks counts undone commitments.
	Backtracks int64
	// Elapsed is the wall time spent inside Solve.
	Elapsed time.Duration
}

// Result is the outcome of Solve.
type Result struct {
	Status Status

	// Assignment is total when Status == StatusSolved, nil otherwise.
	Assignment Assignment

	// Load holds the per-round counts of Assignment for every round
	// 1..MaxRounds (zeros included) when solved, nil otherwise.
	Load RoundLoad

	Stats Stats

	// Reason explains non-solved outcomes in one line.
	Reason string
}

// Solved reports whether r carries a total valid assignment.
func (r *Result) Solved() bool {
	return r != nil && r.Status == StatusSolved
}

// Conclusive reports whether r is a definite answer (solved or proven infeasible).
func (r *Result) Conclusive() bool {
	return r != nil && (r.Status == StatusSolved || r.Status == StatusInfeasible)
}
