// SPDX-License-Identifier: MIT
// Package: tourney/engine
//
// options.go — functional options for Solve.
//
// Defaults:
//   • Ctx            = context.Background()
//   • MaxRounds      = 14
//   • Capacity       = 3
//   • Forbidden      = nil (no rules)
//   • Logger         = zap.NewNop()
//   • ProgressEvery  = 0 (no progress lines)
//   • NodeLimit      = 0 (unbounded)
//   • Pigeonhole     = true
//   • DeadFixture    = true

package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

const (
	// DefaultMaxRounds is the default round budget.
	DefaultMaxRounds = 14
	// DefaultCapacity is the default number of fixtures per round.
	DefaultCapacity = 3
)

// Option configures Solve.
type Option func(*Options)

// Options holds the resolved search configuration.
type Options struct {
	// Ctx cancels the search; it is checked on every search node.
	Ctx context.Context

	MaxRounds int
	Capacity  int

	// Forbidden holds the forbidden-round rules; nil forbids nothing.
	Forbidden *rules.ForbiddenMap

	// Logger receives debug telemetry. Never nil after DefaultOptions.
	Logger *zap.Logger

	// ProgressEvery logs a progress line every n nodes when > 0.
	ProgressEvery int64

	// NodeLimit aborts the search after n nodes when > 0.
	NodeLimit int64

	// OnAssign, if non-nil, runs for every tentative assignment accepted by
	// the validity predicate, before descending. A non-nil error aborts.
	OnAssign func(f fixture.Fixture, r fixture.Round) error

	Pigeonhole  bool
	DeadFixture bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxRounds:   DefaultMaxRounds,
		Capacity:    DefaultCapacity,
		Logger:      zap.NewNop(),
		Pigeonhole:  true,
		DeadFixture: true,
	}
}

// WithContext sets the cancellation context. A nil ctx keeps Background.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxRounds sets the round budget. Non-positive values make Solve fail
// with ErrBadMaxRounds.
func WithMaxRounds(n int) Option {
	return func(o *Options) { o.MaxRounds = n }
}

// WithCapacity sets the per-round capacity. Non-positive values make Solve
// fail with ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithForbidden installs forbidden-round rules.
func WithForbidden(fm *rules.ForbiddenMap) Option {
	return func(o *Options) { o.Forbidden = fm }
}

// WithLogger installs a logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery logs a debug progress line every n search nodes.
func WithProgressEvery(n int64) Option {
	return func(o *Options) { o.ProgressEvery = n }
}

// WithNodeLimit bounds the number of search nodes; 0 means unbounded.
func WithNodeLimit(n int64) Option {
	return func(o *Options) { o.NodeLimit = n }
}

// WithOnAssign installs a hook called on every accepted tentative assignment.
func WithOnAssign(fn func(f fixture.Fixture, r fixture.Round) error) Option {
	return func(o *Options) { o.OnAssign = fn }
}

// WithPigeonholeCheck toggles the capacity*rounds < fixtures precheck.
func WithPigeonholeCheck(on bool) Option {
	return func(o *Options) { o.Pigeonhole = on }
}

// WithDeadFixtureCheck toggles the precheck for fixtures whose every round
// is forbidden.
func WithDeadFixtureCheck(on bool) Option {
	return func(o *Options) { o.DeadFixture = on }
}
