package satcheck_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
	"github.com/katalvlaran/tourney/satcheck"
)

func build(t *testing.T, teams []fixture.Team, excl []conflict.Exclusivity, forbidden ...rules.Forbidden) (*conflict.Graph, *rules.ForbiddenMap) {
	t.Helper()
	fs, err := fixture.Generate(teams)
	require.NoError(t, err)
	g, err := conflict.Build(teams, fs, conflict.WithHomeExclusivity(excl...))
	require.NoError(t, err)
	fm, err := rules.NewForbiddenMap(fs, forbidden...)
	require.NoError(t, err)
	return g, fm
}

func TestCheck_FeasibleWitnessIsValid(t *testing.T) {
	g, fm := build(t, []fixture.Team{"A", "B", "C", "D"}, nil,
		rules.Forbidden{Home: "A", Away: "B", Rounds: []fixture.Round{1, 2}})

	v, err := satcheck.Check(context.Background(), g, fm, 6, 2)
	require.NoError(t, err)
	require.True(t, v.Feasible)
	assert.NoError(t, engine.Verify(g, fm, v.Assignment, 6, 2))
}

func TestCheck_SampleTournament(t *testing.T) {
	teams := []fixture.Team{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"}
	g, fm := build(t, teams,
		[]conflict.Exclusivity{{A: "TFC", B: "OFC"}, {A: "AFC", B: "FFC"}},
		rules.Forbidden{Home: "DFC", Away: "CFC", Rounds: []fixture.Round{1, 14}},
		rules.Forbidden{Home: "LFC", Away: "FFC", Rounds: []fixture.Round{7, 13}},
		rules.Forbidden{Home: "OFC", Away: "LFC", Rounds: []fixture.Round{10, 11}},
		rules.Forbidden{Home: "AFC", Away: "FFC", Rounds: []fixture.Round{12, 13}},
		rules.Forbidden{Home: "CFC", Away: "TFC", Rounds: []fixture.Round{2, 3}},
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	v, err := satcheck.Check(ctx, g, fm, 14, 3)
	require.NoError(t, err)
	require.True(t, v.Feasible)
	assert.NoError(t, engine.Verify(g, fm, v.Assignment, 14, 3))
}

// The oracle and the engine must agree on small instances.
func TestCheck_AgreesWithEngine(t *testing.T) {
	g, fm := build(t, []fixture.Team{"A", "B", "C"}, nil)
	cases := []struct{ rounds, capacity int }{
		{2, 3}, {5, 1}, {6, 1}, {6, 2}, {7, 1},
	}
	for _, tc := range cases {
		v, err := satcheck.Check(context.Background(), g, fm, tc.rounds, tc.capacity)
		require.NoError(t, err)
		res, err := engine.Solve(g, engine.WithMaxRounds(tc.rounds), engine.WithCapacity(tc.capacity))
		require.NoError(t, err)
		assert.Equal(t, res.Solved(), v.Feasible, "rounds=%d capacity=%d", tc.rounds, tc.capacity)
	}
}

func TestCheck_Unsatisfiable(t *testing.T) {
	// Six mutually conflicting fixtures, five rounds: pigeonhole passes
	// (capacity 2) but the clique does not fit.
	g, fm := build(t, []fixture.Team{"A", "B", "C"}, nil)
	v, err := satcheck.Check(context.Background(), g, fm, 5, 2)
	require.NoError(t, err)
	assert.False(t, v.Feasible)
	assert.Nil(t, v.Assignment)
	assert.Equal(t, "unsatisfiable", v.Reason)
}

func TestCheck_Prechecks(t *testing.T) {
	g, fm := build(t, []fixture.Team{"A", "B", "C", "D"}, nil,
		rules.Forbidden{Home: "C", Away: "D", Rounds: fixture.Rounds(6)})

	v, err := satcheck.Check(context.Background(), g, nil, 5, 2)
	require.NoError(t, err)
	assert.False(t, v.Feasible)
	assert.Equal(t, "pigeonhole", v.Reason)

	v, err = satcheck.Check(context.Background(), g, fm, 6, 2)
	require.NoError(t, err)
	assert.False(t, v.Feasible)
	assert.Equal(t, "dead fixture C x D", v.Reason)
}

func TestCheck_Errors(t *testing.T) {
	g, _ := build(t, []fixture.Team{"A", "B"}, nil)
	fm, err := rules.NewForbiddenMap(g.Fixtures(), rules.Forbidden{Home: "A", Away: "B", Rounds: []fixture.Round{9}})
	require.NoError(t, err)

	_, err = satcheck.Check(context.Background(), nil, nil, 2, 1)
	assert.ErrorIs(t, err, engine.ErrGraphNil)
	_, err = satcheck.Check(context.Background(), g, nil, 0, 1)
	assert.ErrorIs(t, err, engine.ErrBadMaxRounds)
	_, err = satcheck.Check(context.Background(), g, nil, 2, 0)
	assert.ErrorIs(t, err, engine.ErrBadCapacity)
	_, err = satcheck.Check(context.Background(), g, fm, 2, 1)
	assert.ErrorIs(t, err, engine.ErrRoundOutOfRange)
	assert.True(t, engine.IsConfigurationError(err))
}

func TestCheck_Cancelled(t *testing.T) {
	g, fm := build(t, []fixture.Team{"A", "B", "C"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := satcheck.Check(ctx, g, fm, 6, 1)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, engine.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}
