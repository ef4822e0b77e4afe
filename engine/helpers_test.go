package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

var sevenTeams = []fixture.Team{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"}

// problem bundles a graph with its compiled forbidden rounds.
type problem struct {
	g  *conflict.Graph
	fm *rules.ForbiddenMap
}

// newProblem builds a double round-robin between teams with optional rules.
func newProblem(t testing.TB, teams []fixture.Team, excl []conflict.Exclusivity, forbidden ...rules.Forbidden) problem {
	t.Helper()
	fs, err := fixture.Generate(teams)
	require.NoError(t, err)
	g, err := conflict.Build(teams, fs, conflict.WithHomeExclusivity(excl...))
	require.NoError(t, err)
	fm, err := rules.NewForbiddenMap(fs, forbidden...)
	require.NoError(t, err)
	return problem{g: g, fm: fm}
}

// sampleProblem is the seven-club tournament with its house rules.
func sampleProblem(t testing.TB) problem {
	return newProblem(t, sevenTeams,
		[]conflict.Exclusivity{{A: "TFC", B: "OFC"}, {A: "AFC", B: "FFC"}},
		rules.Forbidden{Home: "DFC", Away: "CFC", Rounds: []fixture.Round{1, 14}},
		rules.Forbidden{Home: "LFC", Away: "FFC", Rounds: []fixture.Round{7, 13}},
		rules.Forbidden{Home: "OFC", Away: "LFC", Rounds: []fixture.Round{10, 11}},
		rules.Forbidden{Home: "AFC", Away: "FFC", Rounds: []fixture.Round{12, 13}},
		rules.Forbidden{Home: "CFC", Away: "TFC", Rounds: []fixture.Round{2, 3}},
	)
}
