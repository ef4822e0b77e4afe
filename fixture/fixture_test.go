package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourney/fixture"
)

func teams(ids ...string) []fixture.Team {
	out := make([]fixture.Team, len(ids))
	for i, id := range ids {
		out[i] = fixture.Team(id)
	}
	return out
}

func TestGenerate_DoubleRoundRobinOrder(t *testing.T) {
	fs, err := fixture.Generate(teams("A", "B", "C"))
	require.NoError(t, err)
	assert.Equal(t, []fixture.Fixture{
		{Home: "A", Away: "B"}, {Home: "A", Away: "C"}, {Home: "B", Away: "C"},
		{Home: "B", Away: "A"}, {Home: "C", Away: "A"}, {Home: "C", Away: "B"},
	}, fs)
}

func TestGenerate_SevenTeams(t *testing.T) {
	fs, err := fixture.Generate(teams("DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"))
	require.NoError(t, err)
	assert.Len(t, fs, 42)

	seen := make(map[fixture.Fixture]bool, len(fs))
	for _, f := range fs {
		assert.NotEqual(t, f.Home, f.Away)
		assert.False(t, seen[f], "duplicate fixture %s", f)
		seen[f] = true
	}
	for _, f := range fs {
		assert.True(t, seen[f.Reverse()], "missing return leg of %s", f)
	}
}

func TestGenerate_SingleLeg(t *testing.T) {
	fs, err := fixture.Generate(teams("A", "B", "C", "D"), fixture.WithLegs(1))
	require.NoError(t, err)
	assert.Len(t, fs, 6)
	assert.Equal(t, fixture.New("A", "B"), fs[0])
	assert.Equal(t, fixture.New("C", "D"), fs[5])
}

func TestGenerate_InterleavedLegs(t *testing.T) {
	fs, err := fixture.Generate(teams("A", "B", "C"), fixture.WithInterleavedLegs())
	require.NoError(t, err)
	assert.Equal(t, []fixture.Fixture{
		{Home: "A", Away: "B"}, {Home: "B", Away: "A"},
		{Home: "A", Away: "C"}, {Home: "C", Away: "A"},
		{Home: "B", Away: "C"}, {Home: "C", Away: "B"},
	}, fs)
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		teams []fixture.Team
		opts  []fixture.Option
		want  error
	}{
		{"no teams", nil, nil, fixture.ErrTooFewTeams},
		{"one team", teams("A"), nil, fixture.ErrTooFewTeams},
		{"empty id", teams("A", ""), nil, fixture.ErrEmptyTeam},
		{"duplicate", teams("A", "B", "A"), nil, fixture.ErrDuplicateTeam},
		{"zero legs", teams("A", "B"), []fixture.Option{fixture.WithLegs(0)}, fixture.ErrBadLegs},
		{"three legs", teams("A", "B"), []fixture.Option{fixture.WithLegs(3)}, fixture.ErrBadLegs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs, err := fixture.Generate(tc.teams, tc.opts...)
			assert.Nil(t, fs)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPairKey_DirectionAgnostic(t *testing.T) {
	f := fixture.New("LFC", "FFC")
	assert.Equal(t, f.Key(), f.Reverse().Key())
	assert.Equal(t, fixture.PairKey{A: "FFC", B: "LFC"}, f.Key())
	assert.Equal(t, "FFC-LFC", f.Key().String())
}

func TestFixture_Helpers(t *testing.T) {
	f := fixture.New("A", "B")
	assert.Equal(t, "A x B", f.String())
	assert.True(t, f.Involves("A"))
	assert.True(t, f.Involves("B"))
	assert.False(t, f.Involves("C"))
	assert.True(t, f.SharesTeam(fixture.New("C", "B")))
	assert.False(t, f.SharesTeam(fixture.New("C", "D")))
	assert.True(t, f.Less(fixture.New("A", "C")))
	assert.True(t, f.Less(fixture.New("B", "A")))
	assert.False(t, f.Less(f))
}

func TestRounds(t *testing.T) {
	assert.Empty(t, fixture.Rounds(0))
	assert.Empty(t, fixture.Rounds(-3))
	assert.Equal(t, []fixture.Round{1, 2, 3}, fixture.Rounds(3))
	assert.Equal(t, "R14", fixture.Round(14).String())
	assert.True(t, fixture.Round(14).Valid(14))
	assert.False(t, fixture.Round(15).Valid(14))
	assert.False(t, fixture.Unassigned.Valid(14))
}
