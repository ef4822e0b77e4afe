package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

func TestIsValid_ForbiddenRound(t *testing.T) {
	p := newProblem(t, sevenTeams, nil,
		rules.Forbidden{Home: "DFC", Away: "CFC", Rounds: []fixture.Round{1, 14}})
	a, load := engine.Assignment{}, engine.RoundLoad{}

	assert.False(t, engine.IsValid(fixture.New("DFC", "CFC"), 1, a, load, p.g, p.fm, 3))
	assert.False(t, engine.IsValid(fixture.New("CFC", "DFC"), 14, a, load, p.g, p.fm, 3), "reverse leg shares the rule")
	assert.True(t, engine.IsValid(fixture.New("DFC", "CFC"), 2, a, load, p.g, p.fm, 3))
}

func TestIsValid_Capacity(t *testing.T) {
	p := newProblem(t, sevenTeams, nil)
	a := engine.Assignment{
		fixture.New("DFC", "TFC"): 1,
		fixture.New("AFC", "LFC"): 1,
	}
	load := a.Load()

	// FFC x OFC shares no team with R1, so only capacity decides.
	f := fixture.New("FFC", "OFC")
	assert.False(t, engine.IsValid(f, 1, a, load, p.g, p.fm, 2))
	assert.True(t, engine.IsValid(f, 1, a, load, p.g, p.fm, 3))
	assert.True(t, engine.IsValid(f, 2, a, load, p.g, p.fm, 2))
}

func TestIsValid_Conflict(t *testing.T) {
	p := newProblem(t, sevenTeams, nil)
	a := engine.Assignment{fixture.New("DFC", "TFC"): 1}
	load := a.Load()

	assert.False(t, engine.IsValid(fixture.New("TFC", "AFC"), 1, a, load, p.g, p.fm, 3))
	assert.True(t, engine.IsValid(fixture.New("TFC", "AFC"), 2, a, load, p.g, p.fm, 3))
	assert.True(t, engine.IsValid(fixture.New("AFC", "LFC"), 1, a, load, p.g, p.fm, 3))
}

func TestIsValid_IgnoresOwnTentativeEntry(t *testing.T) {
	p := newProblem(t, sevenTeams, nil)
	f := fixture.New("DFC", "TFC")
	a := engine.Assignment{f: 5}
	assert.True(t, engine.IsValid(f, 5, a, engine.RoundLoad{}, p.g, p.fm, 3))
}

func TestIsValid_HomeExclusivity(t *testing.T) {
	p := sampleProblem(t)
	a := engine.Assignment{fixture.New("TFC", "DFC"): 3}
	load := a.Load()

	assert.False(t, engine.IsValid(fixture.New("OFC", "AFC"), 3, a, load, p.g, p.fm, 3))
	assert.True(t, engine.IsValid(fixture.New("AFC", "OFC"), 3, a, load, p.g, p.fm, 3))
}

func TestIsValid_UnknownInputs(t *testing.T) {
	p := newProblem(t, sevenTeams, nil)
	assert.False(t, engine.IsValid(fixture.New("DFC", "XYZ"), 1, nil, nil, p.g, p.fm, 3))
	assert.False(t, engine.IsValid(fixture.New("DFC", "TFC"), 1, nil, nil, nil, p.fm, 3))
	assert.True(t, engine.IsValid(fixture.New("DFC", "TFC"), 1, nil, nil, p.g, nil, 3))
}
