package schedule_test

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/schedule"
)

func fx(h, a fixture.Team) fixture.Fixture { return fixture.Fixture{Home: h, Away: a} }

func sampleAssignment() engine.Assignment {
	return engine.Assignment{
		fx("DFC", "TFC"): 1,
		fx("AFC", "LFC"): 1,
		fx("TFC", "DFC"): 3,
		fx("LFC", "AFC"): 2,
		fx("CFC", "DFC"): fixture.Unassigned,
	}
}

func TestByRound(t *testing.T) {
	slots := schedule.ByRound(sampleAssignment())
	require.Len(t, slots, 3)

	assert.Equal(t, fixture.Round(1), slots[0].Round)
	assert.Equal(t, []fixture.Fixture{fx("AFC", "LFC"), fx("DFC", "TFC")}, slots[0].Fixtures)
	assert.Equal(t, fixture.Round(2), slots[1].Round)
	assert.Equal(t, fixture.Round(3), slots[2].Round)

	assert.Empty(t, schedule.ByRound(nil))
}

func TestLoads(t *testing.T) {
	load := schedule.Loads(sampleAssignment())
	assert.Equal(t, engine.RoundLoad{1: 2, 2: 1, 3: 1}, load)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, schedule.WriteText(&buf, schedule.ByRound(sampleAssignment())))

	want := "Round 1:\nAFC x LFC\nDFC x TFC\n\n" +
		"Round 2:\nLFC x AFC\n\n" +
		"Round 3:\nTFC x DFC\n\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteText_WriterError(t *testing.T) {
	err := schedule.WriteText(failingWriter{}, schedule.ByRound(sampleAssignment()))
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	style := schedule.DefaultStyle()
	style.Columns = 2
	out := schedule.Render(schedule.ByRound(sampleAssignment()), style)

	assert.Contains(t, out, "Tournament schedule")
	for _, s := range []string{"Round 1", "Round 2", "Round 3", "AFC x LFC", "DFC x TFC", "LFC x AFC", "TFC x DFC"} {
		assert.Contains(t, out, s)
	}
	assert.Less(t, strings.Index(out, "Round 1"), strings.Index(out, "Round 3"))

	style.Title = ""
	style.Columns = 0
	out = schedule.Render(schedule.ByRound(sampleAssignment()), style)
	assert.NotContains(t, out, "Tournament schedule")
	assert.Contains(t, out, "Round 3")
}

func TestRoundColor(t *testing.T) {
	assert.Equal(t, "#8b24f2", schedule.RoundColor(1, 14))
	assert.Equal(t, "#f22424", schedule.RoundColor(14, 14))
	assert.Equal(t, "#808080", schedule.RoundColor(fixture.Unassigned, 14))
	assert.Equal(t, "#808080", schedule.RoundColor(15, 14))
	assert.Equal(t, "#8b24f2", schedule.RoundColor(1, 1))

	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	seen := make(map[string]bool)
	for r := 1; r <= 14; r++ {
		c := schedule.RoundColor(fixture.Round(r), 14)
		assert.Regexp(t, hex, c)
		assert.False(t, seen[c], "duplicate colour %s for R%d", c, r)
		seen[c] = true
	}
}

func TestWriteDOT(t *testing.T) {
	teams := []fixture.Team{"A", "B", "C"}
	fs, err := fixture.Generate(teams, fixture.WithLegs(1))
	require.NoError(t, err)
	g, err := conflict.Build(teams, fs)
	require.NoError(t, err)

	a := engine.Assignment{fx("A", "B"): 1, fx("A", "C"): 2}
	var buf bytes.Buffer
	require.NoError(t, schedule.WriteDOT(&buf, g, a, 3))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "graph schedule {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `n0 [label="A x B", fillcolor="#8b24f2"];`)
	assert.Contains(t, out, `n2 [label="B x C", fillcolor="#808080"];`)
	assert.Contains(t, out, "n0 -- n1;")
	assert.Contains(t, out, "n1 -- n2;")
	assert.Equal(t, 3, strings.Count(out, " -- "))
	assert.Contains(t, out, `legend3 [label="Round 3", shape=box, fillcolor="#f22424"];`)
}

func TestWriteDOT_EscapesLabels(t *testing.T) {
	teams := []fixture.Team{`São "Tricolor"`, `Back\Slash`}
	fs, err := fixture.Generate(teams, fixture.WithLegs(1))
	require.NoError(t, err)
	g, err := conflict.Build(teams, fs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, schedule.WriteDOT(&buf, g, nil, 1))
	assert.Contains(t, buf.String(), `n0 [label="São \"Tricolor\" x Back\\Slash", fillcolor="#808080"];`)
	assert.NotContains(t, buf.String(), `\u00e3`)
}

func TestWriteDOT_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, schedule.WriteDOT(&buf, nil, nil, 3), engine.ErrGraphNil)

	teams := []fixture.Team{"A", "B"}
	fs, err := fixture.Generate(teams)
	require.NoError(t, err)
	g, err := conflict.Build(teams, fs)
	require.NoError(t, err)
	assert.ErrorIs(t, schedule.WriteDOT(&buf, g, nil, 0), engine.ErrBadMaxRounds)
}
