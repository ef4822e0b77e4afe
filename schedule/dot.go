// SPDX-License-Identifier: MIT
// Package: tourney/schedule
//
// dot.go — Graphviz rendering of the conflict graph coloured by round.
//
// Layout of the output:
//   1. graph header and node defaults
//   2. one node per fixture, in graph order, filled with its round colour
//   3. one edge per conflict, sorted
//   4. a legend cluster with one entry per round R1..Rmax

package schedule

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
)

// Unassigned fixtures are drawn in this colour.
const unassignedColor = "#808080"

// rainbowSpan is the hue range (degrees) from R1 down to Rmax.
const rainbowSpan = 270.0

// RoundColor returns the fill colour of round r on a scale of maxRounds
// rounds as "#rrggbb". Out-of-range rounds are grey.
func RoundColor(r fixture.Round, maxRounds int) string {
	if !r.Valid(maxRounds) {
		return unassignedColor
	}
	t := 0.0
	if maxRounds > 1 {
		t = float64(int(r)-1) / float64(maxRounds-1)
	}
	return colorful.Hsv(rainbowSpan*(1-t), 0.85, 0.95).Hex()
}

// dotQuote renders s as a DOT quoted string. Only '"' and '\' are escaped;
// other bytes, UTF-8 included, pass through unchanged.
func dotQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// WriteDOT writes g as an undirected Graphviz graph. Nodes are labelled
// "Home x Away" and filled with the colour of their round in a.
func WriteDOT(w io.Writer, g *conflict.Graph, a engine.Assignment, maxRounds int) error {
	if g == nil {
		return engine.ErrGraphNil
	}
	if maxRounds <= 0 {
		return fmt.Errorf("WriteDOT: max rounds=%d: %w", maxRounds, engine.ErrBadMaxRounds)
	}

	bw := bufio.NewWriter(w)

	// 1. Header
	fmt.Fprintln(bw, "graph schedule {")
	fmt.Fprintln(bw, "\tlabel=\"Schedule by round\";")
	fmt.Fprintln(bw, "\tnode [shape=ellipse, style=filled, fontsize=10];")
	fmt.Fprintln(bw, "\tedge [color=gray];")

	// 2. Nodes
	for i := 0; i < g.Len(); i++ {
		f := g.Fixture(i)
		fmt.Fprintf(bw, "\tn%d [label=%s, fillcolor=\"%s\"];\n", i, dotQuote(f.String()), RoundColor(a[f], maxRounds))
	}

	// 3. Edges
	for _, e := range g.Edges() {
		from, _ := g.Index(e.From)
		to, _ := g.Index(e.To)
		fmt.Fprintf(bw, "\tn%d -- n%d;\n", from, to)
	}

	// 4. Legend
	fmt.Fprintln(bw, "\tsubgraph cluster_legend {")
	fmt.Fprintln(bw, "\t\tlabel=\"Rounds\";")
	for r := 1; r <= maxRounds; r++ {
		fmt.Fprintf(bw, "\t\tlegend%d [label=\"Round %d\", shape=box, fillcolor=\"%s\"];\n",
			r, r, RoundColor(fixture.Round(r), maxRounds))
	}
	fmt.Fprintln(bw, "\t}")
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	return nil
}
