// SPDX-License-Identifier: MIT
// Package: tourney/schedule
//
// render.go — terminal rendering with lipgloss.

package schedule

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style controls Render.
type Style struct {
	// Title is printed above the rounds; empty means no title.
	Title string

	// Columns is the number of round boxes per row (minimum 1).
	Columns int

	Header  lipgloss.Style
	Fixture lipgloss.Style
	Box     lipgloss.Style
	Heading lipgloss.Style
}

// DefaultStyle returns the stock palette: bold round headers inside rounded
// boxes, three boxes per row.
func DefaultStyle() Style {
	return Style{
		Title:   "Tournament schedule",
		Columns: 3,
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		Fixture: lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#999999")).
			Padding(0, 1).
			MarginRight(1),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true).MarginBottom(1),
	}
}

// Render lays slots out as a grid of boxes, one per round.
func Render(slots []Slot, style Style) string {
	cols := style.Columns
	if cols < 1 {
		cols = 1
	}

	boxes := make([]string, 0, len(slots))
	for _, s := range slots {
		lines := make([]string, 0, len(s.Fixtures)+1)
		lines = append(lines, style.Header.Render(fmt.Sprintf("Round %d", int(s.Round))))
		for _, f := range s.Fixtures {
			lines = append(lines, style.Fixture.Render(f.String()))
		}
		boxes = append(boxes, style.Box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	rows := make([]string, 0, len(boxes)/cols+2)
	if style.Title != "" {
		rows = append(rows, style.Heading.Render(style.Title))
	}
	for start := 0; start < len(boxes); start += cols {
		end := start + cols
		if end > len(boxes) {
			end = len(boxes)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[start:end]...))
	}
	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, rows...), "\n")
}
