// SPDX-License-Identifier: MIT
// Package: tourney/schedule
//
// schedule.go — grouping an assignment by round and plain-text output.

package schedule

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
)

// Slot is one round and the fixtures played in it.
type Slot struct {
	Round    fixture.Round
	Fixtures []fixture.Fixture
}

// ByRound groups a by round. Slots are ordered by round; fixtures inside a
// slot are ordered by home team, then away team. Unassigned entries
// (fixture.Unassigned) are skipped.
func ByRound(a engine.Assignment) []Slot {
	groups := make(map[fixture.Round][]fixture.Fixture)
	for f, r := range a {
		if r == fixture.Unassigned {
			continue
		}
		groups[r] = append(groups[r], f)
	}

	slots := make([]Slot, 0, len(groups))
	for r, fs := range groups {
		sort.Slice(fs, func(i, j int) bool { return fs[i].Less(fs[j]) })
		slots = append(slots, Slot{Round: r, Fixtures: fs})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Round < slots[j].Round })
	return slots
}

// Loads returns the number of fixtures in every occupied round.
func Loads(a engine.Assignment) engine.RoundLoad {
	load := make(engine.RoundLoad)
	for _, r := range a {
		if r != fixture.Unassigned {
			load[r]++
		}
	}
	return load
}

// WriteText prints slots as
//
//	Round 1:
//	AFC x LFC
//	DFC x TFC
//
// with a blank line after every round.
func WriteText(w io.Writer, slots []Slot) error {
	bw := bufio.NewWriter(w)
	for _, s := range slots {
		fmt.Fprintf(bw, "Round %d:\n", int(s.Round))
		for _, f := range s.Fixtures {
			fmt.Fprintln(bw, f.String())
		}
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteText: %w", err)
	}
	return nil
}
