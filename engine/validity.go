// SPDX-License-Identifier: MIT
// Package: tourney/engine
//
// validity.go — the validity predicate shared by IsValid and the search.
//
// Check order (cheapest rejection first, all before any descent):
//   1. forbidden round
//   2. round at capacity
//   3. an already-assigned neighbor holds the same round

package engine

import (
	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/rules"
)

// partial is a read-only view of a partial assignment indexed by node.
type partial interface {
	roundAt(i int) fixture.Round
	loadOf(r fixture.Round) int
}

// valid applies the three checks to node i and candidate round r.
func valid(g *conflict.Graph, fm *rules.ForbiddenMap, capacity int, i int, r fixture.Round, p partial) bool {
	if fm.Forbids(g.Fixture(i), r) {
		return false
	}
	if p.loadOf(r) >= capacity {
		return false
	}
	for _, j := range g.Neighbors(i) {
		if p.roundAt(j) == r {
			return false
		}
	}
	return true
}

// mapView adapts the public map types to partial.
type mapView struct {
	g    *conflict.Graph
	a    Assignment
	load RoundLoad
}

func (v mapView) roundAt(i int) fixture.Round {
	r, ok := v.a[v.g.Fixture(i)]
	if !ok {
		return fixture.Unassigned
	}
	return r
}

func (v mapView) loadOf(r fixture.Round) int {
	return v.load[r]
}

// IsValid reports whether placing f in round r is consistent with the partial
// assignment a and its round load. f's own entry in a is ignored, so callers
// may set it tentatively before asking. Fixtures unknown to g are never valid.
//
// Complexity: O(deg(f)).
func IsValid(f fixture.Fixture, r fixture.Round, a Assignment, load RoundLoad, g *conflict.Graph, fm *rules.ForbiddenMap, capacity int) bool {
	if g == nil {
		return false
	}
	i, ok := g.Index(f)
	if !ok {
		return false
	}
	return valid(g, fm, capacity, i, r, mapView{g: g, a: a, load: load})
}
