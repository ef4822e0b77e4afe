// SPDX-License-Identifier: MIT
// Package: tourney/conflict
//
// graph.go — read-only query API.
//
// Determinism:
//   • Fixtures() preserves input order; Neighbors() is ascending by index.
//   • Edges() is ordered by (from index, to index).

package conflict

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tourney/fixture"
)

// Len returns the number of fixtures (nodes).
func (g *Graph) Len() int {
	return len(g.fixtures)
}

// Teams returns a copy of the team list the graph was built from.
func (g *Graph) Teams() []fixture.Team {
	return append([]fixture.Team(nil), g.teams...)
}

// Fixtures returns a copy of the fixtures in node order.
func (g *Graph) Fixtures() []fixture.Fixture {
	return append([]fixture.Fixture(nil), g.fixtures...)
}

// Fixture returns the fixture at node index i. It panics if i is out of range.
func (g *Graph) Fixture(i int) fixture.Fixture {
	return g.fixtures[i]
}

// Index returns the node index of f.
func (g *Graph) Index(f fixture.Fixture) (int, bool) {
	i, ok := g.index[f]
	return i, ok
}

// Neighbors returns the sorted neighbor indices of node i.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(i int) []int {
	return g.adj[i]
}

// NeighborFixtures returns the fixtures conflicting with f, in node order.
func (g *Graph) NeighborFixtures(f fixture.Fixture) ([]fixture.Fixture, error) {
	i, ok := g.index[f]
	if !ok {
		return nil, fmt.Errorf("NeighborFixtures(%s): %w", f, ErrFixtureNotFound)
	}
	out := make([]fixture.Fixture, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.fixtures[j]
	}
	return out, nil
}

// HasEdge reports whether a and b conflict. Unknown fixtures never conflict.
func (g *Graph) HasEdge(a, b fixture.Fixture) bool {
	_, ok := g.edgeReason(a, b)
	return ok
}

// EdgeReason returns why a and b conflict, or false if they do not.
func (g *Graph) EdgeReason(a, b fixture.Fixture) (Reason, bool) {
	return g.edgeReason(a, b)
}

func (g *Graph) edgeReason(a, b fixture.Fixture) (Reason, bool) {
	i, okA := g.index[a]
	j, okB := g.index[b]
	if !okA || !okB || i == j {
		return 0, false
	}
	if i > j {
		i, j = j, i
	}
	r, ok := g.reasons[[2]int{i, j}]
	return r, ok
}

// Degree returns the number of fixtures conflicting with f.
func (g *Graph) Degree(f fixture.Fixture) (int, error) {
	i, ok := g.index[f]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", f, ErrFixtureNotFound)
	}
	return len(g.adj[i]), nil
}

// MaxDegree returns the largest node degree (0 for an edgeless graph).
func (g *Graph) MaxDegree() int {
	best := 0
	for _, nbrs := range g.adj {
		if len(nbrs) > best {
			best = len(nbrs)
		}
	}
	return best
}

// EdgeCount returns the number of undirected conflict edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Edges returns every conflict edge once, ordered by node indices.
func (g *Graph) Edges() []Edge {
	keys := make([][2]int, 0, len(g.reasons))
	for k := range g.reasons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})

	out := make([]Edge, len(keys))
	for k, key := range keys {
		out[k] = Edge{
			From:   g.fixtures[key[0]],
			To:     g.fixtures[key[1]],
			Reason: g.reasons[key],
		}
	}
	return out
}
