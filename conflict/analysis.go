// SPDX-License-Identifier: MIT
// Package: tourney/conflict
//
// analysis.go — structural summaries of the conflict graph.
//
// Complexity:
//   • Components: O(F + E), breadth-first.
//   • CliqueBound: O(F·Δ²) for maximum degree Δ.

package conflict

import "sort"

// Components partitions the nodes into connected components. Each component
// lists its node indices ascending; components are ordered by their smallest
// index. Fixtures in different components never constrain each other except
// through round capacity.
func (g *Graph) Components() [][]int {
	n := g.Len()
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	var out [][]int

	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue = append(queue[:0], start)
		var comp []int
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}
	return out
}

// CliqueBound returns the size of the largest clique found by growing one
// greedily from every node over its neighbors in index order. Every clique
// needs pairwise distinct rounds, so the result is a lower bound on the
// number of rounds any valid schedule uses.
func (g *Graph) CliqueBound() int {
	best := 0
	clique := make([]int, 0, g.MaxDegree()+1)
	for i := 0; i < g.Len(); i++ {
		clique = append(clique[:0], i)
		for _, j := range g.adj[i] {
			if g.adjacentToAll(j, clique) {
				clique = append(clique, j)
			}
		}
		if len(clique) > best {
			best = len(clique)
		}
	}
	return best
}

func (g *Graph) adjacentToAll(j int, nodes []int) bool {
	for _, k := range nodes {
		a, b := j, k
		if a > b {
			a, b = b, a
		}
		if _, ok := g.reasons[[2]int{a, b}]; !ok {
			return false
		}
	}
	return true
}
