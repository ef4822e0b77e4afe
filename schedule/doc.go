// Package schedule presents a round assignment: grouped by round as plain
// text, styled for a terminal, or as a Graphviz diagram of the conflict
// graph with every fixture coloured by its round.
//
// What:
//
//   - ByRound(a): slots in ascending round order, fixtures sorted by home
//     then away.
//   - Loads(a): fixture count per occupied round.
//   - WriteText(w, slots): "Round n:" headers followed by "Home x Away" lines.
//   - Render(slots, style): the same grouping styled with lipgloss.
//   - WriteDOT(w, g, a, maxRounds): DOT source; rounds map onto a rainbow
//     scale from R1 (violet) to Rmax (red), unassigned fixtures are grey,
//     and a legend cluster lists every round colour.
//
// Presentation never mutates the assignment and is deterministic for a
// given input.
package schedule
