// SPDX-License-Identifier: MIT
// Package: tourney/rules
//
// forbidden.go — rule compilation and lookups.
//
// Complexity:
//   • NewForbiddenMap: O(R·k) for R fixture rules with k rounds each, plus
//     O(M·F) expression evaluations for M Match rules over F fixtures.
//   • Forbids: O(1).

package rules

import (
	"fmt"
	"sort"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"

	"github.com/katalvlaran/tourney/fixture"
)

const methodNew = "NewForbiddenMap"

// NewForbiddenMap validates rules and compiles them for fast lookup.
//
// fixtures is the scheduled fixture list; it is used to reject rules naming
// unknown fixtures and to evaluate Match rules. A nil list skips the
// existence check, but then Match rules are rejected.
func NewForbiddenMap(fixtures []fixture.Fixture, rules ...Forbidden) (*ForbiddenMap, error) {
	m := &ForbiddenMap{
		exact: make(map[fixture.Fixture]roundSet),
		pair:  make(map[fixture.PairKey]roundSet),
	}

	var scheduled map[fixture.Fixture]struct{}
	if fixtures != nil {
		scheduled = make(map[fixture.Fixture]struct{}, len(fixtures))
		for _, f := range fixtures {
			scheduled[f] = struct{}{}
		}
	}

	for i, rule := range rules {
		if err := m.add(i, rule, fixtures, scheduled); err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
	}
	return m, nil
}

func (m *ForbiddenMap) add(i int, rule Forbidden, fixtures []fixture.Fixture, scheduled map[fixture.Fixture]struct{}) error {
	named := rule.Home != "" || rule.Away != ""
	switch {
	case rule.Match != "" && named:
		return fmt.Errorf("rule #%d: both fixture and match given: %w", i, ErrBadRule)
	case rule.Match == "" && (rule.Home == "" || rule.Away == ""):
		return fmt.Errorf("rule #%d: needs home and away, or a match: %w", i, ErrBadRule)
	case len(rule.Rounds) == 0:
		return fmt.Errorf("rule #%d: no rounds: %w", i, ErrBadRule)
	}
	for _, r := range rule.Rounds {
		if r < 1 {
			return fmt.Errorf("rule #%d: round %d: %w", i, int(r), ErrRoundOutOfRange)
		}
		if r > m.max {
			m.max = r
		}
	}

	if rule.Match != "" {
		return m.addMatch(i, rule, fixtures)
	}

	f := fixture.New(rule.Home, rule.Away)
	if scheduled != nil {
		_, fwd := scheduled[f]
		_, rev := scheduled[f.Reverse()]
		if !fwd && (rule.Directed || !rev) {
			return fmt.Errorf("rule #%d: fixture %s: %w", i, f, ErrUnknownFixture)
		}
	}
	if rule.Directed {
		m.setFor(m.exact, f, rule.Rounds)
	} else {
		set, ok := m.pair[f.Key()]
		if !ok {
			set = make(roundSet)
			m.pair[f.Key()] = set
		}
		set.add(rule.Rounds)
	}
	m.rules++
	return nil
}

func (m *ForbiddenMap) addMatch(i int, rule Forbidden, fixtures []fixture.Fixture) error {
	if fixtures == nil {
		return fmt.Errorf("rule #%d: match without fixture list: %w", i, ErrBadMatch)
	}
	program, err := expr.Compile(rule.Match, expr.Env(matchEnv("", "")), expr.AsBool())
	if err != nil {
		return fmt.Errorf("rule #%d: %q: %v: %w", i, rule.Match, err, ErrBadMatch)
	}
	for _, f := range fixtures {
		ok, err := evalMatch(program, f)
		if err != nil {
			return fmt.Errorf("rule #%d: %q on %s: %v: %w", i, rule.Match, f, err, ErrBadMatch)
		}
		if ok {
			m.setFor(m.exact, f, rule.Rounds)
		}
	}
	m.rules++
	return nil
}

func (m *ForbiddenMap) setFor(dst map[fixture.Fixture]roundSet, f fixture.Fixture, rs []fixture.Round) {
	set, ok := dst[f]
	if !ok {
		set = make(roundSet)
		dst[f] = set
	}
	set.add(rs)
}

func matchEnv(home, away fixture.Team) map[string]interface{} {
	return map[string]interface{}{
		"home": string(home),
		"away": string(away),
	}
}

func evalMatch(program *vm.Program, f fixture.Fixture) (bool, error) {
	out, err := expr.Run(program, matchEnv(f.Home, f.Away))
	if err != nil {
		return false, err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("result %T is not bool", out)
	}
	return ok, nil
}

// Forbids reports whether f must not be played in round r.
func (m *ForbiddenMap) Forbids(f fixture.Fixture, r fixture.Round) bool {
	if m == nil {
		return false
	}
	if set, ok := m.exact[f]; ok {
		if _, hit := set[r]; hit {
			return true
		}
	}
	if set, ok := m.pair[f.Key()]; ok {
		if _, hit := set[r]; hit {
			return true
		}
	}
	return false
}

// Rounds returns the sorted set of rounds forbidden for f.
func (m *ForbiddenMap) Rounds(f fixture.Fixture) []fixture.Round {
	if m == nil {
		return nil
	}
	union := make(roundSet)
	for r := range m.exact[f] {
		union[r] = struct{}{}
	}
	for r := range m.pair[f.Key()] {
		union[r] = struct{}{}
	}
	if len(union) == 0 {
		return nil
	}
	out := make([]fixture.Round, 0, len(union))
	for r := range union {
		out = append(out, r)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// AllForbidden reports whether every round in 1..maxRounds is forbidden for f,
// i.e. f can never be scheduled within that budget.
func (m *ForbiddenMap) AllForbidden(f fixture.Fixture, maxRounds int) bool {
	if m == nil || maxRounds <= 0 {
		return false
	}
	for _, r := range fixture.Rounds(maxRounds) {
		if !m.Forbids(f, r) {
			return false
		}
	}
	return true
}

// MaxRound returns the highest round referenced by any rule (0 if none).
func (m *ForbiddenMap) MaxRound() fixture.Round {
	if m == nil {
		return 0
	}
	return m.max
}

// Len returns the number of compiled rules.
func (m *ForbiddenMap) Len() int {
	if m == nil {
		return 0
	}
	return m.rules
}
