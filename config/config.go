// SPDX-License-Identifier: MIT
// Package: tourney/config
//
// config.go — document types, loading and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourney/engine"
	"github.com/katalvlaran/tourney/fixture"
)

// ErrInvalidConfig wraps every validation failure of a tournament file.
var ErrInvalidConfig = errors.New("config: invalid tournament")

// DefaultLegs is used when legs is omitted.
const DefaultLegs = 2

// Tournament models a tournament file.
type Tournament struct {
	Teams           []string        `yaml:"teams"`
	Legs            int             `yaml:"legs,omitempty"`
	InterleaveLegs  bool            `yaml:"interleave_legs,omitempty"`
	MaxRounds       int             `yaml:"max_rounds,omitempty"`
	Capacity        int             `yaml:"capacity_per_round,omitempty"`
	HomeExclusivity [][]string      `yaml:"home_exclusivity,omitempty"`
	ForbiddenRounds []ForbiddenRule `yaml:"forbidden_rounds,omitempty"`
}

// ForbiddenRule is one forbidden_rounds entry. Exactly one of Fixture
// (a [home, away] pair) and Match must be set.
type ForbiddenRule struct {
	Fixture  []string `yaml:"fixture,omitempty"`
	Match    string   `yaml:"match,omitempty"`
	Rounds   []int    `yaml:"rounds"`
	Directed bool     `yaml:"directed,omitempty"`
}

// presentKeys records which defaultable keys a document spells out.
type presentKeys struct {
	Legs      *int `yaml:"legs"`
	MaxRounds *int `yaml:"max_rounds"`
	Capacity  *int `yaml:"capacity_per_round"`
}

// Load reads and parses the tournament file at path.
func Load(path string) (*Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML document, fills defaults and validates the result.
func Parse(data []byte) (*Tournament, error) {
	var t Tournament
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Defaults fill omitted keys only; an explicit 0 is left for Validate.
	var keys presentKeys
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if keys.Legs == nil {
		t.Legs = DefaultLegs
	}
	if keys.MaxRounds == nil {
		t.MaxRounds = engine.DefaultMaxRounds
	}
	if keys.Capacity == nil {
		t.Capacity = engine.DefaultCapacity
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Marshal renders t as YAML.
func (t *Tournament) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyDefaults replaces zero-valued numeric settings with their defaults.
// It is meant for Tournaments assembled in code; Parse only defaults keys
// the document omits.
func (t *Tournament) ApplyDefaults() {
	if t.Legs == 0 {
		t.Legs = DefaultLegs
	}
	if t.MaxRounds == 0 {
		t.MaxRounds = engine.DefaultMaxRounds
	}
	if t.Capacity == 0 {
		t.Capacity = engine.DefaultCapacity
	}
}

// Validate checks the document's structure. Errors wrap ErrInvalidConfig
// and name the offending field. Rule semantics (unknown fixtures, match
// expressions) are checked by Build.
func (t *Tournament) Validate() error {
	if err := fixture.ValidateTeams(teamList(t.Teams)); err != nil {
		return invalid("teams", err)
	}
	if t.Legs != 1 && t.Legs != 2 {
		return invalid("legs", fmt.Errorf("got %d, want 1 or 2", t.Legs))
	}
	if t.MaxRounds <= 0 {
		return invalid("max_rounds", fmt.Errorf("got %d, want > 0", t.MaxRounds))
	}
	if t.Capacity <= 0 {
		return invalid("capacity_per_round", fmt.Errorf("got %d, want > 0", t.Capacity))
	}

	known := make(map[string]bool, len(t.Teams))
	for _, name := range t.Teams {
		known[name] = true
	}
	for i, pair := range t.HomeExclusivity {
		field := fmt.Sprintf("home_exclusivity[%d]", i)
		if len(pair) != 2 {
			return invalid(field, fmt.Errorf("got %d teams, want 2", len(pair)))
		}
		if pair[0] == pair[1] {
			return invalid(field, fmt.Errorf("team %q paired with itself", pair[0]))
		}
		for _, name := range pair {
			if !known[name] {
				return invalid(field, fmt.Errorf("unknown team %q", name))
			}
		}
	}

	for i, rule := range t.ForbiddenRounds {
		field := fmt.Sprintf("forbidden_rounds[%d]", i)
		switch {
		case rule.Match != "" && len(rule.Fixture) > 0:
			return invalid(field, errors.New("fixture and match are exclusive"))
		case rule.Match == "" && len(rule.Fixture) != 2:
			return invalid(field, errors.New("fixture must name [home, away]"))
		case len(rule.Rounds) == 0:
			return invalid(field, errors.New("no rounds"))
		}
		for _, name := range rule.Fixture {
			if !known[name] {
				return invalid(field, fmt.Errorf("unknown team %q", name))
			}
		}
		for _, r := range rule.Rounds {
			if r < 1 || r > t.MaxRounds {
				return invalid(field, fmt.Errorf("round %d outside 1..%d", r, t.MaxRounds))
			}
		}
	}
	return nil
}

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
}

func teamList(names []string) []fixture.Team {
	teams := make([]fixture.Team, len(names))
	for i, n := range names {
		teams[i] = fixture.Team(n)
	}
	return teams
}
