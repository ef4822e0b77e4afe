// SPDX-License-Identifier: MIT
// Package: tourney/config

package config

// SampleYAML is the seven-club championship shipped as the default
// tournament.
const SampleYAML = `# seven-club double round-robin
teams: [DFC, TFC, AFC, LFC, FFC, OFC, CFC]
legs: 2
max_rounds: 14
capacity_per_round: 3

# pairs of clubs that never both play at home in the same round
home_exclusivity:
  - [TFC, OFC]
  - [AFC, FFC]

forbidden_rounds:
  - fixture: [DFC, CFC]
    rounds: [1, 14]
  - fixture: [LFC, FFC]
    rounds: [7, 13]
  - fixture: [OFC, LFC]
    rounds: [10, 11]
  - fixture: [AFC, FFC]
    rounds: [12, 13]
  - fixture: [CFC, TFC]
    rounds: [2, 3]
`

// Default returns the seven-club championship.
func Default() *Tournament {
	return &Tournament{
		Teams:     []string{"DFC", "TFC", "AFC", "LFC", "FFC", "OFC", "CFC"},
		Legs:      2,
		MaxRounds: 14,
		Capacity:  3,
		HomeExclusivity: [][]string{
			{"TFC", "OFC"},
			{"AFC", "FFC"},
		},
		ForbiddenRounds: []ForbiddenRule{
			{Fixture: []string{"DFC", "CFC"}, Rounds: []int{1, 14}},
			{Fixture: []string{"LFC", "FFC"}, Rounds: []int{7, 13}},
			{Fixture: []string{"OFC", "LFC"}, Rounds: []int{10, 11}},
			{Fixture: []string{"AFC", "FFC"}, Rounds: []int{12, 13}},
			{Fixture: []string{"CFC", "TFC"}, Rounds: []int{2, 3}},
		},
	}
}
