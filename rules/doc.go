// Package rules compiles forbidden-round rules into an immutable lookup
// structure used by the round assignment engine.
//
// A rule names a fixture by its two teams and lists round indices the
// fixture must not be played in. By default a rule is direction-agnostic:
// the rule for (A,B) also covers the return leg (B,A). Setting Directed
// restricts it to the exact home/away orientation. Direction is decided per
// rule because tournaments mix both kinds (a stadium closure binds one home
// side only; a derby embargo binds both legs).
//
// A rule may instead carry a Match expression evaluated once per fixture at
// compile time, for example:
//
//	home == "CFC"                    // every CFC home game
//	home in ["AFC", "FFC"] && away == "DFC"
//
// Expressions are compiled with github.com/antonmedv/expr against an
// environment exposing the string variables home and away, and must yield a
// boolean.
//
// When several rules cover the same fixture their round sets are merged.
//
// Errors:
//
//   - ErrRoundOutOfRange  round index below 1
//   - ErrBadRule          rule with neither (or both) a fixture and a Match, or no rounds
//   - ErrUnknownFixture   rule names a fixture absent from the fixture list
//   - ErrBadMatch         Match fails to compile, evaluate, or yield a bool
package rules
