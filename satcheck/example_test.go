package satcheck_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tourney/conflict"
	"github.com/katalvlaran/tourney/fixture"
	"github.com/katalvlaran/tourney/satcheck"
)

// ExampleCheck asks whether three clubs fit into five and six rounds. Every
// pair of their six fixtures shares a club, so five rounds cannot work.
func ExampleCheck() {
	teams := []fixture.Team{"A", "B", "C"}
	fs, _ := fixture.Generate(teams)
	g, _ := conflict.Build(teams, fs)

	for _, rounds := range []int{5, 6} {
		v, err := satcheck.Check(context.Background(), g, nil, rounds, 2)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%d rounds: feasible=%v %s\n", rounds, v.Feasible, v.Reason)
	}
	// Output:
	// 5 rounds: feasible=false unsatisfiable
	// 6 rounds: feasible=true
}
