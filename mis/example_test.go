package mis_test

import (
	"fmt"

	"github.com/katalvlaran/misp/builder"
	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/mis"
)

// ExampleGreedy selects every other node of a path.
func ExampleGreedy() {
	g := graph.MustNew(5, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}})
	fmt.Println(mis.Greedy(g))
	// Output: [0 2 4]
}

// ExampleRandomized shows that epsilon 1 always takes the greedy branch.
func ExampleRandomized() {
	g := builder.MustBuild(nil, builder.Star(5))
	sol, err := mis.Randomized(g, 1.0, 3, mis.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol)
	// Output: [1 2 3 4]
}
