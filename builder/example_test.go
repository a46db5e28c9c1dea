package builder_test

import (
	"fmt"

	"github.com/katalvlaran/misp/builder"
)

// ExampleBuildGraph composes a path and a star into one disjoint graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size())
	fmt.Println(g.Components())
	// Output:
	// 7 5
	// [[0 1 2] [3 4 5 6]]
}

// ExampleRandomSparse draws a reproducible G(n,p).
func ExampleRandomSparse() {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a := builder.MustBuild(opts, builder.RandomSparse(20, 0.3))
	b := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(20, 0.3))
	fmt.Println(a.Size() == b.Size())
	// Output: true
}
