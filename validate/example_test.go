package validate_test

import (
	"fmt"

	"github.com/katalvlaran/misp/graph"
	"github.com/katalvlaran/misp/validate"
)

func ExampleValidate() {
	g := graph.MustNew(3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})

	ok, _ := validate.Validate(g, []int{0, 2})
	fmt.Println(ok)

	ok, violations := validate.Validate(g, []int{0, 1})
	fmt.Println(ok, violations)
	// Output:
	// true
	// false [0-1]
}
