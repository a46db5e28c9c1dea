package graphio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/misp/graphio"
)

func ExampleRead() {
	g, err := graphio.Read(strings.NewReader("3\n0 1\n1 2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size(), g.Neighbors(1))
	// Output: 3 2 [0 2]
}

func ExampleWrite() {
	g, _ := graphio.Read(strings.NewReader("4\n2 3\n0 1\n"))
	_ = graphio.Write(os.Stdout, g)
	// Output:
	// 4
	// 0 1
	// 2 3
}
