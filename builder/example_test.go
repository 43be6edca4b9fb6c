package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvkernel/builder"
)

// ExampleBuildGraph builds a labeled triangle plus an isolated node.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithNodeLabels(builder.CyclicLabels(6, 8))},
		builder.Cycle(3), builder.Path(1),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size(), g.NodeLabel(3))
	// Output:
	// 4 3 8
}
