package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
)

// ExampleNewGraph builds the labeled 3-node path 6─8─7.
func ExampleNewGraph() {
	g, err := core.NewGraph(
		[][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}},
		core.WithNodeLabels(map[int]core.Label{0: 6, 1: 8, 2: 7}),
		core.WithEdgeLabels(map[core.EdgeKey]core.Label{{U: 0, V: 1}: 1, {U: 1, V: 2}: 1}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size(), g.NodeLabel(1), g.EdgeLabel(2, 1))
	// Output: 3 2 8 1
}

// ExampleNewGraph_malformed shows fail-fast validation.
func ExampleNewGraph_malformed() {
	_, err := core.NewGraph([][]int{{0, 1}, {0, 0}})
	fmt.Println(errors.Is(err, core.ErrMalformedGraph), errors.Is(err, core.ErrAsymmetric))
	// Output: true true
}
