package kernel_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/internal/fixtures"
	"github.com/katalvlaran/lvkernel/kernel"
)

// ExampleNewSubgraphMatching fits one molecule and scores another.
func ExampleNewSubgraphMatching() {
	k, err := kernel.NewSubgraphMatching(999, "uniform")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = k.Fit([]*core.Graph{fixtures.G1()}); err != nil {
		fmt.Println("error:", err)
		return
	}
	m, err := k.Transform(context.Background(), []*core.Graph{fixtures.G2()})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(k.Name(), m.At(0, 0))
	// Output:
	// subgraph_matching 12
}
