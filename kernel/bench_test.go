package kernel_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvkernel/builder"
	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/kernel"
)

// BenchmarkTransform_RandomWalk scores a 16×16 batch of labeled random graphs.
func BenchmarkTransform_RandomWalk(b *testing.B) {
	graphs := make([]*core.Graph, 16)
	for i := range graphs {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(int64(i)), builder.WithNodeLabels(builder.RandomLabels(3))},
			builder.RandomSparse(20, 0.15),
		)
		if err != nil {
			b.Fatal(err)
		}
		graphs[i] = g
	}
	k, err := kernel.NewRandomWalkLabeled(6)
	if err != nil {
		b.Fatal(err)
	}
	if err = k.Fit(graphs); err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = k.Transform(ctx, graphs)
	}
}
