// SPDX-License-Identifier: MIT
// Package builder_test verifies topology, composition, labels and option
// handling of every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkernel/builder"
	"github.com/katalvlaran/lvkernel/core"
)

// TestBuilders_Functional runs table-driven topology checks.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(2, 3))
				assert.False(t, g.HasEdge(0, 3))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				for v := 0; v < 5; v++ {
					assert.Equal(t, 2, g.Degree(v))
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.False(t, g.HasEdge(1, 2))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 4, g.Degree(4), "hub is last")
				assert.True(t, g.HasEdge(3, 0), "rim closes")
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.New(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Order())
			assert.Equal(t, tc.wantE, g.Size())
			assert.False(t, g.NodeLabeled())
			assert.False(t, g.EdgeLabeled())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuildGraph_Composition: constructors form a disjoint union.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.New(builder.Cycle(3), builder.Path(1), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 0, g.Degree(3), "isolated node")
	assert.True(t, g.HasEdge(4, 5))
	assert.False(t, g.HasEdge(2, 4))
}

// TestBuildGraph_Labels covers node and edge label schemes.
func TestBuildGraph_Labels(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithNodeLabels(builder.CyclicLabels(6, 8)),
			builder.WithEdgeLabels(builder.EndpointSumLabels(3)),
		},
		builder.Path(4),
	)
	require.NoError(t, err)

	assert.Equal(t, []core.Label{6, 8, 6, 8}, []core.Label{g.NodeLabel(0), g.NodeLabel(1), g.NodeLabel(2), g.NodeLabel(3)})
	assert.Equal(t, core.Label(1), g.EdgeLabel(0, 1))
	assert.Equal(t, core.Label(0), g.EdgeLabel(2, 1), "mirrored orientation")
	assert.Equal(t, core.Label(2), g.EdgeLabel(2, 3))

	c, err := builder.BuildGraph(
		[]builder.BuilderOption{
			builder.WithNodeLabels(builder.ConstantLabels(7)),
			builder.WithEdgeLabels(builder.ConstantEdgeLabels(2)),
		},
		builder.Star(3),
	)
	require.NoError(t, err)
	assert.Equal(t, core.Label(7), c.NodeLabel(2))
	assert.Equal(t, core.Label(2), c.EdgeLabel(0, 2))
}

// TestBuildGraph_Seeded: same seed, same graph.
func TestBuildGraph_Seeded(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithNodeLabels(builder.RandomLabels(3))},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, a.NodeLabels(), b.NodeLabels())
	for v := 0; v < a.Order(); v++ {
		assert.GreaterOrEqual(t, a.NodeLabel(v), core.Label(0))
		assert.Less(t, a.NodeLabel(v), core.Label(3))
	}

	r, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(42))), builder.WithNodeLabels(builder.RandomLabels(3))},
		builder.RandomSparse(12, 0.3),
	)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), r.Edges())
}

// TestBuildGraph_Directed checks arc orientation.
func TestBuildGraph_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))

	k, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 6, k.Size())

	r, err := builder.BuildGraph([]builder.BuilderOption{builder.WithDirected()}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, r.Size())
}

// TestBuildGraph_Errors covers every sentinel.
func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name  string
		bopts []builder.BuilderOption
		cons  []builder.Constructor
		want  error
	}{
		{"path 0", nil, []builder.Constructor{builder.Path(0)}, builder.ErrTooFewVertices},
		{"cycle 2", nil, []builder.Constructor{builder.Cycle(2)}, builder.ErrTooFewVertices},
		{"star 1", nil, []builder.Constructor{builder.Star(1)}, builder.ErrTooFewVertices},
		{"complete 0", nil, []builder.Constructor{builder.Complete(0)}, builder.ErrTooFewVertices},
		{"wheel 3", nil, []builder.Constructor{builder.Wheel(3)}, builder.ErrTooFewVertices},
		{"p>1", nil, []builder.Constructor{builder.RandomSparse(3, 1.5)}, builder.ErrInvalidProbability},
		{"no rng", nil, []builder.Constructor{builder.RandomSparse(3, 0.5)}, builder.ErrNeedRandSource},
		{"nil ctor", nil, []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"nil label fn", []builder.BuilderOption{builder.WithNodeLabels(nil)}, []builder.Constructor{builder.Path(2)}, builder.ErrOptionViolation},
		{"nil edge fn", []builder.BuilderOption{builder.WithEdgeLabels(nil)}, []builder.Constructor{builder.Path(2)}, builder.ErrOptionViolation},
		{"nil rand", []builder.BuilderOption{builder.WithRand(nil)}, []builder.Constructor{builder.Path(2)}, builder.ErrOptionViolation},
		{"reserved label", []builder.BuilderOption{builder.WithNodeLabels(builder.ConstantLabels(core.NoLabel))}, []builder.Constructor{builder.Path(2)}, core.ErrReservedLabel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.bopts, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLabelFns covers label schemes outside BuildGraph.
func TestLabelFns(t *testing.T) {
	assert.Equal(t, core.Label(0), builder.CyclicLabels()(5, nil))
	assert.Equal(t, core.Label(0), builder.RandomLabels(4)(1, nil), "nil rng is deterministic")
	assert.Equal(t, core.Label(0), builder.EndpointSumLabels(0)(3, 4, nil))
}
