// SPDX-License-Identifier: MIT
//
// File: csi.go
// Role: explicit-stack clique enumeration over the modular product.
// Determinism:
//   - Candidates are visited in ascending product-node order; counts do not
//     depend on scheduling.
// Concurrency:
//   - Pure over immutable inputs; one enumeration is single-threaded.

package csi

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/product"
)

// frame is one level of the clique tree: candidates that extend the
// clique built so far, and the next one to try.
type frame struct {
	cands  []int
	cursor int
}

// Compute returns Σ lw(|φ|) over all common induced subgraph
// correspondences φ of g1 and g2 with 1 ≤ |φ| ≤ k.
//
// Errors:
//   - core.ErrInvalidParameter when k < 1.
//   - ErrUnknownWeightFunction for lw outside the closed set.
//   - core.ErrMalformedGraph / product.ErrMixedDirection from the product builder.
//   - ctx.Err() (wrapped) on cancellation.
func Compute(ctx context.Context, g1, g2 *core.Graph, k int, lw WeightFunction) (float64, error) {
	if !lw.Valid() {
		return 0, fmt.Errorf("csi.Compute: %d: %w", int(lw), ErrUnknownWeightFunction)
	}
	counts, err := Enumerate(ctx, g1, g2, k)
	if err != nil {
		return 0, err
	}

	return counts.Score(lw), nil
}

// Enumerate counts common induced subgraph correspondences of g1 and g2 by size.
//
// Implementation:
//   - Stage 1: validate k; build the modular product.
//   - Stage 2: push a root frame holding every product node.
//   - Stage 3: pop a candidate v from the top frame, count the clique
//     (size = stack depth), and if the depth bound allows, push the frame
//     of remaining candidates adjacent to v.
//   - Stage 4: exhausted frames are popped; stop when the stack is empty.
//
// The returned Counts has length min(k,|V1|,|V2|)+1.
//
// Complexity: O(#cliques · N) time in the worst case, O(k·N) stack memory.
func Enumerate(ctx context.Context, g1, g2 *core.Graph, k int) (Counts, error) {
	if k < 1 {
		return nil, fmt.Errorf("csi.Enumerate: k must be ≥ 1 (%d): %w", k, core.ErrInvalidParameter)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	prod, err := product.Modular(g1, g2)
	if err != nil {
		return nil, fmt.Errorf("csi.Enumerate: %w", err)
	}

	limit := min(k, g1.Order(), g2.Order())
	counts := make(Counts, limit+1)
	n := prod.Order()
	if n == 0 {
		return counts, nil
	}

	root := make([]int, n)
	for i := range root {
		root[i] = i
	}
	stack := make([]frame, 1, limit)
	stack[0] = frame{cands: root}

	for len(stack) > 0 {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("csi.Enumerate: %w", err)
		}

		top := &stack[len(stack)-1]
		if top.cursor == len(top.cands) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.cands[top.cursor]
		top.cursor++

		depth := len(stack)
		counts[depth]++
		if depth == limit {
			continue
		}
		if next := intersect(top.cands[top.cursor:], prod.Neighbors(v)); len(next) > 0 {
			stack = append(stack, frame{cands: next})
		}
	}

	return counts, nil
}

// intersect returns the sorted intersection of two ascending slices.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}
