// SPDX-License-Identifier: MIT

// Package kernel is the fit/transform facade over the random-walk and CSI
// kernel engines.
//
// What
//
//   - A Kernel is configured once (NewRandomWalk, NewRandomWalkLabeled,
//     NewSubgraphMatching) and then:
//   - Fit stores a reference set of graphs (replacing any previous one).
//   - Transform scores a query batch against it and returns a
//     |reference| × |query| gonum matrix M with M[i][j] = k(ref_i, query_j).
//   - FitTransform fits a set and scores it against itself.
//   - Invalid configuration is rejected at construction with
//     ErrInvalidParameter (csi.ErrUnknownWeightFunction for an unknown
//     weight name); no partially configured Kernel is ever returned.
//
// Concurrency
//
//	The reference set is guarded by a sync.RWMutex: Fit takes the write
//	lock, Transform the read lock, so concurrent Transforms proceed in
//	parallel and a Fit never interleaves with a Transform. Inside one
//	Transform every (reference, query) pair is an independent task run on
//	an errgroup limited to WithWorkers(n) goroutines; the first failing pair
//	cancels the rest.
//
// Errors
//
//   - ErrNotFitted: Transform before Fit, or after fitting an empty set.
//   - ErrEmptyBatch: Transform with no query graphs.
//   - ErrInvalidParameter: bad constructor argument or option.
//   - core.ErrMalformedGraph: nil graph in a fit or query set.
//   - Engine errors (randomwalk.ErrDivergent, ctx.Err(), ...) are wrapped.
package kernel
