// SPDX-License-Identifier: MIT

// Package bench is the timing harness: it loads named fixture graphs, runs a
// kernel's fit/transform cycle a fixed number of times and reports the
// score together with the average latency per cycle.
//
// Latency is recorded in a prometheus histogram on a registry private to
// each Run, so concurrent or repeated runs never share series. The average
// is read back from the histogram (sample sum / sample count) rather than
// kept in a side counter, and the registry is returned for callers that want
// to gather or expose the raw series.
//
// The harness consumes kernel, config and fixtures; nothing in the kernel
// packages depends on it.
package bench
