// SPDX-License-Identifier: MIT
// Package: topology
//
// options.go — functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*buildOptions)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Build itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package topology

import (
	"io"
	"log/slog"
	"math/rand"
)

// Clustering defaults.
const (
	defaultClusterRestarts   = 10
	defaultClusterIterations = 300
)

// buildOptions aggregates every knob Build reads besides Config.
type buildOptions struct {
	rng        *rand.Rand
	logger     *slog.Logger
	restarts   int
	iterations int
}

// Option customizes Build.
type Option func(*buildOptions)

func newBuildOptions(opts ...Option) buildOptions {
	o := buildOptions{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		restarts:   defaultClusterRestarts,
		iterations: defaultClusterIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(o *buildOptions) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("topology: WithRand(nil)")
	}
	return func(o *buildOptions) {
		o.rng = r
	}
}

// WithLogger routes build diagnostics (center shifts) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("topology: WithLogger(nil)")
	}
	return func(o *buildOptions) {
		o.logger = l
	}
}

// WithClusterRestarts sets how many independent k-means runs are tried;
// the lowest-inertia partition wins. Panics on n < 1.
func WithClusterRestarts(n int) Option {
	if n < 1 {
		panic("topology: WithClusterRestarts(n<1)")
	}
	return func(o *buildOptions) {
		o.restarts = n
	}
}

// WithClusterIterations caps Lloyd iterations per k-means run. Panics on n < 1.
func WithClusterIterations(n int) Option {
	if n < 1 {
		panic("topology: WithClusterIterations(n<1)")
	}
	return func(o *buildOptions) {
		o.iterations = n
	}
}
