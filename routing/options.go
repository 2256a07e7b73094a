// SPDX-License-Identifier: MIT

package routing

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// engineOptions aggregates the optional Engine settings.
type engineOptions struct {
	logger     *slog.Logger
	generation uuid.UUID
}

// Option customizes New / FromTopology.
type Option func(*engineOptions)

func newEngineOptions(opts ...Option) engineOptions {
	o := engineOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes engine diagnostics (cache hits/misses at debug, resets
// at info) to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("routing: WithLogger(nil)")
	}
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithGeneration stamps every Route with the id of the network the matrices
// came from. FromTopology sets it from the topology.
func WithGeneration(id uuid.UUID) Option {
	return func(o *engineOptions) {
		o.generation = id
	}
}
