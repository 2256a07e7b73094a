// SPDX-License-Identifier: MIT
// Package: routing
//
// engine.go — Engine construction, index mapping and cost management.
//
// State:
//   - working time/money matrices (mutated only by SetLinkCost/ResetCosts);
//   - a construction-time snapshot of both, never mutated;
//   - the route cache.
//
// Locking: searches hold mu for reading over the whole relaxation;
// SetLinkCost and ResetCosts take it for writing.

package routing

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/sunshi1111/Application-de-livraison-express/matrix"
	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// Engine answers route queries over one network. It is safe for concurrent use.
type Engine struct {
	layout     topology.Layout
	logger     *slog.Logger
	generation uuid.UUID

	mu        sync.RWMutex
	time      *matrix.Dense
	money     *matrix.Dense
	baseTime  *matrix.Dense
	baseMoney *matrix.Dense

	cache *routeCache
}

// New builds an Engine over the given cost matrices. Both must be square of
// order layout.Size(), with +Inf for "no edge" and no NaN, -Inf or negative
// cells. The matrices are copied; later changes to them do not affect the
// Engine.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrLayoutMismatch,
// matrix.ErrNaNInf, matrix.ErrNegativeEntry.
func New(layout topology.Layout, timeCosts, moneyCosts *matrix.Dense, opts ...Option) (*Engine, error) {
	if layout.Centers < 0 || layout.Stations < 0 || layout.Size() == 0 {
		return nil, fmt.Errorf("New: empty layout %+v: %w", layout, ErrLayoutMismatch)
	}

	working := make([]*matrix.Dense, 0, 2)
	for _, src := range []*matrix.Dense{timeCosts, moneyCosts} {
		if err := matrix.ValidateSquareOf(src, layout.Size()); err != nil {
			if errors.Is(err, matrix.ErrDimensionMismatch) {
				return nil, fmt.Errorf("New: %w: %w", ErrLayoutMismatch, err)
			}
			return nil, fmt.Errorf("New: %w", err)
		}
		m, err := importCosts(src)
		if err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
		working = append(working, m)
	}

	o := newEngineOptions(opts...)
	e := &Engine{
		layout:     layout,
		logger:     o.logger,
		generation: o.generation,
		time:       working[0],
		money:      working[1],
		baseTime:   working[0].Clone(),
		baseMoney:  working[1].Clone(),
		cache:      newRouteCache(),
	}

	return e, nil
}

// FromTopology builds an Engine over a built network and stamps routes with
// its generation.
func FromTopology(t *topology.Topology, opts ...Option) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("FromTopology: nil topology: %w", ErrLayoutMismatch)
	}
	opts = append([]Option{WithGeneration(t.Generation())}, opts...)

	return New(t.Layout(), t.TimeMatrix(), t.MoneyMatrix(), opts...)
}

// importCosts copies src into a fresh cost matrix, validating every cell
// against the cost policy (+Inf allowed, non-negative).
func importCosts(src *matrix.Dense) (*matrix.Dense, error) {
	n := src.Rows()
	dst, err := matrix.NewInfDense(n)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := src.RowView(i)
		if err != nil {
			return nil, err
		}
		buf = append(buf, row...)
	}
	if err = dst.Fill(buf); err != nil {
		return nil, err
	}

	return dst, nil
}

// Layout returns the augmented index layout.
func (e *Engine) Layout() topology.Layout { return e.layout }

// Generation returns the network id routes are stamped with.
func (e *Engine) Generation() uuid.UUID { return e.generation }

// EntryIndex maps id to its entry index.
func (e *Engine) EntryIndex(id topology.NodeID) (int, error) { return e.layout.EntryIndex(id) }

// NodeAt maps an augmented index back to its node id.
func (e *Engine) NodeAt(index int) (topology.NodeID, error) { return e.layout.NodeAt(index) }

// costs returns the working matrix for m. Callers hold mu.
func (e *Engine) costs(m Metric) (*matrix.Dense, error) {
	switch m {
	case MetricTime:
		return e.time, nil
	case MetricMoney:
		return e.money, nil
	default:
		return nil, fmt.Errorf("metric %d: %w", m, ErrInvalidMetric)
	}
}

// Costs returns a copy of the working matrix for m.
func (e *Engine) Costs(m Metric) (*matrix.Dense, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	costs, err := e.costs(m)
	if err != nil {
		return nil, fmt.Errorf("Costs: %w", err)
	}

	return costs.Clone(), nil
}

// SetLinkCost overwrites the working cost of the link from→to (cell
// exit(from)→entry(to)) in one metric. cost must be ≥ 0 or +Inf (removes
// the link). Cached routes are kept; ResetCosts clears them.
func (e *Engine) SetLinkCost(m Metric, from, to topology.NodeID, cost float64) error {
	exit, err := e.layout.ExitIndex(from)
	if err != nil {
		return fmt.Errorf("SetLinkCost: %w", err)
	}
	entry, err := e.layout.EntryIndex(to)
	if err != nil {
		return fmt.Errorf("SetLinkCost: %w", err)
	}
	if from == to {
		return fmt.Errorf("SetLinkCost(%s→%s): self link: %w", from, to, ErrInvalidNodeReference)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	costs, err := e.costs(m)
	if err != nil {
		return fmt.Errorf("SetLinkCost: %w", err)
	}
	if err = costs.Set(exit, entry, cost); err != nil {
		return fmt.Errorf("SetLinkCost(%s→%s): %w", from, to, err)
	}
	e.logger.Debug("link cost set",
		slog.String("metric", m.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Float64("cost", cost),
	)

	return nil
}

// ResetCosts restores both working matrices to their construction-time
// values and empties the route cache.
func (e *Engine) ResetCosts() {
	e.mu.Lock()
	defer e.mu.Unlock()

	// shapes are equal by construction; CopyFrom cannot fail here
	_ = e.time.CopyFrom(e.baseTime)
	_ = e.money.CopyFrom(e.baseMoney)
	dropped := e.cache.reset()

	e.logger.Info("costs reset", slog.Int("dropped_routes", dropped))
}

// CacheLen returns the number of cached routes.
func (e *Engine) CacheLen() int { return e.cache.len() }

// AllPairs returns the P×P table (P = physical nodes, Layout order) of
// least costs between nodes under metric m: cell (a, b) equals the distance
// ShortestPath(a, b, m) optimizes. +Inf marks unreachable pairs; the diagonal
// is 0. Zero-cost cells count as "no edge", as in the relaxation.
func (e *Engine) AllPairs(m Metric) (*matrix.Dense, error) {
	e.mu.RLock()
	costs, err := e.costs(m)
	if err != nil {
		e.mu.RUnlock()
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	d := costs.Clone()
	e.mu.RUnlock()

	if err = matrix.PrepareDistances(d); err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}

	p := e.layout.Nodes()
	out, err := matrix.NewInfDense(p)
	if err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	var v float64
	for a := 0; a < p; a++ {
		for b := 0; b < p; b++ {
			if v, err = d.At(2*a, 2*b); err != nil {
				return nil, fmt.Errorf("AllPairs: %w", err)
			}
			if math.IsInf(v, 1) {
				continue
			}
			if err = out.Set(a, b, v); err != nil {
				return nil, fmt.Errorf("AllPairs: %w", err)
			}
		}
	}

	return out, nil
}
