// SPDX-License-Identifier: MIT
// Package: routing
//
// route.go — category-driven route queries.
//
// OptimalRoute is memoized per (src, dst, category) until ResetCosts;
// AlternateRoute is always computed fresh.

package routing

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// Route is the answer to a route request.
//
// Path was optimized for CostType; TotalTime and TotalMoney are both
// measured on that same path, and TotalCost equals the one matching
// CostType. Segments are the hops under CostType. When the destination is
// unreachable Reachable is false, Path is empty and the totals are +Inf.
type Route struct {
	Source      topology.NodeID
	Destination topology.NodeID
	Category    Category
	Avoid       *topology.NodeID // set on alternate routes only

	Path       Path
	CostType   Metric
	TotalCost  float64
	TotalTime  float64
	TotalMoney float64
	Segments   []Segment
	Reachable  bool

	Generation uuid.UUID
}

// clone deep-copies the slices so callers cannot alias cached state.
func (r Route) clone() Route {
	out := r
	out.Path = append(Path{}, r.Path...)
	out.Segments = append([]Segment{}, r.Segments...)
	if r.Avoid != nil {
		avoid := *r.Avoid
		out.Avoid = &avoid
	}

	return out
}

// routeJSON is the wire form. Infinite totals encode as null.
type routeJSON struct {
	Source      topology.NodeID  `json:"src"`
	Destination topology.NodeID  `json:"dst"`
	Category    Category         `json:"category"`
	Avoid       *topology.NodeID `json:"avoid,omitempty"`
	Path        Path             `json:"path"`
	TotalCost   *float64         `json:"totalCost"`
	CostType    Metric           `json:"costType"`
	Reachable   bool             `json:"reachable"`
	Generation  uuid.UUID        `json:"generation"`
	PathInfo    pathInfoJSON     `json:"pathInfo"`
}

type pathInfoJSON struct {
	Segments     []Segment `json:"segments"`
	TotalTime    *float64  `json:"totalTime"`
	TotalMoney   *float64  `json:"totalMoney"`
	OptimizedFor Metric    `json:"optimizedFor"`
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}

	return &v
}

// MarshalJSON encodes r with camelCase keys, hop details under "pathInfo"
// and null for infinite totals.
func (r Route) MarshalJSON() ([]byte, error) {
	path := r.Path
	if path == nil {
		path = Path{}
	}
	segs := r.Segments
	if segs == nil {
		segs = []Segment{}
	}

	return json.Marshal(routeJSON{
		Source:      r.Source,
		Destination: r.Destination,
		Category:    r.Category,
		Avoid:       r.Avoid,
		Path:        path,
		TotalCost:   finiteOrNil(r.TotalCost),
		CostType:    r.CostType,
		Reachable:   r.Reachable,
		Generation:  r.Generation,
		PathInfo: pathInfoJSON{
			Segments:     segs,
			TotalTime:    finiteOrNil(r.TotalTime),
			TotalMoney:   finiteOrNil(r.TotalMoney),
			OptimizedFor: r.CostType,
		},
	})
}

// OptimalRoute answers a route request: category CategoryStandard optimizes
// money, CategoryExpress optimizes time. The result is cached under
// (src, dst, c) until ResetCosts; repeated calls return equal Routes.
// Concurrent identical misses compute once.
//
// Errors: ErrInvalidNodeReference, ErrInvalidMetric.
func (e *Engine) OptimalRoute(src, dst topology.NodeID, c Category) (Route, error) {
	metric, err := c.Metric()
	if err != nil {
		return Route{}, fmt.Errorf("OptimalRoute: %w", err)
	}
	from, to, err := e.endpoints(src, dst)
	if err != nil {
		return Route{}, fmt.Errorf("OptimalRoute: %w", err)
	}

	key := routeKey{src: src, dst: dst, category: c}
	if r, ok := e.cache.get(key); ok {
		e.logger.Debug("route cache hit", slog.String("key", key.String()))
		return r.clone(), nil
	}

	epoch := e.cache.currentEpoch()
	v, err, shared := e.cache.group.Do(key.flight(epoch), func() (interface{}, error) {
		e.logger.Debug("route cache miss", slog.String("key", key.String()))

		e.mu.RLock()
		r, err := e.routeLocked(src, dst, c, metric, func() (Path, error) {
			return e.shortestPathLocked(from, to, metric)
		})
		e.mu.RUnlock()
		if err != nil {
			return nil, err
		}
		if !e.cache.put(key, r, epoch) {
			e.logger.Debug("route computed across a reset, not cached", slog.String("key", key.String()))
		}

		return r, nil
	})
	if err != nil {
		return Route{}, fmt.Errorf("OptimalRoute: %w", err)
	}
	if shared {
		e.logger.Debug("route shared with concurrent request", slog.String("key", key.String()))
	}

	return v.(Route).clone(), nil
}

// AlternateRoute is AlternatePath under the category's metric, with both
// totals measured on the returned path. It is never cached.
//
// Errors: ErrInvalidNodeReference, ErrInvalidMetric.
func (e *Engine) AlternateRoute(src, dst, avoid topology.NodeID, c Category) (Route, error) {
	metric, err := c.Metric()
	if err != nil {
		return Route{}, fmt.Errorf("AlternateRoute: %w", err)
	}
	from, to, err := e.endpoints(src, dst)
	if err != nil {
		return Route{}, fmt.Errorf("AlternateRoute: %w", err)
	}
	blocked, err := e.layout.EntryIndex(avoid)
	if err != nil {
		return Route{}, fmt.Errorf("AlternateRoute: avoid: %w", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	r, err := e.routeLocked(src, dst, c, metric, func() (Path, error) {
		return e.alternatePathLocked(from, to, blocked, metric)
	})
	if err != nil {
		return Route{}, fmt.Errorf("AlternateRoute: %w", err)
	}
	r.Avoid = &avoid

	return r, nil
}

// routeLocked runs search and measures the resulting path under both
// metrics. Callers hold mu for reading.
func (e *Engine) routeLocked(src, dst topology.NodeID, c Category, metric Metric, search func() (Path, error)) (Route, error) {
	path, err := search()
	if err != nil {
		return Route{}, err
	}

	r := Route{
		Source:      src,
		Destination: dst,
		Category:    c,
		Path:        path,
		CostType:    metric,
		Generation:  e.generation,
	}
	if len(path) == 0 {
		inf := math.Inf(1)
		r.TotalCost, r.TotalTime, r.TotalMoney = inf, inf, inf
		r.Segments = []Segment{}

		return r, nil
	}

	timeTotal, timeSegs, err := e.pathCostLocked(path, MetricTime)
	if err != nil {
		return Route{}, err
	}
	moneyTotal, moneySegs, err := e.pathCostLocked(path, MetricMoney)
	if err != nil {
		return Route{}, err
	}

	r.Reachable = true
	r.TotalTime, r.TotalMoney = timeTotal, moneyTotal
	if metric == MetricTime {
		r.TotalCost, r.Segments = timeTotal, timeSegs
	} else {
		r.TotalCost, r.Segments = moneyTotal, moneySegs
	}

	return r, nil
}
