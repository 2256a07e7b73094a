// SPDX-License-Identifier: MIT

package routing

import (
	"fmt"
	"math"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// Segment is the cost of one hop of a path.
type Segment struct {
	From topology.NodeID `json:"from"`
	To   topology.NodeID `json:"to"`
	Cost float64         `json:"cost"`
}

// PathCost sums the link costs of p under m: for every consecutive pair
// (a, b) it reads cell exit(a)→entry(b). Pairs without a link (+Inf) are
// skipped and produce no segment, so a path that is not connected in the
// matrix still yields the sum of its connected hops. Paths shorter than two
// nodes cost 0 with no segments.
//
// Errors: ErrInvalidNodeReference for any id outside the layout,
// ErrInvalidMetric.
func (e *Engine) PathCost(p Path, m Metric) (float64, []Segment, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total, segs, err := e.pathCostLocked(p, m)
	if err != nil {
		return 0, nil, fmt.Errorf("PathCost: %w", err)
	}

	return total, segs, nil
}

func (e *Engine) pathCostLocked(p Path, m Metric) (float64, []Segment, error) {
	costs, err := e.costs(m)
	if err != nil {
		return 0, nil, err
	}
	for _, id := range p {
		if !e.layout.Contains(id) {
			return 0, nil, fmt.Errorf("node %s: %w", id, ErrInvalidNodeReference)
		}
	}

	segs := make([]Segment, 0, len(p))
	if len(p) < 2 {
		return 0, segs, nil
	}

	var total float64
	for i := 0; i+1 < len(p); i++ {
		exit, _ := e.layout.ExitIndex(p[i])
		entry, _ := e.layout.EntryIndex(p[i+1])
		w, err := costs.At(exit, entry)
		if err != nil {
			return 0, nil, err
		}
		if math.IsInf(w, 1) {
			continue
		}
		total += w
		segs = append(segs, Segment{From: p[i], To: p[i+1], Cost: w})
	}

	return total, segs, nil
}
