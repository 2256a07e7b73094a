// SPDX-License-Identifier: MIT
// Package: topology
//
// spatial.go — R-tree index over station positions for road-link candidates.
//
// The tree narrows each station's neighbourhood to a square of side
// 2*threshold; the exact Euclidean test (strictly below threshold) is
// applied afterwards, so the index never changes which roads exist.

package topology

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// stationTolerance is the half-size of the box stored per station.
const stationTolerance = 0.5

// stationEntry wraps one station for R-tree storage.
type stationEntry struct {
	ordinal int
	point   orb.Point
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *stationEntry) Bounds() rtreego.Rect { return e.bbox }

// stationIndex answers "which stations lie within r of station i".
type stationIndex struct {
	tree    *rtreego.Rtree
	entries []*stationEntry
}

func newStationIndex(points []orb.Point) *stationIndex {
	idx := &stationIndex{
		tree:    rtreego.NewTree(2, 25, 50),
		entries: make([]*stationEntry, len(points)),
	}
	for i, p := range points {
		e := &stationEntry{
			ordinal: i,
			point:   p,
			bbox:    rtreego.Point{p.X(), p.Y()}.ToRect(stationTolerance),
		}
		idx.entries[i] = e
		idx.tree.Insert(e)
	}

	return idx
}

// neighbour is a station within range together with its exact distance.
type neighbour struct {
	ordinal  int
	distance float64
}

// within returns the stations other than i whose distance to i is strictly
// below radius, ordered by ordinal.
func (idx *stationIndex) within(i int, radius float64) []neighbour {
	origin := idx.entries[i].point
	box, err := rtreego.NewRect(
		rtreego.Point{origin.X() - radius, origin.Y() - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil // radius <= 0: nothing is strictly closer
	}

	hits := idx.tree.SearchIntersect(box)
	out := make([]neighbour, 0, len(hits))
	for _, h := range hits {
		e := h.(*stationEntry)
		if e.ordinal == i {
			continue
		}
		if d := planar.Distance(origin, e.point); d < radius {
			out = append(out, neighbour{ordinal: e.ordinal, distance: d})
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ordinal < out[b].ordinal })

	return out
}
