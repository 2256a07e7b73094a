// SPDX-License-Identifier: MIT
// Package: topology
//
// cluster.go — seeded k-means partition of station positions.
//
// Canonical model:
//   - k-means++ seeding (first centroid uniform, then proportional to the
//     squared distance to the nearest chosen centroid).
//   - Lloyd iterations: assign to the nearest centroid (ties → lowest
//     cluster index), recompute centroids as member means.
//   - An empty cluster steals the point farthest from its centroid out of a
//     cluster that has at least two members, so every cluster keeps ≥ 1
//     member (k ≤ n is validated upstream).
//   - `restarts` independent runs; the first run with the strictly lowest
//     inertia wins.
//
// Determinism: fixed iteration orders; all randomness flows from the build RNG.

package topology

import (
	"math"
	"math/rand"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// partition is the result of one clustering.
type partition struct {
	labels    []int       // point index → cluster index
	centroids []orb.Point // cluster index → mean of its members
	inertia   float64     // Σ squared distance to own centroid
}

// kmeans partitions points into k clusters. Requires 1 ≤ k ≤ len(points)
// and a non-nil rng.
func kmeans(points []orb.Point, k int, rng *rand.Rand, restarts, iterations int) partition {
	var best partition
	for run := 0; run < restarts; run++ {
		p := lloyd(points, seedCentroids(points, k, rng), iterations)
		if run == 0 || p.inertia < best.inertia {
			best = p
		}
	}

	return best
}

// seedCentroids picks k initial centroids with k-means++.
func seedCentroids(points []orb.Point, k int, rng *rand.Rand) []orb.Point {
	centroids := make([]orb.Point, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	d2 := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d2[i] = nearestSquared(p, centroids)
			total += d2[i]
		}
		if total == 0 {
			// every point coincides with a centroid already
			centroids = append(centroids, points[rng.Intn(len(points))])
			continue
		}

		r := rng.Float64() * total
		next := -1
		for i, d := range d2 {
			if d == 0 {
				continue
			}
			next = i
			if r -= d; r < 0 {
				break
			}
		}
		centroids = append(centroids, points[next])
	}

	return centroids
}

// lloyd refines centroids until assignments are stable or iterations run out.
func lloyd(points []orb.Point, centroids []orb.Point, iterations int) partition {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	for iter := 0; iter < iterations; iter++ {
		changed := assignNearest(points, centroids, labels)
		if fillEmptyClusters(points, centroids, labels) {
			changed = true
		}
		if !changed {
			break
		}
		updateCentroids(points, centroids, labels)
	}

	var inertia float64
	for i, p := range points {
		inertia += planar.DistanceSquared(p, centroids[labels[i]])
	}

	return partition{labels: labels, centroids: centroids, inertia: inertia}
}

// assignNearest relabels every point; reports whether any label changed.
func assignNearest(points []orb.Point, centroids []orb.Point, labels []int) bool {
	changed := false
	for i, p := range points {
		best, bestD := 0, math.Inf(1)
		for j, c := range centroids {
			if d := planar.DistanceSquared(p, c); d < bestD {
				best, bestD = j, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}

	return changed
}

// fillEmptyClusters moves, for every empty cluster, the point farthest from
// its centroid (taken from a cluster with ≥ 2 members) into it.
func fillEmptyClusters(points []orb.Point, centroids []orb.Point, labels []int) bool {
	sizes := make([]int, len(centroids))
	for _, l := range labels {
		sizes[l]++
	}

	moved := false
	for j := range centroids {
		if sizes[j] > 0 {
			continue
		}
		far, farD := -1, -1.0
		for i, p := range points {
			if sizes[labels[i]] < 2 {
				continue
			}
			if d := planar.DistanceSquared(p, centroids[labels[i]]); d > farD {
				far, farD = i, d
			}
		}
		if far < 0 {
			break // fewer points than clusters; excluded by Config.Validate
		}
		sizes[labels[far]]--
		labels[far] = j
		sizes[j] = 1
		centroids[j] = points[far]
		moved = true
	}

	return moved
}

// updateCentroids recomputes each centroid as the mean of its members.
func updateCentroids(points []orb.Point, centroids []orb.Point, labels []int) {
	members := make([]orb.MultiPoint, len(centroids))
	for i, p := range points {
		members[labels[i]] = append(members[labels[i]], p)
	}
	for j, mp := range members {
		if len(mp) == 0 {
			continue
		}
		centroids[j], _ = planar.CentroidArea(mp)
	}
}

func nearestSquared(p orb.Point, centroids []orb.Point) float64 {
	best := math.Inf(1)
	for _, c := range centroids {
		if d := planar.DistanceSquared(p, c); d < best {
			best = d
		}
	}

	return best
}

// roundPosition rounds a centroid to the nearest integer coordinate.
func roundPosition(p orb.Point) Position {
	return Position{X: int(math.Round(p.X())), Y: int(math.Round(p.Y()))}
}
