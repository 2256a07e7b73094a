// SPDX-License-Identifier: MIT
// Package: topology
//
// build.go — seeded generation of a complete network.
//
// Draw order from the RNG (fixed, so equal seeds give equal networks):
//  1. per station: X, Y, then property tuple;
//  2. k-means (seeding of every restart);
//  3. per center: property tuple;
//  4. generation UUID.

package topology

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Build generates a network from cfg. A random source (WithSeed/WithRand) is
// required.
//
// Errors: ErrInvalidConfig, ErrNeedRandSource, ErrDegenerateTopology.
func Build(cfg Config, opts ...Option) (*Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	o := newBuildOptions(opts...)
	if o.rng == nil {
		return nil, fmt.Errorf("Build: %w", ErrNeedRandSource)
	}
	rng := o.rng

	width := cfg.Bounds.Max.X - cfg.Bounds.Min.X + 1
	height := cfg.Bounds.Max.Y - cfg.Bounds.Min.Y + 1
	stations := make([]Site, cfg.Stations)
	points := make([]orb.Point, cfg.Stations)
	for i := range stations {
		stations[i].Position = cfg.Bounds.Min.Add(rng.Intn(width), rng.Intn(height))
		stations[i].Properties = cfg.StationCandidates[rng.Intn(len(cfg.StationCandidates))]
		points[i] = stations[i].Position.Point()
	}

	part := kmeans(points, cfg.Centers, rng, o.restarts, o.iterations)

	centers, err := placeCenters(part.centroids, stations, cfg.CollisionRetries, o.logger)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for j := range centers {
		centers[j].Properties = cfg.CenterCandidates[rng.Intn(len(cfg.CenterCandidates))]
	}

	generation, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("Build: generation id: %w", err)
	}

	t, err := Assemble(cfg, Placement{Centers: centers, Stations: stations, Assignment: part.labels})
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	t.generation = generation

	o.logger.Debug("topology built",
		slog.String("generation", generation.String()),
		slog.Int("centers", cfg.Centers),
		slog.Int("stations", cfg.Stations),
		slog.Int("links", len(t.links)),
	)

	return t, nil
}

// placeCenters rounds every centroid and shifts it by (+1,+1) while it lands
// on a station or an already placed center.
func placeCenters(centroids []orb.Point, stations []Site, retries int, logger *slog.Logger) ([]Site, error) {
	occupied := make(map[Position]struct{}, len(stations)+len(centroids))
	for _, s := range stations {
		occupied[s.Position] = struct{}{}
	}

	centers := make([]Site, len(centroids))
	for j, c := range centroids {
		pos := roundPosition(c)
		for shifts := 0; ; shifts++ {
			if _, taken := occupied[pos]; !taken {
				break
			}
			if shifts == retries {
				return nil, fmt.Errorf("center %d still occupied at %v after %d shifts: %w",
					j, pos, retries, ErrDegenerateTopology)
			}
			next := pos.Add(1, 1)
			logger.Warn("center position occupied, shifting",
				slog.String("center", Center(uint32(j)).String()),
				slog.Any("from", pos),
				slog.Any("to", next),
			)
			pos = next
		}
		occupied[pos] = struct{}{}
		centers[j].Position = pos
	}

	return centers, nil
}
