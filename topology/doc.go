// Package topology builds the two-tier logistics network the routing engine
// searches.
//
// A network has Centers hub nodes and Stations leaf nodes. Build places the
// stations at random, groups them with seeded k-means, puts a center at each
// rounded centroid and connects everything with three link classes:
//
//   - Airline: every pair of centers.
//   - Highway: every station to the center of its cluster.
//   - Road: station pairs closer than Config.RoadThreshold.
//
// Every node is split into an entry and an exit index (see Layout) so that
// handling costs sit on the entry→exit edge and links run exit→entry. The
// resulting time and money matrices are *matrix.Dense with +Inf as "no edge".
//
// Assemble does the same link and matrix work for a caller-supplied
// Placement, which is how fixed networks (and tests) are expressed.
//
// Determinism: Build draws from exactly one RNG (WithSeed/WithRand) in a
// fixed order; equal seeds and configs give equal networks, generation ids
// included.
package topology
