// Package livraison is the routing core of an express delivery network:
// least-cost and least-time routes through a two-tier logistics network of
// regional stations clustered under hub centers.
//
// The module is organized as:
//
//	matrix/            — dense float64 cost matrices, validators, Floyd–Warshall
//	topology/          — network generation: stations, k-means centers,
//	                     airline/highway/road links, node-split cost matrices
//	routing/           — Bellman–Ford shortest and alternate paths, path cost
//	                     decomposition, cached category routes, cost reset
//	internal/config/   — environment (+ .env) configuration
//	internal/logging/  — slog logger construction
//	cmd/routeplanner/  — CLI printing one route request as JSON
//
// Node splitting:
//
//	      processing (handling cost)
//	entry(n) ─────────────────────▶ exit(n) ───link───▶ entry(m)
//
// Every node owns an entry and an exit index; links always run from an exit
// to an entry, so a node's handling cost is paid exactly once per visit.
//
// Quick start:
//
//	topo, _ := topology.Build(topology.DefaultConfig(), topology.WithSeed(42))
//	engine, _ := routing.FromTopology(topo)
//	route, _ := engine.OptimalRoute(topology.Station(0), topology.Station(7), routing.CategoryExpress)
package livraison
