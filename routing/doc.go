// Package routing answers least-cost and least-time route queries over the
// node-split cost matrices built by package topology.
//
// An Engine owns working copies of the time and money matrices plus a
// snapshot taken at construction:
//
//   - ShortestPath runs Bellman–Ford from entry(src) and reads the node path
//     back from entry(dst). Unreachable destinations give an empty Path.
//   - AlternatePath does the same on a transient copy in which one node's
//     entry and exit rows and columns are cut off.
//   - PathCost decomposes a node path into per-hop Segments.
//   - OptimalRoute maps a Category to a Metric (standard → money,
//     express → time), measures the chosen path under both metrics and
//     caches the Route per (src, dst, category).
//   - SetLinkCost edits a working cell; ResetCosts restores the snapshot and
//     empties the cache.
//   - AllPairs tabulates node-to-node least costs with Floyd–Warshall.
//
// All methods are safe for concurrent use. Errors are package sentinels
// (errors.go); ErrInvalidNodeReference is shared with package topology.
package routing
