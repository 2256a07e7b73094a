// SPDX-License-Identifier: MIT
// Package: routing
//
// cache.go — memoized OptimalRoute results.
//
// Invariants:
//   - get/put/reset are linearizable under mu.
//   - Every reset bumps epoch; put only stores a route computed in the
//     current epoch, so a computation that straddles ResetCosts never
//     repopulates the fresh cache.
//   - Singleflight keys carry the epoch: requests after a reset never join
//     a flight started before it.

package routing

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// routeKey identifies a cached OptimalRoute request.
type routeKey struct {
	src, dst topology.NodeID
	category Category
}

func (k routeKey) String() string {
	return fmt.Sprintf("%s→%s/%s", k.src, k.dst, k.category)
}

// flight is the singleflight key of k within epoch.
func (k routeKey) flight(epoch uint64) string {
	return fmt.Sprintf("%d/%s/%s/%d", epoch, k.src, k.dst, int(k.category))
}

type routeCache struct {
	group singleflight.Group

	mu     sync.RWMutex
	epoch  uint64
	routes map[routeKey]Route
}

func newRouteCache() *routeCache {
	return &routeCache{routes: make(map[routeKey]Route)}
}

func (c *routeCache) get(k routeKey) (Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.routes[k]

	return r, ok
}

func (c *routeCache) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.epoch
}

// put stores r unless a reset happened since epoch; reports whether it did.
func (c *routeCache) put(k routeKey, r Route, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return false
	}
	c.routes[k] = r

	return true
}

// reset empties the cache and starts a new epoch; returns the number of
// dropped routes.
func (c *routeCache) reset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.routes)
	c.routes = make(map[routeKey]Route)
	c.epoch++

	return n
}

func (c *routeCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.routes)
}
