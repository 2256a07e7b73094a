package routing_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunshi1111/Application-de-livraison-express/routing"
	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

func TestOptimalRouteTwoHubs(t *testing.T) {
	t.Parallel()
	e := newEngine(t, twoHubs(t, false))

	r, err := e.OptimalRoute(s0, s1, routing.CategoryExpress)
	require.NoError(t, err)
	assert.True(t, r.Reachable)
	assert.Equal(t, routing.Path{s0, c0, c1, s1}, r.Path)
	assert.Equal(t, routing.MetricTime, r.CostType)
	assert.Equal(t, routing.CategoryExpress, r.Category)
	assert.InDelta(t, 2*highwayDist*0.6+airlineDist*0.25, r.TotalTime, 1e-9)
	assert.InDelta(t, 2*highwayDist*0.12+airlineDist*0.2, r.TotalMoney, 1e-9)
	assert.Equal(t, r.TotalTime, r.TotalCost)
	assert.Len(t, r.Segments, 3)
	assert.Nil(t, r.Avoid)

	std, err := e.OptimalRoute(s0, s1, routing.CategoryStandard)
	require.NoError(t, err)
	assert.Equal(t, routing.MetricMoney, std.CostType)
	assert.Equal(t, std.TotalMoney, std.TotalCost)
	assert.Equal(t, r.Path, std.Path)
}

func TestOptimalRouteCategoriesDiverge(t *testing.T) {
	t.Parallel()
	e := newEngine(t, twoHubs(t, true))

	express, err := e.OptimalRoute(s0, s2, routing.CategoryExpress)
	require.NoError(t, err)
	standard, err := e.OptimalRoute(s0, s2, routing.CategoryStandard)
	require.NoError(t, err)

	require.Equal(t, routing.Path{s0, c0, s2}, express.Path)
	require.Equal(t, routing.Path{s0, s2}, standard.Path)
	require.Less(t, express.TotalTime, standard.TotalTime)
	require.Less(t, standard.TotalMoney, express.TotalMoney)
	require.Equal(t, 2, e.CacheLen())
}

func TestOptimalRouteUnreachable(t *testing.T) {
	t.Parallel()
	e := newEngine(t, twoHubs(t, false))
	require.NoError(t, e.SetLinkCost(routing.MetricMoney, c0, c1, math.Inf(1)))

	r, err := e.OptimalRoute(s0, s1, routing.CategoryStandard)
	require.NoError(t, err)
	require.False(t, r.Reachable)
	require.Empty(t, r.Path)
	require.Empty(t, r.Segments)
	require.True(t, math.IsInf(r.TotalCost, 1))
	require.True(t, math.IsInf(r.TotalTime, 1))
	require.True(t, math.IsInf(r.TotalMoney, 1))

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"src": "s0", "dst": "s1", "category": 0,
		"path": [], "totalCost": null, "costType": "money",
		"reachable": false, "generation": "00000000-0000-0000-0000-000000000000",
		"pathInfo": {"segments": [], "totalTime": null, "totalMoney": null, "optimizedFor": "money"}
	}`, string(raw))
}

func TestOptimalRouteSelf(t *testing.T) {
	e := newEngine(t, twoHubs(t, false))

	r, err := e.OptimalRoute(c0, c0, routing.CategoryExpress)
	require.NoError(t, err)
	require.True(t, r.Reachable)
	require.Equal(t, routing.Path{c0}, r.Path)
	require.Zero(t, r.TotalCost)
	require.Empty(t, r.Segments)
}

func TestOptimalRouteErrors(t *testing.T) {
	e := newEngine(t, twoHubs(t, false))

	_, err := e.OptimalRoute(s0, s1, routing.Category(2))
	require.ErrorIs(t, err, routing.ErrInvalidMetric)
	_, err = e.OptimalRoute(s0, s1, routing.Category(-1))
	require.ErrorIs(t, err, routing.ErrInvalidMetric)
	_, err = e.OptimalRoute(s0, topology.Station(2), routing.CategoryExpress)
	require.ErrorIs(t, err, routing.ErrInvalidNodeReference)
	require.Zero(t, e.CacheLen(), "failed requests are not cached")
}

func TestOptimalRouteCached(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := newEngine(t, twoHubs(t, false), routing.WithLogger(logger))

	first, err := e.OptimalRoute(s0, s1, routing.CategoryExpress)
	require.NoError(t, err)
	second, err := e.OptimalRoute(s0, s1, routing.CategoryExpress)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, e.CacheLen())
	require.Contains(t, logs.String(), "route cache miss")
	require.Contains(t, logs.String(), "route cache hit")

	// callers get copies
	first.Path[0] = c1
	first.Segments[0].Cost = -1
	third, err := e.OptimalRoute(s0, s1, routing.CategoryExpress)
	require.NoError(t, err)
	require.Equal(t, second, third)

	// cost edits alone keep serving the cached route
	require.NoError(t, e.SetLinkCost(routing.MetricTime, c0, c1, 1000))
	stale, err := e.OptimalRoute(s0, s1, routing.CategoryExpress)
	require.NoError(t, err)
	require.Equal(t, second, stale)

	e.ResetCosts()
	require.Zero(t, e.CacheLen())
	require.Contains(t, logs.String(), "costs reset")
}

func TestOptimalRouteConcurrent(t *testing.T) {
	t.Parallel()
	topo, e := builtEngine(t, 21)
	ids := topo.Layout().NodeIDs()

	want := make(map[[2]int]routing.Route)
	for i := 0; i < 6; i++ {
		r, err := e.OptimalRoute(ids[i], ids[len(ids)-1-i], routing.CategoryExpress)
		require.NoError(t, err)
		want[[2]int{i, len(ids) - 1 - i}] = r
	}
	e.ResetCosts()

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for k := 0; k < 20; k++ {
				i := (g + k) % 6
				got, err := e.OptimalRoute(ids[i], ids[len(ids)-1-i], routing.CategoryExpress)
				if err != nil {
					errs <- err
					return
				}
				if !assert.Equal(t, want[[2]int{i, len(ids) - 1 - i}], got) {
					return
				}
				if g == 0 && k%5 == 0 {
					e.ResetCosts()
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.LessOrEqual(t, e.CacheLen(), 6)
}

func TestAlternateRoute(t *testing.T) {
	t.Parallel()
	e := newEngine(t, twoHubs(t, true))

	r, err := e.AlternateRoute(s0, s2, c0, routing.CategoryExpress)
	require.NoError(t, err)
	require.True(t, r.Reachable)
	require.Equal(t, routing.Path{s0, s2}, r.Path)
	require.NotNil(t, r.Avoid)
	require.Equal(t, c0, *r.Avoid)
	require.Len(t, r.Segments, 1)
	require.Zero(t, e.CacheLen(), "alternate routes are not cached")

	none, err := e.AlternateRoute(s0, s1, c0, routing.CategoryStandard)
	require.NoError(t, err)
	require.False(t, none.Reachable)
	require.True(t, math.IsInf(none.TotalMoney, 1))

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "c0", decoded["avoid"])
	require.Equal(t, []interface{}{"s0", "s2"}, decoded["path"])

	_, err = e.AlternateRoute(s0, s2, c0, routing.Category(5))
	require.ErrorIs(t, err, routing.ErrInvalidMetric)
}

func TestResetCostsReproducesRoute(t *testing.T) {
	t.Parallel()
	_, e := builtEngine(t, 13)
	src, dst := topology.Station(2), topology.Station(19)

	for _, c := range []routing.Category{routing.CategoryStandard, routing.CategoryExpress} {
		before, err := e.OptimalRoute(src, dst, c)
		require.NoError(t, err)

		require.NoError(t, e.SetLinkCost(routing.MetricTime, topology.Center(0), topology.Center(1), 0.5))
		require.NoError(t, e.SetLinkCost(routing.MetricMoney, topology.Center(1), topology.Center(2), 0.5))
		e.ResetCosts()

		after, err := e.OptimalRoute(src, dst, c)
		require.NoError(t, err)
		require.Equal(t, before, after)
		require.Equal(t, math.Float64bits(before.TotalTime), math.Float64bits(after.TotalTime))
		require.Equal(t, math.Float64bits(before.TotalMoney), math.Float64bits(after.TotalMoney))
	}
}
