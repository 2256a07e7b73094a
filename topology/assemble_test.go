package topology_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// twoHubPlacement is the smallest two-tier network: c0=(10,10), c1=(90,90),
// s0=(12,12) under c0, s1=(88,88) under c1. No road qualifies.
func twoHubPlacement() topology.Placement {
	hub := topology.Properties{Throughput: 100, Delay: 2, HandlingCost: 0.5}
	leaf := topology.Properties{Throughput: 10, Delay: 2, HandlingCost: 0.6}

	return topology.Placement{
		Centers: []topology.Site{
			{Position: topology.Position{X: 10, Y: 10}, Properties: hub},
			{Position: topology.Position{X: 90, Y: 90}, Properties: hub},
		},
		Stations: []topology.Site{
			{Position: topology.Position{X: 12, Y: 12}, Properties: leaf},
			{Position: topology.Position{X: 88, Y: 88}, Properties: leaf},
		},
		Assignment: []int{0, 1},
	}
}

func cell(t *testing.T, m interface{ At(i, j int) (float64, error) }, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestAssembleTwoHubs(t *testing.T) {
	t.Parallel()

	cfg := topology.DefaultConfig()
	topo, err := topology.Assemble(cfg, twoHubPlacement())
	require.NoError(t, err)

	require.Equal(t, topology.Layout{Centers: 2, Stations: 2}, topo.Layout())
	require.Equal(t, uuid.Nil, topo.Generation())
	require.Len(t, topo.Links(), 6)
	require.Len(t, topo.LinksByClass(topology.Airline), 2)
	require.Len(t, topo.LinksByClass(topology.Highway), 4)
	require.Empty(t, topo.LinksByClass(topology.Road))

	tm, mm := topo.TimeMatrix(), topo.MoneyMatrix()
	require.Equal(t, 8, tm.Rows())

	// c0=0/1, c1=2/3, s0=4/5, s1=6/7
	airline := 80 * math.Sqrt2
	highway := 2 * math.Sqrt2
	assert.InDelta(t, airline*0.25, cell(t, tm, 1, 2), 1e-12)
	assert.InDelta(t, airline*0.25, cell(t, tm, 3, 0), 1e-12)
	assert.InDelta(t, airline*0.2, cell(t, mm, 1, 2), 1e-12)
	assert.InDelta(t, highway*0.6, cell(t, tm, 5, 0), 1e-12)
	assert.InDelta(t, highway*0.12, cell(t, mm, 1, 4), 1e-12)
	assert.True(t, math.IsInf(cell(t, tm, 5, 6), 1), "no road s0→s1")
	assert.True(t, math.IsInf(cell(t, tm, 0, 2), 1), "links leave exits only")

	for _, id := range topo.Layout().NodeIDs() {
		entry, err := topo.Layout().EntryIndex(id)
		require.NoError(t, err)
		node, err := topo.Node(id)
		require.NoError(t, err)

		require.Equal(t, topology.ProcessingTime, cell(t, tm, entry, entry+1))
		require.Equal(t, node.Properties.HandlingCost, cell(t, mm, entry, entry+1))
		require.True(t, math.IsInf(cell(t, tm, entry+1, entry), 1))
		require.True(t, math.IsInf(cell(t, mm, entry+1, entry), 1))
		require.True(t, math.IsInf(cell(t, tm, entry, entry), 1))
	}
}

func TestAssembleLinksAreSymmetricPairs(t *testing.T) {
	cfg := topology.DefaultConfig()
	p := twoHubPlacement()
	p.Stations = append(p.Stations, topology.Site{
		Position:   topology.Position{X: 30, Y: 20},
		Properties: topology.Properties{Throughput: 20, Delay: 1, HandlingCost: 0.8},
	})
	p.Assignment = append(p.Assignment, 0)

	topo, err := topology.Assemble(cfg, p)
	require.NoError(t, err)

	roads := topo.LinksByClass(topology.Road)
	require.Len(t, roads, 2) // s0–s2 only: |(12,12)-(30,20)| ≈ 19.7
	require.Equal(t, topology.Station(0), roads[0].From)
	require.Equal(t, topology.Station(2), roads[0].To)

	links := topo.Links()
	require.Zero(t, len(links)%2)
	for i := 0; i < len(links); i += 2 {
		a, b := links[i], links[i+1]
		require.Equal(t, a.From, b.To)
		require.Equal(t, a.To, b.From)
		require.Equal(t, a.Class, b.Class)
		require.Equal(t, a.Time, b.Time)
		require.Equal(t, a.Money, b.Money)
		require.Greater(t, a.Distance, 0.0)
	}

	cluster, err := topo.Cluster(topology.Center(0))
	require.NoError(t, err)
	require.Equal(t, []topology.NodeID{topology.Station(0), topology.Station(2)}, cluster)

	owner, err := topo.CenterOf(topology.Station(1))
	require.NoError(t, err)
	require.Equal(t, topology.Center(1), owner)

	_, err = topo.Cluster(topology.Station(0))
	require.ErrorIs(t, err, topology.ErrInvalidNodeReference)
	_, err = topo.CenterOf(topology.Station(9))
	require.ErrorIs(t, err, topology.ErrInvalidNodeReference)

	b := topo.Bound()
	require.Equal(t, 10.0, b.Min.X())
	require.Equal(t, 90.0, b.Max.Y())
}

func TestAssembleRoadThresholdIsStrict(t *testing.T) {
	cfg := topology.DefaultConfig()
	cfg.RoadThreshold = 5

	p := twoHubPlacement()
	p.Stations[1].Position = topology.Position{X: 15, Y: 16} // |(12,12)-(15,16)| == 5

	topo, err := topology.Assemble(cfg, p)
	require.NoError(t, err)
	require.Empty(t, topo.LinksByClass(topology.Road))

	cfg.RoadThreshold = 5.0001
	topo, err = topology.Assemble(cfg, p)
	require.NoError(t, err)
	require.Len(t, topo.LinksByClass(topology.Road), 2)
}

func TestAssembleErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(p *topology.Placement)
		want   error
	}{
		{"no centers", func(p *topology.Placement) { p.Centers = nil }, topology.ErrInvalidConfig},
		{"short assignment", func(p *topology.Placement) { p.Assignment = p.Assignment[:1] }, topology.ErrInvalidConfig},
		{"missing center", func(p *topology.Placement) { p.Assignment[1] = 2 }, topology.ErrInvalidConfig},
		{"zero cost", func(p *topology.Placement) { p.Stations[0].Properties.HandlingCost = 0 }, topology.ErrInvalidConfig},
		{"center on station", func(p *topology.Placement) { p.Centers[0].Position = p.Stations[0].Position }, topology.ErrDegenerateTopology},
		{"stacked centers", func(p *topology.Placement) { p.Centers[1].Position = p.Centers[0].Position }, topology.ErrDegenerateTopology},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := twoHubPlacement()
			tc.mutate(&p)
			_, err := topology.Assemble(topology.DefaultConfig(), p)
			require.ErrorIs(t, err, tc.want)
		})
	}

	cfg := topology.DefaultConfig()
	cfg.Airline.Money = 0
	_, err := topology.Assemble(cfg, twoHubPlacement())
	require.ErrorIs(t, err, topology.ErrInvalidConfig)
}

func TestTopologyAccessorsCopy(t *testing.T) {
	topo, err := topology.Assemble(topology.DefaultConfig(), twoHubPlacement())
	require.NoError(t, err)

	nodes := topo.Nodes()
	nodes[0].Position = topology.Position{X: -1, Y: -1}
	n, err := topo.Node(topology.Center(0))
	require.NoError(t, err)
	require.Equal(t, topology.Position{X: 10, Y: 10}, n.Position)

	tm := topo.TimeMatrix()
	require.NoError(t, tm.Set(1, 2, 0))
	require.NotEqual(t, 0.0, cell(t, topo.TimeMatrix(), 1, 2))

	_, err = topo.Node(topology.Station(5))
	require.ErrorIs(t, err, topology.ErrInvalidNodeReference)
}
