package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunshi1111/Application-de-livraison-express/routing"
	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

var (
	c0 = topology.Center(0)
	c1 = topology.Center(1)
	s0 = topology.Station(0)
	s1 = topology.Station(1)
	s2 = topology.Station(2)
)

// twoHubs: c0=(10,10), c1=(90,90), s0=(12,12) under c0, s1=(88,88) under c1.
// withRoadStation adds s2=(30,20) under c0, one road away from s0.
func twoHubs(t *testing.T, withRoadStation bool) *topology.Topology {
	t.Helper()

	hub := topology.Properties{Throughput: 100, Delay: 2, HandlingCost: 0.5}
	leaf := topology.Properties{Throughput: 10, Delay: 2, HandlingCost: 0.6}
	p := topology.Placement{
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
	if withRoadStation {
		p.Stations = append(p.Stations, topology.Site{Position: topology.Position{X: 30, Y: 20}, Properties: leaf})
		p.Assignment = append(p.Assignment, 0)
	}

	topo, err := topology.Assemble(topology.DefaultConfig(), p)
	require.NoError(t, err)

	return topo
}

func newEngine(t *testing.T, topo *topology.Topology, opts ...routing.Option) *routing.Engine {
	t.Helper()
	e, err := routing.FromTopology(topo, opts...)
	require.NoError(t, err)

	return e
}

func builtEngine(t *testing.T, seed int64) (*topology.Topology, *routing.Engine) {
	t.Helper()
	topo, err := topology.Build(topology.DefaultConfig(), topology.WithSeed(seed))
	require.NoError(t, err)

	return topo, newEngine(t, topo)
}
