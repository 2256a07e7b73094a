package topology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, topology.DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *topology.Config)
	}{
		{"no stations", func(c *topology.Config) { c.Stations = 0 }},
		{"no centers", func(c *topology.Config) { c.Centers = 0 }},
		{"more centers than stations", func(c *topology.Config) { c.Centers = c.Stations + 1 }},
		{"inverted bounds", func(c *topology.Config) { c.Bounds.Min.X = 200 }},
		{"no station candidates", func(c *topology.Config) { c.StationCandidates = nil }},
		{"no center candidates", func(c *topology.Config) { c.CenterCandidates = nil }},
		{"zero handling cost", func(c *topology.Config) { c.StationCandidates[0].HandlingCost = 0 }},
		{"negative delay", func(c *topology.Config) { c.CenterCandidates[1].Delay = -1 }},
		{"zero throughput", func(c *topology.Config) { c.CenterCandidates[1].Throughput = 0 }},
		{"zero airline time", func(c *topology.Config) { c.Airline.Time = 0 }},
		{"negative road money", func(c *topology.Config) { c.Road.Money = -0.1 }},
		{"inf highway time", func(c *topology.Config) { c.Highway.Time = math.Inf(1) }},
		{"nan threshold", func(c *topology.Config) { c.RoadThreshold = math.NaN() }},
		{"zero threshold", func(c *topology.Config) { c.RoadThreshold = 0 }},
		{"no retries", func(c *topology.Config) { c.CollisionRetries = 0 }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := topology.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), topology.ErrInvalidConfig)
		})
	}
}

func TestConfigCoefficients(t *testing.T) {
	cfg := topology.DefaultConfig()

	k, err := cfg.Coefficients(topology.Road)
	require.NoError(t, err)
	require.Equal(t, topology.Coefficients{Time: 0.8, Money: 0.07}, k)

	_, err = cfg.Coefficients(topology.LinkClass(0))
	require.ErrorIs(t, err, topology.ErrInvalidConfig)
}

func TestLinkClassText(t *testing.T) {
	for _, c := range []topology.LinkClass{topology.Airline, topology.Highway, topology.Road} {
		text, err := c.MarshalText()
		require.NoError(t, err)

		var back topology.LinkClass
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, c, back)
	}

	_, err := topology.LinkClass(9).MarshalText()
	require.ErrorIs(t, err, topology.ErrInvalidConfig)
	_, err = topology.ParseLinkClass("rail")
	require.ErrorIs(t, err, topology.ErrInvalidConfig)
}
