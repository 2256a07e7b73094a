// Command routeplanner builds a seeded delivery network and answers one
// route request against it, printing the result as JSON.
//
//	routeplanner -src s0 -dst s17 -category express -avoid c2
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/sunshi1111/Application-de-livraison-express/internal/config"
	"github.com/sunshi1111/Application-de-livraison-express/internal/logging"
	"github.com/sunshi1111/Application-de-livraison-express/routing"
	"github.com/sunshi1111/Application-de-livraison-express/topology"
)

// output is the JSON document written to stdout.
type output struct {
	Generation uuid.UUID          `json:"generation"`
	Route      routing.Route      `json:"route"`
	Alternate  *routing.Route     `json:"alternate,omitempty"`
	Topology   *topology.Topology `json:"topology,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Logging)

	if err := run(os.Args[1:], cfg, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "routeplanner: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	fs := flag.NewFlagSet("routeplanner", flag.ContinueOnError)
	var (
		seed         = fs.Int64("seed", cfg.Network.Seed, "random seed for deterministic generation")
		stations     = fs.Int("stations", cfg.Network.Stations, "number of stations")
		centers      = fs.Int("centers", cfg.Network.Centers, "number of centers")
		src          = fs.String("src", "s0", "source node (c<i> or s<i>)")
		dst          = fs.String("dst", "s1", "destination node (c<i> or s<i>)")
		category     = fs.String("category", "standard", "package category: standard|express (or 0|1)")
		avoid        = fs.String("avoid", "", "node to avoid for an additional alternate route")
		withTopology = fs.Bool("topology", false, "include nodes and links in the output")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Network.Stations = *stations
	cfg.Network.Centers = *centers

	from, err := topology.ParseNodeID(*src)
	if err != nil {
		return err
	}
	to, err := topology.ParseNodeID(*dst)
	if err != nil {
		return err
	}
	cat, err := routing.ParseCategory(*category)
	if err != nil {
		return err
	}

	topo, err := topology.Build(cfg.Topology(),
		topology.WithSeed(*seed),
		topology.WithLogger(logging.Component(logger, logging.ComponentTopology)),
	)
	if err != nil {
		return err
	}
	logging.Component(logger, logging.ComponentCLI).Info("network built",
		slog.String("generation", topo.Generation().String()),
		slog.Int("centers", topo.Layout().Centers),
		slog.Int("stations", topo.Layout().Stations),
		slog.Int("links", len(topo.Links())),
	)

	engine, err := routing.FromTopology(topo, routing.WithLogger(logging.Component(logger, logging.ComponentRouting)))
	if err != nil {
		return err
	}

	out := output{Generation: topo.Generation()}
	if out.Route, err = engine.OptimalRoute(from, to, cat); err != nil {
		return err
	}
	if *avoid != "" {
		blocked, err := topology.ParseNodeID(*avoid)
		if err != nil {
			return err
		}
		alt, err := engine.AlternateRoute(from, to, blocked, cat)
		if err != nil {
			return err
		}
		out.Alternate = &alt
	}
	if *withTopology {
		out.Topology = topo
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
