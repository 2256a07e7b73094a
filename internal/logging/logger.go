// Package logging builds the process logger from configuration and hands
// each route-planner package its own component-tagged child.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sunshi1111/Application-de-livraison-express/internal/config"
)

// ComponentKey is the attribute naming the package a record came from.
const ComponentKey = "component"

// Route-planner components.
const (
	ComponentCLI      = "routeplanner"
	ComponentTopology = "topology"
	ComponentRouting  = "routing"
)

// New builds a slog.Logger writing to stderr, configured according to the
// provided logging config. Stdout is left to command output.
func New(cfg config.LoggingConfig) *slog.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Component returns a child of logger whose records carry
// component=name. A nil logger discards.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return logger.With(slog.String(ComponentKey, name))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
