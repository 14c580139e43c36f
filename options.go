package pomviz

import (
	"errors"
	"log/slog"

	"github.com/pomviz/pomviz/graph"
)

// Option configures graph generation.
type Option func(*config) error

// config holds all generation configuration.
type config struct {
	maxDepth int
	filter   graph.Predicate
	strict   bool

	// logger is the structured logger for debug/warn output.
	// If nil, logging is disabled (silent mode).
	logger *slog.Logger
}

// WithMaxDepth limits how many subdirectory levels below each folder
// are searched for descriptors. Negative means unlimited (the default).
func WithMaxDepth(depth int) Option {
	return func(c *config) error {
		c.maxDepth = depth
		return nil
	}
}

// WithFilter sets the artifact predicate. Artifacts it rejects are
// removed from the graph together with all their edges before cycle
// analysis; a predicate error aborts the run.
func WithFilter(pred graph.Predicate) Option {
	return func(c *config) error {
		if pred == nil {
			return errors.New("filter predicate must not be nil")
		}
		c.filter = pred
		return nil
	}
}

// WithStrict aborts the run on the first malformed descriptor instead
// of logging and skipping it.
func WithStrict() Option {
	return func(c *config) error {
		c.strict = true
		return nil
	}
}

// WithLogger sets a structured logger for scan and analysis
// diagnostics. If not set, logging is disabled (silent mode).
//
// The library uses log/slog, so any backend can be plugged in via a
// handler.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{maxDepth: -1}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// log returns the configured logger, or a discard logger so internal
// code never needs nil checks. Libraries are silent unless the caller
// opts in via WithLogger.
func (c *config) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.New(slog.DiscardHandler)
}
