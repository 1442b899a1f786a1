package arena

import (
	"io"
	"log/slog"
)

type config struct {
	maxChunks int
	logger    *slog.Logger
	name      string
}

// Option configures an Arena, a Store or a Multi.
type Option func(*config)

// WithMaxChunks bounds the number of chunks an arena may hold.
// Growing past the bound panics with an *AllocationError.
// n <= 0 means unbounded, which is the default.
func WithMaxChunks(n int) Option {
	return func(c *config) {
		c.maxChunks = n
	}
}

// WithLogger sets the structured logger used for chunk growth and
// lifecycle events. All records are emitted at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithName sets the label reported in logs and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConfig(opts []Option) config {
	c := config{logger: discardLogger}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
