package fileobj

import (
	"log/slog"

	"golang.org/x/term"
)

// DefaultBufferSize is the chunk size used for reads and write staging when
// the stream does not report its own buffer size.
const DefaultBufferSize = 4096

// Delimiter is the line delimiter used by ReadLine, ReadLines and Lines.
const Delimiter byte = '\n'

// config holds the settings applied at construction.
type config struct {
	chunkSize  int
	logger     *slog.Logger
	probe      ProbeFunc
	isTerminal func(fd uintptr) bool
	name       string
}

// newConfig creates a configuration with default values and applies opts.
func newConfig(opts ...Option) *config {
	c := &config{
		chunkSize:  DefaultBufferSize,
		logger:     slog.New(slog.DiscardHandler),
		probe:      Probe,
		isTerminal: isTerminal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func isTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Option configures a File at construction.
type Option func(*config)

// WithChunkSize sets the read chunk and write staging size used when the
// stream does not implement core.Buffered. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithProbe replaces the function used to classify the wrapped object.
func WithProbe(p ProbeFunc) Option {
	return func(c *config) {
		if p != nil {
			c.probe = p
		}
	}
}

// WithTerminalCheck replaces the function IsATTY uses to test a descriptor.
func WithTerminalCheck(fn func(fd uintptr) bool) Option {
	return func(c *config) {
		if fn != nil {
			c.isTerminal = fn
		}
	}
}

// WithName sets a name used in log records, such as a path.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
