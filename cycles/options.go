package cycles

import (
	"io"
	"log/slog"
)

// Option configures optional behavior of the enumeration and counting drivers.
type Option func(*Options)

// Options holds driver settings.
type Options struct {
	// Logger receives one Debug record per driver call (parameters, words
	// scanned, cycles kept, provenance). Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns Options with a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger routes driver diagnostics to l. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
