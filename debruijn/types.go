package debruijn

import (
	"context"
	"errors"
)

// MaxNodes caps the size of an explicit graph.
const MaxNodes = 1 << 20

var (
	// ErrInvalidParameter indicates order < 1 or sigma < 2.
	ErrInvalidParameter = errors.New("debruijn: invalid parameter")

	// ErrTooLarge indicates σ^k exceeds MaxNodes.
	ErrTooLarge = errors.New("debruijn: graph too large")

	// ErrEmptyCycle indicates a cycle with fewer than two nodes.
	ErrEmptyCycle = errors.New("debruijn: empty cycle")

	// ErrNotClosed indicates the first and last nodes differ.
	ErrNotClosed = errors.New("debruijn: cycle is not closed")

	// ErrBadNode indicates a node of wrong length or with a letter ≥ σ.
	ErrBadNode = errors.New("debruijn: node not in graph")

	// ErrMissingEdge indicates consecutive nodes that do not overlap in k−1 letters.
	ErrMissingEdge = errors.New("debruijn: missing edge")

	// ErrNotSimple indicates a node visited twice (closing repeat excepted).
	ErrNotSimple = errors.New("debruijn: cycle is not simple")
)

// Option configures SimpleCycles.
type Option func(*Options)

// Options holds SimpleCycles settings.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
