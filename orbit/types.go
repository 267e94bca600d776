// Package orbit defines types and options for enumerating the flags of a
// finite reflection group, including cancellation, a discovery hook, a flag
// budget and a pluggable discovered-set index.
package orbit

import (
	"context"
	"errors"

	"github.com/katalvlaran/wythoff/flag"
)

var (
	// ErrNoMirrors is returned when Generate is called without mirrors.
	ErrNoMirrors = errors.New("orbit: no mirrors")

	// ErrFlagLimit is returned when more flags are discovered than the budget
	// set with WithMaxFlags allows. The group is either infinite or larger
	// than expected.
	ErrFlagLimit = errors.New("orbit: flag limit exceeded")
)

// Option configures optional behavior of Generate.
type Option func(*Options)

// Options holds configurable parameters for flag generation.
type Options struct {
	// Ctx allows cancellation; checked once per traversal step.
	// Defaults to context.Background().
	Ctx context.Context

	// Index is the discovered-set implementation. nil means a bucket index
	// built with Epsilon2.
	Index Index

	// Epsilon2 is the squared-distance tolerance used by the default index.
	Epsilon2 float64

	// MaxFlags, if positive, aborts generation with ErrFlagLimit once more
	// than MaxFlags flags have been discovered. Default 0 (no limit).
	MaxFlags int

	// OnDiscover, if non-nil, is invoked for every new flag (including the
	// start flag, index 0) right after it is added to the index.
	// Returning an error aborts generation with that error.
	OnDiscover func(i int, f flag.Flag) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - bucket index with flag.DefaultEpsilon2
//   - no flag limit
//   - no discovery hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Index:      nil,
		Epsilon2:   flag.DefaultEpsilon2,
		MaxFlags:   0,
		OnDiscover: nil,
	}
}

// WithContext returns an Option that sets the Context for generation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIndex installs a discovered-set implementation. The index must be
// empty; Generate seeds it with the start flag.
func WithIndex(idx Index) Option {
	return func(o *Options) {
		o.Index = idx
	}
}

// WithEpsilon2 sets the squared-distance tolerance of the default index.
// Panics if eps2 is not positive.
func WithEpsilon2(eps2 float64) Option {
	if !(eps2 > 0) {
		panic("orbit: WithEpsilon2 requires eps2 > 0")
	}
	return func(o *Options) {
		o.Epsilon2 = eps2
	}
}

// WithMaxFlags bounds the number of discovered flags. Zero disables the
// bound; negative values panic.
func WithMaxFlags(n int) Option {
	if n < 0 {
		panic("orbit: WithMaxFlags requires n >= 0")
	}
	return func(o *Options) {
		o.MaxFlags = n
	}
}

// WithOnDiscover installs fn as the discovery hook.
func WithOnDiscover(fn func(i int, f flag.Flag) error) Option {
	return func(o *Options) {
		o.OnDiscover = fn
	}
}

// Result captures the outcome of a generation run.
type Result struct {
	// Flags holds every distinct flag in discovery order; Flags[0] is the start flag.
	Flags []flag.Flag

	// Reflections counts candidate flags produced by reflection (one per
	// frame step), including those rejected as already known.
	Reflections int

	// MaxStackDepth is the deepest the frame stack grew.
	MaxStackDepth int
}
