// Package pipeline runs the end-to-end flow: Coxeter matrix → mirrors → flags
// (from the cache or freshly generated) → polytope skeleton.
//
// Cache failures never fail a run. A load error is logged and the flags are
// regenerated; a save error is logged and the freshly generated flags are
// still returned.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/katalvlaran/wythoff/cache"
	"github.com/katalvlaran/wythoff/coxeter"
	"github.com/katalvlaran/wythoff/flag"
	"github.com/katalvlaran/wythoff/internal/config"
	"github.com/katalvlaran/wythoff/orbit"
	"github.com/katalvlaran/wythoff/polytope"
)

// Pipeline holds the collaborators of a run.
type Pipeline struct {
	logger   *slog.Logger
	store    cache.Store
	index    string
	maxFlags int
	edgeCap  int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithStore enables caching through s. Nil disables caching.
func WithStore(s cache.Store) Option {
	return func(p *Pipeline) { p.store = s }
}

// WithIndex selects the generator's discovered-set index (config.IndexLinear
// or config.IndexBucket).
func WithIndex(name string) Option {
	return func(p *Pipeline) { p.index = name }
}

// WithMaxFlags bounds generation; 0 means unlimited.
func WithMaxFlags(n int) Option {
	return func(p *Pipeline) { p.maxFlags = n }
}

// WithEdgeCap is passed to polytope.WithEdgeCap.
func WithEdgeCap(n int) Option {
	return func(p *Pipeline) { p.edgeCap = n }
}

// New returns a Pipeline without cache that uses the bucket index.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:  slog.New(slog.DiscardHandler),
		index:   config.IndexBucket,
		edgeCap: polytope.EdgeCapAuto,
	}
	for _, fn := range opts {
		fn(p)
	}

	return p
}

// FlagSet is the outcome of flag enumeration for one diagram.
type FlagSet struct {
	Matrix    coxeter.Matrix
	CacheName string
	Flags     []flag.Flag
	FromCache bool
	Elapsed   time.Duration
}

// Result is the outcome of a full run.
type Result struct {
	FlagSet
	Rings    []bool
	Skeleton *polytope.Skeleton
}

// Flags returns every flag of m, loading them from the store when possible
// and saving freshly generated ones.
//
// Errors:
//   - coxeter.ErrNotSpherical when m has no finite mirror arrangement; no
//     flags are produced.
//   - orbit errors (flag limit, cancellation).
func (p *Pipeline) Flags(ctx context.Context, m coxeter.Matrix) (*FlagSet, error) {
	start := time.Now()
	name := m.CacheName()
	log := p.logger.With(slog.String("diagram", m.String()), slog.String("cache_name", name))

	mirrorMatrix, err := m.Mirrors()
	if err != nil {
		return nil, fmt.Errorf("pipeline: mirrors: %w", err)
	}

	set := &FlagSet{Matrix: m, CacheName: name}
	if flags, ok := p.load(log, name, m.Dim()); ok {
		set.Flags, set.FromCache = flags, true
		set.Elapsed = time.Since(start)
		return set, nil
	}

	mirrors, err := flag.Columns(mirrorMatrix)
	if err != nil {
		return nil, fmt.Errorf("pipeline: mirrors: %w", err)
	}
	seed, err := flag.FromMirrors(mirrorMatrix)
	if err != nil {
		return nil, fmt.Errorf("pipeline: start flag: %w", err)
	}

	res, err := orbit.Generate(seed, mirrors,
		orbit.WithContext(ctx),
		orbit.WithIndex(p.newIndex()),
		orbit.WithMaxFlags(p.maxFlags),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: generate: %w", err)
	}
	log.Info("flags generated",
		slog.Int("flags", len(res.Flags)),
		slog.Int("reflections", res.Reflections),
		slog.Int("max_stack_depth", res.MaxStackDepth),
		slog.Duration("elapsed", time.Since(start)))

	p.save(log, name, res.Flags)
	set.Flags = res.Flags
	set.Elapsed = time.Since(start)

	return set, nil
}

// Run enumerates the flags of m and extracts the skeleton for rings.
func (p *Pipeline) Run(ctx context.Context, m coxeter.Matrix, rings []bool) (*Result, error) {
	set, err := p.Flags(ctx, m)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	s, err := polytope.Extract(set.Flags, rings, polytope.WithEdgeCap(p.edgeCap))
	if err != nil {
		return nil, fmt.Errorf("pipeline: extract: %w", err)
	}
	p.logger.Info("skeleton extracted",
		slog.Int("vertices", len(s.Vertices)),
		slog.Int("edges", len(s.Edges)),
		slog.Duration("elapsed", time.Since(start)))

	return &Result{FlagSet: *set, Rings: append([]bool(nil), rings...), Skeleton: s}, nil
}

// load returns cached flags, or false when the run must regenerate.
func (p *Pipeline) load(log *slog.Logger, name string, dim int) ([]flag.Flag, bool) {
	if p.store == nil {
		return nil, false
	}
	flags, err := p.store.Load(name, dim)
	switch {
	case errors.Is(err, cache.ErrNotFound):
		log.Info("flag cache miss")
		return nil, false
	case err != nil:
		log.Warn("flag cache unreadable, regenerating", slog.String("error", err.Error()))
		return nil, false
	case len(flags) == 0:
		log.Warn("flag cache empty, regenerating")
		return nil, false
	}
	log.Info("flag cache hit", slog.Int("flags", len(flags)))

	return flags, true
}

// save stores flags; failures are logged only.
func (p *Pipeline) save(log *slog.Logger, name string, flags []flag.Flag) {
	if p.store == nil {
		return
	}
	err := p.store.Save(name, flags)
	switch {
	case err == nil:
		log.Debug("flags cached", slog.Int("flags", len(flags)))
	case errors.Is(err, cache.ErrExists):
		log.Warn("flag cache entry already exists, not overwritten")
	default:
		log.Error("failed to save flags to cache", slog.String("error", err.Error()))
	}
}

func (p *Pipeline) newIndex() orbit.Index {
	if p.index == config.IndexLinear {
		return orbit.NewLinearIndex(flag.DefaultEpsilon2)
	}

	return orbit.NewBucketIndex(flag.DefaultEpsilon2)
}

// OpenStore opens the cache backend described by c. It returns a nil Store
// for config.BackendNone. The badger backend uses config.DefaultBadgerDir
// when c.Dir is empty or ".", keeping its files apart from text entries.
func OpenStore(c config.CacheConfig, logger *slog.Logger) (cache.Store, error) {
	var decode []cache.DecodeOption
	if c.Lenient {
		decode = append(decode, cache.WithLenient())
	}

	switch c.Backend {
	case config.BackendNone:
		return nil, nil
	case config.BackendFile:
		return cache.NewFileStore(c.Dir, decode...), nil
	case config.BackendBadger:
		dir := c.Dir
		if dir == "" || filepath.Clean(dir) == "." {
			dir = config.DefaultBadgerDir
		}
		s, err := cache.OpenBadger(cache.BadgerConfig{
			Path:       dir,
			SyncWrites: true,
			Logger:     logger,
			Decode:     decode,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: cache.backend = %q", config.ErrInvalidConfig, c.Backend)
	}
}
