package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/maximizer/pkg/cache"
	"github.com/matzehuels/maximizer/pkg/errors"
	pkgio "github.com/matzehuels/maximizer/pkg/io"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/observability"
	"github.com/matzehuels/maximizer/pkg/saturate"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// Runner encapsulates run execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads the seed file at path.
func (r *Runner) Load(ctx context.Context, path string) (*pkgio.Seeds, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, path)
	start := time.Now()

	seeds, err := pkgio.ImportSeeds(path)

	n := 0
	if seeds != nil {
		n = seeds.Len()
	}
	hooks.OnParseComplete(ctx, path, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("read seeds", "path", path, "lines", n)
	return seeds, nil
}

// Execute saturates seeds with caching.
//
// If the run stops early (cancellation or the iteration limit), Execute
// returns the partial result together with the error. Partial results are
// never cached.
func (r *Runner) Execute(ctx context.Context, seeds *pkgio.Seeds, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	ab, err := seeds.Alphabet()
	if err != nil {
		return nil, err
	}
	if ab.Size() > opts.MaxAlphabet {
		return nil, errors.New(errors.ErrCodeAlphabetTooLarge,
			"alphabet has %d symbols, limit is %d", ab.Size(), opts.MaxAlphabet)
	}

	result := &Result{
		RunID:    uuid.New(),
		Variant:  opts.Variant,
		Matcher:  opts.Matcher,
		Alphabet: ab.String(),
	}
	logger := opts.Logger.With("run", result.RunID.String()[:8])

	cacheKey := r.Keyer.ResultKey(cache.Hash([]byte(seeds.String())), opts.Variant)
	if !opts.Refresh {
		if cached, ok := r.cached(ctx, cacheKey); ok {
			result.Lines = cached.Lines
			result.Stats = cached.Stats
			result.CacheHit = true
			logger.Info("using cached result", "lines", len(result.Lines))
			return result, nil
		}
	}

	logger.Info("saturating",
		"seeds", seeds.Len(),
		"alphabet", ab.String(),
		"variant", opts.Variant,
		"matcher", opts.Matcher)

	switch opts.Variant {
	case line.VariantSparse:
		lines, err := seeds.Sparse(ab)
		if err != nil {
			return nil, err
		}
		v := line.SparseVariant{Oracle: line.NewOracle(opts.Algorithm())}
		result.Lines, result.Stats, err = solve(ctx, v, lines, ab, opts, logger)
		if err != nil {
			return result, err
		}
	default:
		lines, err := seeds.Fixed(ab)
		if err != nil {
			return nil, err
		}
		v := line.FixedVariant{Oracle: line.NewOracle(opts.Algorithm())}
		result.Lines, result.Stats, err = solve(ctx, v, lines, ab, opts, logger)
		if err != nil {
			return result, err
		}
	}

	r.store(ctx, cacheKey, result)
	return result, nil
}

// solve runs the engine for one variant and formats the antichain.
func solve[L any](ctx context.Context, v line.Variant[L], seeds []L, ab symset.Alphabet, opts Options, logger *log.Logger) ([]string, saturate.Stats, error) {
	engineOpts := saturate.Options[L]{
		Logger:        logger,
		Workers:       opts.Workers,
		MaxIterations: opts.MaxIterations,
	}
	if opts.Observer != nil && !opts.Quiet {
		engineOpts.Observer = formatter(v, ab, opts.Observer)
	}

	e, err := saturate.New(v, seeds, engineOpts)
	if err != nil {
		return nil, saturate.Stats{}, err
	}
	done, err := e.Run(ctx)

	out := make([]string, len(done))
	for i, l := range done {
		out[i] = v.Format(l, ab)
	}
	slices.Sort(out)
	return out, e.Stats(), err
}

// formatter adapts an EventSink to the engine's typed observer.
func formatter[L any](v line.Variant[L], ab symset.Alphabet, sink EventSink) saturate.Observer[L] {
	return saturate.ObserverFuncs[L]{
		OnFound: func(l L, via *L) {
			ev := Event{Kind: saturate.EventFound, Line: v.Format(l, ab)}
			if via != nil {
				ev.Other = v.Format(*via, ab)
			}
			sink(ev)
		},
		OnRemovedFromTodo: func(old, by L) {
			sink(Event{Kind: saturate.EventRemovedFromTodo, Line: v.Format(old, ab), Other: v.Format(by, ab)})
		},
		OnRemovedFromDone: func(old, by L) {
			sink(Event{Kind: saturate.EventRemovedFromDone, Line: v.Format(old, ab), Other: v.Format(by, ab)})
		},
	}
}

func (r *Runner) cached(ctx context.Context, key string) (pkgio.Report, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "result")
		return pkgio.Report{}, false
	}
	rep, err := pkgio.ReadReport(bytes.NewReader(data))
	if err != nil {
		// Unreadable entry - fall through to recompute
		observability.Cache().OnCacheMiss(ctx, "result")
		return pkgio.Report{}, false
	}
	observability.Cache().OnCacheHit(ctx, "result")
	return rep, true
}

func (r *Runner) store(ctx context.Context, key string, result *Result) {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(&buf, result.Report()); err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), ResultTTL); err != nil {
		r.Logger.Warn("could not cache result", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "result", buf.Len())
}

// Export writes result to w in the given format (text or json).
func (r *Runner) Export(ctx context.Context, w io.Writer, result *Result, format string) error {
	hooks := observability.Pipeline()
	hooks.OnExportStart(ctx, format)
	start := time.Now()

	var err error
	switch format {
	case FormatText:
		err = pkgio.WriteText(w, result.Lines)
	case FormatJSON:
		err = pkgio.WriteJSON(w, result.Report())
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "cannot export format %q", format)
	}

	hooks.OnExportComplete(ctx, format, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
