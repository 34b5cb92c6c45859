package saturate

import (
	"context"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/observability"
)

// Options configures an Engine.
type Options[L any] struct {
	// Observer receives engine events. Nil discards them.
	Observer Observer[L]
	// Logger receives progress logs. Nil discards them.
	Logger *log.Logger
	// Workers is the number of concurrent combination calls per round.
	// Values below 2 run serially.
	Workers int
	// MaxIterations bounds the number of lines popped from the work queue.
	// Zero means unbounded.
	MaxIterations int
}

// Stats counts what a run did.
type Stats struct {
	Iterations int           `json:"iterations"` // lines popped from todo
	Accepted   int           `json:"accepted"`   // lines that joined done
	Rejected   int           `json:"rejected"`   // popped lines dominated on arrival
	Retracted  int           `json:"retracted"`  // lines removed by a later acceptance
	Candidates int           `json:"candidates"` // lines produced by combination
	Pruned     int           `json:"pruned"`     // candidates dropped by the round-local antichain
	MemoHits   int           `json:"memo_hits"`  // candidates skipped via the useless memo
	Duration   time.Duration `json:"duration"`
}

type entry[L any] struct {
	line L
	via  *L
}

// Engine runs the saturation loop for one line variant.
type Engine[L any] struct {
	variant line.Variant[L]
	opts    Options[L]
	logger  *log.Logger
	obs     Observer[L]

	todo    []entry[L]
	done    []L
	useless map[string]struct{}
	stats   Stats
}

// New returns an engine whose work queue holds seeds in order.
func New[L any](v line.Variant[L], seeds []L, opts Options[L]) (*Engine[L], error) {
	if len(seeds) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no seed lines")
	}
	e := &Engine[L]{
		variant: v,
		opts:    opts,
		logger:  opts.Logger,
		obs:     opts.Observer,
		todo:    make([]entry[L], 0, len(seeds)),
		useless: make(map[string]struct{}),
	}
	if e.logger == nil {
		e.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if e.obs == nil {
		e.obs = nopObserver[L]{}
	}
	for _, s := range seeds {
		e.todo = append(e.todo, entry[L]{line: s})
	}
	return e, nil
}

// Antichain saturates seeds without observing events.
func Antichain[L any](ctx context.Context, v line.Variant[L], seeds []L) ([]L, error) {
	e, err := New(v, seeds, Options[L]{})
	if err != nil {
		return nil, err
	}
	return e.Run(ctx)
}

// Run processes the work queue until it is empty and returns the antichain.
//
// If ctx is done or MaxIterations is reached first, Run returns the current
// antichain together with an error; a later call continues the same run.
func (e *Engine[L]) Run(ctx context.Context) ([]L, error) {
	start := time.Now()
	name := e.variant.Name()
	hooks := observability.Saturation()
	hooks.OnRunStart(ctx, name, len(e.todo))
	e.logger.Debug("saturation started", "variant", name, "queued", len(e.todo), "workers", e.opts.Workers)

	err := e.loop(ctx)

	e.stats.Duration += time.Since(start)
	hooks.OnRunComplete(ctx, name, len(e.done), e.stats.Iterations, e.stats.Duration, err)
	if err != nil {
		e.logger.Warn("saturation stopped", "variant", name, "lines", len(e.done), "queued", len(e.todo), "err", err)
	} else {
		e.logger.Info("saturation finished",
			"variant", name,
			"lines", len(e.done),
			"iterations", e.stats.Iterations,
			"memoized", len(e.useless),
			"duration", e.stats.Duration.Round(time.Millisecond))
	}
	return e.Done(), err
}

func (e *Engine[L]) loop(ctx context.Context) error {
	name := e.variant.Name()
	hooks := observability.Saturation()
	for len(e.todo) > 0 {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(errors.ErrCodeCanceled, err, "saturation interrupted after %d iterations", e.stats.Iterations)
		}
		if e.opts.MaxIterations > 0 && e.stats.Iterations >= e.opts.MaxIterations {
			return errors.New(errors.ErrCodeIterationLimit, "iteration limit of %d reached with %d lines queued",
				e.opts.MaxIterations, len(e.todo))
		}

		cur := e.todo[0]
		e.todo[0] = entry[L]{}
		e.todo = e.todo[1:]
		e.stats.Iterations++

		if e.dominated(cur.line) {
			e.useless[e.variant.Key(cur.line)] = struct{}{}
			e.stats.Rejected++
			continue
		}

		e.stats.Accepted++
		e.obs.Found(cur.line, cur.via)
		e.retract(ctx, cur.line)
		e.done = append(e.done, cur.line)
		hooks.OnAccept(ctx, name, len(e.done))

		if e.stats.Iterations%1000 == 0 {
			e.logger.Debug("saturation progress", "iterations", e.stats.Iterations, "lines", len(e.done), "queued", len(e.todo))
		}

		// Survivors of later calls see the keys memoized while merging
		// earlier ones.
		for _, survivors := range e.round(cur.line) {
			for _, c := range survivors {
				key := e.variant.Key(c)
				if _, ok := e.useless[key]; ok {
					e.stats.MemoHits++
					continue
				}
				if e.dominated(c) {
					e.useless[key] = struct{}{}
					continue
				}
				via := cur.line
				e.todo = append(e.todo, entry[L]{line: c, via: &via})
			}
		}
	}
	return nil
}

// dominated reports whether some line in todo or done dominates l.
func (e *Engine[L]) dominated(l L) bool {
	for _, t := range e.todo {
		if e.variant.Dominates(t.line, l) {
			return true
		}
	}
	for _, d := range e.done {
		if e.variant.Dominates(d, l) {
			return true
		}
	}
	return false
}

// retract removes every line that by dominates from todo and done, keeping
// the order of the remaining lines.
func (e *Engine[L]) retract(ctx context.Context, by L) {
	hooks := observability.Saturation()
	name := e.variant.Name()

	e.todo = slices.DeleteFunc(e.todo, func(t entry[L]) bool {
		if !e.variant.Dominates(by, t.line) {
			return false
		}
		e.obs.RemovedFromTodo(t.line, by)
		hooks.OnRetract(ctx, name, false)
		e.stats.Retracted++
		return true
	})
	e.done = slices.DeleteFunc(e.done, func(d L) bool {
		if !e.variant.Dominates(by, d) {
			return false
		}
		e.obs.RemovedFromDone(d, by)
		hooks.OnRetract(ctx, name, true)
		e.stats.Retracted++
		return true
	})
}

// roundResult holds the pruned candidates of one combination call.
type roundResult[L any] struct {
	lines      []L
	candidates int
	pruned     int
	memoHits   int
}

// round combines every line of done with l and returns the pruned
// candidates of each call in done order.
func (e *Engine[L]) round(l L) [][]L {
	results := make([]roundResult[L], len(e.done))

	if e.opts.Workers > 1 && len(e.done) > 1 {
		var g errgroup.Group
		g.SetLimit(e.opts.Workers)
		for i, d := range e.done {
			g.Go(func() error {
				results[i] = e.prune(d, l)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, d := range e.done {
			results[i] = e.prune(d, l)
		}
	}

	out := make([][]L, len(results))
	for i, r := range results {
		e.stats.Candidates += r.candidates
		e.stats.Pruned += r.pruned
		e.stats.MemoHits += r.memoHits
		out[i] = r.lines
	}
	return out
}

// prune reduces the candidates of combining d with l to an antichain,
// skipping keys memoized before the round started. It only reads engine
// state, so calls for different d may run concurrently.
func (e *Engine[L]) prune(d, l L) roundResult[L] {
	var r roundResult[L]
	for c := range e.variant.Combine(d, l) {
		r.candidates++
		if _, ok := e.useless[e.variant.Key(c)]; ok {
			r.memoHits++
			continue
		}
		if slices.ContainsFunc(r.lines, func(k L) bool { return e.variant.Dominates(k, c) }) {
			r.pruned++
			continue
		}
		before := len(r.lines)
		r.lines = slices.DeleteFunc(r.lines, func(k L) bool { return e.variant.Dominates(c, k) })
		r.pruned += before - len(r.lines)
		r.lines = append(r.lines, c)
	}
	return r
}

// Done returns a copy of the current antichain.
func (e *Engine[L]) Done() []L {
	return slices.Clone(e.done)
}

// Todo returns a copy of the lines still queued.
func (e *Engine[L]) Todo() []L {
	out := make([]L, len(e.todo))
	for i, t := range e.todo {
		out[i] = t.line
	}
	return out
}

// Stats returns the counters accumulated so far.
func (e *Engine[L]) Stats() Stats {
	return e.stats
}
