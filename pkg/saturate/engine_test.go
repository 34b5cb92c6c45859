package saturate_test

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/maximizer/pkg/errors"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/saturate"
	"github.com/matzehuels/maximizer/pkg/symset"
)

var (
	abc   = mustAlphabet("abc")
	fixed = line.FixedVariant{}
)

func mustAlphabet(symbols string) symset.Alphabet {
	ab, err := symset.AlphabetOf([]byte(symbols)...)
	if err != nil {
		panic(err)
	}
	return ab
}

func parseFixed(t testing.TB, text string) line.Fixed {
	t.Helper()
	var coords []symset.Set
	for _, tok := range strings.Fields(text) {
		s, err := abc.Encode(tok)
		require.NoError(t, err)
		coords = append(coords, s)
	}
	l, err := line.NewFixed(coords...)
	require.NoError(t, err)
	return l
}

func seeds(t testing.TB, texts ...string) []line.Fixed {
	out := make([]line.Fixed, len(texts))
	for i, s := range texts {
		out[i] = parseFixed(t, s)
	}
	return out
}

func dump[L any](v line.Variant[L], ab symset.Alphabet, lines []L) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = v.Format(l, ab)
	}
	slices.Sort(out)
	return out
}

// trace renders recorded events the way the CLI prints them.
func trace[L any](v line.Variant[L], ab symset.Alphabet, events []saturate.Event[L]) []string {
	var out []string
	for _, e := range events {
		s := e.Kind.String() + ": " + v.Format(e.Line, ab)
		if e.Other != nil {
			sep := " < "
			if e.Kind == saturate.EventFound {
				sep = " via "
			}
			s += sep + v.Format(*e.Other, ab)
		}
		out = append(out, s)
	}
	return out
}

func TestReferenceRun(t *testing.T) {
	rec := &saturate.Recorder[line.Fixed]{}
	e, err := saturate.New(fixed, seeds(t, "ab ac", "a abc"), saturate.Options[line.Fixed]{Observer: rec})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a abc", "ab ac"}, dump(fixed, abc, got))
	assert.Equal(t, []string{"found: ab ac", "found: a abc"}, trace(fixed, abc, rec.Events()))

	stats := e.Stats()
	assert.Equal(t, 2, stats.Iterations)
	assert.Equal(t, 2, stats.Accepted)
	assert.Equal(t, 0, stats.Rejected)
	assert.Equal(t, 2, stats.Candidates)
	assert.Equal(t, 1, stats.Pruned)
	assert.Empty(t, e.Todo())
}

func TestRetractFromTodo(t *testing.T) {
	rec := &saturate.Recorder[line.Fixed]{}
	e, err := saturate.New(fixed, seeds(t, "ab ab", "a b"), saturate.Options[line.Fixed]{Observer: rec})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ab ab"}, dump(fixed, abc, got))
	assert.Equal(t, []string{
		"found: ab ab",
		"removed from todo: a b < ab ab",
	}, trace(fixed, abc, rec.Events()))
	assert.Equal(t, 1, e.Stats().Retracted)
}

func TestRejectDominatedSeed(t *testing.T) {
	rec := &saturate.Recorder[line.Fixed]{}
	e, err := saturate.New(fixed, seeds(t, "a b", "ab ab"), saturate.Options[line.Fixed]{Observer: rec})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ab ab"}, dump(fixed, abc, got))
	assert.Equal(t, []string{"found: ab ab"}, trace(fixed, abc, rec.Events()))
	assert.Equal(t, 1, e.Stats().Rejected)
}

func TestRetractFromDone(t *testing.T) {
	rec := &saturate.Recorder[line.Fixed]{}
	e, err := saturate.New(fixed, seeds(t, "ab b", "a ab"), saturate.Options[line.Fixed]{Observer: rec})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ab ab"}, dump(fixed, abc, got))
	assert.Equal(t, []string{
		"found: ab b",
		"found: a ab",
		"found: ab ab via a ab",
		"removed from done: ab b < ab ab",
		"removed from done: a ab < ab ab",
	}, trace(fixed, abc, rec.Events()))
}

func TestNewRejectsEmptySeeds(t *testing.T) {
	_, err := saturate.New(fixed, nil, saturate.Options[line.Fixed]{})
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput))

	_, err = saturate.Antichain(context.Background(), fixed, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput))
}

func TestObserverFuncs(t *testing.T) {
	var found, removed int
	obs := saturate.ObserverFuncs[line.Fixed]{
		OnFound:           func(line.Fixed, *line.Fixed) { found++ },
		OnRemovedFromTodo: func(_, _ line.Fixed) { removed++ },
	}
	e, err := saturate.New(fixed, seeds(t, "ab ab", "a b"), saturate.Options[line.Fixed]{Observer: obs})
	require.NoError(t, err)
	_, err = e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, found)
	assert.Equal(t, 1, removed)
}

func TestCanceledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, err := saturate.New(fixed, seeds(t, "ab ac", "a abc"), saturate.Options[line.Fixed]{})
	require.NoError(t, err)
	got, err := e.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.Is(err, errors.ErrCodeCanceled))
	assert.Empty(t, got)
	assert.Len(t, e.Todo(), 2)
}

func TestCancelAndResume(t *testing.T) {
	input := seeds(t, "ab b", "a ab")
	want, err := saturate.Antichain(context.Background(), fixed, input)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	obs := saturate.ObserverFuncs[line.Fixed]{
		OnFound: func(line.Fixed, *line.Fixed) { cancel() },
	}
	e, err := saturate.New(fixed, input, saturate.Options[line.Fixed]{Observer: obs})
	require.NoError(t, err)

	partial, err := e.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"ab b"}, dump(fixed, abc, partial))

	got, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dump(fixed, abc, want), dump(fixed, abc, got))
}

func TestIterationLimit(t *testing.T) {
	e, err := saturate.New(fixed, seeds(t, "ab ac", "a abc"), saturate.Options[line.Fixed]{MaxIterations: 1})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	assert.True(t, errors.Is(err, errors.ErrCodeIterationLimit))
	assert.Equal(t, []string{"ab ac"}, dump(fixed, abc, got))
	assert.Equal(t, 1, e.Stats().Iterations)
}

func TestStatsDurationAccumulates(t *testing.T) {
	e, err := saturate.New(fixed, seeds(t, "ab ac", "a abc"), saturate.Options[line.Fixed]{})
	require.NoError(t, err)
	_, err = e.Run(context.Background())
	require.NoError(t, err)
	assert.Positive(t, e.Stats().Duration)
}

func randomSeeds(r *rand.Rand, count, degree, syms int) []line.Fixed {
	out := make([]line.Fixed, count)
	for i := range out {
		l := make(line.Fixed, degree)
		for k := range l {
			for l[k].IsEmpty() {
				l[k] = symset.Set{r.Uint64N(1 << syms)}
			}
		}
		out[i] = l
	}
	return out
}

func isAntichain[L any](v line.Variant[L], lines []L) bool {
	for i := range lines {
		for j := range lines {
			if i != j && v.Dominates(lines[i], lines[j]) {
				return false
			}
		}
	}
	return true
}

func keys[L any](v line.Variant[L], lines []L) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = v.Key(l)
	}
	slices.Sort(out)
	return out
}

// requireAntichainAfterEachPop runs seeds once per iteration bound k and
// checks done after the k-th pop. Runs are deterministic, so the engine with
// bound k stops exactly where a longer run passes its k-th iteration.
func requireAntichainAfterEachPop[L any](t *testing.T, v line.Variant[L], input []L, maxSteps int) {
	t.Helper()
	for k := 1; k <= maxSteps; k++ {
		e, err := saturate.New(v, input, saturate.Options[L]{MaxIterations: k})
		require.NoError(t, err)
		got, err := e.Run(context.Background())
		require.True(t, isAntichain(v, got), "after %d pops", k)
		require.True(t, isAntichain(v, e.Done()), "after %d pops", k)
		if err == nil {
			return
		}
		require.True(t, errors.Is(err, errors.ErrCodeIterationLimit))
		require.Equal(t, k, e.Stats().Iterations)
	}
}

func TestDoneIsAntichainBetweenIterations(t *testing.T) {
	requireAntichainAfterEachPop[line.Fixed](t, fixed, seeds(t, "a a", "b ac", "c ab"), 50)

	r := rand.New(rand.NewPCG(31, 7))
	for round := 0; round < 8; round++ {
		requireAntichainAfterEachPop[line.Fixed](t, fixed, randomSeeds(r, 2+r.IntN(3), 2, 3), 200)
	}
}

func TestMemoSharedAcrossRound(t *testing.T) {
	e, err := saturate.New(fixed, seeds(t, "a a", "b ac", "c ab"), saturate.Options[line.Fixed]{})
	require.NoError(t, err)

	got, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a abc", "ab ac"}, dump(fixed, abc, got))

	stats := e.Stats()
	stats.Duration = 0
	assert.Equal(t, saturate.Stats{
		Iterations: 8,
		Accepted:   6,
		Rejected:   2,
		Retracted:  4,
		Candidates: 12,
		Pruned:     3,
		MemoHits:   1,
	}, stats)
}

func TestRandomRunsProduceClosedAntichains(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 6))
	for round := 0; round < 25; round++ {
		degree := 2 + r.IntN(2)
		syms := 5 - degree
		input := randomSeeds(r, 2+r.IntN(3), degree, syms)

		got, err := saturate.Antichain(context.Background(), fixed, input)
		require.NoError(t, err)
		require.True(t, isAntichain[line.Fixed](fixed, got), "round %d", round)

		// Every seed is covered by the result.
		for _, s := range input {
			require.True(t, slices.ContainsFunc(got, func(l line.Fixed) bool { return fixed.Dominates(l, s) }))
		}

		// Saturating the result again changes nothing.
		again, err := saturate.Antichain(context.Background(), fixed, got)
		require.NoError(t, err)
		require.Equal(t, keys[line.Fixed](fixed, got), keys[line.Fixed](fixed, again), "round %d", round)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	for round := 0; round < 10; round++ {
		input := randomSeeds(r, 3, 3, 3)

		serial := &saturate.Recorder[line.Fixed]{}
		e1, err := saturate.New(fixed, input, saturate.Options[line.Fixed]{Observer: serial})
		require.NoError(t, err)
		want, err := e1.Run(context.Background())
		require.NoError(t, err)

		parallel := &saturate.Recorder[line.Fixed]{}
		e2, err := saturate.New(fixed, input, saturate.Options[line.Fixed]{Observer: parallel, Workers: 4})
		require.NoError(t, err)
		got, err := e2.Run(context.Background())
		require.NoError(t, err)

		require.Equal(t, want, got)
		require.Equal(t, trace(fixed, abc, serial.Events()), trace(fixed, abc, parallel.Events()))

		s1, s2 := e1.Stats(), e2.Stats()
		s1.Duration, s2.Duration = 0, 0
		require.Equal(t, s1, s2)
	}
}

func TestMatchersGiveSameAntichain(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 3))
	input := randomSeeds(r, 4, 3, 3)

	var want []string
	for _, a := range []string{"backtrack", "hopcroft-karp", "push-relabel"} {
		v := line.FixedVariant{Oracle: line.NewOracle(matchingAlgorithm(a))}
		got, err := saturate.Antichain(context.Background(), v, input)
		require.NoError(t, err)
		if want == nil {
			want = keys[line.Fixed](v, got)
			continue
		}
		require.Equal(t, want, keys[line.Fixed](v, got), a)
	}
}
