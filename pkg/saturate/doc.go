// Package saturate computes the maximal antichain reachable from a set of
// seed lines by repeated combination.
//
// # Algorithm
//
// The [Engine] keeps a FIFO work queue (todo), the current antichain (done),
// and a memo of canonical keys already known to be dominated (useless). Each
// iteration pops one line L:
//
//  1. If some line in todo or done dominates L, its key is memoized and L is
//     dropped.
//  2. Otherwise L is accepted: every line L dominates is retracted from todo
//     and done, and L joins done.
//  3. For every D in done (L included), the candidates of combining D with L
//     are pruned to a local antichain, skipping memoized keys. Survivors that
//     are dominated by todo or done are memoized; the rest join todo.
//
// The run ends when todo is empty. At that point done is the result, and it
// is an antichain after every iteration, not just at the end.
//
// # Events
//
// An [Observer] sees each acceptance ("found") together with the line whose
// round produced it, and each retraction together with the dominating line.
// [Recorder] keeps them in order for tests and audit output.
//
// # Concurrency
//
// With [Options].Workers > 1 the combination calls of one round run
// concurrently on an errgroup. Their results are merged in done order by the
// run loop, so the result and the event sequence are identical to a serial
// run. An Engine itself is not safe for concurrent use.
//
// # Cancellation
//
// The context is checked between iterations. A canceled run returns the
// antichain reached so far with an error wrapping the context error; calling
// [Engine.Run] again resumes where it stopped.
package saturate
