// Package pkg provides the core libraries for maximizer antichain saturation.
//
// # Overview
//
// Maximizer starts from a handful of seed lines (lists of symbol sets) and
// grows them into the maximal antichain reachable by combining lines, where a
// line is kept only while no other line dominates it. The pkg directory is
// organized bottom-up:
//
//  1. [symset] - Bitset symbol sets and the alphabet that names their symbols
//  2. [perm] - Permutation and injection enumeration
//  3. [matching] - Bipartite matching engines that decide domination
//  4. [line] - Fixed and sparse lines, the domination oracle and combination
//  5. [saturate] - The saturation engine
//  6. [pipeline] - Orchestration (load → saturate → export) with caching
//
// # Architecture
//
// The typical data flow through maximizer:
//
//	seed file
//	    ↓
//	[io] package (read and validate seed rows)
//	    ↓
//	[line] package (encode rows as fixed or sparse lines)
//	    ↓
//	[saturate] package (combine, check domination, retract)
//	    ↓
//	text / JSON / table output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/maximizer/pkg/line"
//	    "github.com/matzehuels/maximizer/pkg/matching"
//	    "github.com/matzehuels/maximizer/pkg/saturate"
//	)
//
//	v := line.FixedVariant{Oracle: line.NewOracle(matching.HopcroftKarp)}
//	done, err := saturate.Antichain(context.Background(), v, seeds)
//
// # Main Packages
//
// [matching] - Three engines answer the same question (does a bipartite graph
// have a matching covering every left vertex): backtracking, Hopcroft–Karp
// and push-relabel max flow. They must agree on every input; Hopcroft–Karp is
// the default.
//
// [line] - A fixed line has a set number of coordinates. A sparse line has
// explicit coordinates plus one infinite coordinate that stands for
// unboundedly many copies of itself. Both implement [line.Variant], which is
// everything the engine needs.
//
// [saturate] - Pops lines from a work queue, accepts those not dominated by
// the current antichain, retracts what they dominate and queues their
// combinations. Observers see every acceptance and retraction.
//
// [pipeline] - Runs used by the CLI. Results of completed runs are cached
// under a hash of the normalized seed input and the line variant.
//
// ## Infrastructure
//
// [io] - Seed file reading and text or JSON report export.
//
// [cache] - File and null result caches with key derivation.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hook registry for pipeline, saturation and cache events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/line/...            # Specific package
//	go test -run Example ./pkg/...    # Examples only
//	go test -bench . ./pkg/matching   # Matching benchmarks
//
// [symset]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/symset
// [perm]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/perm
// [matching]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/matching
// [line]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/line
// [line.Variant]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/line#Variant
// [saturate]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/saturate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/maximizer/pkg/buildinfo
package pkg
