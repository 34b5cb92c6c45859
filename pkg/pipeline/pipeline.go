// Package pipeline orchestrates a complete maximizer run.
//
// This package implements the load → saturate → export sequence used by the
// CLI. By centralizing this logic, option defaults, caching and event
// formatting behave the same way for every entry point.
//
// # Architecture
//
// A run consists of three stages:
//
//  1. Load: Read and validate the seed file ([Runner.Load])
//  2. Saturate: Encode the seeds for the selected line variant and run the
//     saturation engine ([Runner.Execute])
//  3. Export: Write the sorted result as text or JSON ([Runner.Export])
//
// Results of completed runs are cached under a hash of the normalized seed
// input and the line variant, so repeating a run is instant.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	seeds, err := runner.Load(ctx, "seeds.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, seeds, pipeline.Options{Variant: "fixed"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Export(ctx, os.Stdout, result, pipeline.FormatText)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/maximizer/pkg/errors"
	pkgio "github.com/matzehuels/maximizer/pkg/io"
	"github.com/matzehuels/maximizer/pkg/line"
	"github.com/matzehuels/maximizer/pkg/matching"
	"github.com/matzehuels/maximizer/pkg/saturate"
	"github.com/matzehuels/maximizer/pkg/symset"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and config files
// =============================================================================

const (
	// DefaultVariant is the line variant used when none is configured.
	DefaultVariant = line.VariantFixed

	// DefaultMatcher is the matching engine used when none is configured.
	DefaultMatcher = matching.Default

	// DefaultMaxAlphabet is the largest alphabet accepted by default.
	DefaultMaxAlphabet = symset.Capacity

	// ResultTTL is how long a cached result stays valid.
	ResultTTL = 30 * 24 * time.Hour
)

// Format constants for output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:  true,
	FormatJSON:  true,
	FormatTable: true,
}

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a run.
// The TOML tags define the config file format read by [LoadConfig].
type Options struct {
	Variant       string `toml:"variant" json:"variant"`
	Matcher       string `toml:"matcher" json:"matcher"`
	Workers       int    `toml:"workers" json:"workers,omitempty"`
	MaxIterations int    `toml:"max_iterations" json:"max_iterations,omitempty"`
	MaxAlphabet   int    `toml:"max_alphabet" json:"max_alphabet,omitempty"`
	Quiet         bool   `toml:"quiet" json:"quiet,omitempty"`

	// Refresh ignores cached results (the new result is still cached).
	Refresh bool `toml:"-" json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger `toml:"-" json:"-"`
	Observer EventSink   `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// EventSink receives formatted engine events as they happen.
type EventSink func(Event)

// Event is an engine event with its lines already formatted.
type Event struct {
	Kind  saturate.EventKind
	Line  string
	Other string // via line for found events (empty for seeds), dominating line for removals
}

// String renders the event the way the solver has always printed it.
func (e Event) String() string {
	switch e.Kind {
	case saturate.EventFound:
		if e.Other == "" {
			return "found: " + e.Line
		}
		return "found: " + e.Line + " via " + e.Other
	default:
		return e.Kind.String() + ": " + e.Line + " < " + e.Other
	}
}

// Result contains the outputs of a run.
type Result struct {
	// RunID identifies this run in logs and reports.
	RunID uuid.UUID

	Variant  string
	Matcher  string
	Alphabet string

	// Lines is the final antichain, formatted and sorted.
	Lines []string

	// Stats contains the engine counters. For cached results these are the
	// counters of the run that produced the entry.
	Stats saturate.Stats

	// CacheHit reports whether Lines came from the result cache.
	CacheHit bool
}

// Report converts r into its JSON export form.
func (r *Result) Report() pkgio.Report {
	return pkgio.Report{
		RunID:    r.RunID.String(),
		Variant:  r.Variant,
		Matcher:  r.Matcher,
		Alphabet: r.Alphabet,
		Lines:    r.Lines,
		Stats:    r.Stats,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json, table)", format)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks names and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	variant, err := line.ParseVariant(o.Variant)
	if err != nil {
		return err
	}
	o.Variant = variant

	matcher, err := matching.ParseAlgorithm(o.Matcher)
	if err != nil {
		return err
	}
	o.Matcher = string(matcher)

	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative, got %d", o.Workers)
	}
	if o.MaxIterations < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_iterations must not be negative, got %d", o.MaxIterations)
	}
	if o.MaxAlphabet < 0 || o.MaxAlphabet > symset.Capacity {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_alphabet must be between 1 and %d, got %d", symset.Capacity, o.MaxAlphabet)
	}
	if o.MaxAlphabet == 0 {
		o.MaxAlphabet = DefaultMaxAlphabet
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Algorithm returns the configured matching engine.
func (o *Options) Algorithm() matching.Algorithm {
	a, err := matching.ParseAlgorithm(o.Matcher)
	if err != nil {
		return DefaultMatcher
	}
	return a
}
