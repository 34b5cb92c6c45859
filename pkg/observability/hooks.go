// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about seed parsing, saturation runs, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the solver packages
// stay free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSaturationHooks(&mySaturationHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Saturation().OnRunStart(ctx, "fixed", len(seeds))
//	// ... saturate ...
//	observability.Saturation().OnRunComplete(ctx, "fixed", len(lines), iterations, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the run pipeline around the solver.
type PipelineHooks interface {
	// Parse events
	OnParseStart(ctx context.Context, source string)
	OnParseComplete(ctx context.Context, source string, lines int, duration time.Duration, err error)

	// Export events
	OnExportStart(ctx context.Context, format string)
	OnExportComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// Saturation Hooks
// =============================================================================

// SaturationHooks receives events from the saturation engine.
type SaturationHooks interface {
	// OnRunStart records the start of a run over the given number of seeds.
	OnRunStart(ctx context.Context, variant string, seeds int)

	// OnAccept records a line entering the antichain. lines is the size of
	// the antichain afterwards.
	OnAccept(ctx context.Context, variant string, lines int)

	// OnRetract records a line leaving the work queue or the antichain
	// because an accepted line dominates it.
	OnRetract(ctx context.Context, variant string, fromDone bool)

	// OnRunComplete records the end of a run. err is non-nil when the run
	// stopped before reaching the fixpoint.
	OnRunComplete(ctx context.Context, variant string, lines, iterations int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnParseStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnExportStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, time.Duration, error)     {}

// NoopSaturationHooks is a no-op implementation of SaturationHooks.
type NoopSaturationHooks struct{}

func (NoopSaturationHooks) OnRunStart(context.Context, string, int) {}
func (NoopSaturationHooks) OnAccept(context.Context, string, int)   {}
func (NoopSaturationHooks) OnRetract(context.Context, string, bool) {}
func (NoopSaturationHooks) OnRunComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks   PipelineHooks   = NoopPipelineHooks{}
	saturationHooks SaturationHooks = NoopSaturationHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetSaturationHooks registers custom saturation hooks.
// This should be called once at application startup before any run starts.
func SetSaturationHooks(h SaturationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		saturationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Saturation returns the registered saturation hooks.
func Saturation() SaturationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return saturationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	saturationHooks = NoopSaturationHooks{}
	cacheHooks = NoopCacheHooks{}
}
