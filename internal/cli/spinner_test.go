package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/maximizer/pkg/pipeline"
	"github.com/matzehuels/maximizer/pkg/saturate"
)

func TestSpinnerDrawsAndClears(t *testing.T) {
	buf := silenceStatus(t)
	s := newSpinner("Saturating 2 seeds...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Saturating 2 seeds...") {
		t.Errorf("spinner never drew its message: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("spinner should end by clearing its line: %q", out)
	}
}

func TestSpinnerCountsEvents(t *testing.T) {
	buf := silenceStatus(t)
	s := newSpinner("Saturating...")
	s.Observe(pipeline.Event{Kind: saturate.EventFound, Line: "ab ac"})
	s.Observe(pipeline.Event{Kind: saturate.EventFound, Line: "a abc"})
	s.Observe(pipeline.Event{Kind: saturate.EventRemovedFromTodo, Line: "a b", Other: "ab ab"})

	if found, retracted := s.Counts(); found != 2 || retracted != 1 {
		t.Errorf("Counts() = %d, %d; want 2, 1", found, retracted)
	}

	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
	if !strings.Contains(buf.String(), "2 found · 1 retracted") {
		t.Errorf("status line should show counts: %q", buf.String())
	}
}

func TestSpinnerWithContext(t *testing.T) {
	silenceStatus(t)
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	silenceStatus(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Testing with timeout...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	silenceStatus(t)
	s := newSpinner("Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	silenceStatus(t)
	s := newSpinner("never started")
	s.Stop()
	if !s.Cancelled() {
		t.Error("Stop should cancel the spinner")
	}
}

func TestSpinnerStopWithMessages(t *testing.T) {
	buf := silenceStatus(t)

	s := newSpinner("Testing success...")
	s.Start()
	s.StopWithSuccess("Done!")

	s = newSpinner("Testing error...")
	s.Start()
	s.StopWithError("Failed!")

	out := buf.String()
	if !strings.Contains(out, iconSuccess+" Done!") || !strings.Contains(out, iconError+" Failed!") {
		t.Errorf("unexpected status output: %q", out)
	}
}
