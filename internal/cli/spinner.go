package cli

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/maximizer/pkg/pipeline"
	"github.com/matzehuels/maximizer/pkg/saturate"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a status line on statusOut until stopped or until its
// context is canceled. Run events fed to Observe are counted on the line.
type Spinner struct {
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once
	start   time.Time

	mu        sync.Mutex
	message   string
	found     int
	retracted int
	width     int
}

// newSpinner creates a spinner that runs until Stop.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that also stops when ctx is done.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		message: message,
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.start = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Observe counts a run event.
func (s *Spinner) Observe(e pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Kind == saturate.EventFound {
		s.found++
	} else {
		s.retracted++
	}
}

// status returns the text drawn next to the frame.
func (s *Spinner) status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.message
	if s.found > 0 || s.retracted > 0 {
		msg += fmt.Sprintf(" %d found · %d retracted", s.found, s.retracted)
	}
	return msg + fmt.Sprintf(" (%s)", time.Since(s.start).Round(100*time.Millisecond))
}

func (s *Spinner) draw(frame string) {
	text := s.status()
	s.mu.Lock()
	defer s.mu.Unlock()
	// Pad over the previous, possibly longer, status.
	pad := max(0, s.width-len(text))
	s.width = len(text)
	fmt.Fprintf(statusOut, "\r%s %s%s", styleIconSpinner.Render(frame), StyleDim.Render(text), strings.Repeat(" ", pad))
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(statusOut, "\r%s\r", strings.Repeat(" ", s.width+2))
		s.width = 0
	}
}

// Stop ends the animation and clears the line. It may be called more than
// once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		if !s.start.IsZero() {
			<-s.stopped
		}
		s.clearLine()
	})
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context is done, either through
// Stop or through its parent.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// Counts returns the events observed so far.
func (s *Spinner) Counts() (found, retracted int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found, s.retracted
}
