package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	pkgio "github.com/matzehuels/maximizer/pkg/io"
	"github.com/matzehuels/maximizer/pkg/pipeline"
	"github.com/matzehuels/maximizer/pkg/saturate"
)

// recentEvents is how many event lines the progress view keeps on screen.
const recentEvents = 8

type (
	eventMsg pipeline.Event
	doneMsg  struct{ err error }
	tickMsg  time.Time
)

// ProgressModel is the bubbletea model for the live run view.
type ProgressModel struct {
	Seeds     int
	Found     int
	Retracted int
	Recent    []string
	Start     time.Time
	Elapsed   time.Duration
	Stopping  bool
	Done      bool
	Err       error

	cancel context.CancelFunc
}

// NewProgressModel creates a progress model. cancel is called when the user
// asks to stop the run.
func NewProgressModel(seeds int, cancel context.CancelFunc) ProgressModel {
	return ProgressModel{Seeds: seeds, Start: time.Now(), cancel: cancel}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ProgressModel) Init() tea.Cmd {
	return tick()
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// The run notices cancellation between lines and sends doneMsg.
			if !m.Stopping && m.cancel != nil {
				m.cancel()
			}
			m.Stopping = true
		}
	case eventMsg:
		switch msg.Kind {
		case saturate.EventFound:
			m.Found++
		default:
			m.Retracted++
		}
		m.Recent = append(m.Recent, pipeline.Event(msg).String())
		if len(m.Recent) > recentEvents {
			m.Recent = m.Recent[len(m.Recent)-recentEvents:]
		}
	case tickMsg:
		m.Elapsed = time.Time(msg).Sub(m.Start)
		if m.Done {
			return m, nil
		}
		return m, tick()
	case doneMsg:
		m.Done = true
		m.Err = msg.err
		m.Elapsed = time.Since(m.Start)
		return m, tea.Quit
	}
	return m, nil
}

func (m ProgressModel) View() string {
	var b strings.Builder

	title := "Saturating"
	switch {
	case m.Done:
		title = "Saturated"
	case m.Stopping:
		title = "Stopping"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d seeds · %d found · %d retracted · %s",
		m.Seeds, m.Found, m.Retracted, m.Elapsed.Round(100*time.Millisecond))))
	b.WriteString("\n\n")

	for _, e := range m.Recent {
		b.WriteString("  ")
		b.WriteString(StyleValue.Render(e))
		b.WriteString("\n")
	}

	if !m.Done {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("q stop"))
		b.WriteString("\n")
	}
	return b.String()
}

// runWithTUI executes the run while a progress view renders its events on
// stderr. Stopping the view cancels the run and keeps its partial result.
func (c *CLI) runWithTUI(ctx context.Context, runner *pipeline.Runner, seeds *pkgio.Seeds, opts pipeline.Options) (*pipeline.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgressModel(seeds.Len(), cancel), tea.WithOutput(os.Stderr))

	// Log lines would tear the view.
	opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	opts.Quiet = false
	opts.Observer = func(e pipeline.Event) { p.Send(eventMsg(e)) }

	var (
		result *pipeline.Result
		runErr error
	)
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		result, runErr = runner.Execute(ctx, seeds, opts)
		p.Send(doneMsg{err: runErr})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-finished
		return nil, fmt.Errorf("progress view: %w", err)
	}
	cancel()
	<-finished
	return result, runErr
}
