// Package progress renders session progress events for a terminal.
package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

var (
	_ ports.ProgressSink = (*TeaSink)(nil)
	_ ports.ProgressSink = (*LineSink)(nil)
)

// TeaSink shows progress in a bubbletea program running until Close. The
// program does not handle signals; the caller owns SIGINT and SIGTERM.
type TeaSink struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

func NewTeaSink(ctx context.Context, output io.Writer, target int) *TeaSink {
	p := tea.NewProgram(
		newModel(target),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	s := &TeaSink{program: p, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, s.err = p.Run()
	}()

	return s
}

func (s *TeaSink) Progress(ev domain.ProgressEvent) {
	s.program.Send(eventMsg(ev))
}

// Close stops the program after drawing the last event. It is safe to call
// once the context passed to NewTeaSink has ended.
func (s *TeaSink) Close() error {
	s.program.Send(closeMsg{})
	<-s.done

	if errors.Is(s.err, tea.ErrProgramKilled) {
		return nil
	}
	return s.err
}

// LineSink writes one plain line per event, for logs and non-interactive
// terminals.
type LineSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

func (s *LineSink) Progress(ev domain.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintln(s.w, FormatLine(ev))
}

// FormatLine is the LineSink rendering of a single event.
func FormatLine(ev domain.ProgressEvent) string {
	marker := " "
	switch {
	case ev.Error:
		marker = "!"
	case ev.JustSolved:
		marker = "+"
	case ev.Completed:
		marker = "*"
	}

	return fmt.Sprintf("[%3d%%] %s solved=%d failed=%d skipped=%d premium=%d | %s",
		clampPercent(ev.Percentage), marker, ev.Solved, ev.Failed, ev.Skipped, ev.Premium, ev.Message)
}
