package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	checkPassStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	checkFailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type checkFinishedMsg struct {
	err     error
	elapsed time.Duration
}

// checkView draws a running check with its elapsed time and leaves a one
// line verdict behind once the check reports back.
type checkView struct {
	indicator spinner.Model
	title     string
	started   time.Time
	finished  *checkFinishedMsg
}

func newCheckView(title string, started time.Time) checkView {
	return checkView{
		indicator: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		title:   title,
		started: started,
	}
}

func (v checkView) Init() tea.Cmd {
	return v.indicator.Tick
}

func (v checkView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkFinishedMsg:
		v.finished = &msg
		return v, tea.Quit
	case spinner.TickMsg:
		if v.finished != nil {
			return v, nil
		}
		var cmd tea.Cmd
		v.indicator, cmd = v.indicator.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v checkView) View() string {
	if v.finished == nil {
		elapsed := time.Since(v.started).Truncate(time.Second)
		return fmt.Sprintf("%s %s %s\n", v.indicator.View(), v.title, elapsed)
	}

	elapsed := v.finished.elapsed.Round(100 * time.Millisecond)
	if v.finished.err != nil {
		return fmt.Sprintf("%s %s (%s)\n", checkFailStyle.Render("x"), v.title, elapsed)
	}
	return fmt.Sprintf("%s %s (%s)\n", checkPassStyle.Render("ok"), v.title, elapsed)
}

// runCheck runs check while a checkView ticks on output. On anything but a
// terminal the check runs bare.
func runCheck(ctx context.Context, output io.Writer, title string, check func(context.Context) error) error {
	if !isTerminal(output) {
		return check(ctx)
	}

	started := time.Now()
	p := tea.NewProgram(
		newCheckView(title, started),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)

	result := make(chan error, 1)
	go func() {
		err := check(ctx)
		result <- err
		p.Send(checkFinishedMsg{err: err, elapsed: time.Since(started)})
	}()

	if _, err := p.Run(); err != nil {
		<-result
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	return <-result
}
