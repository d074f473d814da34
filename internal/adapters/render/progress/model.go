package progress

import (
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

type eventMsg domain.ProgressEvent

type closeMsg struct{}

// model is the live session view: a bar, counters, a spinner while a
// problem is being solved and the latest message.
type model struct {
	bar      progress.Model
	spinner  spinner.Model
	styles   styles
	target   int
	last     domain.ProgressEvent
	seen     bool
	quitting bool
}

func newModel(target int) model {
	return model{
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth+10),
		),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		target: target,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.last = domain.ProgressEvent(msg)
		m.seen = true
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if width := msg.Width - 4; width > 10 && width < barWidth+10 {
			m.bar.Width = width
		}
		return m, nil
	case closeMsg:
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	s := m.styles
	title := s.title.Render("LeetCode solver")
	if m.target > 0 {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.header.Render(targetLabel(m.target)))
	}

	if !m.seen {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("Waiting for session to start...")) + "\n"
	}

	ev := m.last
	current := ""
	if ev.Current != "" {
		current = s.label.Render("current: ") + s.current.Render(ev.Current)
	}

	message := messageLine(ev, s)
	if ev.Solving && !ev.Completed && !m.quitting {
		message = m.spinner.View() + " " + message
	}

	lines := []string{
		title,
		m.bar.ViewAs(float64(clampPercent(ev.Percentage)) / 100),
		countersLine(ev, s),
	}
	if current != "" {
		lines = append(lines, current)
	}
	lines = append(lines, message)

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func targetLabel(target int) string {
	if target == 1 {
		return "(target: 1 problem)"
	}

	return "(target: " + strconv.Itoa(target) + " problems)"
}
