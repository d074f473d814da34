package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

// FormatSummary renders the end-of-session report.
func FormatSummary(result domain.SessionResult, target int) string {
	s := newStyles()

	headline := "Session completed"
	if result.Stopped {
		headline = "Session stopped"
	}

	percent := domain.Percent(result.Counts.Solved, target)
	rateStyle := lipgloss.NewStyle().Foreground(interpolateColor(result.SuccessRate(), 0, 100))

	lines := []string{
		s.title.Render(headline),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderProgressBar(percent, barWidth, s),
			" ",
			s.label.Render(fmt.Sprintf("%d/%d solved", result.Counts.Solved, target)),
			" ",
			rateStyle.Render(fmt.Sprintf("(%.1f%% success)", result.SuccessRate())),
		),
		countersLine(domain.ProgressEvent{
			Solved:  result.Counts.Solved,
			Failed:  result.Counts.Failed,
			Skipped: result.Counts.Skipped,
			Premium: result.Counts.Premium,
		}, s),
		s.label.Render("daily challenge: " + dailyLabel(result)),
		s.label.Render("duration: " + result.Duration.Round(time.Second).String()),
	}

	if len(result.Solved) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No problems solved.")))
	} else {
		solved := make([]string, 0, len(result.Solved))
		for _, id := range result.Solved {
			solved = append(solved, "  "+s.solved.Render(string(id)))
		}
		lines = append(lines, s.section.Render(s.header.Render("solved problems:")))
		lines = append(lines, solved...)
	}

	if failures := failureLines(result.Records, s); len(failures) > 0 {
		lines = append(lines, s.section.Render(s.header.Render("failures:")))
		lines = append(lines, failures...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func dailyLabel(result domain.SessionResult) string {
	for _, record := range result.Records {
		if record.Daily {
			if result.DailyChallengeSolved {
				return "solved"
			}
			return string(record.Outcome)
		}
	}

	return "n/a"
}

func failureLines(records []domain.AttemptRecord, s styles) []string {
	var lines []string
	for _, record := range records {
		if record.Outcome != domain.OutcomeFailed && record.Outcome != domain.OutcomeRejected {
			continue
		}

		reason := record.LastError
		if record.Outcome == domain.OutcomeRejected && record.Verdict != "" {
			reason = record.Verdict
		}
		reason = strings.TrimSpace(reason)
		if reason == "" {
			reason = string(record.Outcome)
		}

		lines = append(lines, fmt.Sprintf("  %s %s", s.failed.Render(string(record.ID)), s.empty.Render(reason)))
	}

	return lines
}
