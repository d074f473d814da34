package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

const barWidth = 30

func countersLine(ev domain.ProgressEvent, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.solved.Render(fmt.Sprintf("solved %d", ev.Solved)),
		"  ",
		s.failed.Render(fmt.Sprintf("failed %d", ev.Failed)),
		"  ",
		s.skipped.Render(fmt.Sprintf("skipped %d", ev.Skipped)),
		"  ",
		s.premium.Render(fmt.Sprintf("premium %d", ev.Premium)),
	)
}

func messageLine(ev domain.ProgressEvent, s styles) string {
	switch {
	case ev.Error:
		return s.errorText.Render(ev.Message)
	case ev.JustSolved, ev.Completed:
		return s.success.Render(ev.Message)
	default:
		return s.message.Render(ev.Message)
	}
}

// renderProgressBar draws an ascii bar filled to percent.
func renderProgressBar(percent int, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(clampPercent(percent)) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor fades from grey at min to bright white at max on the ANSI
// 256 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
