package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckViewShowsElapsedWhileRunning(t *testing.T) {
	v := newCheckView("Testing Gemini API key", time.Now().Add(-3*time.Second))

	view := v.View()
	assert.Contains(t, view, "Testing Gemini API key")
	assert.Contains(t, view, "3s")
}

func TestCheckViewLeavesVerdictWhenFinished(t *testing.T) {
	v := newCheckView("Testing Gemini API key", time.Now())

	updated, cmd := v.Update(checkFinishedMsg{elapsed: 1240 * time.Millisecond})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, updated.View(), "ok")
	assert.Contains(t, updated.View(), "(1.2s)")

	failed, _ := v.Update(checkFinishedMsg{err: errors.New("denied"), elapsed: time.Second})
	assert.Contains(t, failed.View(), "Testing Gemini API key (1s)")
	assert.NotContains(t, failed.View(), "ok")

	_, cmd = failed.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestRunCheckWithoutTerminalRunsCheckDirectly(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	boom := errors.New("boom")

	err := runCheck(context.Background(), &out, "Testing Gemini API key", func(context.Context) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Empty(t, out.String())
}
