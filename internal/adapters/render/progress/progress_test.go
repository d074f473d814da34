package progress

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestModelViewBeforeFirstEvent(t *testing.T) {
	view := newModel(5).View()

	assert.Contains(t, view, "LeetCode solver")
	assert.Contains(t, view, "(target: 5 problems)")
	assert.Contains(t, view, "Waiting for session to start...")
}

func TestModelRendersLatestEvent(t *testing.T) {
	m := newModel(1)

	updated, cmd := m.Update(eventMsg(domain.ProgressEvent{
		Percentage: 40,
		Message:    "Checking problem: two-sum (1/4)",
		Solved:     2,
		Failed:     1,
		Skipped:    3,
		Premium:    4,
		Current:    "two-sum",
	}))
	assert.Nil(t, cmd)

	view := updated.View()
	assert.Contains(t, view, "(target: 1 problem)")
	assert.Contains(t, view, "solved 2")
	assert.Contains(t, view, "failed 1")
	assert.Contains(t, view, "skipped 3")
	assert.Contains(t, view, "premium 4")
	assert.Contains(t, view, "current: two-sum")
	assert.Contains(t, view, "Checking problem: two-sum (1/4)")
	assert.Contains(t, view, "40%")
	assert.NotContains(t, view, "Waiting for session")
}

func TestModelShowsSpinnerOnlyWhileSolving(t *testing.T) {
	m := newModel(3)
	frame := m.spinner.View()

	solving, _ := m.Update(eventMsg(domain.ProgressEvent{Message: "Solving problem: two-sum...", Solving: true}))
	assert.Contains(t, solving.View(), frame+" ")

	done, _ := m.Update(eventMsg(domain.ProgressEvent{Message: "Session completed successfully!", Percentage: 100, Completed: true}))
	assert.NotContains(t, done.View(), frame+" ")
}

func TestModelQuitsOnClose(t *testing.T) {
	_, cmd := newModel(1).Update(closeMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTeaSinkRendersUntilClose(t *testing.T) {
	out := &syncBuffer{}
	sink := NewTeaSink(context.Background(), out, 2)

	sink.Progress(domain.ProgressEvent{Message: "Starting problem solving session...", Current: "Initializing..."})
	sink.Progress(domain.ProgressEvent{Percentage: 100, Message: "Session completed successfully!", Solved: 2, Completed: true})

	require.NoError(t, sink.Close())
	assert.Contains(t, out.String(), "Session completed successfully!")
}

func TestTeaSinkCloseAfterContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sink := NewTeaSink(ctx, &syncBuffer{}, 1)
	cancel()

	done := make(chan error, 1)
	go func() { done <- sink.Close() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return after cancellation")
	}

	sink.Progress(domain.ProgressEvent{Message: "late"})
}

func TestLineSinkWritesOneLinePerEvent(t *testing.T) {
	var out bytes.Buffer
	sink := NewLineSink(&out)

	sink.Progress(domain.ProgressEvent{Percentage: 40, Message: "Solved successfully: two-sum (2/5)", Solved: 2, Skipped: 1, JustSolved: true})
	sink.Progress(domain.ProgressEvent{Percentage: 40, Message: "Failed to solve: 3sum - boom", Solved: 2, Failed: 1, Skipped: 1, Error: true})
	sink.Progress(domain.ProgressEvent{Percentage: 100, Message: "Session completed successfully!", Completed: true})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[ 40%] + solved=2 failed=0 skipped=1 premium=0 | Solved successfully: two-sum (2/5)", lines[0])
	assert.Equal(t, "[ 40%] ! solved=2 failed=1 skipped=1 premium=0 | Failed to solve: 3sum - boom", lines[1])
	assert.Equal(t, "[100%] * solved=0 failed=0 skipped=0 premium=0 | Session completed successfully!", lines[2])
}

func TestFormatSummary(t *testing.T) {
	result := domain.SessionResult{
		Counts:   domain.SessionCounts{Solved: 3, Failed: 1, Skipped: 1},
		Solved:   []domain.ProblemID{"valid-anagram", "two-sum", "3sum"},
		Duration: 95*time.Second + 300*time.Millisecond,
		Records: []domain.AttemptRecord{
			{ID: "valid-anagram", Outcome: domain.OutcomeSolved, Daily: true},
			{ID: "two-sum", Outcome: domain.OutcomeSolved},
			{ID: "3sum", Outcome: domain.OutcomeSolved},
			{ID: "climbing-stairs", Outcome: domain.OutcomeRejected, Verdict: "Wrong Answer"},
			{ID: "contains-duplicate", Outcome: domain.OutcomeSkippedSolved},
		},
		DailyChallengeSolved: true,
	}

	summary := FormatSummary(result, 5)

	assert.Contains(t, summary, "Session completed")
	assert.Contains(t, summary, "3/5 solved")
	assert.Contains(t, summary, "(75.0% success)")
	assert.Contains(t, summary, "solved 3")
	assert.Contains(t, summary, "skipped 1")
	assert.Contains(t, summary, "daily challenge: solved")
	assert.Contains(t, summary, "duration: 1m35s")
	assert.Contains(t, summary, "two-sum")
	assert.Contains(t, summary, "failures:")
	assert.Contains(t, summary, "climbing-stairs Wrong Answer")
	assert.NotContains(t, summary, "contains-duplicate")
}

func TestFormatSummaryEmptyStoppedSession(t *testing.T) {
	summary := FormatSummary(domain.SessionResult{Stopped: true}, 2)

	assert.Contains(t, summary, "Session stopped")
	assert.Contains(t, summary, "0/2 solved")
	assert.Contains(t, summary, "No problems solved.")
	assert.Contains(t, summary, "daily challenge: n/a")
	assert.NotContains(t, summary, "failures:")
}

func TestRenderProgressBar(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "[=====-----]", renderProgressBar(50, 10, s))
	assert.Equal(t, "[----------]", renderProgressBar(-5, 10, s))
	assert.Equal(t, "[==========]", renderProgressBar(140, 10, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}
