package application

import (
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

// session is the per-run state. Nothing in it outlives Run.
type session struct {
	id        string
	cfg       domain.SessionConfig
	deps      Collaborators
	clock     ports.Clock
	sleeper   ports.Sleeper
	progress  ports.ProgressSink
	auditSink ports.AuditSink
	startedAt time.Time
	result    domain.SessionResult
}

func newSession(id string, cfg domain.SessionConfig, deps Collaborators, clock ports.Clock, sleeper ports.Sleeper) *session {
	s := &session{
		id:        id,
		cfg:       cfg,
		deps:      deps,
		clock:     clock,
		sleeper:   sleeper,
		progress:  deps.Progress,
		auditSink: deps.Audit,
		startedAt: clock.Now(),
	}
	if s.progress == nil {
		s.progress = discardProgress{}
	}
	if s.auditSink == nil {
		s.auditSink = discardAudit{}
	}
	s.result.SessionID = id

	return s
}

type progressUpdate struct {
	message    string
	current    string
	justSolved bool
	err        bool
	solving    bool
	completed  bool
}

func (s *session) emit(u progressUpdate) {
	counts := s.result.Counts
	pct := domain.Percent(counts.Solved, s.cfg.TargetCount)
	if u.completed {
		pct = 100
	}

	s.progress.Progress(domain.ProgressEvent{
		Percentage: pct,
		Message:    u.message,
		Solved:     counts.Solved,
		Failed:     counts.Failed,
		Skipped:    counts.Skipped,
		Premium:    counts.Premium,
		Current:    u.current,
		JustSolved: u.justSolved,
		Error:      u.err,
		Solving:    u.solving,
		Completed:  u.completed,
	})
}

func (s *session) audit(level domain.AuditLevel, tag string, id domain.ProblemID, message, details string) {
	s.auditSink.Audit(domain.AuditEntry{
		Timestamp: s.clock.Now(),
		Level:     level,
		Tag:       tag,
		Problem:   id,
		Message:   message,
		Details:   details,
	})
}

type discardProgress struct{}

func (discardProgress) Progress(domain.ProgressEvent) {}

type discardAudit struct{}

func (discardAudit) Audit(domain.AuditEntry) {}
