package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

var errMissingCollaborator = errors.New("missing collaborator")

// Collaborators are the external systems one session talks to. Solutions,
// Progress and Audit are optional.
type Collaborators struct {
	Catalog   ports.ProblemCatalog
	Generator ports.CodeGenerator
	Driver    ports.BrowserDriver
	Solutions ports.SolutionStore
	Progress  ports.ProgressSink
	Audit     ports.AuditSink
}

func (c Collaborators) validate() error {
	switch {
	case c.Catalog == nil:
		return fmt.Errorf("%w: problem catalog", errMissingCollaborator)
	case c.Generator == nil:
		return fmt.Errorf("%w: code generator", errMissingCollaborator)
	case c.Driver == nil:
		return fmt.Errorf("%w: browser driver", errMissingCollaborator)
	}

	return nil
}

type Orchestrator struct {
	clock     ports.Clock
	sleeper   ports.Sleeper
	sessionID func() string
}

type Option func(*Orchestrator)

func WithClock(clock ports.Clock) Option {
	return func(o *Orchestrator) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func WithSleeper(sleeper ports.Sleeper) Option {
	return func(o *Orchestrator) {
		if sleeper != nil {
			o.sleeper = sleeper
		}
	}
}

func WithSessionIDs(next func() string) Option {
	return func(o *Orchestrator) {
		if next != nil {
			o.sessionID = next
		}
	}
}

func NewOrchestrator(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		clock:     ports.SystemClock{},
		sleeper:   ports.SystemSleeper{},
		sessionID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run drives one solving session. Only an invalid config, missing
// collaborators or a generator that cannot initialize produce an error; every
// per-problem failure is folded into the returned result. A stop signal or a
// cancelled ctx ends the session early with Stopped set.
func (o *Orchestrator) Run(ctx context.Context, cfg domain.SessionConfig, deps Collaborators, stop *StopSignal) (domain.SessionResult, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return domain.SessionResult{}, err
	}
	if err := deps.validate(); err != nil {
		return domain.SessionResult{}, err
	}

	s := newSession(o.sessionID(), cfg, deps, o.clock, o.sleeper)
	s.emit(progressUpdate{message: "Starting problem solving session...", current: "Initializing..."})
	s.audit(domain.AuditInfo, domain.TagSession, "", "Session started",
		fmt.Sprintf("target=%d language=%s daily=%d skip_solved=%t skip_premium=%t", cfg.TargetCount, cfg.Language, cfg.DailyChallenge, cfg.SkipSolved, cfg.SkipPremium))

	if err := deps.Generator.Initialize(ctx); err != nil {
		s.audit(domain.AuditError, domain.TagSession, "", "Code generator initialization failed", err.Error())
		s.emit(progressUpdate{message: fmt.Sprintf("Initialization failed: %v", err), current: "Initializing...", err: true})
		return s.finish(err), fmt.Errorf("initialize code generator: %w", err)
	}

	var daily domain.ProblemID
	if cfg.DailyChallenge != 0 && !s.done(ctx, stop) {
		daily = s.runDailyChallenge(ctx)
	}

	if !s.done(ctx, stop) {
		s.runCandidates(ctx, daily, stop)
	}

	return s.finish(nil), nil
}

func (s *session) runDailyChallenge(ctx context.Context) domain.ProblemID {
	number := s.cfg.DailyChallenge
	label := fmt.Sprintf("Daily Challenge #%d", number)
	s.emit(progressUpdate{message: fmt.Sprintf("Resolving daily challenge problem #%d...", number), current: label})

	id, err := s.deps.Generator.ResolveNameFromNumber(ctx, number)
	if err == nil {
		err = id.Validate()
	}
	if err != nil {
		s.result.Counts.Failed++
		s.audit(domain.AuditError, domain.TagDailyChallenge, "", fmt.Sprintf("Problem #%d not found", number), err.Error())
		s.emit(progressUpdate{message: fmt.Sprintf("Daily challenge #%d not found: %v", number, err), current: label, err: true})
		return ""
	}

	s.audit(domain.AuditInfo, domain.TagDailyChallenge, id, fmt.Sprintf("Starting with problem #%d", number), "")
	s.emit(progressUpdate{message: fmt.Sprintf("Solving daily challenge: %s", id), current: string(id)})

	record := s.process(ctx, id, true)
	s.result.Fold(record)

	switch record.Outcome {
	case domain.OutcomeSolved:
		s.emit(progressUpdate{
			message:    fmt.Sprintf("Daily challenge completed! (%d/%d)", s.result.Counts.Solved, s.cfg.TargetCount),
			current:    string(id),
			justSolved: true,
		})
	case domain.OutcomeSkippedSolved, domain.OutcomeSkippedPremium:
		s.emit(progressUpdate{message: fmt.Sprintf("Daily challenge skipped: %s (%s)", id, record.Outcome), current: string(id)})
	default:
		s.emit(progressUpdate{message: fmt.Sprintf("Daily challenge failed: %s", failureReason(record)), current: string(id), err: true})
	}

	return id
}

func (s *session) runCandidates(ctx context.Context, daily domain.ProblemID, stop *StopSignal) {
	all, err := s.deps.Catalog.ListAll(ctx)
	if err != nil {
		s.audit(domain.AuditError, domain.TagSession, "", "Could not list problems", err.Error())
		s.emit(progressUpdate{message: fmt.Sprintf("Could not list problems: %v", err), current: "Catalog", err: true})
		return
	}

	candidates := make([]domain.ProblemID, 0, len(all))
	for _, id := range all {
		if daily != "" && id == daily {
			continue
		}
		candidates = append(candidates, id)
	}

	for i, id := range candidates {
		if s.done(ctx, stop) {
			return
		}

		s.emit(progressUpdate{message: fmt.Sprintf("Checking problem: %s (%d/%d)", id, i+1, len(candidates)), current: string(id)})

		record := s.process(ctx, id, false)
		s.result.Fold(record)
		s.reportRecord(record)
	}
}

// done reports whether the loop must stop before the next identifier and
// marks the result as stopped when that is due to a signal or cancellation.
func (s *session) done(ctx context.Context, stop *StopSignal) bool {
	if s.result.Counts.Solved >= s.cfg.TargetCount {
		return true
	}
	if ctx.Err() != nil || stop.Stopped() {
		if !s.result.Stopped {
			s.result.Stopped = true
			s.audit(domain.AuditWarning, domain.TagStopped, "", "Session stopped before reaching its target", stopReason(ctx))
		}
		return true
	}

	return false
}

func (s *session) reportRecord(record domain.AttemptRecord) {
	current := string(record.ID)
	switch record.Outcome {
	case domain.OutcomeSolved:
		s.emit(progressUpdate{
			message:    fmt.Sprintf("Solved successfully: %s (%d/%d)", record.ID, s.result.Counts.Solved, s.cfg.TargetCount),
			current:    current,
			justSolved: true,
		})
	case domain.OutcomeSkippedSolved:
		s.emit(progressUpdate{message: fmt.Sprintf("Skipped already solved: %s", record.ID), current: current})
	case domain.OutcomeSkippedPremium:
		s.emit(progressUpdate{message: fmt.Sprintf("Skipped premium problem: %s", record.ID), current: current})
	default:
		s.emit(progressUpdate{message: fmt.Sprintf("Failed to solve: %s - %s", record.ID, failureReason(record)), current: current, err: true})
	}
}

// finish closes the session. A non-nil fatal error marks the final event as
// failed instead of completed successfully.
func (s *session) finish(fatal error) domain.SessionResult {
	s.result.Duration = s.clock.Now().Sub(s.startedAt)

	level := domain.AuditInfo
	message := "Session completed successfully!"
	switch {
	case fatal != nil:
		level = domain.AuditError
		message = fmt.Sprintf("Session failed: %v", fatal)
	case s.result.Stopped:
		message = "Session stopped."
	}
	s.emit(progressUpdate{message: message, current: "Completed", completed: true, err: fatal != nil})
	s.audit(level, domain.TagSession, "", message,
		fmt.Sprintf("solved=%d failed=%d skipped=%d premium=%d duration=%s",
			s.result.Counts.Solved, s.result.Counts.Failed, s.result.Counts.Skipped, s.result.Counts.Premium, s.result.Duration.Round(time.Millisecond)))

	return s.result.Clone()
}

func failureReason(record domain.AttemptRecord) string {
	if record.Outcome == domain.OutcomeRejected && record.Verdict != "" {
		return record.Verdict
	}
	if record.LastError != "" {
		return record.LastError
	}

	return string(record.Outcome)
}

func stopReason(ctx context.Context) string {
	if err := ctx.Err(); err != nil {
		return err.Error()
	}

	return "stop requested"
}
