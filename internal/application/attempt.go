package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

// process runs the attempt protocol for one identifier and returns its
// finished record:
//
//	CheckingSolved -> CheckingPremium -> Generating -> Injecting -> Submitting -> AwaitingVerdict
//
// Each path finishes the record exactly once.
func (s *session) process(ctx context.Context, id domain.ProblemID, daily bool) domain.AttemptRecord {
	record := domain.NewAttemptRecord(id, s.clock.Now())
	record.Daily = daily

	if s.cfg.SkipSolved && s.isAlreadySolved(ctx, id) {
		if err := s.deps.Catalog.MarkSolved(ctx, id); err != nil {
			s.audit(domain.AuditWarning, domain.TagCached, id, "Could not confirm solved entry", err.Error())
		}
		s.audit(domain.AuditInfo, domain.TagAlreadySolved, id, string(id), "Problem already solved, skipping")
		s.close(&record, domain.OutcomeSkippedSolved, nil)
		return record
	}

	if s.cfg.SkipPremium {
		s.emit(progressUpdate{message: fmt.Sprintf("Checking if premium: %s", id), current: string(id)})
		if s.isPremium(ctx, id) {
			s.audit(domain.AuditInfo, domain.TagPremium, id, string(id), "Premium problem, skipping without generating code")
			s.close(&record, domain.OutcomeSkippedPremium, nil)
			return record
		}
	}

	s.emit(progressUpdate{message: fmt.Sprintf("Solving problem: %s...", id), current: string(id), solving: true})
	s.audit(domain.AuditInfo, domain.TagSolving, id, string(id), fmt.Sprintf("Solving %s in %s", id, s.cfg.Language))

	code, err := s.generate(ctx, &record)
	if err != nil {
		s.close(&record, domain.OutcomeFailed, err)
		return record
	}

	s.audit(domain.AuditInfo, domain.TagLanguage, id, fmt.Sprintf("Using %s", s.cfg.Language.DisplayName()), "")
	if err := s.deps.Driver.InjectCode(ctx, id, code, s.cfg.Language); err != nil {
		s.audit(domain.AuditError, domain.TagCodePasteFailed, id, err.Error(), fmt.Sprintf("Failed to paste code into editor: %v", err))
		s.close(&record, domain.OutcomeFailed, fmt.Errorf("inject code: %w", err))
		s.saveSolution(ctx, record, code)
		return record
	}
	s.audit(domain.AuditSuccess, domain.TagCodePasted, id, string(id), "Code pasted into editor")

	if err := s.deps.Driver.Submit(ctx, id); err != nil {
		s.audit(domain.AuditError, domain.TagSubmitFailed, id, err.Error(), fmt.Sprintf("Failed to submit solution: %v", err))
		s.close(&record, domain.OutcomeFailed, fmt.Errorf("submit: %w", err))
		s.saveSolution(ctx, record, code)
		return record
	}
	s.audit(domain.AuditSuccess, domain.TagSubmitted, id, string(id), "Solution submitted")

	s.judge(ctx, &record)
	s.saveSolution(ctx, record, code)

	return record
}

// judge polls the verdict and finishes the record from it.
func (s *session) judge(ctx context.Context, record *domain.AttemptRecord) {
	id := record.ID

	text, kind, err := s.awaitVerdict(ctx, id)
	record.Verdict = text
	if ctxErr := ctx.Err(); ctxErr != nil {
		s.close(record, domain.OutcomeFailed, ctxErr)
		return
	}

	switch kind {
	case domain.VerdictAccepted:
		s.audit(domain.AuditSuccess, domain.TagAccepted, id, string(id), fmt.Sprintf("Solution accepted for %s", id))
		s.markSolved(ctx, id)
		s.close(record, domain.OutcomeSolved, nil)
		return
	case domain.VerdictRejected:
		s.audit(domain.AuditError, domain.TagRejected, id, fmt.Sprintf("%s %s", id, text), fmt.Sprintf("Solution rejected for %s: %s", id, text))
		s.audit(domain.AuditInfo, domain.TagContinuing, id, "Moving to next problem", "")
		s.close(record, domain.OutcomeRejected, nil)
		return
	}

	if err != nil {
		s.audit(domain.AuditError, domain.TagResultCheckError, id, err.Error(), fmt.Sprintf("Failed to check submission result: %v", err))
	}
	if s.cfg.StrictVerdicts {
		reason := err
		if reason == nil {
			reason = fmt.Errorf("no verdict after %d polls", s.cfg.VerdictPolls)
		}
		s.audit(domain.AuditError, domain.TagRejected, id, fmt.Sprintf("%s (verdict unknown)", id), reason.Error())
		s.close(record, domain.OutcomeRejected, reason)
		return
	}

	s.audit(domain.AuditSuccess, domain.TagAccepted, id, fmt.Sprintf("%s (assumed success)", id),
		fmt.Sprintf("Solution assumed accepted for %s, no explicit rejection found", id))
	s.markSolved(ctx, id)
	if err != nil {
		record.LastError = err.Error()
	}
	s.close(record, domain.OutcomeSolved, nil)
}

// awaitVerdict polls up to VerdictPolls times, sleeping 2s, 3s, 4s before
// each read. A read error or an unclassifiable text moves on to the next
// poll. It returns the last text seen and the last read error.
func (s *session) awaitVerdict(ctx context.Context, id domain.ProblemID) (string, domain.VerdictKind, error) {
	var (
		lastText string
		lastErr  error
	)

	for poll := 1; poll <= s.cfg.VerdictPolls; poll++ {
		if err := s.sleeper.Sleep(ctx, s.cfg.Backoff.VerdictWait(poll)); err != nil {
			return lastText, domain.VerdictAmbiguous, err
		}

		text, err := s.deps.Driver.ReadVerdict(ctx, id)
		if err != nil {
			lastErr = err
			s.audit(domain.AuditWarning, domain.TagResultCheckError, id, fmt.Sprintf("Verdict poll %d failed", poll), err.Error())
			if ctx.Err() != nil {
				return lastText, domain.VerdictAmbiguous, ctx.Err()
			}
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			lastText = text
		}
		if kind := domain.ClassifyVerdict(text); kind != domain.VerdictAmbiguous {
			return text, kind, nil
		}
	}

	return lastText, domain.VerdictAmbiguous, lastErr
}

func (s *session) isAlreadySolved(ctx context.Context, id domain.ProblemID) bool {
	solved, err := s.deps.Catalog.IsSolved(ctx, id)
	if err != nil {
		s.audit(domain.AuditWarning, domain.TagAlreadySolved, id, "Could not read solved set", err.Error())
	}
	if solved {
		return true
	}

	solved, err = s.deps.Driver.IsAlreadySolved(ctx, id)
	if err != nil {
		s.audit(domain.AuditWarning, domain.TagAlreadySolved, id, "Could not check solved status on page", err.Error())
		return false
	}

	return solved
}

func (s *session) isPremium(ctx context.Context, id domain.ProblemID) bool {
	premium, err := s.deps.Driver.IsPremiumLocked(ctx, id)
	if err != nil {
		s.audit(domain.AuditWarning, domain.TagPremium, id, "Could not check premium status", err.Error())
		return false
	}

	return premium
}

func (s *session) markSolved(ctx context.Context, id domain.ProblemID) {
	if err := s.deps.Catalog.MarkSolved(ctx, id); err != nil {
		s.audit(domain.AuditError, domain.TagCached, id, "Could not record solved problem", err.Error())
		return
	}
	s.audit(domain.AuditInfo, domain.TagCached, id, string(id), fmt.Sprintf("Problem %s marked as solved", id))
}

func (s *session) saveSolution(ctx context.Context, record domain.AttemptRecord, code string) {
	if s.deps.Solutions == nil || code == "" {
		return
	}

	err := s.deps.Solutions.SaveSolution(ctx, domain.SolutionRecord{
		Problem:     record.ID,
		Language:    s.cfg.Language,
		Code:        code,
		GeneratedBy: record.GeneratedBy,
		Outcome:     record.Outcome,
		Timestamp:   s.clock.Now(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.audit(domain.AuditWarning, domain.TagSolving, record.ID, "Could not save solution", err.Error())
	}
}

// close finishes record. Finish only fails on a second call, which the
// protocol above never makes; the error is still surfaced on the audit log.
func (s *session) close(record *domain.AttemptRecord, outcome domain.Outcome, cause error) {
	var err error
	if outcome == domain.OutcomeFailed {
		err = record.Fail(cause, s.clock.Now())
	} else {
		if cause != nil {
			record.LastError = cause.Error()
		}
		err = record.Finish(outcome, s.clock.Now())
	}
	if err != nil {
		s.audit(domain.AuditError, domain.TagSolving, record.ID, "Outcome change refused", err.Error())
	}
}
