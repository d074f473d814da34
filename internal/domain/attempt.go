package domain

import (
	"fmt"
	"time"
)

type Outcome string

const (
	OutcomePending        Outcome = "pending"
	OutcomeSolved         Outcome = "solved"
	OutcomeRejected       Outcome = "rejected"
	OutcomeSkippedSolved  Outcome = "skipped-solved"
	OutcomeSkippedPremium Outcome = "skipped-premium"
	OutcomeFailed         Outcome = "failed"
)

func (o Outcome) IsTerminal() bool {
	switch o {
	case OutcomeSolved, OutcomeRejected, OutcomeSkippedSolved, OutcomeSkippedPremium, OutcomeFailed:
		return true
	default:
		return false
	}
}

type GeneratedBy string

const (
	GeneratedByNone     GeneratedBy = ""
	GeneratedByAI       GeneratedBy = "ai"
	GeneratedByFallback GeneratedBy = "fallback"
)

type AttemptRecord struct {
	ID          ProblemID     `json:"id"`
	Outcome     Outcome       `json:"outcome"`
	Attempts    int           `json:"attempts"`
	GeneratedBy GeneratedBy   `json:"generated_by,omitempty"`
	Verdict     string        `json:"verdict,omitempty"`
	LastError   string        `json:"last_error,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	Elapsed     time.Duration `json:"elapsed"`
	Daily       bool          `json:"daily,omitempty"`
}

func NewAttemptRecord(id ProblemID, startedAt time.Time) AttemptRecord {
	return AttemptRecord{
		ID:        id,
		Outcome:   OutcomePending,
		StartedAt: startedAt,
	}
}

// Finish moves a pending record into a terminal outcome. A record is finished
// exactly once.
func (r *AttemptRecord) Finish(outcome Outcome, finishedAt time.Time) error {
	if r.Outcome.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrOutcomeAlreadySet, r.ID, r.Outcome)
	}
	if !outcome.IsTerminal() {
		return fmt.Errorf("outcome %q is not terminal", outcome)
	}

	r.Outcome = outcome
	if !r.StartedAt.IsZero() && finishedAt.After(r.StartedAt) {
		r.Elapsed = finishedAt.Sub(r.StartedAt)
	}

	return nil
}

// Fail finishes the record as failed and keeps err's text.
func (r *AttemptRecord) Fail(err error, finishedAt time.Time) error {
	if err != nil {
		r.LastError = err.Error()
	}

	return r.Finish(OutcomeFailed, finishedAt)
}
