package domain

import "time"

type SessionCounts struct {
	Solved  int `json:"solved"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Premium int `json:"premium"`
}

func (c SessionCounts) Total() int {
	return c.Solved + c.Failed + c.Skipped + c.Premium
}

type SessionResult struct {
	SessionID            string          `json:"session_id"`
	Counts               SessionCounts   `json:"counts"`
	Solved               []ProblemID     `json:"solved"`
	Records              []AttemptRecord `json:"records"`
	Duration             time.Duration   `json:"duration"`
	DailyChallengeSolved bool            `json:"daily_challenge_solved"`
	// Stopped reports that the session ended on a stop signal or
	// cancellation before reaching its target.
	Stopped bool `json:"stopped"`
}

// Fold adds a finished record to the aggregate. Rejected verdicts count as
// failures.
func (r *SessionResult) Fold(record AttemptRecord) {
	switch record.Outcome {
	case OutcomeSolved:
		r.Counts.Solved++
		r.Solved = append(r.Solved, record.ID)
		if record.Daily {
			r.DailyChallengeSolved = true
		}
	case OutcomeSkippedSolved:
		r.Counts.Skipped++
	case OutcomeSkippedPremium:
		r.Counts.Premium++
	case OutcomeRejected, OutcomeFailed:
		r.Counts.Failed++
	}

	r.Records = append(r.Records, record)
}

// SuccessRate is solved over attempted problems, skips excluded.
func (r SessionResult) SuccessRate() float64 {
	attempted := r.Counts.Solved + r.Counts.Failed
	if attempted == 0 {
		return 0
	}

	return float64(r.Counts.Solved) / float64(attempted) * 100
}

// Clone returns a copy whose slices do not alias r.
func (r SessionResult) Clone() SessionResult {
	out := r
	out.Solved = append([]ProblemID(nil), r.Solved...)
	out.Records = append([]AttemptRecord(nil), r.Records...)
	return out
}
