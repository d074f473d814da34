package domain

import (
	"math"
	"time"
)

// ProgressEvent is the coarse-grained progress record consumed by UIs. Field
// names are stable.
type ProgressEvent struct {
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
	Solved     int    `json:"solved"`
	Failed     int    `json:"failed"`
	Skipped    int    `json:"skipped"`
	Premium    int    `json:"premium"`
	Current    string `json:"current"`
	JustSolved bool   `json:"justSolved,omitempty"`
	Error      bool   `json:"error,omitempty"`
	Solving    bool   `json:"solving,omitempty"`
	Completed  bool   `json:"completed,omitempty"`
}

// Percent is round(solved/target*100) clamped to [0, 100].
func Percent(solved, target int) int {
	if target <= 0 {
		return 0
	}

	pct := int(math.Round(float64(solved) / float64(target) * 100))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

type AuditLevel string

const (
	AuditInfo    AuditLevel = "INFO"
	AuditSuccess AuditLevel = "SUCCESS"
	AuditWarning AuditLevel = "WARNING"
	AuditError   AuditLevel = "ERROR"
)

// Tags used on the detailed log. The set is open; consumers only display them.
const (
	TagSession          = "SESSION"
	TagDailyChallenge   = "DAILY_CHALLENGE"
	TagSolving          = "SOLVING"
	TagAlreadySolved    = "ALREADY_SOLVED"
	TagPremium          = "PREMIUM"
	TagAIGenerating     = "AI_GENERATING"
	TagAIGenerated      = "AI_GENERATED"
	TagAIAttempt        = "AI_ATTEMPT"
	TagRateLimit        = "RATE_LIMIT"
	TagAIExhausted      = "AI_EXHAUSTED"
	TagLanguage         = "LANGUAGE"
	TagCodePasted       = "CODE_PASTED"
	TagCodePasteFailed  = "CODE_PASTE_FAILED"
	TagSubmitted        = "SUBMITTED"
	TagSubmitFailed     = "SUBMIT_FAILED"
	TagAccepted         = "ACCEPTED"
	TagRejected         = "REJECTED"
	TagCached           = "CACHED"
	TagContinuing       = "CONTINUING"
	TagResultCheckError = "RESULT_CHECK_FAILED"
	TagStopped          = "STOPPED"
)

type AuditEntry struct {
	Timestamp time.Time  `json:"timestamp"`
	Level     AuditLevel `json:"level"`
	Tag       string     `json:"tag"`
	Problem   ProblemID  `json:"problem,omitempty"`
	Message   string     `json:"message"`
	Details   string     `json:"details,omitempty"`
}
