package domain

import (
	"fmt"
	"time"
)

const (
	MinTargetCount      = 1
	MaxTargetCount      = 100
	MinDailyChallenge   = 1
	MaxDailyChallenge   = 3000
	DefaultMaxAttempts  = 3
	DefaultVerdictPolls = 3
)

// BackoffPolicy holds the wait schedule between generation retries and
// verdict polls. Attempt and poll numbers are 1-based.
type BackoffPolicy struct {
	RateLimitBase time.Duration
	RateLimitStep time.Duration
	RateLimitCap  time.Duration
	RetryStep     time.Duration
	VerdictBase   time.Duration
	VerdictStep   time.Duration
}

func DefaultBackoff() BackoffPolicy {
	return BackoffPolicy{
		RateLimitBase: 30 * time.Second,
		RateLimitStep: 10 * time.Second,
		RateLimitCap:  60 * time.Second,
		RetryStep:     2 * time.Second,
		VerdictBase:   2 * time.Second,
		VerdictStep:   time.Second,
	}
}

// RateLimitWait is the pause after the attempt-th consecutive rate-limit
// failure: 30s, 40s, 50s, then capped at 60s.
func (b BackoffPolicy) RateLimitWait(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	wait := b.RateLimitBase + b.RateLimitStep*time.Duration(attempt-1)
	if b.RateLimitCap > 0 && wait > b.RateLimitCap {
		return b.RateLimitCap
	}

	return wait
}

// RetryWait is the pause after the attempt-th non rate-limit failure.
func (b BackoffPolicy) RetryWait(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}

	return b.RetryStep * time.Duration(attempt)
}

// VerdictWait is the pause before the poll-th verdict read: 2s, 3s, 4s.
func (b BackoffPolicy) VerdictWait(poll int) time.Duration {
	if poll < 1 {
		poll = 1
	}

	return b.VerdictBase + b.VerdictStep*time.Duration(poll-1)
}

func (b BackoffPolicy) isZero() bool {
	return b == BackoffPolicy{}
}

type SessionConfig struct {
	TargetCount int
	Language    Language
	// DailyChallenge is a problem number; zero means no daily challenge.
	DailyChallenge int
	SkipSolved     bool
	SkipPremium    bool
	MaxAttempts    int
	VerdictPolls   int
	Backoff        BackoffPolicy
	// StrictVerdicts records ambiguous or unreadable verdicts as rejected
	// instead of assuming they were accepted.
	StrictVerdicts bool
}

// WithDefaults fills zero-valued tunables. Validate should be called on the
// result.
func (c SessionConfig) WithDefaults() SessionConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.VerdictPolls <= 0 {
		c.VerdictPolls = DefaultVerdictPolls
	}
	if c.Backoff.isZero() {
		c.Backoff = DefaultBackoff()
	}

	return c
}

func (c SessionConfig) Validate() error {
	if c.TargetCount < MinTargetCount || c.TargetCount > MaxTargetCount {
		return fmt.Errorf("%w: target count %d out of range [%d, %d]", ErrInvalidConfig, c.TargetCount, MinTargetCount, MaxTargetCount)
	}
	if c.Language == "" {
		return fmt.Errorf("%w: language is required", ErrInvalidConfig)
	}
	if !c.Language.IsSupported() {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidConfig, c.Language)
	}
	if c.DailyChallenge != 0 && (c.DailyChallenge < MinDailyChallenge || c.DailyChallenge > MaxDailyChallenge) {
		return fmt.Errorf("%w: daily challenge %d out of range [%d, %d]", ErrInvalidConfig, c.DailyChallenge, MinDailyChallenge, MaxDailyChallenge)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidConfig)
	}
	if c.VerdictPolls < 1 {
		return fmt.Errorf("%w: verdict polls must be positive", ErrInvalidConfig)
	}

	return nil
}
