package application

import (
	"context"
	"fmt"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

// generate asks the generator for code, retrying with backoff. When every
// attempt fails the deterministic fallback is returned instead. The returned
// error is non-nil only when ctx ended while generating.
func (s *session) generate(ctx context.Context, record *domain.AttemptRecord) (string, error) {
	id := record.ID
	lang := s.cfg.Language
	s.audit(domain.AuditInfo, domain.TagAIGenerating, id, string(id), fmt.Sprintf("Generating %s solution", lang))

	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		record.Attempts = attempt

		code, err := s.deps.Generator.Generate(ctx, id, lang)
		if err == nil {
			record.GeneratedBy = domain.GeneratedByAI
			s.audit(domain.AuditSuccess, domain.TagAIGenerated, id, string(id), fmt.Sprintf("Generated on attempt %d", attempt))
			return code, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}

		record.LastError = err.Error()
		s.audit(domain.AuditError, fmt.Sprintf("%s_%d", domain.TagAIAttempt, attempt), id, err.Error(),
			fmt.Sprintf("AI generation attempt %d failed: %v", attempt, err))

		kind := domain.ClassifyGenerationError(err)
		if kind == domain.GenerationInvalidCredentials {
			break
		}

		if wait, ok := s.retryWait(kind, attempt); ok {
			if kind == domain.GenerationRateLimited {
				s.audit(domain.AuditWarning, domain.TagRateLimit, id, "Rate limit reached",
					fmt.Sprintf("Rate limit encountered, waiting %s before retry", wait))
			}
			if err := s.sleeper.Sleep(ctx, wait); err != nil {
				return "", err
			}
		}
	}

	record.GeneratedBy = domain.GeneratedByFallback
	s.audit(domain.AuditWarning, domain.TagAIExhausted, id, fmt.Sprintf("All attempts failed for %s", id),
		fmt.Sprintf("All AI generation attempts failed for %s, using fallback solution", id))

	return domain.FallbackSolution(id, lang), nil
}

// retryWait returns the pause following a failed attempt. Rate-limit
// failures wait even after the last attempt.
func (s *session) retryWait(kind domain.GenerationErrorKind, attempt int) (time.Duration, bool) {
	if kind == domain.GenerationRateLimited {
		return s.cfg.Backoff.RateLimitWait(attempt), true
	}
	if attempt < s.cfg.MaxAttempts {
		return s.cfg.Backoff.RetryWait(attempt), true
	}

	return 0, false
}
