package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidConfig      = errors.New("invalid session config")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrOutcomeAlreadySet  = errors.New("attempt outcome already set")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrRateLimited        = errors.New("generator rate limited")
	ErrInvalidCredentials = errors.New("generator credentials invalid")
	ErrTransient          = errors.New("generator transient failure")
	ErrInvalidOutput      = errors.New("generator returned invalid output")
	ErrNavigation         = errors.New("browser navigation failed")
	ErrElementNotFound    = errors.New("page element not found")
	ErrTimeout            = errors.New("browser operation timed out")
)

type GenerationErrorKind string

const (
	GenerationRateLimited        GenerationErrorKind = "rate-limited"
	GenerationInvalidCredentials GenerationErrorKind = "invalid-credentials"
	GenerationTransient          GenerationErrorKind = "transient"
	GenerationInvalidOutput      GenerationErrorKind = "invalid-output"
)

// ClassifyGenerationError maps any generator error onto one of the four
// generation categories. Unknown errors are transient.
func ClassifyGenerationError(err error) GenerationErrorKind {
	switch {
	case errors.Is(err, ErrRateLimited):
		return GenerationRateLimited
	case errors.Is(err, ErrInvalidCredentials):
		return GenerationInvalidCredentials
	case errors.Is(err, ErrInvalidOutput):
		return GenerationInvalidOutput
	default:
		return GenerationTransient
	}
}

// Hint returns a short actionable message for errors a user can do
// something about, or "" when there is nothing useful to add.
func Hint(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRateLimited):
		return "API quota exceeded. Wait for the quota to reset or use a different API key."
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid Gemini API key. Run `lcs auth set-key` with a valid key."
	case errors.Is(err, ErrElementNotFound):
		return "The LeetCode page layout may have changed. Check the browser window and try again."
	case errors.Is(err, ErrNavigation):
		return "Network problem while loading LeetCode. Check your connection."
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return "The operation timed out. LeetCode may be slow; try again later."
	case errors.Is(err, ErrInvalidConfig):
		return "Check the session flags and configuration file."
	default:
		return ""
	}
}
