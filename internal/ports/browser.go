package ports

import (
	"context"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

// BrowserDriver drives the judge's web UI for one problem at a time. Errors
// wrap domain.ErrNavigation, domain.ErrElementNotFound or domain.ErrTimeout.
type BrowserDriver interface {
	IsAlreadySolved(ctx context.Context, id domain.ProblemID) (bool, error)
	IsPremiumLocked(ctx context.Context, id domain.ProblemID) (bool, error)
	InjectCode(ctx context.Context, id domain.ProblemID, source string, lang domain.Language) error
	Submit(ctx context.Context, id domain.ProblemID) error
	ReadVerdict(ctx context.Context, id domain.ProblemID) (string, error)
}
