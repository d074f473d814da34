package ports

import (
	"context"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

type CodeGenerator interface {
	// Initialize verifies credentials. A failure here aborts the session.
	Initialize(ctx context.Context) error
	Generate(ctx context.Context, id domain.ProblemID, lang domain.Language) (string, error)
	ResolveNameFromNumber(ctx context.Context, number int) (domain.ProblemID, error)
}
