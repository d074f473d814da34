package ports

import (
	"context"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
)

// ProblemCatalog supplies candidates and owns the durable solved set.
type ProblemCatalog interface {
	ListAll(ctx context.Context) ([]domain.ProblemID, error)
	IsSolved(ctx context.Context, id domain.ProblemID) (bool, error)
	MarkSolved(ctx context.Context, id domain.ProblemID) error
}

type SolutionStore interface {
	SaveSolution(ctx context.Context, record domain.SolutionRecord) error
}

// ProblemLibrary is the maintenance surface of a file-backed catalog.
type ProblemLibrary interface {
	ProblemCatalog
	// AddProblem reports false when the problem was already present.
	AddProblem(ctx context.Context, id domain.ProblemID) (bool, error)
	ListSolved(ctx context.Context) ([]domain.ProblemID, error)
}
