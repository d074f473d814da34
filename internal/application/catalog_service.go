package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

type CatalogService struct {
	library ports.ProblemLibrary
}

func NewCatalogService(library ports.ProblemLibrary) *CatalogService {
	return &CatalogService{library: library}
}

// AddProblems slugifies each name and adds it. It returns the identifiers
// that were new; names that are empty after slugifying are reported in the
// joined error.
func (s *CatalogService) AddProblems(ctx context.Context, names []string) ([]domain.ProblemID, error) {
	added := make([]domain.ProblemID, 0, len(names))
	var errs error

	for _, name := range names {
		id := domain.Slugify(name)
		if err := id.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("add problem %q: %w", name, err))
			continue
		}

		created, err := s.library.AddProblem(ctx, id)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("add problem %q: %w", id, err))
			continue
		}
		if created {
			added = append(added, id)
		}
	}

	return added, errs
}

func (s *CatalogService) ListProblems(ctx context.Context) ([]domain.ProblemID, error) {
	ids, err := s.library.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}

	return domain.SortedOrder{}.Order(ids), nil
}

func (s *CatalogService) ListSolved(ctx context.Context) ([]domain.ProblemID, error) {
	ids, err := s.library.ListSolved(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solved problems: %w", err)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

func (s *CatalogService) MarkSolved(ctx context.Context, names []string) error {
	var errs error
	for _, name := range names {
		id := domain.Slugify(name)
		if err := id.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("mark solved %q: %w", name, err))
			continue
		}
		if err := s.library.MarkSolved(ctx, id); err != nil {
			errs = errors.Join(errs, fmt.Errorf("mark solved %q: %w", id, err))
		}
	}

	return errs
}
