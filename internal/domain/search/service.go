package search

import (
	"context"
	"strings"
	"unicode/utf8"

	"pick-your-pup/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search concatena cachorros y productos, sin ranking ni deduplicación.
// Queries de menos de MinQueryLen runas devuelven vacío sin tocar el repo.
func (s *Service) Search(ctx context.Context, query string) ([]Result, error) {
	term := strings.TrimSpace(query)
	if utf8.RuneCountInString(term) < MinQueryLen {
		return []Result{}, nil
	}

	puppies, err := s.repo.SearchPuppies(ctx, term)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	products, err := s.repo.SearchProducts(ctx, term)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]Result, 0, len(puppies)+len(products))
	out = append(out, puppies...)
	out = append(out, products...)
	return out, nil
}
