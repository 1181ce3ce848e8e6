package catalog

import (
	"context"
	"errors"
	"strings"

	"pick-your-pup/internal/platform/apperr"
)

var ErrPuppyNotFound = apperr.NotFound("Puppy not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListPuppies devuelve todos los cachorros, más nuevos primero.
func (s *Service) ListPuppies(ctx context.Context) ([]Puppy, error) {
	items, err := s.repo.ListPuppies(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) GetPuppy(ctx context.Context, id int64) (Puppy, error) {
	if id <= 0 {
		return Puppy{}, ErrPuppyNotFound
	}
	p, err := s.repo.GetPuppy(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPuppyNotFound) {
			return Puppy{}, ErrPuppyNotFound
		}
		return Puppy{}, apperr.Internal(err)
	}
	return p, nil
}

// ListProducts aplica sólo los filtros presentes (AND).
func (s *Service) ListProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	f.Category = Category(strings.TrimSpace(string(f.Category)))
	f.Type = strings.TrimSpace(f.Type)

	items, err := s.repo.ListProducts(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}
