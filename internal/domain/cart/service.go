package cart

import (
	"context"
	"errors"

	"pick-your-pup/internal/platform/apperr"
)

var (
	ErrProductNotFound  = apperr.NotFound("Product not found")
	ErrInvalidProductID = apperr.Validation("product_id is required")
	ErrInvalidQuantity  = apperr.Validation("quantity must be at least 1")
	ErrInvalidUser      = apperr.Unauthorized("Access token required")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID int64) ([]Line, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	lines, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return lines, nil
}

// AddItem suma quantity a la fila existente o la crea. No valida stock ni tope.
func (s *Service) AddItem(ctx context.Context, userID, productID int64, quantity int) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	if productID <= 0 {
		return ErrInvalidProductID
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	if err := s.repo.Add(ctx, userID, productID, quantity); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		return apperr.Internal(err)
	}
	return nil
}

// RemoveItem es idempotente: quitar algo que no está no es error.
func (s *Service) RemoveItem(ctx context.Context, userID, productID int64) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
