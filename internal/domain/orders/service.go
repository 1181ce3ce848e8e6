package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pick-your-pup/internal/platform/apperr"
)

var (
	ErrPuppyNotFound    = apperr.NotFound("Puppy not found")
	ErrPuppyUnavailable = apperr.Conflict("Puppy is already reserved")
	ErrProductNotFound  = apperr.NotFound("Product not found")

	ErrInvalidType     = apperr.Validation("type must be adoption or purchase")
	ErrPuppyRequired   = apperr.Validation("puppy_id is required for adoption orders")
	ErrItemsRequired   = apperr.Validation("items are required for purchase orders")
	ErrInvalidItem     = apperr.Validation("each item needs product_id, quantity >= 1 and price >= 0")
	ErrInvalidTotal    = apperr.Validation("total_amount must not be negative")
	ErrInvalidUser     = apperr.Unauthorized("Access token required")
	errItemUnionBroken = errors.New("order item must reference exactly one of product or puppy")
)

type Service struct {
	repo    Repository
	puppies PuppyReserver
	cart    CartClearer
	tx      TxManager
}

func NewService(repo Repository, puppies PuppyReserver, cart CartClearer, tx TxManager) *Service {
	return &Service{
		repo:    repo,
		puppies: puppies,
		cart:    cart,
		tx:      tx,
	}
}

type Line struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// CreateInput: adoption usa PuppyID (precio = TotalAmount); purchase usa Items.
// Precios y total vienen del cliente y no se recalculan.
type CreateInput struct {
	Type        Type
	PuppyID     int64
	Items       []Line
	TotalAmount decimal.Decimal
}

func (in CreateInput) validate() error {
	if in.TotalAmount.IsNegative() {
		return ErrInvalidTotal
	}
	switch in.Type {
	case TypeAdoption:
		if in.PuppyID <= 0 {
			return ErrPuppyRequired
		}
	case TypePurchase:
		if len(in.Items) == 0 {
			return ErrItemsRequired
		}
		for _, l := range in.Items {
			if l.ProductID <= 0 || l.Quantity < 1 || l.Price.IsNegative() {
				return ErrInvalidItem
			}
		}
	default:
		return ErrInvalidType
	}
	return nil
}

// Create registra la orden, sus items y el efecto lateral (reserva del cachorro o
// vaciado completo del carrito) en una sola transacción.
func (s *Service) Create(ctx context.Context, userID int64, in CreateInput) (Order, error) {
	if userID <= 0 {
		return Order{}, ErrInvalidUser
	}
	in.Type = Type(strings.TrimSpace(string(in.Type)))
	if err := in.validate(); err != nil {
		return Order{}, err
	}

	o := Order{
		UserID:      userID,
		Type:        in.Type,
		Status:      StatusProcessing,
		TotalAmount: in.TotalAmount,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if in.Type == TypeAdoption {
			// Primero la reserva: si el cachorro no está disponible no se escribe nada.
			if err := s.puppies.Reserve(ctx, in.PuppyID); err != nil {
				return err
			}
		}

		if err := s.repo.Create(ctx, &o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		switch in.Type {
		case TypeAdoption:
			it := NewPuppyItem(o.ID, in.PuppyID, in.TotalAmount)
			if err := s.addItem(ctx, &it); err != nil {
				return err
			}
		case TypePurchase:
			for _, l := range in.Items {
				it := NewProductItem(o.ID, l.ProductID, l.Quantity, l.Price)
				if err := s.addItem(ctx, &it); err != nil {
					return err
				}
			}
			// Se vacía el carrito completo, incluso ítems que no vinieron en la orden.
			if err := s.cart.Clear(ctx, userID); err != nil {
				return fmt.Errorf("clear cart: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return Order{}, err
		}
		return Order{}, apperr.Internal(err)
	}
	return o, nil
}

func (s *Service) addItem(ctx context.Context, it *Item) error {
	if !it.Valid() {
		return errItemUnionBroken
	}
	if err := s.repo.AddItem(ctx, it); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("add order item: %w", err)
	}
	return nil
}

// Listed es una orden con el resumen legible de sus items.
type Listed struct {
	Order
	Items string `json:"items"`
}

func (s *Service) List(ctx context.Context, userID int64) ([]Listed, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	summaries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]Listed, 0, len(summaries))
	for _, sm := range summaries {
		out = append(out, Listed{Order: sm.Order, Items: Describe(sm.Lines)})
	}
	return out, nil
}

// Describe arma "Luna (Labrador Retriever), Training Treats (x2)".
// Líneas cuyo cachorro/producto ya no existe se omiten.
func Describe(lines []SummaryLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l.Name) == "" {
			continue
		}
		switch l.Kind {
		case ItemPuppy:
			parts = append(parts, fmt.Sprintf("%s (%s)", l.Name, l.Breed))
		default:
			parts = append(parts, fmt.Sprintf("%s (x%d)", l.Name, l.Quantity))
		}
	}
	return strings.Join(parts, ", ")
}
