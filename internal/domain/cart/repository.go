package cart

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Line, error)

	// Add inserta o incrementa en forma atómica (sin lost updates entre requests concurrentes).
	// Devuelve ErrProductNotFound si el producto no existe.
	Add(ctx context.Context, userID, productID int64, quantity int) error

	Remove(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}
