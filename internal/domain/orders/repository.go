package orders

import "context"

// Repository persiste órdenes. Create setea ID y timestamps; AddItem setea ID
// y devuelve ErrProductNotFound si el producto referenciado no existe.
type Repository interface {
	Create(ctx context.Context, o *Order) error
	AddItem(ctx context.Context, it *Item) error

	// ListByUser devuelve órdenes más nuevas primero, con sus líneas en orden de inserción.
	ListByUser(ctx context.Context, userID int64) ([]Summary, error)
}

// PuppyReserver pasa un cachorro a "reserved".
// Errores: ErrPuppyNotFound, ErrPuppyUnavailable (ya reservado).
type PuppyReserver interface {
	Reserve(ctx context.Context, puppyID int64) error
}

type CartClearer interface {
	Clear(ctx context.Context, userID int64) error
}

// TxManager ejecuta fn en una transacción; los repos toman la tx del ctx.
// Si fn devuelve error, nada de lo escrito dentro queda persistido.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
