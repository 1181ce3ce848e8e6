package catalog

import "context"

// Repository es de sólo lectura; ListProducts devuelve únicamente productos en stock.
// GetPuppy devuelve ErrPuppyNotFound si no existe.
type Repository interface {
	ListPuppies(ctx context.Context) ([]Puppy, error)
	GetPuppy(ctx context.Context, id int64) (Puppy, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]Product, error)
}
