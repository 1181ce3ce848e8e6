package search

import "context"

// Repository hace match case-insensitive por substring. term llega sin comodines:
// cada implementación escapa lo que su motor interprete como patrón.
type Repository interface {
	// SearchPuppies busca en name/breed sólo entre cachorros disponibles.
	SearchPuppies(ctx context.Context, term string) ([]Result, error)
	// SearchProducts busca en name/brand sólo entre productos en stock.
	SearchProducts(ctx context.Context, term string) ([]Result, error)
}
