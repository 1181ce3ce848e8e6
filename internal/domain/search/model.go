package search

import "github.com/shopspring/decimal"

// TypePuppy discrimina cachorros; los productos usan su categoría (food/accessories).
const TypePuppy = "puppy"

// MinQueryLen por debajo de esto la búsqueda es un no-op.
const MinQueryLen = 2

type Result struct {
	ID    int64           `db:"id" json:"id"`
	Name  string          `db:"name" json:"name"`
	Breed string          `db:"breed" json:"breed,omitempty"`
	Brand string          `db:"brand" json:"brand,omitempty"`
	Price decimal.Decimal `db:"price" json:"price"`
	Type  string          `db:"type" json:"type"`
}
