package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item es una fila del carrito; identidad (UserID, ProductID), Quantity >= 1.
type Item struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Line es un Item con los datos de producto para mostrar.
// Productos borrados no aparecen (join interno).
type Line struct {
	Item
	Name     string          `db:"name" json:"name"`
	Brand    string          `db:"brand" json:"brand"`
	Price    decimal.Decimal `db:"price" json:"price"`
	ImageURL string          `db:"image_url" json:"image_url"`
}
