package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeAdoption Type = "adoption"
	TypePurchase Type = "purchase"
)

type Status string

const StatusProcessing Status = "processing"

// Order es inmutable una vez creada junto con sus items.
type Order struct {
	ID          int64           `db:"id" json:"id"`
	UserID      int64           `db:"user_id" json:"user_id"`
	Type        Type            `db:"type" json:"type"`
	Status      Status          `db:"status" json:"status"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

type ItemKind string

const (
	ItemProduct ItemKind = "product"
	ItemPuppy   ItemKind = "puppy"
)

// Item referencia un producto (con cantidad) o un cachorro (cantidad 1), nunca ambos.
// Construir con NewProductItem / NewPuppyItem.
type Item struct {
	ID        int64           `db:"id"`
	OrderID   int64           `db:"order_id"`
	ProductID *int64          `db:"product_id"`
	PuppyID   *int64          `db:"puppy_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

func NewProductItem(orderID, productID int64, quantity int, price decimal.Decimal) Item {
	return Item{OrderID: orderID, ProductID: &productID, Quantity: quantity, Price: price}
}

func NewPuppyItem(orderID, puppyID int64, price decimal.Decimal) Item {
	return Item{OrderID: orderID, PuppyID: &puppyID, Quantity: 1, Price: price}
}

func (it Item) Kind() ItemKind {
	if it.PuppyID != nil {
		return ItemPuppy
	}
	return ItemProduct
}

// Valid chequea la unión: exactamente una referencia.
func (it Item) Valid() bool {
	return (it.ProductID == nil) != (it.PuppyID == nil)
}

// SummaryLine es un item ya resuelto contra puppies/products para listar.
type SummaryLine struct {
	Kind     ItemKind
	Name     string
	Breed    string
	Quantity int
}

type Summary struct {
	Order
	Lines []SummaryLine
}
