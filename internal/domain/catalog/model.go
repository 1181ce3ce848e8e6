package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type PuppyStatus string

const (
	PuppyAvailable PuppyStatus = "available"
	PuppyReserved  PuppyStatus = "reserved"
)

type Category string

const (
	CategoryFood        Category = "food"
	CategoryAccessories Category = "accessories"
)

// Puppy es un cachorro en adopción. Age es texto libre ("8 weeks old").
type Puppy struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Breed       string          `db:"breed" json:"breed"`
	Age         string          `db:"age" json:"age"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`
	Rating      decimal.Decimal `db:"rating" json:"rating"`
	Status      PuppyStatus     `db:"status" json:"status"`
	ImageURL    string          `db:"image_url" json:"image_url"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Product es comida o accesorio. Type es el subtipo (dry, treats, collars...).
type Product struct {
	ID            int64               `db:"id" json:"id"`
	Name          string              `db:"name" json:"name"`
	Brand         string              `db:"brand" json:"brand"`
	Category      Category            `db:"category" json:"category"`
	Type          string              `db:"type" json:"type"`
	Price         decimal.Decimal     `db:"price" json:"price"`
	OriginalPrice decimal.NullDecimal `db:"original_price" json:"original_price"`
	Size          string              `db:"size" json:"size"`
	Description   string              `db:"description" json:"description"`
	Rating        decimal.Decimal     `db:"rating" json:"rating"`
	ImageURL      string              `db:"image_url" json:"image_url"`
	InStock       bool                `db:"in_stock" json:"in_stock"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

// ProductFilter: campos vacíos no restringen.
type ProductFilter struct {
	Category Category
	Type     string
}
