package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/catalog"
)

// SeedCatalog carga el catálogo de ejemplo si puppies y products están vacías.
// Todo en una tx: o queda el catálogo completo o nada.
func SeedCatalog(ctx context.Context, db *sqlx.DB, puppies []catalog.Puppy, products []catalog.Product) (bool, error) {
	seeded := false
	err := NewTxManager(db).WithTransaction(ctx, func(ctx context.Context) error {
		q := conn(ctx, db)

		var hasData bool
		if err := sqlx.GetContext(ctx, q, &hasData, `
			SELECT EXISTS (SELECT 1 FROM puppies) OR EXISTS (SELECT 1 FROM products)
		`); err != nil {
			return err
		}
		if hasData {
			return nil
		}

		for _, p := range puppies {
			if p.Status == "" {
				p.Status = catalog.PuppyAvailable
			}
			if _, err := sqlx.NamedExecContext(ctx, q, `
				INSERT INTO puppies (name, breed, age, price, description, rating, status, image_url)
				VALUES (:name, :breed, :age, :price, :description, :rating, :status, :image_url)
			`, p); err != nil {
				return fmt.Errorf("seed puppy %s: %w", p.Name, err)
			}
		}
		for _, p := range products {
			if _, err := sqlx.NamedExecContext(ctx, q, `
				INSERT INTO products (name, brand, category, type, price, original_price, size, description, rating, image_url, in_stock)
				VALUES (:name, :brand, :category, :type, :price, :original_price, :size, :description, :rating, :image_url, :in_stock)
			`, p); err != nil {
				return fmt.Errorf("seed product %s: %w", p.Name, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return seeded, nil
}
