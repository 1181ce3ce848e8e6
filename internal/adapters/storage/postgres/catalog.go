package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/orders"
)

// CatalogRepo implementa catalog.Repository y orders.PuppyReserver.
type CatalogRepo struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const (
	puppyColumns   = `id, name, breed, age, price, description, rating, status, image_url, created_at`
	productColumns = `id, name, brand, category, type, price, original_price, size, description, rating, image_url, in_stock, created_at`
)

func (r *CatalogRepo) ListPuppies(ctx context.Context) ([]catalog.Puppy, error) {
	out := make([]catalog.Puppy, 0)
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &out, `
		SELECT `+puppyColumns+`
		FROM puppies
		ORDER BY created_at DESC, id DESC
	`)
	return out, err
}

func (r *CatalogRepo) GetPuppy(ctx context.Context, id int64) (catalog.Puppy, error) {
	var p catalog.Puppy
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &p, `SELECT `+puppyColumns+` FROM puppies WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Puppy{}, catalog.ErrPuppyNotFound
		}
		return catalog.Puppy{}, err
	}
	return p, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, error) {
	where := []string{"in_stock"}
	args := []any{}
	if f.Category != "" {
		args = append(args, string(f.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}

	out := make([]catalog.Product, 0)
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &out, `
		SELECT `+productColumns+`
		FROM products
		WHERE `+strings.Join(where, " AND ")+`
		ORDER BY created_at DESC, id DESC
	`, args...)
	return out, err
}

// Reserve es un compare-and-set: sólo pasa de available a reserved. Con dos
// adopciones concurrentes del mismo cachorro, la segunda no afecta filas.
func (r *CatalogRepo) Reserve(ctx context.Context, puppyID int64) error {
	q := conn(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE puppies SET status = 'reserved'
		WHERE id = $1 AND status = 'available'
	`, puppyID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	var status string
	if err := sqlx.GetContext(ctx, q, &status, `SELECT status FROM puppies WHERE id = $1`, puppyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orders.ErrPuppyNotFound
		}
		return err
	}
	return orders.ErrPuppyUnavailable
}
