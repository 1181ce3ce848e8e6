package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/cart"
)

// CartRepo implementa cart.Repository y orders.CartClearer.
type CartRepo struct {
	db *sqlx.DB
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) ListByUser(ctx context.Context, userID int64) ([]cart.Line, error) {
	out := make([]cart.Line, 0)
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &out, `
		SELECT c.user_id, c.product_id, c.quantity, c.created_at,
		       p.name, p.brand, p.price, p.image_url
		FROM cart c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.product_id
	`, userID)
	return out, err
}

// Add es un único upsert: la suma la hace postgres sobre la fila bloqueada.
func (r *CartRepo) Add(ctx context.Context, userID, productID int64, quantity int) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`, userID, productID, quantity)
	if err != nil {
		if isForeignKeyViolation(err, "product_id") {
			return cart.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (r *CartRepo) Remove(ctx context.Context, userID, productID int64) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return err
}

func (r *CartRepo) Clear(ctx context.Context, userID int64) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM cart WHERE user_id = $1`, userID)
	return err
}
