package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/orders"
)

type OrdersRepo struct {
	db *sqlx.DB
}

func NewOrdersRepo(db *sqlx.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

func (r *OrdersRepo) Create(ctx context.Context, o *orders.Order) error {
	if o.Status == "" {
		o.Status = orders.StatusProcessing
	}
	return conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO orders (user_id, type, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`,
		o.UserID,
		string(o.Type),
		string(o.Status),
		o.TotalAmount,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrdersRepo) AddItem(ctx context.Context, it *orders.Item) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO order_items (order_id, product_id, puppy_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		it.OrderID,
		it.ProductID,
		it.PuppyID,
		it.Quantity,
		it.Price,
	).Scan(&it.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err, "product_id"):
			return orders.ErrProductNotFound
		case isForeignKeyViolation(err, "puppy_id"):
			return orders.ErrPuppyNotFound
		}
		return err
	}
	return nil
}

type summaryLineRow struct {
	OrderID   int64  `db:"order_id"`
	ProductID *int64 `db:"product_id"`
	PuppyID   *int64 `db:"puppy_id"`
	Quantity  int    `db:"quantity"`
	Name      string `db:"name"`
	Breed     string `db:"breed"`
}

func (r *OrdersRepo) ListByUser(ctx context.Context, userID int64) ([]orders.Summary, error) {
	q := conn(ctx, r.db)

	var list []orders.Order
	if err := sqlx.SelectContext(ctx, q, &list, `
		SELECT id, user_id, type, status, total_amount, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID); err != nil {
		return nil, err
	}

	out := make([]orders.Summary, len(list))
	index := make(map[int64]int, len(list))
	for i, o := range list {
		out[i] = orders.Summary{Order: o}
		index[o.ID] = i
	}
	if len(list) == 0 {
		return out, nil
	}

	var rows []summaryLineRow
	if err := sqlx.SelectContext(ctx, q, &rows, `
		SELECT oi.order_id, oi.product_id, oi.puppy_id, oi.quantity,
		       COALESCE(p.name, pr.name, '') AS name,
		       COALESCE(p.breed, '') AS breed
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN puppies p ON p.id = oi.puppy_id
		LEFT JOIN products pr ON pr.id = oi.product_id
		WHERE o.user_id = $1
		ORDER BY oi.id
	`, userID); err != nil {
		return nil, err
	}

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			continue
		}
		kind := orders.ItemProduct
		if row.PuppyID != nil {
			kind = orders.ItemPuppy
		}
		out[i].Lines = append(out[i].Lines, orders.SummaryLine{
			Kind:     kind,
			Name:     row.Name,
			Breed:    row.Breed,
			Quantity: row.Quantity,
		})
	}
	return out, nil
}
