package postgres

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/search"
)

type SearchRepo struct {
	db *sqlx.DB
}

func NewSearchRepo(db *sqlx.DB) *SearchRepo {
	return &SearchRepo{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern arma %term% con los comodines del usuario escapados.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func (r *SearchRepo) SearchPuppies(ctx context.Context, term string) ([]search.Result, error) {
	out := make([]search.Result, 0)
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &out, `
		SELECT id, name, breed, price, 'puppy' AS type
		FROM puppies
		WHERE (name ILIKE $1 ESCAPE '\' OR breed ILIKE $1 ESCAPE '\')
		  AND status = 'available'
		ORDER BY id
	`, likePattern(term))
	return out, err
}

func (r *SearchRepo) SearchProducts(ctx context.Context, term string) ([]search.Result, error) {
	out := make([]search.Result, 0)
	err := sqlx.SelectContext(ctx, conn(ctx, r.db), &out, `
		SELECT id, name, brand, price, category AS type
		FROM products
		WHERE (name ILIKE $1 ESCAPE '\' OR brand ILIKE $1 ESCAPE '\')
		  AND in_stock
		ORDER BY id
	`, likePattern(term))
	return out, err
}
