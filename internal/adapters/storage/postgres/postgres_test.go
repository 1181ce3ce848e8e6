package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pick-your-pup/internal/domain/cart"
	"pick-your-pup/internal/domain/orders"
	"pick-your-pup/internal/domain/users"
	"pick-your-pup/internal/platform/apperr"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return sqlx.NewDb(raw, "sqlmock"), mock
}

func TestUsersRepo_CreateMapsUniqueViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUsersRepo(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Ana", "ana@example.com", "555", "hash").
		WillReturnError(&pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "users_email_key"})

	u := users.User{Name: "Ana", Email: "ana@example.com", Phone: "555", PasswordHash: "hash"}
	err := repo.Create(context.Background(), &u)
	assert.ErrorIs(t, err, users.ErrEmailTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersRepo_GetByEmailNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUsersRepo(db)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestCartRepo_AddIsSingleUpsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCartRepo(db)

	mock.ExpectExec(`(?s)INSERT INTO cart .* ON CONFLICT \(user_id, product_id\)\s+DO UPDATE SET quantity = cart.quantity \+ EXCLUDED.quantity`).
		WithArgs(1, 4, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Add(context.Background(), 1, 4, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepo_AddUnknownProduct(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCartRepo(db)

	mock.ExpectExec("INSERT INTO cart").
		WillReturnError(&pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "cart_product_id_fkey"})

	err := repo.Add(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, cart.ErrProductNotFound)
}

func TestCatalogRepo_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("available", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("UPDATE puppies SET status = 'reserved'").
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewCatalogRepo(db).Reserve(ctx, 2))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already reserved", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("UPDATE puppies").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM puppies").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("reserved"))

		assert.ErrorIs(t, NewCatalogRepo(db).Reserve(ctx, 1), orders.ErrPuppyUnavailable)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec("UPDATE puppies").WithArgs(99).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM puppies").WithArgs(99).WillReturnError(sql.ErrNoRows)

		assert.ErrorIs(t, NewCatalogRepo(db).Reserve(ctx, 99), orders.ErrPuppyNotFound)
	})
}

func TestSearchRepo_EscapesWildcards(t *testing.T) {
	db, mock := newMock(t)
	repo := NewSearchRepo(db)

	mock.ExpectQuery(`FROM puppies\s+WHERE \(name ILIKE \$1 ESCAPE '\\' OR breed ILIKE \$1 ESCAPE '\\'\)\s+AND status = 'available'`).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "breed", "price", "type"}))

	out, err := repo.SearchPuppies(context.Background(), "50%_off")
	require.NoError(t, err)
	assert.Empty(t, out)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%lab%", likePattern("lab"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func newOrderService(db *sqlx.DB) *orders.Service {
	return orders.NewService(NewOrdersRepo(db), NewCatalogRepo(db), NewCartRepo(db), NewTxManager(db))
}

func TestOrders_PurchaseCommitsItemsAndClearsCart(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, "purchase", "processing", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(10, 4, nil, 2, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(10, 1, nil, 1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectExec("DELETE FROM cart WHERE user_id").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	o, err := newOrderService(db).Create(context.Background(), 7, orders.CreateInput{
		Type: orders.TypePurchase,
		Items: []orders.Line{
			{ProductID: 4, Quantity: 2, Price: decimal.RequireFromString("12.99")},
			{ProductID: 1, Quantity: 1, Price: decimal.RequireFromString("45.99")},
		},
		TotalAmount: decimal.RequireFromString("71.97"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), o.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrders_FailureMidCreationRollsBack(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := newOrderService(db).Create(context.Background(), 7, orders.CreateInput{
		Type: orders.TypePurchase,
		Items: []orders.Line{
			{ProductID: 4, Quantity: 1, Price: decimal.NewFromInt(1)},
			{ProductID: 5, Quantity: 1, Price: decimal.NewFromInt(1)},
		},
		TotalAmount: decimal.NewFromInt(2),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrders_AdoptionOfReservedPuppyWritesNothing(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE puppies").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM puppies").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("reserved"))
	mock.ExpectRollback()

	_, err := newOrderService(db).Create(context.Background(), 7, orders.CreateInput{
		Type:        orders.TypeAdoption,
		PuppyID:     1,
		TotalAmount: decimal.NewFromInt(2500),
	})
	assert.ErrorIs(t, err, orders.ErrPuppyUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_AppliesOnlyPending(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_init"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS contact_messages").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("0002_contact_messages").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ran, err := Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"0002_contact_messages"}, ran)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadMigrations_Ordered(t *testing.T) {
	migs, err := loadMigrations()
	require.NoError(t, err)
	require.Len(t, migs, 2)
	assert.Equal(t, "0001_init", migs[0].version)
	assert.Contains(t, migs[0].sql, "CREATE TABLE IF NOT EXISTS order_items")
}
