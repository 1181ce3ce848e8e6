//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pick-your-pup/internal/adapters/storage/postgres"
	"pick-your-pup/internal/adapters/storage/seed"
	"pick-your-pup/internal/domain/cart"
	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/orders"
	"pick-your-pup/internal/domain/search"
	"pick-your-pup/internal/domain/users"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	c, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pickyourpup"),
		tcpostgres.WithUsername("pup"),
		tcpostgres.WithPassword("pup"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := c.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

func TestPostgresStore_EndToEnd(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	db, err := postgres.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ran, err := postgres.Migrate(ctx, db)
	require.NoError(t, err)
	assert.Len(t, ran, 2)

	ran, err = postgres.Migrate(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, ran)

	ok, err := postgres.SeedCatalog(ctx, db, seed.Puppies(), seed.Products())
	require.NoError(t, err)
	assert.True(t, ok)

	usersRepo := postgres.NewUsersRepo(db)
	catalogRepo := postgres.NewCatalogRepo(db)
	cartRepo := postgres.NewCartRepo(db)
	ordersRepo := postgres.NewOrdersRepo(db)

	u := users.User{Name: "Ana", Email: "ana@example.com", Phone: "555", PasswordHash: "x"}
	require.NoError(t, usersRepo.Create(ctx, &u))
	dup := u
	assert.ErrorIs(t, usersRepo.Create(ctx, &dup), users.ErrEmailTaken)

	treats, err := catalogRepo.ListProducts(ctx, catalog.ProductFilter{Category: catalog.CategoryFood, Type: "treats"})
	require.NoError(t, err)
	require.Len(t, treats, 1)
	assert.True(t, treats[0].Price.Equal(decimal.RequireFromString("12.99")))

	cartSvc := cart.NewService(cartRepo)
	require.NoError(t, cartSvc.AddItem(ctx, u.ID, treats[0].ID, 1))
	require.NoError(t, cartSvc.AddItem(ctx, u.ID, treats[0].ID, 2))
	lines, err := cartSvc.Get(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	ordersSvc := orders.NewService(ordersRepo, catalogRepo, cartRepo, postgres.NewTxManager(db))
	_, err = ordersSvc.Create(ctx, u.ID, orders.CreateInput{
		Type:        orders.TypePurchase,
		Items:       []orders.Line{{ProductID: treats[0].ID, Quantity: 3, Price: treats[0].Price}},
		TotalAmount: decimal.RequireFromString("38.97"),
	})
	require.NoError(t, err)

	lines, err = cartSvc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// FK de producto inexistente: rollback completo
	_, err = ordersSvc.Create(ctx, u.ID, orders.CreateInput{
		Type:        orders.TypePurchase,
		Items:       []orders.Line{{ProductID: treats[0].ID, Quantity: 1, Price: treats[0].Price}, {ProductID: 9999, Quantity: 1}},
		TotalAmount: decimal.Zero,
	})
	assert.ErrorIs(t, err, orders.ErrProductNotFound)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	var nOrders, nItems int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&nOrders))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM order_items`).Scan(&nItems))
	assert.Equal(t, 1, nOrders)
	assert.Equal(t, 1, nItems)

	// Max está disponible
	_, err = ordersSvc.Create(ctx, u.ID, orders.CreateInput{Type: orders.TypeAdoption, PuppyID: 2, TotalAmount: decimal.NewFromInt(3200)})
	require.NoError(t, err)
	maxPup, err := catalogRepo.GetPuppy(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, catalog.PuppyReserved, maxPup.Status)

	list, err := ordersSvc.List(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Max (German Shepherd)", list[0].Items)
	assert.Equal(t, "Training Treats (x3)", list[1].Items)

	results, err := search.NewService(postgres.NewSearchRepo(db)).Search(ctx, "pup")
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, search.TypePuppy, r.Type, "ningún cachorro matchea 'pup'")
	}
	assert.NotEmpty(t, results)
}
