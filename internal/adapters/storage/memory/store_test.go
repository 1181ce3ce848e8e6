package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pick-your-pup/internal/adapters/storage/seed"
	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/contact"
	"pick-your-pup/internal/domain/orders"
	"pick-your-pup/internal/domain/users"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	ok, err := s.SeedCatalog(context.Background(), seed.Puppies(), seed.Products())
	require.NoError(t, err)
	require.True(t, ok)
	return s
}

func countOrders(s *Store) (ordersN, itemsN int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.st.orders), len(s.st.orderItems)
}

func TestSeedCatalog_OnlyWhenEmpty(t *testing.T) {
	s := seeded(t)

	ok, err := s.SeedCatalog(context.Background(), seed.Puppies(), seed.Products())
	require.NoError(t, err)
	assert.False(t, ok)

	pups, err := NewCatalogRepo(s).ListPuppies(context.Background())
	require.NoError(t, err)
	assert.Len(t, pups, 8)
	// mismo created_at => id desc
	assert.Equal(t, "Milo", pups[0].Name)
}

func TestUsersRepo_UniqueEmail(t *testing.T) {
	repo := NewUsersRepo(NewStore())
	ctx := context.Background()

	u := users.User{Name: "Ana", Email: "ana@example.com", Phone: "1", PasswordHash: "x"}
	require.NoError(t, repo.Create(ctx, &u))
	assert.Equal(t, int64(1), u.ID)

	dup := users.User{Name: "Otra", Email: "ana@example.com"}
	assert.ErrorIs(t, repo.Create(ctx, &dup), users.ErrEmailTaken)

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestCatalogRepo_ListProductsFilters(t *testing.T) {
	s := seeded(t)
	repo := NewCatalogRepo(s)
	ctx := context.Background()

	treats, err := repo.ListProducts(ctx, catalog.ProductFilter{Category: catalog.CategoryFood, Type: "treats"})
	require.NoError(t, err)
	require.Len(t, treats, 1)
	assert.Equal(t, "Training Treats", treats[0].Name)

	food, err := repo.ListProducts(ctx, catalog.ProductFilter{Category: catalog.CategoryFood})
	require.NoError(t, err)
	assert.Len(t, food, 6)

	// fuera de stock no aparece
	p := s.st.products[food[0].ID]
	p.InStock = false
	s.st.products[p.ID] = p

	food, err = repo.ListProducts(ctx, catalog.ProductFilter{Category: catalog.CategoryFood})
	require.NoError(t, err)
	assert.Len(t, food, 5)
}

func TestCatalogRepo_Reserve(t *testing.T) {
	s := seeded(t)
	repo := NewCatalogRepo(s)
	ctx := context.Background()

	// Max (id 2) está disponible
	require.NoError(t, repo.Reserve(ctx, 2))
	p, err := repo.GetPuppy(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, catalog.PuppyReserved, p.Status)

	assert.ErrorIs(t, repo.Reserve(ctx, 2), orders.ErrPuppyUnavailable)
	assert.ErrorIs(t, repo.Reserve(ctx, 999), orders.ErrPuppyNotFound)
}

func TestCartRepo_ConcurrentAddsAccumulate(t *testing.T) {
	s := seeded(t)
	repo := NewCartRepo(s)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Add(ctx, 7, 1, 2))
		}()
	}
	wg.Wait()

	lines, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 100, lines[0].Quantity)
	assert.Equal(t, "Premium Puppy Kibble", lines[0].Name)
}

func TestCartRepo_UnknownProduct(t *testing.T) {
	repo := NewCartRepo(seeded(t))
	err := repo.Add(context.Background(), 1, 999, 1)
	assert.Error(t, err)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	carts := NewCartRepo(s)
	ords := NewOrdersRepo(s)
	cat := NewCatalogRepo(s)

	require.NoError(t, carts.Add(ctx, 1, 1, 1))

	boom := errors.New("boom")
	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		o := orders.Order{UserID: 1, Type: orders.TypeAdoption, TotalAmount: decimal.NewFromInt(3200)}
		require.NoError(t, ords.Create(ctx, &o))
		it := orders.NewPuppyItem(o.ID, 2, o.TotalAmount)
		require.NoError(t, ords.AddItem(ctx, &it))
		require.NoError(t, cat.Reserve(ctx, 2))
		require.NoError(t, carts.Clear(ctx, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, items := countOrders(s)
	assert.Zero(t, n)
	assert.Zero(t, items)

	p, err := cat.GetPuppy(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, catalog.PuppyAvailable, p.Status)

	lines, err := carts.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	ords := NewOrdersRepo(s)

	assert.Panics(t, func() {
		_ = s.WithTransaction(ctx, func(ctx context.Context) error {
			o := orders.Order{UserID: 1, Type: orders.TypePurchase}
			_ = ords.Create(ctx, &o)
			panic("kaboom")
		})
	})

	n, _ := countOrders(s)
	assert.Zero(t, n)

	// el lock quedó liberado
	o := orders.Order{UserID: 1, Type: orders.TypePurchase}
	require.NoError(t, ords.Create(ctx, &o))
}

func TestOrdersRepo_ListByUserResolvesLines(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	ords := NewOrdersRepo(s)

	o := orders.Order{UserID: 3, Type: orders.TypePurchase}
	require.NoError(t, ords.Create(ctx, &o))
	a := orders.NewProductItem(o.ID, 4, 2, decimal.RequireFromString("12.99"))
	require.NoError(t, ords.AddItem(ctx, &a))
	b := orders.NewProductItem(o.ID, 1, 1, decimal.RequireFromString("45.99"))
	require.NoError(t, ords.AddItem(ctx, &b))

	bad := orders.NewProductItem(o.ID, 999, 1, decimal.Zero)
	assert.ErrorIs(t, ords.AddItem(ctx, &bad), orders.ErrProductNotFound)

	list, err := ords.ListByUser(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Training Treats (x2), Premium Puppy Kibble (x1)", orders.Describe(list[0].Lines))

	other, err := ords.ListByUser(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSearchRepo_FiltersAvailability(t *testing.T) {
	s := seeded(t)
	repo := NewSearchRepo(s)
	ctx := context.Background()

	// Luna (Labrador) está reservada
	pups, err := repo.SearchPuppies(ctx, "LAB")
	require.NoError(t, err)
	assert.Empty(t, pups)

	pups, err = repo.SearchPuppies(ctx, "husk")
	require.NoError(t, err)
	assert.Empty(t, pups)

	pups, err = repo.SearchPuppies(ctx, "beag")
	require.NoError(t, err)
	require.Len(t, pups, 1)
	assert.Equal(t, "puppy", pups[0].Type)

	prods, err := repo.SearchProducts(ctx, "purepup")
	require.NoError(t, err)
	require.Len(t, prods, 2)
	assert.Equal(t, "food", prods[0].Type)
}

func TestContactRepo_SaveInsideRolledBackTx(t *testing.T) {
	s := NewStore()
	repo := NewContactRepo(s)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, contact.Message{Name: "Ana"}))

	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repo.Save(ctx, contact.Message{Name: "Bob"}))
		assert.Len(t, repo.List(ctx), 2)
		return errors.New("abort")
	})
	require.Error(t, err)

	got := repo.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}
