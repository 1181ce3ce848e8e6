package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pick-your-pup/internal/platform/apperr"
)

// -------------------------
// Fakes: un "store" con snapshot para simular la tx
// -------------------------

type fakeStore struct {
	orders   []Order
	items    []Item
	reserved map[int64]bool
	cart     map[int64]int

	failItemAt int // 1-based; 0 = nunca
	itemCalls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{reserved: map[int64]bool{}, cart: map[int64]int{}}
}

func (s *fakeStore) snapshot() fakeStore {
	cp := *s
	cp.orders = append([]Order(nil), s.orders...)
	cp.items = append([]Item(nil), s.items...)
	cp.reserved = map[int64]bool{}
	for k, v := range s.reserved {
		cp.reserved[k] = v
	}
	cp.cart = map[int64]int{}
	for k, v := range s.cart {
		cp.cart[k] = v
	}
	return cp
}

func (s *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := s.snapshot()
	if err := fn(ctx); err != nil {
		calls := s.itemCalls
		*s = snap
		s.itemCalls = calls
		return err
	}
	return nil
}

func (s *fakeStore) Create(_ context.Context, o *Order) error {
	o.ID = int64(len(s.orders) + 1)
	s.orders = append(s.orders, *o)
	return nil
}

func (s *fakeStore) AddItem(_ context.Context, it *Item) error {
	s.itemCalls++
	if s.failItemAt > 0 && s.itemCalls == s.failItemAt {
		return errors.New("disk full")
	}
	it.ID = int64(len(s.items) + 1)
	s.items = append(s.items, *it)
	return nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID int64) ([]Summary, error) {
	var out []Summary
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].UserID == userID {
			out = append(out, Summary{Order: s.orders[i]})
		}
	}
	return out, nil
}

func (s *fakeStore) Reserve(_ context.Context, puppyID int64) error {
	if puppyID == 404 {
		return ErrPuppyNotFound
	}
	if s.reserved[puppyID] {
		return ErrPuppyUnavailable
	}
	s.reserved[puppyID] = true
	return nil
}

func (s *fakeStore) Clear(_ context.Context, userID int64) error {
	delete(s.cart, userID)
	return nil
}

func newTestService() (*Service, *fakeStore) {
	st := newFakeStore()
	return NewService(st, st, st, st), st
}

func purchase(lines ...Line) CreateInput {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return CreateInput{Type: TypePurchase, Items: lines, TotalAmount: total}
}

// -------------------------
// Tests
// -------------------------

func TestService_Purchase_CreatesNItemsAndClearsCart(t *testing.T) {
	svc, st := newTestService()
	st.cart[7] = 5

	o, err := svc.Create(context.Background(), 7, purchase(
		Line{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("45.99")},
		Line{ProductID: 4, Quantity: 1, Price: decimal.RequireFromString("12.99")},
		Line{ProductID: 9, Quantity: 3, Price: decimal.RequireFromString("15.99")},
	))
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, o.Status)
	assert.Len(t, st.orders, 1)
	assert.Len(t, st.items, 3)
	for _, it := range st.items {
		assert.Equal(t, ItemProduct, it.Kind())
		assert.Equal(t, o.ID, it.OrderID)
	}
	assert.NotContains(t, st.cart, int64(7))
}

func TestService_Purchase_FailureMidwayLeavesNothing(t *testing.T) {
	svc, st := newTestService()
	st.cart[7] = 2
	st.failItemAt = 2

	_, err := svc.Create(context.Background(), 7, purchase(
		Line{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)},
		Line{ProductID: 2, Quantity: 1, Price: decimal.NewFromInt(10)},
	))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	assert.Empty(t, st.orders)
	assert.Empty(t, st.items)
	assert.Equal(t, 2, st.cart[7])
}

func TestService_Adoption_ReservesAndRecordsPrice(t *testing.T) {
	svc, st := newTestService()

	_, err := svc.Create(context.Background(), 7, CreateInput{
		Type: TypeAdoption, PuppyID: 2, TotalAmount: decimal.NewFromInt(3200),
	})
	require.NoError(t, err)

	require.Len(t, st.items, 1)
	assert.Equal(t, ItemPuppy, st.items[0].Kind())
	assert.Equal(t, 1, st.items[0].Quantity)
	assert.True(t, st.items[0].Price.Equal(decimal.NewFromInt(3200)))
	assert.True(t, st.reserved[2])

	_, err = svc.Create(context.Background(), 8, CreateInput{Type: TypeAdoption, PuppyID: 2})
	assert.ErrorIs(t, err, ErrPuppyUnavailable)
	assert.Len(t, st.orders, 1)

	_, err = svc.Create(context.Background(), 8, CreateInput{Type: TypeAdoption, PuppyID: 404})
	assert.ErrorIs(t, err, ErrPuppyNotFound)
}

func TestService_Create_Validation(t *testing.T) {
	svc, st := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"unknown type", CreateInput{Type: "rental"}, ErrInvalidType},
		{"adoption without puppy", CreateInput{Type: TypeAdoption}, ErrPuppyRequired},
		{"purchase without items", CreateInput{Type: TypePurchase}, ErrItemsRequired},
		{"zero quantity", CreateInput{Type: TypePurchase, Items: []Line{{ProductID: 1}}}, ErrInvalidItem},
		{"negative price", CreateInput{Type: TypePurchase, Items: []Line{{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(-1)}}}, ErrInvalidItem},
		{"negative total", CreateInput{Type: TypeAdoption, PuppyID: 1, TotalAmount: decimal.NewFromInt(-5)}, ErrInvalidTotal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 7, c.in)
			assert.ErrorIs(t, err, c.want)
		})
	}
	assert.Empty(t, st.orders)

	_, err := svc.Create(ctx, 0, CreateInput{Type: TypeAdoption, PuppyID: 1})
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestItem_Union(t *testing.T) {
	p := NewProductItem(1, 2, 3, decimal.Zero)
	assert.True(t, p.Valid())
	assert.Equal(t, ItemProduct, p.Kind())

	d := NewPuppyItem(1, 2, decimal.Zero)
	assert.True(t, d.Valid())
	assert.Equal(t, ItemPuppy, d.Kind())

	assert.False(t, Item{}.Valid())
	both := p
	both.PuppyID = d.PuppyID
	assert.False(t, both.Valid())
}

func TestDescribe(t *testing.T) {
	got := Describe([]SummaryLine{
		{Kind: ItemPuppy, Name: "Luna", Breed: "Labrador Retriever", Quantity: 1},
		{Kind: ItemProduct, Name: "Training Treats", Quantity: 2},
		{Kind: ItemProduct, Name: "", Quantity: 1},
	})
	assert.Equal(t, "Luna (Labrador Retriever), Training Treats (x2)", got)
	assert.Equal(t, "", Describe(nil))
}
