package memory

import (
	"context"
	"sort"

	"pick-your-pup/internal/domain/cart"
)

// CartRepo implementa cart.Repository y orders.CartClearer.
type CartRepo struct {
	s *Store
}

func NewCartRepo(s *Store) *CartRepo {
	return &CartRepo{s: s}
}

func (r *CartRepo) ListByUser(ctx context.Context, userID int64) ([]cart.Line, error) {
	defer r.s.rlock(ctx)()

	out := make([]cart.Line, 0)
	for k, it := range r.s.st.cart {
		if k.userID != userID {
			continue
		}
		p, ok := r.s.st.products[k.productID]
		if !ok {
			continue
		}
		out = append(out, cart.Line{
			Item:     it,
			Name:     p.Name,
			Brand:    p.Brand,
			Price:    p.Price,
			ImageURL: p.ImageURL,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ProductID < out[j].ProductID
	})
	return out, nil
}

func (r *CartRepo) Add(ctx context.Context, userID, productID int64, quantity int) error {
	defer r.s.lock(ctx)()

	if _, ok := r.s.st.products[productID]; !ok {
		return cart.ErrProductNotFound
	}

	k := cartKey{userID: userID, productID: productID}
	it, ok := r.s.st.cart[k]
	if !ok {
		it = cart.Item{UserID: userID, ProductID: productID, CreatedAt: r.s.timestamp()}
	}
	it.Quantity += quantity
	r.s.st.cart[k] = it
	return nil
}

func (r *CartRepo) Remove(ctx context.Context, userID, productID int64) error {
	defer r.s.lock(ctx)()

	delete(r.s.st.cart, cartKey{userID: userID, productID: productID})
	return nil
}

func (r *CartRepo) Clear(ctx context.Context, userID int64) error {
	defer r.s.lock(ctx)()

	for k := range r.s.st.cart {
		if k.userID == userID {
			delete(r.s.st.cart, k)
		}
	}
	return nil
}
