package memory

import (
	"context"
	"sort"

	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/orders"
)

// CatalogRepo implementa catalog.Repository y orders.PuppyReserver.
type CatalogRepo struct {
	s *Store
}

func NewCatalogRepo(s *Store) *CatalogRepo {
	return &CatalogRepo{s: s}
}

func (r *CatalogRepo) ListPuppies(ctx context.Context) ([]catalog.Puppy, error) {
	defer r.s.rlock(ctx)()

	out := make([]catalog.Puppy, 0, len(r.s.st.puppies))
	for _, p := range r.s.st.puppies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *CatalogRepo) GetPuppy(ctx context.Context, id int64) (catalog.Puppy, error) {
	defer r.s.rlock(ctx)()

	p, ok := r.s.st.puppies[id]
	if !ok {
		return catalog.Puppy{}, catalog.ErrPuppyNotFound
	}
	return p, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, error) {
	defer r.s.rlock(ctx)()

	out := make([]catalog.Product, 0)
	for _, p := range r.s.st.products {
		if !p.InStock {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	return out, nil
}

func (r *CatalogRepo) Reserve(ctx context.Context, puppyID int64) error {
	defer r.s.lock(ctx)()

	p, ok := r.s.st.puppies[puppyID]
	if !ok {
		return orders.ErrPuppyNotFound
	}
	if p.Status == catalog.PuppyReserved {
		return orders.ErrPuppyUnavailable
	}
	p.Status = catalog.PuppyReserved
	r.s.st.puppies[puppyID] = p
	return nil
}
