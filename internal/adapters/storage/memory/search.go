package memory

import (
	"context"
	"sort"
	"strings"

	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/search"
)

type SearchRepo struct {
	s *Store
}

func NewSearchRepo(s *Store) *SearchRepo {
	return &SearchRepo{s: s}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (r *SearchRepo) SearchPuppies(ctx context.Context, term string) ([]search.Result, error) {
	defer r.s.rlock(ctx)()

	out := make([]search.Result, 0)
	for _, p := range r.s.st.puppies {
		if p.Status != catalog.PuppyAvailable {
			continue
		}
		if !containsFold(p.Name, term) && !containsFold(p.Breed, term) {
			continue
		}
		out = append(out, search.Result{ID: p.ID, Name: p.Name, Breed: p.Breed, Price: p.Price, Type: search.TypePuppy})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SearchRepo) SearchProducts(ctx context.Context, term string) ([]search.Result, error) {
	defer r.s.rlock(ctx)()

	out := make([]search.Result, 0)
	for _, p := range r.s.st.products {
		if !p.InStock {
			continue
		}
		if !containsFold(p.Name, term) && !containsFold(p.Brand, term) {
			continue
		}
		out = append(out, search.Result{ID: p.ID, Name: p.Name, Brand: p.Brand, Price: p.Price, Type: string(p.Category)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
