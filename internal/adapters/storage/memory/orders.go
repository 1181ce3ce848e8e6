package memory

import (
	"context"
	"sort"

	"pick-your-pup/internal/domain/orders"
)

type OrdersRepo struct {
	s *Store
}

func NewOrdersRepo(s *Store) *OrdersRepo {
	return &OrdersRepo{s: s}
}

func (r *OrdersRepo) Create(ctx context.Context, o *orders.Order) error {
	defer r.s.lock(ctx)()

	r.s.st.seq.order++
	o.ID = r.s.st.seq.order
	if o.Status == "" {
		o.Status = orders.StatusProcessing
	}
	ts := r.s.timestamp()
	o.CreatedAt, o.UpdatedAt = ts, ts

	r.s.st.orders[o.ID] = *o
	return nil
}

func (r *OrdersRepo) AddItem(ctx context.Context, it *orders.Item) error {
	defer r.s.lock(ctx)()

	// FKs
	if _, ok := r.s.st.orders[it.OrderID]; !ok {
		return errOrderMissing
	}
	if it.ProductID != nil {
		if _, ok := r.s.st.products[*it.ProductID]; !ok {
			return orders.ErrProductNotFound
		}
	}
	if it.PuppyID != nil {
		if _, ok := r.s.st.puppies[*it.PuppyID]; !ok {
			return orders.ErrPuppyNotFound
		}
	}

	r.s.st.seq.item++
	it.ID = r.s.st.seq.item
	r.s.st.orderItems = append(r.s.st.orderItems, *it)
	return nil
}

func (r *OrdersRepo) ListByUser(ctx context.Context, userID int64) ([]orders.Summary, error) {
	defer r.s.rlock(ctx)()

	out := make([]orders.Summary, 0)
	index := make(map[int64]int)
	for _, o := range r.s.st.orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, orders.Summary{Order: o})
	}
	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[j].CreatedAt, out[i].ID, out[j].ID)
	})
	for i := range out {
		index[out[i].ID] = i
	}

	// orderItems ya está en orden de inserción.
	for _, it := range r.s.st.orderItems {
		i, ok := index[it.OrderID]
		if !ok {
			continue
		}
		line := orders.SummaryLine{Kind: it.Kind(), Quantity: it.Quantity}
		switch it.Kind() {
		case orders.ItemPuppy:
			if p, ok := r.s.st.puppies[*it.PuppyID]; ok {
				line.Name, line.Breed = p.Name, p.Breed
			}
		default:
			if p, ok := r.s.st.products[*it.ProductID]; ok {
				line.Name = p.Name
			}
		}
		out[i].Lines = append(out[i].Lines, line)
	}
	return out, nil
}
