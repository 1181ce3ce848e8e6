package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"pick-your-pup/internal/domain/cart"
	"pick-your-pup/internal/domain/catalog"
	"pick-your-pup/internal/domain/contact"
	"pick-your-pup/internal/domain/orders"
	"pick-your-pup/internal/domain/users"
)

type cartKey struct {
	userID    int64
	productID int64
}

// state es todo lo persistido; se clona entero para poder hacer rollback.
type state struct {
	users      map[int64]users.User
	emails     map[string]int64
	puppies    map[int64]catalog.Puppy
	products   map[int64]catalog.Product
	cart       map[cartKey]cart.Item
	orders     map[int64]orders.Order
	orderItems []orders.Item
	contacts   []contact.Message

	seq struct {
		user, puppy, product, order, item int64
	}
}

func newState() state {
	return state{
		users:    make(map[int64]users.User),
		emails:   make(map[string]int64),
		puppies:  make(map[int64]catalog.Puppy),
		products: make(map[int64]catalog.Product),
		cart:     make(map[cartKey]cart.Item),
		orders:   make(map[int64]orders.Order),
	}
}

func (st state) clone() state {
	out := st
	out.users = maps.Clone(st.users)
	out.emails = maps.Clone(st.emails)
	out.puppies = maps.Clone(st.puppies)
	out.products = maps.Clone(st.products)
	out.cart = maps.Clone(st.cart)
	out.orders = maps.Clone(st.orders)
	out.orderItems = slices.Clone(st.orderItems)
	out.contacts = slices.Clone(st.contacts)
	return out
}

// Store es una base en memoria compartida por todos los repos de este paquete.
// Cada operación toma el lock; dentro de WithTransaction el lock ya lo tiene la tx
// y las operaciones que reciben ese ctx no lo vuelven a pedir.
type Store struct {
	mu  sync.RWMutex
	st  state
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		st:  newState(),
		now: time.Now,
	}
}

type txKey struct{}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

func (s *Store) rlock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// WithTransaction serializa fn contra el resto del store; si fn falla (o entra en
// pánico) se restaura el estado previo. Las transacciones anidadas se aplanan.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
		if err != nil {
			s.st = snapshot
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// SeedCatalog carga puppies/products sólo si el catálogo está vacío.
func (s *Store) SeedCatalog(ctx context.Context, puppies []catalog.Puppy, products []catalog.Product) (bool, error) {
	defer s.lock(ctx)()

	if len(s.st.puppies) > 0 || len(s.st.products) > 0 {
		return false, nil
	}

	ts := s.timestamp()
	for _, p := range puppies {
		s.st.seq.puppy++
		p.ID = s.st.seq.puppy
		p.CreatedAt = ts
		if p.Status == "" {
			p.Status = catalog.PuppyAvailable
		}
		s.st.puppies[p.ID] = p
	}
	for _, p := range products {
		s.st.seq.product++
		p.ID = s.st.seq.product
		p.CreatedAt = ts
		s.st.products[p.ID] = p
	}
	return true, nil
}
