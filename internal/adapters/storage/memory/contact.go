package memory

import (
	"context"
	"slices"

	"pick-your-pup/internal/domain/contact"
)

type ContactRepo struct {
	s *Store
}

func NewContactRepo(s *Store) *ContactRepo {
	return &ContactRepo{s: s}
}

func (r *ContactRepo) Save(ctx context.Context, m contact.Message) error {
	defer r.s.lock(ctx)()

	r.s.st.contacts = append(r.s.st.contacts, m)
	return nil
}

// List devuelve lo guardado en orden de llegada.
func (r *ContactRepo) List(ctx context.Context) []contact.Message {
	defer r.s.rlock(ctx)()
	return slices.Clone(r.s.st.contacts)
}
