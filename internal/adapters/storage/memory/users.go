package memory

import (
	"context"

	"pick-your-pup/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

func NewUsersRepo(s *Store) *UsersRepo {
	return &UsersRepo{s: s}
}

func (r *UsersRepo) Create(ctx context.Context, u *users.User) error {
	defer r.s.lock(ctx)()

	// unique(email), case-sensitive como la columna en postgres
	if _, taken := r.s.st.emails[u.Email]; taken {
		return users.ErrEmailTaken
	}

	r.s.st.seq.user++
	u.ID = r.s.st.seq.user
	u.CreatedAt = r.s.timestamp()

	r.s.st.users[u.ID] = *u
	r.s.st.emails[u.Email] = u.ID
	return nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	defer r.s.rlock(ctx)()

	id, ok := r.s.st.emails[email]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.s.st.users[id], nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	defer r.s.rlock(ctx)()

	u, ok := r.s.st.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
