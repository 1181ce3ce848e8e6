package users

import "context"

// Repository persiste usuarios.
// Create debe devolver ErrEmailTaken si el email ya existe (unique), y setear ID/CreatedAt.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
}

// PasswordHasher abstrae el hash de passwords (bcrypt en prod).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
