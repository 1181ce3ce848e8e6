package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/users"
)

type UsersRepo struct {
	db *sqlx.DB
}

func NewUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `id, name, email, phone, password, created_at`

func (r *UsersRepo) Create(ctx context.Context, u *users.User) error {
	err := conn(ctx, r.db).QueryRowxContext(ctx, `
		INSERT INTO users (name, email, phone, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		u.Name,
		u.Email,
		u.Phone,
		u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UsersRepo) getOne(ctx context.Context, query string, arg any) (users.User, error) {
	var u users.User
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &u, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}
