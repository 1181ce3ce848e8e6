package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/domain/contact"
)

type ContactRepo struct {
	db *sqlx.DB
}

func NewContactRepo(db *sqlx.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) Save(ctx context.Context, m contact.Message) error {
	_, err := sqlx.NamedExecContext(ctx, conn(ctx, r.db), `
		INSERT INTO contact_messages (id, name, email, phone, subject, message, created_at)
		VALUES (:id, :name, :email, :phone, :subject, :message, :created_at)
	`, m)
	return err
}
