package users

import "time"

// User es la cuenta registrada. PasswordHash nunca sale por la API.
type User struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}
