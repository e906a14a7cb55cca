package domain

import "time"

// Account is an authenticated identity. Email may be empty for accounts
// provisioned out of band and restored via a pre-issued token.
type Account struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
