package accounts

import "time"

type Account struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateAccountRequest struct {
	Name string `json:"name"`
}

// DefaultNames are the accounts seeded for every new user.
var DefaultNames = []string{"Cash", "Bank", "Card"}
