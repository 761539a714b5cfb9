// Package categories holds per-user income/expense category names and the
// default lists seeded at user creation.
package categories

import "time"

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

type Category struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Kind      Kind      `db:"kind" json:"kind"`
	Name      string    `db:"name" json:"name"`
	IsDefault bool      `db:"is_default" json:"is_default"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DefaultIncome and DefaultExpense are the category names seeded for every
// new user, flagged is_default so they can be told apart from user-created
// ones.
var DefaultIncome = []string{
	"Awards",
	"Coupons",
	"Grants",
	"Lottery",
	"Refunds",
	"Rental",
	"Salary",
	"Sell",
}

var DefaultExpense = []string{
	"Baby",
	"Beauty",
	"Bills",
	"Car",
	"Clothing",
	"Education",
	"Electronics",
	"Entertainment",
	"Food",
	"Health",
	"Home",
	"Insurance",
	"Shopping",
	"Social",
	"Sport",
	"Tax",
	"Telephone",
	"Transportation",
}
