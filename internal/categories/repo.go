package categories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// SeedDefaults inserts the default income and expense categories for a newly
// registered user.
func (r *Repo) SeedDefaults(ctx context.Context, userID string) error {
	if err := r.insertMany(ctx, userID, KindIncome, DefaultIncome); err != nil {
		return err
	}
	return r.insertMany(ctx, userID, KindExpense, DefaultExpense)
}

func (r *Repo) insertMany(ctx context.Context, userID string, kind Kind, names []string) error {
	for _, name := range names {
		if _, err := r.Pool.Exec(ctx,
			`INSERT INTO categories (user_id, kind, name, is_default)
			 VALUES ($1::uuid, $2, $3, true)
			 ON CONFLICT (user_id, kind, name) DO NOTHING`,
			userID, kind, name,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string, kind Kind) ([]Category, error) {
	query := `SELECT id::text, user_id::text, kind, name, is_default, created_at
		 FROM categories
		 WHERE user_id = $1::uuid`
	args := []any{userID}
	if kind != "" {
		query += ` AND kind = $2`
		args = append(args, kind)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Kind, &cat.Name, &cat.IsDefault, &cat.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

// DeleteAllForUser removes every category owned by the user.
func (r *Repo) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE user_id = $1::uuid`, userID)
	return err
}
