package accounts

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

func (r *Repo) Insert(ctx context.Context, userID, name string, isDefault bool) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO accounts (user_id, name, is_default)
		 VALUES ($1::uuid, $2, $3)
		 RETURNING id`,
		userID, name, isDefault,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repo) ListByUser(ctx context.Context, userID string) ([]Account, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, name, is_default, created_at
		 FROM accounts
		 WHERE user_id = $1::uuid
		 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.IsDefault, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SeedDefaults creates the default accounts for a newly registered user.
func (r *Repo) SeedDefaults(ctx context.Context, userID string) error {
	for _, name := range DefaultNames {
		if _, err := r.Pool.Exec(ctx,
			`INSERT INTO accounts (user_id, name, is_default)
			 VALUES ($1::uuid, $2, true)
			 ON CONFLICT (user_id, name) DO NOTHING`,
			userID, name,
		); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAllForUser removes every account owned by the user.
func (r *Repo) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1::uuid`, userID)
	return err
}
