package transactions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// buildListQuery assembles the filtered listing query. Every account
// reference is left-joined to accounts for name enrichment. The date filter
// is inclusive on both ends and only applied when both bounds are present.
func buildListQuery(userID string, f ListFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT t.id::text, t.type, t.amount, t.date, COALESCE(t.note, ''), t.created_at,
	acc.id::text, acc.name,
	src.id::text, src.name,
	dst.id::text, dst.name,
	fra.id::text, fra.name,
	toa.id::text, toa.name
FROM transactions t
LEFT JOIN accounts acc ON acc.id = t.account_id
LEFT JOIN accounts src ON src.id = t.source_id
LEFT JOIN accounts dst ON dst.id = t.destination_id
LEFT JOIN accounts fra ON fra.id = t.from_account_id
LEFT JOIN accounts toa ON toa.id = t.to_account_id
WHERE t.user_id = $1::uuid`)

	args := []any{userID}
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		fmt.Fprintf(&sb, " AND t.account_id = $%d::uuid", len(args))
	}
	if f.Type != "" {
		args = append(args, string(f.Type))
		fmt.Fprintf(&sb, " AND t.type = $%d", len(args))
	}
	if f.StartDate != nil && f.EndDate != nil {
		args = append(args, *f.StartDate)
		fmt.Fprintf(&sb, " AND t.date >= $%d", len(args))
		args = append(args, *f.EndDate)
		fmt.Fprintf(&sb, " AND t.date <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY t.date DESC")

	return sb.String(), args
}

// ListByUser returns the user's transactions matching the filter, newest
// first, with account references resolved to display names.
func (r *Repo) ListByUser(ctx context.Context, userID string, f ListFilter) ([]View, error) {
	query, args := buildListQuery(userID, f)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]View, 0, 32)
	for rows.Next() {
		var (
			v         View
			date      time.Time
			createdAt time.Time
			refIDs    [5]*string
			refNames  [5]*string
		)
		if err := rows.Scan(
			&v.ID, &v.Type, &v.Amount, &date, &v.Note, &createdAt,
			&refIDs[0], &refNames[0],
			&refIDs[1], &refNames[1],
			&refIDs[2], &refNames[2],
			&refIDs[3], &refNames[3],
			&refIDs[4], &refNames[4],
		); err != nil {
			return nil, err
		}
		v.Date = date.UTC().Format("2006-01-02")
		v.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		v.Account = makeRef(refIDs[0], refNames[0])
		v.Source = makeRef(refIDs[1], refNames[1])
		v.Destination = makeRef(refIDs[2], refNames[2])
		v.FromAccount = makeRef(refIDs[3], refNames[3])
		v.ToAccount = makeRef(refIDs[4], refNames[4])
		out = append(out, v)
	}
	return out, rows.Err()
}

func makeRef(id, name *string) *AccountRef {
	if id == nil {
		return nil
	}
	ref := &AccountRef{ID: *id}
	if name != nil {
		ref.Name = *name
	}
	return ref
}

// ListInRange returns the user's transactions with date in [start, end).
// The upper bound is exclusive: a transaction dated exactly at end is not
// included. Used by the monthly and daily aggregators.
func (r *Repo) ListInRange(ctx context.Context, userID string, start, end time.Time) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, user_id::text, type, amount, date,
			account_id::text, source_id::text, destination_id::text,
			from_account_id::text, to_account_id::text, note, created_at
		 FROM transactions
		 WHERE user_id = $1::uuid AND date >= $2 AND date < $3
		 ORDER BY date ASC`,
		userID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0, 32)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Date,
			&t.AccountID, &t.SourceID, &t.DestinationID,
			&t.FromAccountID, &t.ToAccountID, &t.Note, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a transaction and returns its id.
func (r *Repo) Create(ctx context.Context, t *Transaction) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions
			(user_id, type, amount, date, account_id, source_id, destination_id, from_account_id, to_account_id, note)
		 VALUES ($1::uuid, $2, $3, $4, $5::uuid, $6::uuid, $7::uuid, $8::uuid, $9::uuid, $10)
		 RETURNING id`,
		t.UserID, t.Type, t.Amount, t.Date,
		t.AccountID, t.SourceID, t.DestinationID, t.FromAccountID, t.ToAccountID, t.Note,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteAllForUser removes every transaction owned by the user. Used by the
// account deletion cascade.
func (r *Repo) DeleteAllForUser(ctx context.Context, userID string) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1::uuid`, userID)
	return err
}
