package audit

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	UserID     *string
	Action     string
	EntityType string
	EntityID   *string
	Metadata   []byte
}

// Write records an audit entry; failures are returned so callers can ignore
// them for best-effort paths like signup.
func Write(ctx context.Context, db *pgxpool.Pool, e Entry) error {
	if db == nil {
		return nil
	}

	var metadata interface{}
	if len(e.Metadata) > 0 {
		raw := json.RawMessage(e.Metadata)
		metadata = raw
	}

	_, err := db.Exec(ctx, `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, metadata)
VALUES ($1, $2, $3, $4, $5)
`, e.UserID, e.Action, e.EntityType, e.EntityID, metadata)

	return err
}
