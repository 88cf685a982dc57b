package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// activeCatalogID is the row holding the imported catalog, if any.
const activeCatalogID = "active"

// CatalogRepo stores the imported problem catalog as validated JSON.
// When no catalog has been imported, Load returns nil and callers fall back
// to the built-in seed.
type CatalogRepo interface {
	// Load returns the active catalog's raw JSON, or nil if none imported.
	Load(ctx context.Context) ([]byte, error)

	// Replace atomically swaps in a new active catalog.
	Replace(ctx context.Context, raw []byte) error
}

type catalogRepo struct {
	db *sql.DB
}

func (r *catalogRepo) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM catalogs WHERE id = ?`, activeCatalogID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return []byte(data), nil
}

func (r *catalogRepo) Replace(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalogs (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		activeCatalogID, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}
