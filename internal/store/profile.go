package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultProfileID identifies the single local learner profile.
const DefaultProfileID = "default"

// ErrStaleProfile is returned by Save when the profile row was modified
// since the caller loaded it. The caller should reload, reapply, and retry.
var ErrStaleProfile = errors.New("profile was modified by another writer")

// ProfileRecord is a stored learner profile: an opaque snapshot blob plus
// the revision used for optimistic concurrency.
type ProfileRecord struct {
	ID        string
	Revision  int64
	Data      []byte
	UpdatedAt time.Time
}

// ProfileRepo loads and saves learner profiles. Saves are
// compare-and-increment on the revision column, so two devices writing the
// same profile cannot silently overwrite each other.
type ProfileRepo interface {
	// Load returns the stored profile, or nil if none exists yet.
	Load(ctx context.Context, id string) (*ProfileRecord, error)

	// Save writes the profile. A record with Revision 0 inserts a new row;
	// otherwise the row is updated only when the stored revision matches,
	// and ErrStaleProfile is returned on mismatch. On success the record's
	// Revision is advanced.
	Save(ctx context.Context, rec *ProfileRecord) error

	// Delete removes the profile row. Missing rows are not an error.
	Delete(ctx context.Context, id string) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context, id string) (*ProfileRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, revision, data, updated_at FROM profiles WHERE id = ?`, id)

	var rec ProfileRecord
	var data string
	err := row.Scan(&rec.ID, &rec.Revision, &data, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	rec.Data = []byte(data)
	return &rec, nil
}

func (r *profileRepo) Save(ctx context.Context, rec *ProfileRecord) error {
	now := time.Now().UTC()

	if rec.Revision == 0 {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO profiles (id, revision, data, updated_at) VALUES (?, 1, ?, ?)`,
			rec.ID, string(rec.Data), now)
		if err != nil {
			// A concurrent first save raced us on the primary key.
			return fmt.Errorf("insert profile: %w", errors.Join(ErrStaleProfile, err))
		}
		rec.Revision = 1
		rec.UpdatedAt = now
		return nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET revision = revision + 1, data = ?, updated_at = ?
		 WHERE id = ? AND revision = ?`,
		string(rec.Data), now, rec.ID, rec.Revision)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrStaleProfile
	}
	rec.Revision++
	rec.UpdatedAt = now
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
