package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetPreference reads a preference value by key. The second result is
// false when the key has never been written.
func (r *SQLiteRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference writes a preference value, overwriting any prior value.
func (r *SQLiteRepository) SetPreference(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

// PreferenceStore exposes the preferences table under plain Get/Set
// names, which is the shape the currency package consumes.
type PreferenceStore struct {
	repo *SQLiteRepository
}

// Preferences returns a key/value view over the preferences table.
func (r *SQLiteRepository) Preferences() *PreferenceStore {
	return &PreferenceStore{repo: r}
}

func (p *PreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	return p.repo.GetPreference(ctx, key)
}

func (p *PreferenceStore) Set(ctx context.Context, key, value string) error {
	return p.repo.SetPreference(ctx, key, value)
}

// MarkAlerted records that an alert for the given deadline went out on
// day (YYYY-MM-DD). It returns false when the same alert was already
// recorded, which is how the worker avoids re-alerting within a day.
func (r *SQLiteRepository) MarkAlerted(ctx context.Context, kind string, sourceID int64, dueAt, day string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO expiry_alerts (kind, source_id, due_at, alerted_on)
		VALUES (?, ?, ?, ?)`,
		kind, sourceID, dueAt, day)
	if err != nil {
		return false, fmt.Errorf("mark alerted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark alerted rows: %w", err)
	}
	return n > 0, nil
}
