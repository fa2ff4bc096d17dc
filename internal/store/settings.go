package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dfarias/cacauledger/internal/ledger"
)

func (s *SQLite) ListPreferences(ctx context.Context) ([]ledger.Preference, error) {
	rows, err := s.reader.QueryContext(ctx, `SELECT name, value FROM preferences ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []ledger.Preference
	for rows.Next() {
		var p ledger.Preference
		if err := rows.Scan(&p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	return prefs, rows.Err()
}

// GetPreference returns the stored value, or "" when the preference is unset.
func (s *SQLite) GetPreference(ctx context.Context, name string) (string, error) {
	var value string
	err := s.reader.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get preference: %w", err)
	}
	return value, nil
}

func (s *SQLite) SetPreference(ctx context.Context, name, value string) error {
	_, err := s.writer.ExecContext(ctx,
		`INSERT INTO preferences (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value,
	)
	if err != nil {
		return fmt.Errorf("set preference: %w", err)
	}
	return nil
}

func (s *SQLite) DeletePreference(ctx context.Context, name string) error {
	_, err := s.writer.ExecContext(ctx, `DELETE FROM preferences WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
