package store

import (
	"context"
	"database/sql"
	"fmt"
)

func (s *SQLite) migrate(ctx context.Context) error {
	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		)
	`); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version < 1 {
		if err := migrateV1(ctx, tx); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return tx.Commit()
}

func migrateV1(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		// Clients. CPF and phone are stored as bare digits.
		`CREATE TABLE IF NOT EXISTS clients (
			id            TEXT PRIMARY KEY,
			full_name     TEXT NOT NULL,
			cpf           TEXT NOT NULL,
			phone         TEXT NOT NULL,
			registered_at TEXT NOT NULL,
			created_at    TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_clients_name ON clients(full_name)`,
		`CREATE INDEX IF NOT EXISTS idx_clients_cpf ON clients(cpf)`,

		// Transactions. client_id is intentionally not a foreign key:
		// existence of the client is the caller's contract, and the delete
		// cascade is done explicitly in DeleteClient.
		`CREATE TABLE IF NOT EXISTS transactions (
			id                 TEXT PRIMARY KEY,
			client_id          TEXT NOT NULL,
			date               TEXT NOT NULL,
			kind               TEXT NOT NULL CHECK (kind IN ('entrada_cacau','venda_produto','adiantamento','pagamento')),
			quantity_kg        REAL,
			price_per_kg_cents INTEGER,
			amount_cents       INTEGER NOT NULL,
			note               TEXT,
			created_at         TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_client ON transactions(client_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,

		// Installation preferences (e.g. company name on report headers).
		`CREATE TABLE IF NOT EXISTS preferences (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec migration statement: %w", err)
		}
	}

	return nil
}
