package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/google/uuid"
)

func (s *SQLite) CreateClient(ctx context.Context, c *ledger.Client) error {
	if c.ID == "" {
		c.ID = uuid.Must(uuid.NewV7()).String()
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = ledger.Today()
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := s.writer.ExecContext(ctx,
		`INSERT INTO clients (id, full_name, cpf, phone, registered_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.FullName, c.CPF, c.Phone, c.RegisteredAt.String(),
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (s *SQLite) GetClient(ctx context.Context, id string) (*ledger.Client, error) {
	row := s.reader.QueryRowContext(ctx,
		`SELECT id, full_name, cpf, phone, registered_at, created_at FROM clients WHERE id = ?`, id)
	return scanClient(row.Scan)
}

func (s *SQLite) ListClients(ctx context.Context, filter ClientFilter) ([]ledger.Client, error) {
	query := `SELECT id, full_name, cpf, phone, registered_at, created_at FROM clients WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		query += ` AND (full_name LIKE ? OR cpf LIKE ?)`
		like := "%" + filter.Search + "%"
		args = append(args, like, like)
	}

	query += ` ORDER BY full_name`

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
		}
	}

	rows, err := s.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []ledger.Client
	for rows.Next() {
		c, err := scanClient(rows.Scan)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	return clients, rows.Err()
}

// UpdateClient replaces name, CPF and phone by id. A missing id affects zero
// rows and returns nil.
func (s *SQLite) UpdateClient(ctx context.Context, c *ledger.Client) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}

	_, err := s.writer.ExecContext(ctx,
		`UPDATE clients SET full_name = ?, cpf = ?, phone = ? WHERE id = ?`,
		c.FullName, c.CPF, c.Phone, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// DeleteClient removes the client and all of its transactions in a single
// SQL transaction, so no orphaned ledger entries can survive.
func (s *SQLite) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}

	tx, err := s.writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE client_id = ?`, id); err != nil {
		return fmt.Errorf("delete client transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return tx.Commit()
}

func scanClient(scan func(dest ...any) error) (*ledger.Client, error) {
	var c ledger.Client
	var registeredAt, createdAt string
	err := scan(&c.ID, &c.FullName, &c.CPF, &c.Phone, &registeredAt, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ledger.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	c.RegisteredAt, _ = ledger.ParseDate(registeredAt)
	c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &c, nil
}
