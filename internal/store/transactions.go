package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/google/uuid"
)

func (s *SQLite) CreateTransaction(ctx context.Context, t *ledger.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.Must(uuid.NewV7()).String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	t.Normalize()
	if err := t.Validate(); err != nil {
		return err
	}

	var quantity, price any
	if t.QuantityKg > 0 {
		quantity = t.QuantityKg
	}
	if t.PricePerKgCents > 0 {
		price = t.PricePerKgCents
	}

	_, err := s.writer.ExecContext(ctx,
		`INSERT INTO transactions (id, client_id, date, kind, quantity_kg, price_per_kg_cents, amount_cents, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ClientID, t.Date.String(), string(t.Kind), quantity, price, t.AmountCents, nullIfEmpty(t.Note),
		t.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *SQLite) GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error) {
	row := s.reader.QueryRowContext(ctx,
		`SELECT id, client_id, date, kind, quantity_kg, price_per_kg_cents, amount_cents, note, created_at
		 FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ledger.ErrTransactionNotFound
	}
	return t, err
}

func (s *SQLite) ListTransactions(ctx context.Context, filter TxnFilter) ([]ledger.Transaction, error) {
	query := `SELECT id, client_id, date, kind, quantity_kg, price_per_kg_cents, amount_cents, note, created_at
		FROM transactions WHERE 1=1`
	args := []any{}

	if filter.ClientID != "" {
		query += ` AND client_id = ?`
		args = append(args, filter.ClientID)
	}

	query += ` ORDER BY date, created_at`

	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
		}
	}

	rows, err := s.reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []ledger.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

func scanTransaction(scan func(dest ...any) error) (*ledger.Transaction, error) {
	var t ledger.Transaction
	var date, createdAt string
	var kind string
	var quantity sql.NullFloat64
	var price sql.NullInt64
	var note sql.NullString

	err := scan(&t.ID, &t.ClientID, &date, &kind, &quantity, &price, &t.AmountCents, &note, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	t.Kind = ledger.Kind(kind)
	t.QuantityKg = quantity.Float64
	t.PricePerKgCents = price.Int64
	t.Note = note.String
	t.Date, _ = ledger.ParseDate(date)
	t.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &t, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
