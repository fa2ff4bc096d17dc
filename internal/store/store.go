// Package store persists clients, transactions, and preferences. Store is an
// interface so the server can run against SQLite in production and the
// in-memory implementation in tests.
package store

import (
	"context"

	"github.com/dfarias/cacauledger/internal/ledger"
)

type ClientFilter struct {
	// Search matches a substring of the full name or CPF digits.
	Search string
	Limit  int
	Offset int
}

type TxnFilter struct {
	ClientID string
	Limit    int
	Offset   int
}

type Store interface {
	// CreateClient assigns a fresh id and registration date, normalizes and
	// validates the record, then persists it.
	CreateClient(ctx context.Context, c *ledger.Client) error
	GetClient(ctx context.Context, id string) (*ledger.Client, error)
	ListClients(ctx context.Context, filter ClientFilter) ([]ledger.Client, error)
	// UpdateClient replaces the record with the same id. Updating an id that
	// does not exist is a silent no-op.
	UpdateClient(ctx context.Context, c *ledger.Client) error
	// DeleteClient removes the client and every transaction that references
	// it, atomically. No orphaned transactions remain.
	DeleteClient(ctx context.Context, id string) error

	// CreateTransaction assigns a fresh id, normalizes and validates the
	// entry, then persists it. The referenced client is not checked: that is
	// the caller's responsibility.
	CreateTransaction(ctx context.Context, t *ledger.Transaction) error
	GetTransaction(ctx context.Context, id string) (*ledger.Transaction, error)
	ListTransactions(ctx context.Context, filter TxnFilter) ([]ledger.Transaction, error)

	ListPreferences(ctx context.Context) ([]ledger.Preference, error)
	GetPreference(ctx context.Context, name string) (string, error)
	SetPreference(ctx context.Context, name, value string) error
	DeletePreference(ctx context.Context, name string) error

	Close() error
}
