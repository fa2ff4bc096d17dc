package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/google/uuid"
)

// Memory is an in-process Store with the same semantics as the SQLite
// implementation. It backs tests and throwaway demos.
type Memory struct {
	mu      sync.RWMutex
	clients map[string]ledger.Client
	txns    map[string]ledger.Transaction
	prefs   map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		clients: make(map[string]ledger.Client),
		txns:    make(map[string]ledger.Transaction),
		prefs:   make(map[string]string),
	}
}

func (m *Memory) CreateClient(_ context.Context, c *ledger.Client) error {
	if c.ID == "" {
		c.ID = uuid.Must(uuid.NewV7()).String()
	}
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = ledger.Today()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[c.ID] = *c
	return nil
}

func (m *Memory) GetClient(_ context.Context, id string) (*ledger.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.clients[id]
	if !ok {
		return nil, ledger.ErrClientNotFound
	}
	return &c, nil
}

func (m *Memory) ListClients(_ context.Context, filter ClientFilter) ([]ledger.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var clients []ledger.Client
	needle := strings.ToLower(filter.Search)
	for _, c := range m.clients {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.FullName), needle) &&
			!strings.Contains(c.CPF, filter.Search) {
			continue
		}
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].FullName < clients[j].FullName
	})
	return paginate(clients, filter.Limit, filter.Offset), nil
}

func (m *Memory) UpdateClient(_ context.Context, c *ledger.Client) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.clients[c.ID]
	if !ok {
		// same silent no-op as UPDATE affecting zero rows
		return nil
	}
	existing.FullName = c.FullName
	existing.CPF = c.CPF
	existing.Phone = c.Phone
	m.clients[c.ID] = existing
	return nil
}

func (m *Memory) DeleteClient(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[id]; !ok {
		return ledger.ErrClientNotFound
	}
	delete(m.clients, id)
	for tid, t := range m.txns {
		if t.ClientID == id {
			delete(m.txns, tid)
		}
	}
	return nil
}

func (m *Memory) CreateTransaction(_ context.Context, t *ledger.Transaction) error {
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

	m.mu.Lock()
	defer m.mu.Unlock()
	m.txns[t.ID] = *t
	return nil
}

func (m *Memory) GetTransaction(_ context.Context, id string) (*ledger.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.txns[id]
	if !ok {
		return nil, ledger.ErrTransactionNotFound
	}
	return &t, nil
}

func (m *Memory) ListTransactions(_ context.Context, filter TxnFilter) ([]ledger.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var txns []ledger.Transaction
	for _, t := range m.txns {
		if filter.ClientID != "" && t.ClientID != filter.ClientID {
			continue
		}
		txns = append(txns, t)
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].CreatedAt.Before(txns[j].CreatedAt)
	})
	return paginate(txns, filter.Limit, filter.Offset), nil
}

func (m *Memory) ListPreferences(_ context.Context) ([]ledger.Preference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var prefs []ledger.Preference
	for name, value := range m.prefs {
		prefs = append(prefs, ledger.Preference{Name: name, Value: value})
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].Name < prefs[j].Name })
	return prefs, nil
}

func (m *Memory) GetPreference(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefs[name], nil
}

func (m *Memory) SetPreference(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[name] = value
	return nil
}

func (m *Memory) DeletePreference(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, name)
	return nil
}

func (m *Memory) Close() error { return nil }

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
