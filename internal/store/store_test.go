package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dfarias/cacauledger/internal/ledger"
)

// The suite runs against both implementations: they must agree on semantics.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		s := NewMemory()
		defer s.Close()
		fn(t, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		defer s.Close()
		fn(t, s)
	})
}

func newClient(name string) *ledger.Client {
	return &ledger.Client{
		FullName: name,
		CPF:      "123.456.789-00",
		Phone:    "(75) 98765-4321",
	}
}

func newIntake(clientID, day string, qty float64, price int64) *ledger.Transaction {
	d, err := ledger.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return &ledger.Transaction{
		ClientID:        clientID,
		Date:            d,
		Kind:            ledger.KindCocoaIntake,
		QuantityKg:      qty,
		PricePerKgCents: price,
	}
}

func TestCreateAndGetClient(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := newClient("João da Silva Santos")
		if err := s.CreateClient(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID == "" {
			t.Fatal("create did not assign an id")
		}
		if c.RegisteredAt.IsZero() {
			t.Error("create did not default the registration date")
		}
		if c.CPF != "12345678900" {
			t.Errorf("CPF not normalized to digits: %q", c.CPF)
		}

		got, err := s.GetClient(ctx, c.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.FullName != "João da Silva Santos" || got.CPF != "12345678900" || got.Phone != "75987654321" {
			t.Errorf("got %+v", got)
		}
	})
}

func TestCreateClientValidates(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		err := s.CreateClient(ctx, &ledger.Client{FullName: "", CPF: "12345678900", Phone: "7598765432"})
		if !errors.Is(err, ledger.ErrEmptyName) {
			t.Errorf("empty name: got %v", err)
		}

		err = s.CreateClient(ctx, &ledger.Client{FullName: "X", CPF: "123", Phone: "7598765432"})
		if !errors.Is(err, ledger.ErrInvalidCPF) {
			t.Errorf("bad cpf: got %v", err)
		}

		err = s.CreateClient(ctx, &ledger.Client{FullName: "X", CPF: "12345678900", Phone: "123"})
		if !errors.Is(err, ledger.ErrInvalidPhone) {
			t.Errorf("bad phone: got %v", err)
		}
	})
}

func TestGetClientNotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		_, err := s.GetClient(context.Background(), "no-such-id")
		if !errors.Is(err, ledger.ErrClientNotFound) {
			t.Errorf("got %v, want ErrClientNotFound", err)
		}
	})
}

func TestListClientsSearchAndOrder(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		for _, name := range []string{"Pedro Almeida Rocha", "João da Silva Santos", "Maria Oliveira Costa"} {
			c := newClient(name)
			if err := s.CreateClient(ctx, c); err != nil {
				t.Fatal(err)
			}
		}

		all, err := s.ListClients(ctx, ClientFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 3 {
			t.Fatalf("got %d clients, want 3", len(all))
		}
		if all[0].FullName != "João da Silva Santos" || all[2].FullName != "Pedro Almeida Rocha" {
			t.Errorf("not sorted by name: %s .. %s", all[0].FullName, all[2].FullName)
		}

		hits, err := s.ListClients(ctx, ClientFilter{Search: "Maria"})
		if err != nil {
			t.Fatal(err)
		}
		if len(hits) != 1 || hits[0].FullName != "Maria Oliveira Costa" {
			t.Errorf("search by name: %+v", hits)
		}

		limited, err := s.ListClients(ctx, ClientFilter{Limit: 2})
		if err != nil {
			t.Fatal(err)
		}
		if len(limited) != 2 {
			t.Errorf("limit: got %d, want 2", len(limited))
		}
	})
}

func TestUpdateClient(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := newClient("João da Silva Santos")
		if err := s.CreateClient(ctx, c); err != nil {
			t.Fatal(err)
		}

		c.Phone = "(75) 91111-2222"
		if err := s.UpdateClient(ctx, c); err != nil {
			t.Fatal(err)
		}

		got, err := s.GetClient(ctx, c.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Phone != "75911112222" {
			t.Errorf("phone = %q", got.Phone)
		}
	})
}

func TestUpdateClientMissingIsNoOp(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		ghost := newClient("Fantasma")
		ghost.ID = "no-such-id"
		if err := s.UpdateClient(ctx, ghost); err != nil {
			t.Errorf("update of missing id should be a no-op, got %v", err)
		}

		clients, err := s.ListClients(ctx, ClientFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(clients) != 0 {
			t.Errorf("no-op update created a record: %+v", clients)
		}
	})
}

func TestDeleteClientCascades(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		victim := newClient("João da Silva Santos")
		if err := s.CreateClient(ctx, victim); err != nil {
			t.Fatal(err)
		}
		bystander := newClient("Maria Oliveira Costa")
		if err := s.CreateClient(ctx, bystander); err != nil {
			t.Fatal(err)
		}

		for _, day := range []string{"2025-01-10", "2025-02-15"} {
			if err := s.CreateTransaction(ctx, newIntake(victim.ID, day, 100, 1200)); err != nil {
				t.Fatal(err)
			}
		}
		kept := newIntake(bystander.ID, "2025-03-01", 50, 1300)
		if err := s.CreateTransaction(ctx, kept); err != nil {
			t.Fatal(err)
		}

		if err := s.DeleteClient(ctx, victim.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		if _, err := s.GetClient(ctx, victim.ID); !errors.Is(err, ledger.ErrClientNotFound) {
			t.Errorf("client still present: %v", err)
		}

		orphans, err := s.ListTransactions(ctx, TxnFilter{ClientID: victim.ID})
		if err != nil {
			t.Fatal(err)
		}
		if len(orphans) != 0 {
			t.Errorf("cascade left %d orphaned transactions", len(orphans))
		}

		// Unrelated records survive untouched.
		remaining, err := s.ListTransactions(ctx, TxnFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(remaining) != 1 || remaining[0].ID != kept.ID {
			t.Errorf("bystander transactions affected: %+v", remaining)
		}
	})
}

func TestDeleteClientNotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		err := s.DeleteClient(context.Background(), "no-such-id")
		if !errors.Is(err, ledger.ErrClientNotFound) {
			t.Errorf("got %v, want ErrClientNotFound", err)
		}
	})
}

func TestCreateTransactionNormalizes(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		c := newClient("João da Silva Santos")
		if err := s.CreateClient(ctx, c); err != nil {
			t.Fatal(err)
		}

		txn := newIntake(c.ID, "2025-01-10", 150, 1250)
		if err := s.CreateTransaction(ctx, txn); err != nil {
			t.Fatal(err)
		}
		if txn.ID == "" {
			t.Fatal("create did not assign an id")
		}
		if txn.AmountCents != 187500 {
			t.Errorf("intake amount = %d, want 187500", txn.AmountCents)
		}

		d, _ := ledger.ParseDate("2025-02-15")
		adv := &ledger.Transaction{
			ClientID:    c.ID,
			Date:        d,
			Kind:        ledger.KindAdvance,
			AmountCents: 50000,
			Note:        "Adiantamento solicitado pelo cliente",
		}
		if err := s.CreateTransaction(ctx, adv); err != nil {
			t.Fatal(err)
		}
		if adv.AmountCents != -50000 {
			t.Errorf("advance amount = %d, want -50000", adv.AmountCents)
		}

		got, err := s.GetTransaction(ctx, adv.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.AmountCents != -50000 || got.Note != "Adiantamento solicitado pelo cliente" {
			t.Errorf("round trip: %+v", got)
		}
		if got.Kind != ledger.KindAdvance {
			t.Errorf("kind = %s", got.Kind)
		}
	})
}

func TestCreateTransactionValidates(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		d, _ := ledger.ParseDate("2025-01-10")

		err := s.CreateTransaction(ctx, &ledger.Transaction{
			Date: d, Kind: ledger.KindProductSale, AmountCents: 100,
		})
		if !errors.Is(err, ledger.ErrMissingClientID) {
			t.Errorf("missing client: got %v", err)
		}

		err = s.CreateTransaction(ctx, &ledger.Transaction{
			ClientID: "c1", Kind: ledger.KindProductSale, AmountCents: 100,
		})
		if !errors.Is(err, ledger.ErrMissingDate) {
			t.Errorf("missing date: got %v", err)
		}

		err = s.CreateTransaction(ctx, &ledger.Transaction{
			ClientID: "c1", Date: d, Kind: "saque", AmountCents: 100,
		})
		if !errors.Is(err, ledger.ErrInvalidKind) {
			t.Errorf("bad kind: got %v", err)
		}
	})
}

func TestGetTransactionNotFound(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		_, err := s.GetTransaction(context.Background(), "no-such-id")
		if !errors.Is(err, ledger.ErrTransactionNotFound) {
			t.Errorf("got %v, want ErrTransactionNotFound", err)
		}
	})
}

func TestListTransactionsOrderAndFilter(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		a := newClient("João da Silva Santos")
		if err := s.CreateClient(ctx, a); err != nil {
			t.Fatal(err)
		}
		b := newClient("Maria Oliveira Costa")
		if err := s.CreateClient(ctx, b); err != nil {
			t.Fatal(err)
		}

		// Inserted out of date order on purpose.
		for _, day := range []string{"2025-03-20", "2025-01-10"} {
			if err := s.CreateTransaction(ctx, newIntake(a.ID, day, 100, 1200)); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.CreateTransaction(ctx, newIntake(b.ID, "2025-02-01", 50, 1300)); err != nil {
			t.Fatal(err)
		}

		all, err := s.ListTransactions(ctx, TxnFilter{})
		if err != nil {
			t.Fatal(err)
		}
		if len(all) != 3 {
			t.Fatalf("got %d transactions, want 3", len(all))
		}
		for i := 1; i < len(all); i++ {
			if all[i].Date.Before(all[i-1].Date) {
				t.Errorf("not in ascending date order: %s after %s", all[i].Date, all[i-1].Date)
			}
		}

		mine, err := s.ListTransactions(ctx, TxnFilter{ClientID: a.ID})
		if err != nil {
			t.Fatal(err)
		}
		if len(mine) != 2 {
			t.Errorf("client filter: got %d, want 2", len(mine))
		}
	})
}

func TestPreferences(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		ctx := context.Background()

		// Missing preference reads as empty without an error.
		v, err := s.GetPreference(ctx, ledger.PrefCompanyName)
		if err != nil || v != "" {
			t.Errorf("unset preference: %q, %v", v, err)
		}

		if err := s.SetPreference(ctx, ledger.PrefCompanyName, "Cacau do Sul Ltda"); err != nil {
			t.Fatal(err)
		}
		if err := s.SetPreference(ctx, ledger.PrefDefaultPricePerKg, "12.50"); err != nil {
			t.Fatal(err)
		}
		// Upsert overwrites.
		if err := s.SetPreference(ctx, ledger.PrefDefaultPricePerKg, "13.00"); err != nil {
			t.Fatal(err)
		}

		v, err = s.GetPreference(ctx, ledger.PrefDefaultPricePerKg)
		if err != nil {
			t.Fatal(err)
		}
		if v != "13.00" {
			t.Errorf("value = %q, want 13.00", v)
		}

		prefs, err := s.ListPreferences(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(prefs) != 2 {
			t.Fatalf("got %d preferences, want 2", len(prefs))
		}
		if prefs[0].Name != ledger.PrefCompanyName {
			t.Errorf("not sorted by name: %+v", prefs)
		}

		if err := s.DeletePreference(ctx, ledger.PrefCompanyName); err != nil {
			t.Fatal(err)
		}
		v, err = s.GetPreference(ctx, ledger.PrefCompanyName)
		if err != nil || v != "" {
			t.Errorf("deleted preference: %q, %v", v, err)
		}
	})
}
