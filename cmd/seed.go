package cmd

import (
	"context"
	"fmt"

	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/dfarias/cacauledger/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo clients and transactions into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(flagDB)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		clients := []struct {
			name, cpf, phone, registered string
		}{
			{"João da Silva Santos", "123.456.789-00", "(75) 98765-4321", "2024-01-15"},
			{"Maria Oliveira Costa", "987.654.321-00", "(75) 99876-5432", "2024-02-20"},
			{"Pedro Almeida Rocha", "456.789.123-00", "(75) 98888-7777", "2024-03-10"},
		}

		ids := make([]string, len(clients))
		for i, c := range clients {
			registered, err := ledger.ParseDate(c.registered)
			if err != nil {
				return err
			}
			cl := &ledger.Client{
				FullName:     c.name,
				CPF:          c.cpf,
				Phone:        c.phone,
				RegisteredAt: registered,
			}
			if err := st.CreateClient(ctx, cl); err != nil {
				return err
			}
			ids[i] = cl.ID
			fmt.Printf("Client %s (%s)\n", cl.FullName, cl.ID)
		}

		txns := []struct {
			client int
			date   string
			kind   ledger.Kind
			qty    float64
			price  int64
			amount int64
			note   string
		}{
			{0, "2025-01-10", ledger.KindCocoaIntake, 150, 1250, 0, ""},
			{0, "2025-02-15", ledger.KindAdvance, 0, 0, 50000, "Adiantamento solicitado pelo cliente"},
			{0, "2025-03-20", ledger.KindCocoaIntake, 200, 1300, 0, ""},
			{0, "2025-04-05", ledger.KindPayment, 0, 0, 100000, "Pagamento parcial"},
			{1, "2025-01-20", ledger.KindCocoaIntake, 180, 1280, 0, ""},
			{1, "2025-03-15", ledger.KindCocoaIntake, 220, 1320, 0, ""},
			{2, "2025-02-10", ledger.KindCocoaIntake, 100, 1200, 0, ""},
			{2, "2025-03-25", ledger.KindAdvance, 0, 0, 80000, ""},
		}

		for _, t := range txns {
			date, err := ledger.ParseDate(t.date)
			if err != nil {
				return err
			}
			txn := &ledger.Transaction{
				ClientID:        ids[t.client],
				Date:            date,
				Kind:            t.kind,
				QuantityKg:      t.qty,
				PricePerKgCents: t.price,
				AmountCents:     t.amount,
				Note:            t.note,
			}
			if err := st.CreateTransaction(ctx, txn); err != nil {
				return err
			}
		}

		fmt.Printf("Seeded %d clients and %d transactions into %s\n", len(clients), len(txns), flagDB)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
