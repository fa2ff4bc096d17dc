package cmd

import (
	"context"
	"fmt"

	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/spf13/cobra"
)

var transactionCmd = &cobra.Command{
	Use:     "transaction",
	Aliases: []string{"txn"},
	Short:   "Manage ledger transactions",
}

// transaction add
var (
	txnClientID string
	txnDate     string
	txnKind     string
	txnQuantity float64
	txnPrice    string
	txnAmount   string
	txnNote     string
)

var transactionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction on a client's account",
	Long: `Record a ledger movement. Kinds: entrada_cacau, venda_produto, adiantamento, pagamento.
For entrada_cacau pass --qty and --price; the total is quantity × price.
Advances and payments are stored as negative amounts regardless of the sign given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		txn := &ledger.Transaction{
			ClientID:   txnClientID,
			Kind:       ledger.Kind(txnKind),
			QuantityKg: txnQuantity,
			Note:       txnNote,
		}

		if txnDate != "" {
			d, err := ledger.ParseDate(txnDate)
			if err != nil {
				return err
			}
			txn.Date = d
		} else {
			txn.Date = ledger.Today()
		}

		if txnPrice != "" {
			cents, err := ledger.ParseBRL(txnPrice)
			if err != nil {
				return err
			}
			txn.PricePerKgCents = cents
		}
		if txnAmount != "" {
			cents, err := ledger.ParseBRL(txnAmount)
			if err != nil {
				return err
			}
			txn.AmountCents = cents
		}

		created, err := c.CreateTransaction(context.Background(), txn)
		if err != nil {
			return err
		}

		fmt.Printf("Transaction recorded: %s\n", created.ID)
		fmt.Printf("Date:   %s\n", created.Date.BR())
		fmt.Printf("Kind:   %s\n", created.Kind.Label())
		if created.QuantityKg > 0 {
			fmt.Printf("Qty:    %s kg\n", ledger.FormatKg(created.QuantityKg))
		}
		if created.PricePerKgCents > 0 {
			fmt.Printf("Price:  %s/kg\n", ledger.FormatBRL(created.PricePerKgCents))
		}
		fmt.Printf("Amount: %s\n", ledger.FormatSignedBRL(created.AmountCents))
		return nil
	},
}

// transaction list
var txnListClientID string

var transactionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		txns, err := c.ListTransactions(context.Background(), txnListClientID)
		if err != nil {
			return err
		}

		if len(txns) == 0 {
			fmt.Println("No transactions found.")
			return nil
		}

		fmt.Printf("%-38s %-12s %-24s %12s %15s\n", "ID", "DATE", "KIND", "QTY (KG)", "AMOUNT")
		fmt.Printf("%-38s %-12s %-24s %12s %15s\n", "----", "----", "----", "--------", "------")
		for _, t := range txns {
			qty := "-"
			if t.QuantityKg > 0 {
				qty = ledger.FormatKg(t.QuantityKg)
			}
			fmt.Printf("%-38s %-12s %-24s %12s %15s\n",
				t.ID, t.Date.BR(), t.Kind.Label(), qty, ledger.FormatSignedBRL(t.AmountCents))
		}
		return nil
	},
}

func init() {
	transactionAddCmd.Flags().StringVar(&txnClientID, "client", "", "Client ID")
	transactionAddCmd.Flags().StringVar(&txnDate, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	transactionAddCmd.Flags().StringVar(&txnKind, "kind", string(ledger.KindCocoaIntake), "Transaction kind")
	transactionAddCmd.Flags().Float64Var(&txnQuantity, "qty", 0, "Cocoa quantity in kg (entrada_cacau)")
	transactionAddCmd.Flags().StringVar(&txnPrice, "price", "", "Price per kg, e.g. 12.50 (entrada_cacau)")
	transactionAddCmd.Flags().StringVar(&txnAmount, "amount", "", "Total amount, e.g. 500.00")
	transactionAddCmd.Flags().StringVar(&txnNote, "note", "", "Optional note")
	transactionAddCmd.MarkFlagRequired("client")

	transactionListCmd.Flags().StringVar(&txnListClientID, "client", "", "Filter by client ID")

	transactionCmd.AddCommand(transactionAddCmd)
	transactionCmd.AddCommand(transactionListCmd)

	rootCmd.AddCommand(transactionCmd)
}
