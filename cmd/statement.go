package cmd

import (
	"context"
	"fmt"

	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/spf13/cobra"
)

var statementYear int

var statementCmd = &cobra.Command{
	Use:   "statement [client-id]",
	Short: "Show a client's running account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		st, err := c.GetStatement(context.Background(), args[0], statementYear)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("CONTA CORRENTE — %s\n", st.Client.FullName)
		fmt.Printf("CPF: %s  Telefone: %s\n", ledger.FormatCPF(st.Client.CPF), ledger.FormatPhone(st.Client.Phone))
		if st.Balance != nil {
			fmt.Printf("Saldo Atual: %s (%s)\n", ledger.FormatBalance(st.Balance.AmountCents, st.Balance.Side), st.Balance.Side.Label())
		} else {
			fmt.Println("Saldo Atual: sem transações")
		}
		if st.Year != 0 {
			fmt.Printf("Ano: %d\n", st.Year)
		}
		fmt.Println()

		if len(st.Lines) == 0 {
			fmt.Println("Nenhuma transação encontrada.")
			return nil
		}

		fmt.Printf("%-12s %-24s %12s %15s %18s\n", "DATA", "TIPO", "QTD (KG)", "VALOR", "SALDO")
		fmt.Printf("%-12s %-24s %12s %15s %18s\n", "----", "----", "--------", "-----", "-----")
		for _, l := range st.Lines {
			qty := "-"
			if l.QuantityKg > 0 {
				qty = ledger.FormatKg(l.QuantityKg)
			}
			running := l.RunningCents
			if running < 0 {
				running = -running
			}
			fmt.Printf("%-12s %-24s %12s %15s %18s\n",
				l.Date.BR(), l.Kind.Label(), qty,
				ledger.FormatSignedBRL(l.AmountCents),
				ledger.FormatBalance(running, l.RunningSide))
		}
		return nil
	},
}

func init() {
	statementCmd.Flags().IntVar(&statementYear, "year", 0, "Filter by year (0 = all)")
	rootCmd.AddCommand(statementCmd)
}
