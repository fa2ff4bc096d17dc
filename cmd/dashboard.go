package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the cross-client summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		d, err := c.GetDashboard(context.Background())
		if err != nil {
			return err
		}

		printDashboard(d)
		return nil
	},
}

func printDashboard(d *ledger.Dashboard) {
	w := 64
	fmt.Println()
	fmt.Println(center("DASHBOARD GERENCIAL", w))
	fmt.Println(center(strings.Repeat("=", 20), w))
	fmt.Println()

	fmt.Printf("  %-28s %d\n", "Total de Clientes:", d.TotalClients)
	fmt.Printf("  %-28s %s kg\n", "Cacau em Estoque:", ledger.FormatKg(d.TotalIntakeKg))
	fmt.Printf("  %-28s %s (%d clientes)\n", "Saldos Devedores:", ledger.FormatBRL(d.TotalDebtorCents), len(d.Debtors))
	fmt.Printf("  %-28s %s (%d clientes)\n", "Saldos Credores:", ledger.FormatBRL(d.TotalCreditorCents), len(d.Creditors))
	fmt.Printf("  %-28s %s\n", "Saldo Líquido:", ledger.FormatBalance(d.NetCents, d.NetSide))
	fmt.Println()

	if len(d.TopSuppliers) > 0 {
		fmt.Println("  TOP FORNECEDORES DE CACAU")
		fmt.Printf("  %s\n", strings.Repeat("─", w-4))
		for i, s := range d.TopSuppliers {
			name := s.Client.FullName
			if len(name) > 34 {
				name = name[:32] + ".."
			}
			fmt.Printf("  %d. %-36s %12s kg\n", i+1, name, ledger.FormatKg(s.IntakeKg))
		}
		fmt.Println()
	}

	printPositions("CLIENTES DEVEDORES", d.Debtors, w)
	printPositions("CLIENTES CREDORES", d.Creditors, w)
}

func printPositions(title string, positions []ledger.ClientBalance, w int) {
	if len(positions) == 0 {
		return
	}
	fmt.Printf("  %s\n", title)
	fmt.Printf("  %s\n", strings.Repeat("─", w-4))
	for _, p := range positions {
		name := p.Client.FullName
		if len(name) > 34 {
			name = name[:32] + ".."
		}
		fmt.Printf("  %-38s %18s\n", name, ledger.FormatBalance(p.AmountCents, p.Side))
	}
	fmt.Println()
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	pad := (w - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
