package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/spf13/cobra"
)

var (
	reportFrom   string
	reportTo     string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report [client-id]",
	Short: "Export a client's plain-text report",
	Long: `Generate the individual client report and write it to a file.
Without --output the server-suggested filename is used
(relatorio_<name>_<date>.txt in the current directory).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		var from, to ledger.Date
		if reportFrom != "" {
			d, err := ledger.ParseDate(reportFrom)
			if err != nil {
				return err
			}
			from = d
		}
		if reportTo != "" {
			d, err := ledger.ParseDate(reportTo)
			if err != nil {
				return err
			}
			to = d
		}

		body, filename, err := c.ExportReport(context.Background(), args[0], from, to)
		if err != nil {
			return err
		}

		out := reportOutput
		if out == "" {
			out = filename
		}
		if out == "" || out == "-" {
			fmt.Print(body)
			return nil
		}

		if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Period start (YYYY-MM-DD, default first transaction)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "Period end (YYYY-MM-DD, default today)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (\"-\" for stdout)")
	rootCmd.AddCommand(reportCmd)
}
