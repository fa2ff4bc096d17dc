package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagServer string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "cacauledger",
	Short: "Client registry and running-account ledger for cocoa trading",
	Long:  "Manages cocoa suppliers and their running account of intakes, sales, advances and payments, backed by SQLite.",
}

func init() {
	// .env is optional; real env vars win over flag defaults.
	godotenv.Load()

	server := os.Getenv("CACAULEDGER_SERVER")
	if server == "" {
		server = "http://localhost:8877"
	}
	db := os.Getenv("CACAULEDGER_DB")
	if db == "" {
		db = "cacauledger.db"
	}

	rootCmd.PersistentFlags().StringVar(&flagServer, "server", server, "Server address")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", db, "SQLite database path")
}

func Execute() error {
	return rootCmd.Execute()
}
