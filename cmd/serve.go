package cmd

import (
	"os"

	"github.com/dfarias/cacauledger/internal/logger"
	"github.com/dfarias/cacauledger/internal/server"
	"github.com/dfarias/cacauledger/internal/store"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(flagDB)
		if err != nil {
			return err
		}
		defer st.Close()

		srv := server.New(st, serveAddr, logger.New())
		return srv.ListenAndServe()
	},
}

func init() {
	addr := os.Getenv("CACAULEDGER_ADDR")
	if addr == "" {
		addr = ":8877"
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", addr, "Listen address")
	rootCmd.AddCommand(serveCmd)
}
