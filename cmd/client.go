package cmd

import (
	"context"
	"fmt"

	"github.com/dfarias/cacauledger/internal/client"
	"github.com/dfarias/cacauledger/internal/ledger"
	"github.com/spf13/cobra"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

// client create
var (
	clientCreateName  string
	clientCreateCPF   string
	clientCreatePhone string
)

var clientCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new client",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		created, err := c.CreateClient(context.Background(), &ledger.Client{
			FullName: clientCreateName,
			CPF:      clientCreateCPF,
			Phone:    clientCreatePhone,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Client registered: %s\n", created.ID)
		fmt.Printf("Name:  %s\n", created.FullName)
		fmt.Printf("CPF:   %s\n", ledger.FormatCPF(created.CPF))
		fmt.Printf("Phone: %s\n", ledger.FormatPhone(created.Phone))
		return nil
	},
}

// client list
var clientListSearch string

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		clients, err := c.ListClients(context.Background(), clientListSearch)
		if err != nil {
			return err
		}

		if len(clients) == 0 {
			fmt.Println("No clients found.")
			return nil
		}

		fmt.Printf("%-38s %-30s %-15s %s\n", "ID", "NAME", "CPF", "PHONE")
		fmt.Printf("%-38s %-30s %-15s %s\n", "----", "----", "----", "-----")
		for _, cl := range clients {
			name := cl.FullName
			if len(name) > 28 {
				name = name[:28] + ".."
			}
			fmt.Printf("%-38s %-30s %-15s %s\n", cl.ID, name, ledger.FormatCPF(cl.CPF), ledger.FormatPhone(cl.Phone))
		}
		return nil
	},
}

// client get
var clientGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get client details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		cl, err := c.GetClient(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:         %s\n", cl.ID)
		fmt.Printf("Name:       %s\n", cl.FullName)
		fmt.Printf("CPF:        %s\n", ledger.FormatCPF(cl.CPF))
		fmt.Printf("Phone:      %s\n", ledger.FormatPhone(cl.Phone))
		fmt.Printf("Registered: %s\n", cl.RegisteredAt.BR())
		return nil
	},
}

// client update
var (
	clientUpdateName  string
	clientUpdateCPF   string
	clientUpdatePhone string
)

var clientUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a client's registration data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		existing, err := c.GetClient(context.Background(), args[0])
		if err != nil {
			return err
		}
		if clientUpdateName != "" {
			existing.FullName = clientUpdateName
		}
		if clientUpdateCPF != "" {
			existing.CPF = clientUpdateCPF
		}
		if clientUpdatePhone != "" {
			existing.Phone = clientUpdatePhone
		}

		updated, err := c.UpdateClient(context.Background(), existing)
		if err != nil {
			return err
		}
		fmt.Printf("Client %s updated\n", updated.ID)
		return nil
	},
}

// client delete
var clientDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a client and all of its transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(flagServer)

		if err := c.DeleteClient(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Client %s deleted (transactions included)\n", args[0])
		return nil
	},
}

func init() {
	clientCreateCmd.Flags().StringVar(&clientCreateName, "name", "", "Full name")
	clientCreateCmd.Flags().StringVar(&clientCreateCPF, "cpf", "", "CPF (11 digits, punctuation ignored)")
	clientCreateCmd.Flags().StringVar(&clientCreatePhone, "phone", "", "Phone number")
	clientCreateCmd.MarkFlagRequired("name")
	clientCreateCmd.MarkFlagRequired("cpf")
	clientCreateCmd.MarkFlagRequired("phone")

	clientListCmd.Flags().StringVar(&clientListSearch, "search", "", "Filter by name or CPF")

	clientUpdateCmd.Flags().StringVar(&clientUpdateName, "name", "", "Full name")
	clientUpdateCmd.Flags().StringVar(&clientUpdateCPF, "cpf", "", "CPF")
	clientUpdateCmd.Flags().StringVar(&clientUpdatePhone, "phone", "", "Phone number")

	clientCmd.AddCommand(clientCreateCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)

	rootCmd.AddCommand(clientCmd)
}
