package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "portal-pedidos",
	Short: "Order lifecycle and installment ledger service",
	Long: `portal-pedidos runs the order lifecycle and installment ledger.

Configuration comes from the environment (a .env file is loaded when present).
STORAGE_DRIVER selects dynamodb, postgres or memory.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}
