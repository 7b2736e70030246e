package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "CLK Tech storefront and admin back-office",
	Long: `Storefront serves the public product catalog, bank-transfer order
placement and contact form, plus the admin panel API for managing
products, orders, contacts and site settings.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
