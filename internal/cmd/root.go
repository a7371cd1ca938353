package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "souq",
	Short: "Souq - single-store retail ordering service",
	Long: `Souq runs a small retail store: customers browse the catalog, build a
cart and place orders, while approved staff manage products, move orders
through delivery and broadcast offers.

The server keeps its state in memory; point it at a MySQL database to
snapshot and restore the store across restarts.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
