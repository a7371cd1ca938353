package cmd

import (
	"fmt"

	"github.com/malakstore/souq/internal/config"
	"github.com/malakstore/souq/internal/database"
	"github.com/spf13/cobra"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the database snapshot schema",
	Long: `Creates the snapshot tables (products, orders, order_items, admins,
notifications) used by explicit saves and --restore.

The server runs fine without a database; set one up only when you want
store state to survive restarts.`,
	RunE: setupSchema,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing snapshot tables before creating")
}

func setupSchema(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up snapshot database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing snapshot tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating snapshot schema...")
	if err := db.SetupSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Println("✅ Snapshot database ready!")
	return nil
}
