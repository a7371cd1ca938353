package cmd

import (
	"fmt"

	"github.com/malakstore/souq/internal/auth"
	"github.com/malakstore/souq/internal/config"
	"github.com/malakstore/souq/internal/database"
	"github.com/malakstore/souq/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a sample store snapshot to the database",
	Long: `Builds a sample store (catalog, welcome notifications and the owner
account) and saves it as a snapshot. Start the server with --restore to
serve it.`,
	RunE: seedSnapshot,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedSnapshot(cmd *cobra.Command, args []string) error {
	fmt.Println("🌱 Seeding sample store...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	st := store.New()
	st.Seed()

	fmt.Println("👤 Creating owner account...")
	if _, err := auth.New(st, cfg.Store.OwnerName, cfg.Store.OwnerEmail, cfg.Store.OwnerPassword); err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}

	fmt.Println("💾 Saving snapshot...")
	if err := db.SaveSnapshot(st); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	fmt.Printf("✅ Sample store saved: %d products, owner %s\n", len(st.Products()), cfg.Store.OwnerEmail)
	return nil
}
