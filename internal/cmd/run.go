package cmd

import (
	"fmt"

	"github.com/malakstore/souq/internal/assistant"
	"github.com/malakstore/souq/internal/auth"
	"github.com/malakstore/souq/internal/catalog"
	"github.com/malakstore/souq/internal/checkout"
	"github.com/malakstore/souq/internal/config"
	"github.com/malakstore/souq/internal/database"
	"github.com/malakstore/souq/internal/llm"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/server"
	"github.com/malakstore/souq/internal/session"
	"github.com/malakstore/souq/internal/store"
	"github.com/spf13/cobra"
)

var restore bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Souq store server",
	Long: `Start the Souq server which provides:
- REST API for the storefront (catalog, cart, orders, chat)
- Staff API for catalog, order and admin management
- Broadcast notification feed`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&restore, "restore", false, "Restore store state from the database snapshot before serving")
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🛒 Souq Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st := store.New()

	var db *database.DB
	if cfg.DB.DSN != "" {
		fmt.Println("🔌 Connecting to database...")
		db, err = database.NewConnection(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if restore {
			fmt.Println("📦 Restoring store snapshot...")
			if err := db.LoadSnapshot(st); err != nil {
				return fmt.Errorf("failed to restore snapshot: %w", err)
			}
		}
	} else if restore {
		return fmt.Errorf("--restore requires db.dsn to be configured")
	}

	if cfg.Store.Seed {
		fmt.Println("🌱 Seeding sample catalog...")
		st.Seed()
	}

	notifier := notify.New(st)
	authSvc, err := auth.New(st, cfg.Store.OwnerName, cfg.Store.OwnerEmail, cfg.Store.OwnerPassword)
	if err != nil {
		return fmt.Errorf("failed to set up auth: %w", err)
	}

	fmt.Printf("🤖 Using %s text generator...\n", cfg.LLM.Generator.Provider)
	generator, err := llm.NewGenerator(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(server.Deps{
		Store:     st,
		Sessions:  session.NewManager(),
		Profiles:  session.NewProfileStore(cfg.Store.ProfilePath),
		Catalog:   catalog.New(st, notifier),
		Checkout:  checkout.New(st, notifier),
		Auth:      authSvc,
		Notifier:  notifier,
		Assistant: assistant.New(generator),
		DB:        db,
	})

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
