package cmd

import (
	"fmt"
	"strings"

	"github.com/malakstore/souq/internal/config"
	"github.com/malakstore/souq/internal/database"
	"github.com/malakstore/souq/internal/store"
	"github.com/spf13/cobra"
)

var showNotifications int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect the stored snapshot",
	Long: `Loads the database snapshot and prints what it contains: catalog size,
orders per status and the latest broadcast notifications. Useful to verify
a save or seed actually landed.`,
	RunE: checkSnapshot,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVar(&showNotifications, "notifications", 5, "Number of recent notifications to show")
}

func checkSnapshot(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking stored snapshot...")

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
	if err := db.LoadSnapshot(st); err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	products := st.Products()
	offers := 0
	for _, p := range products {
		if p.Discount > 0 {
			offers++
		}
	}
	fmt.Printf("\n📦 Catalog: %d products (%d on offer)\n", len(products), offers)

	orders := st.Orders()
	byStatus := make(map[string]int)
	var revenue float64
	for _, o := range orders {
		byStatus[string(o.Status)]++
		revenue += o.Total
	}
	fmt.Printf("🛒 Orders: %d total, %.2f revenue\n", len(orders), revenue)
	for status, count := range byStatus {
		fmt.Printf("   • %s: %d\n", status, count)
	}

	admins := st.Admins()
	fmt.Printf("👥 Admins: %d\n", len(admins))
	for _, a := range admins {
		fmt.Printf("   • %s <%s> [%s]\n", a.Name, a.Email, a.Status)
	}

	notifications := st.Notifications()
	fmt.Printf("🔔 Notifications: %d\n", len(notifications))
	fmt.Println(strings.Repeat("─", 60))
	for i, n := range notifications {
		if i >= showNotifications {
			fmt.Printf("   … and %d more\n", len(notifications)-showNotifications)
			break
		}
		fmt.Printf("   %s  %s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Message)
	}

	return nil
}
