package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run connectivity and setup diagnostics",
	Long: `Verifies the deployment prerequisites: database connectivity,
applied migrations, the settings singleton row, and writable upload
directories.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Running diagnostics...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fmt.Println("✅ Configuration loaded")

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("❌ database connection failed: %w", err)
	}
	defer db.Close()
	fmt.Println("✅ Database reachable")

	pending, err := db.PendingMigrations()
	if err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if len(pending) > 0 {
		fmt.Printf("⚠️  Pending migrations: %v (run 'storefront migrate')\n", pending)
	} else {
		fmt.Println("✅ Schema is up to date")
	}

	settings := store.NewSettingsStore(db)
	if _, err := settings.Get(context.Background()); err != nil {
		fmt.Println("⚠️  Settings row missing (run 'storefront migrate')")
	} else {
		fmt.Println("✅ Settings row present")
	}

	for _, dir := range []string{cfg.Uploads.ImageDir, cfg.Uploads.DownloadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Printf("❌ Upload directory %s not writable: %v\n", dir, err)
			continue
		}
		fmt.Printf("✅ Upload directory %s ready\n", dir)
	}

	return nil
}
