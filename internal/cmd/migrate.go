package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long: `Applies all pending schema migrations in version order and ensures
the settings singleton row exists. Safe to run repeatedly; applied
versions are tracked in the schema_migrations table.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("📋 Applying migrations...")
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("✅ Database schema is up to date")
	return nil
}
