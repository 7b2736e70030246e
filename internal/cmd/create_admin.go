package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clktech/storefront/internal/auth"
	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/store"
)

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Provision an admin account",
	Long: `Creates a back-office admin account. The password is bcrypt-hashed
before storage; there is no way to recover it, only to recreate the
account.`,
	RunE: runCreateAdmin,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "Admin username (required)")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	_ = createAdminCmd.MarkFlagRequired("username")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admins := store.NewAdminStore(db)
	admin, err := admins.Create(context.Background(), adminUsername, adminEmail, hash)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	fmt.Printf("✅ Admin %q created (id %d)\n", admin.Username, admin.ID)
	return nil
}
