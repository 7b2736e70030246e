package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP server",
	Long: `Start the HTTP server that provides:
- Public catalog, order and contact endpoints
- Admin panel API behind bearer-token authentication
- Static serving of uploaded images and download packages`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	fmt.Println("⚙️  Setting up server...")
	srv, err := server.NewServer(cfg, db)
	if err != nil {
		return fmt.Errorf("failed to set up server: %w", err)
	}

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
