package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/auth"
	"github.com/clktech/storefront/internal/config"
	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/store"
)

// Pinger is the health probe the server runs against its backing store.
type Pinger interface {
	HealthCheck() error
}

// Stores bundles the storage accessors the route layer depends on.
type Stores struct {
	Products store.ProductStore
	Orders   store.OrderStore
	Contacts store.ContactStore
	Settings store.SettingsStore
	Admins   store.AdminStore
	Health   Pinger
}

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	tokens *auth.TokenIssuer
	st     Stores
}

// NewServer wires the route layer to a live database connection.
func NewServer(cfg *config.Config, db *database.DB) (*Server, error) {
	return NewServerWithStores(cfg, Stores{
		Products: store.NewProductStore(db),
		Orders:   store.NewOrderStore(db),
		Contacts: store.NewContactStore(db),
		Settings: store.NewSettingsStore(db),
		Admins:   store.NewAdminStore(db),
		Health:   db,
	})
}

// NewServerWithStores creates a server instance over explicit accessors.
func NewServerWithStores(cfg *config.Config, st Stores) (*Server, error) {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Upload directories are part of startup, not request handling.
	for _, dir := range []string{cfg.Uploads.ImageDir, cfg.Uploads.DownloadDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	server := &Server{
		router: gin.Default(),
		cfg:    cfg,
		tokens: auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		st:     st,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = 8 << 20

	// Uploaded assets are served straight from disk.
	s.router.Static("/api/uploads", s.cfg.Uploads.ImageDir)
	s.router.Static("/downloads", s.cfg.Uploads.DownloadDir)

	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/products", s.listProducts)
		api.GET("/products/:identifier", s.getProduct)
		api.POST("/orders", s.createOrder)
		api.POST("/contacts", s.createContact)
		api.GET("/settings", s.publicSettings)
		api.POST("/log-client-error", s.logClientError)
	}

	admin := api.Group("/admin")
	admin.POST("/login", s.login)

	protected := admin.Group("", s.requireAdmin)
	{
		protected.GET("/orders", s.listOrders)
		protected.PATCH("/orders/:id", s.updateOrder)
		protected.DELETE("/orders/:id", s.deleteOrder)

		protected.GET("/contacts", s.listContacts)
		protected.DELETE("/contacts/:id", s.deleteContact)

		protected.POST("/products", s.limitImageBody, s.createProduct)
		protected.PATCH("/products/:id", s.limitImageBody, s.updateProduct)
		protected.DELETE("/products/:id", s.deleteProduct)
		protected.POST("/products/upload-image", s.limitImageBody, s.uploadImage)

		protected.POST("/upload-download", s.limitArchiveBody, s.uploadArchive)

		protected.GET("/stats", s.stats)
		protected.GET("/settings", s.adminSettings)
		protected.PATCH("/settings", s.updateSettings)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if s.st.Health != nil {
		if err := s.st.Health.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "database connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "storefront",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
