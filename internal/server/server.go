package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malakstore/souq/internal/assistant"
	"github.com/malakstore/souq/internal/auth"
	"github.com/malakstore/souq/internal/catalog"
	"github.com/malakstore/souq/internal/checkout"
	"github.com/malakstore/souq/internal/database"
	"github.com/malakstore/souq/internal/notify"
	"github.com/malakstore/souq/internal/session"
	"github.com/malakstore/souq/internal/store"
)

type Server struct {
	router    *gin.Engine
	store     *store.Store
	sessions  *session.Manager
	profiles  *session.ProfileStore
	catalog   *catalog.Service
	checkout  *checkout.Service
	auth      *auth.Service
	notifier  *notify.Notifier
	assistant *assistant.Assistant
	db        *database.DB // nil unless snapshot persistence is configured
}

// Deps carries everything the HTTP layer serves; the server owns no
// business logic of its own.
type Deps struct {
	Store     *store.Store
	Sessions  *session.Manager
	Profiles  *session.ProfileStore
	Catalog   *catalog.Service
	Checkout  *checkout.Service
	Auth      *auth.Service
	Notifier  *notify.Notifier
	Assistant *assistant.Assistant
	DB        *database.DB
}

// NewServer creates a new server instance
func NewServer(deps Deps) *Server {
	router := gin.Default()

	server := &Server{
		router:    router,
		store:     deps.Store,
		sessions:  deps.Sessions,
		profiles:  deps.Profiles,
		catalog:   deps.Catalog,
		checkout:  deps.Checkout,
		auth:      deps.Auth,
		notifier:  deps.Notifier,
		assistant: deps.Assistant,
		db:        deps.DB,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/notifications", s.listNotifications)

		api.POST("/session", s.openSession)
		api.POST("/login", s.login)
		api.POST("/logout", s.logout)
		api.POST("/chat", s.chat)

		sess := api.Group("", s.requireSession())
		{
			sess.GET("/cart", s.getCart)
			sess.POST("/cart/items", s.addCartItem)
			sess.PATCH("/cart/items/:id", s.updateCartItem)
			sess.DELETE("/cart/items/:id", s.removeCartItem)

			sess.GET("/profile", s.getProfile)
			sess.PUT("/profile", s.saveProfile)

			sess.POST("/orders", s.placeOrder)
			sess.GET("/orders", s.listMyOrders)
		}

		admin := api.Group("/admin", s.requireAdmin())
		{
			admin.POST("/products", s.saveProduct)
			admin.PUT("/products", s.saveProduct)
			admin.DELETE("/products/:id", s.deleteProduct)

			admin.GET("/orders", s.listAllOrders)
			admin.PATCH("/orders/:id/status", s.updateOrderStatus)
			admin.GET("/summary", s.adminSummary)

			admin.POST("/notifications", s.broadcastNotification)
			admin.POST("/describe", s.describeProduct)
			admin.POST("/save", s.saveSnapshot)

			admin.GET("/admins", s.listAdmins)
			admin.POST("/admins", s.registerAdmin)
			admin.PATCH("/admins/:id/status", s.updateAdminStatus)
		}
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	resp := gin.H{
		"status":  "ok",
		"service": "souq",
		"version": "0.1.0",
	}

	if s.db != nil {
		if err := s.db.HealthCheck(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"error":  "database connection failed",
			})
			return
		}
		resp["snapshots"] = "enabled"
	}

	c.JSON(http.StatusOK, resp)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the underlying router, used by httptest in handler tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
