// Package api assembles the HTTP surface: one handler per resource plus the
// router that wires them to routes and middleware.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jkrv/billdesk/internal/auth"
	"github.com/jkrv/billdesk/internal/middleware"
	"github.com/jkrv/billdesk/internal/storage"
)

// Config carries the dependencies the router injects into handlers.
type Config struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager

	// StaticDir, when non-empty, is served under /app for the browser pages.
	StaticDir string
}

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(cfg.Authenticator, cfg.JWT)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	protected := r.Group("", middleware.RequireAuth(cfg.JWT))

	// Authenticated ping; confirms the bearer token is valid.
	protected.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Authorized"})
	})

	groupHandler := NewGroupHandler(cfg.Store)
	protected.GET("/groups", groupHandler.List)
	protected.POST("/groups", groupHandler.Create)

	accountHandler := NewAccountHandler(cfg.Store)
	protected.GET("/accounts", accountHandler.List)
	protected.POST("/accounts", accountHandler.Create)

	billHandler := NewBillHandler(cfg.Store)
	protected.GET("/bills/:group_id", billHandler.List)
	protected.POST("/bills", billHandler.Create)

	if cfg.StaticDir != "" {
		r.Static("/app", cfg.StaticDir)
	}

	return r
}
