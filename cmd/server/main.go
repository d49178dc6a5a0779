package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jkrv/billdesk/internal/api"
	"github.com/jkrv/billdesk/internal/auth"
	"github.com/jkrv/billdesk/internal/storage/sqlite"
	"github.com/jkrv/billdesk/pkg/logging"
)

const defaultTokenTTL = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	port := getEnv("PORT", "8080")
	dbPath := getEnv("DB_PATH", "./data/bills.db")
	staticPath := getEnv("STATIC_PATH", "./web/static")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	tokenTTL := defaultTokenTTL
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			slog.Error("Invalid TOKEN_TTL", "value", ttl, "error", err)
			os.Exit(1)
		}
		tokenTTL = parsed
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	jwtManager := auth.NewJWTManager(secret, tokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	router := api.NewRouter(api.Config{
		Store:         store,
		Authenticator: authenticator,
		JWT:           jwtManager,
		StaticDir:     staticPath,
	})

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
