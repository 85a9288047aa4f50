package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/vowsync/vowsync/internal/auth"
	"github.com/vowsync/vowsync/internal/config"
	"github.com/vowsync/vowsync/internal/server"
	"github.com/vowsync/vowsync/internal/storage/sqlite"
	"github.com/vowsync/vowsync/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level)

	store, err := sqlite.New(cfg.Server.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Server.DBPath)

	var cache *redis.Client
	if cfg.Server.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.Server.RedisAddr})
		slog.Info("Vendor search cache enabled", "redis", cfg.Server.RedisAddr)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTL)*time.Hour)
	srv := server.New(store, jwtManager, cache)

	// h2c allows HTTP/2 without TLS for local clients that want it;
	// plain HTTP/1.1 still works over the same listener.
	handler := h2c.NewHandler(srv.Router(), &http2.Server{})

	addr := cfg.Server.Addr()
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
