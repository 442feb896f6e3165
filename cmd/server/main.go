package main

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/chantraine-avenir/cavserver/internal/api"
	"github.com/chantraine-avenir/cavserver/internal/db"
	"github.com/chantraine-avenir/cavserver/internal/middleware"
	"github.com/chantraine-avenir/cavserver/internal/utils"
)

func main() {
	// Local development convenience; deployments set real env vars.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	addr := utils.SafeEnv("CAV_ADDR", ":8080")
	dbPath := utils.SafeEnv("CAV_DB_PATH", filepath.Join("data", "cav.db"))

	cfg := api.Config{
		AdminUsername:     utils.SafeEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		DocsPassword:      os.Getenv("DOCS_PASSWORD"),
		AuthSecret:        os.Getenv("DOCS_AUTH_SECRET"),
		DocsDir:           utils.SafeEnv("CAV_DOCS_DIR", "private_docs"),
	}
	if cfg.DocsPassword == "" || cfg.AuthSecret == "" {
		logger.Warn("DOCS_PASSWORD or DOCS_AUTH_SECRET unset; document logins will fail")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		logger.Warn("no admin password configured; /resultats will reject all requests")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logger.Fatal("create data dir", zap.Error(err))
	}
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		logger.Fatal("open sqlite", zap.Error(err))
	}
	defer conn.Close()
	if err := db.RunMigrations(conn, os.Getenv("CAV_MIGRATIONS_DIR")); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}
	store, err := db.NewStore(conn)
	if err != nil {
		logger.Fatal("init store", zap.Error(err))
	}

	mux := http.NewServeMux()
	api.NewRouter(cfg, store, logger).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"name":"Chantraine À-Venir"}`))
	})

	// Public static site, when bundled alongside the server.
	if staticDir := os.Getenv("CAV_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.RequestLogger(logger)(
		middleware.SecureHeaders(middleware.NoStore(mux)),
	)

	logger.Info("server listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
