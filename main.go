package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/sabbir-mahmud/expense-backend/pkg/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// App wires the store, configuration and clock into the handlers. The clock is
// a field so summary tests can pin "now".
type App struct {
	cfg Config
	db  *gorm.DB
	now func() time.Time
}

func newApp(cfg Config, db *gorm.DB) *App {
	return &App{cfg: cfg, db: db, now: time.Now}
}

func main() {
	// load ./.env if present, without overwriting variables already set
	_ = godotenv.Load()
	logging.Setup()
	cfg := LoadConfig()

	db, err := initDB(cfg)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	// `./expense-backend migrate` runs AutoMigrate and exits. Useful for CI
	// or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		migrateModels(db)
		slog.Info("migration completed")
		return
	}

	app := newApp(cfg, db)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), metricsMiddleware())
	app.setupRoutes(r)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// requestLogger logs one line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
