package main

import (
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/mkhumalo/site_safety_app/internal/adapters/storage/localkv"
	"github.com/mkhumalo/site_safety_app/internal/core/services"
	"github.com/mkhumalo/site_safety_app/internal/handlers"
	"github.com/mkhumalo/site_safety_app/internal/middleware"
	"github.com/mkhumalo/site_safety_app/internal/platform/config"
	"github.com/mkhumalo/site_safety_app/pkg/database"
)

// @title Site Safety App API
// @version 1.0
// @description Worksite safety record keeping: roll calls, PPE checklists, hazard reports and permits.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewSQLiteDB(cfg.DataPath)
	if err != nil {
		logger.Error("Failed to open data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseDB(db)

	// --- Run Database Migrations ---
	logger.Info("Running database migrations...")
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		logger.Error("Could not create sqlite driver instance for migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "sqlite3", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	// --- End Database Migrations ---

	// Report validation failures under json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire storage and services
	kvStore := localkv.NewSQLiteKVStore(db)
	docStore := localkv.NewDocumentStore(kvStore)
	serviceContainer := services.NewServiceContainer(docStore)

	handlers.RegisterRoutes(r, cfg, serviceContainer, docStore)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// jsonTagName maps struct fields to their json names so binding errors key on
// the names clients actually sent.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
