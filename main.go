// main.go
package main

import (
	"context"
	"log"
	"time"

	"handcrafted-haven/cmd"
	"handcrafted-haven/internal/data/filestore"
	"handcrafted-haven/internal/data/repository"
	"handcrafted-haven/internal/usecase"
	"handcrafted-haven/internal/wire"
	"handcrafted-haven/pkg/database"
	"handcrafted-haven/pkg/database/migrations"
	"handcrafted-haven/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("backend", config.Store.Backend),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database when a connection string is configured. In file
	// mode a connection failure is not fatal; the health probes report it.
	var db database.PgxIface
	if config.Database.URL != "" {
		db, err = database.InitDB(config.Database)
		if err != nil {
			if config.Store.Backend == utils.BackendPostgres {
				logger.Fatal("Failed to connect to database", zap.Error(err))
			}
			logger.Warn("Database unreachable; health probes will report it", zap.Error(err))
		}
	}

	// Select the store backend
	var repo *repository.Repository
	switch config.Store.Backend {
	case utils.BackendPostgres:
		if db == nil {
			logger.Fatal("STORE_BACKEND=postgres requires DATABASE_URL")
		}

		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrations.Run(migrateCtx, config.Database.URL); err != nil {
			cancel()
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
		cancel()

		logger.Info("Database connected and migrated")
		repo = repository.NewRepository(db, logger)

	case utils.BackendFile:
		logger.Info("Using file-backed stores", zap.String("data_dir", config.Store.DataDir))
		repo = filestore.NewRepository(config.Store.DataDir, logger)
	}

	if db != nil {
		defer db.Close()
	}

	// Wire services, handlers, and routes
	service := usecase.NewService(repo, db, config, logger)
	app := wire.Wiring(service, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
