package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/auth"
	"github.com/yukikurage/game-journal-api/internal/config"
	"github.com/yukikurage/game-journal-api/internal/constants"
	"github.com/yukikurage/game-journal-api/internal/database"
	"github.com/yukikurage/game-journal-api/internal/handlers"
	"github.com/yukikurage/game-journal-api/internal/logging"
	"github.com/yukikurage/game-journal-api/internal/repository"
	"github.com/yukikurage/game-journal-api/internal/services"
	"github.com/yukikurage/game-journal-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	store, err := newAttachmentStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize attachment storage", zap.Error(err))
	}

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	svc := handlers.Services{
		Auth:        services.NewAuthService(repository.NewUserRepository(db), tokens),
		GamePackets: services.NewGamePacketService(repository.NewGamePacketRepository(db)),
		Notes:       services.NewNoteService(repository.NewNoteRepository(db), store, logger),
		Catalog:     services.NewCatalogService(cfg.SteamBaseURL, cfg.SteamTimeout, logger),
	}

	r, err := handlers.NewRouter(cfg, logger, svc)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	// Start server
	logger.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("storage", cfg.StorageBackend),
		zap.String("sessions", cfg.SessionStore),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newAttachmentStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == config.StorageS3 {
		return storage.NewS3Store(context.Background(), storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}
	return storage.NewDiskStore(cfg.UploadDir, constants.UploadsURLPrefix)
}
