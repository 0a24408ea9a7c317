package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/game-journal-api/internal/config"
	"github.com/yukikurage/game-journal-api/internal/constants"
	"github.com/yukikurage/game-journal-api/internal/middleware"
	"github.com/yukikurage/game-journal-api/internal/services"
	"go.uber.org/zap"
)

// Services are the dependencies the HTTP layer is built from.
type Services struct {
	Auth        *services.AuthService
	GamePackets *services.GamePacketService
	Notes       *services.NoteService
	Catalog     *services.CatalogService
}

// NewRouter wires middleware, session handling and all API routes.
func NewRouter(cfg *config.Config, logger *zap.Logger, svc Services) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	store.Options(sessionOptions(cfg.IsProduction(), int(constants.TokenTTL.Seconds())))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	authHandler := NewAuthHandler(svc.Auth, cfg.IsProduction())
	gameHandler := NewGamePacketHandler(svc.GamePackets, svc.Catalog)
	noteHandler := NewNoteHandler(svc.Notes)
	requireAuth := middleware.RequireAuth(svc.Auth)

	if cfg.StorageBackend == config.StorageDisk {
		r.Static(constants.UploadsURLPrefix, cfg.UploadDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"message": "Game Journal API is running",
			})
		})

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Game routes (protected)
		games := api.Group("/games")
		games.Use(requireAuth)
		{
			games.GET("", gameHandler.List)
			games.POST("", gameHandler.Create)
			games.GET("/recommended", gameHandler.Recommended)
			games.GET("/steam/:appId", gameHandler.CatalogGame)
			games.DELETE("/:id", gameHandler.Delete)
		}

		// Note routes (protected)
		notes := api.Group("/notes")
		notes.Use(requireAuth)
		{
			notes.GET("/:gamePacketId", middleware.RequireGamePacketAccess(svc.GamePackets, "gamePacketId"), noteHandler.List)
			notes.POST("/:gamePacketId", middleware.RequireGamePacketAccess(svc.GamePackets, "gamePacketId"), noteHandler.Create)
			notes.PUT("/:noteId", middleware.RequireNoteAccess(svc.Notes, "noteId"), noteHandler.Update)
			notes.DELETE("/:noteId", middleware.RequireNoteAccess(svc.Notes, "noteId"), noteHandler.Delete)
		}
	}

	return r, nil
}

func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		// pool size 10, default user
		store, err := redisStore.NewStore(10, "tcp", cfg.RedisAddr, "", cfg.RedisPassword, []byte(cfg.SessionSecret))
		if err != nil {
			return nil, fmt.Errorf("failed to create redis session store: %w", err)
		}
		return store, nil
	default:
		return cookie.NewStore([]byte(cfg.SessionSecret)), nil
	}
}
