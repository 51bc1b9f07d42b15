package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/palettehub-backend/internal/handlers/http"
	"github.com/rafabene/palettehub-backend/internal/handlers/middleware"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/auth"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/config"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/i18n"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/logging"
	"github.com/rafabene/palettehub-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/palettehub-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting palettehub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	paletteRepo := postgres.NewPaletteRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, paletteRepo, uow, logger)
	paletteService := services.NewPaletteService(paletteRepo, logger)
	engagementService := services.NewEngagementService(paletteRepo, likeRepo, uow, logger)

	// Token manager + handlers
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	userHandler := httphandlers.NewUserHandler(userService, tokens)
	paletteHandler := httphandlers.NewPaletteHandler(paletteService, engagementService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de autenticação
	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)
	requireAuth := authMiddleware.RequireAuth()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Users
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", requireAuth, userHandler.Logout)
			users.PUT("/update", requireAuth, userHandler.Update)
			users.DELETE("/delete", requireAuth, userHandler.Delete)
		}

		// Palettes
		palettes := v1.Group("/palettes")
		{
			palettes.GET("/all", paletteHandler.ListPublic)
			palettes.POST("", requireAuth, paletteHandler.Create)
			palettes.GET("", requireAuth, paletteHandler.ListOwn)
			palettes.GET("/liked", requireAuth, paletteHandler.ListLiked)
			palettes.PUT("/like/:id", requireAuth, paletteHandler.Like)
			palettes.DELETE("/like/:id", requireAuth, paletteHandler.Unlike)
			palettes.PUT("/status/private/:id", requireAuth, paletteHandler.SetPrivate)
			palettes.PUT("/status/public/:id", requireAuth, paletteHandler.SetPublic)
			palettes.DELETE("/delete/:id", requireAuth, paletteHandler.Delete)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
