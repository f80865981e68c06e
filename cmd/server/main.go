package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	guideapp "github.com/guideshare/backend/internal/application/guide"
	identityapp "github.com/guideshare/backend/internal/application/identity"
	socialapp "github.com/guideshare/backend/internal/application/social"
	"github.com/guideshare/backend/internal/infrastructure/auth"
	"github.com/guideshare/backend/internal/infrastructure/config"
	"github.com/guideshare/backend/internal/infrastructure/logger"
	"github.com/guideshare/backend/internal/infrastructure/persistence"
	"github.com/guideshare/backend/internal/interfaces/http/handler"
	"github.com/guideshare/backend/internal/interfaces/http/middleware"
	"github.com/guideshare/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting GuideShare Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	guideRepo := persistence.NewGormGuideRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	followRepo := persistence.NewGormFollowRepository(db.DB)
	likeRepo := persistence.NewGormLikeRepository(db.DB)
	favoriteRepo := persistence.NewGormFavoriteRepository(db.DB)
	checkInRepo := persistence.NewGormCheckInRepository(db.DB)

	// Identity services
	jwtService := auth.NewJWTService(cfg.Auth)
	authService := identityapp.NewAuthService(userRepo, jwtService, cfg.Auth.PasswordCooldown(), log)
	userService := identityapp.NewUserService(userRepo, followRepo, log)

	// Guide services
	guideService := guideapp.NewGuideService(guideRepo, userRepo, likeRepo, favoriteRepo, checkInRepo, log)
	commentService := guideapp.NewCommentService(commentRepo, guideRepo, userRepo, log)

	// Social services
	followService := socialapp.NewFollowService(followRepo, userRepo, log)
	engagementService := socialapp.NewEngagementService(likeRepo, favoriteRepo, guideRepo, userRepo, log)
	checkInService := socialapp.NewCheckInService(checkInRepo, guideRepo, log)
	feedService := socialapp.NewFeedService(followRepo, guideRepo, userRepo, likeRepo, favoriteRepo, log)

	// Bootstrap the admin account before accepting traffic
	bootstrapCtx, bootstrapCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureAdmin(bootstrapCtx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		bootstrapCancel()
		log.Fatal("Failed to ensure admin account", zap.Error(err))
	}
	bootstrapCancel()

	// Configure gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	// Middleware chain
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecureHeaders())
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Handlers and routes
	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Guide:      handler.NewGuideHandler(guideService, commentService),
		Engagement: handler.NewEngagementHandler(engagementService, checkInService),
		Follow:     handler.NewFollowHandler(followService),
		Me: handler.NewMeHandler(
			authService,
			guideService,
			engagementService,
			checkInService,
			followService,
			feedService,
		),
		Admin:  handler.NewAdminHandler(userService),
		System: handler.NewSystemHandler(db.DB),
	}
	router.NewRouter(engine, jwtService, handlers).Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
