package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"agencyhub/database"
	"agencyhub/internal/config"
	"agencyhub/internal/handler"
	"agencyhub/internal/middleware"
	"agencyhub/internal/push"
	"agencyhub/internal/realtime"
	"agencyhub/internal/repository"
	"agencyhub/internal/service"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Realtime fan-out: one hub per process, fed by the shared Redis channel
	hub := realtime.NewHub(logger)
	go hub.Run(ctx)
	go hub.RelayFromRedis(ctx, redisClient, cfg.RealtimeChannel)

	broadcaster := realtime.NewRedisBroadcaster(redisClient, cfg.RealtimeChannel, logger)

	// Push dispatch is optional: without a VAPID keypair the notifier
	// degrades to realtime-only
	var sender push.Sender
	if cfg.PushEnabled() {
		sender = push.NewWebPushSender(cfg, logger)
	} else {
		logger.Warn("VAPID keys not configured, web push disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	contentRepo := repository.NewContentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	poolRepo := repository.NewPoolRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	guidanceRepo := repository.NewGuidanceRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	notifierService := service.NewNotifierService(userRepo, subscriptionRepo, sender, logger)
	contentService := service.NewContentService(contentRepo, notifierService, broadcaster, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, notifierService, broadcaster, logger)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	feedService := service.NewFeedService(contentRepo, announcementRepo)
	modelService := service.NewModelService(userRepo)
	poolService := service.NewPoolService(poolRepo)
	taskService := service.NewTaskService(taskRepo)
	guidanceService := service.NewGuidanceService(guidanceRepo)
	settingsService := service.NewSettingsService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	contentHandler := handler.NewContentHandler(contentService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionService, cfg.VAPIDPublicKey)
	feedHandler := handler.NewFeedHandler(feedService)
	modelHandler := handler.NewModelHandler(modelService)
	poolHandler := handler.NewPoolHandler(poolService)
	taskHandler := handler.NewTaskHandler(taskService)
	guidanceHandler := handler.NewGuidanceHandler(guidanceService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(authService)

	api := r.Group("/api")

	authHandler.RegisterRoutes(api.Group("/auth"))
	api.GET("/auth/me", authMW, authHandler.Me)

	protected := api.Group("/", authMW)
	contentHandler.RegisterRoutes(protected.Group("/content"))
	announcementHandler.RegisterRoutes(protected.Group("/announcements"))
	subscriptionHandler.RegisterRoutes(protected.Group("/push"))
	feedHandler.RegisterRoutes(protected.Group("/notifications"))
	poolHandler.RegisterRoutes(protected.Group("/pools"))
	taskHandler.RegisterRoutes(protected.Group("/tasks"))
	guidanceHandler.RegisterRoutes(protected.Group("/guidance"))
	settingsHandler.RegisterRoutes(protected.Group("/settings"))

	modelGroup := protected.Group("/models", middleware.RequireAdmin())
	modelHandler.RegisterRoutes(modelGroup)

	// Broadcast channel is public; a token only tags the connection
	r.GET("/ws", realtime.WSHandler(hub, func(token string) (string, error) {
		claims, err := authService.ValidateToken(token)
		if err != nil {
			return "", err
		}
		return claims.UserID, nil
	}, logger))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("api server listening", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		logger.Warn("redis close error", "error", err)
	}
}
