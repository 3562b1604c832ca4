package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"recipefinder/database"
	"recipefinder/docs"
	"recipefinder/internal/cache"
	"recipefinder/internal/config"
	"recipefinder/internal/controllers"
	"recipefinder/internal/identity"
	"recipefinder/internal/logger"
	"recipefinder/internal/metrics"
	"recipefinder/internal/middleware"
	"recipefinder/internal/repository"
	"recipefinder/internal/services"
	"recipefinder/internal/spoonacular"
	"recipefinder/internal/utils"
	"recipefinder/routes"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		// The logger is configured from cfg, so fall back to a default one.
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.App.Dev(),
	})
	defer log.Sync()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Recipe Finder API"
	docs.SwaggerInfo.Description = "Recipe search backed by Spoonacular, with bookmarks and a popularity dashboard."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db, log); err != nil {
		log.Fatal("failed to run database migrations", zap.Error(err))
	}
	database.MonitorConnections(ctx, db, log, 10*time.Second)

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	verificationRepo := repository.NewVerificationRepository(db)
	favouriteRepo := repository.NewFavouriteRepository(db)

	// Services
	recipeClient := spoonacular.NewClient(cfg.Spoonacular, m)
	identityService := identity.NewService(
		userRepo,
		verificationRepo,
		identity.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		redisClient,
		utils.NewMailer(cfg.Mail, log),
		log,
		identity.Options{
			CookieName: cfg.Auth.CookieName,
			ConfirmURL: cfg.App.APIURL + "/auth/confirm",
		},
	)
	oauth := identity.NewOAuth(identityService, redisClient, map[string]*identity.OAuthProvider{
		"google": identity.NewGoogleProvider(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret, cfg.Auth.OAuthRedirectURL),
	})
	aggregator := services.NewAggregator(recipeClient, favouriteRepo, services.AggregatorOptions{
		EquipmentEnrichment: cfg.Features.EquipmentEnrichment,
		PerUserBookmarks:    cfg.Features.PerUserBookmarks,
	}, m, log)

	// Controllers
	cookies := controllers.CookieOptions{Secure: cfg.Auth.CookieSecure, TTL: cfg.Auth.SessionTTL}
	authController := controllers.NewAuthController(identityService, cookies, cfg.App.WebsiteURL(), log)
	oauthController := controllers.NewOauthController(oauth, cfg.Auth.CookieName, cookies)
	recipeController := controllers.NewRecipeController(recipeClient, cfg.Features.EquipmentEnrichment, log)
	dashboardController := controllers.NewDashboardController(aggregator)
	favouriteController := controllers.NewFavouriteController(favouriteRepo)

	if !cfg.App.Dev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), m.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Recipe Finder API is running",
			"version": "1.0.0",
			"status":  "healthy",
			"features": gin.H{
				"equipment_enrichment": cfg.Features.EquipmentEnrichment,
				"per_user_bookmarks":   cfg.Features.PerUserBookmarks,
			},
		})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	requireSession := middleware.RequireSession(identityService, log)

	routes.RegisterAuthRoutes(router, authController, middleware.OptionalSession(identityService, log))
	routes.RegisterOauthRoutes(router, oauthController)
	routes.RegisterRecipeRoutes(router, recipeController, limiter.Limit())
	routes.RegisterDashboardRoutes(router, dashboardController, requireSession, limiter.Limit())
	routes.RegisterFavouriteRoutes(router, favouriteController, requireSession)
	routes.RegisterSwaggerRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	router.GET("/debug/database", func(c *gin.Context) {
		stats, err := database.Stats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		dbErr := database.Ping(c.Request.Context(), db)
		if dbErr != nil {
			log.Warn("database ping failed", zap.Error(dbErr))
		}
		redisErr := redisClient.Ping(c.Request.Context())
		if redisErr != nil {
			log.Warn("redis ping failed", zap.Error(redisErr))
		}

		c.JSON(http.StatusOK, gin.H{
			"database_health":  dbErr == nil,
			"redis_health":     redisErr == nil,
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"goroutines":       runtime.NumGoroutine(),
		})
	})

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("docs", "http://localhost:"+cfg.Server.Port+"/swagger/index.html"),
			zap.String("environment", cfg.App.Environment),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err != nil {
		log.Error("failed to get database handle", zap.Error(err))
	} else if err := sqlDB.Close(); err != nil {
		log.Error("failed to close database", zap.Error(err))
	}
	log.Info("server stopped")
}
