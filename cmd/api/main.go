package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"adopta-gatos/internal/cache"
	"adopta-gatos/internal/config"
	"adopta-gatos/internal/db"
	apihttp "adopta-gatos/internal/http"
	"adopta-gatos/internal/repository"
	"adopta-gatos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if !cfg.IsProduction() && cfg.JWTSecret == config.DevJWTSecret {
		logger.Warn("running with the development fallback jwt secret")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, cache degraded to pass-through", zap.Error(err))
		}
		cancel()
	} else {
		logger.Warn("redis not configured, cache degraded to pass-through")
	}

	catRepo := repository.NewPgCatRepository(pool)
	requestRepo := repository.NewPgAdoptionRequestRepository(pool)
	adminRepo := repository.NewPgAdminRepository(pool)

	cacheStore := cache.NewStore(redisClient, logger)
	entityCache := cache.NewEntityCache(cacheStore,
		time.Duration(cfg.CatsListTTLSeconds)*time.Second,
		time.Duration(cfg.CatsItemTTLSeconds)*time.Second,
		time.Duration(cfg.RequestsListTTLSeconds)*time.Second,
		time.Duration(cfg.RequestsItemTTLSeconds)*time.Second,
	)

	sessionTTL := time.Duration(cfg.SessionTTLHours) * time.Hour
	tokenSvc := service.NewTokenService(cfg.JWTSecret, sessionTTL)
	authSvc := service.NewAuthService(logger, adminRepo, tokenSvc)
	catSvc := service.NewCatService(logger, catRepo, entityCache)
	requestSvc := service.NewRequestService(logger, requestRepo, catSvc, entityCache)

	sessionCookie := apihttp.NewSessionCookie(cfg.CookieName, int(sessionTTL.Seconds()), cfg.IsProduction())
	guard := apihttp.NewRouteGuard(authSvc, sessionCookie, apihttp.PublicPaths, apihttp.ProtectedPrefixes, "/admin/login", cfg.GuardDefaultDeny)

	authHandler := apihttp.NewAuthHandler(logger, authSvc, sessionCookie)
	catHandler := apihttp.NewCatHandler(logger, catSvc)
	requestHandler := apihttp.NewRequestHandler(logger, requestSvc)
	healthHandler := func(c *gin.Context) {
		if err := db.Ping(c.Request.Context(), pool); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}

	router := apihttp.NewRouter(logger, guard, authHandler, catHandler, requestHandler, healthHandler, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("env", cfg.AppEnv))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
