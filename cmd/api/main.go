package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"jar-rating/internal/config"
	"jar-rating/internal/db"
	"jar-rating/internal/email"
	apihttp "jar-rating/internal/http"
	"jar-rating/internal/repository"
	"jar-rating/internal/service"

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

	configRepo := repository.NewFileConfigRepository(cfg.RatingConfigPath)
	ratingCfg, err := configRepo.Load()
	if err != nil {
		logger.Fatal("rating config load", zap.Error(err))
	}
	configStore := service.NewConfigStore(ratingCfg)

	var practitionerRepo repository.PractitionerRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		practitionerRepo = repository.NewPgPractitionerRepository(pool)
	} else {
		logger.Info("no database configured, using file-backed practitioner storage",
			zap.String("path", cfg.PractitionersPath))
		practitionerRepo = repository.NewFilePractitionerRepository(cfg.PractitionersPath)
	}

	var (
		reportCache service.ReportCache
		tokenStore  service.RefreshTokenStore
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			reportCache = service.NewRedisReportCache(redisClient)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMin)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMin)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured, config editing disabled")
	}
	authSvc := service.NewAuthService(logger, cfg.AdminKeyHash, jwtSvc)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	comparisonSvc := service.NewComparisonService(logger, configStore, reportCache, practitionerRepo)

	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	comparisonHandler := apihttp.NewComparisonHandler(logger, comparisonSvc, emailSender)
	practitionerHandler := apihttp.NewPractitionerHandler(logger, practitionerRepo, comparisonSvc)
	configHandler := apihttp.NewConfigHandler(logger, configStore, configRepo)
	router := apihttp.NewRouter(logger, jwtSvc, authHandler, comparisonHandler, practitionerHandler, configHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
