package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"portfolio-api/internal/bootstrap"
	"portfolio-api/internal/config"
	"portfolio-api/internal/server"
	"portfolio-api/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(database.Params{
		Host:     cfg.DBHost,
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Name:     cfg.DBName,
		Port:     cfg.DBPort,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db, logger); err != nil {
			logger.Fatal("failed to seed admin user", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb = redis.NewClient(opts)
	}

	srv, err := server.New(cfg, db, rdb, logger)
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	logger.Info("backend server listening", zap.String("port", cfg.Port))
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}
