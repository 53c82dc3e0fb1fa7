package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	tag_service "pinstack-tag-service/internal/application/service/tag"
	"pinstack-tag-service/internal/infrastructure/config"
	delivery_http "pinstack-tag-service/internal/infrastructure/inbound/http"
	tag_http "pinstack-tag-service/internal/infrastructure/inbound/http/tag"
	metrics_server "pinstack-tag-service/internal/infrastructure/inbound/metrics"
	"pinstack-tag-service/internal/infrastructure/logger"
	redis_cache "pinstack-tag-service/internal/infrastructure/outbound/cache/redis"
	post_client "pinstack-tag-service/internal/infrastructure/outbound/client/post"
	user_client "pinstack-tag-service/internal/infrastructure/outbound/client/user"
	prometheus_metrics "pinstack-tag-service/internal/infrastructure/outbound/metrics/prometheus"
	"pinstack-tag-service/internal/infrastructure/outbound/repository/postgres"
	tag_postgres "pinstack-tag-service/internal/infrastructure/outbound/repository/tag/postgres"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(cfg.Database.MigrationsPath, dsn, log); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	userClient := user_client.NewUserClient(cfg.UserService.Address, cfg.UserService.Port, log)
	postClient := post_client.NewPostClient(cfg.PostService.Address, cfg.PostService.Port, log)

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	unitOfWork := postgres.NewPostgresUOW(pool, log, metrics)
	tagRepo := tag_postgres.NewTagRepository(pool, log, metrics)

	tagCache := redis_cache.NewTagCache(redisClient, log)
	counterStore := redis_cache.NewCounterStore(redisClient, tagRepo, log)

	tagService := tag_service.NewTagService(
		tagRepo,
		unitOfWork,
		tagCache,
		counterStore,
		userClient,
		postClient,
		log,
		metrics,
	)

	tagAPI := tag_http.NewTagAPI(tagService, log)
	httpServer := delivery_http.NewServer(tagAPI, cfg.HTTPServer.Address, cfg.HTTPServer.Port, cfg.Auth.JWTSecret, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
