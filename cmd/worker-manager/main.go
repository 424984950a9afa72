// cmd/worker-manager/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/common/camunda"
	"career-assessment-workers/internal/common/config"
	"career-assessment-workers/internal/common/database"
	"career-assessment-workers/internal/common/logger"
	"career-assessment-workers/internal/common/observability"
	"career-assessment-workers/internal/repository"
	indexresults "career-assessment-workers/internal/workers/assessment/index-results"
)

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	log, zapLog, err := logger.NewFromOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		bootLog.Fatal("logger setup failed", zap.Error(err))
	}
	defer zapLog.Sync()

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.Observability.ServiceName)
	defer obs.Shutdown()
	if cfg.Observability.JaegerEndpoint != "" {
		if err := obs.EnableTracing(cfg.Observability.ServiceName, cfg.Observability.JaegerEndpoint); err != nil {
			zapLog.Warn("tracing disabled", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Zeebe ---
	zeebe, err := camunda.NewClient(ctx, cfg.Camunda, log)
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- PostgreSQL ---
	var pg *database.PostgresClient
	err = camunda.Retry(ctx, &camunda.RetryConfig{MaxRetries: 15, BaseDelay: 2 * time.Second, MaxDelay: 30 * time.Second},
		log, "PostgreSQL connection", func() error {
			var err error
			if pg, err = database.NewPostgres(cfg.Database.Postgres); err != nil {
				return err
			}
			return pg.Ping(ctx)
		})
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Redis ---
	redis := database.NewRedis(cfg.Database.Redis)
	err = camunda.Retry(ctx, camunda.DefaultRetryConfig, log, "Redis connection", func() error {
		return redis.Ping(ctx)
	})
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Elasticsearch ---
	var esClient *database.ElasticsearchClient
	err = camunda.Retry(ctx, &camunda.RetryConfig{MaxRetries: 15, BaseDelay: 2 * time.Second, MaxDelay: 30 * time.Second},
		log, "Elasticsearch connection", func() error {
			var err error
			if esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch); err != nil {
				return err
			}
			return esClient.Ping()
		})
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Schema and index ---
	repo := repository.NewProgressRepository(pg.DB, redis, time.Duration(cfg.Assessment.CacheTTL)*time.Second, log)
	if err := repo.EnsureSchema(ctx); err != nil {
		zapLog.Fatal("schema setup failed", zap.Error(err))
	}
	if err := esClient.EnsureIndex(ctx, cfg.Assessment.ResultsIndex, indexresults.IndexMapping()); err != nil {
		zapLog.Fatal("results index setup failed", zap.Error(err), zap.String("index", cfg.Assessment.ResultsIndex))
	}

	// --- Engine and service ---
	engineCfg := assessment.DefaultConfig()
	engineCfg.Weights = cfg.Assessment.Weights
	engineCfg.TopN = cfg.Assessment.TopN
	engine, err := assessment.NewEngine(engineCfg)
	if err != nil {
		zapLog.Fatal("assessment engine configuration rejected", zap.Error(err))
	}
	service := assessment.NewService(engine, repo, log,
		assessment.WithAutoAggregate(cfg.Assessment.AutoAggregate),
		assessment.WithObservability(obs),
	)

	// --- Workers ---
	manager := camunda.NewManager(zeebe.GetClient(), log)
	if err := registerWorkers(ctx, manager, deps{
		cfg:     cfg,
		log:     log,
		service: service,
		indexer: esClient,
	}); err != nil {
		zapLog.Fatal("worker registration failed", zap.Error(err))
	}
	zapLog.Info("Workers registered", zap.Int("running", manager.Running()))
	if err := checkRegistry(cfg, log); err != nil {
		zapLog.Fatal("activity registry rejected", zap.Error(err))
	}

	// --- Health & Metrics Server ---
	srv := &http.Server{
		Addr: cfg.Observability.MetricsAddress,
		Handler: newServeMux(map[string]func(context.Context) error{
			"zeebe":    zeebe.HealthCheck,
			"postgres": pg.Ping,
			"redis":    redis.Ping,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zapLog.Info("Shutdown signal received, stopping workers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	manager.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}
	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
