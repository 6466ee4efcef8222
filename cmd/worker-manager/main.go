// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"career-risk-workers/internal/assessment"
	"career-risk-workers/internal/catalog"
	"career-risk-workers/internal/common/camunda"
	"career-risk-workers/internal/common/config"
	"career-risk-workers/internal/common/database"
	apperrors "career-risk-workers/internal/common/errors"
	"career-risk-workers/internal/common/logger"
	"career-risk-workers/internal/common/observability"
	"career-risk-workers/internal/common/validation"
	"career-risk-workers/pkg/registry"

	ber "career-risk-workers/internal/workers/assessment/build-enhanced-report"
	br "career-risk-workers/internal/workers/assessment/build-report"
	lar "career-risk-workers/internal/workers/assessment/load-assessment-result"
	sa "career-risk-workers/internal/workers/assessment/score-assessment"
	sar "career-risk-workers/internal/workers/assessment/store-assessment-result"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer zapLog.Sync()
	zapLog = zapLog.With(zap.String("service", cfg.App.Name))

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name, observability.AsGlobal())
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Reference catalog ---
	cat, err := catalog.LoadPath(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(apperrors.NewCatalogLoadFailedError(err)))
	}
	engine := assessment.NewEngine(cat)
	stats := cat.Stats()
	zapLog.Info("Catalog loaded",
		zap.String("version", cat.Version()),
		zap.String("source", catalogSource(cfg.Catalog.Path)),
		zap.Int("questions", stats.Questions),
		zap.Int("occupations", stats.Occupations),
	)

	// --- Activity registry and input schemas ---
	reg, err := registry.LoadRegistry(cfg.Catalog.RegistryPath)
	if err != nil {
		zapLog.Fatal("activity registry load failed", zap.Error(err))
	}
	validator, err := validation.NewSchemaValidator(reg)
	if err != nil {
		zapLog.Fatal("input schema compilation failed", zap.Error(err))
	}

	// --- Init Zeebe Client with retry ---
	var zeebe *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		zeebe, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: cfg.Camunda.Plaintext,
			RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()

	if err := pg.Migrate(ctx); err != nil {
		zapLog.Fatal("schema migration failed", zap.Error(err))
	}
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	rt := &camunda.Runtime{
		Validator:     validator,
		Observability: obs,
		Logger:        log,
	}

	// --- Register workers ---
	var workers []*camunda.CamundaWorker
	register := func(taskType string, handler camunda.JobHandler) {
		wcfg := config.GetWorkerConfig(cfg, taskType)
		if !wcfg.Enabled {
			zapLog.Info("worker disabled", zap.String("taskType", taskType))
			return
		}
		workers = append(workers, camunda.NewWorker(zeebe.GetClient(), taskType, wcfg, handler, log))
	}
	timeout := func(taskType string) time.Duration {
		return config.GetDuration(config.GetWorkerConfig(cfg, taskType).Timeout)
	}

	register(sa.TaskType, sa.NewHandler(
		&sa.Config{
			Timeout:  timeout(sa.TaskType),
			CacheTTL: cfg.Cache.ResultTTLDuration(),
		},
		engine, rdb.Client, rt, log,
	))

	register(br.TaskType, br.NewHandler(
		&br.Config{Timeout: timeout(br.TaskType)},
		engine, rt, log,
	))

	register(ber.TaskType, ber.NewHandler(
		&ber.Config{Timeout: timeout(ber.TaskType)},
		engine, rt, log,
	))

	register(sar.TaskType, sar.NewHandler(
		&sar.Config{Timeout: timeout(sar.TaskType)},
		pg.DB, rt, log,
	))

	register(lar.TaskType, lar.NewHandler(
		&lar.Config{Timeout: timeout(lar.TaskType)},
		pg.DB, rt, log,
	))

	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	// --- Health & Metrics Server ---
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{
			"status":         "healthy",
			"catalogVersion": cat.Version(),
			"time":           time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := map[string]error{
			"zeebe":    zeebe.HealthCheck(checkCtx),
			"postgres": pg.Ping(checkCtx),
			"redis":    rdb.Ping(checkCtx),
		}
		body := map[string]string{"time": time.Now().Format(time.RFC3339)}
		status := http.StatusOK
		for name, err := range checks {
			if err != nil {
				body[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			body[name] = "ok"
		}
		body["status"] = "ready"
		if status != http.StatusOK {
			body["status"] = "not ready"
		}
		writeStatus(w, status, body)
	})
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              cfg.Metrics.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", cfg.Metrics.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop()
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error stopping health server", zap.Error(err))
	}

	if err := zeebe.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
