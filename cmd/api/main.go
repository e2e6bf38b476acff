package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payflow/config"
	httpHandler "payflow/internal/adapter/http/handler"
	"payflow/internal/adapter/http/middleware"
	"payflow/internal/adapter/metrics"
	"payflow/internal/adapter/settlement"
	memoryStorage "payflow/internal/adapter/storage/memory"
	redisStorage "payflow/internal/adapter/storage/redis"
	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/service"
	"payflow/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("PAYFLOW_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("payer_chain", cfg.Payroll.PayerChain).
		Bool("testnet", cfg.Payroll.Testnet).
		Msg("Starting PayFlow")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (PAYFLOW_JWT_SECRET)")
	}

	payerChain, ok := domain.ParseChain(cfg.Payroll.PayerChain)
	if !ok {
		log.Fatal().Str("chain", cfg.Payroll.PayerChain).Msg("Unknown payer chain")
	}

	slippage, err := decimal.NewFromString(cfg.Settlement.BridgeSlippage)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid settlement.bridge_slippage")
	}
	fee, err := decimal.NewFromString(cfg.Settlement.BridgeFee)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid settlement.bridge_fee")
	}

	ctx := context.Background()

	// Execution log, run lock and rate limiter: Redis when enabled, else in-process
	var (
		logSink        ports.LogSink
		runLock        ports.RunLock
		rateLimitStore ports.RateLimitStore
		healthCheckers []ports.HealthChecker
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		logSink = redisStorage.NewLogSink(rdb, int64(cfg.Payroll.MaxLogLines))
		runLock = redisStorage.NewRunLock(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled, execution log and rate limits are process-local")
		logSink = memoryStorage.NewLogSink(cfg.Payroll.MaxLogLines)
		rateLimitStore = memoryStorage.NewRateLimitStore()
	}
	if !cfg.RateLimit.Enabled {
		rateLimitStore = nil
	}

	// Sandbox settlement adapters
	hashes := settlement.NewKeccakHasher(nil)
	sameChain := settlement.NewSessionSettler(hashes, cfg.Settlement.Latency, logger.Component(log, "settlement.session"))
	bridge := settlement.NewBridge(settlement.BridgeConfig{
		Slippage: slippage,
		Fee:      fee,
		Latency:  cfg.Settlement.Latency,
		Testnet:  cfg.Payroll.Testnet,
		Seed:     uint64(time.Now().UnixNano()),
	}, hashes, logger.Component(log, "settlement.bridge"))
	ledger := settlement.NewLedgerBatcher(hashes, cfg.Settlement.Latency, logger.Component(log, "settlement.ledger"))

	// Metrics
	var (
		recorder       ports.MetricsRecorder = metrics.NewNoop()
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		prom := metrics.NewPrometheusRecorder()
		recorder = prom
		metricsHandler = prom.Handler()
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Run-completion webhook (no-op without webhook.url)
	webhookSvc := service.NewWebhookService(
		service.WebhookConfig{URL: cfg.Webhook.URL, Secret: cfg.Webhook.Secret},
		service.NewHMACSignatureService(),
		&http.Client{Timeout: cfg.Webhook.Timeout},
		logger.Component(log, "webhook"),
	)

	orchestrator := service.NewOrchestrator(service.OrchestratorDeps{
		SameChain:    sameChain,
		CrossChain:   bridge,
		SingleLedger: ledger,
		Quoter:       bridge,
		Previewer:    ledger,
		Logs:         logSink,
		RunLock:      runLock,
		RunLockTTL:   cfg.Payroll.RunLockTTL,
		Metrics:      recorder,
		Notifier:     webhookSvc,
		PayerChain:   payerChain,
		Log:          logger.Component(log, "orchestrator"),
	})

	// Load OpenAPI spec for Swagger UI
	specBytes, err := os.ReadFile("docs/api/openapi.yaml")
	if err == nil {
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
		specBytes = nil
	}

	rules := middleware.DefaultRateLimitRules()
	rules[middleware.GroupExecute] = middleware.RateLimitRule{Limit: cfg.RateLimit.ExecuteLimit, Window: cfg.RateLimit.ExecuteWindow}
	rules[middleware.GroupWrite] = middleware.RateLimitRule{Limit: cfg.RateLimit.WriteLimit, Window: cfg.RateLimit.WriteWindow}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Payroll:        orchestrator,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimitRules: rules,
		HealthCheckers: healthCheckers,
		MetricsHandler: metricsHandler,
		OpenAPISpec:    specBytes,
		Testnet:        cfg.Payroll.Testnet,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Give in-flight webhook deliveries until the shutdown deadline
	delivered := make(chan struct{})
	go func() {
		webhookSvc.Wait()
		close(delivered)
	}()
	select {
	case <-delivered:
	case <-shutdownCtx.Done():
		log.Warn().Msg("Abandoning pending webhook deliveries")
	}

	log.Info().Msg("Server exited")
}
