package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/oneacre/farmbooks/internal/adapter/advisor"
	httpAdapter "github.com/oneacre/farmbooks/internal/adapter/http"
	"github.com/oneacre/farmbooks/internal/adapter/http/handler"
	"github.com/oneacre/farmbooks/internal/adapter/repository/instrumented"
	"github.com/oneacre/farmbooks/internal/adapter/repository/memory"
	postgresStore "github.com/oneacre/farmbooks/internal/adapter/repository/postgres"
	"github.com/oneacre/farmbooks/internal/adapter/repository/record"
	redisStore "github.com/oneacre/farmbooks/internal/adapter/repository/redis"
	"github.com/oneacre/farmbooks/internal/adapter/repository/sqlitekv"
	"github.com/oneacre/farmbooks/internal/infrastructure/config"
	"github.com/oneacre/farmbooks/internal/infrastructure/logger"
	"github.com/oneacre/farmbooks/internal/infrastructure/metrics"
	"github.com/oneacre/farmbooks/internal/infrastructure/postgres"
	"github.com/oneacre/farmbooks/internal/infrastructure/redis"
	"github.com/oneacre/farmbooks/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	m := metrics.New()

	// Open the collection store
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open collection store")
	}
	defer closeStore()
	store = instrumented.Wrap(store, m)
	appLogger.Info().Str("backend", cfg.StoreBackend).Msg("collection store ready")

	// Load record collections
	txRepo, err := record.NewTransactionRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load transactions")
	}
	catRepo, err := record.NewCategoryRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load categories")
	}
	herdRepo, err := record.NewHerdRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load animal ledger")
	}
	assetRepo, err := record.NewAssetRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load assets")
	}
	liabRepo, err := record.NewLiabilityRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load liabilities")
	}
	invRepo, err := record.NewInventoryRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load inventory")
	}
	profileRepo, err := record.NewProfileRepository(ctx, store, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to load profile")
	}
	idGen := record.NewULIDGenerator()

	// Optional advice client
	var adviceClient usecase.AdviceClient
	if cfg.AdvisorEnabled() {
		adviceClient = advisor.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel,
			advisor.WithTimeout(cfg.AdviceTimeout))
		appLogger.Info().Str("model", cfg.GeminiModel).Msg("advisor enabled")
	} else {
		appLogger.Warn().Msg("advisor api key missing, advice disabled")
	}

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txRepo, catRepo, idGen, m)
	herdUC := usecase.NewHerdUseCase(herdRepo, idGen, m)
	assetUC := usecase.NewAssetUseCase(assetRepo, herdRepo, idGen, m)
	liabUC := usecase.NewLiabilityUseCase(liabRepo, idGen, m)
	invUC := usecase.NewInventoryUseCase(invRepo, idGen, m)
	reportUC := usecase.NewReportUseCase(txRepo, catRepo, herdRepo, assetRepo, liabRepo)
	advisorUC := usecase.NewAdvisorUseCase(txRepo, catRepo, adviceClient, appLogger, m)
	profileUC := usecase.NewProfileUseCase(profileRepo)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(ledgerUC),
		CategoryHandler:    handler.NewCategoryHandler(ledgerUC),
		SummaryHandler:     handler.NewSummaryHandler(ledgerUC),
		HerdHandler:        handler.NewHerdHandler(herdUC),
		AssetHandler:       handler.NewAssetHandler(assetUC),
		LiabilityHandler:   handler.NewLiabilityHandler(liabUC),
		InventoryHandler:   handler.NewInventoryHandler(invUC),
		ReportHandler:      handler.NewReportHandler(reportUC, m),
		AdviceHandler:      handler.NewAdviceHandler(advisorUC),
		ProfileHandler:     handler.NewProfileHandler(profileUC),
		HealthHandler:      handler.NewHealthHandler(store),
		Logger:             appLogger,
		Metrics:            m,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}

// openStore builds the configured KV backend. The returned closer is
// safe to call once at shutdown.
func openStore(ctx context.Context, cfg *config.Config) (usecase.KV, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		store, err := sqlitekv.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisStore.NewStore(client), func() { client.Close() }, nil

	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			return nil, nil, err
		}
		return postgresStore.NewStore(pool), pool.Close, nil

	case config.BackendMemory:
		return memory.NewKV(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
