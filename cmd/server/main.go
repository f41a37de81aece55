package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/tradeledger/internal/adapter/http"
	"github.com/iho/tradeledger/internal/adapter/http/handler"
	postgresRepo "github.com/iho/tradeledger/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/tradeledger/internal/adapter/repository/redis"
	"github.com/iho/tradeledger/internal/infrastructure/config"
	"github.com/iho/tradeledger/internal/infrastructure/logger"
	"github.com/iho/tradeledger/internal/infrastructure/metrics"
	"github.com/iho/tradeledger/internal/infrastructure/postgres"
	"github.com/iho/tradeledger/internal/infrastructure/redis"
	"github.com/iho/tradeledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Run migrations if requested
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize metrics
	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	expenseRepo := postgresRepo.NewExpenseRepository(pool)
	orderRepo := postgresRepo.NewOrderRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	activityRepo := postgresRepo.NewActivityRepository(pool)
	debtRepo := postgresRepo.NewSupplierDebtRepository(pool)
	partnerRepo := postgresRepo.NewPartnerRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	activityUC := usecase.NewActivityUseCase(activityRepo, m)
	loanUC := usecase.NewLoanUseCase(usecase.LoanUseCaseDeps{
		TxManager:   txManager,
		LoanRepo:    loanRepo,
		PaymentRepo: paymentRepo,
		OrderRepo:   orderRepo,
		Partners:    partnerRepo,
		Activity:    activityUC,
		IDGen:       idGen,
		Retrier:     retrier,
		Cache:       cache,
		Metrics:     m,
	})
	expenseUC := usecase.NewExpenseUseCase(usecase.ExpenseUseCaseDeps{
		TxManager:   txManager,
		ExpenseRepo: expenseRepo,
		OrderRepo:   orderRepo,
		Activity:    activityUC,
		IDGen:       idGen,
		Cache:       cache,
		Metrics:     m,
	})
	balanceUC := usecase.NewBalanceUseCase(ledgerRepo, cache, cfg.BalanceCacheTTL, m)
	debtUC := usecase.NewDebtUseCase(debtRepo)

	// Initialize handlers
	loanHandler := handler.NewLoanHandler(loanUC)
	expenseHandler := handler.NewExpenseHandler(expenseUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	activityHandler := handler.NewActivityHandler(activityUC)
	debtHandler := handler.NewDebtHandler(debtUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LoanHandler:      loanHandler,
		ExpenseHandler:   expenseHandler,
		BalanceHandler:   balanceHandler,
		ActivityHandler:  activityHandler,
		DebtHandler:      debtHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
	})

	// Create server
	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func listenAddr(port string) string {
	return fmt.Sprintf(":%s", port)
}
