package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/config"
	"github.com/finanzas-gatunas/gatunas-backend/internal/repository/postgres"
	"github.com/finanzas-gatunas/gatunas-backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// The scheduler advances overdue recurring payments on a fixed interval so
// their due dates stay current without anyone opening the app. Running it is
// optional; the API exposes the same advance operation explicitly.
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Connect to database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to ping database")
	}
	log.Info().Msg("Connected to database")

	recurringRepo := postgres.NewRecurringPaymentRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	recurringService := service.NewRecurringService(recurringRepo, categoryRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info().Dur("interval", cfg.SchedulerInterval).Msg("Scheduler configured")

	ticker := time.NewTicker(cfg.SchedulerInterval)
	defer ticker.Stop()

	// Run one pass on startup so a long-stopped scheduler catches up
	// immediately instead of waiting a full interval.
	runPass(recurringService, time.Now())

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				runPass(recurringService, now)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down scheduler...")
	cancel()
	log.Info().Msg("Scheduler exited")
}

func runPass(recurringService *service.RecurringService, now time.Time) {
	advanced, err := recurringService.AdvanceDuePayments(now)
	if err != nil {
		log.Error().Err(err).Msg("Failed to advance due payments")
		return
	}
	if advanced > 0 {
		log.Info().Int("advanced", advanced).Msg("Advanced due recurring payments")
	}
}
