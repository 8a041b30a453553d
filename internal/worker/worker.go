package worker

import (
	"context"
	"fmt"
	"holerite/internal/config"
	"holerite/internal/payslip"
	"holerite/pkg/logger"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the delivery workers.
type Options struct {
	// MaxWorkers is the number of jobs of the default queue worked concurrently.
	MaxWorkers int
	// SendRate caps deliveries per second across all workers. Zero disables the cap.
	SendRate float64
	// RateLimitSnooze is how long deliveries pause after the mail provider throttles.
	RateLimitSnooze time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		SendRate:        cfg.Worker.SendRate,
		RateLimitSnooze: cfg.Worker.RateLimitSnooze,
	}
}

// Start creates a River client working payslip deliveries and starts it.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service payslip.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewMailWorker(service, options))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
