package worker

import (
	"context"
	"fmt"
	"holerite/internal/config"
	"holerite/internal/payslip"
	"holerite/pkg/domain"
	"holerite/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReprocessOptions configure the scheduled reprocess of failed notifications.
type ReprocessOptions struct {
	// Schedule is a standard five field cron spec or a descriptor like "@every 30m".
	Schedule string
	// Limit caps how many failed notifications one run retries.
	Limit int
	// MaxRetryCount skips notifications already retried this many times.
	MaxRetryCount int
	// Timeout bounds a single run.
	Timeout time.Duration
}

// NewReprocessOptions constructs a ReprocessOptions value from the provided application config.
func NewReprocessOptions(cfg *config.Config) ReprocessOptions {
	return ReprocessOptions{
		Schedule:      cfg.Worker.ReprocessSchedule,
		Limit:         cfg.Worker.ReprocessLimit,
		MaxRetryCount: cfg.Worker.ReprocessMaxRetryCount,
		Timeout:       30 * time.Minute, //nolint: mnd
	}
}

// cronLogger adapts the context zap logger to cron.Logger.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}

// StartReprocessScheduler runs Service.Reprocess on the configured schedule.
// Runs never overlap: a tick that fires while the previous run is still going
// is skipped. It returns nil without starting anything when no schedule is set.
// The caller stops the returned scheduler.
func StartReprocessScheduler(ctx context.Context,
	service payslip.Service,
	options ReprocessOptions) (*cron.Cron, error) {
	if options.Schedule == "" {
		return nil, nil //nolint: nilnil
	}

	log := cronLogger{l: logger.Get(ctx).Sugar()}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)

	if _, err := c.AddFunc(options.Schedule, func() { runReprocess(ctx, service, options) }); err != nil {
		return nil, fmt.Errorf("could not schedule reprocess %q: %w", options.Schedule, err)
	}

	c.Start()
	logger.Info(ctx, "reprocess scheduled", zap.String("schedule", options.Schedule))

	return c, nil
}

func runReprocess(ctx context.Context, service payslip.Service, options ReprocessOptions) {
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	logger.Info(ctx, "starting scheduled reprocess")
	res, err := service.Reprocess(ctx, domain.ReprocessRequest{
		Limit:         options.Limit,
		MaxRetryCount: options.MaxRetryCount,
	})
	if err != nil {
		logger.Error(ctx, "scheduled reprocess failed", zap.Error(err))

		return
	}

	logger.Info(ctx, "scheduled reprocess finished",
		zap.Int("selected", res.TotalSelected),
		zap.Int("processed", res.Processed),
		zap.Int("failedAgain", res.FailedAgain))
}
