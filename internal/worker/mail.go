package worker

import (
	"context"
	"errors"
	"fmt"
	"holerite/internal/payslip"
	"holerite/pkg/logger"
	"holerite/pkg/metrics"
	"holerite/pkg/serrors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultRateLimitSnooze = time.Minute

// MailWorker is a River worker that delivers one payslip notification per job
// through payslip.Service.
//
// Deliveries share two throttles. A token bucket (SendRate) spaces out calls
// to the mail provider across all concurrent jobs. When the provider answers
// with a rate limit anyway, every worker pauses until pausedUntil: jobs picked
// up during the pause are snoozed without touching the provider.
//
// Errors map to River actions: a missing notification or PDF cancels the job,
// a rate limit snoozes it unless it was the last attempt, and any other error
// is returned so River retries with its backoff.
type MailWorker struct {
	river.WorkerDefaults[payslip.JobArgs]

	service payslip.Service
	limiter *rate.Limiter
	snooze  time.Duration

	// mu protects pausedUntil.
	mu          sync.Mutex
	pausedUntil time.Time
}

// NewMailWorker constructs a MailWorker delivering through service.
func NewMailWorker(service payslip.Service, options Options) *MailWorker {
	limit := rate.Inf
	if options.SendRate > 0 {
		limit = rate.Limit(options.SendRate)
	}
	snooze := options.RateLimitSnooze
	if snooze <= 0 {
		snooze = defaultRateLimitSnooze
	}

	return &MailWorker{
		service: service,
		limiter: rate.NewLimiter(limit, 1),
		snooze:  snooze,
	}
}

// Work delivers the notification of a single job.
func (w *MailWorker) Work(ctx context.Context, job *river.Job[payslip.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("notificationID", job.Args.NotificationID.String()),
		zap.Int("attempt", job.Attempt))

	if wait := w.pausedFor(); wait > 0 {
		logger.Debug(ctx, "deliveries paused by provider rate limit", zap.Duration("wait", wait))
		metrics.Deliveries.WithLabelValues(metrics.OutcomeSkipped).Inc()

		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for send slot: %w", err)
	}

	lastAttempt := job.Attempt >= job.MaxAttempts
	err := w.service.Deliver(ctx, job.Args.NotificationID, lastAttempt)
	if err == nil {
		logger.Info(ctx, "payslip delivered")

		return nil
	}

	if errors.Is(err, serrors.ErrNotFound) {
		logger.Warn(ctx, "notification cannot be delivered", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error delivering payslip", zap.Error(err), zap.Bool("lastAttempt", lastAttempt))

	if !lastAttempt {
		metrics.Deliveries.WithLabelValues(metrics.OutcomeRetry).Inc()
		if errors.Is(err, serrors.ErrRateLimited) {
			w.pause()

			return river.JobSnooze(w.snooze) //nolint: wrapcheck
		}
	}

	return fmt.Errorf("could not deliver payslip: %w", err)
}

// pause holds every delivery for the configured snooze duration.
func (w *MailWorker) pause() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if until := time.Now().Add(w.snooze); until.After(w.pausedUntil) {
		w.pausedUntil = until
	}
}

// pausedFor returns how long deliveries are still paused.
func (w *MailWorker) pausedFor() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return time.Until(w.pausedUntil)
}
