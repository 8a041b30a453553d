package payslip

import (
	"context"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/logger"
	"holerite/pkg/serrors"
	"holerite/pkg/storage"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	defaultNotificationsLimit = 200
	maxNotificationsLimit     = 500
)

func (s service) Notifications(ctx context.Context, limit uint) (*domain.NotificationList, error) {
	if limit == 0 {
		limit = defaultNotificationsLimit
	}
	limit = min(limit, maxNotificationsLimit)

	items, err := s.storage.Notifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %w", err)
	}
	if items == nil {
		items = []domain.Notification{}
	}

	return &domain.NotificationList{Total: len(items), Items: items}, nil
}

// CreateNotification stores a pending notification and its delivery job in one
// transaction. A future ScheduledAt holds the job until then.
func (s service) CreateNotification(ctx context.Context, req domain.NotificationRequest) (*domain.Notification, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid notification request")
	}
	if !domainAllowed(s.allowedDomains, req.Email) {
		return nil, serrors.With(serrors.ErrBadRequest, "domain of %q is not allowed", req.Email)
	}

	n := domain.Notification{
		Unidade: strings.TrimSpace(req.Unidade),
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.NotificationStatusPending,
	}
	if strings.TrimSpace(n.Subject) == "" {
		n.Subject = s.options.DefaultSubject
	}
	opts := &river.InsertOpts{}
	if req.ScheduledAt != nil && req.ScheduledAt.After(time.Now()) {
		n.ScheduledAt = *req.ScheduledAt
		opts.ScheduledAt = *req.ScheduledAt
	}

	var created *domain.Notification
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreNotifications(ctx, n)
		if err != nil {
			return fmt.Errorf("could not store notification: %w", err)
		}
		if len(stored) != 1 {
			return fmt.Errorf("stored %d notifications, expected 1", len(stored))
		}
		created = &stored[0]

		if _, err := tx.AddJobs(ctx, []river.InsertManyParams{{
			Args:       JobArgs{NotificationID: created.ID, maxAttempts: s.options.MaxAttempts},
			InsertOpts: opts,
		}}); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not queue notification: %w", err)
	}

	logger.Info(ctx, "notification queued",
		zap.String("id", created.ID.String()),
		zap.Time("scheduledAt", created.ScheduledAt))

	return created, nil
}
