package storage

import (
	"context"
	"holerite/pkg/domain"
)

// NotificationUpdates describes a set of optional fields that can be applied to
// an existing notification. updated_at is always bumped.
type NotificationUpdates struct {
	// Status is the new status. An empty status leaves it unchanged. Moving to
	// sent also stamps sent_at.
	Status domain.NotificationStatus
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// IncrementRetry adds one to retry_count.
	IncrementRetry bool
}

// FailedFilter narrows the failed notifications returned by FailedNotifications.
type FailedFilter struct {
	// Unidade, when set, keeps only notifications of that unidade.
	Unidade string
	// IDs, when set, keeps only the listed notifications.
	IDs []domain.NotificationID
	// Limit caps the number of rows. Zero means no limit.
	Limit uint
	// MaxRetryCount, when positive, skips notifications with retry_count >= MaxRetryCount.
	MaxRetryCount int
}

// NotificationStorage defines persistence of payslip files and the
// notifications that deliver them.
type NotificationStorage interface {
	// StorePayslipFile stores the PDF and returns it with its generated ID.
	StorePayslipFile(ctx context.Context, file domain.PayslipFile) (*domain.PayslipFile, error)
	// PayslipFileByID fetches a stored PDF. Returns nil when not found.
	PayslipFileByID(ctx context.Context, id domain.FileID) (*domain.PayslipFile, error)
	// StoreNotifications inserts one or more notifications and returns the stored
	// rows including generated fields. The order of the returned rows is not
	// guaranteed to follow the input.
	StoreNotifications(ctx context.Context, notifications ...domain.Notification) ([]domain.Notification, error)
	// NotificationByID fetches a notification. Returns nil when not found.
	NotificationByID(ctx context.Context, id domain.NotificationID) (*domain.Notification, error)
	// UpdateNotification applies updates to a notification and returns the
	// updated row, or nil when not found.
	UpdateNotification(ctx context.Context,
		id domain.NotificationID,
		updates NotificationUpdates) (*domain.Notification, error)
	// FailedNotifications returns failed notifications matching the filter,
	// least recently updated first, together with the total count of matches
	// ignoring the limit.
	FailedNotifications(ctx context.Context, filter FailedFilter) ([]domain.Notification, int64, error)
	// Notifications returns the newest notifications, at most limit of them.
	Notifications(ctx context.Context, limit uint) ([]domain.Notification, error)
}
