// Package payslip plans, queues and delivers payslip e-mails to the
// colaboradores of a unidade, and retries the ones that failed.
package payslip

import (
	"context"
	"holerite/pkg/domain"
)

//go:generate mockgen -package mockpayslip -source=interface.go -destination=mock/mockpayslip.go *
type Service interface {
	// Process plans one e-mail per eligible colaborador of req.Unidade and, unless
	// it is a dry run, stores the PDF and queues the deliveries in batches.
	Process(ctx context.Context, req domain.ProcessRequest, file domain.PayslipFile) (*domain.ProcessResult, error)
	// Deliver sends one queued notification. lastAttempt tells whether a failure
	// should mark the notification as failed.
	Deliver(ctx context.Context, id domain.NotificationID, lastAttempt bool) error
	FailedNotifications(ctx context.Context, unidade string, limit uint) (*domain.FailedNotifications, error)
	// Reprocess sends failed notifications again, synchronously.
	Reprocess(ctx context.Context, req domain.ReprocessRequest) (*domain.ReprocessResult, error)
	Unidades(ctx context.Context) ([]string, error)
	// Colaboradores lists colaboradores, optionally filtered by unidade.
	Colaboradores(ctx context.Context, unidade string) ([]domain.Colaborador, error)
	// CreateColaborador adds a colaborador. A taken e-mail is a conflict.
	CreateColaborador(ctx context.Context, input domain.ColaboradorInput) (*domain.Colaborador, error)
	UpdateColaborador(ctx context.Context,
		id domain.ColaboradorID,
		patch domain.ColaboradorPatch) (*domain.Colaborador, error)
	DeleteColaborador(ctx context.Context, id domain.ColaboradorID) error
	// History pages through the record of real sends, newest first. page starts at 1.
	History(ctx context.Context, unidade string, page, limit uint) (*domain.SendHistoryPage, error)
	// Notifications lists the newest notifications of any status.
	Notifications(ctx context.Context, limit uint) (*domain.NotificationList, error)
	// CreateNotification queues a standalone e-mail without attachment.
	CreateNotification(ctx context.Context, req domain.NotificationRequest) (*domain.Notification, error)
}
