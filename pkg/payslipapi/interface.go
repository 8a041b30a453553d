// Package payslipapi defines the client side of the payslip HTTP API used by
// the send and reprocess commands.
package payslipapi

import (
	"context"
	"holerite/pkg/domain"
)

// Client is the abstraction over the payslip API. Implementations never retry:
// every call issues exactly one request.
//
//go:generate mockgen -package mockpayslipapi -source=interface.go -destination=mock/mockpayslipapi.go *
type Client interface {
	// Process uploads the PDF with the request fields. It returns the HTTP
	// status code next to the decoded result; the status is set on errors
	// returned by the server too.
	Process(ctx context.Context, req domain.ProcessRequest, file domain.PayslipFile) (*domain.ProcessResult, int, error)
	// FailedNotifications lists failed notifications, optionally of one unidade.
	FailedNotifications(ctx context.Context, unidade string, limit uint) (*domain.FailedNotifications, error)
	// Reprocess asks the server to send failed notifications again.
	Reprocess(ctx context.Context, req domain.ReprocessRequest) (*domain.ReprocessResult, error)
	// Health reports whether the payslip service is up.
	Health(ctx context.Context) (*domain.Health, error)
}
