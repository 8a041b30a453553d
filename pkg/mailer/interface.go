// Package mailer defines the abstraction used to deliver payslip e-mails and a
// logging implementation for development environments.
package mailer

import "context"

// Attachment is a file sent along with an e-mail.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a single e-mail addressed to one recipient.
type Message struct {
	To          string
	ToName      string
	Subject     string
	Text        string
	Attachments []Attachment
}

// Mailer delivers e-mails through a provider.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Mailer interface {
	// Send delivers the message. Implementations return a serrors.ErrRateLimited
	// error when the provider throttles the request.
	Send(ctx context.Context, msg Message) error
}
