package mailer

import (
	"context"
	"holerite/pkg/logger"

	"go.uber.org/zap"
)

// bodyPreviewLen is how much of the body LogMailer writes to the log.
const bodyPreviewLen = 100

// LogMailer only logs the messages it is asked to send. It never fails.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(ctx context.Context, msg Message) error {
	preview := []rune(msg.Text)
	if len(preview) > bodyPreviewLen {
		preview = append(preview[:bodyPreviewLen], []rune("...")...)
	}

	filenames := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		filenames = append(filenames, a.Filename)
	}

	logger.Info(ctx, "e-mail not sent, log mailer in use",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", string(preview)),
		zap.Strings("attachments", filenames))

	return nil
}

var _ Mailer = (*LogMailer)(nil)
