package mailer_test

import (
	"context"
	"holerite/pkg/logger"
	"holerite/pkg/mailer"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogMailer_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	err := mailer.NewLogMailer().Send(ctx, mailer.Message{
		To:      "ana@acme.com.br",
		Subject: "Holerite",
		Text:    strings.Repeat("a", 150),
		Attachments: []mailer.Attachment{
			{Filename: "holerite.pdf", ContentType: "application/pdf", Content: []byte("%PDF-")},
		},
	})
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	require.Equal(t, "ana@acme.com.br", fields["to"])
	require.Equal(t, "Holerite", fields["subject"])
	require.Equal(t, strings.Repeat("a", 100)+"...", fields["body"])
	require.Equal(t, []interface{}{"holerite.pdf"}, fields["attachments"])
}
