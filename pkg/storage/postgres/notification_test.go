package postgres_test

import (
	"context"
	"holerite/pkg/domain"
	"holerite/pkg/storage"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_PayslipFiles(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StorePayslipFile(ctx, domain.PayslipFile{
		Filename: "holerite.pdf",
		Content:  []byte("%PDF-1.4 test"),
	})
	require.NoError(t, err)
	require.NotZero(t, stored.ID)
	require.Equal(t, "application/pdf", stored.ContentType)

	got, err := pgSQL.PayslipFileByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, []byte("%PDF-1.4 test"), got.Content)
	require.Equal(t, "holerite.pdf", got.Filename)

	missing, err := pgSQL.PayslipFileByID(ctx, domain.FileID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_Notifications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	file, err := pgSQL.StorePayslipFile(ctx, domain.PayslipFile{Filename: "h.pdf", Content: []byte("%PDF-")})
	require.NoError(t, err)

	newNotification := func(email, unidade string) domain.Notification {
		return domain.Notification{
			FileID:  &file.ID,
			Unidade: unidade,
			Nome:    email,
			Email:   email,
			Subject: "Holerite",
			Message: "Olá",
		}
	}

	t.Run("store empty", func(t *testing.T) {
		res, err := pgSQL.StoreNotifications(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	stored, err := pgSQL.StoreNotifications(ctx,
		newNotification("a@acme.com.br", "MATRIZ"),
		newNotification("b@acme.com.br", "MATRIZ"),
		newNotification("c@acme.com.br", "FILIAL"),
	)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	// RETURNING does not promise input order
	slices.SortFunc(stored, func(a, b domain.Notification) int { return strings.Compare(a.Email, b.Email) })
	for _, n := range stored {
		require.Equal(t, domain.NotificationStatusPending, n.Status)
		require.Zero(t, n.RetryCount)
		require.NotNil(t, n.FileID)
		require.Equal(t, file.ID, *n.FileID)
		require.Nil(t, n.ColaboradorID)
	}

	t.Run("by id", func(t *testing.T) {
		got, err := pgSQL.NotificationByID(ctx, stored[0].ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, "a@acme.com.br", got.Email)

		missing, err := pgSQL.NotificationByID(ctx, domain.NotificationID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("update to failed then sent", func(t *testing.T) {
		msg := "smtp down"
		failed, err := pgSQL.UpdateNotification(ctx, stored[0].ID, storage.NotificationUpdates{
			Status:         domain.NotificationStatusFailed,
			LastError:      &msg,
			IncrementRetry: true,
		})
		require.NoError(t, err)
		require.Equal(t, domain.NotificationStatusFailed, failed.Status)
		require.Equal(t, "smtp down", failed.LastError)
		require.Equal(t, 1, failed.RetryCount)
		require.False(t, failed.UpdatedAt.IsZero())
		require.True(t, failed.SentAt.IsZero())

		empty := ""
		sent, err := pgSQL.UpdateNotification(ctx, stored[0].ID, storage.NotificationUpdates{
			Status:    domain.NotificationStatusSent,
			LastError: &empty,
		})
		require.NoError(t, err)
		require.Equal(t, domain.NotificationStatusSent, sent.Status)
		require.Empty(t, sent.LastError)
		require.Equal(t, 1, sent.RetryCount)
		require.False(t, sent.SentAt.IsZero())
	})

	t.Run("update missing", func(t *testing.T) {
		res, err := pgSQL.UpdateNotification(ctx, domain.NotificationID(uuid.New()), storage.NotificationUpdates{})
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("failed filter", func(t *testing.T) {
		msg := "boom"
		for _, n := range stored[1:] {
			_, err := pgSQL.UpdateNotification(ctx, n.ID, storage.NotificationUpdates{
				Status:         domain.NotificationStatusFailed,
				LastError:      &msg,
				IncrementRetry: true,
			})
			require.NoError(t, err)
		}
		// bump retries of the FILIAL one
		_, err := pgSQL.UpdateNotification(ctx, stored[2].ID, storage.NotificationUpdates{IncrementRetry: true})
		require.NoError(t, err)

		all, total, err := pgSQL.FailedNotifications(ctx, storage.FailedFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		require.Len(t, all, 2)
		require.Equal(t, stored[1].ID, all[0].ID)

		limited, total, err := pgSQL.FailedNotifications(ctx, storage.FailedFilter{Limit: 1})
		require.NoError(t, err)
		require.Equal(t, int64(2), total)
		require.Len(t, limited, 1)

		byUnidade, _, err := pgSQL.FailedNotifications(ctx, storage.FailedFilter{Unidade: "FILIAL"})
		require.NoError(t, err)
		require.Len(t, byUnidade, 1)
		require.Equal(t, stored[2].ID, byUnidade[0].ID)

		byID, _, err := pgSQL.FailedNotifications(ctx, storage.FailedFilter{
			IDs: []domain.NotificationID{stored[0].ID, stored[2].ID},
		})
		require.NoError(t, err)
		require.Len(t, byID, 1)
		require.Equal(t, stored[2].ID, byID[0].ID)

		capped, _, err := pgSQL.FailedNotifications(ctx, storage.FailedFilter{MaxRetryCount: 2})
		require.NoError(t, err)
		require.Len(t, capped, 1)
		require.Equal(t, stored[1].ID, capped[0].ID)
	})
}

func TestPgSQL_NotificationList(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	at := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)
	for _, n := range []domain.Notification{
		{Email: "a@acme.com.br", Subject: "Aviso", Message: "1"},
		{Email: "b@acme.com.br", Subject: "Aviso", Message: "2", ScheduledAt: at},
	} {
		_, err := pgSQL.StoreNotifications(ctx, n)
		require.NoError(t, err)
	}

	all, err := pgSQL.Notifications(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "b@acme.com.br", all[0].Email)
	require.True(t, at.Equal(all[0].ScheduledAt))
	require.True(t, all[1].ScheduledAt.IsZero())
	require.Nil(t, all[0].FileID)

	limited, err := pgSQL.Notifications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestPgSQL_SendHistory(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	file, err := pgSQL.StorePayslipFile(ctx, domain.PayslipFile{Filename: "h.pdf", Content: []byte("%PDF-")})
	require.NoError(t, err)

	first, err := pgSQL.StoreSendHistory(ctx, domain.SendHistory{
		Unidade: "MATRIZ", Subject: "Holerite", Total: 3, Queued: 2, Skipped: 1, FileID: &file.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.Equal(t, file.ID, *first.FileID)
	require.Empty(t, first.TestRecipient)

	for _, h := range []domain.SendHistory{
		{Unidade: "MATRIZ", Subject: "Holerite", Total: 1, Queued: 1, TestRecipient: "qa@acme.com.br"},
		{Unidade: "FILIAL", Subject: "Holerite", Total: 5, Queued: 5},
	} {
		_, err := pgSQL.StoreSendHistory(ctx, h)
		require.NoError(t, err)
	}

	all, total, err := pgSQL.SendHistory(ctx, storage.HistoryFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, all, 3)

	matriz, total, err := pgSQL.SendHistory(ctx, storage.HistoryFilter{Unidade: "MATRIZ", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, matriz, 1)
	require.Equal(t, "MATRIZ", matriz[0].Unidade)
}
