package payslip_test

import (
	"context"
	"errors"
	"holerite/internal/payslip"
	"holerite/pkg/domain"
	"holerite/pkg/serrors"
	"testing"
	"time"

	mockstorage "holerite/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Notifications(t *testing.T) {
	_, st, _, s := newTestService(t, testOptions())

	gomock.InOrder(
		st.EXPECT().Notifications(gomock.Any(), uint(200)).Return([]domain.Notification{*pendingNotification(nil)}, nil),
		st.EXPECT().Notifications(gomock.Any(), uint(500)).Return(nil, nil),
	)

	list, err := s.Notifications(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)

	list, err = s.Notifications(context.Background(), 10_000)
	require.NoError(t, err)
	require.Equal(t, 0, list.Total)
	require.NotNil(t, list.Items)
}

func TestService_CreateNotification(t *testing.T) {
	t.Run("queues right away", func(t *testing.T) {
		ctrl, st, _, s := newTestService(t, testOptions())

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).DoAndReturn(storeWithIDs(t,
				func(ns []domain.Notification) {
					require.Len(t, ns, 1)
					require.Equal(t, "ana@acme.com", ns[0].Email)
					require.Equal(t, "Holerite", ns[0].Subject)
					require.Nil(t, ns[0].FileID)
					require.Equal(t, domain.NotificationStatusPending, ns[0].Status)
				}))
			tx.EXPECT().AddJobs(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, jobs []river.InsertManyParams) (int, error) {
					require.Len(t, jobs, 1)
					require.True(t, jobs[0].InsertOpts.ScheduledAt.IsZero())

					return 1, nil
				},
			)
		})

		n, err := s.CreateNotification(context.Background(), domain.NotificationRequest{
			Email:   " Ana@Acme.com",
			Message: "Reunião amanhã",
		})
		require.NoError(t, err)
		require.NotEqual(t, domain.NotificationID{}, n.ID)
	})

	t.Run("future schedule holds the job", func(t *testing.T) {
		ctrl, st, _, s := newTestService(t, testOptions())
		at := time.Now().Add(time.Hour)

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).DoAndReturn(storeWithIDs(t,
				func(ns []domain.Notification) {
					require.Equal(t, at, ns[0].ScheduledAt)
					require.Equal(t, "Aviso", ns[0].Subject)
				}))
			tx.EXPECT().AddJobs(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, jobs []river.InsertManyParams) (int, error) {
					require.Equal(t, at, jobs[0].InsertOpts.ScheduledAt)
					_, ok := jobs[0].Args.(payslip.JobArgs)
					require.True(t, ok)

					return 1, nil
				},
			)
		})

		_, err := s.CreateNotification(context.Background(), domain.NotificationRequest{
			Email:       "ana@acme.com",
			Subject:     "Aviso",
			ScheduledAt: &at,
		})
		require.NoError(t, err)
	})

	t.Run("invalid e-mail", func(t *testing.T) {
		_, _, _, s := newTestService(t, testOptions())

		_, err := s.CreateNotification(context.Background(), domain.NotificationRequest{Email: "ana"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("job failure rolls back", func(t *testing.T) {
		ctrl, st, _, s := newTestService(t, testOptions())

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().StoreNotifications(gomock.Any(), gomock.Any()).DoAndReturn(storeWithIDs(t, nil))
			tx.EXPECT().AddJobs(gomock.Any(), gomock.Any()).Return(0, errors.New("queue down"))
		})

		_, err := s.CreateNotification(context.Background(), domain.NotificationRequest{Email: "ana@acme.com"})
		require.ErrorContains(t, err, "queue down")
	})
}
