package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"holerite/internal/api/handler/v1handler"
	"holerite/pkg/domain"
	"holerite/pkg/payslipapi/httpclient"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListFailedNotifications(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	id := domain.NotificationID(uuid.New())
	mock.EXPECT().FailedNotifications(gomock.Any(), "FILIAL 1", uint(10)).Return(&domain.FailedNotifications{
		Total: 1,
		Items: []domain.Notification{{
			ID:        id,
			Email:     "ana@example.com",
			Status:    domain.NotificationStatusFailed,
			LastError: "bounced",
		}},
	}, nil)

	res, err := httpclient.New(srv.Client(), srv.URL, "").FailedNotifications(context.Background(), "FILIAL 1", 10)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	require.Equal(t, id, res.Items[0].ID)
	require.Equal(t, "bounced", res.Items[0].LastError)
}

func TestListFailedNotifications_BadLimit(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	resp, err := srv.Client().Get(srv.URL + "/api/v1/notifications/failed?limit=-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReprocessNotifications(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	incremental := false
	mock.EXPECT().Reprocess(gomock.Any(), domain.ReprocessRequest{
		Limit:            5,
		MaxRetries:       2,
		IncrementalRetry: &incremental,
		DryRun:           true,
	}).Return(&domain.ReprocessResult{TotalSelected: 2, DryRun: true, Message: "dry run completed"}, nil)

	res, err := httpclient.New(srv.Client(), srv.URL, "").Reprocess(context.Background(), domain.ReprocessRequest{
		Limit:            5,
		MaxRetries:       2,
		IncrementalRetry: &incremental,
		DryRun:           true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalSelected)
	require.Equal(t, "dry run completed", res.Message)
}

func TestReprocessNotifications_EmptyBody(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Reprocess(gomock.Any(), domain.ReprocessRequest{}).
		Return(&domain.ReprocessResult{Message: "no failed notifications found"}, nil)

	resp, err := srv.Client().Post(srv.URL+"/api/v1/notifications/reprocess", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReprocessNotifications_UnknownField(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	resp, err := srv.Client().Post(srv.URL+"/api/v1/notifications/reprocess", "application/json",
		bytes.NewBufferString(`{"limt":5}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListUnidadesAndColaboradores(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Unidades(gomock.Any()).Return(nil, nil)
	mock.EXPECT().Colaboradores(gomock.Any(), "MATRIZ").Return([]domain.Colaborador{
		{Nome: "ANA SOUZA", Email: "ana@example.com", Unidade: "MATRIZ"},
	}, nil)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/unidades")
	require.NoError(t, err)
	var unidades v1handler.UnidadeList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&unidades))
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, v1handler.UnidadeList{Total: 0, Items: []string{}}, unidades)

	resp, err = srv.Client().Get(srv.URL + "/api/v1/colaboradores?unidade=MATRIZ")
	require.NoError(t, err)
	var colaboradores v1handler.ColaboradorList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&colaboradores))
	_ = resp.Body.Close()
	require.Equal(t, 1, colaboradores.Total)
	require.Equal(t, "ANA SOUZA", colaboradores.Items[0].Nome)
}

func TestListNotifications(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Notifications(gomock.Any(), uint(0)).Return(&domain.NotificationList{
		Total: 1,
		Items: []domain.Notification{{Email: "ana@example.com", Status: domain.NotificationStatusSent}},
	}, nil)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/notifications")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list domain.NotificationList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, domain.NotificationStatusSent, list.Items[0].Status)
}

func TestCreateNotification(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	at := time.Date(2030, 1, 2, 9, 0, 0, 0, time.UTC)
	id := domain.NotificationID(uuid.New())
	mock.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.NotificationRequest) (*domain.Notification, error) {
			require.Equal(t, "ana@example.com", req.Email)
			require.Equal(t, "Aviso", req.Subject)
			require.True(t, at.Equal(*req.ScheduledAt))

			return &domain.Notification{
				ID:          id,
				Email:       req.Email,
				Subject:     req.Subject,
				Status:      domain.NotificationStatusPending,
				ScheduledAt: at,
			}, nil
		},
	)

	resp, err := srv.Client().Post(srv.URL+"/api/v1/notifications", "application/json",
		bytes.NewBufferString(`{"email":"ana@example.com","subject":"Aviso","scheduledAt":"2030-01-02T09:00:00Z"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var n domain.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&n))
	require.Equal(t, id, n.ID)
	require.Equal(t, domain.NotificationStatusPending, n.Status)
}
