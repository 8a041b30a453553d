package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"holerite/internal/api/handler/v1handler"
	"holerite/pkg/domain"
	"holerite/pkg/serrors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func doJSON(t *testing.T, client *http.Client, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp, out
}

func TestCreateColaborador(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	id := domain.ColaboradorID(uuid.New())
	input := domain.ColaboradorInput{Nome: "ANA", Email: "ana@example.com", Unidade: "MATRIZ"}
	gomock.InOrder(
		mock.EXPECT().CreateColaborador(gomock.Any(), input).
			Return(&domain.Colaborador{ID: id, Nome: "ANA", Email: "ana@example.com", Unidade: "MATRIZ"}, nil),
		mock.EXPECT().CreateColaborador(gomock.Any(), input).
			Return(nil, serrors.With(serrors.ErrConflict, "colaborador with e-mail %q already exists", input.Email)),
	)

	body := `{"nome":"ANA","email":"ana@example.com","unidade":"MATRIZ"}`
	resp, out := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/admin/colaboradores", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, id.String(), out["id"])

	resp, out = doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/admin/colaboradores", body)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "CONFLICT", out["code"])
	require.Contains(t, out["error"], "already exists")
}

func TestCreateColaborador_EmptyBody(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	resp, out := doJSON(t, srv.Client(), http.MethodPost, srv.URL+"/api/v1/admin/colaboradores", "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "BAD_REQUEST", out["code"])
}

func TestUpdateColaborador(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	id := domain.ColaboradorID(uuid.New())
	mock.EXPECT().UpdateColaborador(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ColaboradorID, p domain.ColaboradorPatch) (*domain.Colaborador, error) {
			require.Nil(t, p.Nome)
			require.Equal(t, "FILIAL", *p.Unidade)

			return &domain.Colaborador{ID: id, Nome: "ANA", Email: "ana@example.com", Unidade: "FILIAL"}, nil
		},
	)

	url := srv.URL + "/api/v1/admin/colaboradores/" + id.String()
	resp, out := doJSON(t, srv.Client(), http.MethodPut, url, `{"unidade":"FILIAL"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "FILIAL", out["unidade"])

	resp, _ = doJSON(t, srv.Client(), http.MethodPut, srv.URL+"/api/v1/admin/colaboradores/42", `{"unidade":"FILIAL"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteColaborador(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	id := domain.ColaboradorID(uuid.New())
	gomock.InOrder(
		mock.EXPECT().DeleteColaborador(gomock.Any(), id).Return(nil),
		mock.EXPECT().DeleteColaborador(gomock.Any(), id).Return(serrors.With(serrors.ErrNotFound, "colaborador not found")),
	)

	url := srv.URL + "/api/v1/admin/colaboradores/" + id.String()
	resp, out := doJSON(t, srv.Client(), http.MethodDelete, url, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, map[string]any{"success": true}, out)

	resp, out = doJSON(t, srv.Client(), http.MethodDelete, url, "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "NOT_FOUND", out["code"])
}
