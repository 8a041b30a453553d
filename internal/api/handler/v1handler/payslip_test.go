package v1handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"holerite/internal/api/handler/v1handler"
	"holerite/pkg/domain"
	"holerite/pkg/payslipapi/httpclient"
	"holerite/pkg/serrors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockpayslip "holerite/internal/payslip/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF") //nolint: gochecknoglobals

func newTestServer(t *testing.T, opts v1handler.Options) (*mockpayslip.MockService, *httptest.Server) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mock := mockpayslip.NewMockService(ctrl)

	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)

	srv := httptest.NewServer(v1handler.New(v1handler.Deps{Payslip: mock}, opts).Routes(sec))
	t.Cleanup(srv.Close)

	return mock, srv
}

func TestProcessPayslip_ThroughClient(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Process(gomock.Any(), domain.ProcessRequest{
		Unidade:       "MATRIZ",
		Subject:       "Holerite Setembro",
		Message:       "Olá {{nome}}",
		Confirm:       "YES",
		BatchSize:     25,
		TestRecipient: "rh@example.com",
	}, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ProcessRequest, file domain.PayslipFile) (*domain.ProcessResult, error) {
			require.Equal(t, "holerite.pdf", file.Filename)
			require.Equal(t, "application/pdf", file.ContentType)
			require.Equal(t, pdf, file.Content)

			return &domain.ProcessResult{Unidade: "MATRIZ", Total: 10, Queued: 1, Batches: 1}, nil
		})

	c := httpclient.New(srv.Client(), srv.URL, "")
	res, status, err := c.Process(context.Background(), domain.ProcessRequest{
		Unidade:       "MATRIZ",
		Subject:       "Holerite Setembro",
		Message:       "Olá {{nome}}",
		Confirm:       "YES",
		BatchSize:     25,
		TestRecipient: "rh@example.com",
	}, domain.PayslipFile{Filename: "./pdfs/holerite.pdf", Content: pdf})
	require.NoError(t, err)
	require.Equal(t, http.StatusAccepted, status)
	require.Equal(t, 1, res.Queued)
}

func TestProcessPayslip_DryRunIsOK(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.ProcessRequest, _ domain.PayslipFile) (*domain.ProcessResult, error) {
			require.True(t, req.DryRun)

			return &domain.ProcessResult{Unidade: req.Unidade, DryRun: true, Total: 3, Planned: 3, Batches: 1}, nil
		})

	c := httpclient.New(srv.Client(), srv.URL, "")
	res, status, err := c.Process(context.Background(),
		domain.ProcessRequest{Unidade: "MATRIZ", DryRun: true},
		domain.PayslipFile{Filename: "holerite.pdf", Content: pdf})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, res.Planned)
}

func TestProcessPayslip_ServiceErrorKind(t *testing.T) {
	mock, srv := newTestServer(t, v1handler.Options{})

	mock.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrNotFound, `no colaboradores found in unidade "X"`))

	c := httpclient.New(srv.Client(), srv.URL, "")
	_, status, err := c.Process(context.Background(),
		domain.ProcessRequest{Unidade: "X"},
		domain.PayslipFile{Filename: "holerite.pdf", Content: pdf})
	require.Equal(t, http.StatusNotFound, status)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.EqualError(t, err, `status 404: no colaboradores found in unidade "X"`)
}

func multipartBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("pdfFile", "holerite.pdf")
		require.NoError(t, err)
		_, err = part.Write(pdf)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestProcessPayslip_BadRequests(t *testing.T) {
	cases := []struct {
		name     string
		fields   map[string]string
		withFile bool
		message  string
	}{
		{"missing file", map[string]string{"unidade": "MATRIZ"}, false, "pdfFile is required"},
		{"bad batch size", map[string]string{"unidade": "MATRIZ", "batchSize": "ten"}, true,
			`batchSize must be an integer, got "ten"`},
		{"bad dry run", map[string]string{"unidade": "MATRIZ", "dryRun": "maybe"}, true,
			`dryRun must be a boolean, got "maybe"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, srv := newTestServer(t, v1handler.Options{})

			body, contentType := multipartBody(t, tc.fields, tc.withFile)
			resp, err := srv.Client().Post(srv.URL+"/api/v1/payslips/process", contentType, body)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var e v1handler.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
			require.Equal(t, "BAD_REQUEST", e.Code)
			require.Equal(t, tc.message, e.Message)
		})
	}
}

func TestProcessPayslip_NotMultipart(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{})

	resp, err := srv.Client().Post(srv.URL+"/api/v1/payslips/process", "application/json",
		bytes.NewBufferString(`{"unidade":"MATRIZ"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProcessPayslip_UploadTooLarge(t *testing.T) {
	_, srv := newTestServer(t, v1handler.Options{MaxUploadBytes: 64})

	body, contentType := multipartBody(t, map[string]string{"unidade": "MATRIZ"}, true)
	resp, err := srv.Client().Post(srv.URL+"/api/v1/payslips/process", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProcessPayslip_RequiresToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	ctrl := gomock.NewController(t)
	mock := mockpayslip.NewMockService(ctrl)
	mock.EXPECT().Process(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.ProcessResult{Unidade: "MATRIZ", DryRun: true}, nil)

	srv := httptest.NewServer(v1handler.New(v1handler.Deps{Payslip: mock}, v1handler.Options{}).Routes(sec))
	defer srv.Close()

	req := domain.ProcessRequest{Unidade: "MATRIZ", DryRun: true}
	file := domain.PayslipFile{Filename: "holerite.pdf", Content: pdf}

	_, status, err := httpclient.New(srv.Client(), srv.URL, "").Process(context.Background(), req, file)
	require.Equal(t, http.StatusUnauthorized, status)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "rh-operator", now, now.Add(time.Hour))
	_, status, err = httpclient.New(srv.Client(), srv.URL, tkn).Process(context.Background(), req, file)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
}
