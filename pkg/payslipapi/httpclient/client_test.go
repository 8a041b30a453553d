package httpclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"holerite/pkg/domain"
	"holerite/pkg/payslipapi/httpclient"
	"holerite/pkg/serrors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *httpclient.Client {
	return httpclient.New(&http.Client{Transport: fn}, "http://payslips.local/", "test-token")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestProcess_MultipartBody(t *testing.T) {
	pdf := []byte("%PDF-1.4 test")

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "http://payslips.local/api/v1/payslips/process", r.URL.String())
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		fields := map[string]string{}
		mr := multipart.NewReader(r.Body, params["boundary"])
		for {
			p, err := mr.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			b, err := io.ReadAll(p)
			require.NoError(t, err)

			if p.FormName() == "pdfFile" {
				require.Equal(t, "holerite.pdf", p.FileName())
				require.Equal(t, "application/pdf", p.Header.Get("Content-Type"))
				require.Equal(t, pdf, b)

				continue
			}
			fields[p.FormName()] = string(b)
		}

		require.Equal(t, map[string]string{
			"unidade":   "MATRIZ",
			"subject":   "Holerite",
			"message":   "Olá {{nome}}",
			"batchSize": "25",
			"dryRun":    "true",
		}, fields)

		return jsonResponse(http.StatusOK, `{"unidade":"MATRIZ","dryRun":true,"total":3,"planned":3,"batches":1}`), nil
	})

	res, status, err := c.Process(context.Background(), domain.ProcessRequest{
		Unidade:   "MATRIZ",
		Subject:   "Holerite",
		Message:   "Olá {{nome}}",
		BatchSize: 25,
		DryRun:    true,
	}, domain.PayslipFile{Filename: "/tmp/pdfs/holerite.pdf", Content: pdf})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 3, res.Planned)
	require.True(t, res.DryRun)
}

func TestProcess_ErrorResponses(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   error
		msg    string
	}{
		{"api error shape", http.StatusBadRequest, `{"code":"BAD_REQUEST","error":"unidade is required"}`,
			serrors.ErrBadRequest, "status 400: unidade is required"},
		{"plain text", http.StatusNotFound, "no such unidade\n", serrors.ErrNotFound, "status 404: no such unidade"},
		{"unauthorized", http.StatusUnauthorized, "", serrors.ErrUnauthorized, "status 401: Unauthorized"},
		{"rate limited", http.StatusTooManyRequests, `{}`, serrors.ErrRateLimited, "status 429: {}"},
		{"unknown", http.StatusTeapot, "teapot", serrors.ErrInternal, "status 418: teapot"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(tc.status, tc.body), nil
			})

			_, status, err := c.Process(context.Background(),
				domain.ProcessRequest{Unidade: "MATRIZ"},
				domain.PayslipFile{Filename: "a.pdf", Content: []byte("%PDF-")})
			require.Equal(t, tc.status, status)
			require.ErrorIs(t, err, tc.kind)
			require.EqualError(t, err, tc.msg)
		})
	}
}

func TestProcess_ErrorKeepsRawBody(t *testing.T) {
	body := `{"code":"BAD_REQUEST","error":"invalid","details":["Bruno"]}`
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadRequest, body), nil
	})

	_, _, err := c.Process(context.Background(),
		domain.ProcessRequest{Unidade: "MATRIZ"},
		domain.PayslipFile{Filename: "a.pdf", Content: []byte("%PDF-")})

	var respErr *httpclient.ResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	require.JSONEq(t, body, string(respErr.Body))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(err))
}

func TestProcess_TransportError(t *testing.T) {
	c := newTestClient(func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, status, err := c.Process(context.Background(), domain.ProcessRequest{Unidade: "X"}, domain.PayslipFile{})
	require.Zero(t, status)
	require.ErrorContains(t, err, "connection refused")
}

func TestFailedNotifications_Query(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/notifications/failed", r.URL.Path)
		require.Equal(t, "FILIAL 1", r.URL.Query().Get("unidade"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))

		return jsonResponse(http.StatusOK, `{"total":1,"items":[{"id":"6f1c7a52-9a43-4a55-8f0b-1c2d3e4f5a6b","to":"a@b.com","status":"failed","errorMessage":"bounced"}]}`), nil
	})

	res, err := c.FailedNotifications(context.Background(), "FILIAL 1", 10)
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	require.Equal(t, "a@b.com", res.Items[0].Email)
	require.Equal(t, "bounced", res.Items[0].LastError)
}

func TestReprocess_JSONBody(t *testing.T) {
	incremental := false

	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "/api/v1/notifications/reprocess", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, map[string]any{
			"limit":            float64(5),
			"maxRetries":       float64(2),
			"incrementalRetry": false,
			"dryRun":           true,
		}, got)

		return jsonResponse(http.StatusOK, `{"processed":0,"failedAgain":0,"totalSelected":2,"dryRun":true,"items":[],"message":"dry run completed"}`), nil
	})

	res, err := c.Reprocess(context.Background(), domain.ReprocessRequest{
		Limit:            5,
		MaxRetries:       2,
		IncrementalRetry: &incremental,
		DryRun:           true,
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalSelected)
	require.Equal(t, "dry run completed", res.Message)
}

func TestHealth(t *testing.T) {
	c := httpclient.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Empty(t, r.Header.Get("Authorization"))
		require.Equal(t, "/api/v1/health", r.URL.Path)

		return jsonResponse(http.StatusOK, `{"status":"ok","timestamp":"2025-09-01T12:00:00Z"}`), nil
	})}, "http://payslips.local", "")

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", h.Status)
}
