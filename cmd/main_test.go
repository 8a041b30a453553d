package main

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"holerite/internal/api/handler/v1handler"
	"holerite/internal/config"
	"holerite/pkg/logger"
	"holerite/pkg/mailer"
	"holerite/pkg/mailer/sendgrid"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// run executes the root command with args against cfg and returns its stdout.
func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCommand(cfg)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = 5 * time.Second

	return cfg
}

func TestSendCommand(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "matriz.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 test"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/payslips/process", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "MATRIZ", r.FormValue("unidade"))
		require.Equal(t, "true", r.FormValue("dryRun"))
		require.Equal(t, "10", r.FormValue("batchSize"))
		_, fh, err := r.FormFile("pdfFile")
		require.NoError(t, err)
		require.Equal(t, "matriz.pdf", fh.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"unidade":"MATRIZ","dryRun":true,"total":2,"planned":2,"batches":1}`))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL),
		"send", "--pdf", pdfPath, "--unidade", "MATRIZ", "--dry-run", "--batch-size", "10", "--output", "yaml")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "status: 200\n"), out)
	require.Contains(t, out, "unidade: MATRIZ")
	require.Contains(t, out, "planned: 2")
}

func TestSendCommand_ErrorStatus(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "matriz.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 test"), 0o600))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"BAD_REQUEST","error":"requires confirm=YES"}`))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "send", "--pdf", pdfPath, "--unidade", "MATRIZ")
	require.EqualError(t, err, "status 400: requires confirm=YES")
	require.Equal(t, "status: 400\n"+`{"code":"BAD_REQUEST","error":"requires confirm=YES"}`+"\n", out)
}

func TestSendCommand_ErrorBodyKeepsExtraFields(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "matriz.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4 test"), 0o600))

	body := `{"code":"BAD_REQUEST","error":"invalid","details":["Bruno","Carla"]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Empty(t, r.FormValue("unidade"))
		require.Equal(t, "rh@example.com", r.FormValue("testRecipient"))

		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "send", "--pdf", pdfPath, "--test-recipient", "rh@example.com")
	require.EqualError(t, err, "status 400: invalid")
	require.Contains(t, out, `"details":["Bruno","Carla"]`)
}

func TestSendCommand_MissingPDF(t *testing.T) {
	_, err := run(t, testConfig("http://127.0.0.1:1"),
		"send", "--pdf", filepath.Join(t.TempDir(), "nope.pdf"), "--unidade", "MATRIZ")
	require.ErrorContains(t, err, "could not read pdf")
}

func TestReprocessCommand_DryRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, map[string]any{
			"limit":            float64(5),
			"ids":              []any{"6f1c7a52-9a43-4a55-8f0b-1c2d3e4f5a6b"},
			"incrementalRetry": false,
			"dryRun":           true,
		}, req)

		_, _ = w.Write([]byte(`{"totalSelected":1,"dryRun":true,"message":"dry run completed",` +
			`"items":[{"id":"6f1c7a52-9a43-4a55-8f0b-1c2d3e4f5a6b","to":"ana@example.com","subject":"Holerite"}]}`))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "reprocess", "--dry-run", "--limit", "5",
		"--id", "6f1c7a52-9a43-4a55-8f0b-1c2d3e4f5a6b", "--incremental-retry=false")
	require.NoError(t, err)
	require.Contains(t, out, "1 failed notification(s) selected\n")
	require.Contains(t, out, "  6f1c7a52-9a43-4a55-8f0b-1c2d3e4f5a6b  ana@example.com  Holerite\n")
	require.Contains(t, out, `"message": "dry run completed"`)
}

func TestReprocessCommand_InvalidID(t *testing.T) {
	_, err := run(t, testConfig("http://127.0.0.1:1"), "reprocess", "--id", "42")
	require.ErrorContains(t, err, `invalid notification id "42"`)
}

func TestCheckCommand_API(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","timestamp":"2025-09-01T12:00:00Z"}`))
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "check", "--skip-db")
	require.NoError(t, err)

	var res CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.True(t, res.API.OK)
	require.Equal(t, "ok", res.API.Status)
}

func TestCheckCommand_APIDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	out, err := run(t, testConfig(srv.URL), "check", "--skip-db")
	require.Error(t, err)
	require.Contains(t, out, `"ok": false`)
}

func TestPrintOutput_UnsupportedFormat(t *testing.T) {
	_, err := run(t, testConfig("http://127.0.0.1:1"), "check", "--skip-db", "--skip-api", "--output", "xml")
	require.EqualError(t, err, `unsupported output format "xml"`)
}

func TestJWTCommand_TokenIsAcceptedByAPI(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	cfg := testConfig("")
	cfg.JWT.PrivateKey = string(privPEM)
	out, err := run(t, cfg, "jwt", "--subject", "rh-operator", "--ttl", "1h")
	require.NoError(t, err)

	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: string(pubPEM)})
	require.NoError(t, err)
	ctx, err := sec.HandleBearerAuth(context.Background(), strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "rh-operator", v1handler.GetSubjectFromContext(ctx))
}

func TestJWTCommand_InvalidKey(t *testing.T) {
	cfg := testConfig("")
	cfg.JWT.PrivateKey = "nope"
	_, err := run(t, cfg, "jwt", "--subject", "rh-operator")
	require.ErrorContains(t, err, "could not parse RSA private key")
}

func TestNewMailer(t *testing.T) {
	cfg := testConfig("")

	m, err := newMailer(cfg)
	require.NoError(t, err)
	require.IsType(t, &mailer.LogMailer{}, m)

	cfg.Mail.Provider = "sendgrid"
	_, err = newMailer(cfg)
	require.Error(t, err)

	cfg.Mail.SendGridAPIKey = "SG.test"
	m, err = newMailer(cfg)
	require.NoError(t, err)
	require.IsType(t, &sendgrid.Mailer{}, m)

	cfg.Mail.Provider = "smtp"
	_, err = newMailer(cfg)
	require.EqualError(t, err, `unknown mail provider "smtp"`)
}
