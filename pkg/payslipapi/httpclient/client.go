// Package httpclient provides a payslipapi.Client implementation that talks
// to the payslip HTTP API.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/payslipapi"
	"holerite/pkg/serrors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
)

const pdfContentType = "application/pdf"

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`) //nolint: gochecknoglobals

// Client talks to the payslip REST API and fulfills the payslipapi.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API address without the /api/v1 prefix
	token      string       // token is sent as a bearer token when not empty
}

// Process uploads the payslip PDF as multipart form data. The file part is
// named pdfFile and always carries an application/pdf content type.
func (c *Client) Process(ctx context.Context,
	req domain.ProcessRequest,
	file domain.PayslipFile) (*domain.ProcessResult, int, error) {
	body, contentType, err := processForm(req, file)
	if err != nil {
		return nil, 0, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/payslips/process", nil, body)
	if err != nil {
		return nil, 0, err
	}
	httpReq.Header.Set("Content-Type", contentType)

	var out domain.ProcessResult
	status, err := c.do(httpReq, &out)
	if err != nil {
		return nil, status, err
	}

	return &out, status, nil
}

// processForm encodes req and file as a multipart body. Optional fields are
// only written when set.
func processForm(req domain.ProcessRequest, file domain.PayslipFile) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdfFile"; filename="%s"`,
		quoteEscaper.Replace(filepath.Base(file.Filename))))
	h.Set("Content-Type", pdfContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("could not create file part: %w", err)
	}
	if _, err := part.Write(file.Content); err != nil {
		return nil, "", fmt.Errorf("could not write file part: %w", err)
	}

	fields := []struct {
		name, value string
		set         bool
	}{
		{"unidade", req.Unidade, true},
		{"subject", req.Subject, req.Subject != ""},
		{"message", req.Message, req.Message != ""},
		{"confirm", req.Confirm, req.Confirm != ""},
		{"batchSize", strconv.Itoa(req.BatchSize), req.BatchSize > 0},
		{"dryRun", strconv.FormatBool(req.DryRun), req.DryRun},
		{"testRecipient", req.TestRecipient, req.TestRecipient != ""},
	}
	for _, f := range fields {
		if !f.set {
			continue
		}
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("could not write field %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("could not close multipart body: %w", err)
	}

	return body, w.FormDataContentType(), nil
}

// FailedNotifications lists failed notifications.
func (c *Client) FailedNotifications(ctx context.Context,
	unidade string,
	limit uint) (*domain.FailedNotifications, error) {
	q := url.Values{}
	if unidade != "" {
		q.Set("unidade", unidade)
	}
	if limit > 0 {
		q.Set("limit", strconv.FormatUint(uint64(limit), 10))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/notifications/failed", q, nil)
	if err != nil {
		return nil, err
	}

	var out domain.FailedNotifications
	if _, err := c.do(req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Reprocess posts the reprocess request as JSON.
func (c *Client) Reprocess(ctx context.Context, reprocessReq domain.ReprocessRequest) (*domain.ReprocessResult, error) {
	b, err := json.Marshal(reprocessReq)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/notifications/reprocess", nil, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out domain.ReprocessResult
	if _, err := c.do(req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Health calls the health endpoint.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var out domain.Health
	if _, err := c.do(req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) newRequest(ctx context.Context,
	method, path string,
	query url.Values,
	body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do sends req and decodes a 2xx JSON body into out. Other statuses become a
// semantic error of the matching kind.
func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, responseError(resp.StatusCode, b)
	}

	if err := json.Unmarshal(b, out); err != nil {
		return resp.StatusCode, fmt.Errorf("could not decode response: %w", err)
	}

	return resp.StatusCode, nil
}

// ResponseError is returned for a non-2xx response. It matches the semantic
// kind of the status with errors.Is and keeps the raw body for callers that
// want more than the error field.
type ResponseError struct {
	StatusCode int
	Body       []byte
	err        error
}

func (e *ResponseError) Error() string { return e.err.Error() }

func (e *ResponseError) Unwrap() error { return e.err }

// responseError builds the error of a non-2xx response from the server's
// error field, or the raw body when it is not the API error shape.
func responseError(status int, body []byte) error {
	var apiErr struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	return &ResponseError{
		StatusCode: status,
		Body:       body,
		err:        serrors.With(serrors.KindFromStatus(status), "status %d: %s", status, msg),
	}
}

// Ensure Client conforms to the payslipapi.Client interface at compile time.
var _ payslipapi.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to reach the API
// at baseURL. token may be empty when the server does not require auth.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}
