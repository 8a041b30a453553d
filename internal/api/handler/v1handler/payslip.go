package v1handler

import (
	"errors"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/serrors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// multipartMemory is how much of a multipart body is kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

// Health reports that the API is up.
func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, domain.Health{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}

// PayslipsHealth reports that the payslip routes are up.
func (h Handler) PayslipsHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, domain.Health{
		Status:    "ok",
		Service:   "payslips",
		Timestamp: time.Now().UTC(),
	})
}

// ProcessPayslip accepts a multipart upload with the PDF in pdfFile and the
// request fields alongside it. Dry runs answer 200, queued sends 202.
func (h Handler) ProcessPayslip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.options.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.options.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "upload exceeds %d bytes", maxErr.Limit))

			return
		}
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid multipart form"))

		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	req, err := processRequestFromForm(r.MultipartForm)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	file, err := payslipFileFromForm(r.MultipartForm)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	h.uploadBytes.Record(ctx, int64(len(file.Content)),
		metric.WithAttributes(attribute.Bool("dryRun", req.DryRun)))

	res, err := h.deps.Payslip.Process(ctx, req, file)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusOK
	if res.Queued > 0 {
		status = http.StatusAccepted
	}
	writeJSON(ctx, w, status, res)
}

func processRequestFromForm(form *multipart.Form) (domain.ProcessRequest, error) {
	value := func(name string) string {
		if v := form.Value[name]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}

		return ""
	}

	req := domain.ProcessRequest{
		Unidade:       value("unidade"),
		Subject:       value("subject"),
		Message:       value("message"),
		Confirm:       value("confirm"),
		TestRecipient: value("testRecipient"),
	}

	if v := value("batchSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, serrors.With(serrors.ErrBadRequest, "batchSize must be an integer, got %q", v)
		}
		req.BatchSize = n
	}
	if v := value("dryRun"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, serrors.With(serrors.ErrBadRequest, "dryRun must be a boolean, got %q", v)
		}
		req.DryRun = b
	}

	return req, nil
}

func payslipFileFromForm(form *multipart.Form) (domain.PayslipFile, error) {
	headers := form.File["pdfFile"]
	if len(headers) == 0 {
		return domain.PayslipFile{}, serrors.With(serrors.ErrBadRequest, "pdfFile is required")
	}
	fh := headers[0]

	f, err := fh.Open()
	if err != nil {
		return domain.PayslipFile{}, fmt.Errorf("could not open uploaded file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.PayslipFile{}, fmt.Errorf("could not read uploaded file: %w", err)
	}

	return domain.PayslipFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
