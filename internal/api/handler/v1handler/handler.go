// Package v1handler implements the v1 HTTP API of the payslip service.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"holerite/internal/config"
	"holerite/internal/payslip"
	"holerite/pkg/logger"
	"holerite/pkg/serrors"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Prefix is the path prefix of every v1 route.
const Prefix = "/api/v1"

// Deps bundles the services the handlers call.
type Deps struct {
	Payslip payslip.Service
}

// Options configure the v1 handlers.
type Options struct {
	// MaxUploadBytes caps the body of a payslip upload. Zero disables the cap.
	MaxUploadBytes int64
	// Meter records the handler metrics. The global meter is used when nil.
	Meter metric.Meter
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxUploadBytes: cfg.Payslip.MaxUploadBytes,
	}
}

type Handler struct {
	deps        Deps
	options     Options
	uploadBytes metric.Int64Histogram
}

func New(deps Deps, options Options) *Handler {
	meter := options.Meter
	if meter == nil {
		meter = otel.Meter("holerite/api/v1")
	}
	// the instrument name is constant, so the error is always nil
	uploadBytes, _ := meter.Int64Histogram("payslip_upload_bytes",
		metric.WithDescription("Size of uploaded payslip PDFs"),
		metric.WithUnit("By"))

	return &Handler{
		deps:        deps,
		options:     options,
		uploadBytes: uploadBytes,
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// ErrorStatusCode pairs an ErrorResponse with the status it is served with.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// defaultMessages are served when an error carries no message of its own.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrForbidden:    "forbidden",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrConflict:     "conflict",
	serrors.ErrInternal:     "internal error",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
	serrors.ErrRateLimited:  "too many requests",
}

// NewError maps err to the response served to the client. Internal errors are
// logged and never expose their message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(err)

	msg := ""
	var se *serrors.Error
	if errors.As(err, &se) {
		msg = se.Message()
	}
	if msg == "" || kind == serrors.ErrInternal {
		msg = defaultMessages[kind]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
	} else {
		logger.Debug(ctx, "request failed", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: msg,
		},
	}
}

// Routes returns a mux serving every v1 route under Prefix. Routes other than
// the health checks go through sec.
func (h Handler) Routes(sec *SecHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+Prefix+"/health", h.Health)
	mux.HandleFunc("GET "+Prefix+"/payslips/health", h.PayslipsHealth)

	mux.Handle("POST "+Prefix+"/payslips/process", h.authenticated(sec, h.ProcessPayslip))
	mux.Handle("GET "+Prefix+"/notifications/failed", h.authenticated(sec, h.ListFailedNotifications))
	mux.Handle("POST "+Prefix+"/notifications/reprocess", h.authenticated(sec, h.ReprocessNotifications))
	mux.Handle("GET "+Prefix+"/unidades", h.authenticated(sec, h.ListUnidades))
	mux.Handle("GET "+Prefix+"/colaboradores", h.authenticated(sec, h.ListColaboradores))
	mux.Handle("GET "+Prefix+"/payslips/history", h.authenticated(sec, h.ListSendHistory))
	mux.Handle("GET "+Prefix+"/notifications", h.authenticated(sec, h.ListNotifications))
	mux.Handle("POST "+Prefix+"/notifications", h.authenticated(sec, h.CreateNotification))

	mux.Handle("POST "+Prefix+"/admin/colaboradores", h.authenticated(sec, h.CreateColaborador))
	mux.Handle("PUT "+Prefix+"/admin/colaboradores/{id}", h.authenticated(sec, h.UpdateColaborador))
	mux.Handle("DELETE "+Prefix+"/admin/colaboradores/{id}", h.authenticated(sec, h.DeleteColaborador))

	mux.HandleFunc(Prefix+"/", func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "route %s %s not found", r.Method, r.URL.Path))
	})

	return mux
}

// authenticated runs next only when the request carries a valid bearer token.
func (h Handler) authenticated(sec *SecHandler, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := sec.Authenticate(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		next(w, r.WithContext(ctx))
	})
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
