package v1handler

import (
	"encoding/json"
	"errors"
	"holerite/pkg/domain"
	"holerite/pkg/serrors"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// maxJSONBody caps the JSON body of every non-upload request.
const maxJSONBody = 1 << 20

// ListFailedNotifications lists failed notifications, optionally filtered by
// the unidade query parameter.
func (h Handler) ListFailedNotifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := uintQuery(q, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Payslip.FailedNotifications(r.Context(), q.Get("unidade"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

// ReprocessNotifications sends failed notifications again. An empty body
// reprocesses with the service defaults.
func (h Handler) ReprocessNotifications(w http.ResponseWriter, r *http.Request) {
	var req domain.ReprocessRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid reprocess request"))

		return
	}

	res, err := h.deps.Payslip.Reprocess(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

// ListNotifications lists the newest notifications of any status.
func (h Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	limit, err := uintQuery(r.URL.Query(), "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Payslip.Notifications(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}

// CreateNotification queues a standalone e-mail.
func (h Handler) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid notification request"))

		return
	}

	n, err := h.deps.Payslip.CreateNotification(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, n)
}

// decodeJSON decodes the request body into v, rejecting unknown fields. An
// empty body is accepted only when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		if allowEmpty {
			return nil
		}

		return errors.New("request body is empty")
	}

	return err //nolint: wrapcheck
}

// uintQuery parses the named query parameter as a non-negative integer. A
// missing parameter is zero.
func uintQuery(q url.Values, name string) (uint, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a positive integer, got %q", name, v)
	}

	return uint(n), nil
}
