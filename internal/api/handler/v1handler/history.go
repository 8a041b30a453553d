package v1handler

import "net/http"

// ListSendHistory pages through the record of real sends, optionally filtered
// by the unidade query parameter.
func (h Handler) ListSendHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := uintQuery(q, "page")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	limit, err := uintQuery(q, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Payslip.History(r.Context(), q.Get("unidade"), page, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, res)
}
