package v1handler

import (
	"holerite/pkg/domain"
	"holerite/pkg/serrors"
	"net/http"

	"github.com/google/uuid"
)

// UnidadeList is the response of ListUnidades.
type UnidadeList struct {
	Total int      `json:"total"`
	Items []string `json:"items"`
}

// ColaboradorList is the response of ListColaboradores.
type ColaboradorList struct {
	Total int                  `json:"total"`
	Items []domain.Colaborador `json:"items"`
}

// ListUnidades lists the distinct unidades of the registered colaboradores.
func (h Handler) ListUnidades(w http.ResponseWriter, r *http.Request) {
	unidades, err := h.deps.Payslip.Unidades(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if unidades == nil {
		unidades = []string{}
	}

	writeJSON(r.Context(), w, http.StatusOK, UnidadeList{Total: len(unidades), Items: unidades})
}

// ListColaboradores lists colaboradores, filtered by the unidade query
// parameter when present.
func (h Handler) ListColaboradores(w http.ResponseWriter, r *http.Request) {
	colaboradores, err := h.deps.Payslip.Colaboradores(r.Context(), r.URL.Query().Get("unidade"))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if colaboradores == nil {
		colaboradores = []domain.Colaborador{}
	}

	writeJSON(r.Context(), w, http.StatusOK, ColaboradorList{Total: len(colaboradores), Items: colaboradores})
}

// DeleteResult is the response of DeleteColaborador.
type DeleteResult struct {
	Success bool `json:"success"`
}

// CreateColaborador registers a colaborador.
func (h Handler) CreateColaborador(w http.ResponseWriter, r *http.Request) {
	var input domain.ColaboradorInput
	if err := decodeJSON(w, r, &input, false); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid colaborador"))

		return
	}

	c, err := h.deps.Payslip.CreateColaborador(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusCreated, c)
}

// UpdateColaborador changes the fields present in the body.
func (h Handler) UpdateColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := colaboradorID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var patch domain.ColaboradorPatch
	if err := decodeJSON(w, r, &patch, false); err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid colaborador"))

		return
	}

	c, err := h.deps.Payslip.UpdateColaborador(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, c)
}

func (h Handler) DeleteColaborador(w http.ResponseWriter, r *http.Request) {
	id, err := colaboradorID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.Payslip.DeleteColaborador(r.Context(), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DeleteResult{Success: true})
}

func colaboradorID(r *http.Request) (domain.ColaboradorID, error) {
	v := r.PathValue("id")
	id, err := uuid.Parse(v)
	if err != nil {
		return domain.ColaboradorID{}, serrors.With(serrors.ErrBadRequest, "invalid colaborador id %q", v)
	}

	return domain.ColaboradorID(id), nil
}
