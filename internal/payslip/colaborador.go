package payslip

import (
	"context"
	"errors"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/logger"
	"holerite/pkg/serrors"
	"holerite/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

func (s service) CreateColaborador(ctx context.Context, input domain.ColaboradorInput) (*domain.Colaborador, error) {
	input.Nome = strings.TrimSpace(input.Nome)
	input.Email = NormalizeEmail(input.Email)
	input.Unidade = strings.TrimSpace(input.Unidade)
	if err := validate.Struct(input); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid colaborador")
	}

	c, err := s.storage.CreateColaborador(ctx, domain.Colaborador{
		Nome:    input.Nome,
		Email:   input.Email,
		Unidade: input.Unidade,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrConflict, "colaborador with e-mail %q already exists", input.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("could not create colaborador: %w", err)
	}

	logger.Info(ctx, "colaborador created", zap.String("id", c.ID.String()), zap.String("unidade", c.Unidade))

	return c, nil
}

// UpdateColaborador applies the non-empty fields of patch. Blank fields are
// ignored, so a patch made only of blanks is rejected.
func (s service) UpdateColaborador(ctx context.Context,
	id domain.ColaboradorID,
	patch domain.ColaboradorPatch) (*domain.Colaborador, error) {
	patch.Nome = trimmedOrNil(patch.Nome, strings.TrimSpace)
	patch.Email = trimmedOrNil(patch.Email, NormalizeEmail)
	patch.Unidade = trimmedOrNil(patch.Unidade, strings.TrimSpace)
	if patch.Empty() {
		return nil, serrors.With(serrors.ErrBadRequest, "nothing to update")
	}
	if err := validate.Struct(patch); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid colaborador")
	}

	c, err := s.storage.UpdateColaborador(ctx, id, patch)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrConflict, "colaborador with e-mail %q already exists", *patch.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update colaborador: %w", err)
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, "colaborador %s not found", id)
	}

	return c, nil
}

func (s service) DeleteColaborador(ctx context.Context, id domain.ColaboradorID) error {
	deleted, err := s.storage.DeleteColaborador(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete colaborador: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "colaborador %s not found", id)
	}

	logger.Info(ctx, "colaborador deleted", zap.String("id", id.String()))

	return nil
}

func trimmedOrNil(v *string, normalize func(string) string) *string {
	if v == nil {
		return nil
	}
	if out := normalize(*v); out != "" {
		return &out
	}

	return nil
}
