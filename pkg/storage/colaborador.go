package storage

import (
	"context"
	"holerite/pkg/domain"
)

// UpsertResult tells whether an upsert created a new row or updated an existing one.
type UpsertResult int

const (
	// UpsertInserted means a new row was created.
	UpsertInserted UpsertResult = iota + 1
	// UpsertUpdated means an existing row matched by email was updated.
	UpsertUpdated
)

// ColaboradorStorage defines the queries and maintenance operations on the
// colaboradores table.
type ColaboradorStorage interface {
	// DeleteColaboradoresByName deletes every colaborador whose nome contains any
	// of the given markers as a substring. Markers are matched literally: LIKE
	// wildcards inside a marker are escaped. An empty marker list deletes nothing.
	// It returns the number of deleted rows.
	DeleteColaboradoresByName(ctx context.Context, markers []string) (int64, error)
	// CountColaboradoresByName counts the rows DeleteColaboradoresByName would delete.
	CountColaboradoresByName(ctx context.Context, markers []string) (int64, error)
	// DeleteAllColaboradores deletes every colaborador and returns the number of deleted rows.
	DeleteAllColaboradores(ctx context.Context) (int64, error)
	// CountColaboradores returns the total number of colaboradores.
	CountColaboradores(ctx context.Context) (int64, error)
	// CountByUnidade returns the number of colaboradores per unidade ordered by
	// total descending, then unidade ascending.
	CountByUnidade(ctx context.Context) ([]domain.UnidadeCount, error)
	// Unidades returns the distinct unidades in ascending order.
	Unidades(ctx context.Context) ([]string, error)
	// Colaboradores returns every colaborador ordered by unidade and nome.
	Colaboradores(ctx context.Context) ([]domain.Colaborador, error)
	// ColaboradoresByUnidade returns the colaboradores of one unidade ordered by nome.
	ColaboradoresByUnidade(ctx context.Context, unidade string) ([]domain.Colaborador, error)
	// InsertColaborador inserts the colaborador unless one with the same email
	// already exists. It reports whether a row was inserted.
	InsertColaborador(ctx context.Context, c domain.Colaborador) (bool, error)
	// UpsertColaborador inserts the colaborador or updates nome and unidade of the
	// existing row with the same email.
	UpsertColaborador(ctx context.Context, c domain.Colaborador) (UpsertResult, error)
	// CreateColaborador inserts c and returns the stored row. It returns
	// ErrDuplicate when the email is already taken.
	CreateColaborador(ctx context.Context, c domain.Colaborador) (*domain.Colaborador, error)
	// UpdateColaborador applies the non-nil fields of patch and returns the
	// updated row, or nil when not found. It returns ErrDuplicate when the new
	// email is already taken.
	UpdateColaborador(ctx context.Context,
		id domain.ColaboradorID,
		patch domain.ColaboradorPatch) (*domain.Colaborador, error)
	// DeleteColaborador deletes one colaborador and reports whether it existed.
	DeleteColaborador(ctx context.Context, id domain.ColaboradorID) (bool, error)
}
