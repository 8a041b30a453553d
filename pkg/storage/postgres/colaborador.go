package postgres

import (
	"context"
	"errors"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	colaboradoresTable = "colaboradores"

	// uniqueViolation is the SQLSTATE of a unique index conflict.
	uniqueViolation = "23505"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// nameContainsAny builds `nome LIKE '%m1%' OR nome LIKE '%m2%' ...`. Empty
// markers are ignored; ok is false when nothing is left to match.
func nameContainsAny(markers []string) (exp.ExpressionList, bool) {
	var likes []exp.Expression
	for _, m := range markers {
		if m == "" {
			continue
		}
		likes = append(likes, goqu.I("nome").Like("%"+likeEscaper.Replace(m)+"%"))
	}
	if len(likes) == 0 {
		return nil, false
	}

	return goqu.Or(likes...), true
}

// DeleteColaboradoresByName deletes all rows whose nome contains any of the markers
// in a single statement.
func (p *PgSQL) DeleteColaboradoresByName(ctx context.Context, markers []string) (int64, error) {
	where, ok := nameContainsAny(markers)
	if !ok {
		return 0, nil
	}

	res, err := p.Builder.Delete(colaboradoresTable).Where(where).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete colaboradores by name in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get deleted rows count: %w", err)
	}

	return n, nil
}

func (p *PgSQL) CountColaboradoresByName(ctx context.Context, markers []string) (int64, error) {
	where, ok := nameContainsAny(markers)
	if !ok {
		return 0, nil
	}

	n, err := p.Builder.From(colaboradoresTable).Where(where).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count colaboradores by name in pg: %w", err)
	}

	return n, nil
}

func (p *PgSQL) DeleteAllColaboradores(ctx context.Context) (int64, error) {
	res, err := p.Builder.Delete(colaboradoresTable).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete colaboradores in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get deleted rows count: %w", err)
	}

	return n, nil
}

func (p *PgSQL) CountColaboradores(ctx context.Context) (int64, error) {
	n, err := p.Builder.From(colaboradoresTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count colaboradores in pg: %w", err)
	}

	return n, nil
}

// CountByUnidade groups colaboradores by unidade, biggest unidades first.
func (p *PgSQL) CountByUnidade(ctx context.Context) ([]domain.UnidadeCount, error) {
	var rows []PgUnidadeCount
	if err := p.Builder.From(colaboradoresTable).
		Select(goqu.I("unidade"), goqu.COUNT("*").As("total")).
		GroupBy(goqu.I("unidade")).
		Order(goqu.I("total").Desc(), goqu.I("unidade").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count colaboradores by unidade in pg: %w", err)
	}

	out := make([]domain.UnidadeCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UnidadeCount{Unidade: row.Unidade, Total: row.Total})
	}

	return out, nil
}

func (p *PgSQL) Unidades(ctx context.Context) ([]string, error) {
	var out []string
	if err := p.Builder.From(colaboradoresTable).
		Select(goqu.I("unidade")).
		Distinct().
		Order(goqu.I("unidade").Asc()).
		ScanValsContext(ctx, &out); err != nil {
		return nil, fmt.Errorf("could not list unidades from pg: %w", err)
	}

	return out, nil
}

func (p *PgSQL) Colaboradores(ctx context.Context) ([]domain.Colaborador, error) {
	var rows []PgColaborador
	if err := p.Builder.From(colaboradoresTable).
		Order(goqu.I("unidade").Asc(), goqu.I("nome").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list colaboradores from pg: %w", err)
	}

	return pgColaboradoresToDomain(rows), nil
}

func (p *PgSQL) ColaboradoresByUnidade(ctx context.Context, unidade string) ([]domain.Colaborador, error) {
	var rows []PgColaborador
	if err := p.Builder.From(colaboradoresTable).
		Where(goqu.I("unidade").Eq(unidade)).
		Order(goqu.I("nome").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list colaboradores by unidade from pg: %w", err)
	}

	return pgColaboradoresToDomain(rows), nil
}

// InsertColaborador relies on the unique email index; conflicting rows are left untouched.
func (p *PgSQL) InsertColaborador(ctx context.Context, c domain.Colaborador) (bool, error) {
	var row PgColaborador
	row.FromDomain(c)

	res, err := p.Builder.Insert(colaboradoresTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not insert colaborador into pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get inserted rows count: %w", err)
	}

	return n == 1, nil
}

// UpsertColaborador uses xmax = 0 on the returned row to tell a fresh insert
// from an update of an existing row.
func (p *PgSQL) UpsertColaborador(ctx context.Context, c domain.Colaborador) (storage.UpsertResult, error) {
	var row PgColaborador
	row.FromDomain(c)

	var inserted bool
	if _, err := p.Builder.Insert(colaboradoresTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("email", goqu.Record{
			"nome":    goqu.L("EXCLUDED.nome"),
			"unidade": goqu.L("EXCLUDED.unidade"),
		})).
		Returning(goqu.L("(xmax = 0)").As("inserted")).
		Executor().ScanValContext(ctx, &inserted); err != nil {
		return 0, fmt.Errorf("could not upsert colaborador into pg: %w", err)
	}

	if inserted {
		return storage.UpsertInserted, nil
	}

	return storage.UpsertUpdated, nil
}

func (p *PgSQL) CreateColaborador(ctx context.Context, c domain.Colaborador) (*domain.Colaborador, error) {
	var row PgColaborador
	row.FromDomain(c)

	var stored PgColaborador
	if _, err := p.Builder.Insert(colaboradoresTable).
		Rows(row).
		Returning(&PgColaborador{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not create colaborador %s: %w", c.Email, storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not create colaborador in pg: %w", err)
	}

	out := stored.ToDomain()

	return &out, nil
}

func (p *PgSQL) colaboradorByID(ctx context.Context, id domain.ColaboradorID) (*domain.Colaborador, error) {
	var row PgColaborador
	found, err := p.Builder.From(colaboradoresTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch colaborador by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

func (p *PgSQL) UpdateColaborador(ctx context.Context,
	id domain.ColaboradorID,
	patch domain.ColaboradorPatch) (*domain.Colaborador, error) {
	rec := goqu.Record{}
	if patch.Nome != nil {
		rec["nome"] = *patch.Nome
	}
	if patch.Email != nil {
		rec["email"] = *patch.Email
	}
	if patch.Unidade != nil {
		rec["unidade"] = *patch.Unidade
	}
	if len(rec) == 0 {
		return p.colaboradorByID(ctx, id)
	}

	var row PgColaborador
	found, err := p.Builder.Update(colaboradoresTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgColaborador{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not update colaborador %s: %w", id, storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not update colaborador in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	out := row.ToDomain()

	return &out, nil
}

func (p *PgSQL) DeleteColaborador(ctx context.Context, id domain.ColaboradorID) (bool, error) {
	res, err := p.Builder.Delete(colaboradoresTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete colaborador in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted rows count: %w", err)
	}

	return n == 1, nil
}
