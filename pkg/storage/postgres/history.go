package postgres

import (
	"context"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const sendHistoryTable = "send_history"

func (p *PgSQL) StoreSendHistory(ctx context.Context, h domain.SendHistory) (*domain.SendHistory, error) {
	var row PgSendHistory
	row.FromDomain(h)

	var stored PgSendHistory
	if _, err := p.Builder.Insert(sendHistoryTable).
		Rows(row).
		Returning(&PgSendHistory{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store send history into pg: %w", err)
	}

	out := stored.ToDomain()

	return &out, nil
}

func (p *PgSQL) SendHistory(ctx context.Context, filter storage.HistoryFilter) ([]domain.SendHistory, int64, error) {
	ds := p.Builder.From(sendHistoryTable)
	if filter.Unidade != "" {
		ds = ds.Where(goqu.I("unidade").Eq(filter.Unidade))
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count send history in pg: %w", err)
	}

	ds = ds.Order(goqu.I("created_at").Desc(), goqu.I("id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		ds = ds.Offset(filter.Offset)
	}

	var rows []PgSendHistory
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch send history from pg: %w", err)
	}

	out := make([]domain.SendHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out, total, nil
}
