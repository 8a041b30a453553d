package maintenance

import (
	"cmp"
	"context"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/storage"
	"slices"
	"strings"
)

// Report sort orders.
const (
	SortByCount = "count"
	SortByName  = "name"
)

// ReportOptions shapes the unidade listing.
type ReportOptions struct {
	// Top keeps only the first Top unidades. Zero keeps all of them.
	Top int
	// SortBy is SortByCount (default) or SortByName.
	SortBy string
}

// Report is the number of colaboradores in total and per unidade.
type Report struct {
	Total    int64                 `json:"total"    yaml:"total"`
	Unidades []domain.UnidadeCount `json:"unidades" yaml:"unidades"`
}

// Reporter summarizes the colaboradores table.
type Reporter struct {
	storage storage.ColaboradorStorage
}

// NewReporter creates a Reporter reading from the given storage.
func NewReporter(storage storage.ColaboradorStorage) *Reporter {
	return &Reporter{storage: storage}
}

// Report counts colaboradores per unidade.
func (r *Reporter) Report(ctx context.Context, opts ReportOptions) (*Report, error) {
	switch opts.SortBy {
	case "", SortByCount, SortByName:
	default:
		return nil, fmt.Errorf("unsupported sort %q", opts.SortBy)
	}

	total, err := r.storage.CountColaboradores(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count colaboradores: %w", err)
	}
	unidades, err := r.storage.CountByUnidade(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count colaboradores by unidade: %w", err)
	}

	if opts.SortBy == SortByName {
		slices.SortStableFunc(unidades, func(a, b domain.UnidadeCount) int {
			return cmp.Compare(strings.ToLower(a.Unidade), strings.ToLower(b.Unidade))
		})
	}
	if opts.Top > 0 && len(unidades) > opts.Top {
		unidades = unidades[:opts.Top]
	}
	if unidades == nil {
		unidades = []domain.UnidadeCount{}
	}

	return &Report{Total: total, Unidades: unidades}, nil
}
