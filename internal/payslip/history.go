package payslip

import (
	"context"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/storage"
	"strings"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

func (s service) History(ctx context.Context, unidade string, page, limit uint) (*domain.SendHistoryPage, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	items, total, err := s.storage.SendHistory(ctx, storage.HistoryFilter{
		Unidade: strings.TrimSpace(unidade),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not get send history: %w", err)
	}
	if items == nil {
		items = []domain.SendHistory{}
	}

	return &domain.SendHistoryPage{Total: total, Page: page, Limit: limit, Items: items}, nil
}
