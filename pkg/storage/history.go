package storage

import (
	"context"
	"holerite/pkg/domain"
)

// HistoryFilter selects a page of send history.
type HistoryFilter struct {
	// Unidade, when set, keeps only entries of that unidade.
	Unidade string
	Limit   uint
	Offset  uint
}

// HistoryStorage persists the record of every real payslip send.
type HistoryStorage interface {
	// StoreSendHistory inserts h and returns it with its generated fields.
	StoreSendHistory(ctx context.Context, h domain.SendHistory) (*domain.SendHistory, error)
	// SendHistory returns the entries matching filter, newest first, together
	// with the total count of matches ignoring limit and offset.
	SendHistory(ctx context.Context, filter HistoryFilter) ([]domain.SendHistory, int64, error)
}
