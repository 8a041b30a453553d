package postgres

import (
	"context"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	payslipFilesTable  = "payslip_files"
	notificationsTable = "notifications"
)

func (p *PgSQL) StorePayslipFile(ctx context.Context, file domain.PayslipFile) (*domain.PayslipFile, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	var row PgPayslipFile
	if _, err := p.Builder.Insert(payslipFilesTable).
		Rows(PgPayslipFile{
			Filename:    file.Filename,
			ContentType: contentType,
			Content:     file.Content,
		}).
		Returning(&PgPayslipFile{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store payslip file into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PayslipFileByID(ctx context.Context, id domain.FileID) (*domain.PayslipFile, error) {
	var row PgPayslipFile
	found, err := p.Builder.From(payslipFilesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch payslip file by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreNotifications(ctx context.Context,
	notifications ...domain.Notification) ([]domain.Notification, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	rows := make([]PgNotification, len(notifications))
	for i := range rows {
		rows[i].FromDomain(notifications[i])
	}

	var result []PgNotification
	if err := p.Builder.Insert(notificationsTable).
		Rows(rows).
		Returning(&PgNotification{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store notifications into pg: %w", err)
	}

	return pgNotificationsToDomain(result), nil
}

func (p *PgSQL) NotificationByID(ctx context.Context, id domain.NotificationID) (*domain.Notification, error) {
	var row PgNotification
	found, err := p.Builder.From(notificationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch notification by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	n := row.ToDomain()

	return &n, nil
}

// UpdateNotification sets only the provided fields. updated_at is always bumped
// and sent_at is stamped when the status becomes sent.
func (p *PgSQL) UpdateNotification(ctx context.Context,
	id domain.NotificationID,
	updates storage.NotificationUpdates) (*domain.Notification, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
		if updates.Status == domain.NotificationStatusSent {
			rec["sent_at"] = goqu.L("CURRENT_TIMESTAMP")
		}
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}
	if updates.IncrementRetry {
		rec["retry_count"] = goqu.L("retry_count + 1")
	}

	var row PgNotification
	found, err := p.Builder.Update(notificationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgNotification{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update notification in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	n := row.ToDomain()

	return &n, nil
}

// FailedNotifications returns failed notifications ordered by updated_at so the
// ones waiting the longest are retried first.
func (p *PgSQL) FailedNotifications(ctx context.Context,
	filter storage.FailedFilter) ([]domain.Notification, int64, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.NotificationStatusFailed)),
	}
	if filter.Unidade != "" {
		w = append(w, goqu.I("unidade").Eq(filter.Unidade))
	}
	if len(filter.IDs) > 0 {
		ids := make([]string, 0, len(filter.IDs))
		for _, id := range filter.IDs {
			ids = append(ids, id.String())
		}
		w = append(w, goqu.I("id").In(ids))
	}
	if filter.MaxRetryCount > 0 {
		w = append(w, goqu.I("retry_count").Lt(filter.MaxRetryCount))
	}

	ds := p.Builder.From(notificationsTable).Where(w...)

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count failed notifications in pg: %w", err)
	}

	ds = ds.Order(goqu.I("updated_at").Asc().NullsFirst(), goqu.I("created_at").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgNotification
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch failed notifications from pg: %w", err)
	}

	return pgNotificationsToDomain(rows), total, nil
}

func (p *PgSQL) Notifications(ctx context.Context, limit uint) ([]domain.Notification, error) {
	ds := p.Builder.From(notificationsTable).
		Order(goqu.I("created_at").Desc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgNotification
	if err := ds.ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list notifications from pg: %w", err)
	}

	return pgNotificationsToDomain(rows), nil
}
