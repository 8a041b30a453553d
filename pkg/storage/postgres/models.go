package postgres

import (
	"database/sql"
	"holerite/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgColaborador struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	Nome      string    `db:"nome"`
	Email     string    `db:"email"`
	Unidade   string    `db:"unidade"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgColaborador) ToDomain() domain.Colaborador {
	return domain.Colaborador{
		ID:        domain.ColaboradorID(p.ID),
		Nome:      p.Nome,
		Email:     p.Email,
		Unidade:   p.Unidade,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgColaborador) FromDomain(c domain.Colaborador) {
	*p = PgColaborador{
		ID:        uuid.UUID(c.ID),
		Nome:      c.Nome,
		Email:     c.Email,
		Unidade:   c.Unidade,
		CreatedAt: c.CreatedAt,
	}
}

type PgUnidadeCount struct {
	Unidade string `db:"unidade"`
	Total   int64  `db:"total"`
}

type PgPayslipFile struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	Content     []byte    `db:"content"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgPayslipFile) ToDomain() *domain.PayslipFile {
	return &domain.PayslipFile{
		ID:          domain.FileID(p.ID),
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Content:     p.Content,
		CreatedAt:   p.CreatedAt,
	}
}

type PgNotification struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert"`
	ColaboradorID uuid.NullUUID `db:"colaborador_id"`
	FileID        uuid.NullUUID `db:"file_id"`

	Unidade string `db:"unidade"`
	Nome    string `db:"nome"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  string `db:"status"`

	RetryCount int            `db:"retry_count" goqu:"skipinsert"`
	LastError  sql.NullString `db:"last_error"  goqu:"skipinsert"`

	ScheduledAt sql.NullTime `db:"scheduled_at"`
	SentAt      sql.NullTime `db:"sent_at"      goqu:"skipinsert"`
	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgNotification) ToDomain() domain.Notification {
	n := domain.Notification{
		ID:         domain.NotificationID(p.ID),
		Unidade:    p.Unidade,
		Nome:       p.Nome,
		Email:      p.Email,
		Subject:    p.Subject,
		Message:    p.Message,
		Status:     domain.NotificationStatus(p.Status),
		RetryCount: p.RetryCount,
		LastError:   p.LastError.String,
		ScheduledAt: p.ScheduledAt.Time,
		SentAt:      p.SentAt.Time,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
	if p.ColaboradorID.Valid {
		id := domain.ColaboradorID(p.ColaboradorID.UUID)
		n.ColaboradorID = &id
	}
	if p.FileID.Valid {
		id := domain.FileID(p.FileID.UUID)
		n.FileID = &id
	}

	return n
}

func (p *PgNotification) FromDomain(n domain.Notification) {
	*p = PgNotification{
		ID:      uuid.UUID(n.ID),
		Unidade: n.Unidade,
		Nome:    n.Nome,
		Email:   n.Email,
		Subject: n.Subject,
		Message: n.Message,
		Status:  string(n.Status),
	}
	if p.Status == "" {
		p.Status = string(domain.NotificationStatusPending)
	}
	if !n.ScheduledAt.IsZero() {
		p.ScheduledAt = sql.NullTime{Time: n.ScheduledAt, Valid: true}
	}
	if n.ColaboradorID != nil {
		p.ColaboradorID = uuid.NullUUID{UUID: uuid.UUID(*n.ColaboradorID), Valid: true}
	}
	if n.FileID != nil {
		p.FileID = uuid.NullUUID{UUID: uuid.UUID(*n.FileID), Valid: true}
	}
}

type PgSendHistory struct {
	ID            uuid.UUID      `db:"id"             goqu:"skipinsert"`
	Unidade       string         `db:"unidade"`
	Subject       string         `db:"subject"`
	Total         int            `db:"total"`
	Queued        int            `db:"queued"`
	Skipped       int            `db:"skipped"`
	TestRecipient sql.NullString `db:"test_recipient"`
	FileID        uuid.NullUUID  `db:"file_id"`
	CreatedAt     time.Time      `db:"created_at"     goqu:"skipinsert"`
}

func (p *PgSendHistory) ToDomain() domain.SendHistory {
	h := domain.SendHistory{
		ID:            domain.SendHistoryID(p.ID),
		Unidade:       p.Unidade,
		Subject:       p.Subject,
		Total:         p.Total,
		Queued:        p.Queued,
		Skipped:       p.Skipped,
		TestRecipient: p.TestRecipient.String,
		CreatedAt:     p.CreatedAt,
	}
	if p.FileID.Valid {
		id := domain.FileID(p.FileID.UUID)
		h.FileID = &id
	}

	return h
}

func (p *PgSendHistory) FromDomain(h domain.SendHistory) {
	*p = PgSendHistory{
		Unidade:       h.Unidade,
		Subject:       h.Subject,
		Total:         h.Total,
		Queued:        h.Queued,
		Skipped:       h.Skipped,
		TestRecipient: sql.NullString{String: h.TestRecipient, Valid: h.TestRecipient != ""},
	}
	if h.FileID != nil {
		p.FileID = uuid.NullUUID{UUID: uuid.UUID(*h.FileID), Valid: true}
	}
}

func pgColaboradoresToDomain(rows []PgColaborador) []domain.Colaborador {
	out := make([]domain.Colaborador, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out
}

func pgNotificationsToDomain(rows []PgNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}

	return out
}
