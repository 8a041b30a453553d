package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationID uniquely identifies a payslip e-mail notification.
type NotificationID uuid.UUID

// FileID uniquely identifies a stored payslip PDF.
type FileID uuid.UUID

// NotificationStatus represents the delivery state of a notification.
type NotificationStatus string

const (
	// NotificationStatusPending means the e-mail is queued and not delivered yet.
	NotificationStatusPending NotificationStatus = "pending"
	// NotificationStatusSent means the mail provider accepted the e-mail.
	NotificationStatusSent NotificationStatus = "sent"
	// NotificationStatusFailed means every delivery attempt failed; see LastError.
	NotificationStatusFailed NotificationStatus = "failed"
)

// PayslipFile is an uploaded payslip PDF. It is stored once per process
// request and attached to every notification created by that request.
type PayslipFile struct {
	ID          FileID    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Content     []byte    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notification is one personalized payslip e-mail addressed to one recipient.
type Notification struct {
	ID            NotificationID     `json:"id"`
	ColaboradorID *ColaboradorID     `json:"colaboradorId,omitempty"`
	FileID        *FileID            `json:"fileId,omitempty"`
	Unidade       string             `json:"unidade"`
	Nome          string             `json:"nome"`
	Email         string             `json:"to"`
	Subject       string             `json:"subject"`
	Message       string             `json:"message"`
	Status        NotificationStatus `json:"status"`
	RetryCount    int                `json:"retryCount"`
	LastError     string             `json:"errorMessage,omitempty"`
	ScheduledAt   time.Time          `json:"scheduledAt,omitzero"`
	SentAt        time.Time          `json:"sentAt,omitzero"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt,omitzero"`
}

// NotificationRequest creates a standalone notification. Unlike payslip
// notifications it carries no attachment.
type NotificationRequest struct {
	Email   string `json:"email"             yaml:"email"             validate:"required,email"`
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Unidade string `json:"unidade,omitempty" yaml:"unidade,omitempty"`
	// ScheduledAt delays the delivery. Nil or a past time sends right away.
	ScheduledAt *time.Time `json:"scheduledAt,omitempty" yaml:"scheduledAt,omitempty"`
}

// NotificationList is a page of notifications, newest first.
type NotificationList struct {
	Total int            `json:"total" yaml:"total"`
	Items []Notification `json:"items" yaml:"items"`
}

// MarshalText lets NotificationID be used directly in JSON payloads.
func (id NotificationID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a textual UUID into id.
func (id *NotificationID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

// String returns the canonical UUID form of id.
func (id NotificationID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText lets FileID be used directly in JSON payloads.
func (id FileID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a textual UUID into id.
func (id *FileID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
