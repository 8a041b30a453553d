package domain

import (
	"time"

	"github.com/google/uuid"
)

// SendHistoryID uniquely identifies a send history entry.
type SendHistoryID uuid.UUID

// SendHistory records one real payslip send of a unidade.
type SendHistory struct {
	ID            SendHistoryID `json:"id"                      yaml:"id"`
	Unidade       string        `json:"unidade"                 yaml:"unidade"`
	Subject       string        `json:"subject"                 yaml:"subject"`
	Total         int           `json:"total"                   yaml:"total"`
	Queued        int           `json:"queued"                  yaml:"queued"`
	Skipped       int           `json:"skipped"                 yaml:"skipped"`
	TestRecipient string        `json:"testRecipient,omitempty" yaml:"testRecipient,omitempty"`
	FileID        *FileID       `json:"fileId,omitempty"        yaml:"fileId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"               yaml:"createdAt"`
}

// SendHistoryPage is one page of send history, newest first.
type SendHistoryPage struct {
	Total int64         `json:"total" yaml:"total"`
	Page  uint          `json:"page"  yaml:"page"`
	Limit uint          `json:"limit" yaml:"limit"`
	Items []SendHistory `json:"items" yaml:"items"`
}

// MarshalText lets SendHistoryID be used directly in JSON payloads.
func (id SendHistoryID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText parses a textual UUID into id.
func (id *SendHistoryID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}
