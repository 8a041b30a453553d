package domain

import "time"

// ConfirmToken is the value the confirm field must carry before a payslip is
// mailed to every colaborador of a unidade.
const ConfirmToken = "YES"

// ProcessRequest carries the form fields of a payslip process request. The PDF
// itself travels separately as a PayslipFile.
type ProcessRequest struct {
	// Unidade selects the colaboradores that receive the payslip. A test send
	// may leave it empty.
	Unidade string `json:"unidade" yaml:"unidade" validate:"required_without=TestRecipient"`
	// Subject is the e-mail subject. Empty means the service default.
	Subject string `json:"subject,omitempty" yaml:"subject,omitempty"`
	// Message is the e-mail body template; {{nome}} and {{unidade}} are replaced
	// per recipient. Empty means the service default.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	// Confirm must equal ConfirmToken for a real send to a whole unidade.
	Confirm string `json:"confirm,omitempty" yaml:"confirm,omitempty"`
	// BatchSize is the number of e-mails released per batch. Zero means the
	// service default.
	BatchSize int `json:"batchSize,omitempty" yaml:"batchSize,omitempty" validate:"gte=0,lte=500"`
	// DryRun plans the recipients without storing or sending anything.
	DryRun bool `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	// TestRecipient, when set, receives a single message instead of the unidade.
	TestRecipient string `json:"testRecipient,omitempty" yaml:"testRecipient,omitempty" validate:"omitempty,email"`
}

// RecipientStatus is the outcome of planning one recipient.
type RecipientStatus string

const (
	// RecipientPlanned is reported by dry runs.
	RecipientPlanned RecipientStatus = "planned"
	// RecipientQueued means a notification and a delivery job were created.
	RecipientQueued RecipientStatus = "queued"
	// RecipientSkipped means the recipient was not eligible; see Reason.
	RecipientSkipped RecipientStatus = "skipped"
)

// RecipientResult describes what happened to one colaborador of the unidade.
type RecipientResult struct {
	Nome           string          `json:"nome"                     yaml:"nome"`
	Email          string          `json:"email"                    yaml:"email"`
	Status         RecipientStatus `json:"status"                   yaml:"status"`
	Reason         string          `json:"reason,omitempty"         yaml:"reason,omitempty"`
	NotificationID *NotificationID `json:"notificationId,omitempty" yaml:"notificationId,omitempty"`
}

// ProcessResult summarizes a payslip process request.
type ProcessResult struct {
	Unidade    string            `json:"unidade"    yaml:"unidade"`
	DryRun     bool              `json:"dryRun"     yaml:"dryRun"`
	Total      int               `json:"total"      yaml:"total"`
	Queued     int               `json:"queued"     yaml:"queued"`
	Planned    int               `json:"planned"    yaml:"planned"`
	Skipped    int               `json:"skipped"    yaml:"skipped"`
	Batches    int               `json:"batches"    yaml:"batches"`
	Recipients []RecipientResult `json:"recipients" yaml:"recipients"`
}

// ReprocessRequest selects failed notifications to send again.
type ReprocessRequest struct {
	Limit            int              `json:"limit,omitempty"            yaml:"limit,omitempty"            validate:"gte=0,lte=5000"`
	Unidade          string           `json:"unidade,omitempty"          yaml:"unidade,omitempty"`
	IDs              []NotificationID `json:"ids,omitempty"              yaml:"ids,omitempty"`
	BatchSize        int              `json:"batchSize,omitempty"        yaml:"batchSize,omitempty"        validate:"gte=0,lte=500"`
	MaxRetries       int              `json:"maxRetries,omitempty"       yaml:"maxRetries,omitempty"       validate:"gte=0,lte=10"`
	IncrementalRetry *bool            `json:"incrementalRetry,omitempty" yaml:"incrementalRetry,omitempty"`
	DryRun           bool             `json:"dryRun,omitempty"           yaml:"dryRun,omitempty"`
	// MaxRetryCount skips notifications already retried this many times. Zero disables the cap.
	MaxRetryCount int `json:"maxRetryCount,omitempty" yaml:"maxRetryCount,omitempty" validate:"gte=0"`
}

// ReprocessItem reports the outcome for one failed notification.
type ReprocessItem struct {
	ID       NotificationID `json:"id"                 yaml:"id"`
	To       string         `json:"to"                 yaml:"to"`
	Subject  string         `json:"subject"            yaml:"subject"`
	OK       bool           `json:"ok"                 yaml:"ok"`
	Attempts int            `json:"attempts"           yaml:"attempts"`
	Error    string         `json:"error,omitempty"    yaml:"error,omitempty"`
}

// ReprocessResult summarizes a reprocess run.
type ReprocessResult struct {
	Processed     int             `json:"processed"     yaml:"processed"`
	FailedAgain   int             `json:"failedAgain"   yaml:"failedAgain"`
	TotalSelected int             `json:"totalSelected" yaml:"totalSelected"`
	DryRun        bool            `json:"dryRun"        yaml:"dryRun"`
	Items         []ReprocessItem `json:"items"         yaml:"items"`
	Message       string          `json:"message"       yaml:"message"`
}

// FailedNotifications is a page of failed notifications.
type FailedNotifications struct {
	Total int            `json:"total" yaml:"total"`
	Items []Notification `json:"items" yaml:"items"`
}

// Health is the payload of the health endpoints.
type Health struct {
	Status    string    `json:"status"            yaml:"status"`
	Service   string    `json:"service,omitempty" yaml:"service,omitempty"`
	Timestamp time.Time `json:"timestamp"         yaml:"timestamp"`
}
