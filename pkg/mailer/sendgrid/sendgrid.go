// Package sendgrid provides a mailer.Mailer implementation backed by the
// SendGrid v3 mail send API.
package sendgrid

import (
	"context"
	"encoding/base64"
	"fmt"
	"holerite/pkg/mailer"
	"holerite/pkg/serrors"
	"html"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Options configure the SendGrid mailer.
type Options struct {
	// APIKey authenticates against SendGrid.
	APIKey string
	// FromEmail and FromName identify the sender.
	FromEmail string
	FromName  string
	// Host overrides the API host. Empty means https://api.sendgrid.com.
	Host string
	// Sandbox validates messages without delivering them.
	Sandbox bool
}

// Mailer sends e-mails through SendGrid. It is safe for concurrent use: each
// Send builds its own request since the SDK client keeps the body on itself.
type Mailer struct {
	options Options
}

// New creates a SendGrid mailer.
func New(options Options) *Mailer {
	return &Mailer{options: options}
}

// Build converts msg into a SendGrid v3 payload. The plain text body is also
// sent as preformatted HTML so line breaks survive in HTML-only clients.
func (m *Mailer) Build(msg mailer.Message) *mail.SGMailV3 {
	from := mail.NewEmail(m.options.FromName, m.options.FromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	htmlBody := "<pre style=\"font-family:inherit\">" + html.EscapeString(msg.Text) + "</pre>"
	sg := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, htmlBody)

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType(a.ContentType)
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		sg.AddAttachment(att)
	}

	if m.options.Sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		sg.SetMailSettings(ms)
	}

	return sg
}

// Send delivers msg. A 429 answer maps to serrors.ErrRateLimited and any other
// non-2xx answer to an error carrying the provider's response body.
func (m *Mailer) Send(ctx context.Context, msg mailer.Message) error {
	req := sendgrid.GetRequest(m.options.APIKey, sendEndpoint, m.options.Host)
	req.Method = http.MethodPost
	req.Body = mail.GetRequestBody(m.Build(msg))

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("could not send request to sendgrid: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "sendgrid rate limited: %s", strings.TrimSpace(resp.Body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid answered %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}

	return nil
}

var _ mailer.Mailer = (*Mailer)(nil)
