package payslip

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// pdfSignature is the magic number every PDF file starts with.
var pdfSignature = []byte("%PDF-") //nolint: gochecknoglobals

var (
	nomePlaceholder    = regexp.MustCompile(`(?i)\{\{\s*nome\s*\}\}`)    //nolint: gochecknoglobals
	unidadePlaceholder = regexp.MustCompile(`(?i)\{\{\s*unidade\s*\}\}`) //nolint: gochecknoglobals
)

// validate is shared by request and address validation. validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// IsPDF reports whether content starts with the PDF signature.
func IsPDF(content []byte) bool {
	return bytes.HasPrefix(content, pdfSignature)
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a syntactically valid single address.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}

	return validate.Var(email, "email") == nil
}

// EmailDomain returns the lower-cased part after the last "@", or "" when there is none.
func EmailDomain(email string) string {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return ""
	}

	return strings.ToLower(email[i+1:])
}

// RenderMessage replaces the {{nome}} and {{unidade}} placeholders of tmpl.
// Placeholders are case-insensitive and may have spaces inside the braces.
func RenderMessage(tmpl, nome, unidade string) string {
	out := nomePlaceholder.ReplaceAllLiteralString(tmpl, nome)

	return unidadePlaceholder.ReplaceAllLiteralString(out, unidade)
}

// domainAllowed reports whether the address domain is in allowed. An empty
// allow list allows every domain.
func domainAllowed(allowed map[string]struct{}, email string) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[EmailDomain(email)]

	return ok
}
