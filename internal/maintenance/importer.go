package maintenance

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"holerite/pkg/domain"
	"holerite/pkg/logger"
	"holerite/pkg/storage"
	"io"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// progressEvery is the number of rows between two progress log lines.
const progressEvery = 50

var utf8BOM = []byte("\xef\xbb\xbf") //nolint: gochecknoglobals

// header aliases per column, compared lower-cased and trimmed.
var (
	nomeHeaders    = []string{"nome", "colaborador"}            //nolint: gochecknoglobals
	unidadeHeaders = []string{"unidade", "filial"}              //nolint: gochecknoglobals
	emailHeaders   = []string{"email", "e-mail", "email pessoal"} //nolint: gochecknoglobals
)

// ImportOptions configures an import.
type ImportOptions struct {
	// Separator is the field separator. Zero detects it from the first line.
	Separator rune
	// Upsert updates nome and unidade of existing emails instead of skipping them.
	Upsert bool
}

// ImportResult counts the outcome of every data row.
type ImportResult struct {
	Total      int `json:"total"      yaml:"total"`
	Inserted   int `json:"inserted"   yaml:"inserted"`
	Updated    int `json:"updated"    yaml:"updated"`
	Duplicated int `json:"duplicated" yaml:"duplicated"`
	Skipped    int `json:"skipped"    yaml:"skipped"`
	Failed     int `json:"failed"     yaml:"failed"`
}

// importRow is one parsed CSV row.
type importRow struct {
	Nome    string `validate:"required"`
	Unidade string `validate:"required"`
	Email   string `validate:"required,email"`
}

// columns holds the index of each field inside a record.
type columns struct {
	nome, unidade, email int
}

var positional = columns{nome: 0, unidade: 1, email: 2} //nolint: gochecknoglobals

// Importer loads colaboradores from CSV exports of the HR system.
type Importer struct {
	storage  storage.ColaboradorStorage
	validate *validator.Validate
}

// NewImporter creates an Importer writing through the given storage.
func NewImporter(storage storage.ColaboradorStorage) *Importer {
	return &Importer{
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Import reads colaboradores from r. A header row is recognized by its column
// names in any order; without one the columns are nome, unidade, email. Rows
// with a missing field, an invalid email or a corrupted nome are skipped.
// Storage errors on a row are counted as failed and the import goes on.
func (i *Importer) Import(ctx context.Context, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	sep := opts.Separator
	if sep == 0 {
		sep = detectSeparator(data)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	res := &ImportResult{}
	cols := positional
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("import interrupted: %w", err)
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("could not parse csv: %w", err)
		}
		if first {
			first = false
			if hc, ok := headerColumns(record); ok {
				cols = hc

				continue
			}
		}
		if blank(record) {
			continue
		}

		res.Total++
		i.importRecord(ctx, record, cols, opts.Upsert, res)

		if res.Total%progressEvery == 0 {
			logger.Info(ctx, "import progress",
				zap.Int("rows", res.Total),
				zap.Int("inserted", res.Inserted),
				zap.Int("updated", res.Updated))
		}
	}

	logger.Info(ctx, "import finished",
		zap.Int("total", res.Total),
		zap.Int("inserted", res.Inserted),
		zap.Int("updated", res.Updated),
		zap.Int("duplicated", res.Duplicated),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))

	return res, nil
}

func (i *Importer) importRecord(ctx context.Context, record []string, cols columns, upsert bool, res *ImportResult) {
	row := importRow{
		Nome:    strings.ToUpper(field(record, cols.nome)),
		Unidade: field(record, cols.unidade),
		Email:   strings.ToLower(field(record, cols.email)),
	}
	if err := i.validate.Struct(row); err != nil {
		res.Skipped++
		logger.Debug(ctx, "row skipped", zap.Int("row", res.Total), zap.Error(err))

		return
	}
	if corrupted(row.Nome) {
		res.Skipped++
		logger.Warn(ctx, "corrupted row skipped", zap.Int("row", res.Total), zap.String("nome", row.Nome))

		return
	}

	c := domain.Colaborador{Nome: row.Nome, Unidade: row.Unidade, Email: row.Email}
	if upsert {
		outcome, err := i.storage.UpsertColaborador(ctx, c)
		if err != nil {
			res.Failed++
			logger.Error(ctx, "could not upsert colaborador", zap.String("email", c.Email), zap.Error(err))

			return
		}
		if outcome == storage.UpsertUpdated {
			res.Updated++
		} else {
			res.Inserted++
		}

		return
	}

	inserted, err := i.storage.InsertColaborador(ctx, c)
	if err != nil {
		res.Failed++
		logger.Error(ctx, "could not insert colaborador", zap.String("email", c.Email), zap.Error(err))

		return
	}
	if inserted {
		res.Inserted++
	} else {
		res.Duplicated++
	}
}

// ParseSeparator turns a flag value into a separator rune. "", "auto" give 0.
func ParseSeparator(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case ",", "comma":
		return ',', nil
	default:
		return 0, fmt.Errorf("unsupported separator %q", s)
	}
}

// detectSeparator picks the most frequent of tab, semicolon and comma on the first line.
func detectSeparator(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}

	best, bestCount := ',', 0
	for _, sep := range []rune{'\t', ';', ','} {
		if n := bytes.Count(line, []byte(string(sep))); n > bestCount {
			best, bestCount = sep, n
		}
	}

	return best
}

// headerColumns reports whether record is a header and where each column is.
func headerColumns(record []string) (columns, bool) {
	cols := columns{nome: -1, unidade: -1, email: -1}
	for idx, cell := range record {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case cols.nome < 0 && slices.Contains(nomeHeaders, name):
			cols.nome = idx
		case cols.unidade < 0 && slices.Contains(unidadeHeaders, name):
			cols.unidade = idx
		case cols.email < 0 && slices.Contains(emailHeaders, name):
			cols.email = idx
		}
	}
	if cols.nome < 0 && cols.unidade < 0 && cols.email < 0 {
		return positional, false
	}

	return cols, true
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
