// Package maintenance holds the database housekeeping used by the CLI:
// removing corrupted colaborador rows, importing colaboradores from CSV and
// reporting how many colaboradores each unidade has.
package maintenance

import (
	"context"
	"fmt"
	"holerite/pkg/logger"
	"holerite/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

// DefaultMarkers are the substrings found in the nome of rows produced by a
// broken import that copied schema text into the colaboradores table.
var DefaultMarkers = []string{"generator", "datasource", "model"} //nolint: gochecknoglobals

// CleanOptions selects which colaboradores Clean removes.
type CleanOptions struct {
	// Markers are matched as substrings of nome, OR-combined. Empty means DefaultMarkers.
	Markers []string
	// All deletes every colaborador and ignores Markers.
	All bool
	// DryRun only counts the matching rows.
	DryRun bool
}

// CleanResult reports what Clean matched and deleted.
type CleanResult struct {
	Markers   []string `json:"markers,omitempty" yaml:"markers,omitempty"`
	All       bool     `json:"all"               yaml:"all"`
	DryRun    bool     `json:"dryRun"            yaml:"dryRun"`
	Matched   int64    `json:"matched"           yaml:"matched"`
	Deleted   int64    `json:"deleted"           yaml:"deleted"`
	Remaining int64    `json:"remaining"         yaml:"remaining"`
}

// Cleaner deletes corrupted colaborador rows.
type Cleaner struct {
	storage storage.Storage
}

// NewCleaner creates a Cleaner on top of the given storage.
func NewCleaner(storage storage.Storage) *Cleaner {
	return &Cleaner{storage: storage}
}

// Clean deletes the colaboradores selected by opts in one transaction and
// returns the deleted count together with the number of rows left.
func (c *Cleaner) Clean(ctx context.Context, opts CleanOptions) (*CleanResult, error) {
	res := &CleanResult{All: opts.All, DryRun: opts.DryRun}
	if !opts.All {
		res.Markers = normalizeMarkers(opts.Markers)
	}

	if opts.DryRun {
		matched, err := c.count(ctx, c.storage, res)
		if err != nil {
			return nil, err
		}
		total, err := c.storage.CountColaboradores(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not count colaboradores: %w", err)
		}
		res.Matched = matched
		res.Remaining = total

		return res, nil
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		matched, err := c.count(ctx, tx, res)
		if err != nil {
			return err
		}

		var deleted int64
		if res.All {
			deleted, err = tx.DeleteAllColaboradores(ctx)
		} else {
			deleted, err = tx.DeleteColaboradoresByName(ctx, res.Markers)
		}
		if err != nil {
			return fmt.Errorf("could not delete colaboradores: %w", err)
		}

		remaining, err := tx.CountColaboradores(ctx)
		if err != nil {
			return fmt.Errorf("could not count colaboradores: %w", err)
		}
		res.Matched, res.Deleted, res.Remaining = matched, deleted, remaining

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not clean colaboradores: %w", err)
	}

	logger.Info(ctx, "colaboradores removed",
		zap.Strings("markers", res.Markers),
		zap.Bool("all", res.All),
		zap.Int64("matched", res.Matched),
		zap.Int64("deleted", res.Deleted),
		zap.Int64("remaining", res.Remaining))

	return res, nil
}

func (c *Cleaner) count(ctx context.Context, st storage.ColaboradorStorage, res *CleanResult) (int64, error) {
	var (
		n   int64
		err error
	)
	if res.All {
		n, err = st.CountColaboradores(ctx)
	} else {
		n, err = st.CountColaboradoresByName(ctx, res.Markers)
	}
	if err != nil {
		return 0, fmt.Errorf("could not count matching colaboradores: %w", err)
	}

	return n, nil
}

// normalizeMarkers trims and de-duplicates markers, falling back to DefaultMarkers.
func normalizeMarkers(markers []string) []string {
	out := make([]string, 0, len(markers))
	seen := make(map[string]struct{}, len(markers))
	for _, m := range markers {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultMarkers...)
	}

	return out
}

// corrupted reports whether nome contains one of DefaultMarkers, ignoring case.
func corrupted(nome string) bool {
	nome = strings.ToLower(nome)
	for _, m := range DefaultMarkers {
		if strings.Contains(nome, m) {
			return true
		}
	}

	return false
}
