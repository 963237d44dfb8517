package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"macros/internal/core"
	"macros/internal/journal"
)

// Header is written once at store creation. Data rows follow the same
// column order and are read positionally, so renaming a column does not
// affect parsing.
var Header = []string{"Name", "Protein", "Fat", "Carbs", "Calories", "DateTime"}

// Column indexes into a data row.
const (
	colName = iota
	colProtein
	colFat
	colCarbs
	colCalories
	colLoggedAt
)

// Store is the durable entry store: a flat CSV file scanned front to back
// on every read. Rows are only ever appended.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// EnsureExists implements journal.Initializer. An existing store is left
// untouched, whatever its contents.
func (s *Store) EnsureExists() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}
	return s.Create()
}

// Create implements journal.Initializer. It writes a header-only file,
// discarding any rows a previous store held.
func (s *Store) Create() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	slog.Info("Entry store created", "path", s.path)
	return nil
}

// Append implements journal.EntryWriter. The file is opened without
// O_CREATE on purpose: a missing store surfaces journal.ErrStoreNotFound
// so that creation stays with the Initializer callers and a bare data file
// without a header can never appear.
func (s *Store) Append(ctx context.Context, e core.Entry) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("append entry: %w", journal.ErrStoreNotFound)
		}
		return fmt.Errorf("open store: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{e.Name, e.Protein, e.Fat, e.Carbs, e.Calories, e.LoggedAt}); err != nil {
		f.Close()
		return fmt.Errorf("append entry: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("append entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	slog.InfoContext(ctx, "Entry appended",
		"name", e.Name,
		"logged_at", e.LoggedAt)
	return nil
}

// All implements journal.EntryReader.
func (s *Store) All(ctx context.Context) ([]core.Entry, error) {
	var entries []core.Entry
	err := s.scan(func(row []string, malformed bool) bool {
		if malformed {
			return true
		}
		e := entryFromRow(row)
		if e.HasName() {
			entries = append(entries, e)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ByName implements journal.EntryReader. The scan stops at the first match.
func (s *Store) ByName(ctx context.Context, name string) (core.Entry, error) {
	var (
		found core.Entry
		ok    bool
	)
	err := s.scan(func(row []string, malformed bool) bool {
		if malformed {
			return true
		}
		e := entryFromRow(row)
		if !e.HasName() || e.Name != name {
			return true
		}
		found, ok = e, true
		return false
	})
	if err != nil {
		return core.Entry{}, err
	}
	if !ok {
		return core.Entry{}, fmt.Errorf("entry %q: %w", name, journal.ErrEntryNotFound)
	}
	return found, nil
}

// OnDate implements journal.EntryReader. Calendar dates are compared in
// each timestamp's own location.
func (s *Store) OnDate(ctx context.Context, day time.Time) ([]core.Entry, error) {
	var entries []core.Entry
	err := s.scan(func(row []string, malformed bool) bool {
		if malformed {
			return true
		}
		e := entryFromRow(row)
		if !e.HasName() {
			return true
		}
		ts, err := e.Timestamp()
		if err != nil {
			return true
		}
		if sameDate(ts, day) {
			entries = append(entries, e)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// WithinWindow implements journal.EntryReader. The window is inclusive at
// the cutoff and has no upper bound, so future-dated rows qualify.
func (s *Store) WithinWindow(ctx context.Context, days int) ([]core.Entry, error) {
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	var entries []core.Entry
	err := s.scan(func(row []string, malformed bool) bool {
		if malformed {
			return true
		}
		e := entryFromRow(row)
		if !e.HasName() {
			return true
		}
		ts, err := e.Timestamp()
		if err != nil {
			return true
		}
		if !ts.Before(cutoff) {
			entries = append(entries, e)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// CountCorrupted implements journal.CorruptionScanner. Lines the codec
// cannot parse at all count as one corrupted row each.
func (s *Store) CountCorrupted(ctx context.Context) (int, error) {
	count := 0
	err := s.scan(func(row []string, malformed bool) bool {
		if malformed {
			count++
			return true
		}
		if err := entryFromRow(row).Validate(); err != nil {
			count++
		}
		return true
	})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		slog.InfoContext(ctx, "Corrupted rows found", "count", count, "path", s.path)
	}
	return count, nil
}

// scan streams data rows to visit, skipping the header line. Short rows
// are passed through as-is; missing columns read as empty strings via
// entryFromRow. A structurally unparsable line is reported with
// malformed set and no fields. Returning false stops the scan.
func (s *Store) scan(visit func(row []string, malformed bool) bool) error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("open store: %w", journal.ErrStoreNotFound)
		}
		return fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header := true
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var parseErr *csv.ParseError
		if err != nil && !errors.As(err, &parseErr) {
			return fmt.Errorf("read store: %w", err)
		}
		if header {
			header = false
			continue
		}
		if err != nil {
			if !visit(nil, true) {
				return nil
			}
			continue
		}
		if !visit(rec, false) {
			return nil
		}
	}
}

func entryFromRow(row []string) core.Entry {
	return core.Entry{
		Name:     field(row, colName),
		Protein:  field(row, colProtein),
		Fat:      field(row, colFat),
		Carbs:    field(row, colCarbs),
		Calories: field(row, colCalories),
		LoggedAt: field(row, colLoggedAt),
	}
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
