package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"macros/internal/core"
	"macros/internal/journal"
)

// EntryService orchestrates writes against the entry store: stamping new
// rows, creating the store on first use and the reuse-by-name flow.
type EntryService struct {
	writer journal.EntryWriter
	reader journal.EntryReader
	init   journal.Initializer
}

func NewEntryService(writer journal.EntryWriter, reader journal.EntryReader, init journal.Initializer) *EntryService {
	return &EntryService{
		writer: writer,
		reader: reader,
		init:   init,
	}
}

// Add appends a new entry stamped with the current time and returns the
// stored row.
func (s *EntryService) Add(ctx context.Context, name string, protein, fat, carbs, calories float64) (core.Entry, error) {
	e := core.NewEntry(name, protein, fat, carbs, calories, time.Now())
	if err := s.append(ctx, e); err != nil {
		return core.Entry{}, err
	}
	return e, nil
}

// Reuse copies the macro columns of the earliest entry matching name into a
// new row under a fresh timestamp. A miss surfaces as
// journal.ErrEntryNotFound so callers can tell it from an I/O failure.
func (s *EntryService) Reuse(ctx context.Context, name string) (core.Entry, error) {
	src, err := s.reader.ByName(ctx, name)
	if errors.Is(err, journal.ErrStoreNotFound) {
		// A store that was never created cannot hold the recipe. Create it
		// so the session continues against a well-formed file.
		if initErr := s.init.EnsureExists(); initErr != nil {
			return core.Entry{}, fmt.Errorf("create store: %w", initErr)
		}
		return core.Entry{}, fmt.Errorf("reuse %q: %w", name, journal.ErrEntryNotFound)
	}
	if err != nil {
		return core.Entry{}, err
	}

	e := src
	e.LoggedAt = core.FormatTimestamp(time.Now())
	if err := s.append(ctx, e); err != nil {
		return core.Entry{}, err
	}
	return e, nil
}

// append writes one row, creating the store and retrying once when it does
// not exist yet. A second miss is returned as-is; there is no retry loop.
func (s *EntryService) append(ctx context.Context, e core.Entry) error {
	err := s.writer.Append(ctx, e)
	if err == nil || !errors.Is(err, journal.ErrStoreNotFound) {
		return err
	}

	slog.WarnContext(ctx, "Entry store missing, creating it before retrying",
		"name", e.Name)
	if err := s.init.EnsureExists(); err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	return s.writer.Append(ctx, e)
}
