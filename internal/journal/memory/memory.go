package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"macros/internal/core"
	"macros/internal/journal"
)

// Store keeps entries in memory. It backs tests and throwaway sessions, so
// unlike the file store it is born created and never reports
// journal.ErrStoreNotFound.
type Store struct {
	mu    sync.Mutex
	items []core.Entry
}

func New(entries ...core.Entry) *Store {
	s := &Store{}
	s.items = append(s.items, entries...)
	return s
}

// EnsureExists implements journal.Initializer. Nothing to do in memory.
func (s *Store) EnsureExists() error {
	return nil
}

// Create implements journal.Initializer by discarding all rows.
func (s *Store) Create() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

// Append implements journal.EntryWriter. Rows are stored as given; the
// record invariant is checked by readers, not on the way in.
func (s *Store) Append(_ context.Context, e core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, e)
	return nil
}

// All implements journal.EntryReader.
func (s *Store) All(_ context.Context) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Entry
	for _, e := range s.items {
		if e.HasName() {
			out = append(out, e)
		}
	}
	return out, nil
}

// ByName implements journal.EntryReader.
func (s *Store) ByName(_ context.Context, name string) (core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if e.HasName() && e.Name == name {
			return e, nil
		}
	}
	return core.Entry{}, fmt.Errorf("entry %q: %w", name, journal.ErrEntryNotFound)
}

// OnDate implements journal.EntryReader.
func (s *Store) OnDate(_ context.Context, day time.Time) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Entry
	for _, e := range s.items {
		if !e.HasName() {
			continue
		}
		ts, err := e.Timestamp()
		if err != nil {
			continue
		}
		if sameDate(ts, day) {
			out = append(out, e)
		}
	}
	return out, nil
}

// WithinWindow implements journal.EntryReader.
func (s *Store) WithinWindow(_ context.Context, days int) ([]core.Entry, error) {
	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Entry
	for _, e := range s.items {
		if !e.HasName() {
			continue
		}
		ts, err := e.Timestamp()
		if err != nil {
			continue
		}
		if !ts.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

// CountCorrupted implements journal.CorruptionScanner.
func (s *Store) CountCorrupted(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, e := range s.items {
		if err := e.Validate(); err != nil {
			count++
		}
	}
	return count, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
