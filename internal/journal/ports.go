package journal

import (
	"context"
	"errors"
	"time"

	"macros/internal/core"
)

// Ports for entry store adapters.
type (
	EntryWriter interface {
		Append(ctx context.Context, e core.Entry) error
	}

	// EntryReader scans the store. Readers skip rows without a name; the
	// date-bound methods additionally skip rows whose timestamp does not
	// parse.
	EntryReader interface {
		// All returns every named row in insertion order.
		All(ctx context.Context) ([]core.Entry, error)
		// ByName returns the earliest row whose name matches exactly.
		ByName(ctx context.Context, name string) (core.Entry, error)
		// OnDate returns rows logged on the same calendar date as day.
		OnDate(ctx context.Context, day time.Time) ([]core.Entry, error)
		// WithinWindow returns rows logged no earlier than days before now.
		WithinWindow(ctx context.Context, days int) ([]core.Entry, error)
	}

	// CorruptionScanner counts rows failing the record invariant without
	// surfacing their contents.
	CorruptionScanner interface {
		CountCorrupted(ctx context.Context) (int, error)
	}

	// Initializer owns store lifecycle. Append never creates the store; the
	// caller reacts to ErrStoreNotFound with EnsureExists and retries once.
	Initializer interface {
		// EnsureExists creates an empty store if none is present. Idempotent.
		EnsureExists() error
		// Create resets the store to its empty state, discarding any rows.
		Create() error
	}
)

var (
	// ErrStoreNotFound reports an operation against a store that has not
	// been created yet.
	ErrStoreNotFound = errors.New("entry store not found")
	// ErrEntryNotFound reports a name lookup that matched nothing.
	ErrEntryNotFound = errors.New("entry not found")
)
