package backend

import (
	"context"

	"macros/internal/journal"
)

// Backend represents a unified backend interface that provides all entry
// store operations the application consumes.
type Backend interface {
	journal.EntryWriter
	journal.EntryReader
	journal.CorruptionScanner
	journal.Initializer
}

// BackendResult contains the backend instance and, for file-based backends,
// the store location.
type BackendResult struct {
	Backend Backend
	Path    string
}

// Factory creates backends based on configuration
type Factory interface {
	// CreateBackend creates a backend instance based on the provided config
	CreateBackend(ctx context.Context, config Config) (*BackendResult, error)
}

// Config holds configuration for backend creation
type Config struct {
	// Backend type
	Type BackendType

	// CSV specific
	StorePath string
}

// BackendType represents the type of backend
type BackendType string

const (
	CSVBackend    BackendType = "csv"
	MemoryBackend BackendType = "memory"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case CSVBackend, MemoryBackend:
		return true
	default:
		return false
	}
}
