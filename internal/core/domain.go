package core

import (
	"errors"
	"strings"
	"time"
)

// TimestampLayout is the canonical form timestamps are written with.
const TimestampLayout = time.RFC3339

type (
	// Entry is a single logged food record. The numeric columns keep the raw
	// text exactly as stored so listings can still show rows whose numbers no
	// longer parse; coercion happens at the point a number is actually needed.
	Entry struct {
		Name     string
		Protein  string
		Fat      string
		Carbs    string
		Calories string
		LoggedAt string
	}
)

var (
	ErrEmptyName     = errors.New("empty entry name")
	ErrBadTimestamp  = errors.New("unparseable timestamp")
	ErrInvalidNumber = errors.New("invalid numeric value")
)

// timestampLayouts lists the accepted read forms tried after the canonical
// one. The naive forms cover hand-edited files and are taken as local time.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewEntry builds a fully formed entry stamped at the given time.
func NewEntry(name string, protein, fat, carbs, calories float64, at time.Time) Entry {
	return Entry{
		Name:     name,
		Protein:  FormatMacro(protein),
		Fat:      FormatMacro(fat),
		Carbs:    FormatMacro(carbs),
		Calories: FormatMacro(calories),
		LoggedAt: FormatTimestamp(at),
	}
}

// ParseTimestamp reads a stored timestamp. The canonical layout is tried
// first, then the tolerant fallbacks.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrBadTimestamp
	}
	if t, err := time.Parse(TimestampLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// FormatTimestamp renders a timestamp in the canonical layout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// HasName reports whether the entry carries a usable name. Rows without one
// are skipped by every listing scan.
func (e Entry) HasName() bool {
	return strings.TrimSpace(e.Name) != ""
}

// Timestamp parses the stored timestamp column.
func (e Entry) Timestamp() (time.Time, error) {
	return ParseTimestamp(e.LoggedAt)
}

// Validate checks the record invariant: a non-blank name and a parseable
// timestamp. Rows failing either check count as corrupted.
func (e Entry) Validate() error {
	if !e.HasName() {
		return ErrEmptyName
	}
	if _, err := ParseTimestamp(e.LoggedAt); err != nil {
		return ErrBadTimestamp
	}
	return nil
}
