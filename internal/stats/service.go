// Package stats derives the summary figures shown by the statistics views.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"macros/internal/core"
	"macros/internal/journal"
)

// windowDays is the trailing window the weekly average is taken over.
const windowDays = 7

// ErrNoData reports an aggregate whose scan matched no entries. A store
// that does not exist yet counts as no data. Callers branch on it instead
// of displaying a zero-filled summary.
var ErrNoData = errors.New("no entries for period")

// Service computes derived summaries over an entry reader.
type Service struct {
	reader journal.EntryReader
}

func NewService(reader journal.EntryReader) *Service {
	return &Service{reader: reader}
}

// DailyTotals sums every numeric column across the entries logged on day's
// calendar date.
func (s *Service) DailyTotals(ctx context.Context, day time.Time) (core.Summary, error) {
	entries, err := s.reader.OnDate(ctx, day)
	if errors.Is(err, journal.ErrStoreNotFound) {
		return core.Summary{}, ErrNoData
	}
	if err != nil {
		return core.Summary{}, fmt.Errorf("daily totals: %w", err)
	}
	if len(entries) == 0 {
		return core.Summary{}, ErrNoData
	}

	sums := sumColumns(entries)
	slog.InfoContext(ctx, "Daily totals computed",
		"date", day.Format("2006-01-02"),
		"entries", len(entries))

	return core.Summary{
		Label:    core.DailyTotalLabel,
		Protein:  core.Round2(sums.protein),
		Fat:      core.Round2(sums.fat),
		Carbs:    core.Round2(sums.carbs),
		Calories: core.Round2(sums.calories),
	}, nil
}

// WeeklyAverages divides the trailing-week sums by the number of entries in
// the window, so the figure is a per-entry mean rather than a per-day one.
func (s *Service) WeeklyAverages(ctx context.Context) (core.Summary, error) {
	entries, err := s.reader.WithinWindow(ctx, windowDays)
	if errors.Is(err, journal.ErrStoreNotFound) {
		return core.Summary{}, ErrNoData
	}
	if err != nil {
		return core.Summary{}, fmt.Errorf("weekly averages: %w", err)
	}
	if len(entries) == 0 {
		return core.Summary{}, ErrNoData
	}

	sums := sumColumns(entries)
	n := float64(len(entries))
	slog.InfoContext(ctx, "Weekly averages computed", "entries", len(entries))

	return core.Summary{
		Label:    core.WeeklyAverageLabel,
		Protein:  core.Round2(sums.protein / n),
		Fat:      core.Round2(sums.fat / n),
		Carbs:    core.Round2(sums.carbs / n),
		Calories: core.Round2(sums.calories / n),
	}, nil
}

type columnSums struct {
	protein  float64
	fat      float64
	carbs    float64
	calories float64
}

// sumColumns adds up each numeric column independently. A value that does
// not coerce drops out of its own column's sum; the rest of the row still
// counts.
func sumColumns(entries []core.Entry) columnSums {
	var sums columnSums
	for _, e := range entries {
		if v, err := core.ParseMacro(e.Protein); err == nil {
			sums.protein += v
		}
		if v, err := core.ParseMacro(e.Fat); err == nil {
			sums.fat += v
		}
		if v, err := core.ParseMacro(e.Carbs); err == nil {
			sums.carbs += v
		}
		if v, err := core.ParseMacro(e.Calories); err == nil {
			sums.calories += v
		}
	}
	return sums
}
