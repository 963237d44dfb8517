package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"macros/internal/core"
	"macros/internal/journal"
	"macros/internal/journal/memory"
)

func TestDailyTotals(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(
		core.NewEntry("Oatmeal", 10, 5, 60, 320, now),
		core.NewEntry("Eggs", 18, 12, 1, 210, now),
		core.NewEntry("Yesterday", 99, 99, 99, 999, now.Add(-48*time.Hour)),
	)

	got, err := NewService(store).DailyTotals(ctx, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}

	want := core.Summary{Label: core.DailyTotalLabel, Protein: 28, Fat: 17, Carbs: 61, Calories: 530}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDailyTotalsZeroIsNotNoData(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(core.NewEntry("Water", 0, 0, 0, 0, now))

	got, err := NewService(store).DailyTotals(ctx, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}

	// An all-zero day is a real total, not an absence of data.
	want := core.Summary{Label: core.DailyTotalLabel}
	if got != want {
		t.Fatalf("expected zero summary, got %+v", got)
	}
}

func TestDailyTotalsSkipsUnparsableColumns(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(
		core.NewEntry("Oatmeal", 10, 5, 27, 190, now),
		core.Entry{Name: "Scribble", Protein: "junk", Fat: "2", Carbs: "", Calories: "100", LoggedAt: core.FormatTimestamp(now)},
	)

	got, err := NewService(store).DailyTotals(ctx, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}

	// The malformed protein and blank carbs drop out; the row's other
	// columns still contribute.
	want := core.Summary{Label: core.DailyTotalLabel, Protein: 10, Fat: 7, Carbs: 27, Calories: 290}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDailyTotalsSkipsNonFiniteColumns(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(
		core.NewEntry("Oatmeal", 10, 5, 27, 190, now),
		core.Entry{Name: "Edited", Protein: "nan", Fat: "inf", Carbs: "3", Calories: "-inf", LoggedAt: core.FormatTimestamp(now)},
	)

	got, err := NewService(store).DailyTotals(ctx, now)
	if err != nil {
		t.Fatalf("daily totals: %v", err)
	}

	// Non-finite text drops out of the sums like any other unparsable value.
	want := core.Summary{Label: core.DailyTotalLabel, Protein: 10, Fat: 5, Carbs: 30, Calories: 190}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDailyTotalsNoData(t *testing.T) {
	ctx := context.Background()
	store := memory.New(
		core.NewEntry("LastWeek", 10, 5, 27, 190, time.Now().Add(-9*24*time.Hour)),
	)

	if _, err := NewService(store).DailyTotals(ctx, time.Now()); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestWeeklyAverages(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(
		core.NewEntry("A", 10, 3, 30, 100, now.Add(-time.Hour)),
		core.NewEntry("B", 10, 3, 30, 200, now.Add(-2*24*time.Hour)),
		core.NewEntry("C", 11, 3, 31, 300, now.Add(-5*24*time.Hour)),
		core.NewEntry("TooOld", 50, 50, 50, 500, now.Add(-9*24*time.Hour)),
	)

	got, err := NewService(store).WeeklyAverages(ctx)
	if err != nil {
		t.Fatalf("weekly averages: %v", err)
	}

	want := core.Summary{Label: core.WeeklyAverageLabel, Protein: 10.33, Fat: 3, Carbs: 30.33, Calories: 200}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestWeeklyAveragesDivisorCountsEveryRow(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := memory.New(
		core.NewEntry("A", 10, 4, 20, 100, now.Add(-time.Hour)),
		core.Entry{Name: "B", Protein: "junk", Fat: "junk", Carbs: "junk", Calories: "junk", LoggedAt: core.FormatTimestamp(now)},
	)

	got, err := NewService(store).WeeklyAverages(ctx)
	if err != nil {
		t.Fatalf("weekly averages: %v", err)
	}

	// The unparsable row contributes nothing to the sums but still counts
	// toward the divisor.
	want := core.Summary{Label: core.WeeklyAverageLabel, Protein: 5, Fat: 2, Carbs: 10, Calories: 50}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestWeeklyAveragesNoData(t *testing.T) {
	ctx := context.Background()
	if _, err := NewService(memory.New()).WeeklyAverages(ctx); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

type failingReader struct{ err error }

func (r failingReader) All(context.Context) ([]core.Entry, error) { return nil, r.err }
func (r failingReader) ByName(context.Context, string) (core.Entry, error) {
	return core.Entry{}, r.err
}
func (r failingReader) OnDate(context.Context, time.Time) ([]core.Entry, error) {
	return nil, r.err
}
func (r failingReader) WithinWindow(context.Context, int) ([]core.Entry, error) {
	return nil, r.err
}

func TestStatsMissingStoreMeansNoData(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingReader{err: journal.ErrStoreNotFound})

	if _, err := svc.DailyTotals(ctx, time.Now()); !errors.Is(err, ErrNoData) {
		t.Fatalf("daily totals: expected ErrNoData, got %v", err)
	}
	if _, err := svc.WeeklyAverages(ctx); !errors.Is(err, ErrNoData) {
		t.Fatalf("weekly averages: expected ErrNoData, got %v", err)
	}
}

func TestStatsPropagateReadErrors(t *testing.T) {
	ctx := context.Background()
	readErr := errors.New("device gone")
	svc := NewService(failingReader{err: readErr})

	if _, err := svc.DailyTotals(ctx, time.Now()); !errors.Is(err, readErr) {
		t.Fatalf("daily totals: expected read error, got %v", err)
	}
	if _, err := svc.WeeklyAverages(ctx); !errors.Is(err, readErr) {
		t.Fatalf("weekly averages: expected read error, got %v", err)
	}
}
