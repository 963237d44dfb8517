// Package chart renders the trailing-week macronutrient chart.
package chart

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"macros/internal/core"
	"macros/internal/journal"
	"macros/internal/log"
)

// FileName is the chart image written under the export directory.
const FileName = "graph.png"

var (
	// ErrNoData reports a window with no entries at all. A store that does
	// not exist yet counts as no data.
	ErrNoData = errors.New("no entries in window")
	// ErrNoValidData reports a window whose entries all lack a usable
	// timestamp, leaving nothing to group by date.
	ErrNoValidData = errors.New("no valid entries after processing")
)

// series is the fixed column order of the grouped bars.
var series = []string{"Calories", "Protein", "Fat", "Carbs"}

// Renderer draws entry data as a grouped-by-date bar chart.
type Renderer struct {
	reader journal.EntryReader
	logger *log.Logger
}

func NewRenderer(reader journal.EntryReader, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Renderer{
		reader: reader,
		logger: logger.WithComponent(log.ComponentChart),
	}
}

// RenderWeekly charts the trailing window grouped by calendar date and
// writes the image under dir, creating the directory if needed. Returns the
// written file path. Rows without a parseable timestamp are dropped; a
// numeric column that does not parse contributes zero to its bar.
func (r *Renderer) RenderWeekly(ctx context.Context, dir string, days int) (string, error) {
	entries, err := r.reader.WithinWindow(ctx, days)
	if errors.Is(err, journal.ErrStoreNotFound) {
		return "", ErrNoData
	}
	if err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	if len(entries) == 0 {
		return "", ErrNoData
	}

	dates, totals := groupByDate(entries)
	if len(dates) == 0 {
		return "", ErrNoValidData
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create chart directory: %w", err)
	}
	path := filepath.Join(dir, FileName)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Daily Macronutrient Intake (Last %d Days)", days)
	p.Y.Label.Text = "Grams (g)"
	p.X.Label.Text = "Date"
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	width := vg.Points(8)
	for i, name := range series {
		bars, err := plotter.NewBarChart(values(totals, dates, name), width)
		if err != nil {
			return "", fmt.Errorf("build %s bars: %w", name, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = width * (vg.Length(i) - vg.Length(len(series)-1)/2)
		p.Add(bars)
		p.Legend.Add(name, bars)
	}
	p.NominalX(dates...)

	if err := p.Save(12*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save chart: %w", err)
	}

	r.logger.InfoContext(ctx, "Weekly chart rendered", log.NewFields().
		WithOperation(log.OpRender).
		WithPath(path).
		ToSlice()...)
	return path, nil
}

// groupByDate sums each numeric column per calendar date, ascending.
func groupByDate(entries []core.Entry) ([]string, map[string]map[string]float64) {
	totals := make(map[string]map[string]float64)
	for _, e := range entries {
		ts, err := e.Timestamp()
		if err != nil {
			continue
		}
		date := ts.Format("2006-01-02")
		day := totals[date]
		if day == nil {
			day = make(map[string]float64)
			totals[date] = day
		}
		day["Calories"] += numericOrZero(e.Calories)
		day["Protein"] += numericOrZero(e.Protein)
		day["Fat"] += numericOrZero(e.Fat)
		day["Carbs"] += numericOrZero(e.Carbs)
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, totals
}

func values(totals map[string]map[string]float64, dates []string, name string) plotter.Values {
	vals := make(plotter.Values, len(dates))
	for i, date := range dates {
		vals[i] = totals[date][name]
	}
	return vals
}

func numericOrZero(s string) float64 {
	v, err := core.ParseMacro(s)
	if err != nil {
		return 0
	}
	return v
}
