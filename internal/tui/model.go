package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"macros/internal/chart"
	"macros/internal/config"
	"macros/internal/core"
	"macros/internal/journal"
	"macros/internal/log"
	"macros/internal/services"
	"macros/internal/stats"
)

// screen identifies which view the session is currently showing.
type screen int

const (
	screenMenu screen = iota
	screenAdd
	screenReuse
	screenList
	screenStats
	screenSummary
	screenBusy
	screenMessage
)

// addPrompts are the questions of the add flow, asked in column order.
var addPrompts = []string{
	"Add Name of Nutrition Entry: ",
	"Add Protein in grams: ",
	"Add Fat in grams: ",
	"Add Carbs in grams: ",
	"Add Calories in kcal: ",
}

const reusePrompt = "Enter the Name of the Recipe to use from the Nutrition Entries List: "

// mainMenuItems mirror the classic menu layout.
var mainMenuItems = []string{
	"Add Nutrition Entry",
	"Use Existing Nutrition Entry",
	"View Nutrition Entries",
	"View Statistics",
	"Exit",
}

var statsMenuItems = []string{
	"Daily Totals",
	"Weekly Averages",
	"Generate Weekly Chart",
	"Back to Main Menu",
}

// messageKind selects the styling of a transient message screen.
type messageKind int

const (
	messageSuccess messageKind = iota
	messageError
	messageInfo
)

// model represents the state of the TUI application.
// It contains all components needed for the interactive terminal interface.
type model struct {
	// Bubble Tea components
	input   textinput.Model
	table   table.Model
	spinner spinner.Model

	// Collaborators
	entries  *services.EntryService
	stats    *stats.Service
	chart    *chart.Renderer
	reader   journal.EntryReader
	scanner  journal.CorruptionScanner
	logger   *log.Logger
	chartDir string
	window   int

	// Navigation state
	screen     screen
	menuCursor int
	statCursor int

	// busy labels the spinner while a store operation runs.
	busy string

	// Add flow state
	addStep   int
	addName   string
	addMacros [4]float64

	// Transient message state
	message     string
	messageKind messageKind
	corrupted   int

	// flash is an inline validation hint shown above the active prompt.
	flash string

	// Summary state
	summary core.Summary

	// Window dimensions
	width  int
	height int

	ctx context.Context
}

// Deps bundles everything the interactive session needs.
type Deps struct {
	Entries *services.EntryService
	Stats   *stats.Service
	Chart   *chart.Renderer
	Reader  journal.EntryReader
	Scanner journal.CorruptionScanner
	Config  *config.Config
	Logger  *log.Logger
}

func newModel(ctx context.Context, deps Deps) model {
	input := textinput.New()
	input.CharLimit = 64
	input.Width = 48
	input.PromptStyle = promptStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	logger := deps.Logger
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}

	return model{
		input:    input,
		spinner:  sp,
		entries:  deps.Entries,
		stats:    deps.Stats,
		chart:    deps.Chart,
		reader:   deps.Reader,
		scanner:  deps.Scanner,
		logger:   logger.WithComponent(log.ComponentTUI),
		chartDir: deps.Config.ChartDir,
		window:   deps.Config.WindowDays,
		screen:   screenMenu,
		ctx:      ctx,
	}
}

// entrySavedMsg reports the outcome of an add or reuse write.
type entrySavedMsg struct {
	entry core.Entry
	err   error
}

// entriesLoadedMsg carries a listing plus the corruption count shown with it.
type entriesLoadedMsg struct {
	entries   []core.Entry
	corrupted int
	err       error
}

// summaryMsg carries a computed statistics row. weekly selects the empty
// message shown when the period has no entries.
type summaryMsg struct {
	summary   core.Summary
	corrupted int
	weekly    bool
	err       error
}

// chartDoneMsg reports the chart export outcome.
type chartDoneMsg struct {
	path string
	err  error
}
