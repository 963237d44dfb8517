package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"macros/internal/chart"
	"macros/internal/journal"
	"macros/internal/log"
	"macros/internal/stats"
)

const invalidChoice = "Error: Invalid Choice. Please Try Again."

// Init starts the cursor blink for the text prompts.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all state updates for the TUI model.
// This is the main event loop handler for Bubble Tea.
//
// Uses pointer receiver so navigation and prompt state survive between
// messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.screen != screenBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case entrySavedMsg:
		return m.handleEntrySaved(msg)

	case entriesLoadedMsg:
		return m.handleEntriesLoaded(msg)

	case summaryMsg:
		return m.handleSummary(msg)

	case chartDoneMsg:
		return m.handleChartDone(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress routes keyboard input to the active screen.
func (m *model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenAdd:
		return m.handleAddKey(msg)
	case screenReuse:
		return m.handleReuseKey(msg)
	case screenList:
		return m.handleListKey(msg)
	case screenStats:
		return m.handleStatsKey(msg)
	case screenSummary:
		return m.handleSummaryKey(msg)
	case screenMessage:
		return m.handleMessageKey(msg)
	}

	// Busy screen ignores everything but ctrl+c.
	return m, nil
}

func (m *model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		m.flash = ""
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		m.flash = ""
		if m.menuCursor < len(mainMenuItems)-1 {
			m.menuCursor++
		}
	case "enter":
		return m.selectMenuItem(m.menuCursor)
	case "q", "esc":
		return m, tea.Quit
	default:
		if i, ok := menuIndex(key, len(mainMenuItems)); ok {
			m.menuCursor = i
			return m.selectMenuItem(i)
		}
		if isDigit(key) {
			m.flash = invalidChoice
		}
	}
	return m, nil
}

func (m *model) selectMenuItem(i int) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch i {
	case 0:
		m.startPrompt(screenAdd)
		return m, textinput.Blink
	case 1:
		m.startPrompt(screenReuse)
		return m, textinput.Blink
	case 2:
		m.setBusy("Loading entries...")
		return m, tea.Batch(m.spinner.Tick, m.loadEntriesCmd())
	case 3:
		m.screen = screenStats
		m.statCursor = 0
	case 4:
		return m, tea.Quit
	}
	return m, nil
}

// startPrompt resets the shared text input for a fresh add or reuse flow.
func (m *model) startPrompt(s screen) {
	m.screen = s
	m.addStep = 0
	m.addName = ""
	m.addMacros = [4]float64{}
	m.flash = ""
	m.input.SetValue("")
	m.input.Prompt = reusePrompt
	if s == screenAdd {
		m.input.Prompt = addPrompts[0]
	}
	m.input.Focus()
}

func (m *model) setBusy(label string) {
	m.screen = screenBusy
	m.busy = label
}

func (m *model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.flash = ""
		m.screen = screenMenu
		return m, nil
	case "enter":
		return m.submitAddStep()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitAddStep validates the current answer and advances the add flow,
// dispatching the save once the last macro is collected.
func (m *model) submitAddStep() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	if m.addStep == 0 {
		name, err := validateName(value)
		if err != nil {
			m.flash = "Invalid Input. Please Enter a Valid String. " + err.Error()
			return m, nil
		}
		m.addName = name
	} else {
		v, err := validateMacro(value)
		if err != nil {
			m.flash = macroFlash(err)
			return m, nil
		}
		m.addMacros[m.addStep-1] = v
	}

	m.flash = ""
	m.input.SetValue("")
	if m.addStep == len(addPrompts)-1 {
		m.input.Blur()
		m.setBusy("Saving entry...")
		return m, tea.Batch(m.spinner.Tick, m.saveEntryCmd())
	}
	m.addStep++
	m.input.Prompt = addPrompts[m.addStep]
	return m, nil
}

// macroFlash renders a validation failure the way the prompts phrase it.
func macroFlash(err error) string {
	if errors.Is(err, errNegative) || errors.Is(err, errTooLarge) {
		return "Invalid Input. Please Enter a Valid Number. " + err.Error()
	}
	return err.Error()
}

func (m *model) handleReuseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.flash = ""
		m.screen = screenMenu
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.flash = "Invalid Input. Please Enter a Valid String. " + errBadName.Error()
			return m, nil
		}
		m.flash = ""
		m.input.Blur()
		m.setBusy("Looking up recipe...")
		return m, tea.Batch(m.spinner.Tick, m.reuseEntryCmd(name))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.screen = screenMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "up", "k":
		m.flash = ""
		if m.statCursor > 0 {
			m.statCursor--
		}
	case "down", "j":
		m.flash = ""
		if m.statCursor < len(statsMenuItems)-1 {
			m.statCursor++
		}
	case "enter":
		return m.selectStatsItem(m.statCursor)
	case "esc":
		m.flash = ""
		m.screen = screenMenu
	default:
		if i, ok := menuIndex(key, len(statsMenuItems)); ok {
			m.statCursor = i
			return m.selectStatsItem(i)
		}
		if isDigit(key) {
			m.flash = invalidChoice
		}
	}
	return m, nil
}

func (m *model) selectStatsItem(i int) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch i {
	case 0:
		m.setBusy("Computing daily totals...")
		return m, tea.Batch(m.spinner.Tick, m.dailyTotalsCmd())
	case 1:
		m.setBusy("Computing weekly averages...")
		return m, tea.Batch(m.spinner.Tick, m.weeklyAveragesCmd())
	case 2:
		m.setBusy("Rendering chart...")
		return m, tea.Batch(m.spinner.Tick, m.renderChartCmd())
	case 3:
		m.screen = screenMenu
	}
	return m, nil
}

func (m *model) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "q":
		m.screen = screenMenu
	}
	return m, nil
}

func (m *model) handleMessageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.message = ""
		m.corrupted = 0
		m.screen = screenMenu
	}
	return m, nil
}

// showMessage switches to the transient message screen.
func (m *model) showMessage(text string, kind messageKind) {
	m.screen = screenMessage
	m.message = text
	m.messageKind = kind
	m.corrupted = 0
}

func (m *model) handleEntrySaved(msg entrySavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		detail := msg.err.Error()
		if errors.Is(msg.err, journal.ErrEntryNotFound) {
			detail = "Recipe Not Found in the Nutrition Entries List."
		}
		m.showMessage(fmt.Sprintf("Error: Failed to Add Nutrition Data. Details: %s", detail), messageError)
		return m, nil
	}
	m.showMessage("Nutrition Data Added Successfully!", messageSuccess)
	return m, nil
}

func (m *model) handleEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.showMessage(fmt.Sprintf("Error: No Entries Found. Details: %s", msg.err), messageError)
		return m, nil
	}
	if len(msg.entries) == 0 {
		m.showMessage("No Entries Found.", messageInfo)
		m.corrupted = msg.corrupted
		return m, nil
	}
	m.table = entriesTable(msg.entries)
	m.corrupted = msg.corrupted
	m.screen = screenList
	return m, nil
}

func (m *model) handleSummary(msg summaryMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, stats.ErrNoData) {
		empty := "No Entries Found for Today"
		if msg.weekly {
			empty = "No Entries Found for this Week"
		}
		m.showMessage(empty, messageInfo)
		m.corrupted = msg.corrupted
		return m, nil
	}
	if msg.err != nil {
		m.showMessage(fmt.Sprintf("Error: No Entries Found. Details: %s", msg.err), messageError)
		return m, nil
	}
	m.summary = msg.summary
	m.corrupted = msg.corrupted
	m.screen = screenSummary
	return m, nil
}

func (m *model) handleChartDone(msg chartDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		m.showMessage(fmt.Sprintf("Chart saved to %s", msg.path), messageSuccess)
	case errors.Is(msg.err, chart.ErrNoData):
		m.showMessage(fmt.Sprintf("No entries found for the last %d days.", m.window), messageInfo)
	case errors.Is(msg.err, chart.ErrNoValidData):
		m.showMessage(fmt.Sprintf("No valid entries found for the last %d days after processing.", m.window), messageInfo)
	default:
		m.showMessage(fmt.Sprintf("Failed to save chart: %s", msg.err), messageError)
	}
	return m, nil
}

// saveEntryCmd persists the collected add flow answers.
func (m *model) saveEntryCmd() tea.Cmd {
	ctx, svc := m.ctx, m.entries
	name, macros := m.addName, m.addMacros
	return func() tea.Msg {
		entry, err := svc.Add(ctx, name, macros[0], macros[1], macros[2], macros[3])
		return entrySavedMsg{entry: entry, err: err}
	}
}

// reuseEntryCmd copies the named entry under a fresh timestamp.
func (m *model) reuseEntryCmd(name string) tea.Cmd {
	ctx, svc := m.ctx, m.entries
	return func() tea.Msg {
		entry, err := svc.Reuse(ctx, name)
		return entrySavedMsg{entry: entry, err: err}
	}
}

// loadEntriesCmd reads the full listing. A store that does not exist yet
// reads as an empty one.
func (m *model) loadEntriesCmd() tea.Cmd {
	ctx, reader := m.ctx, m.reader
	count := m.corruptionCount()
	return func() tea.Msg {
		entries, err := reader.All(ctx)
		if errors.Is(err, journal.ErrStoreNotFound) {
			return entriesLoadedMsg{}
		}
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{entries: entries, corrupted: count()}
	}
}

// corruptionCount returns a closure yielding the skipped-row count for the
// warning line. The count is advisory, so scan failures read as zero.
func (m *model) corruptionCount() func() int {
	ctx, scanner, logger := m.ctx, m.scanner, m.logger
	return func() int {
		n, err := scanner.CountCorrupted(ctx)
		if err != nil {
			if !errors.Is(err, journal.ErrStoreNotFound) {
				logger.WarnContext(ctx, "Corruption scan failed", log.FieldError, err)
			}
			return 0
		}
		return n
	}
}

// dailyTotalsCmd computes today's summary. A day with nothing readable
// still reports the rows the corruption scan skipped.
func (m *model) dailyTotalsCmd() tea.Cmd {
	ctx, svc := m.ctx, m.stats
	count := m.corruptionCount()
	return func() tea.Msg {
		summary, err := svc.DailyTotals(ctx, time.Now())
		if errors.Is(err, stats.ErrNoData) {
			return summaryMsg{err: err, corrupted: count()}
		}
		if err != nil {
			return summaryMsg{err: err}
		}
		return summaryMsg{summary: summary, corrupted: count()}
	}
}

func (m *model) weeklyAveragesCmd() tea.Cmd {
	ctx, svc := m.ctx, m.stats
	count := m.corruptionCount()
	return func() tea.Msg {
		summary, err := svc.WeeklyAverages(ctx)
		if errors.Is(err, stats.ErrNoData) {
			return summaryMsg{weekly: true, err: err, corrupted: count()}
		}
		if err != nil {
			return summaryMsg{weekly: true, err: err}
		}
		return summaryMsg{weekly: true, summary: summary, corrupted: count()}
	}
}

func (m *model) renderChartCmd() tea.Cmd {
	ctx, renderer := m.ctx, m.chart
	dir, days := m.chartDir, m.window
	return func() tea.Msg {
		path, err := renderer.RenderWeekly(ctx, dir, days)
		return chartDoneMsg{path: path, err: err}
	}
}

// menuIndex maps a digit key to a zero-based menu slot.
func menuIndex(key string, items int) (int, bool) {
	v, err := strconv.Atoi(key)
	if err != nil || v < 1 || v > items {
		return 0, false
	}
	return v - 1, true
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
