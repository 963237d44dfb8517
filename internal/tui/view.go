package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"macros/internal/core"
)

// View renders the active screen.
// This is called by Bubble Tea whenever the UI needs to be redrawn.
func (m *model) View() string {
	var body string
	switch m.screen {
	case screenMenu:
		body = m.viewMenu()
	case screenAdd:
		body = m.viewAdd()
	case screenReuse:
		body = m.viewReuse()
	case screenList:
		body = m.viewList()
	case screenStats:
		body = m.viewStats()
	case screenSummary:
		body = m.viewSummary()
	case screenBusy:
		body = m.viewBusy()
	case screenMessage:
		body = m.viewMessage()
	}
	return body + "\n"
}

func (m *model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to the Nutrition Tracker!"))
	b.WriteString("\n\n")
	b.WriteString(renderMenu(mainMenuItems, m.menuCursor))
	if m.flash != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.flash))
	}
	b.WriteString("\n\n" + helpStyle.Render("up/down move • enter select • 1-5 jump • q quit"))
	return b.String()
}

func (m *model) viewStats() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics Menu:"))
	b.WriteString("\n\n")
	b.WriteString(renderMenu(statsMenuItems, m.statCursor))
	if m.flash != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.flash))
	}
	b.WriteString("\n\n" + helpStyle.Render("up/down move • enter select • esc back"))
	return b.String()
}

// renderMenu lays out numbered items with a cursor marker.
func renderMenu(items []string, cursor int) string {
	var b strings.Builder
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if i == cursor {
			b.WriteString(menuSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(menuItemStyle.Render(line))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *model) viewAdd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Nutrition Entry"))
	b.WriteString("\n\n")

	// Answered prompts stay on screen so the flow reads like a form.
	for i := 0; i < m.addStep; i++ {
		answer := m.addName
		if i > 0 {
			answer = core.FormatMacro(m.addMacros[i-1])
		}
		b.WriteString(helpStyle.Render(addPrompts[i]+answer) + "\n")
	}

	b.WriteString(m.input.View())
	if m.flash != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.flash))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter confirm • esc cancel"))
	return b.String()
}

func (m *model) viewReuse() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Use Existing Nutrition Entry"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	if m.flash != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.flash))
	}
	b.WriteString("\n\n" + helpStyle.Render("enter confirm • esc cancel"))
	return b.String()
}

func (m *model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Nutrition Entries:"))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	if m.corrupted > 0 {
		b.WriteString("\n" + warnStyle.Render(corruptionWarning(m.corrupted)))
	}
	b.WriteString("\n" + helpStyle.Render("up/down scroll • Press Enter to continue..."))
	return b.String()
}

func (m *model) viewSummary() string {
	title := "Daily Total Intake"
	if m.summary.Label == core.WeeklyAverageLabel {
		title = "Weekly Average Intake"
	}

	header := fmt.Sprintf("%-30s %-10s %-10s %-10s %-10s", "Name", "Protein", "Fat", "Carbs", "Calories")
	row := fmt.Sprintf("%-30s %-10s %-10s %-10s %-10s",
		m.summary.Label,
		core.FormatMacro(m.summary.Protein)+"g",
		core.FormatMacro(m.summary.Fat)+"g",
		core.FormatMacro(m.summary.Carbs)+"g",
		core.FormatMacro(m.summary.Calories)+" kcal")

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(summaryBoxStyle.Render(header + "\n" + strings.Repeat("-", 80) + "\n" + row))
	if m.corrupted > 0 {
		b.WriteString("\n" + warnStyle.Render(corruptionWarning(m.corrupted)))
	}
	b.WriteString("\n" + helpStyle.Render("Press Enter to continue..."))
	return b.String()
}

func (m *model) viewBusy() string {
	return m.spinner.View() + " " + promptStyle.Render(m.busy)
}

func (m *model) viewMessage() string {
	style := menuItemStyle
	switch m.messageKind {
	case messageSuccess:
		style = successStyle
	case messageError:
		style = errorStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(m.message))
	if m.corrupted > 0 {
		b.WriteString("\n\n" + warnStyle.Render(corruptionWarning(m.corrupted)))
	}
	b.WriteString("\n\n" + helpStyle.Render("Press Enter to continue..."))
	return b.String()
}

func corruptionWarning(n int) string {
	return fmt.Sprintf("Warning: %d corrupted row(s) were skipped.", n)
}

// entriesTable builds the scrollable listing with the classic column layout.
func entriesTable(entries []core.Entry) table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Protein", Width: 10},
		{Title: "Fat", Width: 10},
		{Title: "Carbs", Width: 10},
		{Title: "Calories", Width: 12},
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Name,
			e.Protein + "g",
			e.Fat + "g",
			e.Carbs + "g",
			e.Calories + " kcal",
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(leafGreen)
	s.Selected = s.Selected.Foreground(brightWhite).Background(mutedGray)
	t.SetStyles(s)
	return t
}
