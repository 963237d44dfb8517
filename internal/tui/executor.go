// Package tui provides the interactive terminal interface for the
// nutrition tracker.
//
// The codebase is split into multiple files for better organization:
// - executor.go: Executor implementation and program lifecycle
// - model.go: Core model structure and state
// - update.go: Bubble Tea Update function and message handling
// - view.go: Bubble Tea View function and rendering
// - validate.go: Prompt input validation
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Executor drives the interactive session over a Bubble Tea program.
type Executor struct {
	deps    Deps
	program *tea.Program
}

// NewExecutor creates an executor around the wired services.
func NewExecutor(deps Deps) *Executor {
	return &Executor{deps: deps}
}

// Run starts the interface and blocks until the user exits.
func (e *Executor) Run(ctx context.Context) error {
	m := newModel(ctx, e.deps)
	e.program = tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := e.program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}
	return nil
}
