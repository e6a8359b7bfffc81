// Package ui implements an optional command-line user interface using
// [tea]. It consumes the engine's observer events and structured logs; the
// core never requires it for correctness.
package ui

import (
	"context"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Progress is a snapshot of one running operation, published by the
// observer adapters after every processed file.
type Progress struct {
	Operation string
	Current   string
	Processed int
	Total     int
	Moved     int
	Skipped   int
	Errors    int
	Bytes     int64
	Finished  bool
}

// Handler is the principal implementation of the user interface [Handler].
type Handler struct {
	program *tea.Program

	LogWriter *TeaLogWriter

	Ready  atomic.Bool
	Failed atomic.Bool
}

// NewHandler returns a pointer to a new user interface [Handler].
func NewHandler(ctx context.Context, cancel context.CancelFunc) *Handler {
	handler := &Handler{}

	model := NewTeaModel(handler, cancel)
	handler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	handler.LogWriter = NewTeaLogWriter(handler.program)

	return handler
}

// Launch starts the command-line user interface (the [tea.Program]).
func (uiHandler *Handler) Launch() error {
	defer uiHandler.LogWriter.Stop()

	if _, err := uiHandler.program.Run(); err != nil {
		uiHandler.Failed.Store(true)

		return fmt.Errorf("(ui) %w", err)
	}

	return nil
}

// Publish sends a [Progress] snapshot into the running [tea.Program].
func (uiHandler *Handler) Publish(progress Progress) {
	uiHandler.program.Send(ProgressMsg(progress))
}

// Quit asks the user interface to terminate.
func (uiHandler *Handler) Quit() {
	uiHandler.program.Quit()
}
