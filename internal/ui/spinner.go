package ui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type spinnerDoneMsg struct{}

// spinnerModel animates a label until spinnerDoneMsg arrives
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return spinnerModel{spinner: s, label: label}
}

// Init implements tea.Model
func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model
func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model. The line is cleared once done.
func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return "  " + m.spinner.View() + " " + m.label + "\n"
}

// RunWithSpinner runs fn while an animated label is drawn on out. When
// animate is false fn simply runs. fn's result is returned either way.
func RunWithSpinner[T any](ctx context.Context, out io.Writer, animate bool, label string, fn func(context.Context) (T, error)) (T, error) {
	if !animate {
		return fn(ctx)
	}

	type result struct {
		value T
		err   error
	}

	p := tea.NewProgram(newSpinnerModel(label),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)

	results := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		results <- result{v, err}
		p.Send(spinnerDoneMsg{})
	}()

	// The program only draws; fn's result is what matters
	_, _ = p.Run()

	res := <-results
	return res.value, res.err
}
