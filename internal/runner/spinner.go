package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunQuiet runs the command in dir, discarding its output and showing
// a spinner labelled with the project path instead.
func (r *Runner) RunQuiet(ctx context.Context, dir string, name string, args ...string) error {
	quiet := &Runner{
		stdout:      io.Discard,
		stderr:      io.Discard,
		env:         r.env,
		commandFunc: r.commandFunc,
	}

	done := make(chan error, 1)
	go func() {
		done <- quiet.RunIn(ctx, dir, name, args...)
	}()

	m := newSpinnerModel(dir)
	p := tea.NewProgram(m, tea.WithOutput(r.stderr))
	go func() {
		// Spinner errors only cost the animation, never the run.
		_, _ = p.Run()
	}()

	err := <-done
	p.Send(spinnerDoneMsg{err: err})

	// Give the spinner time to render its final state.
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return err
}

// spinnerModel is the bubbletea model for the per-project spinner.
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("✖ %s\n", m.message)
		}
		return fmt.Sprintf("✔ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}
