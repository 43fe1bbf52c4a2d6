package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/bnema/teambuilder-cli/internal/config"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var elapsedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

type formationDoneMsg struct {
	err error
}

// formationSpinnerModel shows what is being formed and for how long until
// the run reports back.
type formationSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	now     func() time.Time
	started time.Time
	elapsed time.Duration
	err     error
	done    bool
}

func formationLabel(cfg config.Config, rosterPath string) string {
	return fmt.Sprintf("Forming teams of %d from %s (%s)", cfg.GroupSize, filepath.Base(rosterPath), cfg.Strategy)
}

func newFormationSpinnerModel(label string, run tea.Cmd, now func() time.Time) formationSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return formationSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
		now:     now,
		started: now(),
	}
}

func (m formationSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m formationSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case formationDoneMsg:
		m.done = true
		m.err = msg.err
		m.elapsed = m.now().Sub(m.started)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m formationSpinnerModel) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if m.elapsed >= 100*time.Millisecond {
		view += " " + elapsedStyle.Render(m.elapsed.Round(100*time.Millisecond).String())
	}
	return view
}

func runFormationSpinner(ctx context.Context, output io.Writer, label string, run func(context.Context) error) error {
	runCmd := func() tea.Msg {
		return formationDoneMsg{err: run(ctx)}
	}

	p := tea.NewProgram(
		newFormationSpinnerModel(label, runCmd, time.Now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(formationSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
