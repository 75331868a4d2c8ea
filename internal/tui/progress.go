// Package tui shows pipeline progress while a document is generated.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Step is a named unit of the generation pipeline.
type Step struct {
	Name string
	Run  func() error
}

type stepDoneMsg struct{}
type stepErrMsg struct{ err error }

// Model runs steps sequentially behind a progress bar.
type Model struct {
	steps    []Step
	current  int
	progress progress.Model
	done     bool
	err      error
}

// New creates a Model for the given steps.
func New(steps []Step) Model {
	return Model{
		steps:    steps,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.runCurrentStep()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case stepDoneMsg:
		m.current++
		if m.current >= len(m.steps) {
			m.done = true
			return m, tea.Quit
		}
		return m, tea.Batch(
			m.progress.SetPercent(float64(m.current)/float64(len(m.steps))),
			m.runCurrentStep(),
		)

	case stepErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for i := 0; i < m.current && i < len(m.steps); i++ {
		fmt.Fprintf(&b, "  ✓ %s\n", m.steps[i].Name)
	}
	if m.err != nil {
		fmt.Fprintf(&b, "  Error: %v\n", m.err)
		return b.String()
	}
	if m.done {
		b.WriteString("  Done.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "  … %s\n  %s\n", m.steps[m.current].Name, m.progress.View())
	return b.String()
}

func (m Model) runCurrentStep() tea.Cmd {
	step := m.steps[m.current]
	return func() tea.Msg {
		if err := step.Run(); err != nil {
			return stepErrMsg{err: err}
		}
		return stepDoneMsg{}
	}
}

// Err returns any error that occurred during step execution.
func (m Model) Err() error {
	return m.err
}

// RunSteps executes steps without the UI, for quiet mode.
func RunSteps(steps []Step) error {
	for _, s := range steps {
		if err := s.Run(); err != nil {
			return err
		}
	}
	return nil
}
