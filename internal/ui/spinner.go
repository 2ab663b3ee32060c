package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows indeterminate progress while a slow external step runs.
type Spinner struct {
	program *tea.Program
	done    chan struct{}
}

type spinnerModel struct {
	spin spinner.Model
	text string
}

func (m spinnerModel) Init() tea.Cmd { return m.spin.Tick }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.QuitMsg:
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	return m.spin.View() + " " + m.text + "\n"
}

// NewSpinner creates a spinner with the given status text.
func NewSpinner(text string) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	return &Spinner{
		program: tea.NewProgram(spinnerModel{spin: s, text: text}),
		done:    make(chan struct{}),
	}
}

// Start renders the spinner until Stop is called.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
}

// Stop clears the spinner and returns once rendering has shut down.
func (s *Spinner) Stop() {
	s.program.Quit()
	<-s.done
}
