// Package ui holds the console output helpers shared by all commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirects helper output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

func emit(prefix, msg string, st lipgloss.Style) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, st.Render(prefix)+" "+msg)
}

// Info prints an informational notice.
func Info(msg string) { emit("[INFO]", msg, infoStyle) }

// Success prints a completion notice.
func Success(msg string) { emit("[OK]", msg, successStyle) }

// Warn prints a non-fatal warning.
func Warn(msg string) { emit("[WARN]", msg, warnStyle) }

// Error prints a failure line.
func Error(msg string) { emit("[ERROR]", msg, errorStyle) }
