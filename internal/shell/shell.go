package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode/utf8"
)

// Kind classifies why an external command failed.
type Kind int

const (
	// KindNotFound means the binary is not present on PATH.
	KindNotFound Kind = iota + 1
	// KindExit means the binary ran and exited nonzero.
	KindExit
)

// Error is the failure value returned for external command invocations.
// Callers distinguish the recovery path with errors.As and Kind.
type Error struct {
	Kind     Kind
	Name     string
	Args     []string
	ExitCode int
	Output   string // captured stderr, possibly truncated
	err      error
}

func (e *Error) Error() string {
	cmd := strings.Join(append([]string{e.Name}, e.Args...), " ")
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("command not found: %s", e.Name)
	default:
		if e.Output != "" {
			return fmt.Sprintf("%s exited with code %d: %s", cmd, e.ExitCode, e.Output)
		}
		return fmt.Sprintf("%s exited with code %d", cmd, e.ExitCode)
	}
}

func (e *Error) Unwrap() error { return e.err }

// IsNotFound reports whether err carries the command-not-found kind.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

// Options controls a single invocation.
type Options struct {
	Dir string
	Env []string // appended to the parent environment

	// Stream receives combined output as the command runs. When nil,
	// stdout is captured and returned instead.
	Stream io.Writer

	// MaxErrBytes bounds the captured stderr kept on a failure so the
	// error stays printable. Zero means DefaultMaxErrBytes.
	MaxErrBytes int
}

// DefaultMaxErrBytes bounds captured stderr on failures.
const DefaultMaxErrBytes = 8192

// Runner executes external commands. The concrete implementation is
// Exec; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (string, error)
	Exists(name string) bool
}

// Exec runs commands through os/exec.
type Exec struct{}

var _ Runner = Exec{}

// Exists reports whether name resolves on PATH. Kept separate from Run
// because pre-flight checks probe availability without invoking anything.
func (Exec) Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run invokes name with args and returns captured stdout. Failures come
// back as *Error so callers can branch on Kind.
func (Exec) Run(ctx context.Context, name string, args []string, opts Options) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	if opts.Stream != nil {
		cmd.Stdout = io.MultiWriter(opts.Stream, &stdout)
		cmd.Stderr = io.MultiWriter(opts.Stream, &stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	runErr := cmd.Run()
	if runErr == nil {
		return stdout.String(), nil
	}

	limit := opts.MaxErrBytes
	if limit <= 0 {
		limit = DefaultMaxErrBytes
	}
	captured := Truncate(strings.TrimSpace(stderr.String()), limit)

	var execErr *exec.Error
	if errors.As(runErr, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return "", &Error{Kind: KindNotFound, Name: name, Args: args, err: runErr}
	}

	exitCode := 1
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	return "", &Error{
		Kind:     KindExit,
		Name:     name,
		Args:     args,
		ExitCode: exitCode,
		Output:   captured,
		err:      runErr,
	}
}

// Truncate caps text at max bytes, marking the cut. The cut backs off to
// a rune boundary so the result stays valid UTF-8.
func Truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "\n... (output truncated)"
}
