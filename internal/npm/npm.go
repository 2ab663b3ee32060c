package npm

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nurdun/ionic-cli/internal/shell"
)

// Client identifies the JavaScript package manager in use.
type Client string

const (
	Npm  Client = "npm"
	Yarn Client = "yarn"
	Pnpm Client = "pnpm"
)

// Detect picks the package manager for projectDir. An explicit preference
// wins; otherwise lockfiles decide, falling back to npm.
func Detect(projectDir, preferred string) Client {
	switch Client(strings.ToLower(strings.TrimSpace(preferred))) {
	case Yarn:
		return Yarn
	case Pnpm:
		return Pnpm
	case Npm:
		return Npm
	}
	if fileExists(filepath.Join(projectDir, "yarn.lock")) {
		return Yarn
	}
	if fileExists(filepath.Join(projectDir, "pnpm-lock.yaml")) {
		return Pnpm
	}
	return Npm
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// GlobalInstallArgs returns the argument list that installs pkg globally
// with this client.
func (c Client) GlobalInstallArgs(pkg string) []string {
	switch c {
	case Yarn:
		return []string{"global", "add", pkg}
	case Pnpm:
		return []string{"add", "-g", pkg}
	default:
		return []string{"install", "-g", pkg}
	}
}

// GlobalInstallCommand renders the full remediation command line for pkg,
// suitable for printing in error messages.
func (c Client) GlobalInstallCommand(pkg string) string {
	return string(c) + " " + strings.Join(c.GlobalInstallArgs(pkg), " ")
}

// RunScriptArgs returns the argument list that runs a package.json script.
func (c Client) RunScriptArgs(script string) []string {
	return []string{"run", script}
}

// RunScript executes a package.json script in dir, streaming output, with
// extra environment variables appended.
func (c Client) RunScript(ctx context.Context, sh shell.Runner, dir, script string, env []string) error {
	_, err := sh.Run(ctx, string(c), c.RunScriptArgs(script), shell.Options{
		Dir:    dir,
		Env:    env,
		Stream: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("%s run %s: %w", c, script, err)
	}
	return nil
}
