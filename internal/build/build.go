// Package build drives the project's own web build pipeline through its
// package.json build script.
package build

import (
	"context"

	"github.com/nurdun/ionic-cli/internal/npm"
	"github.com/nurdun/ionic-cli/internal/project"
	"github.com/nurdun/ionic-cli/internal/shell"
)

// Options are the web-build toggles forwarded to the build script.
type Options struct {
	Prod       bool
	Aot        bool
	MinifyJS   bool
	MinifyCSS  bool
	OptimizeJS bool
}

// Runner invokes the production-style asset build.
type Runner struct {
	Project *project.Project
	Shell   shell.Runner
	PM      npm.Client
}

// Build runs the project build script with the toggles exported as
// environment variables for the script to consume.
func (r *Runner) Build(ctx context.Context, opts Options) error {
	return r.PM.RunScript(ctx, r.Shell, r.Project.Dir, "build", env(opts))
}

func env(opts Options) []string {
	var vars []string
	set := func(name string, on bool) {
		if on {
			vars = append(vars, name+"=true")
		}
	}
	set("IONIC_PROD", opts.Prod)
	set("IONIC_AOT", opts.Aot)
	set("IONIC_MINIFY_JS", opts.MinifyJS)
	set("IONIC_MINIFY_CSS", opts.MinifyCSS)
	set("IONIC_OPTIMIZE_JS", opts.OptimizeJS)
	return vars
}
