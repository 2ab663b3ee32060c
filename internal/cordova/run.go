package cordova

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/nurdun/ionic-cli/internal/npm"
	"github.com/nurdun/ionic-cli/internal/project"
	"github.com/nurdun/ionic-cli/internal/serve"
	"github.com/nurdun/ionic-cli/internal/shell"
	"github.com/nurdun/ionic-cli/internal/ui"
)

// Tool is the external native build CLI this package drives.
const Tool = "cordova"

// maxToolErrBytes bounds captured cordova stderr on failures.
const maxToolErrBytes = 6000

// ConfigDoc is the native app's startup descriptor. Mutations must be
// saved before cordova runs, since it reads the file synchronously.
type ConfigDoc interface {
	Platforms() []string
	ContentSrc() string
	SetContentSrc(url string)
	ResetContentSrc()
	Save() error
}

// ConfigLoader acquires the config document at the start of a run.
type ConfigLoader interface {
	LoadConfig() (ConfigDoc, error)
}

// PlatformInstaller adds a missing platform to the project.
type PlatformInstaller interface {
	Install(ctx context.Context, platform string) error
}

// Builder runs the production-style asset build.
type Builder interface {
	Build(ctx context.Context, opts RunOptions) error
}

// DevServer starts the development server and reports how to reach it.
type DevServer interface {
	Serve(ctx context.Context, opts RunOptions) (serve.Details, error)
}

// Prompter supplies a platform name when none was given on the command
// line. How the name is obtained is the caller's business.
type Prompter interface {
	Platform() (string, error)
}

// Orchestrator composes the collaborators for one cordova run. All
// dependencies are injected so tests can substitute doubles.
type Orchestrator struct {
	Shell     shell.Runner
	Project   *project.Project
	Config    ConfigLoader
	Installer PlatformInstaller
	Builder   Builder
	Server    DevServer
	PM        npm.Client
	Prompt    Prompter
}

// Run deploys the project to a native target. It prepares the
// environment, installs the platform if needed, chooses between a
// live-reload serve and a static build, rewrites the config document,
// and finally invokes cordova.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) error {
	if err := o.preflight(); err != nil {
		return err
	}

	if opts.List {
		return o.runTool(ctx, ListModeArgs(opts), false)
	}

	if opts.Platform == "" && o.Prompt != nil {
		name, err := o.Prompt.Platform()
		if err != nil {
			return fmt.Errorf("select platform: %w", err)
		}
		opts.Platform = name
	}

	conf, err := o.Config.LoadConfig()
	if err != nil {
		return err
	}

	if opts.Platform != "" {
		if err := o.ensurePlatform(ctx, conf, opts.Platform); err != nil {
			return err
		}
	}

	// Log streaming is meaningless without the live server.
	if (opts.ConsoleLogs || opts.ServerLogs) && !opts.Livereload {
		ui.Info("Log streaming needs the dev server; enabling live reload.")
		opts.Livereload = true
	}

	conf.ResetContentSrc()
	if err := conf.Save(); err != nil {
		return err
	}

	if opts.Livereload {
		details, err := o.Server.Serve(ctx, opts)
		if err != nil {
			return fmt.Errorf("start dev server: %w", err)
		}
		warnIfUnreachable(details)
		conf.SetContentSrc(LivereloadURL(details))
		if err := conf.Save(); err != nil {
			return err
		}
	} else {
		if err := o.Builder.Build(ctx, opts); err != nil {
			return err
		}
	}

	if err := o.runTool(ctx, FilterNativeArgs(opts), true); err != nil {
		return err
	}

	if !opts.Livereload {
		ui.Success(fmt.Sprintf("Deploy complete. Try live development next: ionic cordova %s %s --livereload", opts.Action, opts.Platform))
	}
	return nil
}

// preflight verifies cordova is available and the web-asset root exists.
// Both checks are safe to repeat on every run.
func (o *Orchestrator) preflight() error {
	if !o.Shell.Exists(Tool) {
		return fmt.Errorf("the %s CLI was not found on your PATH. Install it globally:\n\n    %s",
			Tool, o.PM.GlobalInstallCommand(Tool))
	}
	created, err := o.Project.EnsureAssetDir()
	if err != nil {
		return err
	}
	if created {
		ui.Info(fmt.Sprintf("Created %s directory for you", project.WWWDir))
	}
	return nil
}

// ensurePlatform installs platform when the config document does not
// list it yet. Cordova errors unhelpfully when the platform directory is
// missing, so this must finish before any build or serve step.
func (o *Orchestrator) ensurePlatform(ctx context.Context, conf ConfigDoc, platform string) error {
	for _, installed := range conf.Platforms() {
		if installed == platform {
			return nil
		}
	}
	if hint := SuggestPlatform(platform); hint != "" {
		ui.Warn(fmt.Sprintf("%q is not a known platform, did you mean %q?", platform, hint))
	}
	ui.Info(fmt.Sprintf("Platform %s not installed, adding it now...", platform))
	if err := o.Installer.Install(ctx, platform); err != nil {
		return fmt.Errorf("add platform %s: %w", platform, err)
	}
	return nil
}

// runTool invokes cordova and classifies the failure. Failures are
// always re-raised; fatalOnError only controls the extra diagnostic.
func (o *Orchestrator) runTool(ctx context.Context, args []string, fatalOnError bool) error {
	_, err := o.Shell.Run(ctx, Tool, args, shell.Options{
		Dir:         o.Project.Dir,
		Stream:      os.Stdout,
		MaxErrBytes: maxToolErrBytes,
	})
	if err == nil {
		return nil
	}
	if shell.IsNotFound(err) {
		return fmt.Errorf("the %s CLI was not found on your PATH. Install it globally:\n\n    %s",
			Tool, o.PM.GlobalInstallCommand(Tool))
	}
	if fatalOnError {
		ui.Error(fmt.Sprintf("An error occurred while running: %s %s", Tool, strings.Join(args, " ")))
		ui.Error("Run that command directly for more detail.")
	}
	return err
}

// LivereloadURL composes the content-source URL for a running dev
// server, defaulting the protocol to http.
func LivereloadURL(d serve.Details) string {
	protocol := d.Protocol
	if protocol == "" {
		protocol = "http"
	}
	return fmt.Sprintf("%s://%s:%d", protocol, d.ExternalAddress, d.Port)
}

func warnIfUnreachable(d serve.Details) {
	if d.Reachable {
		return
	}
	msg := fmt.Sprintf("Address %s may not be reachable from the device.", d.ExternalAddress)
	if ip := net.ParseIP(d.ExternalAddress); ip != nil && ip.IsLoopback() {
		msg += fmt.Sprintf(" It is local to this machine; forward the port first (e.g. adb reverse tcp:%d tcp:%d).", d.Port, d.Port)
	}
	ui.Warn(msg)
}
