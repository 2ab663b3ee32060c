package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nurdun/ionic-cli/internal/build"
	"github.com/nurdun/ionic-cli/internal/cordova"
	"github.com/nurdun/ionic-cli/internal/cordova/config"
	"github.com/nurdun/ionic-cli/internal/npm"
	"github.com/nurdun/ionic-cli/internal/project"
	"github.com/nurdun/ionic-cli/internal/serve"
	"github.com/nurdun/ionic-cli/internal/settings"
	"github.com/nurdun/ionic-cli/internal/shell"
	"github.com/nurdun/ionic-cli/internal/ui"
)

// cordovaCmd groups the native tooling commands
var cordovaCmd = &cobra.Command{
	Use:   "cordova",
	Short: "Deploy the app through the Cordova native tooling",
}

func init() {
	cordovaCmd.AddCommand(cordovaRunCmd)
	cordovaCmd.AddCommand(cordovaEmulateCmd)
}

// runCordovaAction is the shared entry point for run and emulate.
func runCordovaAction(cmd *cobra.Command, action string, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	proj, err := project.Load(cwd)
	if err != nil {
		return fmt.Errorf("not an ionic project (%s): %w", project.ConfigFileName, err)
	}

	sett, err := settings.Load()
	if err != nil {
		ui.Warn(fmt.Sprintf("Using default CLI settings: %v", err))
	}

	opts := cordova.OptionsFromFlags(cmd, action, args)
	if sett.Address != "" && !cmd.Flags().Changed("address") {
		opts.Address = sett.Address
	}

	if err := proj.LoadDotenv(); err != nil {
		ui.Warn(err.Error())
	}

	sh := shell.Exec{}
	pm := npm.Detect(cwd, sett.NpmClient)
	devServer := serve.New(proj)

	orch := &cordova.Orchestrator{
		Shell:     sh,
		Project:   proj,
		Config:    configLoader{dir: cwd},
		Installer: &cordova.CLIInstaller{Shell: sh, Dir: cwd},
		Builder:   builderAdapter{runner: &build.Runner{Project: proj, Shell: sh, PM: pm}},
		Server:    serverAdapter{server: devServer},
		PM:        pm,
		Prompt:    stdinPrompter{},
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := orch.Run(ctx, opts); err != nil {
		return err
	}

	// A live-reload run leaves the dev server up for the device.
	if shouldWaitForDevServer(opts) {
		ui.Info("Dev server running; press Ctrl+C to quit.")
		<-ctx.Done()
	}
	return nil
}

// shouldWaitForDevServer reports whether the command must block for the
// dev server after the deploy. List mode never starts a server; it
// returns immediately no matter which other flags were passed.
func shouldWaitForDevServer(opts cordova.RunOptions) bool {
	if opts.List {
		return false
	}
	return opts.Livereload || opts.ConsoleLogs || opts.ServerLogs
}

// configLoader adapts the config.xml package to the orchestrator's
// document interface.
type configLoader struct {
	dir string
}

func (l configLoader) LoadConfig() (cordova.ConfigDoc, error) {
	return config.Load(l.dir)
}

type builderAdapter struct {
	runner *build.Runner
}

func (a builderAdapter) Build(ctx context.Context, opts cordova.RunOptions) error {
	return a.runner.Build(ctx, build.Options{
		Prod:       opts.Prod,
		Aot:        opts.Aot,
		MinifyJS:   opts.MinifyJS,
		MinifyCSS:  opts.MinifyCSS,
		OptimizeJS: opts.OptimizeJS,
	})
}

type serverAdapter struct {
	server *serve.Server
}

func (a serverAdapter) Serve(ctx context.Context, opts cordova.RunOptions) (serve.Details, error) {
	return a.server.Serve(ctx, serve.Options{
		Address:        opts.Address,
		Port:           opts.Port,
		LivereloadPort: opts.LivereloadPort,
		DevLoggerPort:  opts.DevLoggerPort,
		ConsoleLogs:    opts.ConsoleLogs,
		ServerLogs:     opts.ServerLogs,
	})
}

// stdinPrompter asks for a platform name when none was given.
type stdinPrompter struct{}

func (stdinPrompter) Platform() (string, error) {
	fmt.Printf("What platform would you like to run (%s): ", strings.Join(cordova.KnownPlatforms[:2], ", "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", fmt.Errorf("no platform selected")
	}
	return name, nil
}
