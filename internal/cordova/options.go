// Package cordova orchestrates deploying an ionic project onto a native
// mobile target by driving the external cordova CLI.
package cordova

import "github.com/spf13/cobra"

// Intent tags which downstream consumer interprets an option. The zero
// value marks orchestrator-only options that never leave this process.
type Intent int

const (
	IntentOrchestrator Intent = iota
	IntentNativeTool
	IntentWebBuild
	IntentServe
)

// OptionType distinguishes boolean toggles from valued options.
type OptionType int

const (
	TypeBool OptionType = iota
	TypeString
)

// Option describes one recognized run flag. The table below is the single
// source of truth for flag registration and argument filtering; it is
// never mutated at runtime.
type Option struct {
	Name    string
	Alias   string
	Type    OptionType
	Default string // string options only
	Intent  Intent
	Hidden  bool
	Usage   string
}

// Serve defaults.
const (
	DefaultAddress        = "0.0.0.0"
	DefaultPort           = "8100"
	DefaultLivereloadPort = "35729"
	DefaultDevLoggerPort  = "53703"
)

// RunOptionTable declares every option the run and emulate commands
// recognize.
var RunOptionTable = []Option{
	{Name: "list", Type: TypeBool, Intent: IntentNativeTool, Usage: "List all available targets"},
	{Name: "livereload", Alias: "l", Type: TypeBool, Usage: "Live reload app dev files from the device"},
	{Name: "consolelogs", Alias: "c", Type: TypeBool, Usage: "Print app console logs to the terminal"},
	{Name: "serverlogs", Alias: "s", Type: TypeBool, Hidden: true, Usage: "Print dev server logs to the terminal"},
	{Name: "address", Type: TypeString, Default: DefaultAddress, Intent: IntentServe, Usage: "Network address for the dev server"},
	{Name: "port", Alias: "p", Type: TypeString, Default: DefaultPort, Intent: IntentServe, Usage: "Dev server HTTP port"},
	{Name: "livereload-port", Alias: "r", Type: TypeString, Default: DefaultLivereloadPort, Intent: IntentServe, Usage: "Live reload port"},
	{Name: "dev-logger-port", Type: TypeString, Default: DefaultDevLoggerPort, Intent: IntentServe, Usage: "Dev logger port"},
	{Name: "prod", Type: TypeBool, Intent: IntentWebBuild, Usage: "Build the application for production"},
	{Name: "aot", Type: TypeBool, Intent: IntentWebBuild, Usage: "Perform ahead-of-time compilation"},
	{Name: "minifyjs", Type: TypeBool, Intent: IntentWebBuild, Usage: "Minify JS for the build"},
	{Name: "minifycss", Type: TypeBool, Intent: IntentWebBuild, Usage: "Minify CSS for the build"},
	{Name: "optimizejs", Type: TypeBool, Intent: IntentWebBuild, Usage: "Perform JS optimizations for the build"},
	{Name: "debug", Type: TypeBool, Intent: IntentNativeTool, Usage: "Create a debug build"},
	{Name: "release", Type: TypeBool, Intent: IntentNativeTool, Usage: "Create a release build"},
	{Name: "device", Type: TypeBool, Intent: IntentNativeTool, Usage: "Deploy to a device"},
	{Name: "emulator", Type: TypeBool, Intent: IntentNativeTool, Usage: "Deploy to an emulator"},
	{Name: "target", Type: TypeString, Intent: IntentNativeTool, Usage: "Deploy to a specific target"},
	{Name: "buildConfig", Type: TypeString, Intent: IntentNativeTool, Usage: "Use the specified build configuration"},
}

// RegisterRunFlags declares the run option table on a cobra command.
func RegisterRunFlags(cmd *cobra.Command) {
	for _, opt := range RunOptionTable {
		switch opt.Type {
		case TypeBool:
			cmd.Flags().BoolP(opt.Name, opt.Alias, false, opt.Usage)
		case TypeString:
			cmd.Flags().StringP(opt.Name, opt.Alias, opt.Default, opt.Usage)
		}
		if opt.Hidden {
			_ = cmd.Flags().MarkHidden(opt.Name)
		}
	}
}

// RunOptions is one parsed run request.
type RunOptions struct {
	// Action is "run" or "emulate".
	Action string
	// Platform is the positional target platform name; empty means the
	// caller must be asked.
	Platform string

	List        bool
	Livereload  bool
	ConsoleLogs bool
	ServerLogs  bool

	Address        string
	Port           string
	LivereloadPort string
	DevLoggerPort  string

	Prod       bool
	Aot        bool
	MinifyJS   bool
	MinifyCSS  bool
	OptimizeJS bool

	Debug       bool
	Release     bool
	Device      bool
	Emulator    bool
	Target      string
	BuildConfig string
}

// OptionsFromFlags reads a parsed cobra command back into RunOptions.
func OptionsFromFlags(cmd *cobra.Command, action string, args []string) RunOptions {
	opts := RunOptions{Action: action}
	if len(args) > 0 {
		opts.Platform = args[0]
	}
	flags := cmd.Flags()
	opts.List, _ = flags.GetBool("list")
	opts.Livereload, _ = flags.GetBool("livereload")
	opts.ConsoleLogs, _ = flags.GetBool("consolelogs")
	opts.ServerLogs, _ = flags.GetBool("serverlogs")
	opts.Address, _ = flags.GetString("address")
	opts.Port, _ = flags.GetString("port")
	opts.LivereloadPort, _ = flags.GetString("livereload-port")
	opts.DevLoggerPort, _ = flags.GetString("dev-logger-port")
	opts.Prod, _ = flags.GetBool("prod")
	opts.Aot, _ = flags.GetBool("aot")
	opts.MinifyJS, _ = flags.GetBool("minifyjs")
	opts.MinifyCSS, _ = flags.GetBool("minifycss")
	opts.OptimizeJS, _ = flags.GetBool("optimizejs")
	opts.Debug, _ = flags.GetBool("debug")
	opts.Release, _ = flags.GetBool("release")
	opts.Device, _ = flags.GetBool("device")
	opts.Emulator, _ = flags.GetBool("emulator")
	opts.Target, _ = flags.GetString("target")
	opts.BuildConfig, _ = flags.GetString("buildConfig")
	return opts
}

// FilterNativeArgs produces the argument list handed to cordova: the
// action and platform first, then only native-tool-intent flags in their
// cordova spelling. It is pure; the same options always filter to the
// same list.
func FilterNativeArgs(opts RunOptions) []string {
	args := []string{opts.Action}
	if opts.Platform != "" {
		args = append(args, opts.Platform)
	}
	if opts.List {
		args = append(args, "--list")
	}
	if opts.Debug {
		args = append(args, "--debug")
	}
	if opts.Release {
		args = append(args, "--release")
	}
	if opts.Device {
		args = append(args, "--device")
	}
	if opts.Emulator {
		args = append(args, "--emulator")
	}
	if opts.Target != "" {
		args = append(args, "--target="+opts.Target)
	}
	if opts.BuildConfig != "" {
		args = append(args, "--buildConfig="+opts.BuildConfig)
	}
	return args
}

// ListModeArgs adjusts a filtered argument list for target listing.
// Cordova only understands --list under the run action, and needs a
// device/emulator selector to know which targets to enumerate.
func ListModeArgs(opts RunOptions) []string {
	adjusted := opts
	if !adjusted.Device && !adjusted.Emulator {
		switch adjusted.Action {
		case "run":
			adjusted.Device = true
		case "emulate":
			adjusted.Emulator = true
		}
	}
	adjusted.Action = "run"
	return FilterNativeArgs(adjusted)
}
