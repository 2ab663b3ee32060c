package main

import (
	"github.com/spf13/cobra"

	"github.com/nurdun/ionic-cli/internal/cordova"
)

// cordovaRunCmd represents the cordova run command
var cordovaRunCmd = &cobra.Command{
	Use:   "run [platform]",
	Short: "Deploy the app to a connected device",
	Long: `The run command builds your web app, prepares the native Cordova
project, and deploys the result to a connected device.

With --livereload the app loads its pages from a local dev server
instead of the bundled assets, so changes on disk show up on the
device without a redeploy. Add --consolelogs to stream the app's
console output back to this terminal.

Use --list to enumerate the available deploy targets and exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCordovaAction(cmd, "run", args)
	},
}

func init() {
	// Add flags specific to the run command
	cordova.RegisterRunFlags(cordovaRunCmd)
}
