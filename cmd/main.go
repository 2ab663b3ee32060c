package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (can be set at build time)
var (
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ionic",
	Short: "Build and deploy hybrid mobile apps from one codebase",
	Long: `The Ionic CLI drives your project's web build pipeline and the
Cordova native tooling so a web app can run on devices and emulators.

Usage:
  ionic cordova run [platform]      Deploy the app to a device
  ionic cordova emulate [platform]  Deploy the app to an emulator`,
	Version: version,
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(cordovaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
