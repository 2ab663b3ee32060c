package main

import (
	"github.com/spf13/cobra"

	"github.com/nurdun/ionic-cli/internal/cordova"
)

// cordovaEmulateCmd represents the cordova emulate command
var cordovaEmulateCmd = &cobra.Command{
	Use:   "emulate [platform]",
	Short: "Deploy the app to an emulator",
	Long: `The emulate command behaves like run but targets an emulator
instead of a connected device. It accepts the same flags; --list
enumerates the available emulator images and exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCordovaAction(cmd, "emulate", args)
	},
}

func init() {
	// Add flags specific to the emulate command
	cordova.RegisterRunFlags(cordovaEmulateCmd)
}
