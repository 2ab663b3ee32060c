package cordova

import (
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/nurdun/ionic-cli/internal/shell"
	"github.com/nurdun/ionic-cli/internal/ui"
)

// KnownPlatforms are the platform names cordova can add.
var KnownPlatforms = []string{"android", "ios", "browser", "windows", "osx", "electron"}

// SuggestPlatform returns the closest known platform name when the given
// name looks like a typo, or "" when it is already known or too far from
// anything to guess.
func SuggestPlatform(name string) string {
	name = strings.ToLower(name)
	best, bestDist := "", 3
	for _, known := range KnownPlatforms {
		if known == name {
			return ""
		}
		if d := levenshtein.ComputeDistance(name, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}

// CLIInstaller adds platforms by running cordova itself.
type CLIInstaller struct {
	Shell shell.Runner
	Dir   string
}

// Install runs "cordova platform add" for platform in the project
// directory. The --save flag records the engine in config.xml so the
// next run's gate sees it.
func (i *CLIInstaller) Install(ctx context.Context, platform string) error {
	spin := ui.NewSpinner(fmt.Sprintf("Adding %s platform...", platform))
	spin.Start()
	_, err := i.Shell.Run(ctx, Tool, []string{"platform", "add", platform, "--save"}, shell.Options{
		Dir:         i.Dir,
		MaxErrBytes: maxToolErrBytes,
	})
	spin.Stop()
	if err != nil {
		return err
	}
	ui.Success(fmt.Sprintf("Platform %s added", platform))
	return nil
}
