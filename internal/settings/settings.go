// Package settings loads the user-level CLI configuration from
// ~/.ionic/config.yaml, seeding a default file on first use.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings are user-level preferences shared across projects.
type Settings struct {
	// NpmClient forces a package manager instead of lockfile detection.
	NpmClient string `yaml:"npmClient" mapstructure:"npmClient"`
	// Address overrides the default dev server bind address.
	Address string `yaml:"address" mapstructure:"address"`
}

func defaults() Settings {
	return Settings{Address: ""}
}

func dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, ".ionic"), nil
}

// Load reads the settings file, creating it with defaults when absent.
// Values can also come from IONIC_* environment variables.
func Load() (Settings, error) {
	d, err := dir()
	if err != nil {
		return defaults(), err
	}
	path := filepath.Join(d, "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaults(path); err != nil {
			return defaults(), err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("IONIC")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return defaults(), fmt.Errorf("read %s: %w", path, err)
	}
	s := defaults()
	if err := v.Unmarshal(&s); err != nil {
		return defaults(), fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(defaults())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
