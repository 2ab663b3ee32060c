package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// ConfigFileName is the project descriptor at the project root.
const ConfigFileName = "ionic.config.json"

// WWWDir is the web-asset root the native tool packages from.
const WWWDir = "www"

// Project is a loaded ionic project directory.
type Project struct {
	Dir  string
	Name string `json:"name"`
	Type string `json:"type,omitempty"`

	// DocumentRoot overrides the default www asset root when set.
	DocumentRoot string `json:"documentRoot,omitempty"`
}

// Load reads ionic.config.json from dir.
func Load(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}
	p := &Project{Dir: dir}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	return p, nil
}

// AssetDir returns the absolute web-asset root directory.
func (p *Project) AssetDir() string {
	root := p.DocumentRoot
	if root == "" {
		root = WWWDir
	}
	return filepath.Join(p.Dir, root)
}

// EnsureAssetDir creates the web-asset root if it is missing, reporting
// whether it had to be created. Safe to call on every run.
func (p *Project) EnsureAssetDir() (created bool, err error) {
	dir := p.AssetDir()
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("create %s: %w", dir, err)
	}
	return true, nil
}

// LoadDotenv loads the project .env into the process environment.
// A missing file is not an error.
func (p *Project) LoadDotenv() error {
	path := filepath.Join(p.Dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
