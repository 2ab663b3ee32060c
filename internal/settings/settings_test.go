package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.NpmClient != "" {
		t.Errorf("npmClient = %q, want empty default", s.NpmClient)
	}
	if _, err := os.Stat(filepath.Join(home, ".ionic", "config.yaml")); err != nil {
		t.Fatalf("default config file not seeded: %v", err)
	}
}

func TestLoadReadsExisting(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".ionic")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "npmClient: yarn\naddress: 10.0.0.2\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.NpmClient != "yarn" {
		t.Errorf("npmClient = %q, want yarn", s.NpmClient)
	}
	if s.Address != "10.0.0.2" {
		t.Errorf("address = %q, want 10.0.0.2", s.Address)
	}
}
