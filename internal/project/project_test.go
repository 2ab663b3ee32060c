package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "my-app", "type": "ionic-angular"}`)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "my-app" {
		t.Errorf("name = %q, want my-app", p.Name)
	}
	if p.Dir != dir {
		t.Errorf("dir = %q, want %q", p.Dir, dir)
	}
	if got, want := p.AssetDir(), filepath.Join(dir, WWWDir); got != want {
		t.Errorf("asset dir = %q, want %q", got, want)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("expected error for missing ionic.config.json")
	}
}

func TestEnsureAssetDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "my-app"}`)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	created, err := p.EnsureAssetDir()
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !created {
		t.Fatal("first ensure should create the directory")
	}
	if info, err := os.Stat(p.AssetDir()); err != nil || !info.IsDir() {
		t.Fatalf("asset dir missing after ensure: %v", err)
	}

	// Idempotent: the second call must be a no-op.
	created, err = p.EnsureAssetDir()
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if created {
		t.Fatal("second ensure should not report creation")
	}
}

func TestDocumentRootOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"name": "my-app", "documentRoot": "dist"}`)
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := p.AssetDir(), filepath.Join(dir, "dist"); got != want {
		t.Errorf("asset dir = %q, want %q", got, want)
	}
}
