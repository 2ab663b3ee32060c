package npm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectPrefersExplicit(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "yarn.lock"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Detect(dir, "pnpm"); got != Pnpm {
		t.Fatalf("client = %s, want pnpm (explicit preference)", got)
	}
}

func TestDetectByLockfile(t *testing.T) {
	cases := []struct {
		lockfile string
		want     Client
	}{
		{"yarn.lock", Yarn},
		{"pnpm-lock.yaml", Pnpm},
		{"package-lock.json", Npm},
		{"", Npm},
	}
	for _, tc := range cases {
		dir := t.TempDir()
		if tc.lockfile != "" {
			if err := os.WriteFile(filepath.Join(dir, tc.lockfile), nil, 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if got := Detect(dir, ""); got != tc.want {
			t.Errorf("Detect with %q = %s, want %s", tc.lockfile, got, tc.want)
		}
	}
}

func TestGlobalInstallCommand(t *testing.T) {
	cases := []struct {
		client Client
		want   string
	}{
		{Npm, "npm install -g cordova"},
		{Yarn, "yarn global add cordova"},
		{Pnpm, "pnpm add -g cordova"},
	}
	for _, tc := range cases {
		if got := tc.client.GlobalInstallCommand("cordova"); got != tc.want {
			t.Errorf("%s = %q, want %q", tc.client, got, tc.want)
		}
	}
}
