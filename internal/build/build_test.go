package build

import (
	"reflect"
	"testing"
)

func TestEnvOnlyExportsSetToggles(t *testing.T) {
	got := env(Options{Prod: true, MinifyCSS: true})
	want := []string{"IONIC_PROD=true", "IONIC_MINIFY_CSS=true"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("env = %v, want %v", got, want)
	}
	if got := env(Options{}); len(got) != 0 {
		t.Fatalf("env = %v, want empty for default options", got)
	}
}
