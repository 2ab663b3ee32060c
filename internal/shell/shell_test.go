package shell

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRunCapturesStdout(t *testing.T) {
	out, err := Exec{}.Run(context.Background(), "sh", []string{"-c", "echo hello"}, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out); got != "hello" {
		t.Fatalf("stdout = %q, want hello", got)
	}
}

func TestRunClassifiesExit(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), "sh", []string{"-c", "echo nope >&2; exit 3"}, Options{})
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if se.Kind != KindExit {
		t.Fatalf("kind = %v, want KindExit", se.Kind)
	}
	if se.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", se.ExitCode)
	}
	if !strings.Contains(se.Output, "nope") {
		t.Fatalf("output = %q, want captured stderr", se.Output)
	}
	if IsNotFound(err) {
		t.Fatal("exit failure must not classify as not-found")
	}
}

func TestRunClassifiesNotFound(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), "definitely-not-a-real-binary-xyz", nil, Options{})
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want not-found classification", err)
	}
	var se *Error
	if !errors.As(err, &se) || se.Kind != KindNotFound {
		t.Fatalf("err = %v, want KindNotFound", err)
	}
}

func TestRunTruncatesStderr(t *testing.T) {
	_, err := Exec{}.Run(context.Background(), "sh", []string{"-c", "yes error | head -c 4000 >&2; exit 1"}, Options{MaxErrBytes: 100})
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if !strings.Contains(se.Output, "truncated") {
		t.Fatalf("output should be marked truncated, got %q", se.Output)
	}
	if len(se.Output) > 200 {
		t.Fatalf("output length = %d, want bounded", len(se.Output))
	}
}

func TestExists(t *testing.T) {
	if !(Exec{}).Exists("sh") {
		t.Fatal("sh should exist on PATH")
	}
	if (Exec{}).Exists("definitely-not-a-real-binary-xyz") {
		t.Fatal("nonexistent binary reported as present")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 100); got != "short" {
		t.Fatalf("got %q, want unchanged", got)
	}
	got := Truncate(strings.Repeat("a", 50), 10)
	if !strings.HasPrefix(got, strings.Repeat("a", 10)) || !strings.Contains(got, "truncated") {
		t.Fatalf("got %q, want 10 bytes plus marker", got)
	}
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	// Each α is two bytes; a cut at byte 3 would split the second rune.
	got := Truncate("ααααα", 3)
	if !strings.HasPrefix(got, "α\n") {
		t.Fatalf("got %q, want the cut backed off to a rune boundary", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("got invalid UTF-8: %q", got)
	}

	got = Truncate(strings.Repeat("界", 20), 7)
	if !utf8.ValidString(got) {
		t.Fatalf("got invalid UTF-8: %q", got)
	}
	if !strings.HasPrefix(got, "界界\n") {
		t.Fatalf("got %q, want two complete runes before the marker", got)
	}
}
