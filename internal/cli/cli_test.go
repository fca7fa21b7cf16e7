package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"uiplay/internal/model"
	"uiplay/internal/store"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddCommand(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2", "3"}, "5"},
		{[]string{"add", "1.5", "2.25"}, "3.75"},
		{[]string{"add", "abc", "3"}, "NaN"},
		{[]string{"add", "", "4"}, "4"},
	}
	for _, tc := range cases {
		out, err := runCommand(t, tc.args...)
		if err != nil {
			t.Fatalf("%v: %v", tc.args, err)
		}
		if got := strings.TrimSpace(out); got != tc.want {
			t.Fatalf("%v = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestGreetCommand(t *testing.T) {
	out, err := runCommand(t, "greet")
	if err != nil {
		t.Fatalf("greet: %v", err)
	}
	if strings.TrimSpace(out) != "Hello, guest!" {
		t.Fatalf("greet = %q", out)
	}

	out, err = runCommand(t, "greet", "Ada")
	if err != nil {
		t.Fatalf("greet Ada: %v", err)
	}
	if strings.TrimSpace(out) != "Hello, Ada!" {
		t.Fatalf("greet Ada = %q", out)
	}
}

func TestDocsCommand(t *testing.T) {
	out, err := runCommand(t, "docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "guide") || !strings.Contains(out, "classes") {
		t.Fatalf("docs listing = %q", out)
	}

	out, err = runCommand(t, "docs", "guide", "--raw")
	if err != nil {
		t.Fatalf("docs guide: %v", err)
	}
	if !strings.Contains(out, "uiplay guide") {
		t.Fatalf("docs guide body = %q", out)
	}

	if _, err := runCommand(t, "docs", "nope"); err == nil {
		t.Fatalf("unknown topic should fail")
	}
}

func TestSessionsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.sqlite")

	rec, err := store.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := rec.Append(context.Background(), model.EventKindClick, "global-btn", "globalCounter is now: 1"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out, err := runCommand(t, "sessions", "--record-path", path)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if !strings.Contains(out, rec.SessionID()) {
		t.Fatalf("sessions listing missing %s:\n%s", rec.SessionID(), out)
	}

	out, err = runCommand(t, "sessions", "show", rec.SessionID(), "--record-path", path)
	if err != nil {
		t.Fatalf("sessions show: %v", err)
	}
	if !strings.Contains(out, "global-btn") || !strings.Contains(out, "globalCounter is now: 1") {
		t.Fatalf("sessions show output:\n%s", out)
	}
}
