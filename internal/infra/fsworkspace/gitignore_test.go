package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureGitignore_CreatesFile(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	if got, want := string(b), "# Rolodex\n.rolodex/\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEnsureGitignore_AppendsMissingEntries(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".gitignore")

	if err := os.WriteFile(path, []byte("node_modules/"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	if err := ensureGitignore(tmp); err != nil {
		t.Fatalf("ensureGitignore error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	s := string(b)

	if !strings.HasPrefix(s, "node_modules/\n") {
		t.Fatalf("expected existing content preserved, got:\n%s", s)
	}
	if strings.Count(s, "# Rolodex") != 1 || strings.Count(s, ".rolodex/") != 1 {
		t.Fatalf("expected header and entry once, got:\n%s", s)
	}
}

func TestEnsureGitignore_Idempotent(t *testing.T) {
	tmp := t.TempDir()

	for i := 0; i < 3; i++ {
		if err := ensureGitignore(tmp); err != nil {
			t.Fatalf("ensureGitignore error: %v", err)
		}
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if strings.Count(string(b), ".rolodex/") != 1 {
		t.Fatalf("expected a single entry, got:\n%s", b)
	}
}
