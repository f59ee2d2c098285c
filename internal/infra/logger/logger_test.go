package logger

import (
	"os"
	"strings"
	"testing"
)

func TestSetupWritesToWorkspaceLog(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true, MaxSizeMB: 1, MaxBackups: 1})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	L().Debug("parser.tokenized", "command", "add")
	path := Path()

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "logger.initialized") || !strings.Contains(string(b), "parser.tokenized") {
		t.Fatalf("expected both entries in log, got %s", b)
	}
	if !strings.HasSuffix(path, "rolodex.log") {
		t.Fatalf("unexpected log path %s", path)
	}

	if Path() != "" {
		t.Fatalf("expected logger reset after cleanup, path %s", Path())
	}
}

func TestLIsUsableBeforeSetup(t *testing.T) {
	L().Warn("ignored")
	if Path() != "" {
		t.Fatalf("expected empty path before setup")
	}
}
