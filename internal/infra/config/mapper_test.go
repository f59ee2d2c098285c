package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/rolodex/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestMapConfig_EmptyIsDefault(t *testing.T) {
	cfg, err := MapConfig(FileName, YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestMapConfig_OutputIsCaseInsensitive(t *testing.T) {
	cfg, err := MapConfig(FileName, YAMLConfig{Rolodex: YAMLRolodex{Output: " JSON "}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != domain.OutputJSON {
		t.Fatalf("expected json, got %s", cfg.Output)
	}
}

func TestMapConfig_ReportsEveryInvalidField(t *testing.T) {
	y := YAMLConfig{Rolodex: YAMLRolodex{
		Output: "xml",
		Logging: YAMLLogging{
			MaxSizeMB:  ptr(-1),
			MaxBackups: ptr(-2),
		},
	}}

	_, err := MapConfig("ws/rolodex.yaml", y)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{
		"rolodex.output",
		"rolodex.logging.max_size_mb",
		"rolodex.logging.max_backups",
		"ws/rolodex.yaml",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in error, got:\n%s", want, msg)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	for _, in := range []string{"yaml", "json", "YAML"} {
		if _, err := ParseOutputFormat(in); err != nil {
			t.Fatalf("ParseOutputFormat(%q): %v", in, err)
		}
	}
	if _, err := ParseOutputFormat("toml"); err == nil {
		t.Fatalf("expected error for toml")
	}
}
