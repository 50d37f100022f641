package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/packlist/internal/packing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "packlist.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_NoPathReturnsDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "classic" || cfg.Locale != "en" || !cfg.ColorEnabled() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if k, _ := cfg.SortKey(); k != packing.SortByInput {
		t.Fatalf("expected input sort, got %s", k)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	p := writeConfig(t, `
theme: neon
locale: sv
color: false
sort:
  by: packed
  mode: desc
log:
  level: debug
  file: /tmp/packlist.log
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "neon" || cfg.ColorEnabled() || cfg.Log.File != "/tmp/packlist.log" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if tag, _ := cfg.LocaleTag(); tag.String() != "sv" {
		t.Fatalf("expected sv, got %s", tag)
	}
	if k, _ := cfg.SortKey(); k != packing.SortByPacked {
		t.Fatalf("expected packed, got %s", k)
	}
	if m, _ := cfg.SortMode(); m != packing.Descending {
		t.Fatalf("expected descending, got %s", m)
	}
	if lvl, _ := cfg.LogLevel(); lvl != slog.LevelDebug {
		t.Fatalf("expected debug, got %s", lvl)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "theme: mono\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" || cfg.Sort.By != "input" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_UsesEnvWhenNoFlag(t *testing.T) {
	p := writeConfig(t, "locale: de\n")
	t.Setenv(EnvPath, p)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "de" {
		t.Fatalf("expected locale from env file, got %q", cfg.Locale)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bad yaml", body: "theme: [", want: "parse config"},
		{name: "bad theme", body: "theme: plaid\n", want: "unknown theme"},
		{name: "bad sort", body: "sort:\n  by: weight\n", want: "unknown sort key"},
		{name: "bad mode", body: "sort:\n  mode: up\n", want: "unknown sort mode"},
		{name: "bad level", body: "log:\n  level: loud\n", want: "log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
