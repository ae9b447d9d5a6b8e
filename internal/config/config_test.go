package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quoinwm/quoin/internal/view"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.ResizeCornerRange != 8 {
		t.Errorf("ResizeCornerRange = %d, want 8", cfg.ResizeCornerRange)
	}
	if cfg.SnapEdgeRange != 1 {
		t.Errorf("SnapEdgeRange = %d, want 1", cfg.SnapEdgeRange)
	}
	if !cfg.GetSnapTopMaximize() {
		t.Error("GetSnapTopMaximize() = false by default, want true")
	}
	if cfg.TitlebarHeight != 26 || cfg.BorderWidth != 4 {
		t.Errorf("decoration defaults: %d/%d", cfg.TitlebarHeight, cfg.BorderWidth)
	}
	if len(cfg.Workspaces) != 4 {
		t.Errorf("len(Workspaces) = %d, want 4", len(cfg.Workspaces))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestGetSnapTopMaximize(t *testing.T) {
	var nilCfg *Config
	if !nilCfg.GetSnapTopMaximize() {
		t.Error("nil config: want true")
	}
	off := false
	cfg := Default()
	cfg.SnapTopMaximize = &off
	if cfg.GetSnapTopMaximize() {
		t.Error("explicit false ignored")
	}
}

func TestSwitcherCriteria(t *testing.T) {
	cfg := Default()
	cfg.WindowSwitcher.Criteria = []string{"current-workspace", " No-Minimized ", ""}
	mask, err := cfg.SwitcherCriteria()
	if err != nil {
		t.Fatalf("SwitcherCriteria: %v", err)
	}
	want := view.CriteriaCurrentWorkspace | view.CriteriaNoMinimized
	if mask != want {
		t.Fatalf("mask = %#x, want %#x", mask, want)
	}

	cfg.WindowSwitcher.Criteria = []string{"bogus"}
	if _, err := cfg.SwitcherCriteria(); err == nil {
		t.Fatal("unknown criteria accepted")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative corner range", func(c *Config) { c.ResizeCornerRange = -1 }},
		{"negative snap range", func(c *Config) { c.SnapEdgeRange = -1 }},
		{"negative titlebar", func(c *Config) { c.TitlebarHeight = -1 }},
		{"negative border", func(c *Config) { c.BorderWidth = -1 }},
		{"no workspaces", func(c *Config) { c.Workspaces = nil }},
		{"blank workspace", func(c *Config) { c.Workspaces = []string{"1", " "} }},
		{"duplicate workspace", func(c *Config) { c.Workspaces = []string{"1", "1"} }},
		{"bad criteria", func(c *Config) { c.WindowSwitcher.Criteria = []string{"nope"} }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.TitlebarHeight != Default().TitlebarHeight {
		t.Fatal("missing file did not yield defaults")
	}
}

func TestLoadFromPathMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
snap_edge_range: 12
snap_top_maximize: false
workspaces: ["web", "code"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.SnapEdgeRange != 12 {
		t.Errorf("SnapEdgeRange = %d, want 12", cfg.SnapEdgeRange)
	}
	if cfg.GetSnapTopMaximize() {
		t.Error("snap_top_maximize: false not honored")
	}
	if len(cfg.Workspaces) != 2 || cfg.Workspaces[0] != "web" {
		t.Errorf("Workspaces = %v", cfg.Workspaces)
	}
	// Unset keys keep their defaults.
	if cfg.TitlebarHeight != 26 {
		t.Errorf("TitlebarHeight = %d, want default 26", cfg.TitlebarHeight)
	}
}

func TestLoadFromPathRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("snap_edge_range: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("invalid config accepted")
	}

	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}
