// Package config loads and validates the quoin configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/quoinwm/quoin/internal/view"
)

// WindowSwitcher configures the alt-tab style window switcher.
type WindowSwitcher struct {
	// Criteria filters which views are offered for cycling.
	// Values: "current-workspace", "no-skip-switcher", "no-minimized".
	Criteria []string `yaml:"criteria"`
}

// LoggingConfig controls daemon log output.
type LoggingConfig struct {
	// Level controls verbosity: debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

// Config is the effective quoin configuration.
type Config struct {
	// ResizeCornerRange is the distance (px) from a window corner within
	// which an edge drag acts on both adjacent edges.
	ResizeCornerRange int `yaml:"resize_corner_range"`

	// SnapEdgeRange is the distance (px) from an output edge within
	// which a dragged window snaps. 0 disables snapping.
	SnapEdgeRange int `yaml:"snap_edge_range"`

	// SnapTopMaximize maximizes a window dragged to the top edge
	// instead of tiling it to the upper half.
	SnapTopMaximize *bool `yaml:"snap_top_maximize"`

	// TitlebarHeight is the rendered titlebar height in px.
	TitlebarHeight int `yaml:"titlebar_height"`

	// BorderWidth is the rendered window border thickness in px.
	BorderWidth int `yaml:"border_width"`

	WindowSwitcher WindowSwitcher `yaml:"window_switcher"`

	// Workspaces lists workspace names, in order.
	Workspaces []string `yaml:"workspaces"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ResizeCornerRange: 8,
		SnapEdgeRange:     1,
		TitlebarHeight:    26,
		BorderWidth:       4,
		WindowSwitcher: WindowSwitcher{
			Criteria: []string{"current-workspace", "no-skip-switcher"},
		},
		Workspaces: []string{"1", "2", "3", "4"},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// GetSnapTopMaximize returns the effective flag, defaulting to true.
func (c *Config) GetSnapTopMaximize() bool {
	if c == nil || c.SnapTopMaximize == nil {
		return true
	}
	return *c.SnapTopMaximize
}

// SwitcherCriteria converts the configured criteria strings into a
// view.Criteria mask.
func (c *Config) SwitcherCriteria() (view.Criteria, error) {
	var mask view.Criteria
	for _, name := range c.WindowSwitcher.Criteria {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "current-workspace":
			mask |= view.CriteriaCurrentWorkspace
		case "no-skip-switcher":
			mask |= view.CriteriaNoSkipSwitcher
		case "no-minimized":
			mask |= view.CriteriaNoMinimized
		case "":
		default:
			return 0, fmt.Errorf("unknown window_switcher criteria %q", name)
		}
	}
	return mask, nil
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.ResizeCornerRange < 0 {
		return fmt.Errorf("resize_corner_range must be >= 0, got %d", c.ResizeCornerRange)
	}
	if c.SnapEdgeRange < 0 {
		return fmt.Errorf("snap_edge_range must be >= 0, got %d", c.SnapEdgeRange)
	}
	if c.TitlebarHeight < 0 {
		return fmt.Errorf("titlebar_height must be >= 0, got %d", c.TitlebarHeight)
	}
	if c.BorderWidth < 0 {
		return fmt.Errorf("border_width must be >= 0, got %d", c.BorderWidth)
	}
	if len(c.Workspaces) == 0 {
		return fmt.Errorf("at least one workspace must be configured")
	}
	seen := make(map[string]struct{}, len(c.Workspaces))
	for _, name := range c.Workspaces {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("workspace names must not be empty")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate workspace name %q", name)
		}
		seen[name] = struct{}{}
	}
	if _, err := c.SwitcherCriteria(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	return nil
}
