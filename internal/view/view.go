// Package view models top-level windows and the registry that tracks
// their stacking order and lifetime.
package view

import (
	"github.com/quoinwm/quoin/internal/geom"
)

// ID identifies a view for the lifetime of the process. 0 is never used.
type ID uint32

// Edge names one edge of an output, the center region, or no edge.
// It doubles as a view's tiled state: a view snapped to the left edge
// is tiled EdgeLeft, a snap-to-top maximize is tiled EdgeCenter.
type Edge int

const (
	EdgeInvalid Edge = iota
	EdgeLeft
	EdgeRight
	EdgeUp
	EdgeDown
	EdgeCenter
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeUp:
		return "up"
	case EdgeDown:
		return "down"
	case EdgeCenter:
		return "center"
	default:
		return "invalid"
	}
}

// View is one top-level window.
type View struct {
	ID    ID
	Title string
	AppID string

	// Current committed geometry of the content box, global coordinates.
	Geometry geom.Rect

	// Rendered height while shading/animating. 0 means the committed
	// geometry height is accurate.
	RenderedHeight int

	Fullscreen     bool
	Decorated      bool
	TitlebarHidden bool
	Omnipresent    bool
	SkipSwitcher   bool
	Minimized      bool
	Focusable      bool

	Maximized bool
	// Tiled is EdgeInvalid for an untiled view. It records which edge
	// the view was last snapped to; see the cancel-grab limitation in
	// the grab package for when it can disagree with Geometry.
	Tiled Edge

	Workspace string
}

// EffectiveHeight returns the height the view currently occupies on
// screen, which differs from the committed geometry height mid-shade.
func (v *View) EffectiveHeight() int {
	if v.RenderedHeight > 0 {
		return v.RenderedHeight
	}
	return v.Geometry.Height
}

// IsFloating reports whether the view participates in free placement.
// Maximized, tiled and fullscreen views are not floating.
func (v *View) IsFloating() bool {
	return v != nil && !v.Maximized && !v.Fullscreen && v.Tiled == EdgeInvalid
}
