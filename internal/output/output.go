// Package output tracks the outputs (monitors) composing the logical
// layout and answers geometry queries against them.
package output

import (
	"math"

	"github.com/quoinwm/quoin/internal/geom"
)

// Output is one monitor placed in the shared logical layout.
type Output struct {
	Name string

	// Bounds is the output's region of the layout, global coordinates.
	Bounds geom.Rect

	// Usable is the work area in the output's own local coordinates,
	// i.e. Bounds minus panels and docks, with (0,0) at the output's
	// top-left corner.
	Usable geom.Rect

	Enabled bool
	Scale   float64
}

// Usable reports whether the output can host windows.
func (o *Output) IsUsable() bool {
	return o != nil && o.Enabled && !o.Bounds.Empty()
}

// ToLocal converts a global layout position into o's local coordinates.
func (o *Output) ToLocal(x, y float64) (float64, float64) {
	return x - float64(o.Bounds.X), y - float64(o.Bounds.Y)
}

// Layout is the registry of outputs.
type Layout struct {
	outputs []*Output
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// Set replaces the layout contents, e.g. after a RandR change.
func (l *Layout) Set(outputs []*Output) {
	l.outputs = outputs
}

// Outputs returns the outputs in layout order. The returned slice is
// shared; callers must not mutate it.
func (l *Layout) Outputs() []*Output {
	return l.outputs
}

// NearestToCursor returns the output containing the cursor or, failing
// that, the one whose center is closest to it. Returns nil for an empty
// layout.
func (l *Layout) NearestToCursor(x, y float64) *Output {
	var nearest *Output
	best := math.Inf(1)
	for _, o := range l.outputs {
		if o.Bounds.ContainsPoint(x, y) {
			return o
		}
		cx, cy := o.Bounds.Center()
		d := math.Hypot(x-float64(cx), y-float64(cy))
		if d < best {
			best = d
			nearest = o
		}
	}
	return nearest
}

// ByName returns the named output, or nil.
func (l *Layout) ByName(name string) *Output {
	for _, o := range l.outputs {
		if o.Name == name {
			return o
		}
	}
	return nil
}
