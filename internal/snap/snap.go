// Package snap resolves which output edge a dragged window should snap
// to, if any.
package snap

import (
	"log/slog"

	"github.com/quoinwm/quoin/internal/config"
	"github.com/quoinwm/quoin/internal/output"
	"github.com/quoinwm/quoin/internal/seat"
	"github.com/quoinwm/quoin/internal/view"
)

// Resolver answers edge-snap queries against the output layout.
type Resolver struct {
	layout *output.Layout
	cfg    *config.Config
	logger *slog.Logger
}

// NewResolver returns a resolver using the given layout and config.
func NewResolver(layout *output.Layout, cfg *config.Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{layout: layout, cfg: cfg, logger: logger}
}

// FromCursor resolves the edge the cursor is within snapping range of on
// the output nearest to it. Only floating views snap, and a snap range
// of zero disables snapping entirely. Left and right edges take
// precedence over top and bottom. A top-edge hit becomes EdgeCenter
// when snap-to-top-maximize is configured.
//
// Returns (EdgeInvalid, nil) when no edge applies; an unusable output
// under the cursor is recoverable and only logged.
func (r *Resolver) FromCursor(s *seat.Seat) (view.Edge, *output.Output) {
	if !s.GrabbedView().IsFloating() {
		return view.EdgeInvalid, nil
	}

	snapRange := r.cfg.SnapEdgeRange
	if snapRange == 0 {
		return view.EdgeInvalid, nil
	}

	cursorX, cursorY := s.Cursor()
	o := r.layout.NearestToCursor(cursorX, cursorY)
	if !o.IsUsable() {
		r.logger.Error("output at cursor is unusable")
		return view.EdgeInvalid, nil
	}

	localX, localY := o.ToLocal(cursorX, cursorY)
	area := o.Usable

	switch {
	case localX <= float64(area.X+snapRange):
		return view.EdgeLeft, o
	case localX >= float64(area.X+area.Width-snapRange):
		return view.EdgeRight, o
	case localY <= float64(area.Y+snapRange):
		if r.cfg.GetSnapTopMaximize() {
			return view.EdgeCenter, o
		}
		return view.EdgeUp, o
	case localY >= float64(area.Y+area.Height-snapRange):
		return view.EdgeDown, o
	default:
		// Not close to any edge.
		return view.EdgeInvalid, nil
	}
}
