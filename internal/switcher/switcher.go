// Package switcher implements the cycling logic of the window switcher.
// Visual presentation of the switcher belongs to the excluded rendering
// layer; this package only tracks the selection.
package switcher

import (
	"log/slog"

	"github.com/quoinwm/quoin/internal/seat"
	"github.com/quoinwm/quoin/internal/view"
)

// Direction of a cycle step.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// WorkspaceFunc reports the name of the current workspace, used when the
// configured criteria restrict cycling to it.
type WorkspaceFunc func() string

// Switcher drives window-switcher selection for one seat.
type Switcher struct {
	seat      *seat.Seat
	criteria  view.Criteria
	workspace WorkspaceFunc
	logger    *slog.Logger

	active   bool
	selected *view.View
}

// New returns an inactive switcher.
func New(s *seat.Seat, criteria view.Criteria, workspace WorkspaceFunc, logger *slog.Logger) *Switcher {
	if logger == nil {
		logger = slog.Default()
	}
	sw := &Switcher{
		seat:      s,
		criteria:  criteria,
		workspace: workspace,
		logger:    logger,
	}
	s.Views().Watch(sw)
	return sw
}

// Close unsubscribes the switcher from view destruction.
func (sw *Switcher) Close() {
	sw.seat.Views().Unwatch(sw)
}

// Active reports whether a cycle is in progress.
func (sw *Switcher) Active() bool {
	return sw.active
}

// Selected returns the currently selected view, or nil.
func (sw *Switcher) Selected() *view.View {
	return sw.selected
}

// nextCycle returns the view to select next. Views are stacked topmost
// first and the topmost is usually focused already, so a forward cycle
// starting fresh pre-selects the view second from the top:
//
//	View #1 (on top, currently focused)
//	View #2 (pre-selected)
//	View #3
//	...
func (sw *Switcher) nextCycle(start *view.View, dir Direction) *view.View {
	reg := sw.seat.Views()
	ws := sw.workspace()
	if dir == Forward {
		if start == nil {
			start = reg.Next(nil, sw.criteria, ws)
		}
		return reg.Next(start, sw.criteria, ws)
	}
	return reg.Prev(start, sw.criteria, ws)
}

// Begin starts a cycle. A no-op while a grab or another cycle holds the
// seat.
func (sw *Switcher) Begin(dir Direction) {
	if sw.active || sw.seat.GrabbedView() != nil {
		return
	}
	sw.selected = sw.nextCycle(nil, dir)
	if sw.selected == nil {
		return
	}
	sw.active = true
	sw.seat.FocusOverrideBegin()
}

// Cycle advances the selection. A no-op unless a cycle is active.
func (sw *Switcher) Cycle(dir Direction) {
	if !sw.active {
		return
	}
	sw.selected = sw.nextCycle(sw.selected, dir)
}

// Finish ends the cycle without changing focus, restoring whatever was
// focused before Begin.
func (sw *Switcher) Finish() {
	if !sw.active {
		return
	}
	sw.active = false
	sw.selected = nil
	sw.seat.FocusOverrideEnd()
}

// Confirm ends the cycle and focuses the selected view, raising it to
// the top of the stack.
func (sw *Switcher) Confirm() {
	if !sw.active {
		return
	}
	selected := sw.selected
	sw.Finish()
	if selected != nil {
		sw.seat.Views().Raise(selected)
		sw.seat.Focus(selected)
	}
}

// ViewDestroyed keeps the selection valid when a view dies mid-cycle:
// the selection moves backward past the dying view, and the cycle ends
// entirely when it would wrap back to it.
func (sw *Switcher) ViewDestroyed(v *view.View) {
	if !sw.active {
		return
	}
	if sw.selected != v {
		return
	}
	sw.selected = sw.nextCycle(sw.selected, Backward)
	if sw.selected == v || sw.selected == nil {
		// No more windows to cycle through.
		sw.Finish()
	}
}
