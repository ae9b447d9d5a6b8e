// Package grab owns the transient state of one interactive move or
// resize operation per seat.
package grab

import (
	"fmt"
	"log/slog"

	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/seat"
	"github.com/quoinwm/quoin/internal/view"
)

// Kind is the operation a grab performs.
type Kind int

const (
	KindMove Kind = iota
	KindResize
)

func (k Kind) String() string {
	if k == KindResize {
		return "resize"
	}
	return "move"
}

// State is the transient record of one active grab. It holds only a
// weak reference to the grabbed view; the view may be destroyed
// mid-grab.
type State struct {
	view view.Handle
	kind Kind

	// Geometry box at grab start; AnchorToCursor rescales it in place
	// so successive calls compose.
	box geom.Rect

	// Cursor position at grab start.
	cursorX float64
	cursorY float64

	edges frame.EdgeMask
}

// Kind returns the grab's operation kind.
func (st *State) Kind() Kind { return st.kind }

// Box returns the grab's current anchor box.
func (st *State) Box() geom.Rect { return st.box }

// Edges returns the active resize-edge mask (empty for a move).
func (st *State) Edges() frame.EdgeMask { return st.edges }

// Controller is the move/resize state machine: Idle (no State) or
// Grabbing (exactly one State). It runs on the event-loop goroutine
// only.
type Controller struct {
	seat   *seat.Seat
	logger *slog.Logger
	state  *State
}

// NewController returns an idle controller for s.
func NewController(s *seat.Seat, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{seat: s, logger: logger}
	s.Views().Watch(c)
	return c
}

// Close unsubscribes the controller from view destruction.
func (c *Controller) Close() {
	c.seat.Views().Unwatch(c)
}

// Active reports whether a grab is in progress.
func (c *Controller) Active() bool {
	return c.state != nil
}

// State returns the active grab state, or nil.
func (c *Controller) State() *State {
	return c.state
}

// Begin starts a grab on v, recording the cursor position and the
// view's geometry at this instant. A prior grab must be cancelled
// explicitly first.
func (c *Controller) Begin(v *view.View, kind Kind, edges frame.EdgeMask) error {
	if v == nil {
		return fmt.Errorf("cannot grab: no view")
	}
	if c.state != nil {
		return fmt.Errorf("cannot grab %q: a grab is already active", v.Title)
	}
	if kind == KindMove {
		edges = frame.EdgeNone
	}

	cursorX, cursorY := c.seat.Cursor()
	c.state = &State{
		view:    c.seat.Views().HandleFor(v),
		kind:    kind,
		box:     v.Geometry,
		cursorX: cursorX,
		cursorY: cursorY,
		edges:   edges,
	}
	c.seat.SetGrabbed(v)
	c.seat.FocusOverrideBegin()
	c.logger.Debug("grab started", "kind", kind.String(), "view", v.ID)
	return nil
}

// maxMoveScale computes the new position for one axis so the cursor
// keeps its relative position inside the box as the size changes:
//
//	posOld  posCursor
//	   v        v
//	   +--------+------------------+
//	   <----------sizeOld---------->
//
//	return value
//	       v
//	       +----+---------+
//	       <---sizeNew--->
//
// The result is clamped to posOld so the anchored edge never moves
// left/up of where the box started, which would drift for tiny sizes.
func maxMoveScale(posCursor, posOld, sizeOld, sizeNew float64) int {
	anchorFrac := (posCursor - posOld) / sizeOld
	posNew := int(posCursor - sizeNew*anchorFrac)
	if posNew < int(posOld) {
		posNew = int(posOld)
	}
	return posNew
}

// AnchorToCursor rescales the grab box to geo's size while keeping the
// cursor pinned to the same relative position inside it, then rewrites
// geo's position for the current cursor. Used while a window
// unmaximizes or untiles mid-move.
//
// Calling this outside an active move grab is a caller bug and panics.
func (c *Controller) AnchorToCursor(geo *geom.Rect) {
	if c.state == nil || c.state.kind != KindMove {
		panic("grab: AnchorToCursor outside an active move grab")
	}
	if geo.Empty() {
		return
	}

	st := c.state
	st.box.X = maxMoveScale(st.cursorX, float64(st.box.X),
		float64(st.box.Width), float64(geo.Width))
	st.box.Y = maxMoveScale(st.cursorY, float64(st.box.Y),
		float64(st.box.Height), float64(geo.Height))
	st.box.Width = geo.Width
	st.box.Height = geo.Height

	cursorX, cursorY := c.seat.Cursor()
	geo.X = st.box.X + int(cursorX-st.cursorX)
	geo.Y = st.box.Y + int(cursorY-st.cursorY)
}

// Finish ends the grab normally. The final geometry has already been
// committed by the view layer; the controller only clears its state and
// restores focus.
func (c *Controller) Finish() {
	if c.state == nil {
		return
	}
	c.state = nil
	c.seat.SetGrabbed(nil)
	c.seat.FocusOverrideEnd()
}

// Cancel aborts the grab if v is the grabbed view, hiding any snap
// preview and restoring the pre-grab focus. It deliberately does not
// revert the view's geometry or tiled state: a view snapped mid-drag
// and then cancelled keeps the snapped geometry while its tiled flag
// may say otherwise. Cancelling when v holds no grab is a no-op.
func (c *Controller) Cancel(v *view.View) {
	if c.state == nil || !c.state.view.Refers(v) {
		return
	}

	c.seat.HideOverlay()
	c.state = nil
	c.seat.SetGrabbed(nil)
	c.seat.FocusOverrideEnd()
	c.logger.Debug("grab cancelled", "view", v.ID)
}

// ViewDestroyed cancels the grab when the grabbed view dies mid-grab.
func (c *Controller) ViewDestroyed(v *view.View) {
	c.Cancel(v)
}
