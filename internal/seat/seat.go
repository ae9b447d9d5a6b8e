// Package seat models one input seat: the cursor position, input focus
// and the transient presentation state tied to interactive operations.
package seat

import (
	"github.com/quoinwm/quoin/internal/view"
)

// Seat is a single input seat. All access happens on the event loop
// goroutine; the seat carries no locking.
type Seat struct {
	views *view.Registry

	cursorX float64
	cursorY float64

	focused view.Handle

	// Focus held before an override (grab or switcher) began.
	overrideActive bool
	savedFocus     view.Handle

	grabbed view.Handle

	overlayVisible bool
}

// New returns a seat resolving view handles through reg.
func New(reg *view.Registry) *Seat {
	return &Seat{views: reg}
}

// Views returns the registry this seat resolves handles through.
func (s *Seat) Views() *view.Registry {
	return s.views
}

// SetCursor records the pointer position in global coordinates.
func (s *Seat) SetCursor(x, y float64) {
	s.cursorX = x
	s.cursorY = y
}

// Cursor returns the pointer position in global coordinates.
func (s *Seat) Cursor() (x, y float64) {
	return s.cursorX, s.cursorY
}

// Focus gives input focus to v.
func (s *Seat) Focus(v *view.View) {
	s.focused = s.views.HandleFor(v)
}

// FocusedView returns the focused view, or nil.
func (s *Seat) FocusedView() *view.View {
	return s.focused.Resolve()
}

// FocusOverrideBegin saves the current focus so it can be restored when
// the interactive operation ends. Nested overrides keep the original
// save point.
func (s *Seat) FocusOverrideBegin() {
	if s.overrideActive {
		return
	}
	s.overrideActive = true
	s.savedFocus = s.focused
}

// FocusOverrideEnd restores the focus saved by FocusOverrideBegin.
// A no-op when no override is active.
func (s *Seat) FocusOverrideEnd() {
	if !s.overrideActive {
		return
	}
	s.overrideActive = false
	s.focused = s.savedFocus
	s.savedFocus = view.Handle{}
}

// SetGrabbed records which view holds the interactive grab. Used by the
// grab controller only.
func (s *Seat) SetGrabbed(v *view.View) {
	s.grabbed = s.views.HandleFor(v)
}

// GrabbedView returns the view holding the interactive grab, nil when
// idle or when the grabbed view has been destroyed.
func (s *Seat) GrabbedView() *view.View {
	return s.grabbed.Resolve()
}

// ShowOverlay marks the snap-preview overlay visible. Rendering the
// overlay belongs to the excluded presentation layer; the seat only
// tracks visibility so cancellation can hide it.
func (s *Seat) ShowOverlay() {
	s.overlayVisible = true
}

// HideOverlay hides the snap-preview overlay.
func (s *Seat) HideOverlay() {
	s.overlayVisible = false
}

// OverlayVisible reports whether the snap-preview overlay is shown.
func (s *Seat) OverlayVisible() bool {
	return s.overlayVisible
}
