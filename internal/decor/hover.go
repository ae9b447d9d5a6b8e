package decor

import (
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/view"
)

// HoverState remembers which titlebar button the cursor rests on so the
// renderer can clear the hover effect when the cursor leaves.
type HoverState struct {
	view   *view.View
	button frame.PartType
}

// Set records the hovered button for v. A PartNone button clears the
// state.
func (h *HoverState) Set(v *view.View, button frame.PartType) {
	if button == frame.PartNone || !frame.Contains(frame.PartButton, button) {
		h.view = nil
		h.button = frame.PartNone
		return
	}
	h.view = v
	h.button = button
}

// Hovered returns the view and button currently hovered, or (nil,
// PartNone).
func (h *HoverState) Hovered() (*view.View, frame.PartType) {
	return h.view, h.button
}

// ViewDestroyed clears the state when the hovered view goes away.
func (h *HoverState) ViewDestroyed(v *view.View) {
	if h.view == v {
		h.view = nil
		h.button = frame.PartNone
	}
}
