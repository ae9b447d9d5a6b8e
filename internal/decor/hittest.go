package decor

import (
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/scene"
)

// ResolvePart resolves the frame part under the cursor.
//
// Content hits always win: a node wrapping client surface content is
// PartClient no matter what decoration surrounds it. Otherwise the node
// is matched against the decoration sub-trees (titlebar elements may be
// nested up to three levels inside presentation wrappers; border parts
// are direct children) and looked up in that sub-tree's registry.
//
// When a part is found, a cursor-proximity probe may override it with a
// resize edge or corner: near the window bounds every context is a
// resize context, even over the titlebar.
func ResolvePart(d *Decoration, tree *scene.Tree, node scene.NodeID, cursorX, cursorY float64) frame.PartType {
	if node == scene.NoNode || !tree.Valid(node) {
		return frame.PartNone
	}
	if tree.HasSurface(node) {
		return frame.PartClient
	}
	if d == nil {
		return frame.PartNone
	}

	parent := tree.Parent(node)
	grandparent := tree.Ancestor(node, 2)
	greatgrandparent := tree.Ancestor(node, 3)

	var st *subTree
	switch {
	case parent == d.titlebar.active.root,
		grandparent == d.titlebar.active.root,
		greatgrandparent == d.titlebar.active.root:
		st = d.titlebar.active
	case parent == d.border.active.root:
		st = d.border.active
	case parent == d.titlebar.inactive.root,
		grandparent == d.titlebar.inactive.root,
		greatgrandparent == d.titlebar.inactive.root:
		st = d.titlebar.inactive
	case parent == d.border.inactive.root:
		st = d.border.inactive
	default:
		return frame.PartNone
	}

	partType, ok := st.byNode[node]
	if !ok || partType == frame.PartNone {
		return frame.PartNone
	}

	if resizing := d.cornerProbe(cursorX, cursorY); resizing != frame.PartNone {
		return resizing
	}
	return partType
}

// cornerProbe reports the resize context implied by the cursor position
// alone: the edge or corner whose proximity band (outside the window's
// extended content box) the cursor lies in, or PartNone.
//
// The probe band width is the configured corner range clipped to half
// the box size, so opposite corners never overlap on tiny windows.
func (d *Decoration) cornerProbe(cursorX, cursorY float64) frame.PartType {
	v := d.view
	if v == nil || !v.Decorated || v.Fullscreen {
		return frame.PartNone
	}

	box := v.Geometry
	box.Height = v.EffectiveHeight()

	if !v.TitlebarHidden {
		// A visible titlebar counts as part of the view.
		box.Y -= d.titlebar.height
		box.Height += d.titlebar.height
	}

	if box.ContainsPoint(cursorX, cursorY) {
		// A cursor in bounds of the view is never a resize context.
		return frame.PartNone
	}

	cornerHeight := clamp(d.cfg.ResizeCornerRange, 0, box.Height/2)
	cornerWidth := clamp(d.cfg.ResizeCornerRange, 0, box.Width/2)

	left := cursorX < float64(box.X+cornerWidth)
	right := cursorX > float64(box.X+box.Width-cornerWidth)
	top := cursorY < float64(box.Y+cornerHeight)
	bottom := cursorY > float64(box.Y+box.Height-cornerHeight)

	switch {
	case top && left:
		return frame.CornerTopLeft
	case top && right:
		return frame.CornerTopRight
	case bottom && left:
		return frame.CornerBottomLeft
	case bottom && right:
		return frame.CornerBottomRight
	case top:
		return frame.PartTop
	case bottom:
		return frame.PartBottom
	case left:
		return frame.PartLeft
	case right:
		return frame.PartRight
	}
	return frame.PartNone
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
