package decor

import (
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/scene"
)

// visibleTitlebar returns the titlebar variant currently rendered.
func (d *Decoration) visibleTitlebar() *subTree {
	if d.tree.Enabled(d.titlebar.active.root) {
		return d.titlebar.active
	}
	return d.titlebar.inactive
}

func (d *Decoration) visibleBorder() *subTree {
	if d.tree.Enabled(d.border.active.root) {
		return d.border.active
	}
	return d.border.inactive
}

func (st *subTree) nodeFor(typ frame.PartType) scene.NodeID {
	for _, p := range st.parts {
		if p.Type == typ {
			return p.Node
		}
	}
	return scene.NoNode
}

// TitlebarNodeAt returns the scene node under the cursor within the
// titlebar strip bar: a button node in the left or right button groups,
// the titlebar background otherwise. Buttons are square, sized by the
// titlebar height; window icon and menu sit on the left, iconify,
// maximize and close on the right.
func (d *Decoration) TitlebarNodeAt(x, y float64, bar geom.Rect) scene.NodeID {
	st := d.visibleTitlebar()
	side := float64(bar.Height)

	leftButtons := []frame.PartType{frame.ButtonWindowIcon, frame.ButtonWindowMenu}
	rightButtons := []frame.PartType{frame.ButtonClose, frame.ButtonMaximize, frame.ButtonIconify}

	for i, b := range leftButtons {
		lo := float64(bar.X) + float64(i)*side
		if x >= lo && x < lo+side {
			return st.nodeFor(b)
		}
	}
	for i, b := range rightButtons {
		hi := float64(bar.X+bar.Width) - float64(i)*side
		if x <= hi && x > hi-side {
			return st.nodeFor(b)
		}
	}
	return st.nodeFor(frame.PartTitlebar)
}

// BorderNodeAt returns the border part node under the cursor, relative
// to the view's content box. Positions off two edges at once map to the
// corner nodes.
func (d *Decoration) BorderNodeAt(x, y float64, content geom.Rect) scene.NodeID {
	st := d.visibleBorder()

	top := y < float64(content.Y)
	bottom := y > float64(content.Y+content.Height)
	left := x < float64(content.X)
	right := x > float64(content.X+content.Width)

	// The titlebar strip also hangs above the content box; treat the
	// band above it as the top border only when the caller has already
	// ruled the titlebar out, which BorderNodeAt relies on.
	switch {
	case top && left:
		return st.nodeFor(frame.CornerTopLeft)
	case top && right:
		return st.nodeFor(frame.CornerTopRight)
	case bottom && left:
		return st.nodeFor(frame.CornerBottomLeft)
	case bottom && right:
		return st.nodeFor(frame.CornerBottomRight)
	case top:
		return st.nodeFor(frame.PartTop)
	case bottom:
		return st.nodeFor(frame.PartBottom)
	case left:
		return st.nodeFor(frame.PartLeft)
	case right:
		return st.nodeFor(frame.PartRight)
	default:
		return scene.NoNode
	}
}
