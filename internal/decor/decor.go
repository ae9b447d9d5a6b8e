// Package decor builds and maintains server-side window decorations:
// the titlebar and border sub-trees, their semantic part registries, and
// the hit tests that map a scene node under the cursor to a frame part.
package decor

import (
	"github.com/quoinwm/quoin/internal/config"
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/scene"
	"github.com/quoinwm/quoin/internal/view"
)

// Part pairs a semantic frame region with the scene node rendering it.
type Part struct {
	Type frame.PartType
	Node scene.NodeID
}

// subTree is one styling variant (active or inactive) of the titlebar or
// border, with its part registry. Node IDs within one registry are
// unique; byNode is the reverse index used during hit tests.
type subTree struct {
	root   scene.NodeID
	parts  []Part
	byNode map[scene.NodeID]frame.PartType
}

func newSubTree(t *scene.Tree, parent scene.NodeID) *subTree {
	return &subTree{
		root:   t.NewNode(parent),
		byNode: make(map[scene.NodeID]frame.PartType),
	}
}

func (st *subTree) addPart(node scene.NodeID, typ frame.PartType) {
	st.parts = append(st.parts, Part{Type: typ, Node: node})
	st.byNode[node] = typ
}

// Decoration is the rendered frame of one view.
type Decoration struct {
	view *view.View
	tree *scene.Tree
	cfg  *config.Config

	root scene.NodeID

	titlebar struct {
		height   int
		root     scene.NodeID
		active   *subTree
		inactive *subTree
	}

	border struct {
		root     scene.NodeID
		active   *subTree
		inactive *subTree
	}

	// Cache of the last applied values so redundant updates from the
	// render path can be dropped.
	state struct {
		geometry geom.Rect
		title    string
	}
}

// Titlebar buttons in left-to-right render order.
var titlebarButtons = []frame.PartType{
	frame.ButtonWindowIcon,
	frame.ButtonWindowMenu,
	frame.ButtonIconify,
	frame.ButtonMaximize,
	frame.ButtonClose,
}

// New builds a decoration for v inside tree, with both styling variants.
func New(tree *scene.Tree, v *view.View, cfg *config.Config) *Decoration {
	d := &Decoration{view: v, tree: tree, cfg: cfg}
	d.root = tree.NewNode(scene.NoNode)

	d.titlebar.height = cfg.TitlebarHeight
	d.titlebar.root = tree.NewNode(d.root)
	d.titlebar.active = d.buildTitlebar(d.titlebar.root)
	d.titlebar.inactive = d.buildTitlebar(d.titlebar.root)

	d.border.root = tree.NewNode(d.root)
	d.border.active = d.buildBorder(d.border.root)
	d.border.inactive = d.buildBorder(d.border.root)

	d.state.geometry = v.Geometry
	d.state.title = v.Title

	// New decorations come up in the inactive style.
	d.SetFocusStyling(false)
	return d
}

// buildTitlebar populates one titlebar variant. Buttons and the title
// are nested one level inside wrapper nodes, mirroring how the renderer
// stacks hover/press layers, so hit tests must walk ancestors.
func (d *Decoration) buildTitlebar(parent scene.NodeID) *subTree {
	st := newSubTree(d.tree, parent)

	bg := d.tree.NewNode(st.root)
	st.addPart(bg, frame.PartTitlebar)

	for _, b := range titlebarButtons {
		wrapper := d.tree.NewNode(st.root)
		node := d.tree.NewNode(wrapper)
		st.addPart(node, b)
	}

	// Title text sits two wrappers deep (scaled-buffer inside a
	// clip node), the deepest nesting the hit test must handle.
	clip := d.tree.NewNode(st.root)
	buffer := d.tree.NewNode(clip)
	st.addPart(buffer, frame.PartTitle)

	return st
}

// buildBorder populates one border variant. Borders are flat: every part
// node is a direct child of the sub-tree root.
func (d *Decoration) buildBorder(parent scene.NodeID) *subTree {
	st := newSubTree(d.tree, parent)
	for _, e := range []frame.PartType{
		frame.PartTop, frame.PartRight, frame.PartBottom, frame.PartLeft,
		frame.CornerTopLeft, frame.CornerTopRight,
		frame.CornerBottomRight, frame.CornerBottomLeft,
	} {
		st.addPart(d.tree.NewNode(st.root), e)
	}
	return st
}

// View returns the decorated view.
func (d *Decoration) View() *view.View {
	return d.view
}

// TitlebarHeight returns the configured titlebar height.
func (d *Decoration) TitlebarHeight() int {
	return d.titlebar.height
}

// SetFocusStyling swaps which styling variant is visible. Presentation
// only: hit testing searches both variants, so results do not depend on
// this toggle.
func (d *Decoration) SetFocusStyling(active bool) {
	d.tree.SetEnabled(d.titlebar.active.root, active)
	d.tree.SetEnabled(d.border.active.root, active)
	d.tree.SetEnabled(d.titlebar.inactive.root, !active)
	d.tree.SetEnabled(d.border.inactive.root, !active)
}

// UpdateGeometry records the view's committed geometry, returning false
// when nothing changed so callers can skip re-rendering.
func (d *Decoration) UpdateGeometry(box geom.Rect) bool {
	if box == d.state.geometry {
		return false
	}
	d.state.geometry = box
	return true
}

// SetTitle records the title text, returning false when unchanged.
func (d *Decoration) SetTitle(title string) bool {
	if title == d.state.title {
		return false
	}
	d.state.title = title
	return true
}
