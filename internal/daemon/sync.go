package daemon

import (
	"github.com/quoinwm/quoin/internal/decor"
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/grab"
	"github.com/quoinwm/quoin/internal/scene"
	"github.com/quoinwm/quoin/internal/view"
	"github.com/quoinwm/quoin/internal/x11"
)

// sync pulls fresh backend state: output layout, pointer position and
// the window list, reconciling the view registry against the latter.
func (c *Core) sync() {
	if c.backend == nil {
		return
	}

	if outputs, err := c.backend.Outputs(); err != nil {
		c.logger.Error("failed to enumerate outputs", "error", err)
	} else {
		c.layout.Set(outputs)
	}

	if x, y, err := c.backend.PointerPosition(); err != nil {
		c.logger.Debug("failed to query pointer", "error", err)
	} else {
		c.seat.SetCursor(x, y)
	}

	windows, err := c.backend.ListWindows()
	if err != nil {
		c.logger.Error("failed to list windows", "error", err)
		return
	}
	c.reconcile(windows)
	c.updateOverlay()
	c.updateHover()
}

// reconcile adds views for new windows, refreshes geometry and titles
// for known ones, and removes views whose windows are gone.
func (c *Core) reconcile(windows []x11.WindowInfo) {
	seen := make(map[uint32]struct{}, len(windows))

	for _, w := range windows {
		seen[w.ID] = struct{}{}

		v, known := c.byXID[w.ID]
		if !known {
			c.addView(w)
			continue
		}

		if d := c.decorations[v.ID]; d != nil {
			if d.UpdateGeometry(w.Geometry) {
				v.Geometry = w.Geometry
			}
			if d.SetTitle(w.Title) {
				v.Title = w.Title
			}
		} else {
			v.Geometry = w.Geometry
			v.Title = w.Title
		}
	}

	for xid, v := range c.byXID {
		if _, ok := seen[xid]; ok {
			continue
		}
		c.removeView(xid, v)
	}
}

func (c *Core) addView(w x11.WindowInfo) *view.View {
	v := c.views.Add(&view.View{
		Title:     w.Title,
		AppID:     w.Class,
		Geometry:  w.Geometry,
		Decorated: true,
		Focusable: true,
		Workspace: c.workspaces.Current().Name,
	})
	c.byXID[w.ID] = v
	c.surfaces[v.ID] = c.tree.NewSurfaceNode(scene.NoNode)
	c.decorations[v.ID] = decor.New(c.tree, v, c.cfg)

	c.restyleFocus(v)
	c.seat.Focus(v)
	c.logger.Debug("view mapped", "id", v.ID, "title", v.Title)
	return v
}

func (c *Core) removeView(xid uint32, v *view.View) {
	delete(c.byXID, xid)
	delete(c.surfaces, v.ID)
	delete(c.decorations, v.ID)
	c.views.Remove(v)
	c.logger.Debug("view unmapped", "id", v.ID, "title", v.Title)

	if c.seat.FocusedView() == nil {
		c.workspaces.FocusTopmost()
	}
}

// restyleFocus flips every decoration's styling so only the newly
// focused view renders as active.
func (c *Core) restyleFocus(focused *view.View) {
	for id, d := range c.decorations {
		d.SetFocusStyling(id == focused.ID)
	}
}

// updateHover records which titlebar button the cursor rests on, so
// the render path can draw and clear hover effects.
func (c *Core) updateHover() {
	x, y := c.seat.Cursor()
	v := c.viewAt(x, y)
	if v == nil {
		c.hover.Set(nil, frame.PartNone)
		return
	}
	part := decor.ResolvePart(c.decorations[v.ID], c.tree, c.nodeAt(v, x, y), x, y)
	c.hover.Set(v, part)
}

// updateOverlay keeps the snap-preview overlay visibility in step with
// the cursor while a move grab is active.
func (c *Core) updateOverlay() {
	if !c.grabs.Active() || c.grabs.State().Kind() != grab.KindMove {
		return
	}
	if edge, _ := c.snapper.FromCursor(c.seat); edge != view.EdgeInvalid {
		c.seat.ShowOverlay()
	} else {
		c.seat.HideOverlay()
	}
}
