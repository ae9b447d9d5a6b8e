package daemon

import (
	"fmt"
	"strings"

	"github.com/quoinwm/quoin/internal/decor"
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/ipc"
	"github.com/quoinwm/quoin/internal/scene"
	"github.com/quoinwm/quoin/internal/view"
)

// viewAt returns the topmost view whose frame (content plus titlebar
// and border bands) contains the cursor, or nil.
func (c *Core) viewAt(x, y float64) *view.View {
	for _, v := range c.views.Stack() {
		if v.Minimized {
			continue
		}
		if !v.Omnipresent && v.Workspace != c.workspaces.Current().Name {
			continue
		}
		if c.frameBox(v).ContainsPoint(x, y) {
			return v
		}
	}
	return nil
}

// frameBox is the view's content box extended by its decoration: the
// titlebar strip above and the border band around.
func (c *Core) frameBox(v *view.View) geom.Rect {
	box := v.Geometry
	box.Height = v.EffectiveHeight()
	if v.Fullscreen || !v.Decorated {
		return box
	}
	bw := c.cfg.BorderWidth
	box.X -= bw
	box.Width += 2 * bw
	box.Y -= bw
	box.Height += 2 * bw
	if !v.TitlebarHidden {
		th := c.cfg.TitlebarHeight
		box.Y -= th
		box.Height += th
	}
	return box
}

// nodeAt maps the cursor to the scene node under it for v. This plays
// the role a full scene graph's node-at query would: content first,
// then the titlebar strip, then the border band.
func (c *Core) nodeAt(v *view.View, x, y float64) scene.NodeID {
	content := v.Geometry
	content.Height = v.EffectiveHeight()
	if content.ContainsPoint(x, y) {
		return c.surfaces[v.ID]
	}
	d := c.decorations[v.ID]
	if d == nil || v.Fullscreen || !v.Decorated {
		return scene.NoNode
	}

	if !v.TitlebarHidden {
		titlebar := geom.Rect{
			X:      content.X,
			Y:      content.Y - c.cfg.TitlebarHeight,
			Width:  content.Width,
			Height: c.cfg.TitlebarHeight,
		}
		if titlebar.ContainsPoint(x, y) {
			return d.TitlebarNodeAt(x, y, titlebar)
		}
	}

	if c.frameBox(v).ContainsPoint(x, y) {
		return d.BorderNodeAt(x, y, content)
	}
	return scene.NoNode
}

// HitTest resolves the frame part under the current cursor position.
func (c *Core) HitTest() ipc.HitTestData {
	x, y := c.seat.Cursor()
	data := ipc.HitTestData{
		CursorX: x,
		CursorY: y,
		Part:    frame.PartNone.String(),
	}

	v := c.viewAt(x, y)
	if v == nil {
		return data
	}

	part := decor.ResolvePart(c.decorations[v.ID], c.tree, c.nodeAt(v, x, y), x, y)
	data.Part = part.String()
	data.ResizeEdges = uint32(frame.ResizeEdges(part))
	for xid, xv := range c.byXID {
		if xv == v {
			data.WindowID = xid
			break
		}
	}
	return data
}

// Status summarizes the core state for IPC clients.
func (c *Core) Status() ipc.StatusData {
	names := make([]string, 0, len(c.workspaces.All()))
	for _, ws := range c.workspaces.All() {
		names = append(names, ws.Name)
	}
	return ipc.StatusData{
		CurrentWorkspace: c.workspaces.Current().Name,
		Workspaces:       names,
		WindowCount:      c.views.Len(),
		GrabActive:       c.grabs.Active(),
		UptimeSeconds:    int64(c.Uptime().Seconds()),
	}
}

// OutputsInfo reports the output layout for IPC clients.
func (c *Core) OutputsInfo() ipc.OutputsData {
	var data ipc.OutputsData
	for _, o := range c.layout.Outputs() {
		data.Outputs = append(data.Outputs, ipc.OutputInfo{
			Name:    o.Name,
			X:       o.Bounds.X,
			Y:       o.Bounds.Y,
			Width:   o.Bounds.Width,
			Height:  o.Bounds.Height,
			UsableX: o.Usable.X,
			UsableY: o.Usable.Y,
			UsableW: o.Usable.Width,
			UsableH: o.Usable.Height,
			Enabled: o.Enabled,
		})
	}
	return data
}

// WindowsInfo reports the tracked views for IPC clients.
func (c *Core) WindowsInfo() ipc.WindowsData {
	var data ipc.WindowsData
	for _, v := range c.views.Stack() {
		w := ipc.WindowData{
			ID:        uint32(v.ID),
			Title:     v.Title,
			AppID:     v.AppID,
			Workspace: v.Workspace,
			X:         v.Geometry.X,
			Y:         v.Geometry.Y,
			Width:     v.Geometry.Width,
			Height:    v.Geometry.Height,
			Floating:  v.IsFloating(),
		}
		for xid, xv := range c.byXID {
			if xv == v {
				w.ID = xid
				break
			}
		}
		data.Windows = append(data.Windows, w)
	}
	return data
}

// SnapWindow serves SNAP_WINDOW: it resolves the request's X11 window
// id and edge name and tiles the view, reporting the geometry it ended
// up with.
func (c *Core) SnapWindow(req ipc.SnapWindowRequest) (ipc.SnapWindowData, error) {
	v := c.byXID[req.WindowID]
	if v == nil {
		return ipc.SnapWindowData{}, fmt.Errorf("unknown window %#x", req.WindowID)
	}
	edge, err := parseEdge(req.Edge)
	if err != nil {
		return ipc.SnapWindowData{}, err
	}
	if err := c.SnapView(v, edge); err != nil {
		return ipc.SnapWindowData{}, err
	}
	return ipc.SnapWindowData{
		WindowID:  req.WindowID,
		Edge:      edge.String(),
		X:         v.Geometry.X,
		Y:         v.Geometry.Y,
		Width:     v.Geometry.Width,
		Height:    v.Geometry.Height,
		Maximized: v.Maximized,
	}, nil
}

func parseEdge(name string) (view.Edge, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return view.EdgeLeft, nil
	case "right":
		return view.EdgeRight, nil
	case "up":
		return view.EdgeUp, nil
	case "down":
		return view.EdgeDown, nil
	case "center", "maximize":
		return view.EdgeCenter, nil
	default:
		return view.EdgeInvalid, fmt.Errorf("unknown edge %q", name)
	}
}

// SnapView tiles v to the given edge of the output nearest its center,
// or maximizes it for EdgeCenter. The previous floating geometry is not
// remembered; untiling is the view layer's concern.
func (c *Core) SnapView(v *view.View, edge view.Edge) error {
	if v == nil {
		return fmt.Errorf("no view to snap")
	}
	cx, cy := v.Geometry.Center()
	o := c.layout.NearestToCursor(float64(cx), float64(cy))
	if !o.IsUsable() {
		return fmt.Errorf("no usable output for view %d", v.ID)
	}

	// The usable area is output-local; place the result in the layout.
	area := o.Usable
	area.X += o.Bounds.X
	area.Y += o.Bounds.Y

	target := area
	switch edge {
	case view.EdgeLeft:
		target.Width = area.Width / 2
	case view.EdgeRight:
		target.X = area.X + area.Width/2
		target.Width = area.Width - area.Width/2
	case view.EdgeUp:
		target.Height = area.Height / 2
	case view.EdgeDown:
		target.Y = area.Y + area.Height/2
		target.Height = area.Height - area.Height/2
	case view.EdgeCenter:
		v.Maximized = true
		v.Tiled = view.EdgeInvalid
		v.Geometry = target
		return nil
	default:
		return fmt.Errorf("cannot snap to edge %q", edge)
	}

	v.Tiled = edge
	v.Maximized = false
	v.Geometry = target
	return nil
}
