package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/output"
)

// Outputs enumerates active monitors via RandR and returns them as
// layout outputs, with usable areas reduced by dock struts and
// expressed in each output's local coordinates.
func (c *Connection) Outputs() ([]*output.Output, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var outputs []*output.Output

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs.
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("output-%d", i)
		if outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(outputInfo.Name)
		}

		bounds := geom.Rect{
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}

		outputs = append(outputs, &output.Output{
			Name:    name,
			Bounds:  bounds,
			Usable:  c.usableArea(bounds),
			Enabled: true,
			Scale:   1,
		})
	}

	return outputs, nil
}

// usableArea subtracts dock struts from bounds and converts the result
// into the output's local coordinate space.
func (c *Connection) usableArea(bounds geom.Rect) geom.Rect {
	adjusted := bounds
	if !c.applyDockStruts(&adjusted) {
		// No struts found; the whole output is usable.
		adjusted = bounds
	}
	return geom.Rect{
		X:      adjusted.X - bounds.X,
		Y:      adjusted.Y - bounds.Y,
		Width:  adjusted.Width,
		Height: adjusted.Height,
	}
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func (c *Connection) applyDockStruts(area *geom.Rect) bool {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return false
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			accumulateStruts(area, rootWidth, rootHeight, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			sp := &ewmh.WmStrutPartial{
				Left:         s.Left,
				Right:        s.Right,
				Top:          s.Top,
				Bottom:       s.Bottom,
				LeftStartY:   0,
				LeftEndY:     uint(rootHeight - 1),
				RightStartY:  0,
				RightEndY:    uint(rootHeight - 1),
				TopStartX:    0,
				TopEndX:      uint(rootWidth - 1),
				BottomStartX: 0,
				BottomEndX:   uint(rootWidth - 1),
			}
			accumulateStruts(area, rootWidth, rootHeight, sp, &struts)
		}
	}

	if struts.left == 0 && struts.right == 0 && struts.top == 0 && struts.bottom == 0 {
		return false
	}

	area.X += struts.left
	area.Y += struts.top
	area.Width -= struts.left + struts.right
	area.Height -= struts.top + struts.bottom

	if area.Width < 1 {
		area.Width = 1
	}
	if area.Height < 1 {
		area.Height = 1
	}

	return true
}

func accumulateStruts(area *geom.Rect, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	ax1 := area.X
	ay1 := area.Y
	ax2 := area.X + area.Width
	ay2 := area.Y + area.Height

	// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
	if sp.Top > 0 {
		x1 := int(sp.TopStartX)
		x2 := int(sp.TopEndX) + 1
		if sz := intersectionSize(ax1, ay1, ax2, ay2, x1, 0, x2, int(sp.Top)); sz.h > 0 {
			acc.top = max(acc.top, sz.h)
		}
	}

	// Bottom strut: y=[rootHeight-Bottom,rootHeight), x=[BottomStartX,BottomEndX]
	if sp.Bottom > 0 {
		x1 := int(sp.BottomStartX)
		x2 := int(sp.BottomEndX) + 1
		if sz := intersectionSize(ax1, ay1, ax2, ay2, x1, rootHeight-int(sp.Bottom), x2, rootHeight); sz.h > 0 {
			acc.bottom = max(acc.bottom, sz.h)
		}
	}

	// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
	if sp.Left > 0 {
		y1 := int(sp.LeftStartY)
		y2 := int(sp.LeftEndY) + 1
		if sz := intersectionSize(ax1, ay1, ax2, ay2, 0, y1, int(sp.Left), y2); sz.w > 0 {
			acc.left = max(acc.left, sz.w)
		}
	}

	// Right strut: x=[rootWidth-Right,rootWidth), y=[RightStartY,RightEndY]
	if sp.Right > 0 {
		y1 := int(sp.RightStartY)
		y2 := int(sp.RightEndY) + 1
		if sz := intersectionSize(ax1, ay1, ax2, ay2, rootWidth-int(sp.Right), y1, rootWidth, y2); sz.w > 0 {
			acc.right = max(acc.right, sz.w)
		}
	}
}

type intersection struct {
	w int
	h int
}

func intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) intersection {
	x1 := max(ax1, bx1)
	y1 := max(ay1, by1)
	x2 := min(ax2, bx2)
	y2 := min(ay2, by2)

	if x2 <= x1 || y2 <= y1 {
		return intersection{}
	}
	return intersection{w: x2 - x1, h: y2 - y1}
}
