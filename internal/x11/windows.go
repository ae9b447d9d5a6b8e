package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/quoinwm/quoin/internal/geom"
)

// WindowInfo describes one mapped client window.
type WindowInfo struct {
	ID       uint32
	Title    string
	Class    string
	Geometry geom.Rect
}

// ListWindows returns the EWMH client list with titles and root-relative
// geometry, skipping docks and other non-normal windows.
func (c *Connection) ListWindows() ([]WindowInfo, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}

	var windows []WindowInfo
	for _, windowID := range clients {
		if !c.isNormalWindow(windowID) {
			continue
		}

		info := WindowInfo{ID: uint32(windowID)}

		if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil && title != "" {
			info.Title = title
		} else if hints, err := icccm.WmNameGet(c.XUtil, windowID); err == nil {
			info.Title = hints
		}

		if class, err := icccm.WmClassGet(c.XUtil, windowID); err == nil && class != nil {
			info.Class = class.Class
		}

		if g, err := c.windowGeometry(windowID); err == nil {
			info.Geometry = g
		}

		windows = append(windows, info)
	}

	return windows, nil
}

// windowGeometry returns the window's geometry in root coordinates.
func (c *Connection) windowGeometry(windowID xproto.Window) (geom.Rect, error) {
	g, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to get geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(), windowID, c.Root, 0, 0,
	).Reply()
	if err != nil {
		return geom.Rect{}, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	return geom.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(g.Width),
		Height: int(g.Height),
	}, nil
}

func (c *Connection) isNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine the type, assume it's normal.
		return true
	}
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	return len(types) == 0
}
