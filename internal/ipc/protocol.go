// Package ipc implements the unix-socket control protocol between the
// quoin daemon and its CLI/TUI/MCP clients.
package ipc

import (
	"encoding/json"
)

// CommandType represents the IPC command types.
type CommandType string

const (
	CommandPing        CommandType = "PING"
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandGetOutputs  CommandType = "GET_OUTPUTS"
	CommandListWindows CommandType = "LIST_WINDOWS"
	CommandHitTest     CommandType = "HIT_TEST"
	CommandSnapWindow  CommandType = "SNAP_WINDOW"
)

// Request is an IPC request from client to daemon.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is an IPC response from daemon to client.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is returned by GET_STATUS.
type StatusData struct {
	CurrentWorkspace string   `json:"current_workspace"`
	Workspaces       []string `json:"workspaces"`
	WindowCount      int      `json:"window_count"`
	GrabActive       bool     `json:"grab_active"`
	UptimeSeconds    int64    `json:"uptime_seconds"`
}

// OutputInfo describes one output of the layout.
type OutputInfo struct {
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	UsableX int    `json:"usable_x"`
	UsableY int    `json:"usable_y"`
	UsableW int    `json:"usable_w"`
	UsableH int    `json:"usable_h"`
	Enabled bool   `json:"enabled"`
}

// OutputsData is returned by GET_OUTPUTS.
type OutputsData struct {
	Outputs []OutputInfo `json:"outputs"`
}

// WindowData describes one tracked window.
type WindowData struct {
	ID        uint32 `json:"id"`
	Title     string `json:"title"`
	AppID     string `json:"app_id,omitempty"`
	Workspace string `json:"workspace"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Floating  bool   `json:"floating"`
}

// WindowsData is returned by LIST_WINDOWS.
type WindowsData struct {
	Windows []WindowData `json:"windows"`
}

// SnapWindowRequest is the payload of SNAP_WINDOW. Edge is one of
// "left", "right", "up", "down" or "center" (maximize).
type SnapWindowRequest struct {
	WindowID uint32 `json:"window_id"`
	Edge     string `json:"edge"`
}

// SnapWindowData is returned by SNAP_WINDOW: the geometry the window
// was tiled to.
type SnapWindowData struct {
	WindowID  uint32 `json:"window_id"`
	Edge      string `json:"edge"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Maximized bool   `json:"maximized"`
}

// HitTestData is returned by HIT_TEST: the frame part under the cursor
// and the resize edges it implies.
type HitTestData struct {
	CursorX     float64 `json:"cursor_x"`
	CursorY     float64 `json:"cursor_y"`
	WindowID    uint32  `json:"window_id,omitempty"`
	Part        string  `json:"part"`
	ResizeEdges uint32  `json:"resize_edges"`
}
