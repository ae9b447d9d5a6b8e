package mcp

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	CurrentWorkspace string   `json:"current_workspace"`
	Workspaces       []string `json:"workspaces"`
	WindowCount      int      `json:"window_count"`
	GrabActive       bool     `json:"grab_active"`
	UptimeSeconds    int64    `json:"uptime_seconds"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes a single tracked window.
type WindowInfo struct {
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

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ListOutputsInput is the input for the list_outputs tool.
type ListOutputsInput struct{}

// OutputInfo describes one output of the layout.
type OutputInfo struct {
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	UsableW int    `json:"usable_w"`
	UsableH int    `json:"usable_h"`
	Enabled bool   `json:"enabled"`
}

// ListOutputsOutput is the output for the list_outputs tool.
type ListOutputsOutput struct {
	Outputs []OutputInfo `json:"outputs"`
}

// SnapWindowInput is the input for the snap_window tool.
type SnapWindowInput struct {
	WindowID uint32 `json:"window_id"`
	// Edge is "left", "right", "up", "down" or "center" (maximize).
	Edge string `json:"edge"`
}

// SnapWindowOutput is the output for the snap_window tool.
type SnapWindowOutput struct {
	WindowID  uint32 `json:"window_id"`
	Edge      string `json:"edge"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Maximized bool   `json:"maximized"`
}

// HitTestInput is the input for the hit_test tool.
type HitTestInput struct{}

// HitTestOutput is the output for the hit_test tool.
type HitTestOutput struct {
	CursorX     float64 `json:"cursor_x"`
	CursorY     float64 `json:"cursor_y"`
	WindowID    uint32  `json:"window_id,omitempty"`
	Part        string  `json:"part"`
	ResizeEdges uint32  `json:"resize_edges"`
}
