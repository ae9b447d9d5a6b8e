package daemon

import (
	"testing"

	"github.com/quoinwm/quoin/internal/config"
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/geom"
	"github.com/quoinwm/quoin/internal/grab"
	"github.com/quoinwm/quoin/internal/ipc"
	"github.com/quoinwm/quoin/internal/output"
	"github.com/quoinwm/quoin/internal/view"
	"github.com/quoinwm/quoin/internal/x11"
)

// fakeBackend serves canned state instead of talking to a display.
type fakeBackend struct {
	outputs []*output.Output
	pointer geom.Point
	windows []x11.WindowInfo
}

func (b *fakeBackend) Outputs() ([]*output.Output, error) {
	return b.outputs, nil
}

func (b *fakeBackend) PointerPosition() (float64, float64, error) {
	return b.pointer.X, b.pointer.Y, nil
}

func (b *fakeBackend) ListWindows() ([]x11.WindowInfo, error) {
	return b.windows, nil
}

func testBackend() *fakeBackend {
	return &fakeBackend{
		outputs: []*output.Output{{
			Name:    "HDMI-1",
			Bounds:  geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			Usable:  geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1050},
			Enabled: true,
		}},
		pointer: geom.Point{X: 500, Y: 500},
		windows: []x11.WindowInfo{{
			ID:       0x400001,
			Title:    "editor",
			Class:    "Editor",
			Geometry: geom.Rect{X: 200, Y: 200, Width: 800, Height: 600},
		}},
	}
}

func testCore(t *testing.T, b Backend) *Core {
	t.Helper()
	cfg := config.Default()
	cfg.SnapEdgeRange = 10
	c, err := New(cfg, b, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestSyncReconciles(t *testing.T) {
	b := testBackend()
	c := testCore(t, b)

	c.sync()
	if c.views.Len() != 1 {
		t.Fatalf("views after first sync = %d, want 1", c.views.Len())
	}
	v := c.byXID[0x400001]
	if v == nil || v.Title != "editor" || v.AppID != "Editor" {
		t.Fatalf("mapped view = %+v", v)
	}
	if v.Workspace != c.workspaces.Current().Name {
		t.Fatalf("view on %q, want current workspace", v.Workspace)
	}
	if c.seat.FocusedView() != v {
		t.Fatal("new view not focused")
	}
	if x, y := c.seat.Cursor(); x != 500 || y != 500 {
		t.Fatalf("cursor = %v,%v", x, y)
	}

	// A second window appears, the first one moves.
	b.windows = append(b.windows, x11.WindowInfo{
		ID:       0x400002,
		Title:    "terminal",
		Class:    "Term",
		Geometry: geom.Rect{X: 0, Y: 0, Width: 400, Height: 300},
	})
	b.windows[0].Geometry.X = 250
	c.sync()
	if c.views.Len() != 2 {
		t.Fatalf("views after second sync = %d, want 2", c.views.Len())
	}
	if v.Geometry.X != 250 {
		t.Fatalf("moved view X = %d, want 250", v.Geometry.X)
	}

	// The first window closes.
	b.windows = b.windows[1:]
	c.sync()
	if c.views.Len() != 1 {
		t.Fatalf("views after close = %d, want 1", c.views.Len())
	}
	if c.byXID[0x400001] != nil {
		t.Fatal("closed window still tracked")
	}
	if c.seat.FocusedView() == nil {
		t.Fatal("focus not recovered after the focused view closed")
	}
}

func TestHitTest(t *testing.T) {
	b := testBackend()
	c := testCore(t, b)
	c.sync()

	// Content box is 200,200 800x600 with a 26px titlebar above.
	tests := []struct {
		name string
		x, y float64
		part string
	}{
		{"client content", 600, 500, "client"},
		{"titlebar strip", 600, 180, "titlebar"},
		{"left border", 197, 500, "left"},
		{"top-left resize band", 197, 172, "corner-top-left"},
		{"desktop", 50, 1000, "none"},
	}
	for _, tt := range tests {
		b.pointer = geom.Point{X: tt.x, Y: tt.y}
		c.sync()
		data := c.HitTest()
		if data.Part != tt.part {
			t.Errorf("%s: part = %q, want %q", tt.name, data.Part, tt.part)
		}
		if tt.part != "none" && data.WindowID != 0x400001 {
			t.Errorf("%s: window = %#x, want 0x400001", tt.name, data.WindowID)
		}
	}

	// Corner hits report both adjacent resize edges.
	b.pointer = geom.Point{X: 197, Y: 172}
	c.sync()
	data := c.HitTest()
	want := uint32(frame.EdgeMaskTop | frame.EdgeMaskLeft)
	if data.ResizeEdges != want {
		t.Errorf("corner resize edges = %#x, want %#x", data.ResizeEdges, want)
	}
}

func TestSnapViewHalves(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()
	v := c.byXID[0x400001]

	if err := c.SnapView(v, view.EdgeLeft); err != nil {
		t.Fatalf("SnapView: %v", err)
	}
	// Usable area is 0,30 1920x1050 in output-local coordinates.
	want := geom.Rect{X: 0, Y: 30, Width: 960, Height: 1050}
	if v.Geometry != want {
		t.Fatalf("left snap geometry = %v, want %v", v.Geometry, want)
	}
	if v.Tiled != view.EdgeLeft || v.Maximized {
		t.Fatalf("left snap state: tiled=%v maximized=%v", v.Tiled, v.Maximized)
	}

	if err := c.SnapView(v, view.EdgeRight); err != nil {
		t.Fatalf("SnapView: %v", err)
	}
	want = geom.Rect{X: 960, Y: 30, Width: 960, Height: 1050}
	if v.Geometry != want {
		t.Fatalf("right snap geometry = %v, want %v", v.Geometry, want)
	}
}

func TestSnapViewMaximize(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()
	v := c.byXID[0x400001]

	if err := c.SnapView(v, view.EdgeCenter); err != nil {
		t.Fatalf("SnapView: %v", err)
	}
	want := geom.Rect{X: 0, Y: 30, Width: 1920, Height: 1050}
	if v.Geometry != want {
		t.Fatalf("maximize geometry = %v, want %v", v.Geometry, want)
	}
	if !v.Maximized || v.Tiled != view.EdgeInvalid {
		t.Fatalf("maximize state: tiled=%v maximized=%v", v.Tiled, v.Maximized)
	}
}

func TestSnapViewErrors(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()
	v := c.byXID[0x400001]

	if err := c.SnapView(nil, view.EdgeLeft); err == nil {
		t.Fatal("SnapView(nil) succeeded")
	}
	if err := c.SnapView(v, view.EdgeInvalid); err == nil {
		t.Fatal("SnapView(invalid edge) succeeded")
	}
}

func TestSnapWindowByID(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()

	data, err := c.SnapWindow(ipc.SnapWindowRequest{WindowID: 0x400001, Edge: "left"})
	if err != nil {
		t.Fatalf("SnapWindow: %v", err)
	}
	want := ipc.SnapWindowData{
		WindowID: 0x400001, Edge: "left", X: 0, Y: 30, Width: 960, Height: 1050,
	}
	if data != want {
		t.Fatalf("snap data = %+v, want %+v", data, want)
	}
	if v := c.byXID[0x400001]; v.Tiled != view.EdgeLeft {
		t.Fatalf("tiled = %v, want left", v.Tiled)
	}

	// "maximize" is an alias for the center edge.
	data, err = c.SnapWindow(ipc.SnapWindowRequest{WindowID: 0x400001, Edge: "maximize"})
	if err != nil {
		t.Fatalf("SnapWindow: %v", err)
	}
	if data.Edge != "center" || !data.Maximized {
		t.Fatalf("maximize data = %+v", data)
	}
}

func TestSnapWindowErrors(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()

	if _, err := c.SnapWindow(ipc.SnapWindowRequest{WindowID: 0xdead, Edge: "left"}); err == nil {
		t.Fatal("SnapWindow succeeded for an unknown window")
	}
	if _, err := c.SnapWindow(ipc.SnapWindowRequest{WindowID: 0x400001, Edge: "sideways"}); err == nil {
		t.Fatal("SnapWindow succeeded for an unknown edge")
	}
}

func TestHoverTracksTitlebarButtons(t *testing.T) {
	b := testBackend()
	c := testCore(t, b)

	// The close button occupies the rightmost titlebar-height square of
	// the strip above the content box.
	b.pointer = geom.Point{X: 990, Y: 180}
	c.sync()
	v, button := c.Hover()
	if v != c.byXID[0x400001] || button != frame.ButtonClose {
		t.Fatalf("Hover() = %v,%v, want close button", v, button)
	}

	// Client content is not a button; the hover clears.
	b.pointer = geom.Point{X: 600, Y: 500}
	c.sync()
	if v, _ := c.Hover(); v != nil {
		t.Fatal("hover survives leaving the titlebar")
	}

	// A destroyed view clears the hover immediately, without a sync.
	b.pointer = geom.Point{X: 990, Y: 180}
	c.sync()
	if v, _ := c.Hover(); v == nil {
		t.Fatal("hover not set over the close button")
	}
	c.views.Remove(c.byXID[0x400001])
	if v, _ := c.Hover(); v != nil {
		t.Fatal("hover survives view destruction")
	}
}

func TestUpdateOverlayTracksMoveGrab(t *testing.T) {
	b := testBackend()
	c := testCore(t, b)
	c.sync()
	v := c.byXID[0x400001]

	if err := c.grabs.Begin(v, grab.KindMove, frame.EdgeNone); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Drag to the left snap band.
	b.pointer = geom.Point{X: 5, Y: 500}
	c.sync()
	if !c.seat.OverlayVisible() {
		t.Fatal("overlay hidden in the snap band")
	}

	// Drag back to the middle.
	b.pointer = geom.Point{X: 500, Y: 500}
	c.sync()
	if c.seat.OverlayVisible() {
		t.Fatal("overlay visible outside any snap band")
	}
}

func TestStatus(t *testing.T) {
	c := testCore(t, testBackend())
	c.sync()

	status := c.Status()
	if status.WindowCount != 1 {
		t.Errorf("WindowCount = %d, want 1", status.WindowCount)
	}
	if status.CurrentWorkspace != "1" || len(status.Workspaces) != 4 {
		t.Errorf("workspaces: current=%q all=%v", status.CurrentWorkspace, status.Workspaces)
	}
	if status.GrabActive {
		t.Error("GrabActive = true while idle")
	}

	outputs := c.OutputsInfo()
	if len(outputs.Outputs) != 1 || outputs.Outputs[0].Name != "HDMI-1" {
		t.Errorf("OutputsInfo = %+v", outputs)
	}

	windows := c.WindowsInfo()
	if len(windows.Windows) != 1 || windows.Windows[0].ID != 0x400001 {
		t.Errorf("WindowsInfo = %+v", windows)
	}
	if !windows.Windows[0].Floating {
		t.Error("fresh view not reported floating")
	}
}
