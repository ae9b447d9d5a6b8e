// Package mcp exposes the daemon's window-management state as MCP
// tools over stdio, for use by MCP clients.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quoinwm/quoin/internal/ipc"
)

const (
	ServerName    = "quoin"
	ServerVersion = "0.1.0"
)

// Server is the MCP server, backed by the daemon over IPC.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer creates an MCP server talking to the daemon's IPC socket.
func NewServer() *Server {
	s := &Server{
		client: ipc.NewClient(),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Get daemon status: workspaces, window count and whether an interactive move/resize grab is active.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List tracked windows with geometry, workspace assignment and floating state, topmost first.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_outputs",
		Description: "List outputs with layout position and usable (strut-adjusted) area.",
	}, s.handleListOutputs)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "snap_window",
		Description: "Tile a window to an output edge half (left/right/up/down) or maximize it (center), returning the resulting geometry.",
	}, s.handleSnapWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hit_test",
		Description: "Resolve which semantic frame part (titlebar, border, corner, button, client content) is under the cursor right now, plus the resize-edge mask it implies.",
	}, s.handleHitTest)
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, err
	}
	return nil, GetStatusOutput{
		CurrentWorkspace: status.CurrentWorkspace,
		Workspaces:       status.Workspaces,
		WindowCount:      status.WindowCount,
		GrabActive:       status.GrabActive,
		UptimeSeconds:    status.UptimeSeconds,
	}, nil
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.client.ListWindows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	out := ListWindowsOutput{}
	for _, w := range windows.Windows {
		out.Windows = append(out.Windows, WindowInfo{
			ID:        w.ID,
			Title:     w.Title,
			AppID:     w.AppID,
			Workspace: w.Workspace,
			X:         w.X,
			Y:         w.Y,
			Width:     w.Width,
			Height:    w.Height,
			Floating:  w.Floating,
		})
	}
	return nil, out, nil
}

func (s *Server) handleListOutputs(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListOutputsInput) (*mcpsdk.CallToolResult, ListOutputsOutput, error) {
	outputs, err := s.client.GetOutputs()
	if err != nil {
		return nil, ListOutputsOutput{}, err
	}
	out := ListOutputsOutput{}
	for _, o := range outputs.Outputs {
		out.Outputs = append(out.Outputs, OutputInfo{
			Name:    o.Name,
			X:       o.X,
			Y:       o.Y,
			Width:   o.Width,
			Height:  o.Height,
			UsableW: o.UsableW,
			UsableH: o.UsableH,
			Enabled: o.Enabled,
		})
	}
	return nil, out, nil
}

func (s *Server) handleSnapWindow(_ context.Context, _ *mcpsdk.CallToolRequest, in SnapWindowInput) (*mcpsdk.CallToolResult, SnapWindowOutput, error) {
	data, err := s.client.SnapWindow(in.WindowID, in.Edge)
	if err != nil {
		return nil, SnapWindowOutput{}, err
	}
	return nil, SnapWindowOutput{
		WindowID:  data.WindowID,
		Edge:      data.Edge,
		X:         data.X,
		Y:         data.Y,
		Width:     data.Width,
		Height:    data.Height,
		Maximized: data.Maximized,
	}, nil
}

func (s *Server) handleHitTest(_ context.Context, _ *mcpsdk.CallToolRequest, _ HitTestInput) (*mcpsdk.CallToolResult, HitTestOutput, error) {
	hit, err := s.client.HitTest()
	if err != nil {
		return nil, HitTestOutput{}, err
	}
	return nil, HitTestOutput{
		CursorX:     hit.CursorX,
		CursorY:     hit.CursorY,
		WindowID:    hit.WindowID,
		Part:        hit.Part,
		ResizeEdges: hit.ResizeEdges,
	}, nil
}
