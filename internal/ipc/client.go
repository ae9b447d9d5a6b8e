package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/quoinwm/quoin/internal/runtimepath"
)

// Client talks to the daemon over the IPC socket.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates an IPC client for the standard socket path.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep the constructor non-failing; sendRequest surfaces
		// connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Ping checks whether the daemon is reachable.
func (c *Client) Ping() error {
	_, err := c.sendRequest(&Request{Command: CommandPing})
	return err
}

// GetStatus fetches the daemon status summary.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}
	var data StatusData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &data, nil
}

// GetOutputs fetches the output layout.
func (c *Client) GetOutputs() (*OutputsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetOutputs})
	if err != nil {
		return nil, err
	}
	var data OutputsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse outputs data: %w", err)
	}
	return &data, nil
}

// ListWindows fetches the tracked window list.
func (c *Client) ListWindows() (*WindowsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandListWindows})
	if err != nil {
		return nil, err
	}
	var data WindowsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse windows data: %w", err)
	}
	return &data, nil
}

// SnapWindow asks the daemon to tile the window to an output edge, or
// maximize it for "center". It returns the resulting geometry.
func (c *Client) SnapWindow(windowID uint32, edge string) (*SnapWindowData, error) {
	payload, err := json.Marshal(SnapWindowRequest{WindowID: windowID, Edge: edge})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snap request: %w", err)
	}
	resp, err := c.sendRequest(&Request{Command: CommandSnapWindow, Payload: payload})
	if err != nil {
		return nil, err
	}
	var data SnapWindowData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse snap data: %w", err)
	}
	return &data, nil
}

// HitTest asks the daemon which frame part the cursor is over.
func (c *Client) HitTest() (*HitTestData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandHitTest})
	if err != nil {
		return nil, err
	}
	var data HitTestData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse hit test data: %w", err)
	}
	return &data, nil
}
