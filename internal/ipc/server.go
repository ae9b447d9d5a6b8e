package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/quoinwm/quoin/internal/runtimepath"
)

// Core is the daemon surface the server queries. Do runs fn on the
// core's event-loop goroutine and waits for it.
type Core interface {
	Do(fn func())
	Status() StatusData
	OutputsInfo() OutputsData
	WindowsInfo() WindowsData
	HitTest() HitTestData
	SnapWindow(req SnapWindowRequest) (SnapWindowData, error)
}

// Server answers IPC requests against the daemon core. Handlers
// dispatch onto the core's event-loop goroutine, so connections never
// touch core state concurrently.
type Server struct {
	socketPath string
	listener   net.Listener
	core       Core
	logger     *slog.Logger

	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates an IPC server for core.
func NewServer(core Core, logger *slog.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	// Remove a stale socket if present.
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		core:       core,
		logger:     logger,
	}, nil
}

// Start begins listening and accepting connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", s.socketPath, err)
	}
	s.listener = listener

	go s.acceptLoop()
	s.logger.Info("ipc server listening", "socket", s.socketPath)
	return nil
}

// Stop closes the listener and removes the socket.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			down := s.shuttingDown
			s.shutdownMu.Unlock()
			if down {
				return
			}
			s.logger.Error("ipc accept failed", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err != io.EOF {
				s.logger.Debug("ipc read failed", "error", err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			s.writeError(conn, fmt.Sprintf("malformed request: %v", err))
			continue
		}

		resp := s.handleRequest(&req)
		data, err := json.Marshal(resp)
		if err != nil {
			s.writeError(conn, fmt.Sprintf("failed to marshal response: %v", err))
			continue
		}
		data = append(data, '\n')
		if _, err := conn.Write(data); err != nil {
			return
		}
	}
}

func (s *Server) handleRequest(req *Request) *Response {
	switch req.Command {
	case CommandPing:
		return okResponse(nil)

	case CommandGetStatus:
		var data StatusData
		s.core.Do(func() { data = s.core.Status() })
		return okResponse(data)

	case CommandGetOutputs:
		var data OutputsData
		s.core.Do(func() { data = s.core.OutputsInfo() })
		return okResponse(data)

	case CommandListWindows:
		var data WindowsData
		s.core.Do(func() { data = s.core.WindowsInfo() })
		return okResponse(data)

	case CommandHitTest:
		var data HitTestData
		s.core.Do(func() { data = s.core.HitTest() })
		return okResponse(data)

	case CommandSnapWindow:
		var snapReq SnapWindowRequest
		if err := json.Unmarshal(req.Payload, &snapReq); err != nil {
			return &Response{
				Status: "ERROR",
				Error:  fmt.Sprintf("malformed SNAP_WINDOW payload: %v", err),
			}
		}
		var data SnapWindowData
		var snapErr error
		s.core.Do(func() { data, snapErr = s.core.SnapWindow(snapReq) })
		if snapErr != nil {
			return &Response{Status: "ERROR", Error: snapErr.Error()}
		}
		return okResponse(data)

	default:
		return &Response{
			Status: "ERROR",
			Error:  fmt.Sprintf("unknown command %q", req.Command),
		}
	}
}

func okResponse(data any) *Response {
	resp := &Response{Status: "OK"}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return &Response{Status: "ERROR", Error: err.Error()}
		}
		resp.Data = raw
	}
	return resp
}

func (s *Server) writeError(conn net.Conn, msg string) {
	resp := &Response{Status: "ERROR", Error: msg}
	if data, err := json.Marshal(resp); err == nil {
		conn.Write(append(data, '\n'))
	}
}
