// Package runtimepath decides where quoin keeps its per-user runtime
// files, primarily the daemon control socket.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
)

const socketName = "quoin.sock"

// Dir returns the per-user runtime directory. XDG_RUNTIME_DIR wins when
// set; without it the systemd-managed /run/user/<uid> is used if it
// exists, and a private directory under /tmp is created as the last
// resort.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := os.Getuid()
	if dir := fmt.Sprintf("/run/user/%d", uid); isDir(dir) {
		return dir, nil
	}

	dir := fmt.Sprintf("/tmp/quoin-runtime-%d", uid)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create runtime dir: %w", err)
	}
	return dir, nil
}

// SocketPath returns where the daemon listens for IPC connections.
func SocketPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, socketName), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
