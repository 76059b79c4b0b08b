package hyprland

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
)

var ErrNotRunning = errors.New("hyprland might not be running")

// SocketPath finds the request socket of the running Hyprland instance. Newer
// releases keep it under $XDG_RUNTIME_DIR, older ones under /tmp.
func SocketPath() (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE is not set, %w", ErrNotRunning)
	}

	var candidates []string
	if runtime := os.Getenv("XDG_RUNTIME_DIR"); runtime != "" {
		candidates = append(candidates, filepath.Join(runtime, "hypr", signature, ".socket.sock"))
	}
	candidates = append(candidates, filepath.Join("/tmp/hypr", signature, ".socket.sock"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no socket for instance %s, %w", signature, ErrNotRunning)
}

// request sends one request and reads the reply until hyprland closes the connection.
func request(socketPath, flags, req string) ([]byte, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s/%s", flags, req); err != nil {
		return nil, fmt.Errorf("write to hyprctl socket: %w", err)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return nil, fmt.Errorf("read response from hyprctl socket: %w", err)
	}
	return resp, nil
}
