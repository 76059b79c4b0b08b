package sway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

var ErrNotRunning = errors.New("sway might not be running")

// Swaymsg drives sway outputs through the swaymsg binary.
type Swaymsg struct {
	Path string
}

func NewSwaymsg(path string) (*Swaymsg, error) {
	if path == "" {
		path = "swaymsg"
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", path, err)
	}

	if os.Getenv("SWAYSOCK") == "" {
		return nil, fmt.Errorf("SWAYSOCK is not set, %w", ErrNotRunning)
	}

	return &Swaymsg{Path: resolved}, nil
}

func (s Swaymsg) runCommand(args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	path := s.Path
	if path == "" {
		path = "swaymsg"
	}

	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		outStr := strings.TrimSpace(stdout.String() + " " + stderr.String())
		return nil, fmt.Errorf("swaymsg: %w, output: %s", err, outStr)
	}

	return stdout.Bytes(), nil
}

func (s Swaymsg) ListOutputs() ([]monitors.Output, error) {
	out, err := s.runCommand("-t", "get_outputs", "--raw")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", monitors.ErrQuery, err)
	}

	var outputs []output
	if err := json.Unmarshal(out, &outputs); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w, (swaymsg: %s)", monitors.ErrQuery, err, bytes.TrimSpace(out))
	}

	ret := make([]monitors.Output, 0, len(outputs))
	for _, o := range outputs {
		ret = append(ret, o.toOutput())
	}

	return ret, nil
}

func (s Swaymsg) outputCommand(name string, args ...string) error {
	_, err := s.runCommand(append([]string{"output", name}, args...)...)
	if err != nil {
		return fmt.Errorf("output %s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (s Swaymsg) SetEnabled(name string, enabled bool) error {
	if enabled {
		return s.outputCommand(name, "enable")
	}
	return s.outputCommand(name, "disable")
}

func (s Swaymsg) SetTransform(name string, transform monitors.Transform) error {
	return s.outputCommand(name, "transform", string(transform))
}

func (s Swaymsg) SetPosition(name string, x, y int) error {
	return s.outputCommand(name, "position", strconv.Itoa(x), strconv.Itoa(y))
}
