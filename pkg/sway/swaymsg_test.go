package sway

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

const outputsJSON = `[
  {"name": "HDMI-A-1", "make": "Dell Inc.", "model": "DELL U2720Q", "serial": "ABC123",
   "active": true, "transform": "90", "rect": {"x": 0, "y": 0, "width": 1440, "height": 2560}},
  {"name": "DP-1", "make": "LG", "model": "5K", "serial": "",
   "active": false, "rect": {"x": 0, "y": 0, "width": 0, "height": 0}},
  {"name": "HEADLESS-1", "make": "headless", "model": "headless", "active": true,
   "transform": "normal", "rect": {"x": 1440, "y": 200, "width": 1920, "height": 1080}}
]`

// fakeSwaymsg writes a script that records its arguments and prints stdout for
// get_outputs queries.
func fakeSwaymsg(t *testing.T, stdout string, exitCode int) (Swaymsg, string) {
	t.Helper()

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	outFile := filepath.Join(dir, "stdout")
	if err := os.WriteFile(outFile, []byte(stdout), 0o644); err != nil {
		t.Fatalf("write stdout: %v", err)
	}

	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$*\" >> " + argsFile + "\n" +
		"if [ \"$1\" = \"-t\" ]; then cat " + outFile + "; fi\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"
	path := filepath.Join(dir, "swaymsg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	return Swaymsg{Path: path}, argsFile
}

func readArgs(t *testing.T, argsFile string) []string {
	t.Helper()
	data, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestListOutputs(t *testing.T) {
	s, argsFile := fakeSwaymsg(t, outputsJSON, 0)

	outputs, err := s.ListOutputs()
	if err != nil {
		t.Fatalf("ListOutputs failed: %v", err)
	}

	want := []monitors.Output{
		{Name: "HDMI-A-1", Make: "Dell Inc.", Model: "DELL U2720Q", Serial: "ABC123", Active: true, Transform: monitors.Transform90},
		{Name: "DP-1", Make: "LG", Model: "5K", Transform: monitors.TransformNormal},
		{Name: "HEADLESS-1", Make: "headless", Model: "headless", Active: true, Transform: monitors.TransformNormal, Position: monitors.Position{X: 1440, Y: 200}},
	}
	if !reflect.DeepEqual(outputs, want) {
		t.Fatalf("expected %+v, got %+v", want, outputs)
	}
	if got := outputs[0].Description(); got != "Dell Inc. DELL U2720Q ABC123" {
		t.Fatalf("unexpected description %q", got)
	}
	if got := readArgs(t, argsFile); !reflect.DeepEqual(got, []string{"-t get_outputs --raw"}) {
		t.Fatalf("unexpected invocation %v", got)
	}
}

func TestListOutputs_InvalidJSON(t *testing.T) {
	s, _ := fakeSwaymsg(t, "not json", 0)

	_, err := s.ListOutputs()
	if !errors.Is(err, monitors.ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
}

func TestListOutputs_ProcessFailure(t *testing.T) {
	s, _ := fakeSwaymsg(t, "[]", 1)

	_, err := s.ListOutputs()
	if !errors.Is(err, monitors.ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
}

func TestListOutputs_MissingBinary(t *testing.T) {
	s := Swaymsg{Path: filepath.Join(t.TempDir(), "nope")}

	_, err := s.ListOutputs()
	if !errors.Is(err, monitors.ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
}

func TestOutputCommands(t *testing.T) {
	s, argsFile := fakeSwaymsg(t, "", 0)

	if err := s.SetEnabled("DP-1", true); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	if err := s.SetEnabled("DP-1", false); err != nil {
		t.Fatalf("SetEnabled failed: %v", err)
	}
	if err := s.SetTransform("DP-1", monitors.TransformFlipped270); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	if err := s.SetPosition("DP-1", -1920, 40); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}

	want := []string{
		"output DP-1 enable",
		"output DP-1 disable",
		"output DP-1 transform flipped-270",
		"output DP-1 position -1920 40",
	}
	if got := readArgs(t, argsFile); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOutputCommand_Failure(t *testing.T) {
	s, _ := fakeSwaymsg(t, "", 1)

	if err := s.SetEnabled("DP-9", true); err == nil {
		t.Fatalf("expected error for failing swaymsg")
	}
}
