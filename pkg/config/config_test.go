package config

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Swaymsg != "swaymsg" || cfg.Store.Backend != BackendJSON || cfg.Store.OnMalformed != monitors.LoadReset {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Store.Path != DefaultStorePath(BackendJSON) {
		t.Fatalf("expected default store path, got %q", cfg.Store.Path)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "swaymsg: /usr/local/bin/swaymsg\n" +
		"store:\n" +
		"  backend: sqlite\n" +
		"  on_malformed: abort\n" +
		"log:\n" +
		"  debug: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Config{
		Compositor: CompositorAuto,
		Swaymsg:    "/usr/local/bin/swaymsg",
		Store: Store{
			Backend:     BackendSQLite,
			Path:        DefaultStorePath(BackendSQLite),
			OnMalformed: monitors.LoadAbort,
		},
		Log: Log{Debug: true},
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "store: [",
		"bad backend":    "store:\n  backend: postgres\n",
		"bad compositor": "compositor: kwin\n",
		"bad policy":     "store:\n  on_malformed: ignore\n",
	}

	for name, data := range cases {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCompositorDetect(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")
	if got := CompositorAuto.Detect(); got != CompositorSway {
		t.Fatalf("expected sway, got %q", got)
	}

	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "abc")
	if got := CompositorAuto.Detect(); got != CompositorHyprland {
		t.Fatalf("expected hyprland, got %q", got)
	}
	if got := CompositorSway.Detect(); got != CompositorSway {
		t.Fatalf("expected explicit sway to win, got %q", got)
	}
}
