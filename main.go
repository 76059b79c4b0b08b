package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"codeberg.org/miketth/swaymon/pkg/config"
	"codeberg.org/miketth/swaymon/pkg/hyprland"
	"codeberg.org/miketth/swaymon/pkg/logging"
	"codeberg.org/miketth/swaymon/pkg/monitors"
	"codeberg.org/miketth/swaymon/pkg/prompt"
	"codeberg.org/miketth/swaymon/pkg/shell"
	"codeberg.org/miketth/swaymon/pkg/sway"
	jsonstore "codeberg.org/miketth/swaymon/pkg/workspacestore/json"
	"codeberg.org/miketth/swaymon/pkg/workspacestore/memory"
	"codeberg.org/miketth/swaymon/pkg/workspacestore/sqlite"
	"go.uber.org/zap"
)

const usage = `usage: swaymon [flags] [command]

commands:
  (none)            interactive menu
  list              print saved workspaces
  activate NAME     apply a saved workspace
  save NAME         save the current outputs as a workspace
  delete NAME...    delete saved workspaces

flags:
`

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultPath(), "path to config.yaml")
	storePath := flag.String("store", "", "path to the workspace store (overrides config)")
	backend := flag.String("backend", "", "workspace store backend: json, sqlite or memory (overrides config)")
	compositor := flag.String("compositor", "", "compositor to drive: auto, sway or hyprland (overrides config)")
	swaymsgPath := flag.String("swaymsg", "", "path to swaymsg (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	dryRun := flag.Bool("dry-run", false, "query outputs but only log the commands that would change them")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *backend != "" {
		cfg.Store.Backend = config.Backend(*backend)
		if *storePath == "" {
			cfg.Store.Path = config.DefaultStorePath(cfg.Store.Backend)
		}
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}
	if *compositor != "" {
		cfg.Compositor = config.Compositor(*compositor)
	}
	if *swaymsgPath != "" {
		cfg.Swaymsg = *swaymsgPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(*debug || cfg.Log.Debug, cfg.Log.Journal)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}
	if *dryRun {
		ctrl = monitors.DryRun{Lister: ctrl, Log: log}
	}

	store, closer, err := newStore(cfg.Store, log)
	if err != nil {
		return fmt.Errorf("create workspace store: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	log.Debugw("using workspace store", "backend", cfg.Store.Backend, "path", cfg.Store.Path)

	sh := shell.New(ctrl, store, cfg.Store.OnMalformed, prompt.NewTerminal(), os.Stdout, log)
	return runCommand(sh, flag.Args())
}

func runCommand(sh *shell.Shell, args []string) error {
	if len(args) == 0 {
		return sh.Run()
	}

	cmd, rest := args[0], args[1:]
	switch {
	case cmd == "list" && len(rest) == 0:
		return sh.ListWorkspaces()
	case cmd == "activate" && len(rest) == 1:
		return sh.Activate(rest[0])
	case cmd == "save" && len(rest) == 1:
		return sh.SaveCurrent(rest[0])
	case cmd == "delete" && len(rest) > 0:
		return sh.Delete(rest...)
	}

	flag.Usage()
	return errors.New("invalid command")
}

func newController(cfg config.Config) (monitors.OutputController, error) {
	switch cfg.Compositor.Detect() {
	case config.CompositorHyprland:
		hyprctl, err := hyprland.NewHyprctl()
		if err != nil {
			return nil, fmt.Errorf("connect hyprctl: %w", err)
		}
		return hyprctl, nil
	default:
		swaymsg, err := sway.NewSwaymsg(cfg.Swaymsg)
		if err != nil {
			return nil, fmt.Errorf("connect swaymsg: %w", err)
		}
		return swaymsg, nil
	}
}

func newStore(cfg config.Store, log *zap.SugaredLogger) (monitors.WorkspaceStore, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return jsonstore.NewWorkspaceStore(cfg.Path), nil, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create store dir: %w", err)
		}
		store, err := sqlite.NewWorkspaceStore(cfg.Path, log)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.BackendMemory:
		return memory.NewWorkspaceStore(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
