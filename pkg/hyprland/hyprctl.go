package hyprland

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"codeberg.org/miketth/swaymon/pkg/monitors"
)

// Hyprctl drives hyprland outputs over the request socket. Hyprland only accepts
// complete monitor rules, so the last known scale, position and transform of
// every output are kept and resent with each change.
type Hyprctl struct {
	socketPath string
	rules      map[string]*rule
}

type rule struct {
	pos       monitors.Position
	scale     float64
	transform int
}

func NewHyprctl() (*Hyprctl, error) {
	path, err := SocketPath()
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}
	return NewHyprctlWithSocket(path), nil
}

func NewHyprctlWithSocket(socketPath string) *Hyprctl {
	return &Hyprctl{socketPath: socketPath, rules: make(map[string]*rule)}
}

func (c *Hyprctl) ListOutputs() ([]monitors.Output, error) {
	resp, err := request(c.socketPath, "j", "monitors all")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", monitors.ErrQuery, err)
	}

	var mons []monitor
	if err := json.Unmarshal(resp, &mons); err != nil {
		return nil, fmt.Errorf("%w: unmarshal monitors: %w, (hyprctl: %s)", monitors.ErrQuery, err, bytes.TrimSpace(resp))
	}

	out := make([]monitors.Output, 0, len(mons))
	for _, m := range mons {
		scale := m.Scale
		if scale <= 0 {
			scale = 1
		}
		c.rules[m.Name] = &rule{pos: monitors.Position{X: m.X, Y: m.Y}, scale: scale, transform: m.Transform}
		out = append(out, m.ToOutput())
	}

	return out, nil
}

func (c *Hyprctl) keyword(value string) error {
	resp, err := request(c.socketPath, "", "keyword monitor "+value)
	if err != nil {
		return err
	}
	if s := string(bytes.TrimSpace(resp)); s != "ok" {
		return fmt.Errorf("hyprctl: %s", s)
	}
	return nil
}

func (c *Hyprctl) ruleFor(name string) *rule {
	r, ok := c.rules[name]
	if !ok {
		r = &rule{scale: 1}
		c.rules[name] = r
	}
	return r
}

func (c *Hyprctl) apply(name string) error {
	r := c.ruleFor(name)
	value := fmt.Sprintf("%s,preferred,%dx%d,%s,transform,%d",
		name, r.pos.X, r.pos.Y, strconv.FormatFloat(r.scale, 'f', -1, 64), r.transform)
	return c.keyword(value)
}

func (c *Hyprctl) SetEnabled(name string, enabled bool) error {
	if !enabled {
		return c.keyword(name + ",disable")
	}
	return c.apply(name)
}

func (c *Hyprctl) SetTransform(name string, transform monitors.Transform) error {
	idx, ok := transformIndex(transform)
	if !ok {
		return fmt.Errorf("unknown transform %q", transform)
	}
	c.ruleFor(name).transform = idx
	return c.apply(name)
}

func (c *Hyprctl) SetPosition(name string, x, y int) error {
	c.ruleFor(name).pos = monitors.Position{X: x, Y: y}
	return c.apply(name)
}
