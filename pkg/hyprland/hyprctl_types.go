package hyprland

import "codeberg.org/miketth/swaymon/pkg/monitors"

// transforms is indexed by hyprland's numeric transform.
var transforms = []monitors.Transform{
	monitors.TransformNormal,
	monitors.Transform90,
	monitors.Transform180,
	monitors.Transform270,
	monitors.TransformFlipped,
	monitors.TransformFlipped90,
	monitors.TransformFlipped180,
	monitors.TransformFlipped270,
}

func transformIndex(t monitors.Transform) (int, bool) {
	for i, known := range transforms {
		if known == t {
			return i, true
		}
	}
	return 0, false
}

type monitor struct {
	Name      string  `json:"name"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	Serial    string  `json:"serial"`
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Scale     float64 `json:"scale"`
	Transform int     `json:"transform"`
	Disabled  bool    `json:"disabled"`
}

func (m monitor) ToOutput() monitors.Output {
	transform := monitors.TransformNormal
	if m.Transform >= 0 && m.Transform < len(transforms) {
		transform = transforms[m.Transform]
	}

	return monitors.Output{
		Name:      m.Name,
		Make:      m.Make,
		Model:     m.Model,
		Serial:    m.Serial,
		Active:    !m.Disabled,
		Transform: transform,
		Position:  monitors.Position{X: m.X, Y: m.Y},
	}
}
