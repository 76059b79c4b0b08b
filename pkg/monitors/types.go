package monitors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrQuery           = errors.New("query outputs")
	ErrMalformedStore  = errors.New("malformed workspace store")
	ErrWorkspaceExists = errors.New("workspace already exists")
	ErrEmptyName       = errors.New("workspace name cannot be empty")
)

type Transform string

const (
	TransformNormal     Transform = "normal"
	Transform90         Transform = "90"
	Transform180        Transform = "180"
	Transform270        Transform = "270"
	TransformFlipped    Transform = "flipped"
	TransformFlipped90  Transform = "flipped-90"
	TransformFlipped180 Transform = "flipped-180"
	TransformFlipped270 Transform = "flipped-270"
)

// Transforms lists every transform sway accepts, in menu order.
var Transforms = []Transform{
	TransformNormal,
	Transform90,
	Transform180,
	Transform270,
	TransformFlipped,
	TransformFlipped90,
	TransformFlipped180,
	TransformFlipped270,
}

func (t Transform) Valid() bool {
	for _, known := range Transforms {
		if t == known {
			return true
		}
	}
	return false
}

type State string

const (
	StateEnable  State = "enable"
	StateDisable State = "disable"
)

// Enabled reports whether the state turns the output on. An unset state counts as enable.
func (s State) Enabled() bool {
	return s != StateDisable
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Output is a monitor as currently reported by the compositor.
type Output struct {
	Name      string
	Make      string
	Model     string
	Serial    string
	Active    bool
	Transform Transform
	Position  Position
}

// Description identifies a monitor across reconnects. It may be empty when the
// compositor reports no make, model or serial.
func (o Output) Description() string {
	return Describe(o.Make, o.Model, o.Serial)
}

func Describe(manufacturer, model, serial string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s",
		strings.TrimSpace(manufacturer),
		strings.TrimSpace(model),
		strings.TrimSpace(serial),
	))
}

// Label is the text shown for an output in menus.
func (o Output) Label() string {
	return fmt.Sprintf("%s (%s) - active: %t, rot: %s, pos: (%d, %d)",
		o.Description(), o.Name, o.Active, o.Transform, o.Position.X, o.Position.Y)
}

// MonitorProfile is the saved configuration of one monitor inside a workspace.
type MonitorProfile struct {
	Description string    `json:"description"`
	State       State     `json:"state"`
	Transform   Transform `json:"transform,omitempty"`
	Position    *Position `json:"position,omitempty"`
}

// Origin returns the saved position, or 0,0 when none was saved.
func (m MonitorProfile) Origin() Position {
	if m.Position == nil {
		return Position{}
	}
	return *m.Position
}

type Workspace struct {
	Name     string           `json:"name"`
	Monitors []MonitorProfile `json:"monitors"`
}
