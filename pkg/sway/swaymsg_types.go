package sway

import "codeberg.org/miketth/swaymon/pkg/monitors"

type rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type output struct {
	Name      string `json:"name"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Serial    string `json:"serial"`
	Active    bool   `json:"active"`
	Transform string `json:"transform"`
	Rect      *rect  `json:"rect"`
}

func (o output) toOutput() monitors.Output {
	transform := monitors.Transform(o.Transform)
	if transform == "" {
		transform = monitors.TransformNormal
	}

	var pos monitors.Position
	if o.Rect != nil {
		pos = monitors.Position{X: o.Rect.X, Y: o.Rect.Y}
	}

	return monitors.Output{
		Name:      o.Name,
		Make:      o.Make,
		Model:     o.Model,
		Serial:    o.Serial,
		Active:    o.Active,
		Transform: transform,
		Position:  pos,
	}
}
