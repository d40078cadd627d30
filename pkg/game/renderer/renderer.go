// Package renderer holds the host interface and the text shared by every host.
package renderer

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/controls"
	"rebind/pkg/game/gameplay"
)

// AxisBar draws an axis position in [-1, 1] as a bar of width cells with the
// centre marked, e.g. "[----|##--]".
func AxisBar(pos float64, width int) string {
	if width < 3 {
		width = 3
	}
	half := width / 2
	fill := int(pos*float64(half) + sign(pos)*0.5)
	if fill > half {
		fill = half
	} else if fill < -half {
		fill = -half
	}

	cells := make([]byte, width)
	for i := range cells {
		cells[i] = '-'
	}
	for i := 1; i <= fill; i++ {
		cells[half+i-1+width%2] = '#'
	}
	for i := 1; i <= -fill; i++ {
		cells[half-i] = '#'
	}
	if width%2 == 1 {
		cells[half] = '|'
	}
	return "[" + string(cells) + "]"
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// AxisLine describes one axis, e.g. "Horizontal  [---|##-] +0.40 up".
func AxisLine(name string, a input.Axis) string {
	motion := gotext.Get(a.Velocity.String())
	if a.Falling {
		motion = gotext.Get("falling")
	}
	return fmt.Sprintf("%-10s %s %+.2f %s", name, AxisBar(a.Position, 15), a.Position, motion)
}

// ButtonLine describes one button, e.g. "Fire  down *".
// The star marks an edge raised since the last tick.
func ButtonLine(name string, b input.Button) string {
	level := gotext.Get("up")
	if b.Pressed {
		level = gotext.Get("down")
	}
	edge := ""
	if b.NewEvent {
		edge = " *"
	}
	return fmt.Sprintf("%-10s %s%s", name, level, edge)
}

// StatusLines returns the control readout for the HUD.
func StatusLines(s *gameplay.Session) []string {
	var lines []string
	for _, a := range controls.Axes {
		axis, _ := s.Manager.Axis(a)
		lines = append(lines, AxisLine(controls.Name(input.AxisBinding[controls.Axis, controls.Button](a)), axis))
	}
	for _, b := range controls.Buttons {
		btn, _ := s.Manager.Button(b)
		lines = append(lines, ButtonLine(controls.Name(input.ButtonBinding[controls.Axis](b)), btn))
	}
	lines = append(lines, gotext.Get("Shots fired: %d", s.Game.ShotsFired))
	if s.Game.Capturing {
		lines = append(lines, CapturePrompt(s))
	}
	return lines
}

// CapturePrompt asks for the input to bind to the armed button.
func CapturePrompt(s *gameplay.Session) string {
	target := input.ButtonBinding[controls.Axis](s.CaptureTarget())
	return gotext.Get("Press a key to bind to %s", controls.Name(target))
}

// MenuLines returns the open menu as text: title, instructions, items and
// help. It returns nil while no menu is open.
func MenuLines(s *gameplay.Session) []string {
	if s.Menu == nil {
		return nil
	}
	lines := []string{s.Menu.Title(), s.Menu.Instructions(), ""}
	for _, l := range s.Menu.Lines() {
		lines = append(lines, l.String())
	}
	if help := s.Menu.HelpText(); help != "" {
		lines = append(lines, "", help)
	}
	return lines
}

// BindingLines lists the current inputs of every control, restricted to
// device when it is not DeviceUnknown.
func BindingLines(m *controls.Manager, device input.Device) []string {
	var lines []string
	for _, e := range controls.Listing(m) {
		var names []string
		for _, c := range e.Codes {
			if device == input.DeviceUnknown || c.Device == device {
				names = append(names, c.Name)
			}
		}
		codeText := strings.Join(names, ", ")
		if codeText == "" {
			codeText = gotext.Get("(unbound)")
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", e.Name, codeText))
	}
	return lines
}
