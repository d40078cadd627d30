// Package controls declares the logical controls of the demo and their
// default physical layout.
package controls

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
)

// Axis is a logical axis.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Button is a logical button.
type Button int

const (
	ButtonFire Button = iota
	ButtonSlow
	ButtonRebind
	ButtonQuit
)

type (
	Manager = input.Manager[Axis, Button, input.Code]
	Router  = input.Router[Axis, Button, input.Code]
	Binding = input.Binding[Axis, Button]
)

// Axes and Buttons list every control in display order.
var (
	Axes    = []Axis{AxisHorizontal, AxisVertical}
	Buttons = []Button{ButtonFire, ButtonSlow, ButtonRebind, ButtonQuit}
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (b Button) String() string {
	switch b {
	case ButtonFire:
		return "Fire"
	case ButtonSlow:
		return "Slow"
	case ButtonRebind:
		return "Rebind"
	case ButtonQuit:
		return "Quit"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// dynamicGet is used for runtime translation key lookups.
var dynamicGet = gotext.Get

// Name returns the translated display name of a binding.
func Name(b Binding) string {
	if b.Kind == input.KindButton {
		return dynamicGet(b.Button.String())
	}
	return dynamicGet(b.Axis.String())
}

// digital is a key or d-pad input that drives an axis in one direction.
type digital struct {
	code input.Code
	axis Axis
	dir  input.Direction
}

var digitalAxes = []digital{
	{input.KeyboardCode("ArrowLeft"), AxisHorizontal, input.DirectionDown},
	{input.KeyboardCode("ArrowRight"), AxisHorizontal, input.DirectionUp},
	{input.KeyboardCode("ArrowUp"), AxisVertical, input.DirectionUp},
	{input.KeyboardCode("ArrowDown"), AxisVertical, input.DirectionDown},
	{input.KeyboardCode("A"), AxisHorizontal, input.DirectionDown},
	{input.KeyboardCode("D"), AxisHorizontal, input.DirectionUp},
	{input.KeyboardCode("W"), AxisVertical, input.DirectionUp},
	{input.KeyboardCode("S"), AxisVertical, input.DirectionDown},

	{input.GamepadCode("dpad_left"), AxisHorizontal, input.DirectionDown},
	{input.GamepadCode("dpad_right"), AxisHorizontal, input.DirectionUp},
	{input.GamepadCode("dpad_up"), AxisVertical, input.DirectionUp},
	{input.GamepadCode("dpad_down"), AxisVertical, input.DirectionDown},

	{input.TerminalCode("arrow_left"), AxisHorizontal, input.DirectionDown},
	{input.TerminalCode("arrow_right"), AxisHorizontal, input.DirectionUp},
	{input.TerminalCode("arrow_up"), AxisVertical, input.DirectionUp},
	{input.TerminalCode("arrow_down"), AxisVertical, input.DirectionDown},
	{input.TerminalCode("a"), AxisHorizontal, input.DirectionDown},
	{input.TerminalCode("d"), AxisHorizontal, input.DirectionUp},
	{input.TerminalCode("w"), AxisVertical, input.DirectionUp},
	{input.TerminalCode("s"), AxisVertical, input.DirectionDown},
}

// analogAxes are stick axes; their readings are applied as positions.
var analogAxes = map[input.Code]Axis{
	input.GamepadCode("left_x"): AxisHorizontal,
	// stick y grows downwards; the host inverts it
	input.GamepadCode("left_y"): AxisVertical,
}

var buttons = []struct {
	code   input.Code
	button Button
}{
	{input.KeyboardCode("Space"), ButtonFire},
	{input.KeyboardCode("Z"), ButtonFire},
	{input.GamepadCode("button_a"), ButtonFire},
	{input.TerminalCode("space"), ButtonFire},
	{input.TerminalCode("z"), ButtonFire},

	{input.KeyboardCode("ShiftLeft"), ButtonSlow},
	{input.GamepadCode("shoulder_left"), ButtonSlow},
	{input.TerminalCode("x"), ButtonSlow},

	{input.KeyboardCode("F2"), ButtonRebind},
	{input.GamepadCode("back"), ButtonRebind},
	{input.TerminalCode("r"), ButtonRebind},

	{input.KeyboardCode("Escape"), ButtonQuit},
	{input.GamepadCode("start"), ButtonQuit},
	{input.TerminalCode("q"), ButtonQuit},
	{input.TerminalCode("escape"), ButtonQuit},
	{input.TerminalCode("ctrl_c"), ButtonQuit},
}

// New builds a Manager with the default layout and a Router that knows the
// direction of every digital axis input.
func New(opts ...input.Option) (*Manager, *Router) {
	b := input.NewBuilder[Axis, Button, input.Code](opts...)
	for _, d := range digitalAxes {
		b.AddAxisBinding(d.axis, d.code).
			AddDefaultChange(releaseChange(d.dir), d.code)
	}
	for code, axis := range analogAxes {
		b.AddAxisBinding(axis, code)
	}
	for _, btn := range buttons {
		b.AddButtonBinding(btn.button, btn.code)
	}

	m := b.Build()
	r := input.NewRouter(m)
	for _, d := range digitalAxes {
		r.AddDirection(d.code, d.dir)
	}
	return m, r
}

// releaseChange is the default change of a digital axis input: releasing a
// direction key lets the axis fall back, unless another key has taken over
// the axis in the meantime.
func releaseChange(dir input.Direction) input.Change {
	return input.Falling(dir)
}

// AddDigital binds code to drive axis in dir while held, falling back on
// release.
func AddDigital(m *Manager, r *Router, axis Axis, dir input.Direction, code input.Code) {
	m.AddAxisBinding(axis, code)
	m.AddDefaultChange(releaseChange(dir), code)
	r.AddDirection(code, dir)
}

// AddAnalog binds code to axis as an analog input whose readings are
// applied as positions.
func AddAnalog(m *Manager, r *Router, axis Axis, code input.Code) {
	forget(m, r, code)
	m.AddAxisBinding(axis, code)
}

// AddButton binds code to button in addition to its other inputs.
func AddButton(m *Manager, r *Router, button Button, code input.Code) {
	forget(m, r, code)
	m.AddButtonBinding(button, code)
}

// ReplaceButton makes code the only input of button.
func ReplaceButton(m *Manager, r *Router, button Button, code input.Code) {
	forget(m, r, code)
	m.ReplaceBindings(input.ButtonBinding[Axis](button), code)
}

// Unbind removes code from whatever it drives. A held input is released
// first so its control doesn't stay stuck.
func Unbind(m *Manager, r *Router, code input.Code) {
	if r.Held(code) {
		r.Release(code)
	}
	forget(m, r, code)
	m.RemoveBinding(code)
}

// forget drops the axis behaviour code had under a previous binding.
func forget(m *Manager, r *Router, code input.Code) {
	m.RemoveDefaultChange(code)
	r.RemoveDirection(code)
}

// ParseControl parses a control name as typed in the console or the config
// file: a button ("fire"), an analog axis ("horizontal") or an axis direction
// ("horizontal+", "vertical-"). Names are case-insensitive.
func ParseControl(s string) (Binding, input.Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	dir := input.DirectionNone
	switch {
	case strings.HasSuffix(name, "+"):
		dir = input.DirectionUp
		name = strings.TrimSuffix(name, "+")
	case strings.HasSuffix(name, "-"):
		dir = input.DirectionDown
		name = strings.TrimSuffix(name, "-")
	}

	for _, a := range Axes {
		if strings.ToLower(a.String()) == name {
			return input.AxisBinding[Axis, Button](a), dir, nil
		}
	}
	if dir == input.DirectionNone {
		for _, b := range Buttons {
			if strings.ToLower(b.String()) == name {
				return input.ButtonBinding[Axis](b), dir, nil
			}
		}
	}
	return Binding{}, dir, fmt.Errorf("unknown control %q", s)
}

// Reserved reports whether code may not be captured by a rebind: the inputs
// that quit or start a rebind stay where they are so the user can't lock
// themselves out.
func Reserved(m *Manager, code input.Code) bool {
	b, ok := m.Binding(code)
	if !ok || b.Kind != input.KindButton {
		return false
	}
	return b.Button == ButtonQuit || b.Button == ButtonRebind
}

// Rebindable reports whether b can be moved to another input from the
// bindings menu. Axes keep their layout; Quit and Rebind are reserved.
func Rebindable(b Binding) bool {
	return b.Kind == input.KindButton && b.Button != ButtonQuit && b.Button != ButtonRebind
}

// Entry is one line of a bindings listing.
type Entry struct {
	Binding Binding
	Name    string
	Codes   []input.Code
}

// Listing returns the current inputs of every control in display order,
// with codes sorted so listings don't flicker.
func Listing(m *Manager) []Entry {
	var entries []Entry
	add := func(b Binding) {
		codes := m.InputsFor(b)
		input.SortCodes(codes)
		entries = append(entries, Entry{Binding: b, Name: Name(b), Codes: codes})
	}
	for _, a := range Axes {
		add(input.AxisBinding[Axis, Button](a))
	}
	for _, btn := range Buttons {
		add(input.ButtonBinding[Axis](btn))
	}
	return entries
}
