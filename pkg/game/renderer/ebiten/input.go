package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/gameplay"
)

// Standard layout buttons that have a physical input name.
var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom:   "button_a",
	ebiten.StandardGamepadButtonRightRight:    "button_b",
	ebiten.StandardGamepadButtonRightLeft:     "button_x",
	ebiten.StandardGamepadButtonRightTop:      "button_y",
	ebiten.StandardGamepadButtonCenterLeft:    "back",
	ebiten.StandardGamepadButtonCenterRight:   "start",
	ebiten.StandardGamepadButtonLeftTop:       "dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:    "dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:      "dpad_left",
	ebiten.StandardGamepadButtonLeftRight:     "dpad_right",
	ebiten.StandardGamepadButtonFrontTopLeft:  "shoulder_left",
	ebiten.StandardGamepadButtonFrontTopRight: "shoulder_right",
}

// gamepadButtonCode maps a standard gamepad button to its input code.
func gamepadButtonCode(b ebiten.StandardGamepadButton) (input.Code, bool) {
	name, ok := gamepadButtonNames[b]
	if !ok {
		return input.Code{}, false
	}
	return input.GamepadCode(name), true
}

// keyboardCode maps an Ebiten key to its input code.
func keyboardCode(k ebiten.Key) input.Code {
	return input.KeyboardCode(k.String())
}

// stickValues converts raw standard-layout stick readings to axis readings.
// Ebiten reports down as positive; the vertical axis treats up as positive.
func stickValues(x, y float64) (horizontal, vertical float64) {
	return x, -y
}

// pollInput feeds this frame's keyboard and gamepad events to the session.
func (e *EbitenRenderer) pollInput(s *gameplay.Session) {
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		s.Press(keyboardCode(k))
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		s.Release(keyboardCode(k))
	}

	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	stickRead := false
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		e.buttons = inpututil.AppendJustPressedStandardGamepadButtons(id, e.buttons[:0])
		for _, b := range e.buttons {
			if code, ok := gamepadButtonCode(b); ok {
				s.Press(code)
			}
		}
		e.buttons = inpututil.AppendJustReleasedStandardGamepadButtons(id, e.buttons[:0])
		for _, b := range e.buttons {
			if code, ok := gamepadButtonCode(b); ok {
				s.Release(code)
			}
		}

		// Only the first pad drives the sticks so two idle pads do not fight.
		if stickRead {
			continue
		}
		stickRead = true
		h, v := stickValues(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		)
		s.Analog(input.GamepadCode("left_x"), h)
		s.Analog(input.GamepadCode("left_y"), v)

		// the right stick has no default binding but can be bound from config
		h, v = stickValues(
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		)
		s.Analog(input.GamepadCode("right_x"), h)
		s.Analog(input.GamepadCode("right_y"), v)
	}
}
