// Package gameplay provides the per-frame demo logic. It reads only logical
// control state; physical inputs reach it through a Session.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"

	"rebind/pkg/engine/input"
	"rebind/pkg/game/console"
	"rebind/pkg/game/controls"
	"rebind/pkg/game/menu"
	"rebind/pkg/game/state"
)

// Session ties the game state to the input layer for one host.
//
// Hosts deliver physical events through Press, Release and Analog, then call
// Frame once per frame with the elapsed time.
type Session struct {
	Game    *state.Game
	Manager *controls.Manager
	Router  *controls.Router

	// Menu is the open bindings menu, nil while playing.
	Menu *menu.Menu

	// Console runs binding commands typed into a host's console.
	Console *console.Console

	captureTarget controls.Button
}

// NewSession creates a session with the default layout.
func NewSession(opts ...input.Option) *Session {
	m, r := controls.New(opts...)
	return &Session{
		Game:    state.NewGame(),
		Manager: m,
		Router:  r,
		Console: console.New(m, r),
	}
}

// Press handles a physical input going down. While a rebind is armed the
// input is captured instead of routed, and while the menu is open it drives
// the menu.
func (s *Session) Press(code input.Code) {
	if s.Game.Capturing {
		if Capture(s.Game, s.Manager, s.Router, s.captureTarget, code) {
			if s.Menu != nil {
				s.Menu.SetHelpText(s.Game.Messages[len(s.Game.Messages)-1])
			}
			return
		}
	}
	if s.Menu != nil {
		s.menuPress(code)
		return
	}
	s.Router.Press(code)
}

// menuPress navigates the menu with the logical meaning of code, so a
// rebound Fire still activates items.
func (s *Session) menuPress(code input.Code) {
	b, ok := s.Manager.Binding(code)
	if !ok {
		return
	}

	switch b.Kind {
	case input.KindAxis:
		if b.Axis != controls.AxisVertical {
			return
		}
		switch d, _ := s.Router.Direction(code); d {
		case input.DirectionUp:
			s.Menu.MoveUp()
		case input.DirectionDown:
			s.Menu.MoveDown()
		}
	case input.KindButton:
		switch b.Button {
		case controls.ButtonFire:
			if s.Menu.Activate() {
				s.CloseMenu()
			}
		case controls.ButtonRebind, controls.ButtonQuit:
			s.CloseMenu()
		}
	}
}

// OpenMenu pauses play and opens the bindings menu. Held inputs are released
// so nothing keeps driving the ship once the menu closes.
func (s *Session) OpenMenu() {
	s.Router.ReleaseAll()
	s.Menu = menu.New(menu.NewBindingsMenuHandler(s.Manager, s.arm))
}

// CloseMenu closes the bindings menu and drops any armed capture.
func (s *Session) CloseMenu() {
	if s.Menu == nil {
		return
	}
	s.Menu.Close()
	s.Menu = nil
	s.Game.Capturing = false
}

// arm makes the next pressed input bind to b.
func (s *Session) arm(b controls.Button) {
	s.captureTarget = b
	s.Game.Capturing = true
}

// CaptureTarget returns the button an armed capture binds to.
func (s *Session) CaptureTarget() controls.Button {
	return s.captureTarget
}

// Release handles a physical input going up.
func (s *Session) Release(code input.Code) {
	s.Router.Release(code)
}

// Analog handles an analog reading. Sticks are ignored while the menu is open.
func (s *Session) Analog(code input.Code, v float64) {
	if s.Menu != nil {
		return
	}
	s.Router.Analog(code, v)
}

// Frame runs one frame: game logic reads the edges raised since the last
// frame, then every control is advanced by elapsed. Play is paused while
// the menu is open.
func (s *Session) Frame(elapsed time.Duration) {
	if s.Menu == nil {
		Step(s.Game, s.Manager, elapsed)
		if !s.Game.Quit && s.Manager.ButtonPressed(controls.ButtonRebind) {
			s.OpenMenu()
		}
	} else {
		s.Game.Frames++
	}
	s.Manager.Tick(elapsed)
}

// Capture binds code to target if a rebind is armed. It reports whether code
// was consumed. Reserved inputs cancel the capture and are routed normally.
func Capture(g *state.Game, m *controls.Manager, r *controls.Router, target controls.Button, code input.Code) bool {
	if !g.Capturing {
		return false
	}
	g.Capturing = false

	if controls.Reserved(m, code) {
		logMessage(g, "Can't bind %s, it is reserved", code)
		return false
	}

	controls.ReplaceButton(m, r, target, code)
	logMessage(g, "%s bound to %s", controls.Name(input.ButtonBinding[controls.Axis](target)), code)
	return true
}

// logMessage adds a translated, formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
